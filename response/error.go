package response

// Error is the body the exchange returns with non-2xx statuses.
type Error struct {
	Message string `json:"message"`
}
