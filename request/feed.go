package request

type Msg struct {
	Type    int
	Payload []byte
}

// Subscribe is the control message of the websocket feed, used for both
// subscribe and unsubscribe. Auth fields are only set on signed subscriptions.
//easyjson:json
type Subscribe struct {
	Type       string   `json:"type"`
	ProductIDs []string `json:"product_ids,omitempty"`
	Channels   []string `json:"channels"`
	Signature  string   `json:"signature,omitempty"`
	Key        string   `json:"key,omitempty"`
	Passphrase string   `json:"passphrase,omitempty"`
	Timestamp  string   `json:"timestamp,omitempty"`
}
