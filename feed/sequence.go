package feed

// SequenceTracker follows the last sequence number seen per product to
// detect dropped or replayed feed messages.
type SequenceTracker struct {
	last map[string]int64
}

func NewSequenceTracker() *SequenceTracker {
	return &SequenceTracker{last: make(map[string]int64)}
}

// Track records seq for the product. gap is the number of messages missed
// since the previous one; stale is set for a sequence at or below the last
// seen, which is then ignored.
func (t *SequenceTracker) Track(productID string, seq int64) (gap int64, stale bool) {
	last, ok := t.last[productID]
	if ok && seq <= last {
		return 0, true
	}

	t.last[productID] = seq

	if !ok {
		return 0, false
	}

	return seq - last - 1, false
}

func (t *SequenceTracker) Last(productID string) (int64, bool) {
	seq, ok := t.last[productID]

	return seq, ok
}
