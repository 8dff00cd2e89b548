package storage

import (
	"sync"
	"testing"

	"github.com/soulgarden/cbpro/response"
	"gotest.tools/v3/assert"
)

func TestStorage_SetTicker(t *testing.T) {
	st := NewStorage()

	assert.Assert(t, st.GetTicker("BTC-USD") == nil)

	assert.Assert(t, st.SetTicker(&response.FeedMessage{ProductID: "BTC-USD", Sequence: 10}))
	assert.Assert(t, !st.SetTicker(&response.FeedMessage{ProductID: "BTC-USD", Sequence: 9}))
	assert.Assert(t, st.SetTicker(&response.FeedMessage{ProductID: "BTC-USD", Sequence: 11}))
	assert.Assert(t, st.SetTicker(&response.FeedMessage{ProductID: "ETH-USD", Sequence: 1}))

	assert.Equal(t, st.GetTicker("BTC-USD").Sequence, int64(11))
	assert.DeepEqual(t, st.Products(), []string{"BTC-USD", "ETH-USD"})
}

func TestStorage_Concurrent(t *testing.T) {
	st := NewStorage()

	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)

		go func(seq int64) {
			defer wg.Done()

			st.SetTicker(&response.FeedMessage{ProductID: "BTC-USD", Sequence: seq})
			_ = st.Products()
		}(int64(i))
	}

	wg.Wait()

	assert.Equal(t, st.GetTicker("BTC-USD").Sequence, int64(7))
}
