package storage

import (
	"sort"
	"sync"

	"github.com/soulgarden/cbpro/response"
)

// Storage keeps the latest ticker of every product seen on the feed.
type Storage struct {
	tickersMx sync.RWMutex
	tickers   map[string]*response.FeedMessage
}

func NewStorage() *Storage {
	return &Storage{tickers: make(map[string]*response.FeedMessage)}
}

// SetTicker stores msg unless a ticker with a higher sequence is already
// there. It reports whether msg was stored.
func (s *Storage) SetTicker(msg *response.FeedMessage) bool {
	s.tickersMx.Lock()
	defer s.tickersMx.Unlock()

	if prev, ok := s.tickers[msg.ProductID]; ok && prev.Sequence > msg.Sequence {
		return false
	}

	s.tickers[msg.ProductID] = msg

	return true
}

func (s *Storage) GetTicker(productID string) *response.FeedMessage {
	s.tickersMx.RLock()
	defer s.tickersMx.RUnlock()

	return s.tickers[productID]
}

func (s *Storage) Products() []string {
	s.tickersMx.RLock()
	defer s.tickersMx.RUnlock()

	products := make([]string, 0, len(s.tickers))
	for id := range s.tickers {
		products = append(products, id)
	}

	sort.Strings(products)

	return products
}
