package response

import (
	"time"

	"github.com/shopspring/decimal"
)

// FeedMessage holds the fields shared by the feed channels used here.
// Channel specific fields stay zero when absent.
type FeedMessage struct {
	Type      string           `json:"type"`
	ProductID string           `json:"product_id"`
	Sequence  int64            `json:"sequence"`
	Time      time.Time        `json:"time"`
	TradeID   int64            `json:"trade_id"`
	Price     *decimal.Decimal `json:"price,omitempty"`
	Side      string           `json:"side"`
	LastSize  *decimal.Decimal `json:"last_size,omitempty"`
	BestBid   *decimal.Decimal `json:"best_bid,omitempty"`
	BestAsk   *decimal.Decimal `json:"best_ask,omitempty"`
	Message   string           `json:"message"`
	Reason    string           `json:"reason"`
}
