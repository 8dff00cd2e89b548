package response

import (
	"time"

	"github.com/shopspring/decimal"
)

type Account struct {
	ID        string          `json:"id"`
	Currency  string          `json:"currency"`
	Balance   decimal.Decimal `json:"balance"`
	Available decimal.Decimal `json:"available"`
	Hold      decimal.Decimal `json:"hold"`
	ProfileID string          `json:"profile_id"`
}

// LedgerEntry is one item of the account history.
type LedgerEntry struct {
	ID        string          `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Amount    decimal.Decimal `json:"amount"`
	Balance   decimal.Decimal `json:"balance"`
	Type      string          `json:"type"`
	Details   struct {
		OrderID   string `json:"order_id"`
		TradeID   string `json:"trade_id"`
		ProductID string `json:"product_id"`
	} `json:"details"`
}

type Hold struct {
	ID        string          `json:"id"`
	AccountID string          `json:"account_id"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Amount    decimal.Decimal `json:"amount"`
	Type      string          `json:"type"`
	Ref       string          `json:"ref"`
}
