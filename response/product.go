package response

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID             string          `json:"id"`
	BaseCurrency   string          `json:"base_currency"`
	QuoteCurrency  string          `json:"quote_currency"`
	BaseMinSize    decimal.Decimal `json:"base_min_size"`
	BaseMaxSize    decimal.Decimal `json:"base_max_size"`
	QuoteIncrement decimal.Decimal `json:"quote_increment"`
	BaseIncrement  decimal.Decimal `json:"base_increment"`
	DisplayName    string          `json:"display_name"`
	MinMarketFunds decimal.Decimal `json:"min_market_funds"`
	MaxMarketFunds decimal.Decimal `json:"max_market_funds"`
	MarginEnabled  bool            `json:"margin_enabled"`
	PostOnly       bool            `json:"post_only"`
	LimitOnly      bool            `json:"limit_only"`
	CancelOnly     bool            `json:"cancel_only"`
	Status         string          `json:"status"`
	StatusMessage  string          `json:"status_message"`
}

type Ticker struct {
	TradeID int64           `json:"trade_id"`
	Price   decimal.Decimal `json:"price"`
	Size    decimal.Decimal `json:"size"`
	Bid     decimal.Decimal `json:"bid"`
	Ask     decimal.Decimal `json:"ask"`
	Volume  decimal.Decimal `json:"volume"`
	Time    time.Time       `json:"time"`
}

type Stats struct {
	Open        decimal.Decimal `json:"open"`
	High        decimal.Decimal `json:"high"`
	Low         decimal.Decimal `json:"low"`
	Volume      decimal.Decimal `json:"volume"`
	Last        decimal.Decimal `json:"last"`
	Volume30Day decimal.Decimal `json:"volume_30day"`
}

type Trade struct {
	Time    time.Time       `json:"time"`
	TradeID int64           `json:"trade_id"`
	Price   decimal.Decimal `json:"price"`
	Size    decimal.Decimal `json:"size"`
	Side    string          `json:"side"`
}

type Currency struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	MinSize decimal.Decimal `json:"min_size"`
	Status  string          `json:"status"`
	Message *string         `json:"message"`
}

type Time struct {
	ISO   time.Time `json:"iso"`
	Epoch float64   `json:"epoch"`
}
