package response

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID             string           `json:"id"`
	Price          *decimal.Decimal `json:"price,omitempty"`
	Size           *decimal.Decimal `json:"size,omitempty"`
	Funds          *decimal.Decimal `json:"funds,omitempty"`
	SpecifiedFunds *decimal.Decimal `json:"specified_funds,omitempty"`
	ProductID      string           `json:"product_id"`
	Side           string           `json:"side"`
	Type           string           `json:"type"`
	TimeInForce    string           `json:"time_in_force,omitempty"`
	PostOnly       bool             `json:"post_only"`
	STP            string           `json:"stp,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	DoneAt         *time.Time       `json:"done_at,omitempty"`
	DoneReason     string           `json:"done_reason,omitempty"`
	FillFees       decimal.Decimal  `json:"fill_fees"`
	FilledSize     decimal.Decimal  `json:"filled_size"`
	ExecutedValue  decimal.Decimal  `json:"executed_value"`
	Status         string           `json:"status"`
	Settled        bool             `json:"settled"`
}

type Fill struct {
	TradeID   int64           `json:"trade_id"`
	ProductID string          `json:"product_id"`
	Price     decimal.Decimal `json:"price"`
	Size      decimal.Decimal `json:"size"`
	OrderID   string          `json:"order_id"`
	CreatedAt time.Time       `json:"created_at"`
	Liquidity string          `json:"liquidity"`
	Fee       decimal.Decimal `json:"fee"`
	Settled   bool            `json:"settled"`
	Side      string          `json:"side"`
}

type Fees struct {
	MakerFeeRate decimal.Decimal `json:"maker_fee_rate"`
	TakerFeeRate decimal.Decimal `json:"taker_fee_rate"`
	USDVolume    decimal.Decimal `json:"usd_volume"`
}
