package request

import "github.com/shopspring/decimal"

type Side string

const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

func (s Side) Valid() bool {
	return s == Buy || s == Sell
}

type OrderType string

const (
	Limit  OrderType = "limit"
	Market OrderType = "market"
	Stop   OrderType = "stop"
)

func (t OrderType) Valid() bool {
	return t == Limit || t == Market || t == Stop
}

// TimeInForce is empty when the order leaves it to the exchange default (GTC).
type TimeInForce string

const (
	GTC TimeInForce = "GTC" // good till canceled
	GTT TimeInForce = "GTT" // good till time, see CancelAfter
	IOC TimeInForce = "IOC" // immediate or cancel
	FOK TimeInForce = "FOK" // fill or kill
)

func (t TimeInForce) Valid() bool {
	switch t {
	case GTC, GTT, IOC, FOK:
		return true
	}

	return false
}

type CancelAfter string

const (
	CancelAfterMin  CancelAfter = "min"
	CancelAfterHour CancelAfter = "hour"
	CancelAfterDay  CancelAfter = "day"
)

func (c CancelAfter) Valid() bool {
	return c == CancelAfterMin || c == CancelAfterHour || c == CancelAfterDay
}

// SelfTradePrevention flags, dc is the exchange default.
type SelfTradePrevention string

const (
	DecreaseAndCancel SelfTradePrevention = "dc"
	CancelOldest      SelfTradePrevention = "co"
	CancelNewest      SelfTradePrevention = "cn"
	CancelBoth        SelfTradePrevention = "cb"
)

func (s SelfTradePrevention) Valid() bool {
	switch s {
	case DecreaseAndCancel, CancelOldest, CancelNewest, CancelBoth:
		return true
	}

	return false
}

// Order is the payload of POST /orders. Nil pointers and empty strings are
// omitted when encoded.
//easyjson:json
type Order struct {
	ProductID string    `json:"product_id"`
	Side      Side      `json:"side"`
	Type      OrderType `json:"type"`

	Size  *decimal.Decimal `json:"size,omitempty"`
	Funds *decimal.Decimal `json:"funds,omitempty"`
	Price *decimal.Decimal `json:"price,omitempty"`

	TimeInForce TimeInForce `json:"time_in_force,omitempty"`
	CancelAfter CancelAfter `json:"cancel_after,omitempty"`
	PostOnly    *bool       `json:"post_only,omitempty"`

	OverdraftEnabled *bool            `json:"overdraft_enabled,omitempty"`
	FundingAmount    *decimal.Decimal `json:"funding_amount,omitempty"`

	ClientOID string              `json:"client_oid,omitempty"`
	STP       SelfTradePrevention `json:"stp,omitempty"`
}
