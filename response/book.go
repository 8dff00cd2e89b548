package response

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	bookPriceIndex = 0
	bookSizeIndex  = 1
	bookThirdIndex = 2
)

type Book struct {
	Sequence int64        `json:"sequence"`
	Bids     []*BookEntry `json:"bids"`
	Asks     []*BookEntry `json:"asks"`
}

// BookEntry is one [price, size, x] row. On levels 1 and 2 x is the number of
// orders at the price, on level 3 it is the order id.
type BookEntry struct {
	Price     decimal.Decimal
	Size      decimal.Decimal
	NumOrders int
	OrderID   string
}

func (o *BookEntry) UnmarshalJSON(data []byte) error {
	var raw []interface{}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if len(raw) <= bookThirdIndex {
		return fmt.Errorf("book entry has %d fields", len(raw))
	}

	priceRaw, ok := raw[bookPriceIndex].(string)
	if !ok {
		return fmt.Errorf("failed to assert type of price (%+v)", raw[bookPriceIndex])
	}

	price, err := decimal.NewFromString(priceRaw)
	if err != nil {
		return err
	}

	sizeRaw, ok := raw[bookSizeIndex].(string)
	if !ok {
		return fmt.Errorf("failed to assert type of size (%+v)", raw[bookSizeIndex])
	}

	size, err := decimal.NewFromString(sizeRaw)
	if err != nil {
		return err
	}

	o.Price = price
	o.Size = size

	switch v := raw[bookThirdIndex].(type) {
	case float64:
		o.NumOrders = int(v)
	case string:
		o.OrderID = v
	default:
		return fmt.Errorf("failed to assert type of order count or id (%+v)", v)
	}

	return nil
}
