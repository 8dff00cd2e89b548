package response

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Rows of the candles endpoint are [time, low, high, open, close, volume].
const (
	candleTimeIndex = iota
	candleLowIndex
	candleHighIndex
	candleOpenIndex
	candleCloseIndex
	candleVolumeIndex
	candleFields
)

type Candle struct {
	Time   time.Time
	Low    decimal.Decimal
	High   decimal.Decimal
	Open   decimal.Decimal
	Close  decimal.Decimal
	Volume decimal.Decimal
}

func (o *Candle) UnmarshalJSON(data []byte) error {
	// Unknown numbers always come in as float64.
	var raw []interface{}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if len(raw) < candleFields {
		return fmt.Errorf("candle has %d fields", len(raw))
	}

	values := make([]float64, candleFields)

	for i := range values {
		v, ok := raw[i].(float64)
		if !ok {
			return fmt.Errorf("failed to assert type of candle field %d (%+v)", i, raw[i])
		}

		values[i] = v
	}

	o.Time = time.Unix(int64(values[candleTimeIndex]), 0).UTC()
	o.Low = decimal.NewFromFloat(values[candleLowIndex])
	o.High = decimal.NewFromFloat(values[candleHighIndex])
	o.Open = decimal.NewFromFloat(values[candleOpenIndex])
	o.Close = decimal.NewFromFloat(values[candleCloseIndex])
	o.Volume = decimal.NewFromFloat(values[candleVolumeIndex])

	return nil
}
