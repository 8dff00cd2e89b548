package order_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/soulgarden/cbpro/dictionary"
	"github.com/soulgarden/cbpro/order"
	"github.com/soulgarden/cbpro/request"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)

	return &d
}

func TestBuild_Violations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		orderType request.OrderType
		opts      order.Options
		rule      string
	}{
		{
			name:      "market with size and funds",
			orderType: request.Market,
			opts:      order.Options{Size: dec("1"), Funds: dec("1")},
			rule:      order.RuleSizing,
		},
		{
			name:      "market without size or funds",
			orderType: request.Market,
			opts:      order.Options{},
			rule:      order.RuleSizing,
		},
		{
			name:      "stop with size and funds",
			orderType: request.Stop,
			opts:      order.Options{Size: dec("1"), Funds: dec("10")},
			rule:      order.RuleSizing,
		},
		{
			name:      "stop without size or funds",
			orderType: request.Stop,
			opts:      order.Options{Price: dec("100")},
			rule:      order.RuleSizing,
		},
		{
			name:      "cancel_after without time_in_force",
			orderType: request.Limit,
			opts:      order.Options{Size: dec("1"), Price: dec("1"), CancelAfter: request.CancelAfterMin},
			rule:      order.RuleCancelAfter,
		},
		{
			name:      "cancel_after with GTC",
			orderType: request.Limit,
			opts: order.Options{
				Size: dec("1"), Price: dec("1"), CancelAfter: request.CancelAfterHour, TimeInForce: request.GTC,
			},
			rule: order.RuleCancelAfter,
		},
		{
			name:      "cancel_after with IOC",
			orderType: request.Limit,
			opts: order.Options{
				Size: dec("1"), Price: dec("1"), CancelAfter: request.CancelAfterDay, TimeInForce: request.IOC,
			},
			rule: order.RuleCancelAfter,
		},
		{
			name:      "cancel_after with FOK",
			orderType: request.Limit,
			opts: order.Options{
				Size: dec("1"), Price: dec("1"), CancelAfter: request.CancelAfterDay, TimeInForce: request.FOK,
			},
			rule: order.RuleCancelAfter,
		},
		{
			name:      "cancel_after with unknown time_in_force",
			orderType: request.Limit,
			opts:      order.Options{CancelAfter: "123", TimeInForce: "ABC"},
			rule:      order.RuleCancelAfter,
		},
		{
			name:      "post_only with FOK",
			orderType: request.Limit,
			opts:      order.Options{Size: dec("1"), Price: dec("1"), PostOnly: order.Bool(true), TimeInForce: request.FOK},
			rule:      order.RulePostOnly,
		},
		{
			name:      "post_only with IOC",
			orderType: request.Limit,
			opts:      order.Options{Size: dec("1"), Price: dec("1"), PostOnly: order.Bool(true), TimeInForce: request.IOC},
			rule:      order.RulePostOnly,
		},
		{
			name:      "overdraft_enabled with funding_amount",
			orderType: request.Market,
			opts: order.Options{
				Size: dec("1"), OverdraftEnabled: order.Bool(true), FundingAmount: dec("10"),
			},
			rule: order.RuleMarginFunding,
		},
		{
			name:      "limit without price",
			orderType: request.Limit,
			opts:      order.Options{Size: dec("1")},
			rule:      order.RuleLimitSizing,
		},
		{
			name:      "unknown stp",
			orderType: request.Market,
			opts:      order.Options{Funds: dec("1"), STP: "xx"},
			rule:      order.RuleSTP,
		},
		{
			name:      "client_oid is not a uuid",
			orderType: request.Market,
			opts:      order.Options{Funds: dec("1"), ClientOID: "my-order"},
			rule:      order.RuleClientOID,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			o, err := order.Build("BTC-USD", request.Buy, tt.orderType, tt.opts)
			assert.Assert(t, o == nil)
			assert.Assert(t, errors.Is(err, dictionary.ErrInvalidOrderParameters))

			var invalid *order.InvalidParametersError

			assert.Assert(t, errors.As(err, &invalid))
			assert.Assert(t, invalid.Has(tt.rule), "violations: %v", invalid.Violations)
		})
	}
}

func TestBuild_AllViolationsReported(t *testing.T) {
	t.Parallel()

	_, err := order.Build("BTC-USD", request.Sell, request.Market, order.Options{
		Size:             dec("1"),
		Funds:            dec("1"),
		CancelAfter:      request.CancelAfterMin,
		PostOnly:         order.Bool(true),
		TimeInForce:      request.IOC,
		OverdraftEnabled: order.Bool(true),
		FundingAmount:    dec("5"),
	})

	var invalid *order.InvalidParametersError

	assert.Assert(t, errors.As(err, &invalid))
	assert.Assert(t, invalid.Has(order.RuleSizing))
	assert.Assert(t, invalid.Has(order.RuleCancelAfter))
	assert.Assert(t, invalid.Has(order.RulePostOnly))
	assert.Assert(t, invalid.Has(order.RuleMarginFunding))
	assert.Assert(t, is.Contains(err.Error(), "cancel_after requires GTT"))
}

func TestBuild_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		orderType request.OrderType
		opts      order.Options
		want      string
	}{
		{
			name:      "limit",
			orderType: request.Limit,
			opts:      order.Options{Size: dec("0.01"), Price: dec("100.5")},
			want:      `{"product_id":"BTC-USD","side":"buy","type":"limit","size":"0.01","price":"100.5"}`,
		},
		{
			name:      "limit gtt",
			orderType: request.Limit,
			opts: order.Options{
				Size: dec("1"), Price: dec("2"), TimeInForce: request.GTT, CancelAfter: request.CancelAfterHour,
			},
			want: `{"product_id":"BTC-USD","side":"buy","type":"limit","size":"1","price":"2",` +
				`"time_in_force":"GTT","cancel_after":"hour"}`,
		},
		{
			name:      "post_only gtc",
			orderType: request.Limit,
			opts:      order.Options{Size: dec("1"), Price: dec("2"), PostOnly: order.Bool(true), TimeInForce: request.GTC},
			want: `{"product_id":"BTC-USD","side":"buy","type":"limit","size":"1","price":"2",` +
				`"time_in_force":"GTC","post_only":true}`,
		},
		{
			name:      "market funds",
			orderType: request.Market,
			opts:      order.Options{Funds: dec("25")},
			want:      `{"product_id":"BTC-USD","side":"buy","type":"market","funds":"25"}`,
		},
		{
			name:      "stop size with overdraft disabled and funding",
			orderType: request.Stop,
			opts:      order.Options{Size: dec("3"), OverdraftEnabled: order.Bool(false), FundingAmount: dec("7")},
			want: `{"product_id":"BTC-USD","side":"buy","type":"stop","size":"3",` +
				`"overdraft_enabled":false,"funding_amount":"7"}`,
		},
		{
			name:      "market with client_oid",
			orderType: request.Market,
			opts:      order.Options{Size: dec("1"), ClientOID: "123e4567-e89b-12d3-a456-426614174000", STP: request.CancelBoth},
			want: `{"product_id":"BTC-USD","side":"buy","type":"market","size":"1",` +
				`"client_oid":"123e4567-e89b-12d3-a456-426614174000","stp":"cb"}`,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			o, err := order.Build("BTC-USD", request.Buy, tt.orderType, tt.opts)
			assert.NilError(t, err)

			body, err := json.Marshal(o)
			assert.NilError(t, err)
			assert.Equal(t, string(body), tt.want)
		})
	}
}

func TestBuild_PayloadRoundTrip(t *testing.T) {
	t.Parallel()

	o, err := order.Build("ETH-USD", request.Sell, request.Limit, order.Options{
		Size:        dec("1.5"),
		Price:       dec("2000"),
		TimeInForce: request.GTT,
		CancelAfter: request.CancelAfterDay,
	})
	assert.NilError(t, err)

	body, err := o.MarshalJSON()
	assert.NilError(t, err)

	var fields map[string]interface{}

	assert.NilError(t, json.Unmarshal(body, &fields))
	assert.DeepEqual(t, fields, map[string]interface{}{
		"product_id":    "ETH-USD",
		"side":          "sell",
		"type":          "limit",
		"size":          "1.5",
		"price":         "2000",
		"time_in_force": "GTT",
		"cancel_after":  "day",
	})

	parsed := &request.Order{}

	assert.NilError(t, parsed.UnmarshalJSON(body))
	assert.Assert(t, parsed.Funds == nil)
	assert.Assert(t, parsed.PostOnly == nil)
	assert.Assert(t, parsed.Size.Equal(*o.Size))
	assert.Assert(t, parsed.Price.Equal(*o.Price))
	assert.Equal(t, parsed.CancelAfter, o.CancelAfter)
	assert.NilError(t, order.Validate(parsed))
}

func TestBuild_Deterministic(t *testing.T) {
	t.Parallel()

	opts := order.Options{Size: dec("1"), Funds: dec("1")}

	_, first := order.Build("BTC-USD", request.Buy, request.Market, opts)
	_, second := order.Build("BTC-USD", request.Buy, request.Market, opts)

	assert.Equal(t, first.Error(), second.Error())
}

func TestParseDecimal(t *testing.T) {
	t.Parallel()

	d, err := order.ParseDecimal("")
	assert.NilError(t, err)
	assert.Assert(t, d == nil)

	d, err = order.ParseDecimal("0.25")
	assert.NilError(t, err)
	assert.Equal(t, d.String(), "0.25")

	_, err = order.ParseDecimal("abc")
	assert.Assert(t, err != nil)
}

func BenchmarkBuild(b *testing.B) {
	opts := order.Options{Size: dec("1"), Price: dec("100"), PostOnly: order.Bool(true)}

	for i := 0; i < b.N; i++ {
		if _, err := order.Build("BTC-USD", request.Buy, request.Limit, opts); err != nil {
			b.Error(err)
			b.FailNow()
		}
	}
}
