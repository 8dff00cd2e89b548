package order

import (
	uuid "github.com/satori/go.uuid"
	"github.com/soulgarden/cbpro/request"
)

const (
	RuleProductID        = "product_id"
	RuleSide             = "side"
	RuleType             = "type"
	RuleSizing           = "sizing"
	RuleLimitSizing      = "limit_sizing"
	RuleTimeInForce      = "time_in_force"
	RuleCancelAfter      = "cancel_after"
	RuleCancelAfterValue = "cancel_after_value"
	RulePostOnly         = "post_only"
	RuleMarginFunding    = "margin_funding"
	RuleSTP              = "stp"
	RuleClientOID        = "client_oid"
)

type rule struct {
	name     string
	violated func(o *request.Order) bool
	message  string
}

// Every rule is checked against every order, the table order only fixes the
// order of reported violations.
//nolint: gochecknoglobals
var rules = []rule{
	{
		name:     RuleProductID,
		violated: func(o *request.Order) bool { return o.ProductID == "" },
		message:  "product_id is required",
	},
	{
		name:     RuleSide,
		violated: func(o *request.Order) bool { return !o.Side.Valid() },
		message:  "side must be buy or sell",
	},
	{
		name:     RuleType,
		violated: func(o *request.Order) bool { return !o.Type.Valid() },
		message:  "type must be limit, market or stop",
	},
	{
		name: RuleSizing,
		violated: func(o *request.Order) bool {
			if o.Type != request.Market && o.Type != request.Stop {
				return false
			}

			return (o.Size != nil) == (o.Funds != nil)
		},
		message: "ambiguous or missing order sizing, exactly one of size or funds is required",
	},
	{
		name: RuleLimitSizing,
		violated: func(o *request.Order) bool {
			return o.Type == request.Limit && (o.Size == nil || o.Price == nil)
		},
		message: "limit orders require size and price",
	},
	{
		name: RuleTimeInForce,
		violated: func(o *request.Order) bool {
			return o.TimeInForce != "" && !o.TimeInForce.Valid()
		},
		message: "time_in_force must be one of GTC, GTT, IOC, FOK",
	},
	{
		name: RuleCancelAfter,
		violated: func(o *request.Order) bool {
			return o.CancelAfter != "" && o.TimeInForce != request.GTT
		},
		message: "cancel_after requires GTT",
	},
	{
		name: RuleCancelAfterValue,
		violated: func(o *request.Order) bool {
			return o.CancelAfter != "" && !o.CancelAfter.Valid()
		},
		message: "cancel_after must be one of min, hour, day",
	},
	{
		name: RulePostOnly,
		violated: func(o *request.Order) bool {
			return isSet(o.PostOnly) && (o.TimeInForce == request.IOC || o.TimeInForce == request.FOK)
		},
		message: "post_only incompatible with immediate-or-cancel/fill-or-kill",
	},
	{
		name: RuleMarginFunding,
		violated: func(o *request.Order) bool {
			return isSet(o.OverdraftEnabled) && o.FundingAmount != nil
		},
		message: "overdraft_enabled and funding_amount are mutually exclusive",
	},
	{
		name:     RuleSTP,
		violated: func(o *request.Order) bool { return o.STP != "" && !o.STP.Valid() },
		message:  "stp must be one of dc, co, cn, cb",
	},
	{
		name: RuleClientOID,
		violated: func(o *request.Order) bool {
			if o.ClientOID == "" {
				return false
			}

			_, err := uuid.FromString(o.ClientOID)

			return err != nil
		},
		message: "client_oid must be a UUID",
	},
}

func isSet(b *bool) bool {
	return b != nil && *b
}
