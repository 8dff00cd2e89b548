package order

import (
	"strings"

	uuid "github.com/satori/go.uuid"
	"github.com/shopspring/decimal"
	"github.com/soulgarden/cbpro/dictionary"
	"github.com/soulgarden/cbpro/request"
)

// Options holds the optional order fields. A nil pointer or empty string means
// the field is not set and will not be sent.
type Options struct {
	Size  *decimal.Decimal
	Funds *decimal.Decimal
	Price *decimal.Decimal

	TimeInForce request.TimeInForce
	CancelAfter request.CancelAfter
	PostOnly    *bool

	OverdraftEnabled *bool
	FundingAmount    *decimal.Decimal

	ClientOID string
	STP       request.SelfTradePrevention
}

type Violation struct {
	Rule    string
	Message string
}

// InvalidParametersError lists every rule the order broke. It matches
// dictionary.ErrInvalidOrderParameters with errors.Is.
type InvalidParametersError struct {
	Violations []Violation
}

func (e *InvalidParametersError) Error() string {
	msgs := make([]string, 0, len(e.Violations))

	for _, v := range e.Violations {
		msgs = append(msgs, v.Message)
	}

	return dictionary.ErrInvalidOrderParameters.Error() + ": " + strings.Join(msgs, "; ")
}

func (e *InvalidParametersError) Is(target error) bool {
	return target == dictionary.ErrInvalidOrderParameters
}

// Has reports whether the named rule is among the violations.
func (e *InvalidParametersError) Has(rule string) bool {
	for _, v := range e.Violations {
		if v.Rule == rule {
			return true
		}
	}

	return false
}

// Build assembles the order payload and validates it. Nothing is sent.
func Build(productID string, side request.Side, orderType request.OrderType, opts Options) (*request.Order, error) {
	o := &request.Order{
		ProductID:        productID,
		Side:             side,
		Type:             orderType,
		Size:             opts.Size,
		Funds:            opts.Funds,
		Price:            opts.Price,
		TimeInForce:      opts.TimeInForce,
		CancelAfter:      opts.CancelAfter,
		PostOnly:         opts.PostOnly,
		OverdraftEnabled: opts.OverdraftEnabled,
		FundingAmount:    opts.FundingAmount,
		ClientOID:        opts.ClientOID,
		STP:              opts.STP,
	}

	if err := Validate(o); err != nil {
		return nil, err
	}

	return o, nil
}

func Validate(o *request.Order) error {
	var violations []Violation

	for _, r := range rules {
		if r.violated(o) {
			violations = append(violations, Violation{Rule: r.name, Message: r.message})
		}
	}

	if len(violations) > 0 {
		return &InvalidParametersError{Violations: violations}
	}

	return nil
}

func NewClientOID() string {
	return uuid.NewV4().String()
}

func Bool(b bool) *bool {
	return &b
}

func Decimal(d decimal.Decimal) *decimal.Decimal {
	return &d
}

// ParseDecimal parses s, returning nil for an empty string.
func ParseDecimal(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}

	return &d, nil
}
