package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
	"github.com/soulgarden/cbpro/dictionary"
	"github.com/soulgarden/cbpro/order"
	"github.com/soulgarden/cbpro/paginator"
	"github.com/soulgarden/cbpro/request"
	"github.com/soulgarden/cbpro/response"
)

// PlaceOrder validates the order and submits it. Invalid orders fail with an
// order.InvalidParametersError before anything is sent.
func (s *Account) PlaceOrder(
	ctx context.Context,
	productID string,
	side request.Side,
	orderType request.OrderType,
	opts order.Options,
) (*response.Order, error) {
	if s.cfg.AutoClientOID && opts.ClientOID == "" {
		opts.ClientOID = order.NewClientOID()
	}

	o, err := order.Build(productID, side, orderType, opts)
	if err != nil {
		s.logger.Warn().Err(err).Str("product", productID).Msg("place order")

		return nil, err
	}

	placed := &response.Order{}

	if err := s.call(ctx, http.MethodPost, dictionary.OrdersPath, nil, o, placed); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("id", placed.ID).
		Str("client_oid", o.ClientOID).
		Str("product", productID).
		Msg("order placed")

	return placed, nil
}

func (s *Account) Buy(
	ctx context.Context,
	productID string,
	orderType request.OrderType,
	opts order.Options,
) (*response.Order, error) {
	return s.PlaceOrder(ctx, productID, request.Buy, orderType, opts)
}

func (s *Account) Sell(
	ctx context.Context,
	productID string,
	orderType request.OrderType,
	opts order.Options,
) (*response.Order, error) {
	return s.PlaceOrder(ctx, productID, request.Sell, orderType, opts)
}

func (s *Account) PlaceLimitOrder(
	ctx context.Context,
	productID string,
	side request.Side,
	price, size decimal.Decimal,
	opts order.Options,
) (*response.Order, error) {
	opts.Price = &price
	opts.Size = &size

	return s.PlaceOrder(ctx, productID, side, request.Limit, opts)
}

// PlaceMarketOrder takes exactly one of size or funds.
func (s *Account) PlaceMarketOrder(
	ctx context.Context,
	productID string,
	side request.Side,
	size, funds *decimal.Decimal,
	opts order.Options,
) (*response.Order, error) {
	opts.Size = size
	opts.Funds = funds

	return s.PlaceOrder(ctx, productID, side, request.Market, opts)
}

// PlaceStopOrder places a stop order triggered at price, sized by exactly one
// of size or funds.
func (s *Account) PlaceStopOrder(
	ctx context.Context,
	productID string,
	side request.Side,
	price decimal.Decimal,
	size, funds *decimal.Decimal,
	opts order.Options,
) (*response.Order, error) {
	opts.Price = &price
	opts.Size = size
	opts.Funds = funds

	return s.PlaceOrder(ctx, productID, side, request.Stop, opts)
}

// CancelOrder returns the id of the canceled order.
func (s *Account) CancelOrder(ctx context.Context, orderID string) (string, error) {
	var canceled string

	if err := s.call(ctx, http.MethodDelete, orderPath(orderID), nil, nil, &canceled); err != nil {
		return "", err
	}

	return canceled, nil
}

// CancelAll cancels every open order, of one product when productID is set.
func (s *Account) CancelAll(ctx context.Context, productID string) ([]string, error) {
	var params url.Values

	if productID != "" {
		params = url.Values{"product_id": {productID}}
	}

	var canceled []string

	if err := s.call(ctx, http.MethodDelete, dictionary.OrdersPath, params, nil, &canceled); err != nil {
		return nil, err
	}

	return canceled, nil
}

func (s *Account) GetOrder(ctx context.Context, orderID string) (*response.Order, error) {
	o := &response.Order{}

	if err := s.call(ctx, http.MethodGet, orderPath(orderID), nil, nil, o); err != nil {
		return nil, err
	}

	return o, nil
}

// GetOrders lists orders, items decode into response.Order. Without statuses
// the exchange returns open and pending orders.
func (s *Account) GetOrders(productID string, statuses []string, page PageParams) *paginator.Iterator {
	params := page.values()

	if productID != "" {
		params.Set("product_id", productID)
	}

	for _, status := range statuses {
		params.Add("status", status)
	}

	return s.msg.SendPaginatedMessage(dictionary.OrdersPath, params)
}

// GetFills lists fills of an order or a product, items decode into
// response.Fill. One of orderID or productID is required.
func (s *Account) GetFills(orderID, productID string, page PageParams) (*paginator.Iterator, error) {
	if orderID == "" && productID == "" {
		s.logger.Warn().Err(dictionary.ErrMissingFillsFilter).Msg("get fills")

		return nil, dictionary.ErrMissingFillsFilter
	}

	params := page.values()

	if orderID != "" {
		params.Set("order_id", orderID)
	}

	if productID != "" {
		params.Set("product_id", productID)
	}

	return s.msg.SendPaginatedMessage(dictionary.FillsPath, params), nil
}

func orderPath(orderID string) string {
	return fmt.Sprintf("%s/%s", dictionary.OrdersPath, url.PathEscape(orderID))
}
