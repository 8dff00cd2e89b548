package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/soulgarden/cbpro/dictionary"
	"github.com/soulgarden/cbpro/paginator"
	"github.com/soulgarden/cbpro/response"
)

// Messenger is the transport used by the call surface. client.Client
// implements it.
type Messenger interface {
	SendMessage(ctx context.Context, method, path string, params url.Values, body interface{}) (json.RawMessage, error)
	SendPaginatedMessage(path string, params url.Values) *paginator.Iterator
}

// PageParams bounds a paginated listing. Zero values are not sent.
// After is a starting cursor chosen by the caller and goes out on the first
// request; later requests carry the cursor returned by the exchange instead.
type PageParams struct {
	Before string
	After  string
	Limit  int
}

func (p PageParams) values() url.Values {
	v := url.Values{}

	if p.Before != "" {
		v.Set(dictionary.BeforeParam, p.Before)
	}

	if p.After != "" {
		v.Set(dictionary.AfterParam, p.After)
	}

	if p.Limit > 0 {
		v.Set(dictionary.LimitParam, strconv.Itoa(p.Limit))
	}

	return v
}

type Public struct {
	msg    Messenger
	logger *zerolog.Logger
}

func NewPublic(msg Messenger, logger *zerolog.Logger) *Public {
	return &Public{msg: msg, logger: logger}
}

func (s *Public) GetProducts(ctx context.Context) ([]*response.Product, error) {
	var products []*response.Product

	if err := s.call(ctx, http.MethodGet, dictionary.ProductsPath, nil, nil, &products); err != nil {
		return nil, err
	}

	return products, nil
}

func (s *Public) GetProduct(ctx context.Context, productID string) (*response.Product, error) {
	product := &response.Product{}

	if err := s.call(ctx, http.MethodGet, productPath(productID, ""), nil, nil, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetProductOrderBook returns the book at level 1 (best bid and ask), 2 (top
// 50 aggregated) or 3 (full, not aggregated). Level 0 means 1.
func (s *Public) GetProductOrderBook(ctx context.Context, productID string, level int) (*response.Book, error) {
	if level == 0 {
		level = 1
	}

	book := &response.Book{}
	params := url.Values{"level": {strconv.Itoa(level)}}

	if err := s.call(ctx, http.MethodGet, productPath(productID, "/book"), params, nil, book); err != nil {
		return nil, err
	}

	return book, nil
}

func (s *Public) GetProductTicker(ctx context.Context, productID string) (*response.Ticker, error) {
	ticker := &response.Ticker{}

	if err := s.call(ctx, http.MethodGet, productPath(productID, "/ticker"), nil, nil, ticker); err != nil {
		return nil, err
	}

	return ticker, nil
}

// GetProductTrades lists trades newest first. Items decode into response.Trade.
func (s *Public) GetProductTrades(productID string, page PageParams) *paginator.Iterator {
	return s.msg.SendPaginatedMessage(productPath(productID, "/trades"), page.values())
}

// GetProductHistoricRates returns candles. Zero start, end or granularity are
// left to the exchange; a non-zero granularity must be a supported one.
func (s *Public) GetProductHistoricRates(
	ctx context.Context,
	productID string,
	start, end time.Time,
	granularity int,
) ([]*response.Candle, error) {
	params := url.Values{}

	if !start.IsZero() {
		params.Set("start", start.UTC().Format(time.RFC3339))
	}

	if !end.IsZero() {
		params.Set("end", end.UTC().Format(time.RFC3339))
	}

	if granularity != 0 {
		if _, ok := dictionary.Granularities[granularity]; !ok {
			err := fmt.Errorf("%w: %d", dictionary.ErrInvalidGranularity, granularity)
			s.logger.Warn().Err(err).Str("product", productID).Msg("get historic rates")

			return nil, err
		}

		params.Set("granularity", strconv.Itoa(granularity))
	}

	var candles []*response.Candle

	if err := s.call(ctx, http.MethodGet, productPath(productID, "/candles"), params, nil, &candles); err != nil {
		return nil, err
	}

	return candles, nil
}

func (s *Public) GetProduct24hrStats(ctx context.Context, productID string) (*response.Stats, error) {
	stats := &response.Stats{}

	if err := s.call(ctx, http.MethodGet, productPath(productID, "/stats"), nil, nil, stats); err != nil {
		return nil, err
	}

	return stats, nil
}

func (s *Public) GetCurrencies(ctx context.Context) ([]*response.Currency, error) {
	var currencies []*response.Currency

	if err := s.call(ctx, http.MethodGet, dictionary.CurrenciesPath, nil, nil, &currencies); err != nil {
		return nil, err
	}

	return currencies, nil
}

func (s *Public) GetTime(ctx context.Context) (*response.Time, error) {
	t := &response.Time{}

	if err := s.call(ctx, http.MethodGet, dictionary.TimePath, nil, nil, t); err != nil {
		return nil, err
	}

	return t, nil
}

// call sends one message and decodes the body into v.
func (s *Public) call(
	ctx context.Context,
	method, path string,
	params url.Values,
	body interface{},
	v interface{},
) error {
	raw, err := s.msg.SendMessage(ctx, method, path, params, body)
	if err != nil {
		return err
	}

	if v == nil || raw == nil {
		return nil
	}

	if err := json.Unmarshal(raw, v); err != nil {
		err = fmt.Errorf("%w: %s %s: %s", dictionary.ErrMalformedResponse, method, path, err)
		s.logger.Err(err).Bytes("body", raw).Msg("unmarshal")

		return err
	}

	return nil
}

func productPath(productID, suffix string) string {
	return dictionary.ProductsPath + "/" + url.PathEscape(productID) + suffix
}
