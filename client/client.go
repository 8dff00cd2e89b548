package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mailru/easyjson"
	"github.com/rs/zerolog"
	"github.com/soulgarden/cbpro/conf"
	"github.com/soulgarden/cbpro/dictionary"
	"github.com/soulgarden/cbpro/paginator"
	"go.uber.org/atomic"
)

// Client sends requests to the REST API. Requests are signed when the config
// carries credentials.
type Client struct {
	cfg    *conf.Client
	http   *resty.Client
	creds  *Credentials
	logger *zerolog.Logger
	id     *atomic.Int64
	now    func() time.Time
}

func New(cfg *conf.Client, logger *zerolog.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.APIURL, "/")).
		SetTimeout(cfg.Timeout()).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "cbpro-go").
		SetRetryCount(cfg.RetryCount).
		AddRetryCondition(retryable).
		SetLogger(&restyLogger{logger: logger})

	c := &Client{
		cfg:    cfg,
		http:   httpClient,
		logger: logger,
		id:     atomic.NewInt64(0),
		now:    time.Now,
	}

	if cfg.Authenticated() {
		c.creds = &Credentials{Key: cfg.APIKey, Secret: cfg.APISecret, Passphrase: cfg.Passphrase}
	}

	httpClient.OnBeforeRequest(c.sign)

	return c
}

// retryable allows a retry on 429 and 5xx. A POST is only retried on 429:
// after a 5xx the exchange may already have accepted it.
func retryable(r *resty.Response, err error) bool {
	if err != nil || r == nil || r.Request == nil {
		return false
	}

	if r.StatusCode() == http.StatusTooManyRequests {
		return true
	}

	return r.Request.Method != http.MethodPost && r.StatusCode() >= http.StatusInternalServerError
}

type signingKey struct{}

type signing struct {
	requestPath string
	err         error
}

// sign runs before every attempt, retries included, so each one carries a
// fresh timestamp.
func (c *Client) sign(_ *resty.Client, r *resty.Request) error {
	if c.creds == nil {
		return nil
	}

	s, ok := r.Context().Value(signingKey{}).(*signing)
	if !ok {
		return nil
	}

	body, _ := r.Body.([]byte)

	headers, err := c.creds.headers(c.now(), r.Method, s.requestPath, body)
	if err != nil {
		s.err = err

		return err
	}

	r.SetHeaders(headers)

	return nil
}

// SendMessage issues one request and returns the raw JSON body.
func (c *Client) SendMessage(
	ctx context.Context,
	method, path string,
	params url.Values,
	body interface{},
) (json.RawMessage, error) {
	resp, err := c.do(ctx, method, path, params, body)
	if err != nil {
		return nil, err
	}

	if len(resp.Body()) == 0 {
		return nil, nil
	}

	if !json.Valid(resp.Body()) {
		err = fmt.Errorf("%w: %s %s returned invalid json", dictionary.ErrMalformedResponse, method, path)
		c.logger.Err(err).Bytes("body", resp.Body()).Msg("send message")

		return nil, err
	}

	return resp.Body(), nil
}

// FetchPage implements paginator.Fetcher.
func (c *Client) FetchPage(ctx context.Context, path string, params url.Values) (*paginator.Page, error) {
	resp, err := c.do(ctx, http.MethodGet, path, params, nil)
	if err != nil {
		return nil, err
	}

	return &paginator.Page{
		Body:    resp.Body(),
		Cursors: resp.Header().Values(dictionary.AfterHeader),
	}, nil
}

// SendPaginatedMessage returns a lazy iterator over every item of a list
// endpoint. No request is made until the iterator is advanced.
func (c *Client) SendPaginatedMessage(path string, params url.Values) *paginator.Iterator {
	return paginator.New(c, path, params)
}

func (c *Client) do(
	ctx context.Context,
	method, path string,
	params url.Values,
	body interface{},
) (*resty.Response, error) {
	method = strings.ToUpper(method)
	id := c.id.Inc()

	payload, err := encode(body)
	if err != nil {
		c.logger.Err(err).Int64("id", id).Msg("marshal body")

		return nil, err
	}

	requestPath := path
	if len(params) > 0 {
		requestPath += "?" + params.Encode()
	}

	s := &signing{requestPath: requestPath}
	req := c.http.R().SetContext(context.WithValue(ctx, signingKey{}, s))

	if payload != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(payload)
	}

	c.logger.Debug().
		Int64("id", id).
		Str("method", method).
		Str("path", requestPath).
		Bytes("body", payload).
		Msg("send message")

	resp, err := req.Execute(method, requestPath)
	if s.err != nil {
		c.logger.Err(s.err).Int64("id", id).Msg("sign request")

		return nil, s.err
	}

	if err != nil {
		c.logger.Err(err).Int64("id", id).Str("path", requestPath).Msg("request failed")

		return nil, newNetworkError(err)
	}

	c.logger.Debug().
		Int64("id", id).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("got response")

	if !resp.IsSuccess() {
		tErr := newHTTPError(resp.StatusCode(), resp.Body())
		c.logger.Err(tErr).Int64("id", id).Str("path", requestPath).Msg("unexpected status")

		return nil, tErr
	}

	return resp, nil
}

func encode(body interface{}) ([]byte, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case easyjson.Marshaler:
		return easyjson.Marshal(b)
	default:
		return json.Marshal(b)
	}
}
