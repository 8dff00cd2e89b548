package paginator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/soulgarden/cbpro/dictionary"
)

// Page is one response of a list endpoint: the raw body and every value of
// the continuation cursor header.
type Page struct {
	Body    []byte
	Cursors []string
}

// Fetcher issues a single page request. Implementations own auth, timeouts
// and retries.
type Fetcher interface {
	FetchPage(ctx context.Context, path string, params url.Values) (*Page, error)
}

// Iterator lazily walks a cursor paginated endpoint. A page is requested only
// when the previous one has been fully consumed. It is not safe for
// concurrent use and cannot be restarted.
type Iterator struct {
	fetcher Fetcher
	path    string
	base    url.Values
	next    url.Values

	items []json.RawMessage
	pos   int
	item  json.RawMessage

	pages     int
	exhausted bool
	err       error
}

func New(fetcher Fetcher, path string, params url.Values) *Iterator {
	return &Iterator{
		fetcher: fetcher,
		path:    path,
		base:    clone(params),
		next:    clone(params),
	}
}

// Next advances to the next item, fetching a page if the buffered one is
// drained. It returns false at the end of the stream or on error.
func (it *Iterator) Next(ctx context.Context) bool {
	for it.pos >= len(it.items) {
		if it.exhausted {
			it.item = nil

			return false
		}

		if err := it.fetch(ctx); err != nil {
			it.err = err
			it.exhausted = true
			it.item = nil

			return false
		}
	}

	it.item = it.items[it.pos]
	it.pos++

	return true
}

func (it *Iterator) Item() json.RawMessage {
	return it.item
}

// Decode unmarshals the current item into v.
func (it *Iterator) Decode(v interface{}) error {
	if it.item == nil {
		return fmt.Errorf("%w: no current item", dictionary.ErrMalformedResponse)
	}

	return json.Unmarshal(it.item, v)
}

func (it *Iterator) Err() error {
	return it.err
}

// Pages returns the number of requests issued so far.
func (it *Iterator) Pages() int {
	return it.pages
}

// All drains the iterator. Items read before an error are returned with it.
func (it *Iterator) All(ctx context.Context) ([]json.RawMessage, error) {
	var items []json.RawMessage

	for it.Next(ctx) {
		items = append(items, it.Item())
	}

	return items, it.Err()
}

func (it *Iterator) fetch(ctx context.Context) error {
	page, err := it.fetcher.FetchPage(ctx, it.path, clone(it.next))
	if err != nil {
		return err
	}

	it.pages++

	var items []json.RawMessage

	if err := json.Unmarshal(page.Body, &items); err != nil || items == nil {
		return fmt.Errorf("%w: page %d of %s is not a list", dictionary.ErrMalformedResponse, it.pages, it.path)
	}

	if len(page.Cursors) > 1 {
		return fmt.Errorf(
			"%w: %d values of %s on page %d of %s",
			dictionary.ErrMalformedResponse,
			len(page.Cursors),
			dictionary.AfterHeader,
			it.pages,
			it.path,
		)
	}

	it.items = items
	it.pos = 0

	var cursor string
	if len(page.Cursors) == 1 {
		cursor = page.Cursors[0]
	}

	// A before bound walks towards newer items, only the first page is wanted.
	if cursor == "" || it.base.Get(dictionary.BeforeParam) != "" {
		it.exhausted = true

		return nil
	}

	it.next = clone(it.base)
	it.next.Set(dictionary.AfterParam, cursor)

	return nil
}

func clone(params url.Values) url.Values {
	c := make(url.Values, len(params)+1)

	for k, v := range params {
		c[k] = append([]string(nil), v...)
	}

	return c
}
