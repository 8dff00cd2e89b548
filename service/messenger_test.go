package service

import (
	"context"
	"encoding/json"
	"net/url"
	"sync"

	"github.com/rs/zerolog"
	"github.com/soulgarden/cbpro/conf"
	"github.com/soulgarden/cbpro/paginator"
)

type sent struct {
	method string
	path   string
	params url.Values
	body   interface{}
}

// fakeMessenger records calls instead of sending them.
type fakeMessenger struct {
	mu        sync.Mutex
	reply     json.RawMessage
	err       error
	sent      []sent
	paginated []sent
	pages     []*paginator.Page
}

func (m *fakeMessenger) SendMessage(
	_ context.Context,
	method, path string,
	params url.Values,
	body interface{},
) (json.RawMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sent = append(m.sent, sent{method: method, path: path, params: params, body: body})

	return m.reply, m.err
}

func (m *fakeMessenger) SendPaginatedMessage(path string, params url.Values) *paginator.Iterator {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.paginated = append(m.paginated, sent{path: path, params: params})

	return paginator.New(&fakeFetcher{pages: m.pages}, path, params)
}

func (m *fakeMessenger) last() sent {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.sent[len(m.sent)-1]
}

type fakeFetcher struct {
	pages []*paginator.Page
	n     int
}

func (f *fakeFetcher) FetchPage(context.Context, string, url.Values) (*paginator.Page, error) {
	p := f.pages[f.n]
	f.n++

	return p, nil
}

func newAccount(reply string) (*Account, *fakeMessenger) {
	logger := zerolog.Nop()
	m := &fakeMessenger{reply: json.RawMessage(reply)}

	return NewAccount(&conf.Client{}, m, &logger), m
}
