package subscriber

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/soulgarden/cbpro/broker"
	"github.com/soulgarden/cbpro/dictionary"
	"github.com/soulgarden/cbpro/storage"
	"gotest.tools/v3/assert"
	"gotest.tools/v3/poll"
)

func startBroker(t *testing.T) (*broker.Broker, context.Context) {
	t.Helper()

	logger := zerolog.Nop()
	b := broker.New(&logger)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	go b.Start(ctx)

	return b, ctx
}

func TestMonitor_Start(t *testing.T) {
	t.Parallel()

	logger := zerolog.Nop()
	b, ctx := startBroker(t)
	m := NewMonitor(b, &logger)

	errCh := make(chan error, 1)

	go func() { errCh <- m.Start(ctx) }()

	for _, msg := range []string{
		`{"type":"subscriptions","channels":[]}`,
		`{"type":"ticker","product_id":"BTC-USD","sequence":1}`,
		`{"type":"ticker","product_id":"BTC-USD","sequence":4}`,
		`{"type":"ticker","product_id":"BTC-USD","sequence":3}`,
		`{"type":"ticker","product_id":"ETH-USD","sequence":10}`,
		`{"type":"error","message":"Failed to subscribe","reason":"bad channel"}`,
	} {
		b.Publish([]byte(msg))
	}

	select {
	case err := <-errCh:
		assert.Assert(t, errors.Is(err, dictionary.ErrFeedRejected))
		assert.ErrorContains(t, err, "bad channel")
	case <-time.After(5 * time.Second):
		t.Fatal("monitor did not stop on feed error")
	}

	assert.Equal(t, m.Missed(), int64(2))
}

func TestMonitor_Malformed(t *testing.T) {
	t.Parallel()

	logger := zerolog.Nop()
	b, _ := startBroker(t)
	m := NewMonitor(b, &logger)

	err := m.check([]byte(`[1,2`))
	assert.Assert(t, errors.Is(err, dictionary.ErrMalformedResponse))
}

func TestTicker_Start(t *testing.T) {
	t.Parallel()

	logger := zerolog.Nop()
	b, ctx := startBroker(t)
	st := storage.NewStorage()
	sub := NewTicker(st, b, &logger)

	go func() { _ = sub.Start(ctx) }()

	b.Publish([]byte(`{"type":"heartbeat","product_id":"LTC-USD","sequence":7}`))
	b.Publish([]byte(`not json`))
	b.Publish([]byte(`{"type":"ticker","product_id":"BTC-USD","sequence":2,"price":"100.5"}`))
	b.Publish([]byte(`{"type":"ticker","product_id":"BTC-USD","sequence":1,"price":"99"}`))
	b.Publish([]byte(`{"type":"ticker","product_id":"ETH-USD","sequence":5,"price":"10"}`))

	poll.WaitOn(t, func(poll.LogT) poll.Result {
		if len(st.Products()) < 2 {
			return poll.Continue("waiting for tickers")
		}

		return poll.Success()
	}, poll.WithTimeout(5*time.Second))

	assert.DeepEqual(t, st.Products(), []string{"BTC-USD", "ETH-USD"})
	assert.Equal(t, st.GetTicker("BTC-USD").Price.String(), "100.5")
	assert.Assert(t, st.GetTicker("LTC-USD") == nil)
}

type lockedBuffer struct {
	mx  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mx.Lock()
	defer b.mx.Unlock()

	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mx.Lock()
	defer b.mx.Unlock()

	return b.buf.String()
}

func TestPrinter_Start(t *testing.T) {
	t.Parallel()

	logger := zerolog.Nop()
	b, ctx := startBroker(t)
	out := &lockedBuffer{}
	p := NewPrinter(out, b, &logger)

	go func() { _ = p.Start(ctx) }()

	b.Publish([]byte(`{"type":"ticker"}`))
	b.Publish([]byte(`{"type":"heartbeat"}`))

	poll.WaitOn(t, func(poll.LogT) poll.Result {
		if strings.Count(out.String(), "\n") < 2 {
			return poll.Continue("got %q", out.String())
		}

		return poll.Success()
	}, poll.WithTimeout(5*time.Second))

	assert.Equal(t, out.String(), "{\"type\":\"ticker\"}\n{\"type\":\"heartbeat\"}\n")
}

func TestSubscriber_BrokerStopped(t *testing.T) {
	t.Parallel()

	logger := zerolog.Nop()
	b := broker.New(&logger)

	brokerCtx, stopBroker := context.WithCancel(context.Background())
	stopped := make(chan struct{})

	go func() {
		b.Start(brokerCtx)
		close(stopped)
	}()

	p := NewPrinter(&lockedBuffer{}, b, &logger)

	stopBroker()
	<-stopped

	err := p.Start(context.Background())
	assert.Assert(t, errors.Is(err, dictionary.ErrEventChannelClosed))
}
