package feed

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/mailru/easyjson"
	"github.com/rs/zerolog"
	"github.com/soulgarden/cbpro/client"
	"github.com/soulgarden/cbpro/conf"
	"github.com/soulgarden/cbpro/dictionary"
	"github.com/soulgarden/cbpro/request"
	"github.com/tevino/abool"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"
)

const pingInterval = 15 * time.Second
const readChSize = 1024
const writeChSize = 1024
const readDeadline = 30 * time.Second
const writeDeadline = 10 * time.Second
const eventSize = 4 << 20

// Feed is a websocket market data connection. Messages are delivered raw on
// ReadCh, which is closed once the connection is gone.
type Feed struct {
	cfg      *conf.Client
	conn     *websocket.Conn
	sendCh   chan request.Msg
	ReadCh   chan []byte
	done     chan struct{}
	logger   *zerolog.Logger
	isClosed *abool.AtomicBool
	received *atomic.Int64
	now      func() time.Time
}

// Dial connects to the feed and starts the read, write and ping loops in g.
// Cancelling ctx closes the feed.
func Dial(ctx context.Context, cfg *conf.Client, g *errgroup.Group, logger *zerolog.Logger) (*Feed, error) {
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, cfg.FeedURL, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}

	if err != nil {
		logger.Err(err).Str("url", cfg.FeedURL).Msg("dial error")

		return nil, err
	}

	logger.Debug().Str("url", cfg.FeedURL).Msg("new feed connection established")

	f := &Feed{
		cfg:      cfg,
		conn:     conn,
		sendCh:   make(chan request.Msg, writeChSize),
		ReadCh:   make(chan []byte, readChSize),
		done:     make(chan struct{}),
		logger:   logger,
		isClosed: abool.New(),
		received: atomic.NewInt64(0),
		now:      time.Now,
	}

	g.Go(f.read)
	g.Go(f.write)
	g.Go(func() error { return f.pinger(ctx) })

	return f, nil
}

// Subscribe asks for the given channels of the given products. The request
// is signed when credentials are configured.
func (f *Feed) Subscribe(productIDs, channels []string) error {
	r := &request.Subscribe{
		Type:       dictionary.SubscribeType,
		ProductIDs: productIDs,
		Channels:   channels,
	}

	if f.cfg.Authenticated() {
		ts := client.Timestamp(f.now())

		sign, err := client.Sign(f.cfg.APISecret, ts, http.MethodGet, dictionary.VerifyPath, nil)
		if err != nil {
			f.logger.Err(err).Msg("sign subscription")

			return err
		}

		r.Signature = sign
		r.Key = f.cfg.APIKey
		r.Passphrase = f.cfg.Passphrase
		r.Timestamp = ts
	}

	return f.sendControl(r)
}

func (f *Feed) Unsubscribe(productIDs, channels []string) error {
	return f.sendControl(&request.Subscribe{
		Type:       dictionary.UnsubscribeType,
		ProductIDs: productIDs,
		Channels:   channels,
	})
}

// Received returns the number of messages read so far.
func (f *Feed) Received() int64 {
	return f.received.Load()
}

func (f *Feed) Close() {
	if !f.isClosed.SetToIf(false, true) {
		return
	}

	close(f.done)
}

func (f *Feed) sendControl(r *request.Subscribe) error {
	body, err := easyjson.Marshal(r)
	if err != nil {
		return err
	}

	return f.sendMessage(request.Msg{Type: websocket.TextMessage, Payload: body})
}

func (f *Feed) sendMessage(msg request.Msg) error {
	f.logger.Debug().Int("type", msg.Type).Bytes("body", msg.Payload).Msg("send message")

	if f.isClosed.IsSet() {
		f.logger.Warn().Bytes("body", msg.Payload).Msg("got message for sent, but feed closed")

		return dictionary.ErrFeedClosed
	}

	select {
	case f.sendCh <- msg:
		return nil
	case <-f.done:
		return dictionary.ErrFeedClosed
	}
}

func (f *Feed) read() error {
	defer close(f.ReadCh)
	defer f.Close()

	f.conn.SetReadLimit(eventSize)

	f.conn.SetPongHandler(func(string) error {
		return f.conn.SetReadDeadline(time.Now().Add(readDeadline))
	})

	for {
		if err := f.conn.SetReadDeadline(time.Now().Add(readDeadline)); err != nil {
			f.logger.Err(err).Msg("set read deadline")

			return err
		}

		msgType, msg, err := f.conn.ReadMessage()
		if err != nil {
			if f.isClosed.IsSet() || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}

			f.logger.Err(err).Msg("read message")

			return err
		}

		f.logger.Debug().Int("type", msgType).Bytes("payload", msg).Msg("got message")
		f.received.Inc()

		select {
		case f.ReadCh <- msg:
		case <-f.done:
			f.logger.Warn().Bytes("payload", msg).Msg("got message, but feed closed")

			return nil
		}
	}
}

func (f *Feed) write() error {
	defer f.conn.Close()

	for {
		select {
		case msg := <-f.sendCh:
			if err := f.writeMessage(msg); err != nil {
				f.logger.Err(err).Int("type", msg.Type).Bytes("body", msg.Payload).Msg("write message")
				f.Close()

				return err
			}
		case <-f.done:
			err := f.writeMessage(request.Msg{
				Type:    websocket.CloseMessage,
				Payload: websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			})
			if err != nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				f.logger.Warn().Err(err).Msg("write close message")
			}

			return nil
		}
	}
}

func (f *Feed) writeMessage(msg request.Msg) error {
	if err := f.conn.SetWriteDeadline(time.Now().Add(writeDeadline)); err != nil {
		return err
	}

	return f.conn.WriteMessage(msg.Type, msg.Payload)
}

func (f *Feed) pinger(ctx context.Context) error {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := f.sendMessage(request.Msg{Type: websocket.PingMessage}); err != nil {
				return nil
			}
		case <-ctx.Done():
			f.Close()

			return nil
		case <-f.done:
			return nil
		}
	}
}
