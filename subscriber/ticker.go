package subscriber

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"
	"github.com/soulgarden/cbpro/broker"
	"github.com/soulgarden/cbpro/dictionary"
	"github.com/soulgarden/cbpro/response"
	"github.com/soulgarden/cbpro/storage"
)

// Ticker keeps storage up to date with ticker channel messages.
type Ticker struct {
	storage     *storage.Storage
	eventBroker *broker.Broker
	eventsCh    chan interface{}
	logger      *zerolog.Logger
}

func NewTicker(st *storage.Storage, eventBroker *broker.Broker, logger *zerolog.Logger) *Ticker {
	return &Ticker{storage: st, eventBroker: eventBroker, eventsCh: eventBroker.Subscribe(), logger: logger}
}

func (s *Ticker) Start(ctx context.Context) error {
	s.logger.Debug().Msg("ticker subscriber starting...")
	defer s.logger.Debug().Msg("ticker subscriber stopped")

	defer s.eventBroker.Unsubscribe(s.eventsCh)

	for {
		select {
		case e, ok := <-s.eventsCh:
			if !ok {
				return closed(ctx, s.logger)
			}

			msg, err := toBytes(e, s.logger)
			if err != nil {
				return err
			}

			t := &response.FeedMessage{}

			if err := json.Unmarshal(msg, t); err != nil {
				s.logger.Warn().Err(err).Bytes("msg", msg).Msg("unmarshall")

				continue
			}

			if t.Type != dictionary.TickerType {
				continue
			}

			if !s.storage.SetTicker(t) {
				s.logger.Debug().Str("product", t.ProductID).Int64("sequence", t.Sequence).Msg("outdated ticker")
			}
		case <-ctx.Done():
			return nil
		}
	}
}
