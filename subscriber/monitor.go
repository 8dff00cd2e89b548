package subscriber

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/soulgarden/cbpro/broker"
	"github.com/soulgarden/cbpro/dictionary"
	"github.com/soulgarden/cbpro/feed"
	"github.com/soulgarden/cbpro/response"
	"go.uber.org/atomic"
)

// Monitor watches feed sequence numbers for gaps and stops on error messages
// sent by the exchange.
type Monitor struct {
	eventBroker *broker.Broker
	eventsCh    chan interface{}
	tracker     *feed.SequenceTracker
	missed      *atomic.Int64
	logger      *zerolog.Logger
}

// NewMonitor subscribes to eventBroker right away, so the broker must be
// running.
func NewMonitor(eventBroker *broker.Broker, logger *zerolog.Logger) *Monitor {
	return &Monitor{
		eventBroker: eventBroker,
		eventsCh:    eventBroker.Subscribe(),
		tracker:     feed.NewSequenceTracker(),
		missed:      atomic.NewInt64(0),
		logger:      logger,
	}
}

func (s *Monitor) Start(ctx context.Context) error {
	s.logger.Debug().Msg("monitor subscriber starting...")
	defer s.logger.Debug().Msg("monitor subscriber stopped")

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

			if err := s.check(msg); err != nil {
				return err
			}
		case <-ctx.Done():
			return nil
		}
	}
}

// Missed returns the total number of messages lost in sequence gaps.
func (s *Monitor) Missed() int64 {
	return s.missed.Load()
}

func (s *Monitor) check(msg []byte) error {
	m := &response.FeedMessage{}

	if err := json.Unmarshal(msg, m); err != nil {
		s.logger.Err(err).Bytes("msg", msg).Msg("unmarshall")

		return fmt.Errorf("%w: %s", dictionary.ErrMalformedResponse, err)
	}

	if m.Type == dictionary.ErrorType {
		s.logger.Error().Str("message", m.Message).Str("reason", m.Reason).Msg("feed error")

		return fmt.Errorf("%w: %s %s", dictionary.ErrFeedRejected, m.Message, m.Reason)
	}

	if m.ProductID == "" || m.Sequence == 0 {
		return nil
	}

	gap, stale := s.tracker.Track(m.ProductID, m.Sequence)

	switch {
	case stale:
		s.logger.Debug().Str("product", m.ProductID).Int64("sequence", m.Sequence).Msg("stale message")
	case gap > 0:
		s.missed.Add(gap)

		s.logger.Warn().
			Str("product", m.ProductID).
			Int64("sequence", m.Sequence).
			Int64("missed", gap).
			Msg("sequence gap")
	}

	return nil
}
