package subscriber

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/soulgarden/cbpro/broker"
)

// Printer writes every feed message to w, one per line.
type Printer struct {
	w           io.Writer
	eventBroker *broker.Broker
	eventsCh    chan interface{}
	logger      *zerolog.Logger
}

func NewPrinter(w io.Writer, eventBroker *broker.Broker, logger *zerolog.Logger) *Printer {
	return &Printer{w: w, eventBroker: eventBroker, eventsCh: eventBroker.Subscribe(), logger: logger}
}

func (s *Printer) Start(ctx context.Context) error {
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

			if _, err := fmt.Fprintf(s.w, "%s\n", msg); err != nil {
				s.logger.Err(err).Msg("write message")

				return err
			}
		case <-ctx.Done():
			return nil
		}
	}
}
