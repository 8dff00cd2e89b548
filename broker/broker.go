package broker

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/soulgarden/cbpro/dictionary"
)

const eventChSize = 1024

// Broker fans published messages out to every subscriber. Slow subscribers
// lose messages instead of blocking the others.
type Broker struct {
	subscribers map[chan interface{}]struct{}
	subCh       chan chan interface{}
	unsubCh     chan chan interface{}
	publishCh   chan interface{}
	done        chan struct{}
	logger      *zerolog.Logger
}

func New(logger *zerolog.Logger) *Broker {
	return &Broker{
		subscribers: make(map[chan interface{}]struct{}),
		subCh:       make(chan chan interface{}),
		unsubCh:     make(chan chan interface{}),
		publishCh:   make(chan interface{}, eventChSize),
		done:        make(chan struct{}),
		logger:      logger,
	}
}

// Start runs until ctx is done, then closes every subscriber channel.
func (b *Broker) Start(ctx context.Context) {
	defer func() {
		close(b.done)

		for msgCh := range b.subscribers {
			close(msgCh)
		}
	}()

	for {
		select {
		case msgCh := <-b.subCh:
			b.subscribers[msgCh] = struct{}{}
		case msgCh := <-b.unsubCh:
			if _, ok := b.subscribers[msgCh]; !ok {
				continue
			}

			delete(b.subscribers, msgCh)
			close(msgCh)
		case msg := <-b.publishCh:
			for msgCh := range b.subscribers {
				if len(msgCh) == eventChSize {
					b.logger.Err(dictionary.ErrChannelOverflowed).Msg(dictionary.ErrChannelOverflowed.Error())

					continue
				}

				msgCh <- msg
			}
		case <-ctx.Done():
			return
		}
	}
}

// Subscribe registers a new subscriber. It returns once the broker has
// accepted it, so later publishes reach it.
func (b *Broker) Subscribe() chan interface{} {
	msgCh := make(chan interface{}, eventChSize)

	select {
	case b.subCh <- msgCh:
	case <-b.done:
		close(msgCh)
	}

	return msgCh
}

func (b *Broker) Unsubscribe(msgCh chan interface{}) {
	select {
	case b.unsubCh <- msgCh:
	case <-b.done:
	}
}

func (b *Broker) Publish(msg interface{}) {
	select {
	case b.publishCh <- msg:
	case <-b.done:
	}
}
