package service

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/soulgarden/cbpro/dictionary"
)

type Manager struct {
	logger          *zerolog.Logger
	shutdownTimeout time.Duration
}

func NewManager(logger *zerolog.Logger) *Manager {
	return &Manager{logger: logger, shutdownTimeout: dictionary.ShutDownDuration}
}

// ListenSignal returns a context cancelled on SIGINT or SIGTERM. The process
// is killed if it is still running shutdownTimeout after the signal.
func (s *Manager) ListenSignal(parent context.Context) context.Context {
	interrupt := make(chan os.Signal, dictionary.SignalChLen)

	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(parent)

	go func() {
		select {
		case sig := <-interrupt:
			s.logger.Warn().Str("signal", sig.String()).Msg("interrupt signal received")
		case <-ctx.Done():
			signal.Stop(interrupt)

			return
		}

		cancel()

		<-time.After(s.shutdownTimeout)

		s.logger.Warn().Msg("killed by shutdown timeout")

		os.Exit(1)
	}()

	return ctx
}
