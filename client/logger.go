package client

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// restyLogger routes resty's own messages (retries, warnings) to zerolog.
type restyLogger struct {
	logger *zerolog.Logger
}

func (l *restyLogger) Errorf(format string, v ...interface{}) {
	l.logger.Error().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l *restyLogger) Warnf(format string, v ...interface{}) {
	l.logger.Warn().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l *restyLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
