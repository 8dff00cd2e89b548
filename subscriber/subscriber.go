package subscriber

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/soulgarden/cbpro/dictionary"
)

func toBytes(e interface{}, logger *zerolog.Logger) ([]byte, error) {
	msg, ok := e.([]byte)
	if !ok {
		logger.Err(dictionary.ErrCantConvertInterfaceToBytes).Msg(dictionary.ErrCantConvertInterfaceToBytes.Error())

		return nil, dictionary.ErrCantConvertInterfaceToBytes
	}

	return msg, nil
}

// closed decides what a closed event channel means. The broker closes
// subscriber channels when it stops, which is expected once ctx is done.
func closed(ctx context.Context, logger *zerolog.Logger) error {
	if ctx.Err() != nil {
		return nil
	}

	logger.Err(dictionary.ErrEventChannelClosed).Msg("event channel closed")

	return dictionary.ErrEventChannelClosed
}
