package dictionary

import "errors"

var ErrInvalidOrderParameters = errors.New("invalid order parameters")

var ErrTransport = errors.New("transport error")

var ErrMalformedResponse = errors.New("malformed response")

var ErrInvalidGranularity = errors.New("granularity is not one of the supported values")

var ErrMissingFillsFilter = errors.New("either order_id or product_id is required")

var ErrEventChannelClosed = errors.New("event channel closed")

var ErrCantConvertInterfaceToBytes = errors.New("can't convert interface to bytes")

var ErrFeedClosed = errors.New("feed closed")

var ErrChannelOverflowed = errors.New("channel overflowed")

var ErrInvalidSecret = errors.New("api secret is not valid base64")

var ErrFeedRejected = errors.New("feed rejected the request")
