package flash

import "errors"

var (
	ErrUnknownBackend   = errors.New("unknown flash backend")
	ErrRedisUnavailable = errors.New("flash redis is unavailable")
	ErrMalformedCookie  = errors.New("malformed flash cookie")
)
