// Package flash keeps one-time notifications between a redirect and the
// next page render.
//
// A message added while handling one request is returned exactly once by the
// first subsequent [Store.Pop] for the same browser. Two backends exist:
//   - [CookieStore] keeps the pending messages inside a cookie.
//   - [RedisStore] keeps them in a Redis list keyed by a session cookie.
package flash

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/user-admin/internal/config"
	"github.com/MKhiriev/user-admin/internal/logger"
)

// Level classifies a flash message.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Message is a single one-time notification.
type Message struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
}

// Success builds a success message.
func Success(text string) Message {
	return Message{Level: LevelSuccess, Text: text}
}

// Error builds an error message.
func Error(text string) Message {
	return Message{Level: LevelError, Text: text}
}

// Store persists flash messages across requests of the same browser.
type Store interface {
	// Add queues msg for the next Pop.
	Add(w http.ResponseWriter, r *http.Request, msg Message) error

	// Pop returns every queued message in insertion order and forgets them.
	Pop(w http.ResponseWriter, r *http.Request) ([]Message, error)
}

// NewStore builds the backend selected by cfg.Backend. The redis backend
// pings the server before returning.
func NewStore(ctx context.Context, cfg config.Flash, logger *logger.Logger) (Store, error) {
	switch cfg.Backend {
	case config.FlashBackendCookie, "":
		logger.Info().Msg("flash messages are kept in cookies")
		return NewCookieStore(), nil
	case config.FlashBackendRedis:
		client, err := NewRedisClient(ctx, cfg.RedisAddress, cfg.RedisPassword)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
		}
		logger.Info().Str("address", cfg.RedisAddress).Msg("flash messages are kept in redis")
		return NewRedisStore(client, cfg.TTL), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
