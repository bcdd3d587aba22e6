// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package flash

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/user-admin/internal/config"
	"github.com/MKhiriev/user-admin/internal/utils"
	"github.com/redis/go-redis/v9"
)

// SessionCookieName is the cookie carrying the flash session id for
// [RedisStore].
const SessionCookieName = "flash_session"

const keyPrefix = "flash"

// NewRedisClient creates and pings a Redis client with optional password auth.
func NewRedisClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}

// RedisStore keeps pending messages in a Redis list per browser session.
// Undelivered messages expire after ttl.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	ids    *utils.UUIDGenerator
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = config.DefaultFlashTTL
	}

	return &RedisStore{
		client: client,
		ttl:    ttl,
		ids:    utils.NewUUIDGenerator(),
	}
}

func (s *RedisStore) key(sessionID string) string {
	return fmt.Sprintf("%s:%s", keyPrefix, sessionID)
}

// Add pushes msg to the session list and refreshes its expiry in one
// transaction. A session cookie is issued when the request carries none.
func (s *RedisStore) Add(w http.ResponseWriter, r *http.Request, msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode flash message: %w", err)
	}

	key := s.key(s.sessionID(w, r))
	ctx := r.Context()

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, string(data))
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("push flash message: %w", err)
	}

	return nil
}

// Pop reads the whole session list and deletes it in one transaction.
func (s *RedisStore) Pop(w http.ResponseWriter, r *http.Request) ([]Message, error) {
	id, ok := sessionFromCookie(r)
	if !ok {
		return nil, nil
	}

	key := s.key(id)
	ctx := r.Context()

	var read *redis.StringSliceCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		read = pipe.LRange(ctx, key, 0, -1)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read flash messages: %w", err)
	}

	raw := read.Val()
	if len(raw) == 0 {
		return nil, nil
	}

	messages := make([]Message, 0, len(raw))
	for _, item := range raw {
		var msg Message
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			continue
		}
		messages = append(messages, msg)
	}

	return messages, nil
}

// Close releases the Redis connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) sessionID(w http.ResponseWriter, r *http.Request) string {
	if id, ok := sessionFromCookie(r); ok {
		return id
	}

	id := s.ids.Generate()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// sessionFromCookie returns the session id carried by r. Values that are not
// UUIDs are ignored so a client cannot address arbitrary keys.
func sessionFromCookie(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || !utils.IsUUID(cookie.Value) {
		return "", false
	}
	return cookie.Value, true
}
