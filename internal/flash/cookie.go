package flash

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// CookieName is the cookie carrying pending messages for [CookieStore].
const CookieName = "flash"

// CookieStore keeps pending messages base64-encoded in a cookie.
type CookieStore struct{}

func NewCookieStore() *CookieStore {
	return &CookieStore{}
}

// Add appends msg to the messages already carried by the request cookie.
func (s *CookieStore) Add(w http.ResponseWriter, r *http.Request, msg Message) error {
	pending, err := readCookie(r)
	if err != nil && !errors.Is(err, ErrMalformedCookie) {
		return err
	}

	value, err := encodeMessages(append(pending, msg))
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Pop returns the messages carried by the request and expires the cookie.
// A malformed cookie is still expired.
func (s *CookieStore) Pop(w http.ResponseWriter, r *http.Request) ([]Message, error) {
	if _, err := r.Cookie(CookieName); err != nil {
		return nil, nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return readCookie(r)
}

func readCookie(r *http.Request) ([]Message, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil, nil
	}

	return decodeMessages(cookie.Value)
}

func encodeMessages(messages []Message) (string, error) {
	raw, err := json.Marshal(messages)
	if err != nil {
		return "", fmt.Errorf("encode flash messages: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

func decodeMessages(value string) ([]Message, error) {
	if value == "" {
		return nil, nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCookie, err)
	}

	var messages []Message
	if err := json.Unmarshal(raw, &messages); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCookie, err)
	}
	return messages, nil
}
