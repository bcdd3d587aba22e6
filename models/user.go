package models

import (
	"encoding/json"
	"fmt"
)

// User is the canonical user record as exposed by the data API.
//
// A User never carries credentials or coordinates: the API's user
// representation excludes them, so they live on [NewUser] instead.
type User struct {
	// ID is assigned by the API. It is nil until the record exists remotely.
	ID *int64 `json:"id,omitempty"`

	// Email is the unique email address of the user.
	Email string `json:"email"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// CreatedAt is the opaque creation timestamp supplied by the API.
	// The client never sets it.
	CreatedAt string `json:"created_at,omitempty"`
}

// userWire is the outbound representation of a [User]. Only email and name
// are ever serialized.
type userWire struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// MarshalJSON encodes u as {email, name}. ID and CreatedAt are owned by the
// API and are never sent.
func (u User) MarshalJSON() ([]byte, error) {
	return json.Marshal(userWire{Email: u.Email, Name: u.Name})
}

// HasID reports whether the API has assigned an identifier to u.
func (u User) HasID() bool {
	return u.ID != nil
}

// IDValue returns the identifier of u, or zero when it is absent.
func (u User) IDValue() int64 {
	if u.ID == nil {
		return 0
	}
	return *u.ID
}

// DecodeUser reads a single user object. Unknown fields are ignored and
// missing fields are left empty.
func DecodeUser(raw []byte) (User, error) {
	var u User
	if err := json.Unmarshal(raw, &u); err != nil {
		return User{}, fmt.Errorf("decode user: %w", err)
	}
	return u, nil
}

// DecodeUsers reads a JSON array of user objects preserving their order.
func DecodeUsers(raw []byte) ([]User, error) {
	users := make([]User, 0)
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

// Int64 returns a pointer to v. Handy for building users with known ids.
func Int64(v int64) *int64 {
	return &v
}
