package models

import (
	"fmt"
	"strconv"
	"strings"
)

// UserForm holds the raw values submitted through the user creation form.
//
// Latitude and Longitude are accepted when posted but are not rendered by the
// form template.
type UserForm struct {
	Email     string `form:"email" validate:"required,email"`
	Password  string `form:"password" validate:"required,min=8"`
	Name      string `form:"name" validate:"required"`
	Latitude  string `form:"latitude" validate:"omitempty,latitude"`
	Longitude string `form:"longitude" validate:"omitempty,longitude"`
}

// Normalized returns a copy of f with surrounding whitespace removed from
// every field, so a blank value counts as absent.
func (f UserForm) Normalized() UserForm {
	f.Email = strings.TrimSpace(f.Email)
	f.Password = strings.TrimSpace(f.Password)
	f.Name = strings.TrimSpace(f.Name)
	f.Latitude = strings.TrimSpace(f.Latitude)
	f.Longitude = strings.TrimSpace(f.Longitude)
	return f
}

// NewUser converts the normalized f into a [NewUser] without validating it.
// Location is set only when both coordinates are present.
func (f UserForm) NewUser() (NewUser, error) {
	f = f.Normalized()
	u := NewUser{
		Email:    f.Email,
		Name:     f.Name,
		Password: f.Password,
	}

	if f.Latitude == "" || f.Longitude == "" {
		return u, nil
	}

	latitude, err := strconv.ParseFloat(f.Latitude, 64)
	if err != nil {
		return NewUser{}, fmt.Errorf("parse latitude: %w", err)
	}
	longitude, err := strconv.ParseFloat(f.Longitude, 64)
	if err != nil {
		return NewUser{}, fmt.Errorf("parse longitude: %w", err)
	}

	u.Location = &Coordinates{Latitude: latitude, Longitude: longitude}
	return u, nil
}

// Redacted returns a copy of f without the password, suitable for
// redisplaying the form.
func (f UserForm) Redacted() UserForm {
	f.Password = ""
	return f
}
