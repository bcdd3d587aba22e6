package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrInvalidUserID         = errors.New("invalid user ID")
)
