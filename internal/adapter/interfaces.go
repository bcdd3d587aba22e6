// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client of the remote PostgREST data API.
//
// The primary abstraction is [UserAPI], which decouples the service layer
// from the REST transport. [NewPostgRESTAdapter] returns the resty-based
// implementation.
//
// Read operations degrade silently: a non-200 answer yields an empty result.
// User creation is the only call that surfaces API failures, as
// [*CreationError]. The location write is best-effort and its error is only
// logged by [UserAPI.CreateUser].
package adapter

import (
	"context"

	"github.com/MKhiriev/user-admin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_api_mock.go -package=mock

// UserAPI defines the operations the front-end performs against the data API.
type UserAPI interface {
	// ListUsers fetches all users in server order. A non-200 answer yields an
	// empty slice and a nil error. Transport and decoding faults are returned.
	ListUsers(ctx context.Context) ([]models.User, error)

	// GetUser fetches the user with the given id. It returns nil when the API
	// answers with anything but a non-empty 200 array.
	GetUser(ctx context.Context, id int64) (*models.User, error)

	// CreateUser registers user through the register_user RPC and returns the
	// user created by the API. When user carries a location, AddUserLocation
	// is called for the new id; its failure is logged and never returned.
	// API rejections are returned as [*CreationError].
	CreateUser(ctx context.Context, user models.NewUser) (models.User, error)

	// AddUserLocation stores a location record for userID through the
	// add_location RPC.
	AddUserLocation(ctx context.Context, userID int64, location models.Coordinates) error
}
