package service

import (
	"context"

	"github.com/MKhiriev/user-admin/models"
)

// UserService is the user administration use case consumed by the views.
type UserService interface {
	// ListUsers returns every user in the order the data API answers.
	ListUsers(ctx context.Context) ([]models.User, error)

	// GetUser returns the user with the given id, or nil when it does not exist.
	GetUser(ctx context.Context, id int64) (*models.User, error)

	// CreateUser turns a submitted form into a new user.
	CreateUser(ctx context.Context, form models.UserForm) (models.User, error)
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// logging or validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService // returns a decorated UserService applying additional behavior
}
