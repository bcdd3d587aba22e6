package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/user-admin/internal/adapter"
	"github.com/MKhiriev/user-admin/internal/logger"
	"github.com/MKhiriev/user-admin/models"
)

type userService struct {
	api adapter.UserAPI

	logger *logger.Logger
}

// NewUserService returns a UserService backed by the data API. It does not
// validate submitted forms; wrap it with [NewUserValidationService] for that.
func NewUserService(api adapter.UserAPI, logger *logger.Logger) UserService {
	return &userService{
		api:    api,
		logger: logger,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.api.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	return users, nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	if id <= 0 {
		return nil, nil
	}

	user, err := s.api.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting user %d: %w", id, err)
	}

	return user, nil
}

func (s *userService) CreateUser(ctx context.Context, form models.UserForm) (models.User, error) {
	newUser, err := form.NewUser()
	if err != nil {
		return models.User{}, fmt.Errorf("error reading user form: %w", err)
	}

	created, err := s.api.CreateUser(ctx, newUser)
	if err != nil {
		return models.User{}, fmt.Errorf("error creating user: %w", err)
	}

	logger.FromContextOr(ctx, s.logger).Info().
		Int64("user_id", created.IDValue()).
		Str("email", created.Email).
		Bool("with_location", newUser.HasLocation()).
		Msg("user created")

	return created, nil
}
