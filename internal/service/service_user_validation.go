package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/user-admin/internal/validators"
	"github.com/MKhiriev/user-admin/models"
)

// UserValidationService validates submitted forms before handing them to the
// wrapped UserService. Reads pass straight through.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserFormValidator(),
	}
}

func (v *UserValidationService) ListUsers(ctx context.Context) ([]models.User, error) {
	return v.inner.ListUsers(ctx)
}

func (v *UserValidationService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidUserID, id)
	}

	return v.inner.GetUser(ctx, id)
}

func (v *UserValidationService) CreateUser(ctx context.Context, form models.UserForm) (models.User, error) {
	if err := v.validator.Validate(ctx, form); err != nil {
		return models.User{}, fmt.Errorf("error during user form validation: %w", err)
	}

	return v.inner.CreateUser(ctx, form)
}

func (v *UserValidationService) Wrap(wrapped UserService) UserService {
	v.inner = wrapped
	return v
}
