// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/user-admin/internal/adapter"
	"github.com/MKhiriev/user-admin/internal/logger"
	"github.com/MKhiriev/user-admin/internal/mock"
	"github.com/MKhiriev/user-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestUserSvc builds a userService over a mocked data API.
func newTestUserSvc(t *testing.T, ctrl *gomock.Controller) (UserService, *mock.MockUserAPI) {
	t.Helper()
	mockAPI := mock.NewMockUserAPI(ctrl)

	return NewUserService(mockAPI, logger.Nop()), mockAPI
}

// ── ListUsers ────────────────────────────────────────────────────────────────

func TestUserService_ListUsers_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	want := []models.User{
		{ID: models.Int64(2), Email: "b@x.io", Name: "B"},
		{ID: models.Int64(1), Email: "a@x.io", Name: "A"},
	}
	mockAPI.EXPECT().ListUsers(ctx).Return(want, nil)

	got, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUserService_ListUsers_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI := newTestUserSvc(t, ctrl)
	apiErr := errors.New("connection refused")
	mockAPI.EXPECT().ListUsers(gomock.Any()).Return(nil, apiErr)

	_, err := svc.ListUsers(context.Background())
	require.ErrorIs(t, err, apiErr)
	assert.Contains(t, err.Error(), "error listing users")
}

// ── GetUser ──────────────────────────────────────────────────────────────────

func TestUserService_GetUser_Found(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI := newTestUserSvc(t, ctrl)
	user := &models.User{ID: models.Int64(5), Email: "a@b.com", Name: "A"}
	mockAPI.EXPECT().GetUser(gomock.Any(), int64(5)).Return(user, nil)

	got, err := svc.GetUser(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestUserService_GetUser_Absent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI := newTestUserSvc(t, ctrl)
	mockAPI.EXPECT().GetUser(gomock.Any(), int64(5)).Return(nil, nil)

	got, err := svc.GetUser(context.Background(), 5)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserService_GetUser_NonPositiveIDSkipsAPI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestUserSvc(t, ctrl)

	got, err := svc.GetUser(context.Background(), 0)
	require.NoError(t, err)
	assert.Nil(t, got)
}

// ── CreateUser ───────────────────────────────────────────────────────────────

func TestUserService_CreateUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	mockAPI.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.NewUser) (models.User, error) {
			assert.Equal(t, "a@b.com", u.Email)
			assert.Equal(t, "A", u.Name)
			assert.Equal(t, "12345678", u.Password)
			assert.Nil(t, u.Location)
			return models.User{ID: models.Int64(7), Email: u.Email, Name: u.Name}, nil
		},
	)

	created, err := svc.CreateUser(ctx, models.UserForm{Email: "a@b.com", Password: "12345678", Name: "A"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.IDValue())
}

func TestUserService_CreateUser_PassesLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI := newTestUserSvc(t, ctrl)

	mockAPI.EXPECT().CreateUser(gomock.Any(), models.NewUser{
		Email:    "a@b.com",
		Name:     "A",
		Password: "12345678",
		Location: &models.Coordinates{Latitude: 10, Longitude: 20},
	}).Return(models.User{ID: models.Int64(7), Email: "a@b.com", Name: "A"}, nil)

	_, err := svc.CreateUser(context.Background(), models.UserForm{
		Email:     "a@b.com",
		Password:  "12345678",
		Name:      "A",
		Latitude:  "10",
		Longitude: "20",
	})
	require.NoError(t, err)
}

func TestUserService_CreateUser_CreationErrorIsPreserved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI := newTestUserSvc(t, ctrl)
	mockAPI.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, &adapter.CreationError{StatusCode: 409, Message: "duplicate email"})

	_, err := svc.CreateUser(context.Background(), models.UserForm{Email: "a@b.com", Password: "12345678", Name: "A"})

	var creationErr *adapter.CreationError
	require.ErrorAs(t, err, &creationErr)
	assert.Equal(t, "duplicate email", creationErr.Message)
}

func TestUserService_CreateUser_BadCoordinatesSkipAPI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestUserSvc(t, ctrl)

	_, err := svc.CreateUser(context.Background(), models.UserForm{Latitude: "north", Longitude: "east"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading user form")
}
