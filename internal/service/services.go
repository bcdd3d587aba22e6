package service

import (
	"github.com/MKhiriev/user-admin/internal/adapter"
	"github.com/MKhiriev/user-admin/internal/logger"
	"github.com/MKhiriev/user-admin/models"
)

type Services struct {
	UserService    UserService
	AppInfoService AppInfoService
}

func NewServices(api adapter.UserAPI, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		UserService:    NewUserValidationService().Wrap(NewUserService(api, logger)),
		AppInfoService: appInfoService,
	}, nil
}
