package service

import (
	"context"

	"github.com/MKhiriev/user-admin/internal/logger"
	"github.com/MKhiriev/user-admin/models"
)

type appInfoService struct {
	info models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService serves the build info of the running binary. A build
// without a version is rejected with [ErrVersionIsNotSpecified].
func NewAppInfoService(info models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if info.BuildVersion() == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", info.BuildVersion()).Msg("app info service created")

	return &appInfoService{
		info:   info,
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.info.BuildVersion()
}
