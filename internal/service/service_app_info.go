package service

import (
	"context"
	"os"
	"time"

	"github.com/MKhiriev/go-recipe-box/internal/logger"
	"github.com/MKhiriev/go-recipe-box/internal/store"
	"github.com/MKhiriev/go-recipe-box/models"
)

const healthPingTimeout = 2 * time.Second

type appInfoService struct {
	buildInfo   models.AppBuildInfo
	frontendDir string
	pool        PoolStatus

	startedAt time.Time
	now       func() time.Time

	logger *logger.Logger
}

func NewAppInfoService(buildInfo models.AppBuildInfo, frontendDir string, pool PoolStatus, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		buildInfo:   buildInfo,
		frontendDir: frontendDir,
		pool:        pool,
		startedAt:   time.Now(),
		now:         time.Now,
		logger:      logger,
	}
}

func (s *appInfoService) Version() string {
	return s.buildInfo.BuildVersion()
}

// Health reports process and database status. A pool left unverified at
// startup is pinged so that it can recover to ready.
func (s *appInfoService) Health(ctx context.Context) models.Health {
	if s.pool.State() == store.PoolFailed {
		pingCtx, cancel := context.WithTimeout(ctx, healthPingTimeout)
		if err := s.pool.Ping(pingCtx); err != nil {
			logger.FromContext(ctx).Debug().Err(err).Msg("database still unreachable")
		}
		cancel()
	}

	return models.Health{
		Status:         "ok",
		PID:            os.Getpid(),
		Uptime:         s.now().Sub(s.startedAt).Seconds(),
		FrontendDir:    s.frontendDir,
		FrontendExists: dirExists(s.frontendDir),
		Database:       s.pool.State().String(),
		Version:        s.buildInfo.BuildVersion(),
	}
}

func dirExists(dir string) bool {
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}
