package monitoring

import (
	"context"

	"github.com/akeren/enquiry-portal/config/router"
	"github.com/akeren/enquiry-portal/internal/log"
	"github.com/akeren/enquiry-portal/pkg/factory"
	"gorm.io/gorm"
)

// MonitoringCache defines the cache interface for the monitoring controller factory.
type MonitoringCache interface {
	Ping(ctx context.Context) error
}

type MonitoringControllerFactory interface {
	CreateController() *router.RESTController
}

type DefaultMonitoringControllerFactory struct {
	db       *gorm.DB
	logger   *log.Logger
	cache    MonitoringCache
	limiters factory.RateLimiterFactory
}

func NewMonitoringControllerFactory(db *gorm.DB, logger *log.Logger, cache MonitoringCache, limiters factory.RateLimiterFactory) MonitoringControllerFactory {
	return &DefaultMonitoringControllerFactory{
		db:       db,
		logger:   logger,
		cache:    cache,
		limiters: limiters,
	}
}

func (f *DefaultMonitoringControllerFactory) CreateController() *router.RESTController {
	return NewMonitoringController(f.db, f.logger, f.cache, f.limiters)
}
