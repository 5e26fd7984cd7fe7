package domain

import (
	"github.com/akeren/enquiry-portal/config"
	"github.com/akeren/enquiry-portal/domain/auth"
	"github.com/akeren/enquiry-portal/domain/enquiry"
	"github.com/akeren/enquiry-portal/domain/monitoring"
	"github.com/akeren/enquiry-portal/internal/web"
	"github.com/akeren/enquiry-portal/pkg/factory"
)

func SetupCoreDomain(appConfig *config.ApplicationConfig) error {
	renderer, err := web.NewRenderer()
	if err != nil {
		return err
	}

	limiters := factory.NewDefaultRateLimiterFactory(appConfig.Cache, appConfig.Logger)

	sessions := auth.NewSessionStore(appConfig.Cache, appConfig.Admin.SessionTTL)
	authService := auth.NewAuthService(appConfig.Logger, appConfig.Admin, sessions)

	monitoringFactory := monitoring.NewMonitoringControllerFactory(appConfig.DB, appConfig.Logger, appConfig.Cache, limiters)
	enquiryFactory := enquiry.NewEnquiryServiceFactory(appConfig.DB, appConfig.Logger, appConfig.Mailer, authService, renderer, limiters)

	appConfig.RouterService.MountController(monitoringFactory.CreateController())
	appConfig.RouterService.MountController(auth.NewAuthController(authService, renderer, appConfig.Logger, limiters, appConfig.Admin.SessionTTL))
	appConfig.RouterService.MountController(enquiryFactory.CreateController())

	return nil
}
