package enquiry

import (
	"github.com/akeren/enquiry-portal/config/router"
	"github.com/akeren/enquiry-portal/domain/auth"
	"github.com/akeren/enquiry-portal/internal/log"
	"github.com/akeren/enquiry-portal/internal/mail"
	"github.com/akeren/enquiry-portal/internal/web"
	"github.com/akeren/enquiry-portal/pkg/factory"
	"gorm.io/gorm"
)

type EnquiryServiceFactory interface {
	CreateService() EnquiryService
	CreateController() *router.RESTController
}

type DefaultEnquiryServiceFactory struct {
	db          *gorm.DB
	logger      *log.Logger
	mailer      mail.Dispatcher
	authService auth.AuthService
	renderer    *web.Renderer
	limiters    factory.RateLimiterFactory
}

func NewEnquiryServiceFactory(
	db *gorm.DB,
	logger *log.Logger,
	mailer mail.Dispatcher,
	authService auth.AuthService,
	renderer *web.Renderer,
	limiters factory.RateLimiterFactory,
) EnquiryServiceFactory {
	return &DefaultEnquiryServiceFactory{
		db:          db,
		logger:      logger,
		mailer:      mailer,
		authService: authService,
		renderer:    renderer,
		limiters:    limiters,
	}
}

func (f *DefaultEnquiryServiceFactory) CreateService() EnquiryService {
	repository := NewEnquiryRepository(f.db)
	return NewEnquiryService(f.logger, repository, f.mailer)
}

func (f *DefaultEnquiryServiceFactory) CreateController() *router.RESTController {
	return NewEnquiryController(f.db, f.logger, f.mailer, f.authService, f.renderer, f.limiters)
}
