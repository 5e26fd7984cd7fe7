package enquiry

import (
	"net/http"
	"time"

	"github.com/akeren/enquiry-portal/config/router"
	"github.com/akeren/enquiry-portal/domain/auth"
	"github.com/akeren/enquiry-portal/internal/log"
	"github.com/akeren/enquiry-portal/internal/mail"
	"github.com/akeren/enquiry-portal/internal/web"
	apperrors "github.com/akeren/enquiry-portal/pkg/errors"
	"github.com/akeren/enquiry-portal/pkg/factory"
	"gorm.io/gorm"
)

const (
	submitRequestsPerMinute = 30

	submitFailureBody = "There was an error submitting your enquiry."
	mailFailureBody   = "There was an error sending your confirmation email."
)

func NewEnquiryController(
	db *gorm.DB,
	logger *log.Logger,
	mailer mail.Dispatcher,
	authService auth.AuthService,
	renderer *web.Renderer,
	limiters factory.RateLimiterFactory,
) *router.RESTController {

	return router.NewRESTController(
		"EnquiryController",
		"/",
		func(rs *router.RouterService, c *router.RESTController) {
			repository := NewEnquiryRepository(db)
			service := NewEnquiryService(logger, repository, mailer)

			submitLimiter := limiters.CreateRateLimiter(submitRequestsPerMinute, time.Minute)

			rs.AddPostHandler(c, submitLimiter, "submit-form", submitHandler(service))
			rs.AddGetHandler(c, nil, "success", successHandler())
			rs.AddGetHandler(c, nil, "enquiries", listHandler(service, renderer), auth.RequireSession(authService))
		},
	)
}

func submitHandler(service EnquiryService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var input EnquiryInput

		if err := ctx.ShouldBind(&input); err != nil {
			logger.Error("Failed to bind enquiry form", "error", err)

			validationErrors := apperrors.FormatValidationErrors(err, &input)
			if len(validationErrors) > 0 {
				return router.BadRequestResult("Invalid enquiry form", validationErrors)
			}

			return router.BadRequestResult("Invalid enquiry form", nil)
		}

		if err := service.Submit(ctx.Request.Context(), &input); err != nil {
			if apperrors.IsMailDeliveryError(err) {
				// The enquiry is stored; only the confirmation failed.
				return router.PlainTextResult(http.StatusInternalServerError, mailFailureBody)
			}
			return router.PlainTextResult(http.StatusInternalServerError, submitFailureBody)
		}

		return router.RedirectResult("/success")
	}
}

func successHandler() router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		return router.HTMLResult(http.StatusOK, web.SuccessFragment)
	}
}

func listHandler(service EnquiryService, renderer *web.Renderer) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		rows, err := service.List(ctx.Request.Context())
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.GetHumanReadableMessage(err),
				nil,
			)
		}

		page, err := renderer.EnquiriesPage(rows)
		if err != nil {
			logger.Error("Failed to render enquiries page", "error", err)
			return router.InternalServerErrorResult("Unable to render enquiries page")
		}

		return router.HTMLResult(http.StatusOK, page)
	}
}
