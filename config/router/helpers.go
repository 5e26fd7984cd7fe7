package router

import (
	"net/http"

	"github.com/akeren/enquiry-portal/internal/log"
)

func GetLogger(ctx *RequestContext) *log.Logger {
	if logger := ctx.Request.Context().Value(log.LoggerKeyForContext); logger != nil {
		if l, ok := logger.(*log.Logger); ok {
			return l
		}
	}

	baseLogger := log.NewLoggerWithJSONOutput()
	return baseLogger.WithCorrelationID(ctx.Request.Context())
}

func OKResult(data any, message string) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusOK,
		Data:       data,
		Message:    message,
	}
}

// HTMLResult renders body as text/html with the given status.
func HTMLResult(statusCode int, body string) *ServiceResult {
	return &ServiceResult{
		StatusCode:  statusCode,
		Data:        body,
		contentType: "text/html; charset=utf-8",
	}
}

// PlainTextResult renders body as text/plain with the given status.
func PlainTextResult(statusCode int, body string) *ServiceResult {
	return &ServiceResult{
		StatusCode:  statusCode,
		Data:        body,
		contentType: "text/plain; charset=utf-8",
	}
}

// RedirectResult issues a 302 to location.
func RedirectResult(location string) *ServiceResult {
	return &ServiceResult{
		StatusCode:  http.StatusFound,
		redirectURL: location,
	}
}

func TooManyRequestsResult(data RateLimitResponse) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusTooManyRequests,
		Data:       data,
		Message:    "Too Many Requests",
	}
}

func BadRequestResult(message string, payload any) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusBadRequest,
		Data:       payload,
		Message:    message,
	}
}

func UnauthorizedResult(message string) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusUnauthorized,
		Data:       nil,
		Message:    message,
	}
}

func NotFoundResult(message string) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusNotFound,
		Data:       nil,
		Message:    message,
	}
}

func InternalServerErrorResult(message string) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusInternalServerError,
		Data:       nil,
		Message:    message,
	}
}

func ErrorResult(statusCode int, message string, data any) *ServiceResult {
	return &ServiceResult{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
	}
}
