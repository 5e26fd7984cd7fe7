package config

import (
	"fmt"
	"os"
	"time"

	"github.com/akeren/enquiry-portal/internal/log"
	"github.com/getsentry/sentry-go"
)

// SetupSentry initializes error reporting when SENTRY_DSN is set. The returned
// flush function must run before the process exits so buffered events are not lost.
func SetupSentry(logger *log.Logger) (func(), error) {
	dsn := sanitizeEnv(GetValueFromEnvironmentVariable("SENTRY_DSN", ""))
	if dsn == "" {
		logger.Info("Sentry is not configured (SENTRY_DSN not set)")
		return nil, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: os.Getenv(AppEnvKey),
		Release:     "enquiry-portal@" + GetValueFromEnvironmentVariable("APP_VERSION", "dev"),
	})
	if err != nil {
		return nil, fmt.Errorf("sentry initialization failed: %w", err)
	}

	logger.Info("Sentry error reporting enabled")

	return func() {
		sentry.Flush(2 * time.Second)
	}, nil
}

// CaptureError reports err to Sentry with extra context. It is a no-op when
// Sentry was never initialized.
func CaptureError(err error, context map[string]interface{}) {
	if err == nil {
		return
	}

	if hub := sentry.CurrentHub(); hub != nil {
		hub.WithScope(func(scope *sentry.Scope) {
			for k, v := range context {
				scope.SetExtra(k, v)
			}
			hub.CaptureException(err)
		})
	}
}
