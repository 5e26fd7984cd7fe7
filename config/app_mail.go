package config

import (
	"github.com/akeren/enquiry-portal/internal/log"
	"github.com/akeren/enquiry-portal/internal/mail"
	"github.com/akeren/enquiry-portal/pkg/circuitbreaker"
	"github.com/akeren/enquiry-portal/pkg/utils"
)

func NewMailConfig() *mail.SMTPConfig {
	return &mail.SMTPConfig{
		Host:      sanitizeEnv(GetValueFromEnvironmentVariable("SMTP_HOST", "")),
		Port:      utils.GetEnvInt("SMTP_PORT", 587),
		Username:  sanitizeEnv(GetValueFromEnvironmentVariable("SMTP_USERNAME", "")),
		Password:  sanitizeEnv(GetValueFromEnvironmentVariable("SMTP_PASSWORD", "")),
		FromEmail: sanitizeEnv(GetValueFromEnvironmentVariable("SMTP_FROM_EMAIL", "")),
		FromName:  sanitizeEnv(GetValueFromEnvironmentVariable("SMTP_FROM_NAME", "Enquiry Portal")),
		Enabled:   utils.GetEnvBool("SMTP_ENABLED", false),
	}
}

// NewMailDispatcher wires the SMTP dispatcher behind a circuit breaker so a
// dead relay fails fast instead of holding up form submissions.
func NewMailDispatcher(logger *log.Logger) mail.Dispatcher {
	cfg := NewMailConfig()

	if cfg.Enabled {
		logger.Info("Mail dispatcher configured",
			"host", cfg.Host,
			"port", cfg.Port,
			"from", cfg.FromEmail,
		)
	} else {
		logger.Info("Mail dispatch disabled (SMTP_ENABLED not true); confirmation emails will be logged only")
	}

	smtpDispatcher := mail.NewSMTPDispatcher(cfg, logger)
	breaker := circuitbreaker.NewCircuitBreaker(circuitbreaker.DefaultConfig())

	return mail.NewBreakerDispatcher(smtpDispatcher, breaker)
}
