package config

import (
	"time"

	"github.com/akeren/enquiry-portal/internal/log"
	"github.com/akeren/enquiry-portal/pkg/constants"
)

// AdminConfig carries the single administrator credential pair used by the
// login endpoint. There is no user table; the portal has exactly one operator.
type AdminConfig struct {
	Username   string
	Password   string
	SessionTTL time.Duration
}

func NewAdminConfig(logger *log.Logger) *AdminConfig {
	cfg := &AdminConfig{
		Username:   sanitizeEnv(GetValueFromEnvironmentVariable("ADMIN_USERNAME", "")),
		Password:   sanitizeEnv(GetValueFromEnvironmentVariable("ADMIN_PASSWORD", "")),
		SessionTTL: constants.DefaultSessionTTL(),
	}

	if ttlStr := sanitizeEnv(GetValueFromEnvironmentVariable("SESSION_TTL", "")); ttlStr != "" {
		if parsed, err := time.ParseDuration(ttlStr); err == nil && parsed > 0 {
			cfg.SessionTTL = parsed
		} else {
			logger.Warn("Invalid SESSION_TTL; using default", "value", ttlStr)
		}
	}

	if cfg.Username == "" || cfg.Password == "" {
		logger.Warn("ADMIN_USERNAME or ADMIN_PASSWORD not set; admin login will reject all attempts")
	}

	return cfg
}
