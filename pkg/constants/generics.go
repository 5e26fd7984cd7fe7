package constants

import "time"

// EnquiryDateFormat is the textual form used everywhere an enquiry date is
// parsed from a submitted form or rendered for display.
const EnquiryDateFormat = "2006-01-02"

// RFC 3339 date-time format string.
// Use this format for all date-time serialization and communication with external systems.
const RFC3339DateTimeFormat = "2006-01-02T15:04:05Z07:00"

// SessionCookieName is the cookie carrying the client-held admin session token.
const SessionCookieName = "enquiry_session"

// DefaultSessionTTLMinutes is how long an admin session lives without
// activity. Each authorized request renews the session for a full TTL.
const DefaultSessionTTLMinutes = 30

func DefaultSessionTTL() time.Duration {
	return time.Duration(DefaultSessionTTLMinutes) * time.Minute
}

// Default rate limiting configuration
const (
	// DefaultRateLimitRequests is the default number of requests allowed per time window
	DefaultRateLimitRequests = 100
	// DefaultRateLimitWindowMinutes is the default time window for rate limiting
	DefaultRateLimitWindowMinutes = 1
)

// DefaultRateLimitWindow returns the default rate limit window duration
func DefaultRateLimitWindow() time.Duration {
	return time.Duration(DefaultRateLimitWindowMinutes) * time.Minute
}
