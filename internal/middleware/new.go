package middleware

import (
	"catalog-assistant/pkg/log"
)

// Config configures the shared middlewares.
type Config struct {
	AllowedOrigins  []string // "*" allows any origin
	RateLimitPerMin int      // 0 disables rate limiting
}

type Middleware struct {
	l              log.Logger
	allowedOrigins []string
	limiter        *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:              l,
		allowedOrigins: cfg.AllowedOrigins,
	}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
