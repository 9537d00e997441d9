package middleware

import (
	"smart-todo/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares.
type Middleware struct {
	l         log.Logger
	jwtSecret []byte
	chatRL    *userRateLimiter
}

// Config holds middleware construction options.
type Config struct {
	JWTSecret           string
	ChatRateLimitPerMin int
}

// New creates the middleware bundle.
func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:         l,
		jwtSecret: []byte(cfg.JWTSecret),
		chatRL:    newUserRateLimiter(cfg.ChatRateLimitPerMin),
	}
}
