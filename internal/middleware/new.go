package middleware

import (
	"gantt-chart-generator/config"
	"gantt-chart-generator/pkg/log"
)

type Middleware struct {
	l           log.Logger
	maxBody     int64
	rateLimiter *rateLimiter
}

// New builds the shared middleware set. A disabled or zero rate limit
// turns RateLimit into a pass-through.
func New(l log.Logger, httpCfg config.HTTPServerConfig, rlCfg config.RateLimitConfig) Middleware {
	m := Middleware{
		l:       l,
		maxBody: httpCfg.MaxBodyBytes,
	}
	if rlCfg.Enabled && rlCfg.RequestsPerMin > 0 {
		m.rateLimiter = newRateLimiter(rlCfg.RequestsPerMin, rlCfg.Burst)
	}
	return m
}
