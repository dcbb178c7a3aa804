// Package ratelimit paces requests to remote services with a token bucket.
//
// Each connector that calls a remote API owns one Limiter and calls Wait
// before every request (one Sheets values.get, one DynamoDB scan page).
// Limits sit well below the services' published quotas. There is no retry
// here: a throttled request fails and its source is reported unavailable.
package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

// Service identifies a remote service for rate limiting purposes.
type Service string

const (
	// ServiceSheets is the Google Sheets API.
	ServiceSheets Service = "sheets"
	// ServiceDynamoDB is the DynamoDB API.
	ServiceDynamoDB Service = "dynamodb"
)

// Config holds rate limiting configuration for a service.
type Config struct {
	// RequestsPerSecond is the sustained rate limit.
	RequestsPerSecond float64
	// BurstSize is the maximum burst size.
	BurstSize int
}

// Defaults provides conservative limits for each service.
var Defaults = map[Service]Config{
	ServiceSheets:   {RequestsPerSecond: 1.0, BurstSize: 5},   // 60 reads/min/user quota
	ServiceDynamoDB: {RequestsPerSecond: 10.0, BurstSize: 10}, // Scan pages, on-demand tables
}

var fallback = Config{RequestsPerSecond: 5.0, BurstSize: 10}

// Limiter paces requests to one service.
type Limiter struct {
	limiter *rate.Limiter
	service Service
}

// New creates a limiter for the service using Defaults.
func New(service Service) *Limiter {
	cfg, ok := Defaults[service]
	if !ok {
		cfg = fallback
	}
	l := NewWithConfig(cfg)
	l.service = service
	return l
}

// NewWithConfig creates a limiter with custom configuration.
// Non-positive values fall back to the package defaults.
func NewWithConfig(cfg Config) *Limiter {
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = fallback.RequestsPerSecond
	}
	if cfg.BurstSize <= 0 {
		cfg.BurstSize = fallback.BurstSize
	}
	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize),
	}
}

// Unlimited returns a limiter that never blocks. Used in tests.
func Unlimited() *Limiter {
	return &Limiter{limiter: rate.NewLimiter(rate.Inf, 0)}
}

// Wait blocks until a request can be made or ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// Allow reports whether a request may be made right now without blocking.
func (l *Limiter) Allow() bool {
	return l.limiter.Allow()
}

// Service returns the service this limiter was created for.
func (l *Limiter) Service() Service {
	return l.service
}
