package http

import (
	"time"

	"github.com/nats-io/nats.go"
	"github.com/samirrijal/dronegeo/internal/adapters/valkey"
	"github.com/samirrijal/dronegeo/internal/core/usecases"
)

// Dependencies holds all services needed by HTTP handlers.
// NATS and Cache are nil when the corresponding adapter is disabled.
type Dependencies struct {
	Positions *usecases.PositionService
	Settings  Settings
	NATS      *nats.Conn
	Cache     *valkey.Cache
}

// Settings carries the static values and limits used by the router.
type Settings struct {
	UID            string
	ExternalURL    string
	RequestTimeout time.Duration
	RateLimit      int // requests per minute per IP
}

func (s Settings) requestTimeout() time.Duration {
	if s.RequestTimeout <= 0 {
		return 5 * time.Second
	}
	return s.RequestTimeout
}

func (s Settings) rateLimit() int {
	if s.RateLimit <= 0 {
		return 600
	}
	return s.RateLimit
}
