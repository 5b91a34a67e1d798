// Package database owns the document stores submissions are written to.
//
// Every driver implements Store. The driver is picked once at startup
// from config and the resulting handle is shared by all requests, so
// each implementation must be safe for concurrent use.
//
// Drivers:
//   - memory: process-local, the default for development
//   - postgres: pgx connection pool, namespace maps to a schema
//   - surrealdb: SurrealDB SDK over a websocket connection
package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/contact-form/internal/config"
	loggerConfig "github.com/deppfellow/contact-form/internal/logger"
	"github.com/deppfellow/contact-form/internal/model"
	"github.com/rs/zerolog"
)

// DatabasePingTimeout is the number of seconds a startup ping may take
// before the store is considered unreachable.
const DatabasePingTimeout = 10

// ErrClosed is returned by stores used after Close.
var ErrClosed = errors.New("store is closed")

// Store creates documents inside a fixed namespace/database pair.
type Store interface {
	// Create inserts content into collection and returns the records the
	// backend reports as created. A healthy backend returns exactly one.
	Create(ctx context.Context, collection string, content model.FormData) ([]model.Record, error)
	Ping(ctx context.Context) error
	Close() error
	// Name is the driver name, used in logs and health checks.
	Name() string
}

// Open connects the driver selected by cfg.Store.Driver and makes sure
// the configured namespace/database is selected before returning.
func Open(ctx context.Context, cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (Store, error) {
	switch cfg.Store.Driver {
	case config.DriverMemory:
		logger.Info().
			Str("namespace", cfg.Store.Namespace).
			Str("database", cfg.Store.Database).
			Msg("using in-memory store")
		return NewMemoryStore(cfg.Store.Namespace, cfg.Store.Database), nil
	case config.DriverPostgres:
		return NewPostgres(ctx, cfg, logger, loggerService)
	case config.DriverSurrealDB:
		return NewSurreal(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func recordID(collection string, id any) string {
	return fmt.Sprintf("%s:%v", collection, id)
}
