package database

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/deppfellow/contact-form/internal/config"
	loggerConfig "github.com/deppfellow/contact-form/internal/logger"
	"github.com/deppfellow/contact-form/internal/model"
	"github.com/deppfellow/contact-form/internal/sqlerr"
	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/newrelic/go-agent/v3/integrations/nrpgx5"
	"github.com/rs/zerolog"
)

// pgxPool is the subset of *pgxpool.Pool the store uses.
type pgxPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Ping(ctx context.Context) error
	Close()
}

// PostgresStore maps the store namespace to a Postgres schema and each
// collection to a table in it. Tables are created on first use.
type PostgresStore struct {
	pool   pgxPool
	schema string
	log    *zerolog.Logger

	mu      sync.Mutex
	ensured map[string]bool
}

// multiTracer lets pgx run several tracers from its single Tracer slot:
// the New Relic tracer and the local SQL trace log.
type multiTracer struct {
	tracers []any
}

func (mt *multiTracer) TraceQueryStart(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	for _, tracer := range mt.tracers {
		if t, ok := tracer.(interface {
			TraceQueryStart(context.Context, *pgx.Conn, pgx.TraceQueryStartData) context.Context
		}); ok {
			ctx = t.TraceQueryStart(ctx, conn, data)
		}
	}
	return ctx
}

func (mt *multiTracer) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	for _, tracer := range mt.tracers {
		if t, ok := tracer.(interface {
			TraceQueryEnd(context.Context, *pgx.Conn, pgx.TraceQueryEndData)
		}); ok {
			t.TraceQueryEnd(ctx, conn, data)
		}
	}
}

// DSN builds a postgres:// connection URL, escaping the password.
func DSN(cfg config.DatabaseConfig) string {
	hostPort := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		cfg.User,
		url.QueryEscape(cfg.Password),
		hostPort,
		cfg.Name,
		cfg.SSLMode,
	)
}

// NewPostgres creates an instrumented connection pool, pings it and
// creates the namespace schema if it is missing.
//
// New Relic tracing is attached when the logger service has an app;
// SQL statements are logged through zerolog only in the local env.
func NewPostgres(ctx context.Context, cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*PostgresStore, error) {
	pgxPoolConfig, err := pgxpool.ParseConfig(DSN(cfg.Database))
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgx pool config: %w", err)
	}

	if cfg.Database.MaxOpenConns > 0 {
		pgxPoolConfig.MaxConns = int32(cfg.Database.MaxOpenConns)
	}
	if cfg.Database.MaxIdleConns > 0 {
		pgxPoolConfig.MinConns = int32(cfg.Database.MaxIdleConns)
	}
	if cfg.Database.ConnMaxLifetime > 0 {
		pgxPoolConfig.MaxConnLifetime = time.Duration(cfg.Database.ConnMaxLifetime) * time.Second
	}
	if cfg.Database.ConnMaxIdleTime > 0 {
		pgxPoolConfig.MaxConnIdleTime = time.Duration(cfg.Database.ConnMaxIdleTime) * time.Second
	}

	if loggerService != nil && loggerService.GetApplication() != nil {
		pgxPoolConfig.ConnConfig.Tracer = nrpgx5.NewTracer()
	}

	if cfg.Primary.Env == "local" {
		globalLevel := logger.GetLevel()
		localTracer := &tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(loggerConfig.NewPgxLogger(globalLevel)),
			LogLevel: tracelog.LogLevel(loggerConfig.GetPgxTraceLogLevel(globalLevel)),
		}

		if pgxPoolConfig.ConnConfig.Tracer != nil {
			pgxPoolConfig.ConnConfig.Tracer = &multiTracer{
				tracers: []any{pgxPoolConfig.ConnConfig.Tracer, localTracer},
			}
		} else {
			pgxPoolConfig.ConnConfig.Tracer = localTracer
		}
	}

	pool, err := pgxpool.NewWithConfig(ctx, pgxPoolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	store := newPostgresStore(pool, cfg.Store.Namespace, logger)

	pingCtx, cancel := context.WithTimeout(ctx, DatabasePingTimeout*time.Second)
	defer cancel()
	if err = pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err = store.ensureSchema(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info().
		Str("schema", cfg.Store.Namespace).
		Str("database", cfg.Database.Name).
		Msg("connected to the database")

	return store, nil
}

func newPostgresStore(pool pgxPool, schema string, logger *zerolog.Logger) *PostgresStore {
	return &PostgresStore{
		pool:    pool,
		schema:  schema,
		log:     logger,
		ensured: make(map[string]bool),
	}
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	stmt := fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", pgx.Identifier{s.schema}.Sanitize())
	if _, err := s.pool.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("failed to select namespace %q: %w", s.schema, sqlerr.HandleError(err))
	}
	return nil
}

func (s *PostgresStore) ensureCollection(ctx context.Context, collection string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ensured[collection] {
		return nil
	}

	stmt := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	message TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`, pgx.Identifier{s.schema, collection}.Sanitize())

	if _, err := s.pool.Exec(ctx, stmt); err != nil {
		return sqlerr.HandleError(err)
	}

	s.ensured[collection] = true
	s.log.Debug().Str("collection", collection).Msg("collection ready")
	return nil
}

func (s *PostgresStore) Create(ctx context.Context, collection string, content model.FormData) ([]model.Record, error) {
	if err := s.ensureCollection(ctx, collection); err != nil {
		return nil, err
	}

	stmt := fmt.Sprintf(
		"INSERT INTO %s (name, email, message) VALUES ($1, $2, $3) RETURNING id::text",
		pgx.Identifier{s.schema, collection}.Sanitize(),
	)

	rows, err := s.pool.Query(ctx, stmt, content.Name, content.Email, content.Message)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	records := make([]model.Record, 0, len(ids))
	for _, id := range ids {
		records = append(records, model.Record{ID: recordID(collection, id)})
	}
	return records, nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PostgresStore) Close() error {
	s.log.Info().Msg("closing database connection pool")
	s.pool.Close()
	return nil
}

func (s *PostgresStore) Name() string {
	return config.DriverPostgres
}
