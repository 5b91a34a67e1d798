package database

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/deppfellow/contact-form/internal/config"
	"github.com/deppfellow/contact-form/internal/model"
	"github.com/rs/zerolog"
	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

type surrealSubmission struct {
	ID      *models.RecordID `json:"id,omitempty"`
	Name    string           `json:"name"`
	Email   string           `json:"email"`
	Message string           `json:"message"`
}

// SurrealStore writes documents through a single SurrealDB connection.
// The SDK connection is not shared across goroutines without the mutex.
type SurrealStore struct {
	mu     sync.Mutex
	db     *surrealdb.DB
	log    *zerolog.Logger
	closed bool
}

// NewSurreal connects, signs in when credentials are configured and
// selects the namespace/database every later call runs against.
func NewSurreal(cfg *config.Config, logger *zerolog.Logger) (*SurrealStore, error) {
	db, err := surrealdb.New(cfg.Surreal.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to surrealdb: %w", err)
	}

	if cfg.Surreal.Username != "" {
		if _, err = db.SignIn(&surrealdb.Auth{
			Username: cfg.Surreal.Username,
			Password: cfg.Surreal.Password,
		}); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to sign in to surrealdb: %w", err)
		}
	}

	if err = db.Use(cfg.Store.Namespace, cfg.Store.Database); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to select namespace %q database %q: %w", cfg.Store.Namespace, cfg.Store.Database, err)
	}

	logger.Info().
		Str("url", cfg.Surreal.URL).
		Str("namespace", cfg.Store.Namespace).
		Str("database", cfg.Store.Database).
		Msg("connected to surrealdb")

	return &SurrealStore{db: db, log: logger}, nil
}

func (s *SurrealStore) Create(ctx context.Context, collection string, content model.FormData) ([]model.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrClosed
	}

	created, err := surrealdb.Create[surrealSubmission](s.db, models.Table(collection), surrealSubmission{
		Name:    content.Name,
		Email:   content.Email,
		Message: content.Message,
	})
	if err != nil {
		return nil, err
	}

	// No records is not an error here; the service answers it with
	// "Failed to store submission".
	if created == nil || created.ID == nil {
		return nil, nil
	}

	return []model.Record{{ID: surrealRecordID(created.ID)}}, nil
}

// surrealRecordID renders a SurrealDB record id as table:id.
func surrealRecordID(id *models.RecordID) string {
	return recordID(id.Table, id.ID)
}

func (s *SurrealStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	if _, err := surrealdb.Query[bool](s.db, "RETURN true", nil); err != nil {
		return errors.Join(errors.New("surrealdb ping failed"), err)
	}
	return nil
}

func (s *SurrealStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.log.Info().Msg("closing surrealdb connection")
	return s.db.Close()
}

func (s *SurrealStore) Name() string {
	return config.DriverSurrealDB
}
