// Package sqlite implements the SQLite sweep store: reconciled runs are
// persisted for later querying and JSONL export.
// Implements: prd002-sqlite-store R1, R2, R4;
//
//	docs/ARCHITECTURE § Sweep Store.
package sqlite

import (
	"database/sql"
	_ "embed"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/labbook/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// Store persists reconciled sweep metadata in a SQLite database under the
// configured data directory.
type Store struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
}

// NewStore creates a new sweep store instance. The store is not attached;
// call Attach with a Config to initialize.
func NewStore() *Store {
	return &Store{}
}

// Attach initializes the store with the given configuration. Creates the
// data directory if needed and applies the schema. Unlike a cache, the
// database is durable: attaching to an existing directory reopens the
// previously saved runs.
// Returns ErrAlreadyAttached if already attached.
func (s *Store) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, "labbook.db"))
	if err != nil {
		return err
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return err
	}

	s.db = db
	s.config = config
	s.attached = true
	return nil
}

// Detach releases the database connection. After Detach, all operations
// return ErrStoreDetached. Detach is idempotent.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil // idempotent
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return err
		}
		s.db = nil
	}
	s.attached = false
	return nil
}

// newUUID generates a UUID v7 string for run IDs.
func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails.
		return uuid.New().String()
	}
	return id.String()
}
