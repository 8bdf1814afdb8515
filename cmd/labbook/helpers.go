// Shared helpers for labbook commands.
package main

import (
	"fmt"

	"github.com/mesh-intelligence/labbook/internal/sqlite"
	"github.com/mesh-intelligence/labbook/pkg/types"
)

// openStore attaches the sweep store using the --db flag when set, the
// configured data_dir otherwise, and the default data directory as a last
// resort. Callers must Detach the returned store.
func openStore(dbFlag string) (*sqlite.Store, error) {
	dataDir := dbFlag
	if dataDir == "" {
		cfg, err := loadConfig(resolveConfigDir())
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		dataDir = cfg.GetString(cfgKeyDataDir)
	}
	if dataDir == "" {
		dataDir = defaultDataDir
	}

	store := sqlite.NewStore()
	if err := store.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dataDir}); err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}
	return store, nil
}
