package config

import (
	"os"
	"path/filepath"

	"task-tracker/internal/store"
)

// CreateStore creates a file store instance using the configuration system
func CreateStore(config *Config) store.Store {
	return store.New(
		config.GetStorePath(),
		store.WithPermissions(
			os.FileMode(config.Storage.DirPermissions),
			os.FileMode(config.Storage.FilePermissions),
		),
	)
}

// CreateTestStore creates a store backed by a throwaway directory for testing
func CreateTestStore(dir string) store.Store {
	return store.New(filepath.Join(dir, "tasks.json"))
}
