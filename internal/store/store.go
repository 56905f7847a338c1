package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"task-tracker/internal/errors"
)

// Store defines the interface for task persistence.
// The on-disk file is the single source of truth between invocations;
// implementations hold no in-process cache.
type Store interface {
	Load(ctx context.Context) ([]*Task, error)
	Save(ctx context.Context, tasks []*Task) error
	Path() string
}

// FileStore implements the Store interface over a single JSON file.
type FileStore struct {
	path     string
	dirPerm  os.FileMode
	filePerm os.FileMode
}

// Option configures a FileStore.
type Option func(*FileStore)

// WithPermissions overrides the directory and file permissions used on write.
func WithPermissions(dirPerm, filePerm os.FileMode) Option {
	return func(fs *FileStore) {
		fs.dirPerm = dirPerm
		fs.filePerm = filePerm
	}
}

// New creates a new file store backed by the given path.
func New(path string, opts ...Option) *FileStore {
	fs := &FileStore{
		path:     path,
		dirPerm:  0755,
		filePerm: 0644,
	}
	for _, opt := range opts {
		opt(fs)
	}
	return fs
}

// Path returns the path of the backing file.
func (fs *FileStore) Path() string {
	return fs.path
}

// Load reads the full task collection from the backing file.
// A missing file yields an empty collection and lazily creates the
// containing directory. A present but unreadable or malformed file is a
// corrupt-store error; it is never silently discarded.
func (fs *FileStore) Load(ctx context.Context) ([]*Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			if mkErr := os.MkdirAll(filepath.Dir(fs.path), fs.dirPerm); mkErr != nil {
				return nil, errors.NewStorageWriteError("create store directory", mkErr)
			}
			return []*Task{}, nil
		}
		return nil, errors.NewCorruptStoreError(fs.path, err)
	}

	if err := validateAgainstSchema(data); err != nil {
		return nil, errors.NewCorruptStoreError(fs.path, err)
	}

	var tasks []*Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, errors.NewCorruptStoreError(fs.path, err)
	}
	return tasks, nil
}

// Save writes the full task collection, replacing prior content.
// The collection is written to a temporary file in the same directory and
// renamed over the target, so an interrupted write never leaves the store
// partially written.
func (fs *FileStore) Save(ctx context.Context, tasks []*Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(fs.path), fs.dirPerm); err != nil {
		return errors.NewStorageWriteError("create store directory", err)
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return errors.NewStorageWriteError("encode tasks", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(fs.path), filepath.Base(fs.path)+".tmp-*")
	if err != nil {
		return errors.NewStorageWriteError("create temporary file", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.NewStorageWriteError("write tasks", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.NewStorageWriteError("sync tasks", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.NewStorageWriteError("close temporary file", err)
	}
	if err := os.Chmod(tmpPath, fs.filePerm); err != nil {
		os.Remove(tmpPath)
		return errors.NewStorageWriteError("set store permissions", err)
	}
	if err := os.Rename(tmpPath, fs.path); err != nil {
		os.Remove(tmpPath)
		return errors.NewStorageWriteError("replace store file", err)
	}
	return nil
}

// NextID returns the next available task ID: one past the highest id in
// the collection, or 1 when the collection is empty. IDs are never reused
// while higher ids remain.
func NextID(tasks []*Task) int64 {
	var max int64
	for _, t := range tasks {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}

// String identifies the store for debug output.
func (fs *FileStore) String() string {
	return fmt.Sprintf("file store at %s", fs.path)
}
