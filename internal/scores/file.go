package scores

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"

	"github.com/zhubert/guess/internal/errors"
)

// FileStore keeps the leaderboard as a JSON array in a single file. Every
// save rewrites the whole file.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a store backed by the file at path. The file does not
// need to exist.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Location returns the file path
func (f *FileStore) Location() string {
	return f.path
}

// Load reads and decodes the file.
func (f *FileStore) Load(_ context.Context) LoadResult {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return failedResult(StatusNotFound, errors.ScoresNotFound(f.path))
	}
	if err != nil {
		return failedResult(StatusIOFailure, errors.ScoresReadFailed(f.path, err))
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return failedResult(StatusCorrupt, errors.ScoresCorrupt(f.path, err))
	}
	for _, r := range records {
		if !r.valid() {
			return failedResult(StatusCorrupt, errors.ScoresCorrupt(f.path, errors.E("record missing required fields")))
		}
	}
	return okResult(records)
}

// Save writes records to a temp file next to the target and renames it into
// place so a failed write never truncates the existing leaderboard.
func (f *FileStore) Save(_ context.Context, records []Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if records == nil {
		records = []Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errors.ScoresSaveFailed(f.path, err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.ScoresSaveFailed(f.path, err)
	}

	tmp, err := os.CreateTemp(dir, ".scores-*.tmp")
	if err != nil {
		return errors.ScoresSaveFailed(f.path, err)
	}
	tmpPath := tmp.Name()
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.ScoresSaveFailed(f.path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.ScoresSaveFailed(f.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.ScoresSaveFailed(f.path, err)
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		os.Remove(tmpPath)
		return errors.ScoresSaveFailed(f.path, err)
	}
	return nil
}

// Clear removes the file. A missing file is not an error.
func (f *FileStore) Clear(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return errors.ScoresSaveFailed(f.path, err)
	}
	return nil
}

// Close is a no-op; the file is only open during Load and Save.
func (f *FileStore) Close() error {
	return nil
}
