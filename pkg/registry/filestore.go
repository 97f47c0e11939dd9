package registry

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/haleta-e/lost-and-found-manager/pkg/codec"
)

// Store moves snapshots between the registry and durable storage.
type Store interface {
	// Load returns the persisted snapshot. Implementations decide how to
	// treat missing or unreadable state; FileStore starts empty.
	Load() (codec.Snapshot, error)

	// Save replaces the persisted snapshot wholesale.
	Save(codec.Snapshot) error
}

// FileStore keeps the collection in a single binary file. Saves write
// the whole file through a temporary sibling and rename it into place,
// so a crash mid-write leaves the previous state intact rather than a
// truncated file.
type FileStore struct {
	path string
}

// NewFileStore creates a store at the given file path, creating parent
// directories as needed.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("registry: store path is empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("registry: init store directory %s: %w", dir, err)
		}
	}
	return &FileStore{path: path}, nil
}

// Path returns the location of the backing file.
func (fs *FileStore) Path() string {
	return fs.path
}

// Load reads the snapshot from disk. A missing file is a fresh start; a
// file that cannot be read or decoded is discarded the same way, with a
// warning, because there is no partial recovery for the format. Either
// way the collection starts empty with the id generator at InitialID.
func (fs *FileStore) Load() (codec.Snapshot, error) {
	f, err := os.Open(fs.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Debug("registry: no store file, starting empty", "path", fs.path)
		} else {
			slog.Warn("registry: store unreadable, starting empty", "path", fs.path, "err", err)
		}
		return emptySnapshot(), nil
	}
	defer f.Close()

	snap, err := codec.Decode(f)
	if err != nil {
		slog.Warn("registry: store corrupt, starting empty", "path", fs.path, "err", err)
		return emptySnapshot(), nil
	}
	return snap, nil
}

// Save writes the snapshot atomically via a temporary file.
func (fs *FileStore) Save(snap codec.Snapshot) error {
	var buf bytes.Buffer
	if err := codec.Encode(&buf, snap); err != nil {
		return fmt.Errorf("registry: encode snapshot: %w", err)
	}

	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("registry: write temp file: %w", err)
	}
	if err := os.Rename(tmp, fs.path); err != nil {
		_ = os.Remove(tmp) // best-effort cleanup
		return fmt.Errorf("registry: atomic rename %s: %w", fs.path, err)
	}
	return nil
}

func emptySnapshot() codec.Snapshot {
	return codec.Snapshot{NextID: InitialID}
}
