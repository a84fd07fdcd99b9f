package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"eventoslisting/internal/domain"
)

type localStore struct {
	dir          string
	publicPrefix string
}

// NewLocalStore returns a BlobStore that writes files to dir and serves them
// under publicPrefix (e.g. "/uploads"). The directory is created if missing.
func NewLocalStore(dir, publicPrefix string) (domain.BlobStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &localStore{
		dir:          dir,
		publicPrefix: strings.TrimSuffix(publicPrefix, "/"),
	}, nil
}

func (s *localStore) Store(ctx context.Context, filename string, data []byte) (string, error) {
	ext := filepath.Ext(filename)
	name := uuid.NewString() + ext
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return s.publicPrefix + "/" + name, nil
}

// Remove deletes the file behind a previously returned URL. URLs outside the
// public prefix and already-missing files are ignored.
func (s *localStore) Remove(ctx context.Context, url string) error {
	if !strings.HasPrefix(url, s.publicPrefix+"/") {
		return nil
	}
	name := filepath.Base(strings.TrimPrefix(url, s.publicPrefix+"/"))
	if name == "." || name == ".." || name == "/" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}
