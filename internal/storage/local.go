package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	apperrors "procook-backend/internal/errors"
)

// LocalStore keeps assets under a directory served by the HTTP layer
type LocalStore struct {
	root    string
	baseURL string
}

var _ AssetStore = (*LocalStore)(nil)

// NewLocalStore creates root if needed
func NewLocalStore(root, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(filepath.Join(root, assetPrefix), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{root: root, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Root returns the directory assets are written to
func (s *LocalStore) Root() string {
	return s.root
}

// Save writes data to a fresh path
func (s *LocalStore) Save(ctx context.Context, data []byte, ext string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p, err := newAssetPath(ext)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(s.root, filepath.FromSlash(p)), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write asset: %w", err)
	}
	return p, nil
}

// Delete removes the asset at p
func (s *LocalStore) Delete(ctx context.Context, p string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cleaned, ok := cleanAssetPath(p)
	if !ok {
		return apperrors.ErrAssetNotFound
	}
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(cleaned)))
	if errors.Is(err, fs.ErrNotExist) {
		return apperrors.ErrAssetNotFound
	}
	return err
}

// URL returns the public URL of p
func (s *LocalStore) URL(p string) string {
	if p == "" {
		return ""
	}
	return s.baseURL + "/" + strings.TrimLeft(p, "/")
}
