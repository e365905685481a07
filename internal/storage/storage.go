package storage

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"procook-backend/internal/config"
	apperrors "procook-backend/internal/errors"

	"github.com/google/uuid"
)

// AssetStore persists recipe media and hands back a path the database can keep
type AssetStore interface {
	Save(ctx context.Context, data []byte, ext string) (string, error)
	Delete(ctx context.Context, path string) error
	URL(path string) string
}

const assetPrefix = "recipes"

// AllowedImageExtensions lists the accepted upload extensions
var AllowedImageExtensions = []string{"jpeg", "jpg", "png", "gif", "webp"}

// New builds the store selected by ASSET_STORE
func New(ctx context.Context, cfg *config.Config) (AssetStore, error) {
	switch cfg.AssetStore {
	case "local":
		return NewLocalStore(cfg.UploadDir, cfg.AssetBaseURL)
	case "s3":
		if cfg.S3Bucket == "" {
			return nil, apperrors.ErrS3BucketMissing
		}
		return NewS3Store(ctx, S3Options{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretKey,
			PublicURL:       cfg.S3PublicURL,
		})
	default:
		return nil, apperrors.ErrUnknownAssetStore
	}
}

// NormalizeExtension lowercases ext, strips a leading dot and reports whether it is allowed
func NormalizeExtension(ext string) (string, bool) {
	ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
	for _, allowed := range AllowedImageExtensions {
		if ext == allowed {
			return ext, true
		}
	}
	return ext, false
}

// IsImage reports whether data sniffs as one of the accepted image types
func IsImage(data []byte) bool {
	switch http.DetectContentType(data) {
	case "image/jpeg", "image/png", "image/gif", "image/webp":
		return true
	}
	return false
}

// ContentType maps an allowed extension to its MIME type
func ContentType(ext string) string {
	switch ext {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	}
	return "application/octet-stream"
}

// newAssetPath returns recipes/<unix>_<random>.<ext>
func newAssetPath(ext string) (string, error) {
	ext, ok := NormalizeExtension(ext)
	if !ok {
		return "", fmt.Errorf("unsupported image extension %q", ext)
	}
	name := fmt.Sprintf("%d_%s.%s", time.Now().Unix(), strings.ReplaceAll(uuid.NewString(), "-", ""), ext)
	return path.Join(assetPrefix, name), nil
}

// cleanAssetPath rejects paths that would escape the asset prefix
func cleanAssetPath(p string) (string, bool) {
	cleaned := path.Clean("/" + strings.TrimSpace(p))[1:]
	if cleaned == "" || !strings.HasPrefix(cleaned, assetPrefix+"/") {
		return "", false
	}
	return cleaned, true
}
