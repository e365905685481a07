package storage

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"procook-backend/internal/config"
	apperrors "procook-backend/internal/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestNormalizeExtension(t *testing.T) {
	cases := map[string]bool{
		"jpg":   true,
		".JPEG": true,
		"png":   true,
		"gif":   true,
		"webp":  true,
		"svg":   false,
		"":      false,
		"exe":   false,
	}
	for in, want := range cases {
		_, ok := NormalizeExtension(in)
		assert.Equal(t, want, ok, in)
	}
}

func TestIsImage(t *testing.T) {
	assert.True(t, IsImage(pngHeader))
	assert.False(t, IsImage([]byte("plain text, not an image")))
}

func TestCleanAssetPath(t *testing.T) {
	p, ok := cleanAssetPath("recipes/1_abc.png")
	assert.True(t, ok)
	assert.Equal(t, "recipes/1_abc.png", p)

	_, ok = cleanAssetPath("../etc/passwd")
	assert.False(t, ok)

	_, ok = cleanAssetPath("recipes/../../secret")
	assert.False(t, ok)
}

func TestLocalStore(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocalStore(root, "/uploads/")
	require.NoError(t, err)
	ctx := context.Background()

	p, err := store.Save(ctx, pngHeader, "PNG")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(p, "recipes/"))
	assert.True(t, strings.HasSuffix(p, ".png"))

	data, err := os.ReadFile(filepath.Join(root, p))
	require.NoError(t, err)
	assert.Equal(t, pngHeader, data)
	assert.Equal(t, "/uploads/"+p, store.URL(p))

	require.NoError(t, store.Delete(ctx, p))
	assert.ErrorIs(t, store.Delete(ctx, p), apperrors.ErrAssetNotFound)

	_, err = store.Save(ctx, pngHeader, "exe")
	assert.Error(t, err)
}

type fakeS3 struct {
	objects   map[string][]byte
	putErr    error
	lastCType string
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(in.Body)
	f.objects[aws.ToString(in.Key)] = buf.Bytes()
	f.lastCType = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	key := aws.ToString(in.Key)
	if _, ok := f.objects[key]; !ok {
		return nil, &types.NoSuchKey{}
	}
	delete(f.objects, key)
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Store(t *testing.T) {
	client := &fakeS3{objects: map[string][]byte{}}
	store := NewS3StoreWithClient(client, "procook", "https://cdn.example.com/")
	ctx := context.Background()

	key, err := store.Save(ctx, pngHeader, "jpg")
	require.NoError(t, err)
	assert.Contains(t, client.objects, key)
	assert.Equal(t, "image/jpeg", client.lastCType)
	assert.Equal(t, "https://cdn.example.com/"+key, store.URL(key))

	require.NoError(t, store.Delete(ctx, key))
	assert.ErrorIs(t, store.Delete(ctx, key), apperrors.ErrAssetNotFound)

	client.putErr = errors.New("network down")
	_, err = store.Save(ctx, pngHeader, "png")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	store, err := New(ctx, &config.Config{AssetStore: "local", UploadDir: t.TempDir(), AssetBaseURL: "/uploads"})
	require.NoError(t, err)
	assert.IsType(t, &LocalStore{}, store)

	_, err = New(ctx, &config.Config{AssetStore: "s3"})
	assert.ErrorIs(t, err, apperrors.ErrS3BucketMissing)

	_, err = New(ctx, &config.Config{AssetStore: "ftp"})
	assert.True(t, apperrors.IsConfiguration(err))
}
