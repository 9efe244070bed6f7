package services

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
)

// AssetStore stores a binary payload under the given name and returns an
// opaque reference usable for later retrieval.
type AssetStore interface {
	Store(ctx context.Context, payload []byte, name string) (string, error)
}

// DiskAssetStore writes assets under a local directory and serves them by
// relative URL. Names are derived from the entity name, so two entities
// sharing a name overwrite each other's objects; this matches the upstream
// contract and is not deduplicated here.
type DiskAssetStore struct {
	dir string
}

func NewDiskAssetStore(dir string) *DiskAssetStore {
	return &DiskAssetStore{dir: dir}
}

func (s *DiskAssetStore) Store(ctx context.Context, payload []byte, name string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), payload, 0o644); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}

// uploadAsset decodes an optional base64 payload and stores it. An empty
// payload yields an empty reference, which is a valid state distinct from
// "stored but empty".
func uploadAsset(ctx context.Context, store AssetStore, encoded, name string) (string, error) {
	if encoded == "" {
		return "", nil
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", err
	}
	if len(raw) == 0 {
		return "", nil
	}
	return store.Store(ctx, raw, name)
}
