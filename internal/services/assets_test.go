package services

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiskAssetStoreWritesAndReferences(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskAssetStore(dir)

	ref, err := store.Store(context.Background(), []byte("photo bytes"), "JoeuserProfilePicture")
	require.NoError(t, err)
	require.Equal(t, "/uploads/JoeuserProfilePicture", ref)

	data, err := os.ReadFile(filepath.Join(dir, "JoeuserProfilePicture"))
	require.NoError(t, err)
	require.Equal(t, []byte("photo bytes"), data)
}

func TestDiskAssetStoreOverwritesCollidingNames(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskAssetStore(dir)

	_, err := store.Store(context.Background(), []byte("first"), "JoeuserIdCard")
	require.NoError(t, err)
	_, err = store.Store(context.Background(), []byte("second"), "JoeuserIdCard")
	require.NoError(t, err)

	// Two entities sharing a name share an object; last write wins.
	data, err := os.ReadFile(filepath.Join(dir, "JoeuserIdCard"))
	require.NoError(t, err)
	require.Equal(t, []byte("second"), data)
}

func TestUploadAssetEmptyPayloadYieldsEmptyReference(t *testing.T) {
	store := newRecordingAssetStore()

	ref, err := uploadAsset(context.Background(), store, "", "JoeuserIdCard")
	require.NoError(t, err)
	require.Empty(t, ref)
	require.Empty(t, store.stored)
}

func TestUploadAssetRejectsInvalidBase64(t *testing.T) {
	store := newRecordingAssetStore()

	_, err := uploadAsset(context.Background(), store, "not-base64!!!", "JoeuserIdCard")
	require.Error(t, err)
	require.Empty(t, store.stored)
}

func TestUploadAssetStoresDecodedPayload(t *testing.T) {
	store := newRecordingAssetStore()
	encoded := base64.StdEncoding.EncodeToString([]byte("doc"))

	ref, err := uploadAsset(context.Background(), store, encoded, "JoeuserIdCard")
	require.NoError(t, err)
	require.Equal(t, "/uploads/JoeuserIdCard", ref)
	require.Equal(t, []byte("doc"), store.stored["JoeuserIdCard"])
}
