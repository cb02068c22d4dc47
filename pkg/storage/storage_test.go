package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *BackupStore {
	t.Helper()
	store, err := NewBackupStore(filepath.Join(t.TempDir(), "backups"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSnapshot_EncodeDecode(t *testing.T) {
	id := ksuid.New()
	snap := &Snapshot{
		ID:        id,
		Path:      "/saves/0.cha",
		Timestamp: 1719043200000000000,
		Data:      []byte{0x03, 0x00, 0x00, 0x00, 0xDE, 0xAD},
	}

	encoded := encodeSnapshot(snap)
	assert.Len(t, encoded, snapshotHeaderSize+len(snap.Path)+len(snap.Data))
	assert.NotZero(t, snap.CRC32)

	decoded, err := decodeSnapshot(id, encoded)
	require.NoError(t, err)
	assert.Equal(t, snap.Path, decoded.Path)
	assert.Equal(t, snap.Data, decoded.Data)
	assert.Equal(t, snap.Timestamp, decoded.Timestamp)
	assert.Equal(t, snap.CRC32, decoded.CRC32)

	encoded[len(encoded)-1] ^= 0xFF
	assert.Equal(t, byte(0xAD), decoded.Data[5], "decoded data must not alias the input")
}

func TestSnapshot_DecodeCorruption(t *testing.T) {
	id := ksuid.New()
	encoded := encodeSnapshot(&Snapshot{Path: "a.cha", Data: []byte("payload")})

	t.Run("short header", func(t *testing.T) {
		_, err := decodeSnapshot(id, encoded[:10])
		require.Error(t, err)
		assert.Contains(t, err.Error(), "too short")
	})

	t.Run("size mismatch", func(t *testing.T) {
		_, err := decodeSnapshot(id, encoded[:len(encoded)-1])
		require.Error(t, err)
		assert.Contains(t, err.Error(), "size mismatch")
	})

	t.Run("flipped payload bit", func(t *testing.T) {
		corrupt := append([]byte(nil), encoded...)
		corrupt[len(corrupt)-2] ^= 0x01
		_, err := decodeSnapshot(id, corrupt)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CRC32 mismatch")
	})
}

func TestBackupStore_CreateRead(t *testing.T) {
	store := newTestStore(t)
	data := []byte{1, 2, 3, 4, 5}

	id, err := store.Create("/saves/0.cha", data)
	require.NoError(t, err)
	assert.NotEqual(t, ksuid.Nil, id)

	snap, err := store.Read(id)
	require.NoError(t, err)
	assert.Equal(t, id, snap.ID)
	assert.Equal(t, "/saves/0.cha", snap.Path)
	assert.Equal(t, data, snap.Data)
	assert.False(t, snap.Time().IsZero())

	_, err = store.Read(ksuid.New())
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestBackupStore_ListAndPrune(t *testing.T) {
	store := newTestStore(t)

	var ids []ksuid.KSUID
	for i := 0; i < 5; i++ {
		id, err := store.Create("0.cha", []byte{byte(i)})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	snaps, err := store.List()
	require.NoError(t, err)
	require.Len(t, snaps, 5)
	for i, snap := range snaps {
		assert.Equal(t, ids[i], snap.ID)
		assert.Equal(t, []byte{byte(i)}, snap.Data)
	}

	deleted, err := store.Prune(2)
	require.NoError(t, err)
	assert.Equal(t, 3, deleted)

	snaps, err = store.List()
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	assert.Equal(t, ids[3], snaps[0].ID)
	assert.Equal(t, ids[4], snaps[1].ID)

	deleted, err = store.Prune(0)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestBackupStore_Restore(t *testing.T) {
	store := newTestStore(t)
	dir := t.TempDir()
	original := filepath.Join(dir, "0.cha")
	data := bytes.Repeat([]byte{0xAB}, 64)

	id, err := store.Create(original, data)
	require.NoError(t, err)

	t.Run("to original path", func(t *testing.T) {
		path, err := store.Restore(id, "", nil)
		require.NoError(t, err)
		assert.Equal(t, original, path)

		got, err := os.ReadFile(original)
		require.NoError(t, err)
		assert.Equal(t, data, got)
	})

	t.Run("to explicit path", func(t *testing.T) {
		dst := filepath.Join(dir, "restored.cha")
		path, err := store.Restore(id, dst, nil)
		require.NoError(t, err)
		assert.Equal(t, dst, path)
		assert.FileExists(t, dst)
	})

	t.Run("custom writer", func(t *testing.T) {
		var gotPath string
		var gotData []byte
		path, err := store.Restore(id, "", func(p string, d []byte) error {
			gotPath, gotData = p, d
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, original, path)
		assert.Equal(t, original, gotPath)
		assert.Equal(t, data, gotData)
	})

	t.Run("writer failure", func(t *testing.T) {
		_, err := store.Restore(id, "", func(string, []byte) error {
			return os.ErrPermission
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrPermission)
		assert.Contains(t, err.Error(), "failed to restore snapshot")
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := store.Restore(ksuid.New(), "", nil)
		assert.ErrorIs(t, err, ErrSnapshotNotFound)
	})
}

func TestBackupStore_Delete(t *testing.T) {
	store := newTestStore(t)
	id, err := store.Create("0.cha", []byte("x"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(id))
	_, err = store.Read(id)
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}
