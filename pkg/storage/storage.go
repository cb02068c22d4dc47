package storage

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"
	"go.uber.org/zap"
)

// ErrSnapshotNotFound is returned when no snapshot has the requested id.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// BackupStore keeps snapshots of save files in a pebble database keyed by ksuid.
type BackupStore struct {
	db  *pebble.DB
	log *zap.Logger
}

func NewBackupStore(path string, log *zap.Logger) (*BackupStore, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(path, 0750); err != nil {
		return nil, fmt.Errorf("failed to create backup dir: %w", err)
	}
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open backup store: %w", err)
	}
	return &BackupStore{db: db, log: log}, nil
}

// Create stores data as a new snapshot of path.
func (s *BackupStore) Create(path string, data []byte) (ksuid.KSUID, error) {
	id := ksuid.New()
	snap := &Snapshot{
		ID:        id,
		Path:      path,
		Timestamp: uint64(time.Now().UnixNano()),
		Data:      data,
	}
	if err := s.db.Set(id.Bytes(), encodeSnapshot(snap), pebble.Sync); err != nil {
		return ksuid.Nil, fmt.Errorf("failed to store snapshot: %w", err)
	}
	s.log.Debug("snapshot created",
		zap.String("id", id.String()),
		zap.String("path", path),
		zap.Int("size", len(data)),
	)
	return id, nil
}

func (s *BackupStore) Read(id ksuid.KSUID) (*Snapshot, error) {
	data, closer, err := s.db.Get(id.Bytes())
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	return decodeSnapshot(id, data)
}

// List returns every snapshot, oldest first. Snapshots that fail
// validation are logged and skipped.
func (s *BackupStore) List() ([]*Snapshot, error) {
	iter, err := s.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var out []*Snapshot
	for iter.First(); iter.Valid(); iter.Next() {
		id, err := ksuid.FromBytes(iter.Key())
		if err != nil {
			s.log.Warn("skipping foreign key in backup store", zap.Binary("key", iter.Key()))
			continue
		}
		snap, err := decodeSnapshot(id, iter.Value())
		if err != nil {
			s.log.Warn("skipping corrupt snapshot", zap.String("id", id.String()), zap.Error(err))
			continue
		}
		out = append(out, snap)
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	// ksuids only order by second
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp < out[j].Timestamp
	})
	return out, nil
}

// WriteFunc writes data to path. Restore uses it so callers control how a
// save is replaced.
type WriteFunc func(path string, data []byte) error

func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

// Restore writes the snapshot's bytes to dst, or to the original path when
// dst is empty. A nil write falls back to os.WriteFile.
func (s *BackupStore) Restore(id ksuid.KSUID, dst string, write WriteFunc) (string, error) {
	snap, err := s.Read(id)
	if err != nil {
		return "", err
	}
	if dst == "" {
		dst = snap.Path
	}
	if write == nil {
		write = writeFile
	}
	if err := write(dst, snap.Data); err != nil {
		return "", fmt.Errorf("failed to restore snapshot: %w", err)
	}
	s.log.Info("snapshot restored", zap.String("id", id.String()), zap.String("path", dst))
	return dst, nil
}

func (s *BackupStore) Delete(id ksuid.KSUID) error {
	return s.db.Delete(id.Bytes(), pebble.Sync)
}

// Prune deletes the oldest snapshots so that at most keep remain.
// A keep of zero or less disables pruning.
func (s *BackupStore) Prune(keep int) (int, error) {
	if keep <= 0 {
		return 0, nil
	}
	snaps, err := s.List()
	if err != nil {
		return 0, err
	}
	excess := len(snaps) - keep
	if excess <= 0 {
		return 0, nil
	}
	batch := s.db.NewBatch()
	defer batch.Close()
	for _, snap := range snaps[:excess] {
		if err := batch.Delete(snap.ID.Bytes(), nil); err != nil {
			return 0, err
		}
	}
	if err := batch.Commit(pebble.Sync); err != nil {
		return 0, fmt.Errorf("failed to prune snapshots: %w", err)
	}
	s.log.Debug("snapshots pruned", zap.Int("deleted", excess), zap.Int("kept", keep))
	return excess, nil
}

func (s *BackupStore) Close() error {
	return s.db.Close()
}
