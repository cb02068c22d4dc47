package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ssargent/chasave/pkg/storage"
)

// writeFileAtomic writes data to a temporary file beside path and renames it
// over path, so a crash never leaves a half-written save. An existing file
// keeps its permission bits; perm applies only to new files.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("failed to set file mode: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// writeSave writes data to path honoring editor.atomic_writes.
func (a *app) writeSave(path string, data []byte) error {
	if a.cfg.Editor.AtomicWrites {
		return writeFileAtomic(path, data, 0644)
	}
	return os.WriteFile(path, data, 0644)
}

// openBackupStore opens the configured snapshot store. The caller closes it.
func (a *app) openBackupStore() (*storage.BackupStore, error) {
	if a.cfg.Backup.Dir == "" {
		return nil, errors.New("backup.dir is not configured")
	}
	store, err := container.GetBackupStoreFactory()(a.cfg.Backup.Dir, a.log)
	if err != nil {
		return nil, fmt.Errorf("failed to open backup store: %w", err)
	}
	return store, nil
}

// snapshotExisting stores the current contents of path before it is
// overwritten. It returns an empty id when backups are off or path does
// not exist yet.
func (a *app) snapshotExisting(path string) (string, error) {
	if !a.cfg.Backup.Enabled {
		return "", nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}

	store, err := a.openBackupStore()
	if err != nil {
		return "", err
	}
	defer store.Close()

	id, err := a.snapshotInto(store, path)
	if err != nil {
		return "", err
	}
	a.prune(store)
	return id, nil
}

func (a *app) snapshotInto(store *storage.BackupStore, path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	id, err := store.Create(absPath, data)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// prune enforces backup.keep. Failures are logged only; the new snapshot is
// already stored.
func (a *app) prune(store *storage.BackupStore) {
	if _, err := store.Prune(a.cfg.Backup.Keep); err != nil {
		a.log.Warn("failed to prune backups", zap.Error(err))
	}
}
