package storage

import (
	"errors"
	"fmt"
)

const (
	// BackupSuffix separates a key from its rotation number.
	BackupSuffix = ".bak"
	// MaxBackupCount is the maximum number of backups kept per key.
	MaxBackupCount = 3
)

// ErrBackupNotFound is returned when restoring a backup that does not exist.
var ErrBackupNotFound = errors.New("backup does not exist")

// BackupKey returns the key that holds rotation n of key. Lower numbers are
// more recent; .bak.1 is the latest backup.
func BackupKey(key string, n int) string {
	return fmt.Sprintf("%s%s.%d", key, BackupSuffix, n)
}

// BackupInfo describes one stored backup.
type BackupInfo struct {
	Number int    // The backup number (1 is most recent)
	Key    string // The store key holding the backup
	Size   int    // Length of the stored document in bytes
}

// rotateBackups shifts .bak.1 -> .bak.2 -> .bak.3 and drops the oldest.
func rotateBackups(s Store, key string) error {
	if err := s.Delete(BackupKey(key, MaxBackupCount)); err != nil {
		return err
	}
	for i := MaxBackupCount - 1; i >= 1; i-- {
		value, ok, err := s.Get(BackupKey(key, i))
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if err := s.Set(BackupKey(key, i+1), value); err != nil {
			return err
		}
		if err := s.Delete(BackupKey(key, i)); err != nil {
			return err
		}
	}
	return nil
}

// Backup copies the current value of key to .bak.1, rotating older backups.
// A missing key creates no backup and is not an error.
func Backup(s Store, key string) error {
	value, ok, err := s.Get(key)
	if err != nil {
		return fmt.Errorf("failed to read %s for backup: %w", key, err)
	}
	if !ok {
		return nil
	}
	if err := rotateBackups(s, key); err != nil {
		return fmt.Errorf("failed to rotate backups: %w", err)
	}
	if err := s.Set(BackupKey(key, 1), value); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}
	return nil
}

// ListBackups returns the backups of key, most recent first.
func ListBackups(s Store, key string) ([]BackupInfo, error) {
	var backups []BackupInfo
	for i := 1; i <= MaxBackupCount; i++ {
		value, ok, err := s.Get(BackupKey(key, i))
		if err != nil {
			return nil, err
		}
		if ok {
			backups = append(backups, BackupInfo{Number: i, Key: BackupKey(key, i), Size: len(value)})
		}
	}
	return backups, nil
}

// RestoreBackup replaces key with backup n. The current value is backed up
// first, so a restore can itself be undone.
func RestoreBackup(s Store, key string, n int) error {
	if n < 1 || n > MaxBackupCount {
		return fmt.Errorf("invalid backup number %d, must be between 1 and %d", n, MaxBackupCount)
	}

	value, ok, err := s.Get(BackupKey(key, n))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %d", ErrBackupNotFound, n)
	}

	if err := Backup(s, key); err != nil {
		return err
	}
	if err := s.Set(key, value); err != nil {
		return fmt.Errorf("failed to restore backup %d: %w", n, err)
	}
	return nil
}
