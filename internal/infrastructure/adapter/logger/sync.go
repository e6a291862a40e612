package logger

import (
	"errors"
	"syscall"

	"go.uber.org/zap"
)

// SyncIgnoringTTY syncs l. Terminals and pipes reject fsync with EINVAL or
// ENOTTY, which says nothing about lost output.
func SyncIgnoringTTY(l *zap.Logger) error {
	err := l.Sync()
	if errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
		return nil
	}
	return err
}
