// Package di provides dependency injection container
package di

import (
	"go.uber.org/zap"

	"github.com/ssargent/chasave/pkg/config"
	"github.com/ssargent/chasave/pkg/logging"
	"github.com/ssargent/chasave/pkg/storage"
)

// BackupStoreFactory opens the snapshot store rooted at dir
type BackupStoreFactory func(dir string, log *zap.Logger) (*storage.BackupStore, error)

// LoggerFactory builds the application logger
type LoggerFactory func(cfg config.Logging) (*zap.Logger, error)

// Container holds all the dependencies for the application
type Container struct {
	backupStoreFactory BackupStoreFactory
	loggerFactory      LoggerFactory
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	return &Container{
		backupStoreFactory: storage.NewBackupStore,
		loggerFactory:      logging.New,
	}
}

// GetBackupStoreFactory returns the backup store factory
func (c *Container) GetBackupStoreFactory() BackupStoreFactory {
	return c.backupStoreFactory
}

// GetLoggerFactory returns the logger factory
func (c *Container) GetLoggerFactory() LoggerFactory {
	return c.loggerFactory
}

// SetBackupStoreFactory allows overriding the backup store factory (for testing)
func (c *Container) SetBackupStoreFactory(factory BackupStoreFactory) {
	c.backupStoreFactory = factory
}

// SetLoggerFactory allows overriding the logger factory (for testing)
func (c *Container) SetLoggerFactory(factory LoggerFactory) {
	c.loggerFactory = factory
}
