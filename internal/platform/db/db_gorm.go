// Package db owns the process-wide database handle.
package db

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"gorm.io/gorm"

	appentity "jobboard_backend/internal/feature/applications/domain/entity"
	authentity "jobboard_backend/internal/feature/auth/domain/entity"
	jobentity "jobboard_backend/internal/feature/jobs/domain/entity"
)

const (
	connectAttempts   = 3
	connectRetryDelay = time.Second
)

// Connector establishes and owns a single shared GORM connection.
// Concurrent and repeated Connect calls share the outcome of the first
// attempt instead of dialing again.
type Connector struct {
	dialector gorm.Dialector
	once      sync.Once
	db        *gorm.DB
	err       error
}

// NewConnector returns an unconnected Connector for the given dialector.
func NewConnector(dialector gorm.Dialector) *Connector {
	return &Connector{dialector: dialector}
}

// Connect dials the database, retrying a fixed number of times with a fixed
// delay between attempts. After the first call completes, every later call
// returns the same handle (or the same error) immediately.
func (c *Connector) Connect() (*gorm.DB, error) {
	c.once.Do(func() {
		for attempt := 1; attempt <= connectAttempts; attempt++ {
			c.db, c.err = gorm.Open(c.dialector, &gorm.Config{})
			if c.err == nil {
				slog.Info("database connected", "attempt", attempt)
				return
			}
			if attempt < connectAttempts {
				slog.Warn("database connect failed, retrying", "attempt", attempt, "error", c.err)
				time.Sleep(connectRetryDelay)
			}
		}
		// gorm.Open returns a partially initialized handle alongside its
		// error; callers must never see it.
		c.db = nil
		c.err = fmt.Errorf("connect database after %d attempts: %w", connectAttempts, c.err)
	})
	return c.db, c.err
}

// Close releases the underlying connection. It is a no-op when the connector
// never connected, and safe to call more than once.
func (c *Connector) Close() error {
	if c.db == nil {
		return nil
	}
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate creates or updates the tables for every persisted entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&authentity.User{},
		&jobentity.Job{},
		&appentity.Application{},
	)
}
