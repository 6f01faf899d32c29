package database

import (
	"context"
	"fmt"

	"github.com/hivebound/beebot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db           *DB
	scheduleRepo contract.ScheduleRepo
	sessionRepo  contract.SessionRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.scheduleRepo = newScheduleRepo(i.db.conn)
	i.sessionRepo = newSessionRepo(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		scheduleRepo: newScheduleRepo(db),
		sessionRepo:  newSessionRepo(db),
	}
}

// Schedule returns the schedule repository
func (i *instance) Schedule() contract.ScheduleRepo {
	return i.scheduleRepo
}

// Session returns the puzzle session repository
func (i *instance) Session() contract.SessionRepo {
	return i.sessionRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
