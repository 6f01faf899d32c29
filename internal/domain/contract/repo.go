package contract

import (
	"context"

	"github.com/hivebound/beebot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Schedule() ScheduleRepo
	Session() SessionRepo
}

// ScheduleRepo defines the contract for the schedule repository. A guild has
// at most one schedule row; replacing it is delete-then-insert, never an
// update in place.
type ScheduleRepo interface {
	Create(schedule *entity.ScheduledPost) error
	GetByGuildID(guildID string) (*entity.ScheduledPost, error)
	GetAll() ([]*entity.ScheduledPost, error)
	DeleteByGuildID(guildID string) (*entity.ScheduledPost, error)
	UpdateCurrentSession(guildID, sessionID string) error
}

// SessionRepo defines the contract for the puzzle session repository
type SessionRepo interface {
	Create(session *entity.PuzzleSession) error
	GetByID(id string) (*entity.PuzzleSession, error)
	SetMessageID(id, messageID string) error
	UpdateProgress(id string, foundWords []string, score int) error
}
