package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/hivebound/beebot/internal/domain/contract"
	"github.com/hivebound/beebot/internal/domain/entity"
)

type scheduleRepo struct {
	db dbConn
}

func newScheduleRepo(db dbConn) contract.ScheduleRepo {
	return &scheduleRepo{db: db}
}

func (r *scheduleRepo) Create(schedule *entity.ScheduledPost) error {
	query := `
		INSERT INTO schedule (guild_id, channel_id, timing, current_session)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		schedule.GuildID,
		schedule.ChannelID,
		schedule.Timing,
		nullableString(schedule.CurrentSession),
	)
	if err != nil {
		return fmt.Errorf("failed to create schedule: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	schedule.ID = id
	return nil
}

func (r *scheduleRepo) GetByGuildID(guildID string) (*entity.ScheduledPost, error) {
	query := `
		SELECT id, guild_id, channel_id, timing, current_session, created_at, updated_at
		FROM schedule
		WHERE guild_id = ?
	`

	schedule, err := scanSchedule(r.db.QueryRow(query, guildID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}

	return schedule, nil
}

func (r *scheduleRepo) GetAll() ([]*entity.ScheduledPost, error) {
	query := `
		SELECT id, guild_id, channel_id, timing, current_session, created_at, updated_at
		FROM schedule
		ORDER BY guild_id
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedules: %w", err)
	}
	defer rows.Close()

	var schedules []*entity.ScheduledPost
	for rows.Next() {
		schedule, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		schedules = append(schedules, schedule)
	}

	return schedules, nil
}

// DeleteByGuildID removes the guild's schedule and returns the removed row,
// or nil when the guild had none.
func (r *scheduleRepo) DeleteByGuildID(guildID string) (*entity.ScheduledPost, error) {
	existing, err := r.GetByGuildID(guildID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	if _, err := r.db.Exec(`DELETE FROM schedule WHERE guild_id = ?`, guildID); err != nil {
		return nil, fmt.Errorf("failed to delete schedule: %w", err)
	}

	return existing, nil
}

func (r *scheduleRepo) UpdateCurrentSession(guildID, sessionID string) error {
	query := `
		UPDATE schedule SET
			current_session = ?,
			updated_at = ?
		WHERE guild_id = ?
	`

	_, err := r.db.Exec(query, nullableString(sessionID), time.Now(), guildID)
	if err != nil {
		return fmt.Errorf("failed to update current session: %w", err)
	}

	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSchedule(row rowScanner) (*entity.ScheduledPost, error) {
	schedule := &entity.ScheduledPost{}
	var currentSession sql.NullString

	err := row.Scan(
		&schedule.ID,
		&schedule.GuildID,
		&schedule.ChannelID,
		&schedule.Timing,
		&currentSession,
		&schedule.CreatedAt,
		&schedule.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	schedule.CurrentSession = currentSession.String
	return schedule, nil
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
