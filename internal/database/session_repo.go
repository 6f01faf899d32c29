package database

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/hivebound/beebot/internal/domain/contract"
	"github.com/hivebound/beebot/internal/domain/entity"
)

type sessionRepo struct {
	db dbConn
}

func newSessionRepo(db dbConn) contract.SessionRepo {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) Create(session *entity.PuzzleSession) error {
	query := `
		INSERT INTO puzzle_sessions (id, puzzle_date, guild_id, channel_id, message_id, found_words, score)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	// Convert FoundWords to JSON for storage
	foundWordsJSON, err := json.Marshal(wordsOrEmpty(session.FoundWords))
	if err != nil {
		return fmt.Errorf("failed to marshal found words: %w", err)
	}

	_, err = r.db.Exec(query,
		session.ID,
		session.PuzzleDate,
		session.GuildID,
		session.ChannelID,
		session.MessageID,
		string(foundWordsJSON),
		session.Score,
	)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

func (r *sessionRepo) GetByID(id string) (*entity.PuzzleSession, error) {
	session := &entity.PuzzleSession{}
	query := `
		SELECT id, puzzle_date, guild_id, channel_id, message_id, found_words, score, created_at
		FROM puzzle_sessions
		WHERE id = ?
	`

	var foundWordsJSON string
	err := r.db.QueryRow(query, id).Scan(
		&session.ID,
		&session.PuzzleDate,
		&session.GuildID,
		&session.ChannelID,
		&session.MessageID,
		&foundWordsJSON,
		&session.Score,
		&session.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if err := json.Unmarshal([]byte(foundWordsJSON), &session.FoundWords); err != nil {
		return nil, fmt.Errorf("failed to unmarshal found words: %w", err)
	}

	return session, nil
}

func (r *sessionRepo) SetMessageID(id, messageID string) error {
	query := `UPDATE puzzle_sessions SET message_id = ? WHERE id = ?`

	_, err := r.db.Exec(query, messageID, id)
	if err != nil {
		return fmt.Errorf("failed to set session message id: %w", err)
	}

	return nil
}

func (r *sessionRepo) UpdateProgress(id string, foundWords []string, score int) error {
	query := `
		UPDATE puzzle_sessions SET
			found_words = ?,
			score = ?
		WHERE id = ?
	`

	foundWordsJSON, err := json.Marshal(wordsOrEmpty(foundWords))
	if err != nil {
		return fmt.Errorf("failed to marshal found words: %w", err)
	}

	_, err = r.db.Exec(query, string(foundWordsJSON), score, id)
	if err != nil {
		return fmt.Errorf("failed to update session progress: %w", err)
	}

	return nil
}

// wordsOrEmpty keeps the stored JSON an array rather than null
func wordsOrEmpty(words []string) []string {
	if words == nil {
		return []string{}
	}
	return words
}
