package puzzle

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hivebound/beebot/internal/domain/contract"
	"github.com/hivebound/beebot/internal/domain/entity"
)

// Reactions applied to guess messages.
const (
	ReactCorrect   = contract.Reaction("✅")
	ReactPangram   = contract.Reaction("🎉")
	ReactDuplicate = contract.Reaction("🔁")
	ReactWrong     = contract.Reaction("❌")
)

// Sessions tracks per-guild guessing sessions, persisted so progress and the
// catch-up date check survive restarts.
type Sessions struct {
	dm     contract.DataManager
	client *Client
}

func NewSessions(dm contract.DataManager, client *Client) *Sessions {
	return &Sessions{
		dm:     dm,
		client: client,
	}
}

// Start opens a session on the given puzzle for a guild/channel pair.
func (s *Sessions) Start(puzzleID, guildID, channelID string) (string, error) {
	p, ok := s.client.Get(puzzleID)
	if !ok {
		return "", fmt.Errorf("unknown puzzle %s", puzzleID)
	}

	session := &entity.PuzzleSession{
		ID:         uuid.NewString(),
		PuzzleDate: p.Date,
		GuildID:    guildID,
		ChannelID:  channelID,
	}

	if err := s.dm.Session().Create(session); err != nil {
		return "", fmt.Errorf("failed to persist session: %w", err)
	}

	return session.ID, nil
}

// RecordGuess scores text against the session's puzzle. Messages that do not
// look like a guess (multiple words, non-letters) produce no reactions, so
// ordinary chat in the puzzle channel stays untouched.
func (s *Sessions) RecordGuess(ctx context.Context, sessionID, text string) ([]contract.Reaction, error) {
	word, ok := normalizeGuess(text)
	if !ok {
		return nil, nil
	}

	session, err := s.dm.Session().GetByID(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil {
		return nil, fmt.Errorf("unknown session %s", sessionID)
	}

	p, ok := s.client.GetByDate(session.PuzzleDate)
	if !ok {
		return nil, fmt.Errorf("puzzle for %s is no longer available", session.PuzzleDate)
	}

	if !p.Answers[word] {
		return []contract.Reaction{ReactWrong}, nil
	}
	if session.Found(word) {
		return []contract.Reaction{ReactDuplicate}, nil
	}

	session.FoundWords = append(session.FoundWords, word)
	session.Score += wordScore(word, p.Pangrams[word])
	if err := s.dm.Session().UpdateProgress(session.ID, session.FoundWords, session.Score); err != nil {
		return nil, fmt.Errorf("failed to persist guess: %w", err)
	}

	if p.Pangrams[word] {
		return []contract.Reaction{ReactCorrect, ReactPangram}, nil
	}
	return []contract.Reaction{ReactCorrect}, nil
}

// Date returns the calendar date of the session's puzzle. ok is false when
// the session is unknown, which callers treat as "no post today".
func (s *Sessions) Date(sessionID string) (time.Time, bool) {
	session, err := s.dm.Session().GetByID(sessionID)
	if err != nil || session == nil {
		return time.Time{}, false
	}

	day, err := time.ParseInLocation("2006-01-02", session.PuzzleDate, entity.Location())
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}

// Progress re-renders the session's puzzle post including found-word
// progress.
func (s *Sessions) Progress(sessionID string) (string, string, bool) {
	session, err := s.dm.Session().GetByID(sessionID)
	if err != nil || session == nil {
		return "", "", false
	}

	p, ok := s.client.GetByDate(session.PuzzleDate)
	if !ok {
		return "", "", false
	}

	return Render(p, len(session.FoundWords), session.Score), session.MessageID, true
}

// normalizeGuess lowercases a single-word message; anything else is not a
// guess.
func normalizeGuess(text string) (string, bool) {
	word := strings.ToLower(strings.TrimSpace(text))
	if word == "" || len(word) < 4 {
		return "", false
	}
	for _, r := range word {
		if r < 'a' || r > 'z' {
			return "", false
		}
	}
	return word, true
}

// wordScore follows the usual Spelling Bee rules: 4-letter words score one
// point, longer words their length, pangrams 7 extra.
func wordScore(word string, pangram bool) int {
	score := len(word)
	if len(word) == 4 {
		score = 1
	}
	if pangram {
		score += 7
	}
	return score
}
