package contract

import (
	"context"
	"time"
)

// Reaction is an emoji applied to a guess message.
type Reaction string

// PuzzleSource provides the shared puzzle of the day. FetchAndRenderToday may
// fail transiently; the daily coordinator owns the retry loop.
type PuzzleSource interface {
	// ExistsForToday reports whether the source has published today's puzzle.
	ExistsForToday() bool

	// FetchAndRenderToday downloads today's puzzle and prepares its rendered
	// message content, returning the puzzle id.
	FetchAndRenderToday(ctx context.Context) (string, error)

	// Content returns the rendered message content for a fetched puzzle.
	Content(puzzleID string) (string, error)
}

// PuzzleSessions tracks per-guild guessing sessions on fetched puzzles.
type PuzzleSessions interface {
	// Start opens a session on the given puzzle for a guild/channel pair.
	Start(puzzleID, guildID, channelID string) (string, error)

	// RecordGuess scores text against the session's puzzle and returns the
	// reactions to apply to the guess message.
	RecordGuess(ctx context.Context, sessionID, text string) ([]Reaction, error)

	// Date returns the calendar date of the session's puzzle. ok is false when
	// the session is unknown.
	Date(sessionID string) (date time.Time, ok bool)

	// Progress re-renders the session's puzzle post including found-word
	// progress, returning the content and the post's message id. ok is false
	// when the session or its puzzle is unavailable.
	Progress(sessionID string) (content, messageID string, ok bool)
}
