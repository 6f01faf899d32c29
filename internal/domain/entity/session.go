package entity

import "time"

// PuzzleSession tracks one guild's progress on one day's puzzle. PuzzleDate
// uses the yyyy-mm-dd stamp of the scheduling timezone. MessageID points at
// the puzzle post so progress can be edited back into it.
type PuzzleSession struct {
	ID         string
	PuzzleDate string
	GuildID    string
	ChannelID  string
	MessageID  string
	FoundWords []string
	Score      int
	CreatedAt  time.Time
}

// Found reports whether word was already guessed in this session.
func (s *PuzzleSession) Found(word string) bool {
	for _, w := range s.FoundWords {
		if w == word {
			return true
		}
	}
	return false
}
