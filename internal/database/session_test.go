package database

import (
	"testing"

	"github.com/hivebound/beebot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepo_CreateAndGet(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newSessionRepo(db.conn)

	session := &entity.PuzzleSession{
		ID:         "sess-1",
		PuzzleDate: "2024-06-01",
		GuildID:    "guild-1",
		ChannelID:  "channel-1",
		FoundWords: []string{"crane", "caper"},
		Score:      10,
	}

	err := repo.Create(session)
	require.NoError(t, err, "Failed to create session")

	found, err := repo.GetByID("sess-1")
	require.NoError(t, err)
	require.NotNil(t, found, "Expected to find session")

	assert.Equal(t, session.PuzzleDate, found.PuzzleDate)
	assert.Equal(t, session.GuildID, found.GuildID)
	assert.Equal(t, session.ChannelID, found.ChannelID)
	assert.Equal(t, session.FoundWords, found.FoundWords)
	assert.Equal(t, session.Score, found.Score)
	assert.False(t, found.CreatedAt.IsZero())
}

func TestSessionRepo_GetByID_NotFound(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newSessionRepo(db.conn)

	found, err := repo.GetByID("no-such-session")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestSessionRepo_EmptyFoundWords(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newSessionRepo(db.conn)

	err := repo.Create(&entity.PuzzleSession{
		ID:         "sess-1",
		PuzzleDate: "2024-06-01",
		GuildID:    "guild-1",
		ChannelID:  "channel-1",
	})
	require.NoError(t, err)

	found, err := repo.GetByID("sess-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.NotNil(t, found.FoundWords, "Empty word list must round-trip as an array, not null")
	assert.Empty(t, found.FoundWords)
}

func TestSessionRepo_SetMessageID(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newSessionRepo(db.conn)

	require.NoError(t, repo.Create(&entity.PuzzleSession{
		ID:         "sess-1",
		PuzzleDate: "2024-06-01",
		GuildID:    "guild-1",
		ChannelID:  "channel-1",
	}))

	err := repo.SetMessageID("sess-1", "msg-42")
	require.NoError(t, err)

	found, err := repo.GetByID("sess-1")
	require.NoError(t, err)
	assert.Equal(t, "msg-42", found.MessageID)
}

func TestSessionRepo_UpdateProgress(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newSessionRepo(db.conn)

	require.NoError(t, repo.Create(&entity.PuzzleSession{
		ID:         "sess-1",
		PuzzleDate: "2024-06-01",
		GuildID:    "guild-1",
		ChannelID:  "channel-1",
	}))

	err := repo.UpdateProgress("sess-1", []string{"crane", "recant"}, 7)
	require.NoError(t, err)

	found, err := repo.GetByID("sess-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "recant"}, found.FoundWords)
	assert.Equal(t, 7, found.Score)
}
