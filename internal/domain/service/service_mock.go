package service

import (
	"context"
	"testing"
	"time"

	"github.com/hivebound/beebot/internal/domain/contract"
	"github.com/hivebound/beebot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager  *mocks.MockDataManager
	mockScheduleRepo *mocks.MockScheduleRepo
	mockSessionRepo  *mocks.MockSessionRepo
	mockSource       *mocks.MockPuzzleSource
	mockSessions     *mocks.MockPuzzleSessions
	mockClient       *mocks.MockChannelClient
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	scheduleRepo := mocks.NewMockScheduleRepo(ctrl)
	dm.EXPECT().Schedule().Return(scheduleRepo).AnyTimes()

	sessionRepo := mocks.NewMockSessionRepo(ctrl)
	dm.EXPECT().Session().Return(sessionRepo).AnyTimes()

	// Transactions run the callback against the same mock manager.
	dm.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		},
	).AnyTimes()

	m = allMocks{
		mockDataManager:  dm,
		mockScheduleRepo: scheduleRepo,
		mockSessionRepo:  sessionRepo,
		mockSource:       mocks.NewMockPuzzleSource(ctrl),
		mockSessions:     mocks.NewMockPuzzleSessions(ctrl),
		mockClient:       mocks.NewMockChannelClient(ctrl),
	}

	return
}

// newTestServices wires real service instances on top of the mocks, with a
// short fetch retry backoff so tests stay fast.
func newTestServices(t *testing.T, m allMocks) *Services {
	t.Helper()

	services := New(m.mockDataManager, m.mockClient, m.mockSource, m.mockSessions, 10*time.Millisecond)
	require.NotNil(t, services)
	return services
}

// expectPuzzleReady makes the mocked source serve a fetched puzzle.
func expectPuzzleReady(m allMocks, puzzleID, content string) {
	m.mockSource.EXPECT().ExistsForToday().Return(true).AnyTimes()
	m.mockSource.EXPECT().FetchAndRenderToday(gomock.Any()).Return(puzzleID, nil).AnyTimes()
	m.mockSource.EXPECT().Content(puzzleID).Return(content, nil).AnyTimes()
}
