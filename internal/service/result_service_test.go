package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mcasfest/fest-api/internal/domain/entity"
	"github.com/mcasfest/fest-api/internal/domain/repository"
	apperrors "github.com/mcasfest/fest-api/internal/pkg/errors"
)

func newResultServiceForTest() (*ResultService, *MockResultRepo, *MockTeamRepo, *MockEventRepo, *stubNotifier) {
	resultRepo := new(MockResultRepo)
	teamRepo := new(MockTeamRepo)
	eventRepo := new(MockEventRepo)
	notifier := &stubNotifier{}
	svc := NewResultService(resultRepo, teamRepo, eventRepo, &stubTxManager{}, notifier)
	return svc, resultRepo, teamRepo, eventRepo, notifier
}

func TestResultService_Record_PointsFromEventCategoryAndType(t *testing.T) {
	svc, resultRepo, teamRepo, eventRepo, notifier := newResultServiceForTest()

	eventRepo.On("GetByID", uint(5)).Return(&entity.Event{
		ID:        5,
		Category:  entity.EventCategorySports,
		EventType: entity.EventTypeGroup,
		Status:    entity.EventStatusOngoing,
	}, nil)
	teamRepo.On("GetByID", uint(3)).Return(&entity.Team{ID: 3, Name: "Red House"}, nil)

	resultRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Result")).Return(nil)
	teamRepo.On("ApplyAggregateDelta", mock.Anything, uint(3),
		repository.AggregateDelta{Points: 15, Silver: 1}).Return(nil)
	eventRepo.On("MarkCompleted", mock.Anything, uint(5)).Return(nil)

	result, err := svc.Record(RecordResultInput{
		EventID:  5,
		TeamID:   3,
		Position: "2nd",
	})

	require.NoError(t, err)
	assert.Equal(t, 15, result.Points)
	assert.Equal(t, "2nd", result.Position)
	assert.Equal(t, 1, notifier.calls)
	resultRepo.AssertExpectations(t)
	teamRepo.AssertExpectations(t)
	eventRepo.AssertExpectations(t)
}

func TestResultService_Record_ExplicitPointsOverride(t *testing.T) {
	svc, resultRepo, teamRepo, eventRepo, _ := newResultServiceForTest()

	eventRepo.On("GetByID", uint(1)).Return(&entity.Event{
		ID:        1,
		Category:  entity.EventCategoryArt,
		EventType: entity.EventTypeIndividual,
	}, nil)
	teamRepo.On("GetByID", uint(2)).Return(&entity.Team{ID: 2}, nil)

	resultRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Result")).Return(nil)
	// The override replaces the table value 10 but the medal still counts.
	teamRepo.On("ApplyAggregateDelta", mock.Anything, uint(2),
		repository.AggregateDelta{Points: 42, Gold: 1}).Return(nil)
	eventRepo.On("MarkCompleted", mock.Anything, uint(1)).Return(nil)

	override := 42
	result, err := svc.Record(RecordResultInput{
		EventID:        1,
		TeamID:         2,
		Position:       "1st",
		ExplicitPoints: &override,
	})

	require.NoError(t, err)
	assert.Equal(t, 42, result.Points)
	teamRepo.AssertExpectations(t)
}

func TestResultService_Record_ParticipationScoresZero(t *testing.T) {
	svc, resultRepo, teamRepo, eventRepo, _ := newResultServiceForTest()

	eventRepo.On("GetByID", uint(1)).Return(&entity.Event{
		ID:        1,
		Category:  entity.EventCategorySports,
		EventType: entity.EventTypeTeam,
	}, nil)
	teamRepo.On("GetByID", uint(2)).Return(&entity.Team{ID: 2}, nil)

	resultRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Result")).Return(nil)
	teamRepo.On("ApplyAggregateDelta", mock.Anything, uint(2),
		repository.AggregateDelta{}).Return(nil)
	eventRepo.On("MarkCompleted", mock.Anything, uint(1)).Return(nil)

	result, err := svc.Record(RecordResultInput{
		EventID:  1,
		TeamID:   2,
		Position: "participation",
	})

	require.NoError(t, err)
	assert.Equal(t, 0, result.Points)
	teamRepo.AssertExpectations(t)
}

func TestResultService_Record_UnknownPosition(t *testing.T) {
	svc, _, _, eventRepo, notifier := newResultServiceForTest()

	_, err := svc.Record(RecordResultInput{EventID: 1, TeamID: 2, Position: "4th"})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Zero(t, notifier.calls)
	eventRepo.AssertNotCalled(t, "GetByID", mock.Anything)
}

func TestResultService_Record_NegativeExplicitPoints(t *testing.T) {
	svc, _, teamRepo, eventRepo, _ := newResultServiceForTest()

	eventRepo.On("GetByID", uint(1)).Return(&entity.Event{ID: 1, Category: entity.EventCategoryArt, EventType: entity.EventTypeIndividual}, nil)
	teamRepo.On("GetByID", uint(2)).Return(&entity.Team{ID: 2}, nil)

	override := -5
	_, err := svc.Record(RecordResultInput{EventID: 1, TeamID: 2, Position: "3rd", ExplicitPoints: &override})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	teamRepo.AssertNotCalled(t, "ApplyAggregateDelta", mock.Anything, mock.Anything, mock.Anything)
}

func TestResultService_Record_MissingEvent(t *testing.T) {
	svc, resultRepo, _, eventRepo, notifier := newResultServiceForTest()

	eventRepo.On("GetByID", uint(99)).Return(nil, apperrors.ErrNotFound)

	_, err := svc.Record(RecordResultInput{EventID: 99, TeamID: 1, Position: "1st"})

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Zero(t, notifier.calls)
	resultRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestResultService_Record_RollbackKeepsStandingsUntouched(t *testing.T) {
	svc, resultRepo, teamRepo, eventRepo, notifier := newResultServiceForTest()

	eventRepo.On("GetByID", uint(1)).Return(&entity.Event{ID: 1, Category: entity.EventCategoryArt, EventType: entity.EventTypeGroup}, nil)
	teamRepo.On("GetByID", uint(2)).Return(&entity.Team{ID: 2}, nil)

	boom := errors.New("insert failed")
	resultRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Result")).Return(boom)

	_, err := svc.Record(RecordResultInput{EventID: 1, TeamID: 2, Position: "1st"})

	assert.ErrorIs(t, err, boom)
	assert.Zero(t, notifier.calls)
	assert.Empty(t, notifier.recorded)
	teamRepo.AssertNotCalled(t, "ApplyAggregateDelta", mock.Anything, mock.Anything, mock.Anything)
}

// Subscribers get the recorded and deleted rows themselves, not just the
// standings refresh that follows each commit.
func TestResultService_LifecycleEventsReachNotifier(t *testing.T) {
	svc, resultRepo, teamRepo, eventRepo, notifier := newResultServiceForTest()

	eventRepo.On("GetByID", uint(5)).Return(&entity.Event{
		ID:        5,
		Category:  entity.EventCategorySports,
		EventType: entity.EventTypeIndividual,
	}, nil)
	teamRepo.On("GetByID", uint(3)).Return(&entity.Team{ID: 3}, nil)
	resultRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Result")).Return(nil)
	eventRepo.On("MarkCompleted", mock.Anything, uint(5)).Return(nil)
	teamRepo.On("ApplyAggregateDelta", mock.Anything, uint(3), mock.Anything).Return(nil)
	resultRepo.On("Delete", mock.Anything, mock.Anything).Return(nil)

	result, err := svc.Record(RecordResultInput{EventID: 5, TeamID: 3, Position: "1st"})
	require.NoError(t, err)
	require.Len(t, notifier.recorded, 1)
	assert.Same(t, result, notifier.recorded[0])
	assert.Empty(t, notifier.deleted)

	resultRepo.On("GetByID", result.ID).Return(result, nil)
	require.NoError(t, svc.Delete(result.ID))
	require.Len(t, notifier.deleted, 1)
	assert.Same(t, result, notifier.deleted[0])
}

func TestResultService_Delete_ReversesContribution(t *testing.T) {
	svc, resultRepo, teamRepo, _, notifier := newResultServiceForTest()

	resultRepo.On("GetByID", uint(7)).Return(&entity.Result{
		ID:       7,
		EventID:  5,
		TeamID:   3,
		Position: "1st",
		Points:   20,
	}, nil)
	resultRepo.On("Delete", mock.Anything, uint(7)).Return(nil)
	teamRepo.On("ApplyAggregateDelta", mock.Anything, uint(3),
		repository.AggregateDelta{Points: -20, Gold: -1}).Return(nil)

	err := svc.Delete(7)

	require.NoError(t, err)
	assert.Equal(t, 1, notifier.calls)
	teamRepo.AssertExpectations(t)
}

// Recording a result and then deleting it must produce deltas that cancel
// exactly, independent of position and points table values.
func TestResultService_RecordThenDelete_DeltasCancel(t *testing.T) {
	positions := []string{"1st", "2nd", "3rd", "participation"}

	for _, pos := range positions {
		t.Run(pos, func(t *testing.T) {
			svc, resultRepo, teamRepo, eventRepo, _ := newResultServiceForTest()

			eventRepo.On("GetByID", uint(1)).Return(&entity.Event{
				ID:        1,
				Category:  entity.EventCategorySports,
				EventType: entity.EventTypeIndividual,
			}, nil)
			teamRepo.On("GetByID", uint(2)).Return(&entity.Team{ID: 2}, nil)
			resultRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Result")).Return(nil)
			eventRepo.On("MarkCompleted", mock.Anything, uint(1)).Return(nil)
			resultRepo.On("Delete", mock.Anything, mock.Anything).Return(nil)

			var applied []repository.AggregateDelta
			teamRepo.On("ApplyAggregateDelta", mock.Anything, uint(2), mock.Anything).
				Run(func(args mock.Arguments) {
					applied = append(applied, args.Get(2).(repository.AggregateDelta))
				}).Return(nil)

			result, err := svc.Record(RecordResultInput{EventID: 1, TeamID: 2, Position: pos})
			require.NoError(t, err)

			resultRepo.On("GetByID", result.ID).Return(result, nil)
			require.NoError(t, svc.Delete(result.ID))

			require.Len(t, applied, 2)
			assert.Equal(t, applied[0], applied[1].Negate())
		})
	}
}

func TestResultService_Delete_MissingResult(t *testing.T) {
	svc, resultRepo, teamRepo, _, notifier := newResultServiceForTest()

	resultRepo.On("GetByID", uint(404)).Return(nil, apperrors.ErrNotFound)

	err := svc.Delete(404)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Zero(t, notifier.calls)
	teamRepo.AssertNotCalled(t, "ApplyAggregateDelta", mock.Anything, mock.Anything, mock.Anything)
}
