package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mcasfest/fest-api/internal/domain/entity"
	"github.com/mcasfest/fest-api/internal/domain/repository"
	apperrors "github.com/mcasfest/fest-api/internal/pkg/errors"
)

func newEventServiceForTest() (*EventService, *MockEventRepo, *MockResultRepo, *MockScoreRepo, *MockTeamRepo, *stubNotifier) {
	eventRepo := new(MockEventRepo)
	resultRepo := new(MockResultRepo)
	scoreRepo := new(MockScoreRepo)
	teamRepo := new(MockTeamRepo)
	notifier := &stubNotifier{}
	svc := NewEventService(eventRepo, resultRepo, scoreRepo, teamRepo, &stubTxManager{}, notifier)
	return svc, eventRepo, resultRepo, scoreRepo, teamRepo, notifier
}

func validEventInput() EventInput {
	return EventInput{
		Title:     "Street Play",
		Category:  entity.EventCategoryArt,
		EventType: entity.EventTypeGroup,
		Venue:     "Main Quad",
		Date:      time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC),
	}
}

func TestEventService_Create_StartsUpcoming(t *testing.T) {
	svc, eventRepo, _, _, _, _ := newEventServiceForTest()

	eventRepo.On("Create", mock.AnythingOfType("*entity.Event")).Return(nil)

	event, err := svc.Create(validEventInput())

	require.NoError(t, err)
	assert.Equal(t, entity.EventStatusUpcoming, event.Status)
	assert.Equal(t, "Street Play", event.Title)
	eventRepo.AssertExpectations(t)
}

func TestEventService_Create_RejectsUnknownEventType(t *testing.T) {
	svc, eventRepo, _, _, _, _ := newEventServiceForTest()

	input := validEventInput()
	input.EventType = "squad"
	_, err := svc.Create(input)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	eventRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestEventService_Create_RejectsUnknownCategory(t *testing.T) {
	svc, _, _, _, _, _ := newEventServiceForTest()

	input := validEventInput()
	input.Category = "MUSIC"
	_, err := svc.Create(input)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestEventService_Create_RequiresTitleAndVenue(t *testing.T) {
	svc, _, _, _, _, _ := newEventServiceForTest()

	input := validEventInput()
	input.Title = "   "
	_, err := svc.Create(input)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	input = validEventInput()
	input.Venue = ""
	_, err = svc.Create(input)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestEventService_MarkOngoing_CompletedConflicts(t *testing.T) {
	svc, eventRepo, _, _, _, _ := newEventServiceForTest()

	eventRepo.On("GetByID", uint(4)).Return(&entity.Event{ID: 4, Status: entity.EventStatusCompleted}, nil)

	_, err := svc.MarkOngoing(4)

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	eventRepo.AssertNotCalled(t, "Update", mock.Anything)
}

// Deleting an event applies exactly one net reversal per team that scored in
// it, so a team with several results gets a single aggregate update.
func TestEventService_Delete_OneReversalPerTeam(t *testing.T) {
	svc, eventRepo, resultRepo, scoreRepo, teamRepo, notifier := newEventServiceForTest()

	eventRepo.On("GetByID", uint(9)).Return(&entity.Event{ID: 9}, nil)
	resultRepo.On("AggregateByTeam", uint(9)).Return([]repository.TeamReversal{
		{TeamID: 1, Points: 30, Gold: 2},
		{TeamID: 2, Points: 7, Silver: 1},
	}, nil)
	scoreRepo.On("SumApprovedByTeam", uint(9)).Return([]repository.TeamScoreTotal{}, nil)

	teamRepo.On("ApplyAggregateDelta", mock.Anything, uint(1),
		repository.AggregateDelta{Points: -30, Gold: -2}).Return(nil).Once()
	teamRepo.On("ApplyAggregateDelta", mock.Anything, uint(2),
		repository.AggregateDelta{Points: -7, Silver: -1}).Return(nil).Once()
	eventRepo.On("Delete", mock.Anything, uint(9)).Return(nil)

	err := svc.Delete(9)

	require.NoError(t, err)
	assert.Equal(t, 1, notifier.calls)
	teamRepo.AssertExpectations(t)
	eventRepo.AssertExpectations(t)
}

// Approved judge scores are reverted points-only: no medal components in the
// delta, because the judge ledger has no positions.
func TestEventService_Delete_ApprovedScoresRevertPointsOnly(t *testing.T) {
	svc, eventRepo, resultRepo, scoreRepo, teamRepo, _ := newEventServiceForTest()

	eventRepo.On("GetByID", uint(9)).Return(&entity.Event{ID: 9}, nil)
	resultRepo.On("AggregateByTeam", uint(9)).Return([]repository.TeamReversal{}, nil)
	scoreRepo.On("SumApprovedByTeam", uint(9)).Return([]repository.TeamScoreTotal{
		{TeamID: 5, Total: 88},
	}, nil)

	teamRepo.On("ApplyAggregateDelta", mock.Anything, uint(5),
		repository.AggregateDelta{Points: -88}).Return(nil).Once()
	eventRepo.On("Delete", mock.Anything, uint(9)).Return(nil)

	err := svc.Delete(9)

	require.NoError(t, err)
	teamRepo.AssertExpectations(t)
}

func TestEventService_Delete_MissingEvent(t *testing.T) {
	svc, eventRepo, resultRepo, _, _, notifier := newEventServiceForTest()

	eventRepo.On("GetByID", uint(404)).Return(nil, apperrors.ErrNotFound)

	err := svc.Delete(404)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Zero(t, notifier.calls)
	resultRepo.AssertNotCalled(t, "AggregateByTeam", mock.Anything)
}

func TestEventService_AddCriteria_Validates(t *testing.T) {
	svc, eventRepo, _, _, _, _ := newEventServiceForTest()

	eventRepo.On("GetByID", uint(3)).Return(&entity.Event{ID: 3}, nil)

	err := svc.AddCriteria(3, []entity.ScoreCriterion{{Name: "", MaxPoints: 10}})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	err = svc.AddCriteria(3, []entity.ScoreCriterion{{Name: "Creativity", MaxPoints: 0}})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	eventRepo.AssertNotCalled(t, "AddCriteria", mock.Anything, mock.Anything)
}
