package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mcasfest/fest-api/internal/domain/entity"
	apperrors "github.com/mcasfest/fest-api/internal/pkg/errors"
)

func newScoreServiceForTest() (*ScoreService, *MockScoreRepo, *MockJudgeRepo, *MockEventRepo, *MockTeamRepo) {
	scoreRepo := new(MockScoreRepo)
	judgeRepo := new(MockJudgeRepo)
	eventRepo := new(MockEventRepo)
	teamRepo := new(MockTeamRepo)
	svc := NewScoreService(scoreRepo, judgeRepo, eventRepo, teamRepo)
	return svc, scoreRepo, judgeRepo, eventRepo, teamRepo
}

func scoreFixtures(judgeRepo *MockJudgeRepo, eventRepo *MockEventRepo, teamRepo *MockTeamRepo) {
	judgeRepo.On("GetByUserID", uint(10)).Return(&entity.Judge{ID: 1, UserID: 10}, nil)
	judgeRepo.On("IsAssigned", uint(1), uint(5)).Return(true, nil)
	eventRepo.On("GetByID", uint(5)).Return(&entity.Event{ID: 5}, nil)
	teamRepo.On("GetByID", uint(3)).Return(&entity.Team{ID: 3}, nil)
	eventRepo.On("ListCriteria", uint(5)).Return([]entity.ScoreCriterion{
		{ID: 11, EventID: 5, Name: "Creativity", MaxPoints: 10},
		{ID: 12, EventID: 5, Name: "Execution", MaxPoints: 20},
	}, nil)
}

func TestScoreService_Submit_SumsCriteria(t *testing.T) {
	svc, scoreRepo, judgeRepo, eventRepo, teamRepo := newScoreServiceForTest()
	scoreFixtures(judgeRepo, eventRepo, teamRepo)

	scoreRepo.On("Create", mock.AnythingOfType("*entity.Score")).Return(nil)

	score, err := svc.Submit(10, SubmitScoreInput{
		EventID: 5,
		TeamID:  3,
		Criteria: []CriterionInput{
			{CriterionID: 11, Points: 8},
			{CriterionID: 12, Points: 17},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 25, score.TotalScore)
	assert.Equal(t, entity.ScoreStatusPending, score.Status)
	assert.Equal(t, uint(1), score.JudgeID)
	assert.Len(t, score.Details, 2)
	scoreRepo.AssertExpectations(t)
}

func TestScoreService_Submit_UnassignedJudgeForbidden(t *testing.T) {
	svc, scoreRepo, judgeRepo, eventRepo, teamRepo := newScoreServiceForTest()

	judgeRepo.On("GetByUserID", uint(10)).Return(&entity.Judge{ID: 1, UserID: 10}, nil)
	judgeRepo.On("IsAssigned", uint(1), uint(5)).Return(false, nil)
	_ = eventRepo
	_ = teamRepo

	_, err := svc.Submit(10, SubmitScoreInput{EventID: 5, TeamID: 3})

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	scoreRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestScoreService_Submit_NonJudgeUserForbidden(t *testing.T) {
	svc, scoreRepo, judgeRepo, _, _ := newScoreServiceForTest()

	judgeRepo.On("GetByUserID", uint(77)).Return(nil, apperrors.ErrNotFound)

	_, err := svc.Submit(77, SubmitScoreInput{EventID: 5, TeamID: 3})

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	scoreRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestScoreService_Submit_ValueOutsideRange(t *testing.T) {
	svc, scoreRepo, judgeRepo, eventRepo, teamRepo := newScoreServiceForTest()
	scoreFixtures(judgeRepo, eventRepo, teamRepo)

	_, err := svc.Submit(10, SubmitScoreInput{
		EventID: 5,
		TeamID:  3,
		Criteria: []CriterionInput{
			{CriterionID: 11, Points: 11},
			{CriterionID: 12, Points: 5},
		},
	})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	scoreRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestScoreService_Submit_AllCriteriaRequired(t *testing.T) {
	svc, scoreRepo, judgeRepo, eventRepo, teamRepo := newScoreServiceForTest()
	scoreFixtures(judgeRepo, eventRepo, teamRepo)

	_, err := svc.Submit(10, SubmitScoreInput{
		EventID:  5,
		TeamID:   3,
		Criteria: []CriterionInput{{CriterionID: 11, Points: 8}},
	})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	scoreRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestScoreService_Submit_ForeignCriterionRejected(t *testing.T) {
	svc, _, judgeRepo, eventRepo, teamRepo := newScoreServiceForTest()
	scoreFixtures(judgeRepo, eventRepo, teamRepo)

	_, err := svc.Submit(10, SubmitScoreInput{
		EventID: 5,
		TeamID:  3,
		Criteria: []CriterionInput{
			{CriterionID: 99, Points: 5},
			{CriterionID: 12, Points: 5},
		},
	})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestScoreService_Submit_DuplicateCriterionRejected(t *testing.T) {
	svc, _, judgeRepo, eventRepo, teamRepo := newScoreServiceForTest()
	scoreFixtures(judgeRepo, eventRepo, teamRepo)

	_, err := svc.Submit(10, SubmitScoreInput{
		EventID: 5,
		TeamID:  3,
		Criteria: []CriterionInput{
			{CriterionID: 11, Points: 5},
			{CriterionID: 11, Points: 6},
		},
	})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

// Approving a judge score must not touch team standings: the judge ledger
// and the results ledger are independent.
func TestScoreService_Approve_DoesNotTouchStandings(t *testing.T) {
	svc, scoreRepo, _, _, teamRepo := newScoreServiceForTest()

	scoreRepo.On("UpdateStatus", uint(8), entity.ScoreStatusApproved).Return(nil)

	require.NoError(t, svc.Approve(8))

	teamRepo.AssertNotCalled(t, "ApplyAggregateDelta", mock.Anything, mock.Anything, mock.Anything)
	teamRepo.AssertNotCalled(t, "Update", mock.Anything)
	scoreRepo.AssertExpectations(t)
}

func TestScoreService_Reject_AlreadyDecidedConflicts(t *testing.T) {
	svc, scoreRepo, _, _, _ := newScoreServiceForTest()

	scoreRepo.On("UpdateStatus", uint(8), entity.ScoreStatusRejected).Return(apperrors.ErrConflict)

	err := svc.Reject(8)

	assert.ErrorIs(t, err, apperrors.ErrConflict)
}
