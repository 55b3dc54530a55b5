package service

import (
	"fmt"

	"github.com/mcasfest/fest-api/internal/domain/entity"
	"github.com/mcasfest/fest-api/internal/domain/repository"
	apperrors "github.com/mcasfest/fest-api/internal/pkg/errors"
)

// ScoreService implements the judge scoring ledger: criteria-based scores
// submitted by judges and approved or rejected by admins. This ledger is
// independent of Results — approving a score does not update team
// standings; only Results feed the leaderboard.
type ScoreService struct {
	scoreRepo repository.ScoreRepository
	judgeRepo repository.JudgeRepository
	eventRepo repository.EventRepository
	teamRepo  repository.TeamRepository
}

// NewScoreService creates a new score service
func NewScoreService(
	scoreRepo repository.ScoreRepository,
	judgeRepo repository.JudgeRepository,
	eventRepo repository.EventRepository,
	teamRepo repository.TeamRepository,
) *ScoreService {
	return &ScoreService{
		scoreRepo: scoreRepo,
		judgeRepo: judgeRepo,
		eventRepo: eventRepo,
		teamRepo:  teamRepo,
	}
}

// CriterionInput is one judged criterion value.
type CriterionInput struct {
	CriterionID uint
	Points      int
}

// SubmitScoreInput describes a judge's evaluation of a team in an event.
type SubmitScoreInput struct {
	EventID  uint
	TeamID   uint
	Comments string
	Criteria []CriterionInput
}

// Submit records a pending score from the judge behind userID. Every
// configured criterion of the event must be scored within [0, max]; the
// total is the sum of the criterion values.
func (s *ScoreService) Submit(userID uint, input SubmitScoreInput) (*entity.Score, error) {
	judge, err := s.judgeRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: no judge profile for user #%d", apperrors.ErrForbidden, userID)
	}

	assigned, err := s.judgeRepo.IsAssigned(judge.ID, input.EventID)
	if err != nil {
		return nil, err
	}
	if !assigned {
		return nil, fmt.Errorf("%w: judge #%d is not assigned to event #%d", apperrors.ErrForbidden, judge.ID, input.EventID)
	}

	if _, err := s.eventRepo.GetByID(input.EventID); err != nil {
		return nil, fmt.Errorf("event #%d: %w", input.EventID, err)
	}
	if _, err := s.teamRepo.GetByID(input.TeamID); err != nil {
		return nil, fmt.Errorf("team #%d: %w", input.TeamID, err)
	}

	criteria, err := s.eventRepo.ListCriteria(input.EventID)
	if err != nil {
		return nil, err
	}
	if len(criteria) == 0 {
		return nil, fmt.Errorf("%w: event #%d has no judging criteria", apperrors.ErrValidation, input.EventID)
	}

	maxByID := make(map[uint]int, len(criteria))
	for _, c := range criteria {
		maxByID[c.ID] = c.MaxPoints
	}

	total := 0
	details := make([]entity.CriterionScore, 0, len(input.Criteria))
	seen := make(map[uint]bool, len(input.Criteria))
	for _, in := range input.Criteria {
		max, ok := maxByID[in.CriterionID]
		if !ok {
			return nil, fmt.Errorf("%w: criterion #%d does not belong to event #%d", apperrors.ErrValidation, in.CriterionID, input.EventID)
		}
		if seen[in.CriterionID] {
			return nil, fmt.Errorf("%w: criterion #%d scored twice", apperrors.ErrValidation, in.CriterionID)
		}
		seen[in.CriterionID] = true
		if in.Points < 0 || in.Points > max {
			return nil, fmt.Errorf("%w: criterion #%d value %d outside [0, %d]", apperrors.ErrValidation, in.CriterionID, in.Points, max)
		}
		total += in.Points
		details = append(details, entity.CriterionScore{CriterionID: in.CriterionID, Points: in.Points})
	}
	if len(seen) != len(criteria) {
		return nil, fmt.Errorf("%w: all %d criteria must be scored", apperrors.ErrValidation, len(criteria))
	}

	score := &entity.Score{
		EventID:    input.EventID,
		TeamID:     input.TeamID,
		JudgeID:    judge.ID,
		TotalScore: total,
		Status:     entity.ScoreStatusPending,
		Comments:   input.Comments,
		Details:    details,
	}
	if err := s.scoreRepo.Create(score); err != nil {
		return nil, err
	}
	return score, nil
}

// Approve marks a pending score approved. Team standings are deliberately
// left alone; whether approved judge scores should ever feed total_points
// is an open product question, and until it is answered only Results do.
func (s *ScoreService) Approve(scoreID uint) error {
	return s.scoreRepo.UpdateStatus(scoreID, entity.ScoreStatusApproved)
}

// Reject marks a pending score rejected.
func (s *ScoreService) Reject(scoreID uint) error {
	return s.scoreRepo.UpdateStatus(scoreID, entity.ScoreStatusRejected)
}

// ListPending returns scores awaiting an admin decision
func (s *ScoreService) ListPending(limit, offset int) ([]entity.Score, int64, error) {
	return s.scoreRepo.ListByStatus(entity.ScoreStatusPending, limit, offset)
}

// ListByEvent returns all scores submitted for an event
func (s *ScoreService) ListByEvent(eventID uint) ([]entity.Score, error) {
	if _, err := s.eventRepo.GetByID(eventID); err != nil {
		return nil, fmt.Errorf("event #%d: %w", eventID, err)
	}
	return s.scoreRepo.ListByEvent(eventID)
}
