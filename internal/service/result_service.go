package service

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/mcasfest/fest-api/internal/domain/entity"
	"github.com/mcasfest/fest-api/internal/domain/repository"
	apperrors "github.com/mcasfest/fest-api/internal/pkg/errors"
	"github.com/mcasfest/fest-api/internal/scoring"
)

// ResultService records and deletes placements and keeps team standings
// consistent with them. All aggregate writes go through atomic deltas in
// the same transaction as the result row, so the counters can neither race
// nor drift from the results within one instance.
type ResultService struct {
	resultRepo repository.ResultRepository
	teamRepo   repository.TeamRepository
	eventRepo  repository.EventRepository
	tx         TxManager
	notifier   ResultNotifier
}

// NewResultService creates a new result service
func NewResultService(
	resultRepo repository.ResultRepository,
	teamRepo repository.TeamRepository,
	eventRepo repository.EventRepository,
	tx TxManager,
	notifier ResultNotifier,
) *ResultService {
	return &ResultService{
		resultRepo: resultRepo,
		teamRepo:   teamRepo,
		eventRepo:  eventRepo,
		tx:         tx,
		notifier:   notifier,
	}
}

// RecordResultInput describes a placement to record. ExplicitPoints, when
// set, overrides the points table.
type RecordResultInput struct {
	EventID         uint
	TeamID          uint
	Position        string
	ParticipantName string
	ExplicitPoints  *int
}

// Record persists a new result and applies its aggregate contribution.
// Points are resolved from the event's stored category and type (never from
// client input) and frozen on the row. The event is marked completed
// unconditionally.
func (s *ResultService) Record(input RecordResultInput) (*entity.Result, error) {
	if !scoring.ValidPosition(scoring.Position(input.Position)) {
		return nil, fmt.Errorf("%w: unknown position %q", apperrors.ErrValidation, input.Position)
	}

	event, err := s.eventRepo.GetByID(input.EventID)
	if err != nil {
		return nil, fmt.Errorf("event #%d: %w", input.EventID, err)
	}
	if _, err := s.teamRepo.GetByID(input.TeamID); err != nil {
		return nil, fmt.Errorf("team #%d: %w", input.TeamID, err)
	}

	points := 0
	if input.ExplicitPoints != nil {
		if *input.ExplicitPoints < 0 {
			return nil, fmt.Errorf("%w: points must not be negative", apperrors.ErrValidation)
		}
		points = *input.ExplicitPoints
	} else {
		points = scoring.PointsForEventType(
			scoring.Position(input.Position),
			scoring.Category(event.Category),
			event.EventType,
		)
	}

	result := &entity.Result{
		EventID:         input.EventID,
		TeamID:          input.TeamID,
		Position:        input.Position,
		Points:          points,
		ParticipantName: input.ParticipantName,
	}

	gold, silver, bronze := result.MedalDelta()
	delta := repository.AggregateDelta{Points: points, Gold: gold, Silver: silver, Bronze: bronze}

	err = s.tx.Transaction(func(tx *gorm.DB) error {
		if err := s.resultRepo.Create(tx, result); err != nil {
			return fmt.Errorf("insert result: %w", err)
		}
		if err := s.teamRepo.ApplyAggregateDelta(tx, input.TeamID, delta); err != nil {
			return fmt.Errorf("update team standings: %w", err)
		}
		if err := s.eventRepo.MarkCompleted(tx, input.EventID); err != nil {
			return fmt.Errorf("complete event: %w", err)
		}
		return nil
	})
	if err != nil {
		// The transaction rolled back as a unit: no result row without its
		// standings update, and vice versa.
		log.Printf("[ResultService] Record failed for event #%d team #%d: %v", input.EventID, input.TeamID, err)
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.ResultRecorded(result)
	}
	s.standingsChanged()
	return result, nil
}

// Delete removes a result and reverses its aggregate contribution, clamped
// at zero by the store. The event's completed status is NOT reverted, even
// if this was the event's only result.
func (s *ResultService) Delete(resultID uint) error {
	result, err := s.resultRepo.GetByID(resultID)
	if err != nil {
		return fmt.Errorf("result #%d: %w", resultID, err)
	}

	gold, silver, bronze := result.MedalDelta()
	delta := repository.AggregateDelta{Points: result.Points, Gold: gold, Silver: silver, Bronze: bronze}

	err = s.tx.Transaction(func(tx *gorm.DB) error {
		if err := s.resultRepo.Delete(tx, resultID); err != nil {
			return fmt.Errorf("delete result: %w", err)
		}
		if err := s.teamRepo.ApplyAggregateDelta(tx, result.TeamID, delta.Negate()); err != nil {
			return fmt.Errorf("revert team standings: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Printf("[ResultService] Delete failed for result #%d (team #%d): %v", resultID, result.TeamID, err)
		return err
	}

	if s.notifier != nil {
		s.notifier.ResultDeleted(result)
	}
	s.standingsChanged()
	return nil
}

// GetByID returns a single result
func (s *ResultService) GetByID(resultID uint) (*entity.Result, error) {
	return s.resultRepo.GetByID(resultID)
}

// ListByEvent returns all results recorded for an event
func (s *ResultService) ListByEvent(eventID uint) ([]entity.Result, error) {
	if _, err := s.eventRepo.GetByID(eventID); err != nil {
		return nil, fmt.Errorf("event #%d: %w", eventID, err)
	}
	return s.resultRepo.ListByEvent(eventID)
}

func (s *ResultService) standingsChanged() {
	if s.notifier != nil {
		s.notifier.StandingsChanged()
	}
}
