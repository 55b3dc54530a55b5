package service

import (
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/mcasfest/fest-api/internal/domain/entity"
	"github.com/mcasfest/fest-api/internal/domain/repository"
	apperrors "github.com/mcasfest/fest-api/internal/pkg/errors"
)

// EventService manages fest events and their scoring criteria, including
// the standings bookkeeping when an event is deleted.
type EventService struct {
	eventRepo  repository.EventRepository
	resultRepo repository.ResultRepository
	scoreRepo  repository.ScoreRepository
	teamRepo   repository.TeamRepository
	tx         TxManager
	notifier   StandingsNotifier
}

// NewEventService creates a new event service
func NewEventService(
	eventRepo repository.EventRepository,
	resultRepo repository.ResultRepository,
	scoreRepo repository.ScoreRepository,
	teamRepo repository.TeamRepository,
	tx TxManager,
	notifier StandingsNotifier,
) *EventService {
	return &EventService{
		eventRepo:  eventRepo,
		resultRepo: resultRepo,
		scoreRepo:  scoreRepo,
		teamRepo:   teamRepo,
		tx:         tx,
		notifier:   notifier,
	}
}

// EventInput describes an event to create or update.
type EventInput struct {
	Title       string
	Description string
	Category    string
	EventType   string
	Venue       string
	Date        time.Time
}

func (in *EventInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(in.Venue) == "" {
		return fmt.Errorf("%w: venue is required", apperrors.ErrValidation)
	}
	if !entity.ValidEventCategory(in.Category) {
		return fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, in.Category)
	}
	// Closed set: unrecognized event types are rejected here, never silently
	// bucketed as individual.
	if !entity.ValidEventType(in.EventType) {
		return fmt.Errorf("%w: unknown event type %q", apperrors.ErrValidation, in.EventType)
	}
	return nil
}

// Create persists a new event in upcoming status
func (s *EventService) Create(input EventInput) (*entity.Event, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	event := &entity.Event{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Category:    input.Category,
		EventType:   input.EventType,
		Venue:       strings.TrimSpace(input.Venue),
		Date:        input.Date,
		Status:      entity.EventStatusUpcoming,
	}
	if err := s.eventRepo.Create(event); err != nil {
		return nil, err
	}
	return event, nil
}

// Update overwrites an event's editable fields. Status is not editable
// here: it only moves to completed through result recording.
func (s *EventService) Update(eventID uint, input EventInput) (*entity.Event, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, fmt.Errorf("event #%d: %w", eventID, err)
	}

	event.Title = strings.TrimSpace(input.Title)
	event.Description = input.Description
	event.Category = input.Category
	event.EventType = input.EventType
	event.Venue = strings.TrimSpace(input.Venue)
	event.Date = input.Date

	if err := s.eventRepo.Update(event); err != nil {
		return nil, err
	}
	return event, nil
}

// MarkOngoing flips an upcoming event to ongoing (admin action on fest day)
func (s *EventService) MarkOngoing(eventID uint) (*entity.Event, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, fmt.Errorf("event #%d: %w", eventID, err)
	}
	if event.Status == entity.EventStatusCompleted {
		return nil, fmt.Errorf("%w: event #%d already has results", apperrors.ErrConflict, eventID)
	}
	event.Status = entity.EventStatusOngoing
	if err := s.eventRepo.Update(event); err != nil {
		return nil, err
	}
	return event, nil
}

// GetByID returns an event
func (s *EventService) GetByID(eventID uint) (*entity.Event, error) {
	return s.eventRepo.GetByID(eventID)
}

// List returns events matching the filters
func (s *EventService) List(filters repository.EventFilters, limit, offset int) ([]entity.Event, int64, error) {
	return s.eventRepo.List(filters, limit, offset)
}

// Delete removes an event and reverts its standings contribution: one net
// aggregate update per team for the event's results, plus a points-only
// reversal of approved judge scores (the judge ledger has no positions, so
// medals stay untouched). Result and score rows cascade at the store level.
func (s *EventService) Delete(eventID uint) error {
	if _, err := s.eventRepo.GetByID(eventID); err != nil {
		return fmt.Errorf("event #%d: %w", eventID, err)
	}

	reversals, err := s.resultRepo.AggregateByTeam(eventID)
	if err != nil {
		return fmt.Errorf("aggregate results for event #%d: %w", eventID, err)
	}
	approved, err := s.scoreRepo.SumApprovedByTeam(eventID)
	if err != nil {
		return fmt.Errorf("sum approved scores for event #%d: %w", eventID, err)
	}

	err = s.tx.Transaction(func(tx *gorm.DB) error {
		for _, rev := range reversals {
			if err := s.teamRepo.ApplyAggregateDelta(tx, rev.TeamID, rev.Delta().Negate()); err != nil {
				return fmt.Errorf("revert results for team #%d: %w", rev.TeamID, err)
			}
		}
		for _, total := range approved {
			delta := repository.AggregateDelta{Points: -total.Total}
			if err := s.teamRepo.ApplyAggregateDelta(tx, total.TeamID, delta); err != nil {
				return fmt.Errorf("revert approved scores for team #%d: %w", total.TeamID, err)
			}
		}
		return s.eventRepo.Delete(tx, eventID)
	})
	if err != nil {
		log.Printf("[EventService] Cascade delete failed for event #%d: %v", eventID, err)
		return err
	}

	if s.notifier != nil {
		s.notifier.StandingsChanged()
	}
	return nil
}

// AddCriteria attaches judging criteria to an event
func (s *EventService) AddCriteria(eventID uint, criteria []entity.ScoreCriterion) error {
	if _, err := s.eventRepo.GetByID(eventID); err != nil {
		return fmt.Errorf("event #%d: %w", eventID, err)
	}
	for _, c := range criteria {
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("%w: criterion name is required", apperrors.ErrValidation)
		}
		if c.MaxPoints <= 0 {
			return fmt.Errorf("%w: criterion %q needs a positive max", apperrors.ErrValidation, c.Name)
		}
	}
	return s.eventRepo.AddCriteria(eventID, criteria)
}

// ListCriteria returns the judging criteria configured on an event
func (s *EventService) ListCriteria(eventID uint) ([]entity.ScoreCriterion, error) {
	if _, err := s.eventRepo.GetByID(eventID); err != nil {
		return nil, fmt.Errorf("event #%d: %w", eventID, err)
	}
	return s.eventRepo.ListCriteria(eventID)
}
