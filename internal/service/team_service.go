package service

import (
	"fmt"
	"strings"

	"github.com/mcasfest/fest-api/internal/domain/entity"
	"github.com/mcasfest/fest-api/internal/domain/repository"
	apperrors "github.com/mcasfest/fest-api/internal/pkg/errors"
)

// TeamService manages teams. Aggregate counters are never set through this
// service; they belong to the result flow.
type TeamService struct {
	teamRepo repository.TeamRepository
	notifier StandingsNotifier
}

// NewTeamService creates a new team service
func NewTeamService(teamRepo repository.TeamRepository, notifier StandingsNotifier) *TeamService {
	return &TeamService{teamRepo: teamRepo, notifier: notifier}
}

// Create persists a new team with zeroed aggregates
func (s *TeamService) Create(name string) (*entity.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: team name is required", apperrors.ErrValidation)
	}

	team := &entity.Team{Name: name}
	if err := s.teamRepo.Create(team); err != nil {
		return nil, err
	}
	s.standingsChanged()
	return team, nil
}

// Rename changes a team's name
func (s *TeamService) Rename(teamID uint, name string) (*entity.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: team name is required", apperrors.ErrValidation)
	}

	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		return nil, fmt.Errorf("team #%d: %w", teamID, err)
	}
	team.Name = name
	if err := s.teamRepo.Update(team); err != nil {
		return nil, err
	}
	s.standingsChanged()
	return team, nil
}

// Delete removes a team. Its results and scores cascade at the store level;
// standings for other teams are unaffected.
func (s *TeamService) Delete(teamID uint) error {
	if err := s.teamRepo.Delete(teamID); err != nil {
		return fmt.Errorf("team #%d: %w", teamID, err)
	}
	s.standingsChanged()
	return nil
}

// GetByID returns a team
func (s *TeamService) GetByID(teamID uint) (*entity.Team, error) {
	return s.teamRepo.GetByID(teamID)
}

// List returns teams with pagination
func (s *TeamService) List(limit, offset int) ([]entity.Team, int64, error) {
	return s.teamRepo.List(limit, offset)
}

func (s *TeamService) standingsChanged() {
	if s.notifier != nil {
		s.notifier.StandingsChanged()
	}
}
