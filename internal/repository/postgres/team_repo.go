package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mcasfest/fest-api/internal/domain/entity"
	"github.com/mcasfest/fest-api/internal/domain/repository"
	apperrors "github.com/mcasfest/fest-api/internal/pkg/errors"
)

// TeamRepo implements repository.TeamRepository
type TeamRepo struct {
	db *gorm.DB
}

// NewTeamRepo creates a new team repository
func NewTeamRepo(db *gorm.DB) *TeamRepo {
	return &TeamRepo{db: db}
}

// Create persists a new team
func (r *TeamRepo) Create(team *entity.Team) error {
	if err := r.db.Create(team).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %q", repository.ErrDuplicateTeamName, team.Name)
		}
		return err
	}
	return nil
}

// GetByID returns a team by its ID
func (r *TeamRepo) GetByID(id uint) (*entity.Team, error) {
	var team entity.Team
	err := r.db.First(&team, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &team, nil
}

// Update saves changes to a team
func (r *TeamRepo) Update(team *entity.Team) error {
	if err := r.db.Save(team).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %q", repository.ErrDuplicateTeamName, team.Name)
		}
		return err
	}
	return nil
}

// Delete removes a team. Its results and scores cascade at the store level,
// but the caller is responsible for any standings bookkeeping first.
func (r *TeamRepo) Delete(id uint) error {
	result := r.db.Delete(&entity.Team{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// List returns teams ordered by name with total count
func (r *TeamRepo) List(limit, offset int) ([]entity.Team, int64, error) {
	var teams []entity.Team
	var total int64

	if err := r.db.Model(&entity.Team{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&teams).Error
	if err != nil {
		return nil, 0, err
	}

	return teams, total, nil
}

// aggregateDeltaUpdates builds the per-counter update expressions for one
// aggregate adjustment. Every counter is clamped at zero via GREATEST, so
// over-reversal (e.g. after a manual edit) can never drive an aggregate
// negative. Zero medal components are omitted to keep the UPDATE minimal.
func aggregateDeltaUpdates(delta repository.AggregateDelta) map[string]interface{} {
	updates := map[string]interface{}{
		"total_points": gorm.Expr("GREATEST(total_points + ?, 0)", delta.Points),
	}
	if delta.Gold != 0 {
		updates["gold"] = gorm.Expr("GREATEST(gold + ?, 0)", delta.Gold)
	}
	if delta.Silver != 0 {
		updates["silver"] = gorm.Expr("GREATEST(silver + ?, 0)", delta.Silver)
	}
	if delta.Bronze != 0 {
		updates["bronze"] = gorm.Expr("GREATEST(bronze + ?, 0)", delta.Bronze)
	}
	return updates
}

// ApplyAggregateDelta adjusts the team counters with one atomic UPDATE.
func (r *TeamRepo) ApplyAggregateDelta(tx *gorm.DB, teamID uint, delta repository.AggregateDelta) error {
	result := tx.Model(&entity.Team{}).Where("id = ?", teamID).Updates(aggregateDeltaUpdates(delta))
	if result.Error != nil {
		return fmt.Errorf("apply aggregate delta to team #%d failed: %w", teamID, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Leaderboard returns all teams in standings order.
func (r *TeamRepo) Leaderboard() ([]entity.Team, error) {
	var teams []entity.Team
	err := r.db.Order("total_points DESC, gold DESC, silver DESC, bronze DESC, name ASC").
		Find(&teams).Error
	return teams, err
}
