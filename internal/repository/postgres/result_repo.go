package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mcasfest/fest-api/internal/domain/entity"
	"github.com/mcasfest/fest-api/internal/domain/repository"
	apperrors "github.com/mcasfest/fest-api/internal/pkg/errors"
)

// ResultRepo implements repository.ResultRepository
type ResultRepo struct {
	db *gorm.DB
}

// NewResultRepo creates a new result repository
func NewResultRepo(db *gorm.DB) *ResultRepo {
	return &ResultRepo{db: db}
}

// Create persists a new result within the given transaction
func (r *ResultRepo) Create(tx *gorm.DB, result *entity.Result) error {
	return tx.Create(result).Error
}

// GetByID returns a result by its ID
func (r *ResultRepo) GetByID(id uint) (*entity.Result, error) {
	var result entity.Result
	err := r.db.First(&result, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

// Delete removes a result row within the given transaction
func (r *ResultRepo) Delete(tx *gorm.DB, id uint) error {
	result := tx.Delete(&entity.Result{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListByEvent returns all results for an event in placement order
func (r *ResultRepo) ListByEvent(eventID uint) ([]entity.Result, error) {
	var results []entity.Result
	err := r.db.Where("event_id = ?", eventID).
		Order("points DESC, id ASC").
		Find(&results).Error
	return results, err
}

// ListByTeam returns a team's results with pagination
func (r *ResultRepo) ListByTeam(teamID uint, limit, offset int) ([]entity.Result, error) {
	var results []entity.Result
	err := r.db.Where("team_id = ?", teamID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&results).Error
	return results, err
}

// AggregateByTeam sums each team's contribution from the event's results
// using one grouped query, so event deletion reverts standings with a
// single update per team rather than one per result.
func (r *ResultRepo) AggregateByTeam(eventID uint) ([]repository.TeamReversal, error) {
	var reversals []repository.TeamReversal
	sql := `
	SELECT
	    team_id,
	    COALESCE(SUM(points), 0)                        AS points,
	    COUNT(*) FILTER (WHERE position = '1st')        AS gold,
	    COUNT(*) FILTER (WHERE position = '2nd')        AS silver,
	    COUNT(*) FILTER (WHERE position = '3rd')        AS bronze
	FROM results
	WHERE event_id = ?
	GROUP BY team_id;`

	err := r.db.Raw(sql, eventID).Scan(&reversals).Error
	return reversals, err
}
