package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mcasfest/fest-api/internal/domain/entity"
	"github.com/mcasfest/fest-api/internal/domain/repository"
	apperrors "github.com/mcasfest/fest-api/internal/pkg/errors"
)

// ScoreRepo implements repository.ScoreRepository
type ScoreRepo struct {
	db *gorm.DB
}

// NewScoreRepo creates a new score repository
func NewScoreRepo(db *gorm.DB) *ScoreRepo {
	return &ScoreRepo{db: db}
}

// Create persists a new judge score with its criterion details
func (r *ScoreRepo) Create(score *entity.Score) error {
	if err := r.db.Create(score).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: event #%d team #%d", repository.ErrDuplicateScore, score.EventID, score.TeamID)
		}
		return err
	}
	return nil
}

// GetByID returns a score with its criterion details
func (r *ScoreRepo) GetByID(id uint) (*entity.Score, error) {
	var score entity.Score
	err := r.db.Preload("Details").First(&score, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &score, nil
}

// UpdateStatus transitions a score out of pending. The WHERE clause guards
// the transition: a score already decided is not re-decided.
func (r *ScoreRepo) UpdateStatus(id uint, status string) error {
	result := r.db.Model(&entity.Score{}).
		Where("id = ? AND status = ?", id, entity.ScoreStatusPending).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Either the score does not exist or it is no longer pending.
		var count int64
		if err := r.db.Model(&entity.Score{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return apperrors.ErrNotFound
		}
		return apperrors.ErrConflict
	}
	return nil
}

// ListByEvent returns all scores for an event
func (r *ScoreRepo) ListByEvent(eventID uint) ([]entity.Score, error) {
	var scores []entity.Score
	err := r.db.Where("event_id = ?", eventID).
		Preload("Details").
		Order("created_at DESC").
		Find(&scores).Error
	return scores, err
}

// ListByStatus returns scores in a given status with pagination and total
func (r *ScoreRepo) ListByStatus(status string, limit, offset int) ([]entity.Score, int64, error) {
	var scores []entity.Score
	var total int64

	if err := r.db.Model(&entity.Score{}).Where("status = ?", status).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("status = ?", status).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&scores).Error
	if err != nil {
		return nil, 0, err
	}

	return scores, total, nil
}

// SumApprovedByTeam sums approved score totals per team for an event
func (r *ScoreRepo) SumApprovedByTeam(eventID uint) ([]repository.TeamScoreTotal, error) {
	var totals []repository.TeamScoreTotal
	sql := `
	SELECT team_id, COALESCE(SUM(total_score), 0) AS total
	FROM scores
	WHERE event_id = ? AND status = ?
	GROUP BY team_id;`

	err := r.db.Raw(sql, eventID, entity.ScoreStatusApproved).Scan(&totals).Error
	return totals, err
}

// DeleteByEvent removes the event's scores within the given transaction
func (r *ScoreRepo) DeleteByEvent(tx *gorm.DB, eventID uint) error {
	return tx.Where("event_id = ?", eventID).Delete(&entity.Score{}).Error
}
