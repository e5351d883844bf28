package repository

import (
	"github.com/traitlab/darkmirror/internal/model"
	"gorm.io/gorm"
)

type ResultRepository interface {
	// CreateTx writes the result row inside the caller's transaction.
	CreateTx(tx *gorm.DB, result *model.AssessmentResult) error
	FindByIDWithAnswers(id uint) (*model.AssessmentResult, error)
	FindAllByUser(userID uint) ([]model.AssessmentResult, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) CreateTx(tx *gorm.DB, result *model.AssessmentResult) error {
	return tx.Create(result).Error
}

func (r *resultRepository) FindByIDWithAnswers(id uint) (*model.AssessmentResult, error) {
	var result model.AssessmentResult
	err := r.db.
		Preload("Assessment").
		Preload("Answers").
		First(&result, id).Error
	return &result, err
}

// FindAllByUser returns the user's results newest first.
func (r *resultRepository) FindAllByUser(userID uint) ([]model.AssessmentResult, error) {
	var results []model.AssessmentResult
	err := r.db.
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		Find(&results).Error
	return results, err
}
