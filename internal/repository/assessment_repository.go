package repository

import (
	"github.com/traitlab/darkmirror/internal/model"
	"gorm.io/gorm"
)

type AssessmentRepository interface {
	Create(assessment *model.Assessment) error
	FindByID(id string) (*model.Assessment, error)
	FindByIDWithItems(id string) (*model.Assessment, error)
	FindAllWithItemCount() ([]AssessmentWithItemCount, error)
}

type AssessmentWithItemCount struct {
	model.Assessment
	ItemCount int
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) Create(assessment *model.Assessment) error {
	// GORM creates the associated items when assessment.Items is populated.
	return r.db.Create(assessment).Error
}

func (r *assessmentRepository) FindByID(id string) (*model.Assessment, error) {
	var assessment model.Assessment
	err := r.db.First(&assessment, "id = ?", id).Error
	return &assessment, err
}

// FindByIDWithItems preloads items in declared order regardless of how the
// rows happen to be stored.
func (r *assessmentRepository) FindByIDWithItems(id string) (*model.Assessment, error) {
	var assessment model.Assessment
	err := r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("items.order_in_assessment ASC")
	}).First(&assessment, "id = ?", id).Error
	return &assessment, err
}

func (r *assessmentRepository) FindAllWithItemCount() ([]AssessmentWithItemCount, error) {
	var results []AssessmentWithItemCount
	err := r.db.Model(&model.Assessment{}).
		Select("assessments.*, (SELECT COUNT(*) FROM items WHERE items.assessment_id = assessments.id AND items.deleted_at IS NULL) as item_count").
		Where("assessments.deleted_at IS NULL").
		Order("assessments.created_at ASC").
		Scan(&results).Error
	return results, err
}
