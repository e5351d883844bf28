package repository

import (
	"github.com/traitlab/darkmirror/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	// CreateTx writes one answer row inside the caller's transaction, so a
	// failed submission rolls back its result row and every answer together.
	CreateTx(tx *gorm.DB, answer *model.Answer) error
	FindAllByResult(resultID uint) ([]model.Answer, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) CreateTx(tx *gorm.DB, answer *model.Answer) error {
	return tx.Create(answer).Error
}

func (r *answerRepository) FindAllByResult(resultID uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.Where("result_id = ?", resultID).Order("id ASC").Find(&answers).Error
	return answers, err
}
