package model

import (
	"time"

	"gorm.io/gorm"
)

// Answer is one raw Likert response within a submission. Every answer row of
// a submission carries the same ResultID; rows are written atomically with
// their result.
type Answer struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	ResultID   uint           `json:"result_id" gorm:"not null;index"`
	UserID     uint           `json:"user_id" gorm:"not null;index"`
	QuestionID uint           `json:"question_id" gorm:"not null;index"`
	Value      int            `json:"value" gorm:"not null"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
