package model

import (
	"time"

	"gorm.io/gorm"
)

// AssessmentResult is one completed submission: the total raw score plus a
// JSON document of per-trait {sum,count,average} aggregates. Created exactly
// once per run, never updated.
type AssessmentResult struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	UserID        uint           `json:"user_id" gorm:"not null;index"`
	AssessmentID  string         `json:"assessment_id" gorm:"not null;index"`
	Assessment    Assessment     `json:"assessment,omitempty" gorm:"foreignKey:AssessmentID"`
	TotalScore    int            `json:"total_score" gorm:"not null"`
	ResultDetails string         `json:"result_details" gorm:"type:text;not null"`
	CompletedAt   time.Time      `json:"completed_at" gorm:"not null;index"`
	Answers       []Answer       `json:"answers,omitempty" gorm:"foreignKey:ResultID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
