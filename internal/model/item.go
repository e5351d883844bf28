package model

import (
	"time"

	"gorm.io/gorm"
)

// Item is a single questionnaire statement, tagged with the trait it
// measures. Reversed items score (scale_max+1)-value instead of the raw value.
type Item struct {
	ID                uint           `gorm:"primarykey" json:"id"`
	AssessmentID      string         `json:"assessment_id" gorm:"not null;index"`
	Text              string         `json:"text" gorm:"type:text;not null"`
	Trait             string         `json:"trait" gorm:"not null"`
	Reversed          bool           `json:"reversed" gorm:"not null;default:false"`
	OrderInAssessment int            `json:"order_in_assessment" gorm:"not null"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}
