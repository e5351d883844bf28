package model

import (
	"time"

	"gorm.io/gorm"
)

// Assessment is a named, ordered questionnaire. The built-in scales are
// seeded from the scoring catalog at startup; admins may add custom ones.
// Items are reference data: immutable once created.
type Assessment struct {
	ID        string         `gorm:"primarykey" json:"id"` // e.g. "sdt3", "mach_iv"
	Name      string         `json:"name" gorm:"not null;uniqueIndex"`
	ScaleMax  int            `json:"scale_max" gorm:"not null"` // 5 or 7
	Items     []Item         `json:"items,omitempty" gorm:"foreignKey:AssessmentID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
