package dto

import "time"

// AssessmentSummaryDTO is used for listing available assessments.
type AssessmentSummaryDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ScaleMax  int       `json:"scale_max"`
	ItemCount int       `json:"item_count"`
	CreatedAt time.Time `json:"created_at"`
}

// ItemResponseDTO is a single question as presented to a respondent.
type ItemResponseDTO struct {
	ID                uint   `json:"id"`
	AssessmentID      string `json:"assessment_id"`
	Text              string `json:"text"`
	Trait             string `json:"trait"`
	Reversed          bool   `json:"reversed"`
	OrderInAssessment int    `json:"order_in_assessment"`
}

// AssessmentDetailDTO is a full assessment with its ordered items.
type AssessmentDetailDTO struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	ScaleMax int               `json:"scale_max"`
	Items    []ItemResponseDTO `json:"items"`
}

// ItemCreateDTO is used within AssessmentCreateDTO for admin creation.
type ItemCreateDTO struct {
	Text              string `json:"text" binding:"required"`
	Trait             string `json:"trait" binding:"required"`
	Reversed          bool   `json:"reversed"`
	OrderInAssessment int    `json:"order_in_assessment" binding:"required,min=1"`
}

// AssessmentCreateDTO is for admins to register a custom scale with all of
// its items in one request.
type AssessmentCreateDTO struct {
	ID       string          `json:"id" binding:"required,min=2,max=64"`
	Name     string          `json:"name" binding:"required"`
	ScaleMax int             `json:"scale_max" binding:"required,likertscale"`
	Items    []ItemCreateDTO `json:"items" binding:"required,min=1,dive"`
}
