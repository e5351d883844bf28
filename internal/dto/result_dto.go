package dto

import "time"

// AnswerSubmitDTO is one raw Likert response within a submission.
type AnswerSubmitDTO struct {
	QuestionID uint `json:"question_id" binding:"required"`
	Value      int  `json:"value" binding:"required"`
}

// ResultSubmitDTO is the body for submitting a completed run.
type ResultSubmitDTO struct {
	Answers []AnswerSubmitDTO `json:"answers" binding:"required,dive"`
}

// TraitDetailDTO is a trait's persisted aggregate plus the derived
// presentation percentage, so clients never re-derive it with the wrong
// scale maximum.
type TraitDetailDTO struct {
	Sum     int     `json:"sum"`
	Count   int     `json:"count"`
	Average float64 `json:"average"`
	Percent float64 `json:"percent"`
	Label   string  `json:"label"`
}

// ResultSummaryDTO lists one historical submission.
type ResultSummaryDTO struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"user_id"`
	AssessmentID string    `json:"assessment_id"`
	TotalScore   int       `json:"total_score"`
	CompletedAt  time.Time `json:"completed_at"`
}

// AnswerResponseDTO echoes one stored answer row.
type AnswerResponseDTO struct {
	ID         uint `json:"id"`
	QuestionID uint `json:"question_id"`
	Value      int  `json:"value"`
}

// ResultDetailDTO is the full view of one submission. TraitOrder preserves
// first-occurrence trait order for deterministic chart and legend rendering.
type ResultDetailDTO struct {
	ID             uint                      `json:"id"`
	UserID         uint                      `json:"user_id"`
	AssessmentID   string                    `json:"assessment_id"`
	AssessmentName string                    `json:"assessment_name,omitempty"`
	TotalScore     int                       `json:"total_score"`
	TraitOrder     []string                  `json:"trait_order"`
	Traits         map[string]TraitDetailDTO `json:"traits"`
	CompletedAt    time.Time                 `json:"completed_at"`
	Answers        []AnswerResponseDTO       `json:"answers,omitempty"`
}
