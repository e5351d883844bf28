package service

import (
	"testing"

	"github.com/traitlab/darkmirror/internal/apperr"
	"github.com/traitlab/darkmirror/internal/dto"
)

func customScaleRequest() dto.AssessmentCreateDTO {
	return dto.AssessmentCreateDTO{
		ID:       "office_iv",
		Name:     "Office Politics IV",
		ScaleMax: 7,
		Items: []dto.ItemCreateDTO{
			{Text: "b", Trait: "Guile", OrderInAssessment: 2},
			{Text: "a", Trait: "Guile", Reversed: true, OrderInAssessment: 1},
		},
	}
}

func TestCreateAssessmentStoresOrderedItems(t *testing.T) {
	repo := newFakeAssessmentRepo()
	svc := NewAdminAssessmentService(repo)

	detail, err := svc.CreateAssessment(customScaleRequest())
	if err != nil {
		t.Fatalf("CreateAssessment: %v", err)
	}
	if detail.ID != "office_iv" || detail.ScaleMax != 7 || len(detail.Items) != 2 {
		t.Fatalf("detail = %+v", detail)
	}
	// Items come back sorted by their declared order, not request order.
	if detail.Items[0].OrderInAssessment != 1 || !detail.Items[0].Reversed {
		t.Fatalf("item[0] = %+v, want the reversed order-1 item first", detail.Items[0])
	}
	if _, ok := repo.assessments["office_iv"]; !ok {
		t.Fatal("assessment not persisted")
	}
}

func TestCreateAssessmentRejectsDuplicateID(t *testing.T) {
	repo := newFakeAssessmentRepo()
	svc := NewAdminAssessmentService(repo)

	if _, err := svc.CreateAssessment(customScaleRequest()); err != nil {
		t.Fatalf("first CreateAssessment: %v", err)
	}
	_, err := svc.CreateAssessment(customScaleRequest())
	if e, ok := apperr.As(err); !ok || e.Code != apperr.CodeDuplicateAssessment {
		t.Fatalf("second CreateAssessment = %v, want duplicate_assessment", err)
	}
}

func TestCreateAssessmentRejectsDuplicateItemOrder(t *testing.T) {
	svc := NewAdminAssessmentService(newFakeAssessmentRepo())

	req := customScaleRequest()
	req.Items[1].OrderInAssessment = 2
	_, err := svc.CreateAssessment(req)
	if e, ok := apperr.As(err); !ok || e.Code != apperr.CodeInvalidAnswerValue {
		t.Fatalf("duplicate order = %v, want invalid_answer_value", err)
	}
}
