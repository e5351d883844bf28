package service

import (
	"testing"
	"time"

	"github.com/traitlab/darkmirror/internal/apperr"
	"github.com/traitlab/darkmirror/internal/cache"
	"github.com/traitlab/darkmirror/internal/model"
	"github.com/traitlab/darkmirror/internal/repository"
	"gorm.io/gorm"
)

type fakeAssessmentRepo struct {
	assessments map[string]*model.Assessment
	loadCount   int
}

func newFakeAssessmentRepo(assessments ...*model.Assessment) *fakeAssessmentRepo {
	r := &fakeAssessmentRepo{assessments: map[string]*model.Assessment{}}
	for _, a := range assessments {
		r.assessments[a.ID] = a
	}
	return r
}

func (r *fakeAssessmentRepo) Create(a *model.Assessment) error {
	r.assessments[a.ID] = a
	return nil
}

func (r *fakeAssessmentRepo) FindByID(id string) (*model.Assessment, error) {
	a, ok := r.assessments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (r *fakeAssessmentRepo) FindByIDWithItems(id string) (*model.Assessment, error) {
	r.loadCount++
	return r.FindByID(id)
}

func (r *fakeAssessmentRepo) FindAllWithItemCount() ([]repository.AssessmentWithItemCount, error) {
	var out []repository.AssessmentWithItemCount
	for _, a := range r.assessments {
		out = append(out, repository.AssessmentWithItemCount{Assessment: *a, ItemCount: len(a.Items)})
	}
	return out, nil
}

func miniAssessment() *model.Assessment {
	return &model.Assessment{
		ID:       "mini",
		Name:     "Mini Scale",
		ScaleMax: 5,
		Items: []model.Item{
			{ID: 1, AssessmentID: "mini", Text: "a", Trait: "Drive", OrderInAssessment: 1},
			{ID: 2, AssessmentID: "mini", Text: "b", Trait: "Drive", Reversed: true, OrderInAssessment: 2},
			{ID: 3, AssessmentID: "mini", Text: "c", Trait: "Poise", OrderInAssessment: 3},
		},
		CreatedAt: time.Now(),
	}
}

func TestListAssessments(t *testing.T) {
	svc := NewAssessmentService(newFakeAssessmentRepo(miniAssessment()), cache.New(time.Minute))

	list, err := svc.ListAssessments()
	if err != nil {
		t.Fatalf("ListAssessments: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("got %d assessments, want 1", len(list))
	}
	got := list[0]
	if got.ID != "mini" || got.Name != "Mini Scale" || got.ScaleMax != 5 || got.ItemCount != 3 {
		t.Fatalf("summary = %+v", got)
	}
}

func TestGetQuestionsMapsItems(t *testing.T) {
	svc := NewAssessmentService(newFakeAssessmentRepo(miniAssessment()), cache.New(time.Minute))

	detail, err := svc.GetQuestions("mini")
	if err != nil {
		t.Fatalf("GetQuestions: %v", err)
	}
	if detail.ID != "mini" || detail.ScaleMax != 5 || len(detail.Items) != 3 {
		t.Fatalf("detail = %+v", detail)
	}
	if !detail.Items[1].Reversed || detail.Items[1].OrderInAssessment != 2 {
		t.Fatalf("item[1] = %+v, want reversed with order 2", detail.Items[1])
	}
}

func TestGetQuestionsServesFromCache(t *testing.T) {
	repo := newFakeAssessmentRepo(miniAssessment())
	svc := NewAssessmentService(repo, cache.New(time.Minute))

	for i := 0; i < 3; i++ {
		if _, err := svc.GetQuestions("mini"); err != nil {
			t.Fatalf("GetQuestions call %d: %v", i, err)
		}
	}
	if repo.loadCount != 1 {
		t.Fatalf("repository loaded %d times, want 1", repo.loadCount)
	}
}

func TestGetQuestionsUnknownAssessment(t *testing.T) {
	repo := newFakeAssessmentRepo()
	svc := NewAssessmentService(repo, cache.New(time.Minute))

	_, err := svc.GetQuestions("missing")
	if e, ok := apperr.As(err); !ok || e.Code != apperr.CodeAssessmentNotFound {
		t.Fatalf("GetQuestions(missing) = %v, want assessment_not_found", err)
	}
	// The miss must not be cached.
	repo.assessments["missing"] = miniAssessment()
	repo.assessments["missing"].ID = "missing"
	if _, err := svc.GetQuestions("missing"); err != nil {
		t.Fatalf("GetQuestions after assessment appeared: %v", err)
	}
}
