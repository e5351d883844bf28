package scoring

import (
	"testing"

	"github.com/traitlab/darkmirror/internal/apperr"
)

func TestRunnerStartUnknownAssessment(t *testing.T) {
	r := NewRunner(NewCatalog())
	err := r.Start("nope")
	if err == nil {
		t.Fatal("Start with unknown id succeeded")
	}
	e, ok := apperr.As(err)
	if !ok || e.Code != apperr.CodeUnknownAssessment {
		t.Fatalf("got %v, want unknown_assessment", err)
	}
	if r.State() != StateIdle {
		t.Fatalf("state after failed start = %v, want idle", r.State())
	}
}

func TestRunnerStartRejectsEmptyDefinition(t *testing.T) {
	c := &Catalog{defs: map[string]*Definition{
		"empty": {ID: "empty", Name: "Empty", ScaleMax: 5},
	}}
	r := NewRunner(c)
	err := r.Start("empty")
	if e, ok := apperr.As(err); !ok || e.Code != apperr.CodeUnknownAssessment {
		t.Fatalf("got %v, want unknown_assessment for empty definition", err)
	}
}

func TestRunnerFullRun(t *testing.T) {
	r := NewRunner(NewCatalog())
	if err := r.Start("dirty_dozen"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	def := r.Definition()

	for i := 0; i < len(def.Items); i++ {
		item, ok := r.CurrentItem()
		if !ok {
			t.Fatalf("no current item at index %d", i)
		}
		if item.Order != i+1 {
			t.Fatalf("item order %d at index %d", item.Order, i)
		}
		done, err := r.SubmitAnswer(5)
		if err != nil {
			t.Fatalf("SubmitAnswer at index %d: %v", i, err)
		}
		if wantDone := i == len(def.Items)-1; done != wantDone {
			t.Fatalf("done=%v at index %d", done, i)
		}
	}

	scores, err := r.ComputeTraitScores()
	if err != nil {
		t.Fatalf("ComputeTraitScores: %v", err)
	}
	// Dirty Dozen has no reversed items, so all 5s max out every trait.
	if len(scores) != 3 {
		t.Fatalf("got %d traits, want 3", len(scores))
	}
	want := []string{TraitMachiavellianism, TraitPsychopathy, TraitNarcissism}
	for i, s := range scores {
		if s.Trait != want[i] {
			t.Fatalf("trait[%d] = %q, want %q", i, s.Trait, want[i])
		}
		if s.Value != 100.0 {
			t.Fatalf("%s scored %.2f, want 100", s.Trait, s.Value)
		}
	}
}

func TestRunnerRejectsSubmitBeyondCompletion(t *testing.T) {
	r := NewRunner(NewCatalog())
	if err := r.Start("dirty_dozen"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	for range r.Definition().Items {
		if _, err := r.SubmitAnswer(3); err != nil {
			t.Fatalf("SubmitAnswer: %v", err)
		}
	}
	if _, err := r.SubmitAnswer(3); err == nil {
		t.Fatal("SubmitAnswer after completion succeeded")
	}
	if got := len(r.Answers()); got != 12 {
		t.Fatalf("answer count after over-submit = %d, want 12", got)
	}
}

func TestRunnerRejectsOutOfScaleValues(t *testing.T) {
	r := NewRunner(NewCatalog())
	if err := r.Start("sdt3"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	for _, raw := range []int{0, 6, -1} {
		_, err := r.SubmitAnswer(raw)
		e, ok := apperr.As(err)
		if !ok || e.Code != apperr.CodeInvalidAnswerValue {
			t.Fatalf("SubmitAnswer(%d) = %v, want invalid_answer_value", raw, err)
		}
	}
	// Rejected answers must not advance the run.
	if item, _ := r.CurrentItem(); item.Order != 1 {
		t.Fatalf("run advanced past item 1 after rejected answers")
	}
}

func TestRunnerSevenPointScale(t *testing.T) {
	r := NewRunner(NewCatalog())
	if err := r.Start("mach_iv"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := r.SubmitAnswer(7); err != nil {
		t.Fatalf("SubmitAnswer(7) on MACH-IV: %v", err)
	}
	if _, err := r.SubmitAnswer(8); err == nil {
		t.Fatal("SubmitAnswer(8) on MACH-IV succeeded")
	}
}

func TestRunnerComputeRequiresCompletion(t *testing.T) {
	r := NewRunner(NewCatalog())

	_, err := r.ComputeTraitScores()
	if e, ok := apperr.As(err); !ok || e.Code != apperr.CodeNotCompleted {
		t.Fatalf("ComputeTraitScores while idle = %v, want not_completed", err)
	}

	if err := r.Start("sdt3"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := r.SubmitAnswer(3); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	_, err = r.ComputeTraitScores()
	if e, ok := apperr.As(err); !ok || e.Code != apperr.CodeNotCompleted {
		t.Fatalf("ComputeTraitScores mid-run = %v, want not_completed", err)
	}
}

func TestRunnerRestartClearsAnswers(t *testing.T) {
	r := NewRunner(NewCatalog())
	if err := r.Start("dirty_dozen"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := r.SubmitAnswer(4); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	if err := r.Start("sdt3"); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if got := len(r.Answers()); got != 0 {
		t.Fatalf("answers after restart = %d, want 0", got)
	}
	if item, _ := r.CurrentItem(); item.Order != 1 {
		t.Fatalf("restart did not reset to first item")
	}
}
