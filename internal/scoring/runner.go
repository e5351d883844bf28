package scoring

import (
	"fmt"

	"github.com/traitlab/darkmirror/internal/apperr"
)

// RunState is the lifecycle of a single assessment run.
type RunState int

const (
	StateIdle RunState = iota
	StateInProgress
	StateCompleted
)

func (s RunState) String() string {
	switch s {
	case StateInProgress:
		return "in_progress"
	case StateCompleted:
		return "completed"
	default:
		return "idle"
	}
}

// Runner drives one assessment run at a time. Start walks it into
// InProgress, SubmitAnswer advances item by item, and ComputeTraitScores is
// only legal once the run is Completed. One run per Runner; not safe for
// concurrent use.
type Runner struct {
	catalog *Catalog

	state   RunState
	def     *Definition
	index   int
	answers []AnswerEvent
}

func NewRunner(catalog *Catalog) *Runner {
	return &Runner{catalog: catalog}
}

// State reports the current run state.
func (r *Runner) State() RunState { return r.state }

// Definition returns the active run's definition, nil while Idle.
func (r *Runner) Definition() *Definition { return r.def }

// CurrentItem returns the item awaiting an answer. ok is false outside
// InProgress.
func (r *Runner) CurrentItem() (Item, bool) {
	if r.state != StateInProgress {
		return Item{}, false
	}
	return r.def.Items[r.index], true
}

// Start begins a run for assessmentID, discarding any prior unsubmitted run.
// Unknown ids and empty definitions are rejected.
func (r *Runner) Start(assessmentID string) error {
	def := r.catalog.Get(assessmentID)
	if def == nil {
		return apperr.UnknownAssessment(fmt.Sprintf("no assessment with id %q", assessmentID))
	}
	if len(def.Items) == 0 {
		return apperr.UnknownAssessment(fmt.Sprintf("assessment %q has no items", assessmentID))
	}
	r.state = StateInProgress
	r.def = def
	r.index = 0
	r.answers = r.answers[:0]
	return nil
}

// SubmitAnswer records raw for the current item and advances. done reports
// whether the run just completed. Calls outside InProgress (including after
// completion) are rejected rather than overwriting recorded answers.
func (r *Runner) SubmitAnswer(raw int) (done bool, err error) {
	if r.state != StateInProgress {
		return false, apperr.NotCompleted(fmt.Sprintf("cannot submit an answer while run is %s", r.state))
	}
	if err := ValidateValue(raw, r.def.ScaleMax); err != nil {
		return false, err
	}
	item := r.def.Items[r.index]
	r.answers = append(r.answers, AnswerEvent{
		QuestionIndex: r.index,
		RawValue:      raw,
		Trait:         item.Trait,
		Reversed:      item.Reversed,
	})
	r.index++
	if r.index == len(r.def.Items) {
		r.state = StateCompleted
		return true, nil
	}
	return false, nil
}

// ComputeTraitScores converts the completed run into percentage scores per
// trait, in first-occurrence trait order.
func (r *Runner) ComputeTraitScores() ([]TraitScore, error) {
	if r.state != StateCompleted {
		return nil, apperr.NotCompleted(fmt.Sprintf("run is %s, scores require a completed run", r.state))
	}
	return TraitScores(r.def, r.answers), nil
}

// Answers returns a copy of the recorded answer events, typically for
// submission to the results service once the run completes.
func (r *Runner) Answers() []AnswerEvent {
	out := make([]AnswerEvent, len(r.answers))
	copy(out, r.answers)
	return out
}

// Reset returns the runner to Idle, dropping any recorded answers.
func (r *Runner) Reset() {
	r.state = StateIdle
	r.def = nil
	r.index = 0
	r.answers = r.answers[:0]
}
