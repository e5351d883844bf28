package scoring

import (
	"fmt"

	"github.com/traitlab/darkmirror/internal/apperr"
)

// Definition is an immutable, ordered questionnaire. ScaleMax is the top of
// the Likert scale every item in the definition is answered on (5 for most
// scales, 7 for MACH-IV).
type Definition struct {
	ID       string
	Name     string
	ScaleMax int
	Items    []Item
}

// Item is a single statement the respondent rates. Reversed items contribute
// (ScaleMax+1)-raw instead of the raw value.
type Item struct {
	Text     string
	Trait    string
	Reversed bool
	Order    int
}

// AnswerEvent records one answered item during a run.
type AnswerEvent struct {
	QuestionIndex int
	RawValue      int
	Trait         string
	Reversed      bool
}

// TraitScore is a trait's normalized score as a percentage of the maximum
// attainable over that trait's items.
type TraitScore struct {
	Trait string  `json:"trait"`
	Value float64 `json:"value"`
}

// TraitAggregate carries the raw (reverse-adjusted) arithmetic for a trait,
// as persisted by the results service.
type TraitAggregate struct {
	Sum     int     `json:"sum"`
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

// ReverseScore inverts a raw Likert value on a scale topping out at scaleMax.
// raw must already be validated to [1, scaleMax]; this function does not clamp.
func ReverseScore(raw, scaleMax int) int {
	return (scaleMax + 1) - raw
}

// Contribution is the score an answer adds to its trait sum.
func Contribution(raw int, reversed bool, scaleMax int) int {
	if reversed {
		return ReverseScore(raw, scaleMax)
	}
	return raw
}

// ValidateValue rejects answers outside the definition's scale.
func ValidateValue(raw, scaleMax int) error {
	if raw < 1 || raw > scaleMax {
		return apperr.InvalidAnswerValue(fmt.Sprintf("answer value %d outside scale 1-%d", raw, scaleMax))
	}
	return nil
}

// Traits returns the definition's distinct trait names in first-occurrence
// order. The order is load-bearing: charts and exports render in it.
func (d *Definition) Traits() []string {
	seen := make(map[string]struct{}, 4)
	var traits []string
	for _, it := range d.Items {
		if _, ok := seen[it.Trait]; !ok {
			seen[it.Trait] = struct{}{}
			traits = append(traits, it.Trait)
		}
	}
	return traits
}

// TraitScores turns a completed run's answers into percentage scores per
// trait, keeping first-occurrence trait order. A trait with no answered items
// is omitted entirely rather than divided by zero.
func TraitScores(def *Definition, answers []AnswerEvent) []TraitScore {
	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, a := range answers {
		sums[a.Trait] += Contribution(a.RawValue, a.Reversed, def.ScaleMax)
		counts[a.Trait]++
	}

	var scores []TraitScore
	for _, trait := range def.Traits() {
		n := counts[trait]
		if n == 0 {
			continue
		}
		maxAttainable := float64(n * def.ScaleMax)
		scores = append(scores, TraitScore{
			Trait: trait,
			Value: float64(sums[trait]) / maxAttainable * 100,
		})
	}
	return scores
}

// Aggregate computes the service-side representation of a submission: the
// total of all raw values plus per-trait {sum,count,average} of the
// reverse-adjusted contributions. traitOrder preserves first-occurrence order
// for deterministic serialization.
func Aggregate(def *Definition, answers []AnswerEvent) (total int, traitOrder []string, byTrait map[string]TraitAggregate) {
	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, a := range answers {
		total += a.RawValue
		sums[a.Trait] += Contribution(a.RawValue, a.Reversed, def.ScaleMax)
		counts[a.Trait]++
	}

	byTrait = make(map[string]TraitAggregate, len(sums))
	for _, trait := range def.Traits() {
		n := counts[trait]
		if n == 0 {
			continue
		}
		traitOrder = append(traitOrder, trait)
		byTrait[trait] = TraitAggregate{
			Sum:     sums[trait],
			Count:   n,
			Average: float64(sums[trait]) / float64(n),
		}
	}
	return total, traitOrder, byTrait
}

// Interpret bands a percentage score the way the assessment UI presents it.
func Interpret(trait string, score float64) string {
	switch {
	case score < 30:
		return "Low " + trait
	case score < 60:
		return "Average " + trait
	default:
		return "High " + trait
	}
}
