package export

import (
	"math"
	"testing"

	"github.com/traitlab/darkmirror/internal/scoring"
)

func sampleScores() []scoring.TraitScore {
	return []scoring.TraitScore{
		{Trait: "Machiavellianism", Value: 73.333333},
		{Trait: "Narcissism", Value: 48.888888},
		{Trait: "Psychopathy", Value: 20},
	}
}

func assertRoundTrip(t *testing.T, format Format) {
	t.Helper()
	in := sampleScores()

	data, err := Export(in, format)
	if err != nil {
		t.Fatalf("Export(%s): %v", format, err)
	}
	out, err := Import(data, format)
	if err != nil {
		t.Fatalf("Import(%s): %v", format, err)
	}
	if len(out) != len(in) {
		t.Fatalf("%s round trip: %d scores, want %d", format, len(out), len(in))
	}
	for i := range in {
		if out[i].Trait != in[i].Trait {
			t.Fatalf("%s round trip: trait[%d] = %q, want %q", format, i, out[i].Trait, in[i].Trait)
		}
		// Text and CSV carry two decimals; the mapping must survive to 2dp.
		if math.Abs(out[i].Value-in[i].Value) > 0.005 {
			t.Fatalf("%s round trip: value[%d] = %f, want %f", format, i, out[i].Value, in[i].Value)
		}
	}
}

func TestRoundTripText(t *testing.T) { assertRoundTrip(t, FormatText) }
func TestRoundTripCSV(t *testing.T)  { assertRoundTrip(t, FormatCSV) }
func TestRoundTripJSON(t *testing.T) { assertRoundTrip(t, FormatJSON) }

func TestFormatFromExtension(t *testing.T) {
	cases := []struct {
		ext  string
		want Format
	}{
		{"txt", FormatText},
		{".csv", FormatCSV},
		{".JSON", FormatJSON},
	}
	for _, c := range cases {
		got, err := FormatFromExtension(c.ext)
		if err != nil || got != c.want {
			t.Fatalf("FormatFromExtension(%q) = %v,%v want %v", c.ext, got, err, c.want)
		}
	}
	if _, err := FormatFromExtension("xlsx"); err == nil {
		t.Fatal("FormatFromExtension(xlsx) succeeded")
	}
}

func TestImportRejectsOutOfRangeScores(t *testing.T) {
	if _, err := ImportText([]byte("Narcissism: 120.00%\n")); err == nil {
		t.Fatal("text import accepted score above 100")
	}
	if _, err := ImportCSV([]byte("trait,score\nNarcissism,-3\n")); err == nil {
		t.Fatal("csv import accepted negative score")
	}
	if _, err := ImportJSON([]byte(`{"results":[{"trait":"X","value":101}]}`)); err == nil {
		t.Fatal("json import accepted score above 100")
	}
}

func TestImportTextTraitsWithColons(t *testing.T) {
	scores, err := ImportText([]byte("Honesty: Humility: 55.00%\n"))
	if err != nil {
		t.Fatalf("ImportText: %v", err)
	}
	if scores[0].Trait != "Honesty: Humility" || scores[0].Value != 55 {
		t.Fatalf("parsed %+v", scores[0])
	}
}

func TestImportCSVWithoutHeader(t *testing.T) {
	scores, err := ImportCSV([]byte("Sadism,12.50\n"))
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if len(scores) != 1 || scores[0].Trait != "Sadism" {
		t.Fatalf("parsed %+v", scores)
	}
}
