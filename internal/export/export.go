// Package export serializes trait score mappings to the interchange formats
// the assessment UI offers (plain text, CSV, JSON) and parses them back for
// re-display. Scores are percentages in [0,100].
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/traitlab/darkmirror/internal/scoring"
)

// Format identifies a supported serialization format.
type Format string

const (
	FormatText Format = "txt"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ContentType returns the MIME type served for downloads in this format.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatJSON:
		return "application/json"
	default:
		return "text/plain; charset=utf-8"
	}
}

// FormatFromExtension maps a file extension (with or without the dot) to a
// Format.
func FormatFromExtension(ext string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "txt":
		return FormatText, nil
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", ext)
	}
}

type jsonDocument struct {
	Results []scoring.TraitScore `json:"results"`
}

// Export renders scores in the given format. Ordering of the input slice is
// preserved in every format.
func Export(scores []scoring.TraitScore, format Format) ([]byte, error) {
	switch format {
	case FormatText:
		return ExportText(scores), nil
	case FormatCSV:
		return ExportCSV(scores)
	case FormatJSON:
		return ExportJSON(scores)
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

// ExportText renders "Trait: 12.34%" lines.
func ExportText(scores []scoring.TraitScore) []byte {
	buf := &bytes.Buffer{}
	for _, s := range scores {
		fmt.Fprintf(buf, "%s: %.2f%%\n", s.Trait, s.Value)
	}
	return buf.Bytes()
}

// ExportCSV renders a two-column trait,score document with a header row.
func ExportCSV(scores []scoring.TraitScore) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	_ = w.Write([]string{"trait", "score"})
	for _, s := range scores {
		if err := w.Write([]string{s.Trait, strconv.FormatFloat(s.Value, 'f', 2, 64)}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// ExportJSON renders {"results":[{"trait":...,"value":...},...]}.
func ExportJSON(scores []scoring.TraitScore) ([]byte, error) {
	return json.MarshalIndent(jsonDocument{Results: scores}, "", "  ")
}

// Import parses data previously produced by Export. Values are validated as
// numeric scores in [0,100]; nothing else about the content is trusted.
func Import(data []byte, format Format) ([]scoring.TraitScore, error) {
	switch format {
	case FormatText:
		return ImportText(data)
	case FormatCSV:
		return ImportCSV(data)
	case FormatJSON:
		return ImportJSON(data)
	default:
		return nil, fmt.Errorf("unsupported import format %q", format)
	}
}

// ImportText parses "Trait: 12.34%" lines. Blank lines are skipped.
func ImportText(data []byte) ([]scoring.TraitScore, error) {
	var scores []scoring.TraitScore
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		idx := strings.LastIndex(line, ":")
		if idx < 1 {
			return nil, fmt.Errorf("malformed line %q", line)
		}
		trait := strings.TrimSpace(line[:idx])
		raw := strings.TrimSuffix(strings.TrimSpace(line[idx+1:]), "%")
		value, err := parseScore(raw)
		if err != nil {
			return nil, fmt.Errorf("line %q: %w", line, err)
		}
		scores = append(scores, scoring.TraitScore{Trait: trait, Value: value})
	}
	return scores, nil
}

// ImportCSV parses the two-column trait,score document. A leading header row
// is tolerated and skipped.
func ImportCSV(data []byte) ([]scoring.TraitScore, error) {
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, err
	}
	var scores []scoring.TraitScore
	for i, rec := range records {
		if len(rec) < 2 {
			return nil, fmt.Errorf("row %d: expected trait,score", i+1)
		}
		if i == 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "trait") {
			continue
		}
		value, err := parseScore(rec[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		scores = append(scores, scoring.TraitScore{Trait: strings.TrimSpace(rec[0]), Value: value})
	}
	return scores, nil
}

// ImportJSON parses the {"results":[...]} document.
func ImportJSON(data []byte) ([]scoring.TraitScore, error) {
	var doc jsonDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	for _, s := range doc.Results {
		if s.Value < 0 || s.Value > 100 {
			return nil, fmt.Errorf("score %.2f for trait %q outside 0-100", s.Value, s.Trait)
		}
	}
	return doc.Results, nil
}

func parseScore(raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid score %q", raw)
	}
	if value < 0 || value > 100 {
		return 0, fmt.Errorf("score %.2f outside 0-100", value)
	}
	return value, nil
}
