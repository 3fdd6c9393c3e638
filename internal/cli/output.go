package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"termcal/internal/term"
)

// OutputFormat specifies the dry-run output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// factRow is the JSON shape of one fact.
type factRow struct {
	Title       string `json:"title"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Description string `json:"description,omitempty"`
}

// jsonOutput is the JSON dry-run document.
type jsonOutput struct {
	Term         string    `json:"term"`
	AcademicURL  string    `json:"academic_url"`
	DeadlinesURL string    `json:"deadlines_url"`
	FactCount    int       `json:"fact_count"`
	Facts        []factRow `json:"facts"`
}

// WriteFacts writes the fact list in the requested format.
func WriteFacts(w io.Writer, model *term.Model, facts []term.Fact, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, model, facts)
	case FormatText:
		return writeText(w, model, facts)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, model *term.Model, facts []term.Fact) error {
	out := jsonOutput{
		Term:         model.Name(),
		AcademicURL:  model.AcademicURL,
		DeadlinesURL: model.DeadlinesURL,
		FactCount:    len(facts),
	}
	for _, f := range facts {
		out.Facts = append(out.Facts, factRow{
			Title:       f.Title,
			Start:       f.Start.Format("2006-01-02"),
			End:         f.End.Format("2006-01-02"),
			Description: f.Description,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func writeText(w io.Writer, model *term.Model, facts []term.Fact) error {
	fmt.Fprintf(w, "%s: %d events\n", model.Name(), len(facts))
	for _, f := range facts {
		if f.Start.Equal(f.End) {
			fmt.Fprintf(w, "  %s: %s\n", f.Title, f.Start.Format("2006-01-02"))
			continue
		}
		fmt.Fprintf(w, "  %s: %s .. %s\n", f.Title, f.Start.Format("2006-01-02"), f.End.Format("2006-01-02"))
	}
	return nil
}
