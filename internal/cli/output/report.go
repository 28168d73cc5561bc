package output

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Report summarizes one split run for the --report flag.
type Report struct {
	InputFile        string        `json:"input_file"`
	OutputDir        string        `json:"output_dir"`
	TotalFiles       int           `json:"total_files"`
	FailedWrites     int           `json:"failed_writes"`
	Elapsed          time.Duration `json:"-"`
	ElapsedMS        int64         `json:"elapsed_ms"`
	TriggerCount     int           `json:"trigger_count"`
	IgnoreBlankLines bool          `json:"ignore_blank_lines"`
	Conditions       []string      `json:"conditions"`
}

// RenderReport writes the execution summary in the renderer's mode: a JSON
// document, a markdown table, or a styled table for terminals.
func (r *Renderer) RenderReport(rep *Report) error {
	rep.ElapsedMS = rep.Elapsed.Milliseconds()

	if r.mode == ModeJSON {
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	title := "Execution Summary"
	if r.mode == ModeMarkdown {
		_, _ = fmt.Fprintf(r.out, "## %s\n\n", title)
	} else {
		_, _ = fmt.Fprintln(r.out, r.styles.Title.Render(title))
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.AppendRows([]table.Row{
		{"Time elapsed", rep.Elapsed.Round(time.Millisecond).String()},
		{"Input file", rep.InputFile},
		{"Output directory", rep.OutputDir},
		{"Total files generated", rep.TotalFiles},
		{"Failed writes", rep.FailedWrites},
		{"Trigger count", rep.TriggerCount},
		{"Ignore blank lines", rep.IgnoreBlankLines},
		{"SQL conditions", strings.Join(rep.Conditions, ", ")},
	})

	if r.mode == ModeMarkdown {
		t.RenderMarkdown()
	} else {
		t.SetStyle(table.StyleLight)
		t.Render()
	}
	return nil
}
