// Package output renders pipeline summaries as console text, JSON, or
// markdown.
package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/policyatlas/covergrade/internal/pipeline"
	"github.com/policyatlas/covergrade/internal/product"
)

// ConsoleFormatter renders a run for terminal display. Styling degrades
// to plain text automatically when stdout is not a terminal.
type ConsoleFormatter struct {
	w       io.Writer
	quiet   bool
	verbose bool
}

// NewConsoleFormatter creates a ConsoleFormatter writing to w.
func NewConsoleFormatter(w io.Writer, quiet, verbose bool) *ConsoleFormatter {
	return &ConsoleFormatter{w: w, quiet: quiet, verbose: verbose}
}

var (
	gradeStyles = map[string]lipgloss.Style{
		product.GradeAPlus: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")), // green
		product.GradeA:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		product.GradeB:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")), // yellow
		product.GradeC:     lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		product.GradeD:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")), // red
	}
	ratingStyles = map[string]lipgloss.Style{
		product.RatingGood: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		product.RatingOK:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		product.RatingBad:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	headStyle = lipgloss.NewStyle().Bold(true)
)

// Format renders the summary.
func (f *ConsoleFormatter) Format(summary *pipeline.Summary) error {
	if f.quiet {
		return nil
	}
	for _, res := range summary.Results {
		f.printResult(res)
	}
	f.printTotals(summary)
	return nil
}

func (f *ConsoleFormatter) printResult(res pipeline.Result) {
	if res.Err != nil {
		fmt.Fprintf(f.w, "%s %s\n", errStyle.Render("✗"), res.File)
		fmt.Fprintf(f.w, "  %s\n", errStyle.Render(res.Err.Error()))
		return
	}
	if len(res.ValidationErrors) > 0 {
		fmt.Fprintf(f.w, "%s %s\n", errStyle.Render("✗"), res.File)
		for _, verr := range res.ValidationErrors {
			fmt.Fprintf(f.w, "  %s\n", errStyle.Render("schema: "+verr.Error()))
		}
		return
	}

	eval := res.Evaluation
	name := eval.ProductRef.Insurer + " — " + eval.ProductRef.PlanName
	if eval.ProductRef.Variant != nil {
		name += " (" + *eval.ProductRef.Variant + ")"
	}
	grade := gradeStyles[eval.Overall.Grade].Render(eval.Overall.Grade)
	fmt.Fprintf(f.w, "%s  %s  %.2f\n", grade, headStyle.Render(name), eval.Overall.WeightedScore)

	if f.verbose {
		for _, d := range eval.Scores {
			rating := ratingStyles[d.Rating].Render(fmt.Sprintf("%-4s", d.Rating))
			fmt.Fprintf(f.w, "  %-20s %6.1f  %s  %s\n", d.Parameter, d.Score, rating,
				dimStyle.Render(d.Rationale))
		}
		if eval.Overall.Notes != nil {
			fmt.Fprintf(f.w, "  %s\n", dimStyle.Render("notes: "+*eval.Overall.Notes))
		}
	}
}

func (f *ConsoleFormatter) printTotals(summary *pipeline.Summary) {
	fmt.Fprintf(f.w, "\n%d products evaluated, %d failed (%dms)\n",
		summary.TotalFiles, summary.FailedFiles, summary.Duration)
}
