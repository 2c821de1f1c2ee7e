package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/policyatlas/covergrade/internal/pipeline"
	"github.com/policyatlas/covergrade/internal/scoring"
	"github.com/policyatlas/covergrade/internal/textutil"
)

// MarkdownFormatter writes the run as a markdown report.
type MarkdownFormatter struct {
	outputFile string
}

// NewMarkdownFormatter creates a MarkdownFormatter. With an empty
// outputFile the report goes to stdout.
func NewMarkdownFormatter(outputFile string) *MarkdownFormatter {
	return &MarkdownFormatter{outputFile: outputFile}
}

// Format renders the summary as markdown. Scored products are indexed up
// front, linked to slugged section anchors.
func (f *MarkdownFormatter) Format(summary *pipeline.Summary) error {
	var b strings.Builder

	b.WriteString("# Covergrade Report\n\n")
	b.WriteString(fmt.Sprintf("Generated: %s\n\n", time.Now().Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf("**%d** products evaluated, **%d** failed.\n\n",
		summary.TotalFiles, summary.FailedFiles))

	indexed := false
	for _, res := range summary.Results {
		if !res.Success() || res.Evaluation == nil {
			continue
		}
		name, slug := productHeading(res.Evaluation)
		b.WriteString(fmt.Sprintf("- [%s](#%s) — %s\n", name, slug, res.Evaluation.Overall.Grade))
		indexed = true
	}
	if indexed {
		b.WriteString("\n")
	}

	for _, res := range summary.Results {
		if res.Err != nil {
			b.WriteString(fmt.Sprintf("## ❌ %s\n\n%s\n\n", res.File, res.Err.Error()))
			continue
		}
		if len(res.ValidationErrors) > 0 {
			b.WriteString(fmt.Sprintf("## ❌ %s\n\nSchema violations:\n\n", res.File))
			for _, verr := range res.ValidationErrors {
				b.WriteString(fmt.Sprintf("- `%s`\n", verr.Error()))
			}
			b.WriteString("\n")
			continue
		}

		eval := res.Evaluation
		name, slug := productHeading(eval)
		b.WriteString(fmt.Sprintf("## <a id=%q></a>%s — Grade %s (%.2f)\n\n", slug, name,
			eval.Overall.Grade, eval.Overall.WeightedScore))

		b.WriteString("| Parameter | Score | Rating | Rationale |\n")
		b.WriteString("|---|---|---|---|\n")
		for _, d := range eval.Scores {
			b.WriteString(fmt.Sprintf("| %s | %.1f | %s | %s |\n",
				d.Parameter, d.Score, d.Rating, d.Rationale))
		}
		b.WriteString("\n")
		if eval.Overall.Notes != nil {
			b.WriteString(fmt.Sprintf("> %s\n\n", *eval.Overall.Notes))
		}
	}

	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, []byte(b.String()), 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
		return nil
	}
	fmt.Print(b.String())
	return nil
}

// productHeading returns the display name and its slugged anchor id.
func productHeading(eval *scoring.Evaluation) (string, string) {
	name := eval.ProductRef.Insurer + " — " + eval.ProductRef.PlanName
	if eval.ProductRef.Variant != nil {
		name += " (" + *eval.ProductRef.Variant + ")"
	}
	return name, textutil.Slugify(name)
}
