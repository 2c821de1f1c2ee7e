package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/policyatlas/covergrade/internal/pipeline"
	"github.com/policyatlas/covergrade/internal/product"
	"github.com/policyatlas/covergrade/internal/schema"
	"github.com/policyatlas/covergrade/internal/scoring"
)

// JSONFormatter writes the run as a machine-readable report.
type JSONFormatter struct {
	indent     bool
	outputFile string
}

// NewJSONFormatter creates a JSONFormatter. With an empty outputFile the
// report goes to stdout.
func NewJSONFormatter(indent bool, outputFile string) *JSONFormatter {
	return &JSONFormatter{indent: indent, outputFile: outputFile}
}

// Format renders the summary as JSON.
func (f *JSONFormatter) Format(summary *pipeline.Summary) error {
	report := JSONReport{
		Header: JSONHeader{
			Tool:      "covergrade",
			Version:   scoring.DefaultConfig().Version,
			Timestamp: time.Now().Format(time.RFC3339),
		},
		Summary: JSONSummary{
			TotalFiles:      summary.TotalFiles,
			SuccessfulFiles: summary.SuccessfulFiles,
			FailedFiles:     summary.FailedFiles,
			Duration:        fmt.Sprintf("%dms", summary.Duration),
		},
		Results: make([]JSONResult, len(summary.Results)),
	}

	for i, res := range summary.Results {
		jr := JSONResult{
			File:     res.File,
			Success:  res.Success(),
			Duration: res.Duration,
		}
		if res.Err != nil {
			msg := res.Err.Error()
			jr.Error = &msg
		}
		jr.ValidationErrors = res.ValidationErrors
		jr.Canonical = res.Canonical
		jr.Evaluation = res.Evaluation
		report.Results[i] = jr
	}

	var jsonBytes []byte
	var err error
	if f.indent {
		jsonBytes, err = json.MarshalIndent(report, "", "  ")
	} else {
		jsonBytes, err = json.Marshal(report)
	}
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
		return nil
	}
	fmt.Println(string(jsonBytes))
	return nil
}

// JSONReport is the complete report structure.
type JSONReport struct {
	Header  JSONHeader   `json:"header"`
	Summary JSONSummary  `json:"summary"`
	Results []JSONResult `json:"results"`
}

// JSONHeader contains report metadata.
type JSONHeader struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// JSONSummary contains run statistics.
type JSONSummary struct {
	TotalFiles      int    `json:"total_files"`
	SuccessfulFiles int    `json:"successful_files"`
	FailedFiles     int    `json:"failed_files"`
	Duration        string `json:"duration"`
}

// JSONResult is one extract's outcome.
type JSONResult struct {
	File             string                    `json:"file"`
	Success          bool                      `json:"success"`
	Duration         int64                     `json:"duration_ms,omitempty"`
	Error            *string                   `json:"error,omitempty"`
	ValidationErrors []schema.ValidationError  `json:"validation_errors,omitempty"`
	Canonical        *product.CanonicalProduct `json:"canonical,omitempty"`
	Evaluation       *scoring.Evaluation       `json:"evaluation,omitempty"`
}
