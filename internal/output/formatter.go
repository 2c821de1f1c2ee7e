package output

import (
	"fmt"
	"os"

	"github.com/policyatlas/covergrade/internal/config"
	"github.com/policyatlas/covergrade/internal/pipeline"
)

// Formatter renders a pipeline summary.
type Formatter interface {
	Format(summary *pipeline.Summary) error
}

// NewFormatter selects the formatter for the configured format.
func NewFormatter(cfg *config.Config) (Formatter, error) {
	switch cfg.Format {
	case "console":
		return NewConsoleFormatter(os.Stdout, cfg.Quiet, cfg.Verbose), nil
	case "json":
		return NewJSONFormatter(true, cfg.Output), nil
	case "markdown":
		return NewMarkdownFormatter(cfg.Output), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", cfg.Format)
	}
}
