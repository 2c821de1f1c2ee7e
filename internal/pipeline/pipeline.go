// Package pipeline orchestrates the full evaluation run: discover extract
// files, parse, normalize, validate against the canonical contract, and
// score. Each file is independent, so the stages run per file across a
// bounded worker pool.
package pipeline

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/policyatlas/covergrade/internal/config"
	"github.com/policyatlas/covergrade/internal/discovery"
	"github.com/policyatlas/covergrade/internal/frontend"
	"github.com/policyatlas/covergrade/internal/normalize"
	"github.com/policyatlas/covergrade/internal/product"
	"github.com/policyatlas/covergrade/internal/schema"
	"github.com/policyatlas/covergrade/internal/scoring"
)

// Result is the outcome for a single extract file.
type Result struct {
	File             string
	Canonical        *product.CanonicalProduct
	Evaluation       *scoring.Evaluation
	ValidationErrors []schema.ValidationError
	Err              error
	Duration         int64
}

// Success reports whether the file parsed, validated, and scored.
func (r Result) Success() bool {
	return r.Err == nil && len(r.ValidationErrors) == 0
}

// Summary aggregates a full run.
type Summary struct {
	Root            string
	StartTime       time.Time
	TotalFiles      int
	SuccessfulFiles int
	FailedFiles     int
	Duration        int64
	Results         []Result
}

// Runner wires the pipeline stages under one configuration.
type Runner struct {
	cfg       *config.Config
	scorer    *scoring.Scorer
	validator *schema.Validator
}

// NewRunner builds a Runner. The schema validator is compiled once and
// shared; scoring uses the production rule set.
func NewRunner(cfg *config.Config) (*Runner, error) {
	r := &Runner{
		cfg:    cfg,
		scorer: scoring.NewScorer(scoring.DefaultConfig()),
	}
	if cfg.Schemas.Enabled {
		v, err := schema.NewValidator()
		if err != nil {
			return nil, fmt.Errorf("initializing canonical contract: %w", err)
		}
		r.validator = v
	}
	return r, nil
}

// Run discovers and evaluates every extract under the configured root.
func (r *Runner) Run() (*Summary, error) {
	start := time.Now()
	files, err := discovery.DiscoverExtracts(r.cfg.Root, r.cfg.Exclude)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Root:      r.cfg.Root,
		StartTime: start,
		Results:   make([]Result, 0, len(files)),
	}

	results := make(chan Result, len(files))
	jobs := make(chan string)
	var wg sync.WaitGroup

	workers := r.cfg.Concurrency
	if workers > len(files) {
		workers = len(files)
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for file := range jobs {
				results <- r.EvaluateFile(file)
			}
		}()
	}
	for _, file := range files {
		jobs <- file
	}
	close(jobs)
	wg.Wait()
	close(results)

	for res := range results {
		summary.Results = append(summary.Results, res)
	}
	// workers return out of order; restore the discovery order
	sort.Slice(summary.Results, func(i, j int) bool {
		return summary.Results[i].File < summary.Results[j].File
	})

	for _, res := range summary.Results {
		summary.TotalFiles++
		if res.Success() {
			summary.SuccessfulFiles++
		} else {
			summary.FailedFiles++
		}
	}
	summary.Duration = time.Since(start).Milliseconds()
	return summary, nil
}

// EvaluateFile runs parse -> normalize -> validate -> score for one file.
// Validation failures stop the pipeline for that file: the scorer's
// precondition is a schema-valid record.
func (r *Runner) EvaluateFile(file string) (res Result) {
	start := time.Now()
	res = Result{File: file}
	defer func() { res.Duration = time.Since(start).Milliseconds() }()

	raw, err := frontend.ParseFile(file)
	if err != nil {
		res.Err = err
		return res
	}

	canonical := normalize.Normalize(raw)
	res.Canonical = &canonical

	if r.validator != nil {
		if verrs := r.validator.Validate(canonical); len(verrs) > 0 {
			res.ValidationErrors = verrs
			return res
		}
	}

	eval := r.scorer.Score(canonical)
	res.Evaluation = &eval
	return res
}
