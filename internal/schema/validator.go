// Package schema validates canonical product records against the published
// structural contract. The contract is authored in CUE and embedded in the
// binary; the pipeline runs validation between normalization and scoring.
package schema

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"

	"github.com/policyatlas/covergrade/internal/product"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// ValidationError is one (location, message) pair reported against the
// canonical contract.
type ValidationError struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

func (e ValidationError) Error() string {
	if e.Location == "" {
		return e.Message
	}
	return e.Location + ": " + e.Message
}

// Validator checks canonical records against the embedded CUE contract.
type Validator struct {
	contract cue.Value
}

// NewValidator compiles the embedded contract. Fails only when the
// embedded schema itself is broken.
func NewValidator() (*Validator, error) {
	content, err := schemaFS.ReadFile("schemas/canonical.cue")
	if err != nil {
		return nil, fmt.Errorf("reading embedded schema: %w", err)
	}
	ctx := cuecontext.New()
	inst := ctx.CompileBytes(content, cue.Filename("canonical.cue"))
	if err := inst.Err(); err != nil {
		return nil, fmt.Errorf("compiling canonical schema: %w", err)
	}
	def := inst.LookupPath(cue.ParsePath("#CanonicalProduct"))
	if !def.Exists() {
		return nil, fmt.Errorf("canonical schema missing #CanonicalProduct definition")
	}
	return &Validator{contract: def}, nil
}

// ContractSource returns the raw CUE text of the published contract.
func ContractSource() (string, error) {
	content, err := schemaFS.ReadFile("schemas/canonical.cue")
	if err != nil {
		return "", fmt.Errorf("reading embedded schema: %w", err)
	}
	return string(content), nil
}

// Validate checks a canonical record against the contract and returns the
// list of violations, empty when the record conforms.
func (v *Validator) Validate(p product.CanonicalProduct) []ValidationError {
	// Round-trip through JSON so the contract sees exactly the published
	// wire shape, nulls included. JSON is valid CUE, and compiling it
	// directly keeps integer fields integers.
	raw, err := json.Marshal(p)
	if err != nil {
		return []ValidationError{{Message: fmt.Sprintf("encoding record: %v", err)}}
	}

	ctx := v.contract.Context()
	value := ctx.CompileBytes(raw, cue.Filename("record.json"))
	if err := value.Err(); err != nil {
		return []ValidationError{{Message: fmt.Sprintf("encoding record: %v", err)}}
	}

	unified := v.contract.Unify(value)
	if err := unified.Err(); err != nil {
		return extractErrors(err)
	}
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return extractErrors(err)
	}
	return nil
}

// extractErrors flattens a CUE error into (location, message) pairs.
func extractErrors(err error) []ValidationError {
	var out []ValidationError
	for _, e := range errors.Errors(err) {
		out = append(out, ValidationError{
			Location: strings.Join(e.Path(), "."),
			Message:  e.Error(),
		})
	}
	if len(out) == 0 {
		out = append(out, ValidationError{Message: err.Error()})
	}
	return out
}
