// Package frontend decodes raw-extract files into the domain model.
// Extracts arrive as JSON (the native wire format) or YAML (hand-authored
// entries); YAML is round-tripped through JSON so numeric-or-string fields
// decode uniformly.
package frontend

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yamlv3 "gopkg.in/yaml.v3"

	"github.com/policyatlas/covergrade/internal/product"
)

// SupportedExtensions lists the raw-extract file types the parser accepts.
var SupportedExtensions = []string{".json", ".yaml", ".yml"}

// ParseFile reads and decodes a raw extract from disk.
func ParseFile(path string) (product.RawExtract, error) {
	var raw product.RawExtract
	content, err := os.ReadFile(path)
	if err != nil {
		return raw, fmt.Errorf("reading extract %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		raw, err = ParseJSON(content)
	case ".yaml", ".yml":
		raw, err = ParseYAML(content)
	default:
		return raw, fmt.Errorf("unsupported extract format: %s", filepath.Ext(path))
	}
	if err != nil {
		return raw, fmt.Errorf("parsing extract %s: %w", path, err)
	}
	return raw, nil
}

// ParseJSON decodes a JSON raw extract and checks the identity fields the
// input contract requires.
func ParseJSON(content []byte) (product.RawExtract, error) {
	var raw product.RawExtract
	if err := json.Unmarshal(content, &raw); err != nil {
		return raw, err
	}
	return raw, checkRequired(raw)
}

// ParseYAML decodes a YAML raw extract by converting to JSON first, so the
// flexible scalar handling matches the JSON path exactly.
func ParseYAML(content []byte) (product.RawExtract, error) {
	var raw product.RawExtract
	var tree any
	if err := yamlv3.Unmarshal(content, &tree); err != nil {
		return raw, err
	}
	jsonBytes, err := json.Marshal(normalizeYAMLKeys(tree))
	if err != nil {
		return raw, err
	}
	return ParseJSON(jsonBytes)
}

func checkRequired(raw product.RawExtract) error {
	if strings.TrimSpace(raw.Product.Insurer) == "" {
		return fmt.Errorf("product.insurer is required")
	}
	if strings.TrimSpace(raw.Product.PlanName) == "" {
		return fmt.Errorf("product.planName is required")
	}
	if strings.TrimSpace(raw.Provenance.SourceType) == "" ||
		strings.TrimSpace(raw.Provenance.SourceName) == "" {
		return fmt.Errorf("provenance block is required")
	}
	return nil
}

// normalizeYAMLKeys rewrites map[any]any trees (legacy YAML decoding) into
// map[string]any so they can marshal to JSON.
func normalizeYAMLKeys(v any) any {
	switch t := v.(type) {
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = normalizeYAMLKeys(val)
		}
		return m
	case map[string]any:
		for k, val := range t {
			t[k] = normalizeYAMLKeys(val)
		}
		return t
	case []any:
		for i, val := range t {
			t[i] = normalizeYAMLKeys(val)
		}
		return t
	default:
		return v
	}
}
