package problem

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML problem file.
func LoadFile(path string) (*Problem, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p Problem
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("problem: parse %s: %w", path, err)
	}
	if p.Reaction == "" {
		return nil, &GrammarError{Line: path, Reason: "no reaction in problem file"}
	}
	return &p, nil
}

// SaveFile writes a problem as YAML.
func SaveFile(path string, p *Problem) error {
	raw, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}
