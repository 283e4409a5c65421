// Package security holds the advisory guardrail: regex danger rules matched
// against a recommended command before the confirmation prompt. Matches only
// add warning lines; they never block execution, since the user confirms
// every command anyway.
package security

import (
	"errors"
	"io/fs"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/localhelp/internal/ports"
)

// DangerPattern describes one regex-based advisory rule.
type DangerPattern struct {
	Pattern string `yaml:"pattern"`
	Message string `yaml:"message"`
}

// RulesFile is the YAML schema root of ~/.localhelp/guardrail.yaml.
type RulesFile struct {
	Rules struct {
		DangerPatterns []DangerPattern `yaml:"danger_patterns"`
	} `yaml:"rules"`
}

// Guardrail implements the SecurityService port.
type Guardrail struct {
	patterns []compiledPattern
}

type compiledPattern struct {
	re   *regexp.Regexp
	rule DangerPattern
}

var defaultPatterns = []DangerPattern{
	{Pattern: `rm\s+(-[a-zA-Z]*[rf][a-zA-Z]*\s+)+`, Message: "recursive or forced deletion"},
	{Pattern: `\bdd\b.*\bof=/dev/`, Message: "writes directly to a device"},
	{Pattern: `\bmkfs\b`, Message: "formats a filesystem"},
	{Pattern: `>\s*/dev/sd[a-z]`, Message: "overwrites a raw disk"},
	{Pattern: `chmod\s+(-[a-zA-Z]+\s+)*777`, Message: "makes files world-writable"},
	{Pattern: `curl[^|]*\|\s*(ba)?sh`, Message: "pipes a download straight into a shell"},
	{Pattern: `git\s+push\s+.*--force`, Message: "force-pushes over remote history"},
	{Pattern: `\bshutdown\b|\breboot\b`, Message: "restarts or powers off the machine"},
}

// NewGuardrail loads rules from the given file, falling back to the embedded
// defaults when the path is empty or missing.
func NewGuardrail(path string) (*Guardrail, error) {
	rules, err := loadRules(path)
	if err != nil {
		return nil, err
	}

	var compiled []compiledPattern
	for _, pattern := range rules {
		re, err := regexp.Compile(pattern.Pattern)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, compiledPattern{re: re, rule: pattern})
	}
	return &Guardrail{patterns: compiled}, nil
}

// Evaluate implements ports.SecurityService.
func (g *Guardrail) Evaluate(command string) []string {
	if command == "" {
		return nil
	}
	var warnings []string
	for _, pattern := range g.patterns {
		if pattern.re.MatchString(command) {
			warnings = append(warnings, pattern.rule.Message)
		}
	}
	return warnings
}

func loadRules(path string) ([]DangerPattern, error) {
	if path == "" {
		return defaultPatterns, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaultPatterns, nil
		}
		return nil, err
	}
	var file RulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	if len(file.Rules.DangerPatterns) == 0 {
		return defaultPatterns, nil
	}
	return file.Rules.DangerPatterns, nil
}

var _ ports.SecurityService = (*Guardrail)(nil)
