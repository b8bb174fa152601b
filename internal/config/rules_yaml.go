package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// customRulesFile is the on-disk shape of a standalone custom-rules file, as
// loaded by LoadCustomRules and --rules on the CLI, independent of a
// technology preset.
type customRulesFile struct {
	Rules []RuleSpec `yaml:"rules"`
}

// LoadCustomRules reads a YAML file of user-defined Trap Rules (spec.md §3)
// from disk and returns them ready to assign to Settings.CustomRules.
func LoadCustomRules(path string) ([]RuleSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading custom rules file %s: %w", path, err)
	}
	var f customRulesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config: parsing custom rules file %s: %w", path, err)
	}
	return f.Rules, nil
}
