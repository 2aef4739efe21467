package rule

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cottonBuddha/SwiftLint/pkg/types"
)

// DefaultConfigFile is the configuration file name looked up in the
// lint root when no explicit path is given.
const DefaultConfigFile = ".swiftlint.yml"

// Config models a .swiftlint.yml file. Top-level keys other than the
// known list keys are treated as per-rule setting blocks, e.g.:
//
//	disabled_rules:
//	  - todo
//	excluded:
//	  - Carthage
//	line_length: 140
//	force_cast:
//	  severity: error
type Config struct {
	DisabledRules []string
	Included      []string
	Excluded      []string
	Settings      map[string]Setting
}

// Setting is one rule's configuration block. A bare scalar is accepted
// as shorthand: an integer sets the threshold, a string sets the
// severity.
type Setting struct {
	Severity  types.Severity
	Threshold int
}

// UnmarshalYAML accepts scalar shorthand or a full mapping.
func (s *Setting) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var n int
		if err := node.Decode(&n); err == nil {
			s.Threshold = n
			return nil
		}
		var raw string
		if err := node.Decode(&raw); err != nil {
			return fmt.Errorf("invalid rule setting: %w", err)
		}
		sev, err := types.ParseSeverity(raw)
		if err != nil {
			return err
		}
		s.Severity = sev
		return nil

	case yaml.MappingNode:
		var aux struct {
			Severity string `yaml:"severity"`
			Warning  int    `yaml:"warning"`
		}
		if err := node.Decode(&aux); err != nil {
			return fmt.Errorf("invalid rule setting: %w", err)
		}
		if aux.Severity != "" {
			sev, err := types.ParseSeverity(aux.Severity)
			if err != nil {
				return err
			}
			s.Severity = sev
		}
		s.Threshold = aux.Warning
		return nil

	default:
		return fmt.Errorf("invalid rule setting: expected scalar or mapping")
	}
}

// UnmarshalYAML splits known list keys from per-rule setting blocks.
func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("configuration must be a YAML mapping")
	}

	c.Settings = make(map[string]Setting)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		value := node.Content[i+1]

		switch key {
		case "disabled_rules":
			if err := value.Decode(&c.DisabledRules); err != nil {
				return fmt.Errorf("parsing disabled_rules: %w", err)
			}
		case "included":
			if err := value.Decode(&c.Included); err != nil {
				return fmt.Errorf("parsing included: %w", err)
			}
		case "excluded":
			if err := value.Decode(&c.Excluded); err != nil {
				return fmt.Errorf("parsing excluded: %w", err)
			}
		default:
			var setting Setting
			if err := value.Decode(&setting); err != nil {
				return fmt.Errorf("parsing setting for rule %s: %w", key, err)
			}
			c.Settings[key] = setting
		}
	}
	return nil
}

// Parse parses configuration from YAML bytes.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if cfg.Settings == nil {
		cfg.Settings = make(map[string]Setting)
	}
	return &cfg, nil
}

// Load reads and parses a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return Parse(data)
}

// LoadDefault loads .swiftlint.yml from root if present, otherwise an
// empty configuration.
func LoadDefault(root string) (*Config, error) {
	path := filepath.Join(root, DefaultConfigFile)
	if _, err := os.Stat(path); err != nil {
		return &Config{Settings: make(map[string]Setting)}, nil
	}
	return Load(path)
}

// IsDisabled reports whether the rule ID is listed in disabled_rules.
func (c *Config) IsDisabled(id string) bool {
	for _, d := range c.DisabledRules {
		if d == id {
			return true
		}
	}
	return false
}

// Setting returns the configuration block for a rule.
func (c *Config) Setting(id string) (Setting, bool) {
	s, ok := c.Settings[id]
	return s, ok
}

// SeverityFor resolves the effective severity for a rule: the
// configured override when valid, else the rule's default.
func (c *Config) SeverityFor(r Rule) types.Severity {
	if s, ok := c.Settings[r.ID()]; ok && s.Severity.IsValid() {
		return s.Severity
	}
	return r.DefaultSeverity()
}
