package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"simplepbkdf2/internal/prf"
)

// Parser handles configuration file parsing and validation
type Parser struct {
	configPath string
	config     *Config
}

// NewParser creates a new configuration parser
func NewParser(configPath string) *Parser {
	return &Parser{
		configPath: configPath,
	}
}

// Load reads and parses the configuration file
func (p *Parser) Load() (*Config, error) {
	data, err := os.ReadFile(p.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", p.configPath, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	// Set defaults
	p.setDefaults(&config)

	// Validate configuration
	if err := p.validate(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	p.config = &config
	return &config, nil
}

// setDefaults applies default values to configuration
func (p *Parser) setDefaults(config *Config) {
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.Output.Encoding == "" {
		config.Output.Encoding = "hex"
	}

	for i := range config.Derivations {
		if config.Derivations[i].Algorithm == "" {
			config.Derivations[i].Algorithm = "SHA256"
		}
		if config.Derivations[i].Iterations == 0 {
			config.Derivations[i].Iterations = 100000
		}
		if config.Derivations[i].OutputLength == 0 {
			config.Derivations[i].OutputLength = 32
		}
	}
}

// validate performs comprehensive configuration validation
func (p *Parser) validate(config *Config) error {
	var errors []string

	if len(config.Derivations) == 0 {
		errors = append(errors, "at least one derivation must be defined")
	}

	seen := make(map[string]bool)
	for i, d := range config.Derivations {
		if d.Name == "" {
			errors = append(errors, fmt.Sprintf("derivations[%d]: name is required", i))
		} else if seen[d.Name] {
			errors = append(errors, fmt.Sprintf("derivations[%d]: duplicate name '%s'", i, d.Name))
		} else {
			seen[d.Name] = true
		}

		if _, err := prf.Lookup(d.Algorithm); err != nil {
			errors = append(errors, fmt.Sprintf("derivations[%d]: unsupported algorithm '%s' (supported: %s)",
				i, d.Algorithm, strings.Join(prf.Supported(), ", ")))
		}

		if d.SaltHex == "" {
			errors = append(errors, fmt.Sprintf("derivations[%d]: salt_hex is required", i))
		} else if _, err := hex.DecodeString(d.SaltHex); err != nil {
			errors = append(errors, fmt.Sprintf("derivations[%d]: invalid salt_hex: %v", i, err))
		}

		if d.Iterations < 1 {
			errors = append(errors, fmt.Sprintf("derivations[%d]: iterations must be >= 1, got %d", i, d.Iterations))
		}
		if d.OutputLength < 1 {
			errors = append(errors, fmt.Sprintf("derivations[%d]: output_length must be >= 1, got %d", i, d.OutputLength))
		}
	}

	if !isValidEncoding(config.Output.Encoding) {
		errors = append(errors, fmt.Sprintf("invalid output encoding '%s'", config.Output.Encoding))
	}
	if !isValidLogLevel(config.LogLevel) {
		errors = append(errors, fmt.Sprintf("invalid log level '%s'", config.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("validation errors:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// Salt decodes the derivation's salt from its hex form. The config is
// validated on load, so this does not fail for a loaded config.
func (d *Derivation) Salt() ([]byte, error) {
	salt, err := hex.DecodeString(d.SaltHex)
	if err != nil {
		return nil, fmt.Errorf("invalid salt_hex for derivation '%s': %w", d.Name, err)
	}
	return salt, nil
}

// Helper validation functions
func isValidEncoding(encoding string) bool {
	validEncodings := []string{"hex", "base64"}
	for _, valid := range validEncodings {
		if encoding == valid {
			return true
		}
	}
	return false
}

func isValidLogLevel(level string) bool {
	validLevels := []string{"debug", "info", "warn", "error"}
	for _, valid := range validLevels {
		if level == valid {
			return true
		}
	}
	return false
}

// Reload reloads the configuration from file
func (p *Parser) Reload() (*Config, error) {
	return p.Load()
}

// GetConfig returns the currently loaded configuration
func (p *Parser) GetConfig() *Config {
	return p.config
}
