package config

// Config represents the main configuration structure for batch derivation
type Config struct {
	Name        string       `yaml:"name,omitempty"` // Configuration name
	Version     int          `yaml:"version,omitempty"`
	Derivations []Derivation `yaml:"derivations"`
	Output      OutputConfig `yaml:"output"`
	LogLevel    string       `yaml:"log_level"`
}

// Derivation defines one derivation job. Salts are public and belong in the
// config file; the password never does, it is supplied at run time.
type Derivation struct {
	Name         string `yaml:"name"`
	Algorithm    string `yaml:"algorithm"`
	SaltHex      string `yaml:"salt_hex"`
	Iterations   int    `yaml:"iterations"`
	OutputLength int    `yaml:"output_length"`
}

// OutputConfig defines how derived keys are rendered
type OutputConfig struct {
	Encoding string `yaml:"encoding"` // "hex" or "base64"
}
