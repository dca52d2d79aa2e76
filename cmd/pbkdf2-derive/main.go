package main

import (
	"bufio"
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"simplepbkdf2/internal/config"
	"simplepbkdf2/pkg/pbkdf2"
)

var (
	configPath   = flag.String("config", "", "Path to batch derivation config file (YAML)")
	algorithm    = flag.String("algorithm", "SHA256", "Hash family for the pseudorandom function")
	saltHex      = flag.String("salt", "", "Salt as a hex string")
	iterations   = flag.Int("iterations", 100000, "PBKDF2 iteration count")
	length       = flag.Int("length", 32, "Derived key length in bytes")
	encoding     = flag.String("encoding", "hex", "Output encoding (hex, base64)")
	passwordFile = flag.String("password-file", "", "Read the password from this file instead of stdin")
	logLevel     = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	listAlgos    = flag.Bool("list-algorithms", false, "List supported hash families and exit")
	version      = flag.Bool("version", false, "Show version and exit")
)

const (
	toolVersion = "1.0.0"
	toolName    = "pbkdf2-derive"
)

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("%s version %s\n", toolName, toolVersion)
		os.Exit(0)
	}

	if *listAlgos {
		for _, name := range pbkdf2.SupportedAlgorithms() {
			fmt.Println(name)
		}
		os.Exit(0)
	}

	// Setup logging
	if err := setupLogging(*logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to setup logging: %v\n", err)
		os.Exit(1)
	}

	password, err := readPassword(*passwordFile)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to read password")
	}

	if *configPath != "" {
		runBatch(*configPath, password)
		return
	}

	runSingle(password)
}

// runSingle derives one key from the command line flags
func runSingle(password []byte) {
	if *saltHex == "" {
		logrus.Fatal("A salt is required; pass one with -salt (hex)")
	}
	salt, err := hex.DecodeString(*saltHex)
	if err != nil {
		logrus.WithError(err).Fatal("Invalid salt hex")
	}

	logrus.WithFields(logrus.Fields{
		"algorithm":  *algorithm,
		"iterations": *iterations,
		"length":     *length,
	}).Debug("Deriving key")

	dk, err := pbkdf2.DeriveBytes(*algorithm, salt, password, *iterations, *length)
	if err != nil {
		logrus.WithError(err).Fatal("Derivation failed")
	}

	out, err := encode(dk, *encoding)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to encode derived key")
	}
	fmt.Println(out)
}

// runBatch derives one key per job in the config file, all from the same
// password
func runBatch(path string, password []byte) {
	parser := config.NewParser(path)
	cfg, err := parser.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	if err := setupLogging(cfg.LogLevel); err != nil {
		logrus.WithError(err).Fatal("Invalid log level in configuration")
	}

	logrus.WithFields(logrus.Fields{
		"config":      path,
		"derivations": len(cfg.Derivations),
	}).Info("Configuration loaded successfully")

	for _, job := range cfg.Derivations {
		salt, err := job.Salt()
		if err != nil {
			logrus.WithError(err).Fatal("Failed to decode salt")
		}

		dk, err := pbkdf2.DeriveBytes(job.Algorithm, salt, password, job.Iterations, job.OutputLength)
		if err != nil {
			logrus.WithError(err).WithField("derivation", job.Name).Fatal("Derivation failed")
		}

		out, err := encode(dk, cfg.Output.Encoding)
		if err != nil {
			logrus.WithError(err).Fatal("Failed to encode derived key")
		}
		fmt.Printf("%s: %s\n", job.Name, out)
	}
}

// readPassword reads the password from a file, or from stdin when no file is
// given. A single trailing newline is stripped so that piped and interactive
// input derive the same key; all other bytes are kept verbatim.
func readPassword(path string) ([]byte, error) {
	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read password file: %w", err)
		}
	} else {
		if term := isTerminal(os.Stdin); term {
			fmt.Fprint(os.Stderr, "Password: ")
		}
		reader := bufio.NewReader(os.Stdin)
		data, err = reader.ReadBytes('\n')
		if err != nil && len(data) == 0 {
			return nil, fmt.Errorf("failed to read password from stdin: %w", err)
		}
	}

	data = bytes.TrimSuffix(data, []byte("\n"))
	data = bytes.TrimSuffix(data, []byte("\r"))
	return data, nil
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

// encode renders a derived key in the requested encoding
func encode(dk []byte, enc string) (string, error) {
	switch enc {
	case "hex":
		return hex.EncodeToString(dk), nil
	case "base64":
		return base64.StdEncoding.EncodeToString(dk), nil
	default:
		return "", fmt.Errorf("unsupported encoding: %s", enc)
	}
}

// setupLogging configures the logging system
func setupLogging(level string) error {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		DisableColors: false,
	})

	parsedLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %s: %w", level, err)
	}

	logrus.SetLevel(parsedLevel)
	return nil
}
