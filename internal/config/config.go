package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultAnomalyLimit          = 20
	DefaultMinValidatedAnomalies = 5
)

// Load reads the .env file specified by CUIBONO_ENV (or .env by default),
// then loads the corresponding .secret file if it exists.
// All config is flat env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("CUIBONO_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Missing files are fine; the process environment still applies.
	_ = godotenv.Load(envFile)
	_ = godotenv.Load(envFile + ".secret")

	return nil
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return level
}

// AnomalyLimit caps how many anomalous statements one collection call
// scores. Defaults to 20; negative values fall back to the default.
func AnomalyLimit() int {
	n, err := strconv.Atoi(os.Getenv("ANOMALY_LIMIT"))
	if err != nil || n < 0 {
		return DefaultAnomalyLimit
	}
	return n
}

// MinValidatedAnomalies is the number of validated anomalies needed before
// collected data counts as sufficient. Defaults to 5.
func MinValidatedAnomalies() int {
	n, err := strconv.Atoi(os.Getenv("MIN_VALIDATED_ANOMALIES"))
	if err != nil || n < 0 {
		return DefaultMinValidatedAnomalies
	}
	return n
}

// Lexicon returns a built-in lexicon name or a lexicon file path.
// Defaults to "en".
func Lexicon() string {
	l := os.Getenv("LEXICON")
	if l == "" {
		return "en"
	}
	return l
}

// OutputFormat returns the CLI report format: text, table or json.
// Defaults to "text".
func OutputFormat() string {
	f := os.Getenv("OUTPUT_FORMAT")
	if f == "" {
		return "text"
	}
	return f
}
