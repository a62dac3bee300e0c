// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` for .env files and
// `github.com/caarlos0/env/v11` for parsing the environment into tagged
// structs:
//
//	type CLIConfig struct {
//	    LogLevel  string   `env:"LOG_LEVEL" envDefault:"info"`
//	    CSSFilter []string `env:"CSS_FILTER" envSeparator:";"`
//	}
//
//	var cfg CLIConfig
//	if err := config.LoadWithPrefix(&cfg, "IDENTCLEAN_"); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  – failed to parse env vars into struct.
//   - `ErrLoadingEnvFile` – a .env file passed to LoadEnv could not be read.
//   - `ErrNilPointer`     – nil pointer passed to a loader.
package config
