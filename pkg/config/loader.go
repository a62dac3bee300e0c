package config

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// LoadWithPrefix parses environment variables starting with prefix into v
// based on its `env` struct tags; tags name variables without the prefix.
// The default .env file in the working directory is loaded once beforehand
// if it exists; variables already set in the process win.
//
//	type Config struct {
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.LoadWithPrefix(&cfg, "APP_"); err != nil {
//		// Handle error
//	}
func LoadWithPrefix[T any](v *T, prefix string) error {
	defaultEnvLoaded.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	if err := env.ParseWithOptions(v, env.Options{Prefix: prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// LoadEnv loads one or more .env files into the process environment.
// Later files do not override variables set by earlier files or the process.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}
