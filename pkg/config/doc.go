// Package config loads settings structs from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - The default `.env` file in the working directory is read once, if present.
//   - Environment variables are parsed into any struct using `env` and
//     `envDefault` field tags.
//   - Each settings type is parsed once and cached for the lifetime of the
//     process. Reload re-parses after the environment changed, for example after
//     LoadEnv read an extra file; ResetCache drops every cached value.
//
// # Usage
//
//	type Settings struct {
//	    AssertionsEnabled bool   `env:"REQUIREMENTS_ASSERTIONS_ENABLED" envDefault:"true"`
//	    LogLevel          string `env:"REQUIREMENTS_LOG_LEVEL"`
//	}
//
//	var s Settings
//	if err := config.Load(&s); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  – failed to parse env vars into struct.
//   - `ErrLoadingEnvFile` – an explicitly requested .env file could not be read.
//   - `ErrNilPointer`     – nil pointer passed to `Load`/`Reload`.
package config
