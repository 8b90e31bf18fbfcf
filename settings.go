package requirements

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrymomot/requirements/pkg/config"
	"github.com/dmitrymomot/requirements/pkg/logger"
)

// settings mirrors the environment variables understood by LoadConfiguration.
type settings struct {
	AssertionsEnabled bool   `env:"REQUIREMENTS_ASSERTIONS_ENABLED" envDefault:"true"`
	Diff              bool   `env:"REQUIREMENTS_DIFF" envDefault:"true"`
	StringFormat      string `env:"REQUIREMENTS_STRING_FORMAT" envDefault:"default"`
	LogLevel          string `env:"REQUIREMENTS_LOG_LEVEL"`
	LogFormat         string `env:"REQUIREMENTS_LOG_FORMAT" envDefault:"text"`
	LogOutput         string `env:"REQUIREMENTS_LOG_OUTPUT" envDefault:"stderr"`
	EnvFile           string `env:"REQUIREMENTS_ENV_FILE"`
}

// LoadConfiguration builds a Configuration from REQUIREMENTS_* environment
// variables (and a .env file, if present). opts are applied on top.
//
//	REQUIREMENTS_ASSERTIONS_ENABLED  evaluate AssertThat chains (default true)
//	REQUIREMENTS_DIFF                diff composite values (default true)
//	REQUIREMENTS_STRING_FORMAT       default, json or yaml
//	REQUIREMENTS_LOG_LEVEL           log failures at this level when set
//	REQUIREMENTS_LOG_FORMAT          text or json
//	REQUIREMENTS_LOG_OUTPUT          stderr or stdout
//	REQUIREMENTS_ENV_FILE            extra .env file read before the others
//
// Variables already present in the environment take precedence over the
// env file.
func LoadConfiguration(opts ...Option) (Configuration, error) {
	var s settings
	if err := config.Load(&s); err != nil {
		return Configuration{}, err
	}
	if s.EnvFile != "" {
		if err := config.LoadEnv(s.EnvFile); err != nil {
			return Configuration{}, errors.Join(ErrInvalidSettings, err)
		}
		if err := config.Reload(&s); err != nil {
			return Configuration{}, err
		}
	}

	envOpts, err := s.options()
	if err != nil {
		return Configuration{}, err
	}
	return NewConfiguration(append(envOpts, opts...)...), nil
}

func (s settings) options() ([]Option, error) {
	opts := []Option{
		WithAssertionsEnabled(s.AssertionsEnabled),
		WithDiff(s.Diff),
	}

	switch strings.ToLower(strings.TrimSpace(s.StringFormat)) {
	case "", "default":
		opts = append(opts, WithStringConverter(DefaultStringConverter))
	case "json":
		opts = append(opts, WithStringConverter(JSONStringConverter))
	case "yaml":
		opts = append(opts, WithStringConverter(YAMLStringConverter))
	default:
		return nil, fmt.Errorf("%w: unknown string format %q", ErrInvalidSettings, s.StringFormat)
	}

	if s.LogLevel == "" {
		return opts, nil
	}
	level, err := logger.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, errors.Join(ErrInvalidSettings, err)
	}
	format, err := logger.ParseFormat(s.LogFormat)
	if err != nil {
		return nil, errors.Join(ErrInvalidSettings, err)
	}
	var output io.Writer
	switch strings.ToLower(strings.TrimSpace(s.LogOutput)) {
	case "", "stderr":
		output = os.Stderr
	case "stdout":
		output = os.Stdout
	default:
		return nil, fmt.Errorf("%w: unknown log output %q", ErrInvalidSettings, s.LogOutput)
	}
	opts = append(opts, WithLogger(logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(output),
		logger.WithAttr(logger.Component("requirements")),
	)))
	return opts, nil
}
