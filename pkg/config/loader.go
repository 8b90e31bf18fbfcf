package config

import (
	"errors"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache keeps one parsed copy of every settings type.
type cache struct {
	mu     sync.RWMutex
	values map[reflect.Type]any
}

var (
	settings = &cache{values: make(map[reflect.Type]any)}

	dotenvOnce sync.Once
)

func (c *cache) get(t reflect.Type) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[t]
	return v, ok
}

func (c *cache) put(t reflect.Type, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[t] = v
}

func (c *cache) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values = make(map[reflect.Type]any)
}

// Load populates v from environment variables according to its `env` and
// `envDefault` field tags. The default .env file is read once if present.
// Each settings type is parsed only once; later calls receive the cached copy.
//
// Example:
//
//	type Settings struct {
//		Diff bool `env:"REQUIREMENTS_DIFF" envDefault:"true"`
//	}
//
//	var s Settings
//	if err := config.Load(&s); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	dotenvOnce.Do(func() {
		// A missing .env file is not an error.
		_ = godotenv.Load()
	})

	t := typeOf[T]()
	if cached, ok := settings.get(t); ok {
		*v = cached.(T)
		return nil
	}
	return Reload(v)
}

// Reload parses v from the current environment, bypassing and then refreshing
// the cache. Use it after the environment changed, for example after LoadEnv.
func Reload[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	settings.put(typeOf[T](), parsed)
	*v = parsed
	return nil
}

// LoadEnv reads the given .env files into the process environment without
// overriding variables that are already set.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// ResetCache drops every cached settings value.
func ResetCache() {
	settings.reset()
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
