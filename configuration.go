package requirements

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"

	"github.com/dmitrymomot/requirements/pkg/logger"
)

// EqualityFunc decides whether two values are equal for IsEqualTo and
// membership checks of slices, maps and objects.
type EqualityFunc func(a, b any) bool

// EqualityStructural compares values deeply. It is the default.
func EqualityStructural(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

// EqualityIdentity compares values with ==. Slices, maps and funcs, which
// have no == operator, are equal only when they share the same backing data.
// Values that hold one of those behind an interface are never equal.
func EqualityIdentity(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ta.Comparable() {
		// An interface field may still hold a slice, map or func.
		return va.Comparable() && vb.Comparable() && a == b
	}

	switch ta.Kind() {
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Map, reflect.Func:
		return va.Pointer() == vb.Pointer()
	default:
		return false
	}
}

type contextEntry struct {
	name  string
	value any
}

// Configuration is an immutable set of validation settings. Derive modified
// copies with With.
type Configuration struct {
	equality          EqualityFunc
	stringConverter   StringConverter
	assertionsEnabled bool
	diff              bool
	logger            *slog.Logger
	context           []contextEntry
}

// Option configures a Configuration.
type Option func(*Configuration)

// WithEquality sets the equality strategy. Nil is ignored.
func WithEquality(f EqualityFunc) Option {
	return func(c *Configuration) {
		if f != nil {
			c.equality = f
		}
	}
}

// WithStringConverter sets how values are rendered in messages. Nil is ignored.
func WithStringConverter(f StringConverter) Option {
	return func(c *Configuration) {
		if f != nil {
			c.stringConverter = f
		}
	}
}

// WithAssertionsEnabled toggles evaluation of AssertThat chains.
func WithAssertionsEnabled(enabled bool) Option {
	return func(c *Configuration) { c.assertionsEnabled = enabled }
}

// WithDiff toggles diffs of multi-line and composite values in equality failures.
func WithDiff(enabled bool) Option {
	return func(c *Configuration) { c.diff = enabled }
}

// WithLogger sets the logger that receives a debug record for every failure.
// Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Configuration) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithContext adds a line to the context block of every failure message.
// Panics if name is malformed or already used.
func WithContext(value any, name string) Option {
	return func(c *Configuration) {
		if err := checkName(name); err != nil {
			panic(err)
		}
		if slices.ContainsFunc(c.context, func(e contextEntry) bool { return e.name == name }) {
			panic(fmt.Errorf("%w: %q is already in use", ErrDuplicateName, name))
		}
		c.context = append(c.context, contextEntry{name: name, value: value})
	}
}

// DefaultConfiguration uses structural equality, the default string
// converter, enabled assertions and diffs, and a logger that discards output.
func DefaultConfiguration() Configuration {
	return Configuration{
		equality:          EqualityStructural,
		stringConverter:   DefaultStringConverter,
		assertionsEnabled: true,
		diff:              true,
		logger:            logger.Discard(),
	}
}

// NewConfiguration applies opts to the default configuration.
func NewConfiguration(opts ...Option) Configuration {
	return DefaultConfiguration().With(opts...)
}

// With returns a copy of c with opts applied. c itself is not modified.
func (c Configuration) With(opts ...Option) Configuration {
	c.context = slices.Clone(c.context)
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c Configuration) withDefaults() Configuration {
	if c.equality == nil {
		c.equality = EqualityStructural
	}
	if c.stringConverter == nil {
		c.stringConverter = DefaultStringConverter
	}
	if c.logger == nil {
		c.logger = logger.Discard()
	}
	return c
}

func (c Configuration) Equality() EqualityFunc {
	return c.equality
}

func (c Configuration) StringConverter() StringConverter {
	return c.stringConverter
}

func (c Configuration) AssertionsEnabled() bool {
	return c.assertionsEnabled
}

func (c Configuration) DiffEnabled() bool {
	return c.diff
}

func (c Configuration) Logger() *slog.Logger {
	return c.logger
}

// ContextNames returns the names of the configured context lines in order.
func (c Configuration) ContextNames() []string {
	names := make([]string, len(c.context))
	for i, e := range c.context {
		names[i] = e.name
	}
	return names
}
