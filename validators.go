package requirements

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/requirements/pkg/logger"
)

// Mode selects how a chain reports failures. It is fixed when the chain is created.
type Mode uint8

const (
	// ModeRequire panics with the first failure (preconditions).
	ModeRequire Mode = iota + 1
	// ModeCheck collects failures for the caller to inspect.
	ModeCheck
	// ModeAssert behaves like ModeRequire when assertions are enabled and
	// skips every check otherwise (postconditions and invariants).
	ModeAssert
)

func (m Mode) String() string {
	switch m {
	case ModeRequire:
		return "require"
	case ModeCheck:
		return "check"
	case ModeAssert:
		return "assert"
	default:
		return "unknown"
	}
}

func (m Mode) eager() bool {
	return m == ModeRequire || m == ModeAssert
}

// Subject names the value about to be validated and carries the mode and
// configuration of the chain. Pass it to a family constructor such as Float
// or String.
type Subject struct {
	validators *Validators
	mode       Mode
	name       string
}

func (s Subject) Name() string {
	return s.name
}

func (s Subject) Mode() Mode {
	return s.mode
}

// Validators creates validation chains that share one Configuration.
// It is immutable and safe for concurrent use.
type Validators struct {
	cfg Configuration
}

// New returns validators using the default configuration with opts applied.
func New(opts ...Option) *Validators {
	return &Validators{cfg: NewConfiguration(opts...)}
}

// NewWithConfiguration returns validators using cfg. An unset equality,
// string converter or logger, as in the zero Configuration, falls back to
// the default.
func NewWithConfiguration(cfg Configuration) *Validators {
	return &Validators{cfg: cfg.withDefaults()}
}

// With returns new validators whose configuration is a copy of v's with opts applied.
func (v *Validators) With(opts ...Option) *Validators {
	return &Validators{cfg: v.cfg.With(opts...)}
}

func (v *Validators) Configuration() Configuration {
	return v.cfg
}

// RequireThat starts a chain that panics on the first failure.
func (v *Validators) RequireThat(name string) Subject {
	return v.subject(ModeRequire, name)
}

// CheckIf starts a chain that collects failures.
func (v *Validators) CheckIf(name string) Subject {
	return v.subject(ModeCheck, name)
}

// AssertThat starts a chain that panics on the first failure when assertions
// are enabled and does nothing otherwise.
func (v *Validators) AssertThat(name string) Subject {
	return v.subject(ModeAssert, name)
}

func (v *Validators) subject(mode Mode, name string) Subject {
	if err := checkName(name); err != nil {
		panic(err)
	}
	return Subject{validators: v, mode: mode, name: name}
}

var (
	defaultOnce       sync.Once
	defaultValidators atomic.Pointer[Validators]
)

// Default returns the process-wide validators. On first use they are built
// from the environment by LoadConfiguration; invalid settings fall back to
// DefaultConfiguration.
func Default() *Validators {
	defaultOnce.Do(func() {
		cfg, err := LoadConfiguration()
		if err != nil {
			slog.Default().Warn("using default requirements configuration",
				logger.Component("requirements"), logger.Error(err))
			cfg = DefaultConfiguration()
		}
		defaultValidators.CompareAndSwap(nil, NewWithConfiguration(cfg))
	})
	return defaultValidators.Load()
}

// SetDefault replaces the process-wide validators. Nil is ignored.
func SetDefault(v *Validators) {
	if v == nil {
		return
	}
	defaultOnce.Do(func() {})
	defaultValidators.Store(v)
}

// RequireThat starts a chain on the default validators that panics on the
// first failure.
func RequireThat(name string) Subject {
	return Default().RequireThat(name)
}

// CheckIf starts a chain on the default validators that collects failures.
func CheckIf(name string) Subject {
	return Default().CheckIf(name)
}

// AssertThat starts an assertion chain on the default validators.
func AssertThat(name string) Subject {
	return Default().AssertThat(name)
}

func mustBeValidMode(m Mode) {
	if m != ModeRequire && m != ModeCheck && m != ModeAssert {
		panic(fmt.Errorf("%w: subjects must be created with RequireThat, CheckIf or AssertThat", ErrInvalidArgument))
	}
}
