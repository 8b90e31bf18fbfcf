package requirements

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/requirements/pkg/logger"
	"github.com/dmitrymomot/requirements/pkg/message"
	"github.com/dmitrymomot/requirements/pkg/target"
	"github.com/dmitrymomot/requirements/pkg/validator"
)

// chain is the state shared by a validator and the validators derived from
// it: configuration, registered names, context lines and recorded failures.
type chain struct {
	cfg      Configuration
	mode     Mode
	disabled bool
	names    map[string]struct{}
	derived  map[string]struct{}
	context  []contextEntry
	failures Failures
}

func newChain(s Subject) *chain {
	mustBeValidMode(s.mode)
	v := s.validators
	if v == nil {
		v = Default()
	}

	c := &chain{
		cfg:      v.cfg,
		mode:     s.mode,
		disabled: s.mode == ModeAssert && !v.cfg.assertionsEnabled,
		names:    make(map[string]struct{}, 1+len(v.cfg.context)),
	}
	for _, e := range v.cfg.context {
		c.register(e.name)
	}
	c.register(s.name)
	return c
}

func checkName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name may not be empty", ErrInvalidName)
	}
	if validator.ContainsWhitespace(name) {
		return fmt.Errorf("%w: %q may not contain whitespace", ErrInvalidName, name)
	}
	return nil
}

// register panics if name is malformed or already used in the chain.
func (c *chain) register(name string) {
	if err := checkName(name); err != nil {
		panic(err)
	}
	if _, ok := c.names[name]; ok {
		panic(fmt.Errorf("%w: %q is already in use", ErrDuplicateName, name))
	}
	c.names[name] = struct{}{}
}

// reserve registers the name of a derived validator. Deriving the same
// validator twice is allowed; any other reuse of the name panics.
func (c *chain) reserve(name string) {
	if _, ok := c.derived[name]; ok {
		return
	}
	c.register(name)
	if c.derived == nil {
		c.derived = make(map[string]struct{})
	}
	c.derived[name] = struct{}{}
}

func (c *chain) render(v any) string {
	return c.cfg.stringConverter(v)
}

func (c *chain) add(f Failure) {
	c.failures = append(c.failures, f)
	lines := make([]slog.Attr, len(f.context))
	for i, e := range f.context {
		lines[i] = slog.String(e.Key, e.Value)
	}
	c.cfg.logger.Debug("validation failed",
		logger.Subject(f.subject),
		logger.Kind(f.kind.String()),
		logger.Mode(c.mode.String()),
		logger.Message(f.message),
		logger.Group("context", lines...),
	)
	if c.mode.eager() {
		panic(f.Err())
	}
}

// arg is a reference value as it appears in a sentence, plus the context
// line that names it, if any.
type arg struct {
	text    string
	entries []message.Entry
}

// base holds the per-validator state. Every family embeds it and gets the
// terminal operations from it.
type base[T any] struct {
	ch    *chain
	name  string
	label string
	value target.Target[T]
	// lines of the validator this one was derived from
	parent []message.Entry
}

func newBase[T any](s Subject, value target.Target[T]) base[T] {
	return base[T]{
		ch:    newChain(s),
		name:  s.name,
		label: message.QuoteName(s.name),
		value: value,
	}
}

// Name returns the name of the validated value.
func (b *base[T]) Name() string {
	return b.name
}

// Failures returns a copy of the failures recorded so far.
func (b *base[T]) Failures() Failures {
	return slices.Clone(b.ch.failures)
}

// Err returns nil if no check failed, the failure's error if exactly one did
// and a *MultipleFailuresError otherwise.
func (b *base[T]) Err() error {
	return b.ch.failures.Err()
}

// Must panics with Err if any check failed and returns the value otherwise.
// An absent value is returned as the zero value.
func (b *base[T]) Must() T {
	if err := b.Err(); err != nil {
		panic(err)
	}
	var zero T
	return b.value.Or(zero)
}

// Value returns the validated value, or an error if a check failed or the
// value is absent.
func (b *base[T]) Value() (T, error) {
	if err := b.Err(); err != nil {
		var zero T
		return zero, err
	}
	return b.value.OrError(b.nullFailure().Err())
}

// ValueOr returns the value if it is present and def otherwise.
func (b *base[T]) ValueOr(def T) T {
	return b.value.Or(def)
}

func (b *base[T]) withContext(value any, name string) {
	b.ch.register(name)
	b.ch.context = append(b.ch.context, contextEntry{name: name, value: value})
}

func (b *base[T]) literal(v any) arg {
	return arg{text: b.ch.render(v)}
}

func (b *base[T]) named(v any, name string) arg {
	b.ch.register(name)
	return arg{
		text:    message.QuoteName(name),
		entries: []message.Entry{{Key: name, Value: b.ch.render(v)}},
	}
}

// sentence starts a message about the subject. The value line is added only
// when the value is present, after the lines of the parent validator.
func (b *base[T]) sentence(format string, args ...any) *message.Builder {
	msg := message.New(b.label + " " + fmt.Sprintf(format, args...)).WithEntries(b.parent...)
	b.value.IfValid(func(v T) { msg.With(b.name, b.ch.render(v)) })
	return msg
}

func (b *base[T]) describe(format string, args ...any) func() *message.Builder {
	return func() *message.Builder {
		return b.sentence(format, args...)
	}
}

// check records a failure when pred rejects the value. An absent value fails
// every check; a null is reported once before the first such failure.
func (b *base[T]) check(pred func(T) bool, describe func() *message.Builder) {
	if b.ch.disabled || !b.value.Failed(pred) {
		return
	}
	b.failOnNull()
	b.fail(KindViolation, describe())
}

// failOnNull reports a null value and turns it into an undefined one so it
// is never reported again.
func (b *base[T]) failOnNull() {
	if !b.value.IsNull() {
		return
	}
	b.value = b.value.NullToUndefined()
	b.fail(KindNull, b.nullMessage())
}

func (b *base[T]) nullMessage() *message.Builder {
	return message.New(b.label + " may not be null")
}

func (b *base[T]) nullFailure() Failure {
	msg := b.nullMessage()
	return Failure{kind: KindNull, mode: b.ch.mode, subject: b.name, message: msg.String()}
}

func (b *base[T]) fail(kind Kind, msg *message.Builder) {
	for _, e := range b.ch.context {
		msg.With(e.name, b.ch.render(e.value))
	}
	for _, e := range b.ch.cfg.context {
		msg.With(e.name, b.ch.render(e.value))
	}
	b.ch.add(Failure{
		kind:    kind,
		mode:    b.ch.mode,
		subject: b.name,
		message: msg.String(),
		context: msg.Entries(),
	})
}
