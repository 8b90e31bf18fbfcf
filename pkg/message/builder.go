package message

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Entry is a single key/value line of a message context block.
type Entry struct {
	Key   string
	Value string
}

// Builder assembles a failure message from a sentence and an ordered context
// block. The first entry added for a key wins.
type Builder struct {
	sentence string
	entries  []Entry
}

// New returns a builder for the given sentence.
func New(sentence string) *Builder {
	return &Builder{sentence: sentence}
}

// With appends a context line. Empty keys and keys already present are ignored.
func (b *Builder) With(key, value string) *Builder {
	if key == "" || b.has(key) {
		return b
	}
	b.entries = append(b.entries, Entry{Key: key, Value: value})
	return b
}

// WithEntries appends several context lines in order.
func (b *Builder) WithEntries(entries ...Entry) *Builder {
	for _, e := range entries {
		b.With(e.Key, e.Value)
	}
	return b
}

func (b *Builder) Sentence() string {
	return b.sentence
}

// Entries returns a copy of the context block.
func (b *Builder) Entries() []Entry {
	if len(b.entries) == 0 {
		return nil
	}
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

func (b *Builder) String() string {
	return Format(b.sentence, b.entries)
}

func (b *Builder) has(key string) bool {
	for _, e := range b.entries {
		if e.Key == key {
			return true
		}
	}
	return false
}

// Format renders a sentence followed by its context block. Without context
// the sentence is returned as is; otherwise it is terminated with a period and
// every entry is printed on its own line with aligned colons.
func Format(sentence string, entries []Entry) string {
	if len(entries) == 0 {
		return sentence
	}

	width := 0
	for _, e := range entries {
		width = max(width, utf8.RuneCountInString(e.Key))
	}
	indent := strings.Repeat(" ", width+2)

	var sb strings.Builder
	sb.WriteString(sentence)
	sb.WriteByte('.')
	for _, e := range entries {
		sb.WriteByte('\n')
		sb.WriteString(e.Key)
		sb.WriteString(strings.Repeat(" ", width-utf8.RuneCountInString(e.Key)))
		sb.WriteString(": ")
		lines := strings.Split(e.Value, "\n")
		sb.WriteString(lines[0])
		for _, line := range lines[1:] {
			sb.WriteByte('\n')
			if line != "" {
				sb.WriteString(indent)
				sb.WriteString(line)
			}
		}
	}
	return sb.String()
}

// QuoteName renders a subject or argument name the way it appears in sentences.
func QuoteName(name string) string {
	return strconv.Quote(name)
}
