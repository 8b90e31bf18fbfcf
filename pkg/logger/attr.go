package logger

import "log/slog"

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Subject records the name of the validated value under the key "subject".
func Subject(name string) slog.Attr {
	return slog.String("subject", name)
}

// Kind records a failure kind under the key "kind".
func Kind(kind any) slog.Attr {
	return slog.Any("kind", kind)
}

// Mode records a validation mode under the key "mode".
func Mode(mode any) slog.Attr {
	return slog.Any("mode", mode)
}

// Message records a rendered message under the key "message".
func Message(msg string) slog.Attr {
	return slog.String("message", msg)
}
