package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the emitting component under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Kind records the identifier kind ("css" or "id") under the key "kind".
func Kind(kind string) slog.Attr {
	return slog.String("kind", kind)
}

// Input records the raw text being cleaned under the key "input".
func Input(s string) slog.Attr {
	return slog.String("input", s)
}

// Output records a cleaned identifier under the key "output".
func Output(s string) slog.Attr {
	return slog.String("output", s)
}

// Rules records the number of filter rules in effect under the key "rules".
func Rules(n int) slog.Attr {
	return slog.Int("rules", n)
}
