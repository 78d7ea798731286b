package calculation

import "fmt"

// Logger is a minimal logging interface for the calculation engine.
// Implementations should be fast; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// prefixLogger tags every message with the request it belongs to.
type prefixLogger struct {
	prefix string
	next   Logger
}

func withPrefix(l Logger, prefix string) Logger {
	if _, nop := l.(NopLogger); nop {
		return l
	}
	return prefixLogger{prefix: prefix, next: l}
}

func (p prefixLogger) Debugf(format string, args ...any) {
	p.next.Debugf("%s %s", p.prefix, fmt.Sprintf(format, args...))
}
func (p prefixLogger) Infof(format string, args ...any) {
	p.next.Infof("%s %s", p.prefix, fmt.Sprintf(format, args...))
}
func (p prefixLogger) Warnf(format string, args ...any) {
	p.next.Warnf("%s %s", p.prefix, fmt.Sprintf(format, args...))
}
func (p prefixLogger) Errorf(format string, args ...any) {
	p.next.Errorf("%s %s", p.prefix, fmt.Sprintf(format, args...))
}
