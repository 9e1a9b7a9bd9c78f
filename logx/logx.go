// Package logx provides the gated diagnostic logger used across the shim.
// Output is off by default and deprecation warnings are on by default; both
// toggles live on the Logger instance rather than in process globals, so two
// independently configured shims never fight over shared flags.
package logx

import (
	"fmt"
	"sync"

	logging "github.com/ipfs/go-log/v2"

	"github.com/petervdpas/rtcshim/useragent"
)

// Sink is where gated output lands. go-log's ZapEventLogger satisfies it;
// tests substitute a recording implementation.
type Sink interface {
	Info(args ...any)
	Warnf(format string, args ...any)
}

// Logger is a gated wrapper around a go-log subsystem logger.
type Logger struct {
	mu sync.Mutex

	sink Sink

	// headless suppresses Log (but not Deprecated) entirely: diagnostic
	// chatter is only useful where a client console exists to read it.
	headless bool

	logDisabled bool // default true
	warnings    bool // default true; stored as "enabled", setters invert
}

// New creates a Logger writing to the named go-log subsystem, with logging
// disabled and deprecation warnings enabled.
func New(name string) *Logger {
	sink := logging.Logger(name)
	// go-log defaults subsystems to error level; gating happens here, so the
	// sink itself must let info and warn lines through.
	_ = logging.SetLogLevel(name, "info")
	return &Logger{
		sink:        sink,
		logDisabled: true,
		warnings:    true,
	}
}

// NewForEnvironment is New, additionally marking the logger headless when
// env describes a non-browser runtime (nil env or nil navigator).
func NewForEnvironment(name string, env *useragent.Environment) *Logger {
	l := New(name)
	l.headless = env == nil || env.Navigator == nil
	return l
}

// SetDisableLog updates the logging toggle. v must be a bool; any other type
// is reported as an error value, never a panic. The returned string names
// the resulting state.
func (l *Logger) SetDisableLog(v any) (string, error) {
	b, ok := v.(bool)
	if !ok {
		return "", fmt.Errorf("argument type %T, please use a bool", v)
	}
	l.mu.Lock()
	l.logDisabled = b
	l.mu.Unlock()
	if b {
		return "logging disabled", nil
	}
	return "logging enabled", nil
}

// SetDisableWarnings updates the deprecation-warning toggle. As with
// SetDisableLog the argument must be a bool. Note the stored state is the
// negation of the argument: passing true disables warnings.
func (l *Logger) SetDisableWarnings(v any) (string, error) {
	b, ok := v.(bool)
	if !ok {
		return "", fmt.Errorf("argument type %T, please use a bool", v)
	}
	l.mu.Lock()
	l.warnings = !b
	l.mu.Unlock()
	if b {
		return "deprecation warnings disabled", nil
	}
	return "deprecation warnings enabled", nil
}

// Log forwards args to the sink's info channel, unmodified. No-op when the
// logger is disabled or headless.
func (l *Logger) Log(args ...any) {
	l.mu.Lock()
	suppressed := l.logDisabled || l.headless
	l.mu.Unlock()
	if suppressed {
		return
	}
	l.sink.Info(args...)
}

// Deprecated emits a warning pointing callers of oldName at newName. No-op
// when warnings are disabled.
func (l *Logger) Deprecated(oldName, newName string) {
	l.mu.Lock()
	enabled := l.warnings
	l.mu.Unlock()
	if !enabled {
		return
	}
	l.sink.Warnf("%s is deprecated, please use %s instead.", oldName, newName)
}
