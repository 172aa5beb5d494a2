// Package invariant reports programming-invariant violations.
//
// In strict mode (development builds, tests) a violation panics so the bug
// is caught where it happens. Otherwise it is logged and the caller takes
// its documented degraded path.
package invariant

import (
	"fmt"
	"log/slog"

	"go.uber.org/atomic"
)

var (
	strict = atomic.NewBool(false)
	logger = atomic.NewPointer(slog.Default())
)

// Violation is the panic value raised in strict mode
type Violation struct {
	Msg string
}

func (v Violation) Error() string {
	return "invariant violated: " + v.Msg
}

// SetStrict switches between panicking and logging
func SetStrict(on bool) {
	strict.Store(on)
}

// Strict reports whether violations panic
func Strict() bool {
	return strict.Load()
}

// SetLogger sets the logger used for non-strict violations
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	logger.Store(l)
}

// Check returns cond. When cond is false the violation is raised.
func Check(cond bool, msg string, args ...any) bool {
	if cond {
		return true
	}
	if strict.Load() {
		panic(Violation{Msg: format(msg, args)})
	}
	logger.Load().Error("invariant violated", append([]any{"msg", msg}, args...)...)
	return false
}

// Fail is Check(false, ...)
func Fail(msg string, args ...any) {
	Check(false, msg, args...)
}

func format(msg string, args []any) string {
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf("%s %v", msg, args)
}
