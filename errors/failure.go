package errors

import (
	"runtime"
	"strings"
)

// maxPanicDepth bounds the frames inspected when locating a panic origin.
const maxPanicDepth = 64

// Failure is a handle on a failure that is currently being handled.
//
// A Failure pins the cause to the frame where it originated. It is created
// at the point a failure is observed, either by Recover inside a deferred
// function or by Here/Caller next to a returned error, and passed explicitly
// to Wrap. Failures are local to the goroutine that created them and are
// never looked up from global state.
type Failure struct {
	cause  interface{}
	origin runtime.Frame
	active bool
}

// Recover converts the value returned by recover() into a Failure.
// It must be called from the deferred function that called recover().
// Returns nil if r is nil (no panic in flight).
//
// The origin is the innermost frame that is not part of the runtime below
// the panic, i.e. the statement that panicked rather than the deferred
// function that recovered it. If no panic is unwinding on the current
// goroutine, the returned Failure is inactive and Wrap rejects it.
//
// Example:
//
//	defer func() {
//	    if f := errors.Recover(recover()); f != nil {
//	        err = errors.MustWrap(nil, f)
//	    }
//	}()
func Recover(r interface{}) *Failure {
	if r == nil {
		return nil
	}

	pcs := make([]uintptr, maxPanicDepth)
	n := runtime.Callers(2, pcs)
	origin, ok := panicOrigin(pcs[:n])

	return &Failure{
		cause:  r,
		origin: origin,
		active: ok,
	}
}

// panicOrigin finds the first non-runtime frame below runtime.gopanic.
func panicOrigin(pcs []uintptr) (runtime.Frame, bool) {
	frames := runtime.CallersFrames(pcs)
	panicking := false
	for {
		frame, more := frames.Next()
		switch {
		case !panicking:
			panicking = frame.Function == "runtime.gopanic"
		case !strings.HasPrefix(frame.Function, "runtime."):
			return frame, true
		}
		if !more {
			return runtime.Frame{}, false
		}
	}
}

// Here marks err as a failure originating at the caller's frame.
// Returns nil if err is nil.
//
// Example:
//
//	if err := stage.Run(); err != nil {
//	    return errors.MustWrap(err, errors.Here(err))
//	}
func Here(err error) *Failure {
	return Caller(err, 1)
}

// Caller marks err as a failure originating skip frames above the caller.
// Caller(err, 0) is equivalent to Here(err). Helpers that wrap on behalf of
// their caller pass skip=1 so the origin is the helper's call site.
// Returns nil if err is nil.
func Caller(err error, skip int) *Failure {
	if err == nil {
		return nil
	}

	pcs := make([]uintptr, 1)
	if runtime.Callers(skip+2, pcs) == 0 {
		return &Failure{cause: err}
	}
	frame, _ := runtime.CallersFrames(pcs).Next()

	return &Failure{
		cause:  err,
		origin: frame,
		active: frame.File != "",
	}
}

// Active reports whether f carries a resolved origin frame.
// A nil Failure is not active.
func (f *Failure) Active() bool {
	return f != nil && f.active
}

// Cause returns the value that caused the failure.
func (f *Failure) Cause() interface{} {
	if f == nil {
		return nil
	}
	return f.cause
}

// File returns the origin source file, or "" if f is not active.
func (f *Failure) File() string {
	if f == nil {
		return ""
	}
	return f.origin.File
}

// Line returns the origin line number, or 0 if f is not active.
func (f *Failure) Line() int {
	if f == nil {
		return 0
	}
	return f.origin.Line
}
