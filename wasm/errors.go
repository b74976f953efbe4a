package wasm

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// ErrorSink receives diagnostics from the decoder, lexer and validator.
// Reporting an error never aborts the reporter; the caller decides whether to
// keep iterating.
//
// Context frames describe what was being parsed when a low-level failure
// happened, so "bad varint" inside a memarg inside an instruction reports the
// whole chain. PushContext must be balanced by PopContext on every return
// path; see Context for a scope guard.
type ErrorSink interface {
	OnError(loc Location, msg string)
	PushContext(loc Location, desc string)
	PopContext()
}

// Error is one recorded diagnostic: where, what, and the context chain from
// outermost to innermost at the time it was reported.
type Error struct {
	Loc     Location
	Msg     string
	Context []string
}

// Error implements the error interface. Ex.
//
//	0x11..0x13: memarg > align: integer representation too long
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return fmt.Sprintf("%s: %s", e.Loc, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Loc, strings.Join(e.Context, " > "), e.Msg)
}

type contextFrame struct {
	loc  Location
	desc string
}

// ErrorList is the default ErrorSink: it records every diagnostic with its
// context chain. The zero value is ready to use.
type ErrorList struct {
	errs  []*Error
	stack []contextFrame
}

var _ ErrorSink = (*ErrorList)(nil)

// OnError implements ErrorSink.
func (l *ErrorList) OnError(loc Location, msg string) {
	var ctx []string
	if n := len(l.stack); n > 0 {
		ctx = make([]string, n)
		for i, f := range l.stack {
			ctx[i] = f.desc
		}
	}
	l.errs = append(l.errs, &Error{Loc: loc, Msg: msg, Context: ctx})
}

// Errorf records a formatted diagnostic at loc.
func (l *ErrorList) Errorf(loc Location, format string, args ...interface{}) {
	l.OnError(loc, fmt.Sprintf(format, args...))
}

// PushContext implements ErrorSink.
func (l *ErrorList) PushContext(loc Location, desc string) {
	l.stack = append(l.stack, contextFrame{loc: loc, desc: desc})
}

// PopContext implements ErrorSink.
func (l *ErrorList) PopContext() {
	if n := len(l.stack); n > 0 {
		l.stack = l.stack[:n-1]
	}
}

// Errors returns the recorded diagnostics in report order.
func (l *ErrorList) Errors() []*Error { return l.errs }

// Empty returns true if nothing was reported.
func (l *ErrorList) Empty() bool { return len(l.errs) == 0 }

// Err combines every recorded diagnostic into one error, or returns nil if
// nothing was reported.
func (l *ErrorList) Err() error {
	var err error
	for _, e := range l.errs {
		err = multierr.Append(err, e)
	}
	return err
}

// Context runs fn inside a context frame on sink, popping the frame on every
// return path.
func Context(sink ErrorSink, loc Location, desc string, fn func()) {
	sink.PushContext(loc, desc)
	defer sink.PopContext()
	fn()
}
