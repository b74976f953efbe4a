// Package validate type-checks a decoded module against the WebAssembly
// specification.
//
// Function bodies are checked by abstract interpretation over a value-type
// stack and a stack of control frames, with the standard stack-polymorphic
// treatment of unreachable code: pops below the current frame's height
// synthesize an "unknown" type that satisfies any expectation.
//
// See https://webassembly.github.io/spec/core/appendix/algorithm.html
package validate

import (
	"fmt"

	"github.com/wasmkit/wasmkit/wasm"
)

// valueTypeUnknown is the polymorphic sentinel produced by pops in
// unreachable code. It compares equal to every expected type.
const valueTypeUnknown = wasm.ValueType(0xff)

// frameKind is the structured-control construct a frame belongs to.
type frameKind byte

const (
	frameKindFunction frameKind = iota
	frameKindBlock
	frameKindLoop
	frameKindIf
	frameKindElse
	frameKindTry
	frameKindCatch
)

func (k frameKind) String() string {
	switch k {
	case frameKindFunction:
		return "function"
	case frameKindBlock:
		return "block"
	case frameKindLoop:
		return "loop"
	case frameKindIf:
		return "if"
	case frameKindElse:
		return "else"
	case frameKindTry:
		return "try"
	case frameKindCatch:
		return "catch"
	}
	return "unknown"
}

// controlFrame records one open structured block.
type controlFrame struct {
	kind frameKind
	// startTypes are the block's parameters: what a br to a loop expects.
	startTypes []wasm.ValueType
	// endTypes are the block's results: what must be on the stack at end,
	// and what a br to any non-loop label expects.
	endTypes []wasm.ValueType
	// height is the value stack height just below the frame's parameters.
	height int
	// unreachable marks the rest of the frame as following unconditional
	// control transfer.
	unreachable bool
}

// labelTypes returns the types a branch to this frame's label must provide:
// a loop continues at its start, everything else at its end.
func (f *controlFrame) labelTypes() []wasm.ValueType {
	if f.kind == frameKindLoop {
		return f.startTypes
	}
	return f.endTypes
}

// stacks bundles the value and control stacks of one function validation, so
// a validator can be reused across functions without reallocating.
type stacks struct {
	vals []wasm.ValueType
	ctrl []controlFrame
}

func (s *stacks) reset() {
	s.vals = s.vals[:0]
	s.ctrl = s.ctrl[:0]
}

func (s *stacks) top() *controlFrame {
	return &s.ctrl[len(s.ctrl)-1]
}

// frame returns the frame n levels below the top, the target of "br n".
func (s *stacks) frame(n int) (*controlFrame, bool) {
	if n >= len(s.ctrl) {
		return nil, false
	}
	return &s.ctrl[len(s.ctrl)-1-n], true
}

func (s *stacks) push(t wasm.ValueType) {
	s.vals = append(s.vals, t)
}

func (s *stacks) pushAll(ts []wasm.ValueType) {
	s.vals = append(s.vals, ts...)
}

// pop removes the top value, respecting the current frame: below the frame's
// height it synthesizes unknown when unreachable, and reports underflow
// otherwise.
func (s *stacks) pop() (wasm.ValueType, error) {
	f := s.top()
	if len(s.vals) == f.height {
		if f.unreachable {
			return valueTypeUnknown, nil
		}
		return valueTypeUnknown, fmt.Errorf("stack underflow in %s block", f.kind)
	}
	t := s.vals[len(s.vals)-1]
	s.vals = s.vals[:len(s.vals)-1]
	return t, nil
}

// popExpect pops and checks against the expected type, with unknown matching
// anything.
func (s *stacks) popExpect(expect wasm.ValueType) (wasm.ValueType, error) {
	actual, err := s.pop()
	if err != nil {
		return actual, err
	}
	if actual != valueTypeUnknown && expect != valueTypeUnknown && actual != expect {
		return actual, fmt.Errorf("type mismatch: expected %s but found %s",
			wasm.ValueTypeName(expect), wasm.ValueTypeName(actual))
	}
	return actual, nil
}

// popAll pops the expected types, last first.
func (s *stacks) popAll(expect []wasm.ValueType) error {
	for i := len(expect) - 1; i >= 0; i-- {
		if _, err := s.popExpect(expect[i]); err != nil {
			return fmt.Errorf("%v (operand %d)", err, i)
		}
	}
	return nil
}

// peekAll checks the expected types are on the stack and leaves them there.
func (s *stacks) peekAll(expect []wasm.ValueType) error {
	if err := s.popAll(expect); err != nil {
		return err
	}
	// Push back what was (notionally) popped; unknowns become the expected
	// types, which is what the subsequent instructions will see.
	s.pushAll(expect)
	return nil
}

// markUnreachable truncates the values of the current frame and flags it, so
// further pops are polymorphic.
func (s *stacks) markUnreachable() {
	f := s.top()
	s.vals = s.vals[:f.height]
	f.unreachable = true
}

// pushFrame opens a structured block whose parameters are already popped.
func (s *stacks) pushFrame(kind frameKind, start, end []wasm.ValueType) {
	s.ctrl = append(s.ctrl, controlFrame{
		kind:       kind,
		startTypes: start,
		endTypes:   end,
		height:     len(s.vals),
	})
	s.pushAll(start)
}

// popFrame closes the top frame: its end types must be on the stack, and
// nothing else above the frame's height.
func (s *stacks) popFrame() (controlFrame, error) {
	f := *s.top()
	err := s.popAll(f.endTypes)
	if err == nil && len(s.vals) != f.height && !f.unreachable {
		err = fmt.Errorf("%d superfluous values on stack at end of %s block",
			len(s.vals)-f.height, f.kind)
	}
	s.vals = s.vals[:f.height]
	s.ctrl = s.ctrl[:len(s.ctrl)-1]
	return f, err
}
