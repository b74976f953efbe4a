package binary

import (
	"errors"
	"fmt"

	"github.com/wasmkit/wasmkit/wasm"
)

// decodeConstantExpression reads one value-producing instruction followed by
// end. Which producers are allowed where is the validator's concern; the
// decoder only enforces the shape.
func decodeConstantExpression(r *Reader, features wasm.Features, sink wasm.ErrorSink) (wasm.ConstantExpression, error) {
	start := r.Pos()

	ir := NewInstructionReader(r, features, sink)
	var instrs []wasm.Instruction
	for {
		instr, ok := ir.Next()
		if !ok {
			break
		}
		instrs = append(instrs, instr)
	}
	if ir.Failed() {
		return wasm.ConstantExpression{}, errors.New("malformed constant expression")
	}

	// The final end is always the last instruction yielded.
	if len(instrs) != 2 {
		return wasm.ConstantExpression{}, fmt.Errorf("constant expression must be one instruction followed by end, got %d instructions", len(instrs)-1)
	}

	return wasm.ConstantExpression{Instr: instrs[0], Loc: r.From(start)}, nil
}
