package binary

import (
	"errors"
	"fmt"
	"math"

	"github.com/wasmkit/wasmkit/wasm"
)

func decodeCode(r *Reader, features wasm.Features, sink wasm.ErrorSink) (wasm.Code, error) {
	start := r.Pos()

	size, err := r.ReadCount()
	if err != nil {
		return wasm.Code{}, fmt.Errorf("get the size of code: %w", err)
	}
	body, err := r.Sub(size)
	if err != nil {
		return wasm.Code{}, fmt.Errorf("code size: %w", err)
	}

	// Locals are run-length encoded: (count, type) pairs.
	nl, err := body.ReadCount()
	if err != nil {
		return wasm.Code{}, fmt.Errorf("get the size of locals: %w", err)
	}
	var localTypes []wasm.ValueType
	var total uint64
	for i := uint32(0); i < nl; i++ {
		n, err := body.ReadU32()
		if err != nil {
			return wasm.Code{}, fmt.Errorf("read local count: %w", err)
		}
		total += uint64(n)
		if total > math.MaxUint32 {
			return wasm.Code{}, fmt.Errorf("too many locals: %d", total)
		}
		vt, err := decodeValueType(body, features)
		if err != nil {
			return wasm.Code{}, fmt.Errorf("read local type: %w", err)
		}
		for j := uint32(0); j < n; j++ {
			localTypes = append(localTypes, vt)
		}
	}

	ir := NewInstructionReader(body, features, sink)
	var instrs []wasm.Instruction
	for {
		instr, ok := ir.Next()
		if !ok {
			break
		}
		instrs = append(instrs, instr)
	}
	if ir.Failed() {
		return wasm.Code{}, errors.New("malformed function body")
	}
	if !ir.Done() {
		return wasm.Code{}, errors.New("function body must end with end")
	}
	if body.Len() != 0 {
		return wasm.Code{}, fmt.Errorf("%d trailing bytes after final end", body.Len())
	}

	return wasm.Code{LocalTypes: localTypes, Body: instrs, Loc: r.From(start)}, nil
}
