package binary

import (
	"fmt"

	"github.com/wasmkit/wasmkit/wasm"
)

// InstructionReader decodes one instruction per Next call from a function
// body or constant expression frame. It tracks block nesting so the end that
// closes the outermost frame terminates iteration; the final end is the last
// instruction yielded.
//
// Errors are reported to the sink and terminate iteration.
type InstructionReader struct {
	r        *Reader
	features wasm.Features
	sink     wasm.ErrorSink

	depth int
	done  bool
	fail  bool
}

// NewInstructionReader reads instructions from r until the end closing the
// implicit outermost frame.
func NewInstructionReader(r *Reader, features wasm.Features, sink wasm.ErrorSink) *InstructionReader {
	return &InstructionReader{r: r, features: features, sink: sink, depth: 1}
}

// Done returns true once the final end was yielded.
func (ir *InstructionReader) Done() bool { return ir.done }

// Failed returns true if iteration stopped on an error rather than the final
// end.
func (ir *InstructionReader) Failed() bool { return ir.fail }

// Next decodes the next instruction. ok is false once the stream is
// exhausted, either after the final end or after a reported error.
func (ir *InstructionReader) Next() (instr wasm.Instruction, ok bool) {
	if ir.done || ir.fail {
		return
	}

	start := ir.r.Pos()
	op, err := ir.readOpcode()
	if err != nil {
		ir.fail = true
		ir.sink.OnError(ir.r.From(start), err.Error())
		return
	}

	if !wasm.IsKnownOpcode(op) {
		ir.fail = true
		if p := op.Prefix(); p != 0 {
			ir.sink.OnError(ir.r.From(start), fmt.Sprintf("unknown opcode 0x%02x behind prefix 0x%02x", op.Sub(), p))
		} else {
			ir.sink.OnError(ir.r.From(start), fmt.Sprintf("unknown opcode 0x%02x", byte(op)))
		}
		return
	}

	if f := wasm.OpcodeFeature(op); f != 0 {
		if err := ir.features.RequireEnabled(f); err != nil {
			ir.fail = true
			ir.sink.OnError(ir.r.From(start), fmt.Sprintf("%s invalid as %v", wasm.InstructionName(op), err))
			return
		}
	}

	imm, err := ir.readImmediate(op)
	if err != nil {
		ir.fail = true
		wasm.Context(ir.sink, ir.r.From(start), wasm.InstructionName(op), func() {
			ir.sink.OnError(ir.r.From(start), err.Error())
		})
		return
	}

	switch op {
	case wasm.OpcodeBlock, wasm.OpcodeLoop, wasm.OpcodeIf, wasm.OpcodeTry:
		ir.depth++
	case wasm.OpcodeEnd:
		ir.depth--
		if ir.depth == 0 {
			ir.done = true
		}
	}

	return wasm.Instruction{Opcode: op, Imm: imm, Loc: ir.r.From(start)}, true
}

func (ir *InstructionReader) readOpcode() (wasm.Opcode, error) {
	b, err := ir.r.ReadByte()
	if err != nil {
		return 0, fmt.Errorf("read opcode: %w", err)
	}
	switch b {
	case wasm.MiscPrefix, wasm.VecPrefix, wasm.AtomicPrefix:
		sub, err := ir.r.ReadU32()
		if err != nil {
			return 0, fmt.Errorf("read 0x%02x subopcode: %w", b, err)
		}
		if sub > 0xff {
			return 0, fmt.Errorf("invalid 0x%02x subopcode: %#x", b, sub)
		}
		return wasm.Opcode(b)<<8 | wasm.Opcode(sub), nil
	}
	return wasm.Opcode(b), nil
}

func (ir *InstructionReader) readImmediate(op wasm.Opcode) (wasm.Immediate, error) {
	r := ir.r
	switch wasm.ImmKindOf(op) {
	case wasm.ImmNone:
		return wasm.NoImm{}, nil

	case wasm.ImmBlockType:
		return ir.readBlockType()

	case wasm.ImmIndex:
		idx, err := r.ReadU32()
		if err != nil {
			return nil, fmt.Errorf("read index: %w", err)
		}
		return wasm.IndexImm{Index: idx}, nil

	case wasm.ImmCallIndirect:
		typeIndex, err := r.ReadU32()
		if err != nil {
			return nil, fmt.Errorf("read type index: %w", err)
		}
		tableIndex, err := r.ReadU32()
		if err != nil {
			return nil, fmt.Errorf("read table index: %w", err)
		}
		if tableIndex != 0 {
			if err := ir.features.RequireEnabled(wasm.FeatureReferenceTypes); err != nil {
				return nil, fmt.Errorf("table index must be zero but was %d: %v", tableIndex, err)
			}
		}
		return wasm.CallIndirectImm{TypeIndex: typeIndex, TableIndex: tableIndex}, nil

	case wasm.ImmBrTable:
		n, err := r.ReadCount()
		if err != nil {
			return nil, fmt.Errorf("read br_table label count: %w", err)
		}
		targets := make([]wasm.Index, n)
		for i := uint32(0); i < n; i++ {
			if targets[i], err = r.ReadU32(); err != nil {
				return nil, fmt.Errorf("read br_table label %d: %w", i, err)
			}
		}
		def, err := r.ReadU32()
		if err != nil {
			return nil, fmt.Errorf("read br_table default label: %w", err)
		}
		return wasm.BrTableImm{Targets: targets, Default: def}, nil

	case wasm.ImmBrOnExn:
		label, err := r.ReadU32()
		if err != nil {
			return nil, fmt.Errorf("read label: %w", err)
		}
		event, err := r.ReadU32()
		if err != nil {
			return nil, fmt.Errorf("read event index: %w", err)
		}
		return wasm.BrOnExnImm{Label: label, Event: event}, nil

	case wasm.ImmU8:
		b, err := r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("read reserved byte: %w", err)
		}
		if b != 0 && op != wasm.OpcodeAtomicFence {
			return nil, fmt.Errorf("reserved byte must be zero but was 0x%x", b)
		}
		return wasm.U8Imm{Value: b}, nil

	case wasm.ImmMemArg:
		m, err := ir.readMemArg()
		if err != nil {
			return nil, err
		}
		return m, nil

	case wasm.ImmMemArgLane:
		m, err := ir.readMemArg()
		if err != nil {
			return nil, err
		}
		lane, err := r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("read lane: %w", err)
		}
		return wasm.MemArgLaneImm{MemArg: m, Lane: lane}, nil

	case wasm.ImmLane:
		lane, err := r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("read lane: %w", err)
		}
		return wasm.LaneImm{Lane: lane}, nil

	case wasm.ImmShuffle:
		b, err := r.ReadBytes(16)
		if err != nil {
			return nil, fmt.Errorf("read shuffle lanes: %w", err)
		}
		var imm wasm.ShuffleImm
		copy(imm.Lanes[:], b)
		for i, l := range imm.Lanes {
			if l >= 32 {
				return nil, fmt.Errorf("shuffle lane %d selects %d, out of range", i, l)
			}
		}
		return imm, nil

	case wasm.ImmI32:
		v, err := r.ReadS32()
		if err != nil {
			return nil, fmt.Errorf("read i32 immediate: %w", err)
		}
		return wasm.I32Imm{Value: v}, nil

	case wasm.ImmI64:
		v, err := r.ReadS64()
		if err != nil {
			return nil, fmt.Errorf("read i64 immediate: %w", err)
		}
		return wasm.I64Imm{Value: v}, nil

	case wasm.ImmF32:
		v, err := r.ReadF32()
		if err != nil {
			return nil, fmt.Errorf("read f32 immediate: %w", err)
		}
		return wasm.F32Imm{Bits: v}, nil

	case wasm.ImmF64:
		v, err := r.ReadF64()
		if err != nil {
			return nil, fmt.Errorf("read f64 immediate: %w", err)
		}
		return wasm.F64Imm{Bits: v}, nil

	case wasm.ImmV128:
		b, err := r.ReadBytes(16)
		if err != nil {
			return nil, fmt.Errorf("read v128 immediate: %w", err)
		}
		var imm wasm.V128Imm
		copy(imm.Bytes[:], b)
		return imm, nil

	case wasm.ImmSegment:
		segment, err := r.ReadU32()
		if err != nil {
			return nil, fmt.Errorf("read segment index: %w", err)
		}
		dst, err := r.ReadU32()
		if err != nil {
			return nil, fmt.Errorf("read destination index: %w", err)
		}
		if op == wasm.OpcodeMemoryInit && dst != 0 {
			return nil, fmt.Errorf("memory index must be zero but was %d", dst)
		}
		return wasm.SegmentImm{Segment: segment, Dst: dst}, nil

	case wasm.ImmCopy:
		dst, err := r.ReadU32()
		if err != nil {
			return nil, fmt.Errorf("read destination index: %w", err)
		}
		src, err := r.ReadU32()
		if err != nil {
			return nil, fmt.Errorf("read source index: %w", err)
		}
		if op == wasm.OpcodeMemoryCopy && (dst != 0 || src != 0) {
			return nil, fmt.Errorf("memory indexes must be zero but were %d, %d", dst, src)
		}
		return wasm.CopyImm{Dst: dst, Src: src}, nil

	case wasm.ImmValTypes:
		types, err := decodeValueTypes(r, ir.features)
		if err != nil {
			return nil, fmt.Errorf("read select types: %w", err)
		}
		return wasm.ValueTypesImm{Types: types}, nil

	case wasm.ImmRefType:
		t, err := decodeRefType(r, ir.features)
		if err != nil {
			return nil, fmt.Errorf("read ref.null type: %w", err)
		}
		return wasm.RefTypeImm{Type: t}, nil
	}
	return wasm.NoImm{}, nil
}

func (ir *InstructionReader) readBlockType() (wasm.BlockTypeImm, error) {
	raw, err := ir.r.ReadS33()
	if err != nil {
		return wasm.BlockTypeImm{}, fmt.Errorf("read block type: %w", err)
	}
	if raw >= 0 {
		if err := ir.features.RequireEnabled(wasm.FeatureMultiValue); err != nil {
			return wasm.BlockTypeImm{}, fmt.Errorf("block with function type invalid as %v", err)
		}
		return wasm.BlockTypeImm{Kind: wasm.BlockTypeFunc, TypeIndex: wasm.Index(raw)}, nil
	}
	// Negative numbers encode the byte value of a single result type, or the
	// void marker 0x40, in the low 7 bits.
	switch b := byte(raw & 0x7f); b {
	case 0x40:
		return wasm.BlockTypeImm{Kind: wasm.BlockTypeEmpty}, nil
	case wasm.ValueTypeI32, wasm.ValueTypeI64, wasm.ValueTypeF32, wasm.ValueTypeF64:
		return wasm.BlockTypeImm{Kind: wasm.BlockTypeValue, ValueType: b}, nil
	case wasm.ValueTypeV128:
		if err := ir.features.RequireEnabled(wasm.FeatureSIMD); err != nil {
			return wasm.BlockTypeImm{}, fmt.Errorf("v128 block type invalid as %v", err)
		}
		return wasm.BlockTypeImm{Kind: wasm.BlockTypeValue, ValueType: b}, nil
	case wasm.ValueTypeFuncref, wasm.ValueTypeExternref:
		if err := ir.features.RequireEnabled(wasm.FeatureReferenceTypes); err != nil {
			return wasm.BlockTypeImm{}, fmt.Errorf("%s block type invalid as %v", wasm.ValueTypeName(b), err)
		}
		return wasm.BlockTypeImm{Kind: wasm.BlockTypeValue, ValueType: b}, nil
	case wasm.ValueTypeExnref:
		if err := ir.features.RequireEnabled(wasm.FeatureExceptions); err != nil {
			return wasm.BlockTypeImm{}, fmt.Errorf("exnref block type invalid as %v", err)
		}
		return wasm.BlockTypeImm{Kind: wasm.BlockTypeValue, ValueType: b}, nil
	default:
		return wasm.BlockTypeImm{}, fmt.Errorf("invalid block type: %d", raw)
	}
}

func (ir *InstructionReader) readMemArg() (wasm.MemArg, error) {
	align, err := ir.r.ReadU32()
	if err != nil {
		return wasm.MemArg{}, fmt.Errorf("read memory align: %w", err)
	}
	offset, err := ir.r.ReadU32()
	if err != nil {
		return wasm.MemArg{}, fmt.Errorf("read memory offset: %w", err)
	}
	return wasm.MemArg{AlignLog2: align, Offset: offset}, nil
}
