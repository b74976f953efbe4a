package wasm

import "bytes"

// Instruction is one decoded instruction: its opcode and immediate. The
// immediate is a tagged union with one variant per shape the instruction
// grammar defines, so consumers can switch exhaustively.
type Instruction struct {
	Opcode Opcode
	Imm    Immediate

	Loc Location
}

// Equal compares opcode and immediate, ignoring locations.
func (i Instruction) Equal(o Instruction) bool {
	if i.Opcode != o.Opcode {
		return false
	}
	return immEqual(i.Imm, o.Imm)
}

// Immediate is the payload following an opcode. Exactly one concrete type
// applies per opcode, per the instruction grammar.
type Immediate interface {
	isImmediate()
}

// NoImm is the immediate of instructions that carry none, ex. i32.add.
type NoImm struct{}

// BlockTypeKind discriminates the three encodings of a block type.
type BlockTypeKind byte

const (
	// BlockTypeEmpty is the void marker 0x40.
	BlockTypeEmpty BlockTypeKind = iota
	// BlockTypeValue is a single result value type.
	BlockTypeValue
	// BlockTypeFunc is an index into the type section (multi-value).
	BlockTypeFunc
)

// BlockTypeImm is the immediate of block, loop, if and try.
type BlockTypeImm struct {
	Kind      BlockTypeKind
	ValueType ValueType // Kind == BlockTypeValue
	TypeIndex Index     // Kind == BlockTypeFunc
}

// IndexImm is a single index immediate: label, function, local, global,
// table, type, event, element or data segment depending on the opcode.
type IndexImm struct {
	Index Index
}

// CallIndirectImm is the immediate of call_indirect and
// return_call_indirect.
type CallIndirectImm struct {
	TypeIndex  Index
	TableIndex Index
}

// BrTableImm is the immediate of br_table.
type BrTableImm struct {
	Targets []Index
	Default Index
}

// BrOnExnImm is the immediate of br_on_exn (exception-handling proposal).
type BrOnExnImm struct {
	Label Index
	Event Index
}

// U8Imm is a single byte immediate: the reserved zero of memory.size and
// memory.grow, the consistency byte of atomic.fence.
type U8Imm struct {
	Value byte
}

// MemArg is the immediate of a load or store: a power-of-two alignment hint
// and a byte offset.
//
// See https://www.w3.org/TR/2019/REC-wasm-core-1-20191205/#binary-memarg
type MemArg struct {
	AlignLog2 uint32
	Offset    uint32
}

func (MemArg) isImmediate() {}

// MemArgLaneImm is the immediate of the v128 lane loads and stores: a memarg
// followed by a lane number.
type MemArgLaneImm struct {
	MemArg MemArg
	Lane   byte
}

// LaneImm is the immediate of the extract_lane and replace_lane family.
type LaneImm struct {
	Lane byte
}

// ShuffleImm is the sixteen lane selectors of i8x16.shuffle, each 0..31.
type ShuffleImm struct {
	Lanes [16]byte
}

// I32Imm is the immediate of i32.const.
type I32Imm struct {
	Value int32
}

// I64Imm is the immediate of i64.const.
type I64Imm struct {
	Value int64
}

// F32Imm is the immediate of f32.const, kept as raw bits so NaN payloads
// round-trip.
type F32Imm struct {
	Bits uint32
}

// F64Imm is the immediate of f64.const, kept as raw bits so NaN payloads
// round-trip.
type F64Imm struct {
	Bits uint64
}

// V128Imm is the sixteen-byte immediate of v128.const.
type V128Imm struct {
	Bytes [16]byte
}

// SegmentImm is the immediate of memory.init and table.init: the source
// segment and the destination memory or table.
type SegmentImm struct {
	Segment Index
	Dst     Index
}

// CopyImm is the immediate of memory.copy and table.copy.
type CopyImm struct {
	Dst Index
	Src Index
}

// ValueTypesImm is the immediate of typed select: the annotated result types.
type ValueTypesImm struct {
	Types []ValueType
}

// RefTypeImm is the immediate of ref.null.
type RefTypeImm struct {
	Type RefType
}

func (NoImm) isImmediate()           {}
func (BlockTypeImm) isImmediate()    {}
func (IndexImm) isImmediate()        {}
func (CallIndirectImm) isImmediate() {}
func (BrTableImm) isImmediate()      {}
func (BrOnExnImm) isImmediate()      {}
func (U8Imm) isImmediate()           {}
func (MemArgLaneImm) isImmediate()   {}
func (LaneImm) isImmediate()         {}
func (ShuffleImm) isImmediate()      {}
func (I32Imm) isImmediate()          {}
func (I64Imm) isImmediate()          {}
func (F32Imm) isImmediate()          {}
func (F64Imm) isImmediate()          {}
func (V128Imm) isImmediate()         {}
func (SegmentImm) isImmediate()      {}
func (CopyImm) isImmediate()         {}
func (ValueTypesImm) isImmediate()   {}
func (RefTypeImm) isImmediate()      {}

func immEqual(a, b Immediate) bool {
	// BrTableImm and ValueTypesImm hold slices, so they are compared
	// elementwise; every other variant is comparable.
	switch x := a.(type) {
	case BrTableImm:
		y, ok := b.(BrTableImm)
		if !ok || x.Default != y.Default || len(x.Targets) != len(y.Targets) {
			return false
		}
		for i := range x.Targets {
			if x.Targets[i] != y.Targets[i] {
				return false
			}
		}
		return true
	case ValueTypesImm:
		y, ok := b.(ValueTypesImm)
		return ok && bytes.Equal(x.Types, y.Types)
	default:
		return a == b
	}
}
