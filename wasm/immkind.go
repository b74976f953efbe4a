package wasm

// ImmKind is the shape of the immediate following an opcode, per the
// instruction grammar. The binary reader dispatches on it to decode, and the
// text lexer to pick a token category for each opcode keyword.
type ImmKind byte

const (
	ImmNone ImmKind = iota
	ImmBlockType
	ImmIndex
	ImmCallIndirect
	ImmBrTable
	ImmBrOnExn
	ImmU8
	ImmMemArg
	ImmMemArgLane
	ImmLane
	ImmShuffle
	ImmI32
	ImmI64
	ImmF32
	ImmF64
	ImmV128
	ImmSegment
	ImmCopy
	ImmValTypes
	ImmRefType
)

// ImmKindOf returns the immediate shape of a known opcode. Opcodes outside
// the grammar must be filtered with IsKnownOpcode first.
func ImmKindOf(op Opcode) ImmKind {
	switch op.Prefix() {
	case VecPrefix:
		return vecImmKind(op)
	case AtomicPrefix:
		if op == OpcodeAtomicFence {
			return ImmU8
		}
		return ImmMemArg
	case MiscPrefix:
		switch op {
		case OpcodeMemoryInit, OpcodeTableInit:
			return ImmSegment
		case OpcodeMemoryCopy, OpcodeTableCopy:
			return ImmCopy
		case OpcodeDataDrop, OpcodeElemDrop,
			OpcodeTableGrow, OpcodeTableSize, OpcodeTableFill:
			return ImmIndex
		case OpcodeMemoryFill:
			return ImmU8
		}
		return ImmNone
	}

	switch op {
	case OpcodeBlock, OpcodeLoop, OpcodeIf, OpcodeTry:
		return ImmBlockType
	case OpcodeBr, OpcodeBrIf, OpcodeCall, OpcodeReturnCall,
		OpcodeLocalGet, OpcodeLocalSet, OpcodeLocalTee,
		OpcodeGlobalGet, OpcodeGlobalSet,
		OpcodeTableGet, OpcodeTableSet,
		OpcodeThrow, OpcodeRefFunc:
		return ImmIndex
	case OpcodeCallIndirect, OpcodeReturnCallIndirect:
		return ImmCallIndirect
	case OpcodeBrTable:
		return ImmBrTable
	case OpcodeBrOnExn:
		return ImmBrOnExn
	case OpcodeMemorySize, OpcodeMemoryGrow:
		return ImmU8
	case OpcodeI32Const:
		return ImmI32
	case OpcodeI64Const:
		return ImmI64
	case OpcodeF32Const:
		return ImmF32
	case OpcodeF64Const:
		return ImmF64
	case OpcodeTypedSelect:
		return ImmValTypes
	case OpcodeRefNull:
		return ImmRefType
	}
	if op >= OpcodeI32Load && op <= OpcodeI64Store32 {
		return ImmMemArg
	}
	return ImmNone
}

func vecImmKind(op Opcode) ImmKind {
	switch {
	case op >= OpcodeV128Load && op <= OpcodeV128Store:
		return ImmMemArg
	case op == OpcodeV128Load32Zero || op == OpcodeV128Load64Zero:
		return ImmMemArg
	case op == OpcodeV128Const:
		return ImmV128
	case op == OpcodeI8x16Shuffle:
		return ImmShuffle
	case op >= OpcodeI8x16ExtractLaneS && op <= OpcodeF64x2ReplaceLane:
		return ImmLane
	case op >= OpcodeV128Load8Lane && op <= OpcodeV128Store64Lane:
		return ImmMemArgLane
	}
	return ImmNone
}
