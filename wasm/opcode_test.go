package wasm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInstructionName(t *testing.T) {
	tests := []struct {
		op       Opcode
		expected string
	}{
		{op: OpcodeUnreachable, expected: "unreachable"},
		{op: OpcodeI32Add, expected: "i32.add"},
		{op: OpcodeI32TruncF32S, expected: "i32.trunc_f32_s"},
		{op: OpcodeI32TruncSatF32S, expected: "i32.trunc_sat_f32_s"},
		{op: OpcodeMemoryInit, expected: "memory.init"},
		{op: OpcodeI8x16Shuffle, expected: "i8x16.shuffle"},
		{op: OpcodeF64x2ConvertLowI32x4U, expected: "f64x2.convert_low_i32x4_u"},
		{op: OpcodeMemoryAtomicNotify, expected: "memory.atomic.notify"},
		{op: OpcodeI64AtomicRmw32CmpxchgU, expected: "i64.atomic.rmw32.cmpxchg_u"},
		{op: OpcodeBrOnExn, expected: "br_on_exn"},
		{op: Opcode(0x27), expected: "0x27"},
		{op: Opcode(0xfdaf), expected: "0xfd 0xaf"},
	}

	for _, tc := range tests {
		require.Equal(t, tc.expected, InstructionName(tc.op), "opcode %#x", uint32(tc.op))
	}
}

func TestLookupOpcode(t *testing.T) {
	op, ok := LookupOpcode("i32.add")
	require.True(t, ok)
	require.Equal(t, OpcodeI32Add, op)

	// Both select forms share a spelling; lookup resolves to the untyped one.
	op, ok = LookupOpcode("select")
	require.True(t, ok)
	require.Equal(t, OpcodeSelect, op)

	_, ok = LookupOpcode("i32.frobnicate")
	require.False(t, ok)
}

func TestOpcodeFeature(t *testing.T) {
	tests := []struct {
		op       Opcode
		expected Features
	}{
		{op: OpcodeI32Add, expected: 0},
		{op: OpcodeI32Extend8S, expected: FeatureSignExtensionOps},
		{op: OpcodeI32TruncSatF64U, expected: FeatureSaturatingFloatToInt},
		{op: OpcodeMemoryCopy, expected: FeatureBulkMemory},
		{op: OpcodeTableGrow, expected: FeatureReferenceTypes},
		{op: OpcodeRefNull, expected: FeatureReferenceTypes},
		{op: OpcodeTypedSelect, expected: FeatureReferenceTypes},
		{op: OpcodeV128Const, expected: FeatureSIMD},
		{op: OpcodeI32AtomicLoad, expected: FeatureThreads},
		{op: OpcodeReturnCall, expected: FeatureTailCall},
		{op: OpcodeTry, expected: FeatureExceptions},
	}

	for _, tc := range tests {
		require.Equal(t, tc.expected, OpcodeFeature(tc.op), "opcode %s", tc.op)
	}
}

// Every named opcode must be known and prefixed opcodes must round-trip
// through Prefix and Sub; a few witnesses have the immediate shape of their
// class.
func TestOpcodeNames_Coverage(t *testing.T) {
	names := OpcodeNames()
	require.NotEmpty(t, names)

	for op := range names {
		require.True(t, IsKnownOpcode(op))
		if p := op.Prefix(); p != 0 {
			require.Contains(t, []byte{MiscPrefix, VecPrefix, AtomicPrefix}, p)
			require.Equal(t, op, Opcode(p)<<8|Opcode(op.Sub()))
		}
	}

	// The immediate shapes the binary grammar defines for a few witnesses.
	require.Equal(t, ImmBlockType, ImmKindOf(OpcodeBlock))
	require.Equal(t, ImmMemArg, ImmKindOf(OpcodeI64Store32))
	require.Equal(t, ImmMemArg, ImmKindOf(OpcodeI32AtomicRmwAdd))
	require.Equal(t, ImmU8, ImmKindOf(OpcodeAtomicFence))
	require.Equal(t, ImmShuffle, ImmKindOf(OpcodeI8x16Shuffle))
	require.Equal(t, ImmLane, ImmKindOf(OpcodeF64x2ReplaceLane))
	require.Equal(t, ImmMemArgLane, ImmKindOf(OpcodeV128Store64Lane))
	require.Equal(t, ImmSegment, ImmKindOf(OpcodeTableInit))
	require.Equal(t, ImmCopy, ImmKindOf(OpcodeMemoryCopy))
	require.Equal(t, ImmValTypes, ImmKindOf(OpcodeTypedSelect))
	require.Equal(t, ImmNone, ImmKindOf(OpcodeI32Add))
}
