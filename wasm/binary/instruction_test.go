package binary

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmkit/wasmkit/wasm"
)

// readAll drains an instruction stream, failing the test on decode errors.
func readAll(t *testing.T, body []byte, features wasm.Features) []wasm.Instruction {
	t.Helper()
	sink := &wasm.ErrorList{}
	ir := NewInstructionReader(NewReader(body), features, sink)
	var out []wasm.Instruction
	for {
		instr, ok := ir.Next()
		if !ok {
			break
		}
		out = append(out, instr)
	}
	require.NoError(t, sink.Err())
	require.True(t, ir.Done())
	return out
}

func TestInstructionReader_Arithmetic(t *testing.T) {
	// i32.const 1, i32.const 2, i32.add, end
	instrs := readAll(t, []byte{0x41, 0x01, 0x41, 0x02, 0x6a, 0x0b}, wasm.FeaturesV1)
	require.Len(t, instrs, 4)
	require.Equal(t, wasm.OpcodeI32Const, instrs[0].Opcode)
	require.Equal(t, wasm.I32Imm{Value: 1}, instrs[0].Imm)
	require.Equal(t, wasm.OpcodeI32Add, instrs[2].Opcode)
	require.Equal(t, wasm.NoImm{}, instrs[2].Imm)
	require.Equal(t, wasm.OpcodeEnd, instrs[3].Opcode)

	// Locations are byte-exact.
	require.Equal(t, wasm.Location{Offset: 0, Length: 2}, instrs[0].Loc)
	require.Equal(t, wasm.Location{Offset: 4, Length: 1}, instrs[2].Loc)
}

func TestInstructionReader_NestedBlocks(t *testing.T) {
	// block (result i32) loop i32.const 0 br 1 end i32.const 3 end end
	body := []byte{
		0x02, 0x7f, // block (result i32)
		0x03, 0x40, // loop
		0x41, 0x00, // i32.const 0
		0x0c, 0x01, // br 1
		0x0b,       // end (loop)
		0x41, 0x03, // i32.const 3
		0x0b, // end (block)
		0x0b, // end (function)
	}
	instrs := readAll(t, body, wasm.FeaturesV1)
	require.Len(t, instrs, 8)
	require.Equal(t, wasm.BlockTypeImm{Kind: wasm.BlockTypeValue, ValueType: wasm.ValueTypeI32}, instrs[0].Imm)
	require.Equal(t, wasm.BlockTypeImm{Kind: wasm.BlockTypeEmpty}, instrs[1].Imm)
	require.Equal(t, wasm.OpcodeEnd, instrs[7].Opcode)
}

func TestInstructionReader_StopsAfterFinalEnd(t *testing.T) {
	sink := &wasm.ErrorList{}
	r := NewReader([]byte{0x01, 0x0b, 0x41, 0x00})
	ir := NewInstructionReader(r, wasm.FeaturesV1, sink)

	var n int
	for {
		_, ok := ir.Next()
		if !ok {
			break
		}
		n++
	}
	require.Equal(t, 2, n) // nop, end; the trailing bytes are not consumed
	require.True(t, ir.Done())
	require.Equal(t, uint32(2), r.Pos())
}

func TestInstructionReader_Immediates(t *testing.T) {
	tests := []struct {
		name     string
		body     []byte
		features wasm.Features
		expected wasm.Instruction
	}{
		{
			name: "br_table",
			body: []byte{0x0e, 0x02, 0x00, 0x01, 0x02},
			expected: wasm.Instruction{
				Opcode: wasm.OpcodeBrTable,
				Imm:    wasm.BrTableImm{Targets: []wasm.Index{0, 1}, Default: 2},
			},
		},
		{
			name: "call_indirect",
			body: []byte{0x11, 0x05, 0x00},
			expected: wasm.Instruction{
				Opcode: wasm.OpcodeCallIndirect,
				Imm:    wasm.CallIndirectImm{TypeIndex: 5, TableIndex: 0},
			},
		},
		{
			name: "i64.load memarg",
			body: []byte{0x29, 0x03, 0x80, 0x01},
			expected: wasm.Instruction{
				Opcode: wasm.OpcodeI64Load,
				Imm:    wasm.MemArg{AlignLog2: 3, Offset: 128},
			},
		},
		{
			name: "memory.size reserved byte",
			body: []byte{0x3f, 0x00},
			expected: wasm.Instruction{
				Opcode: wasm.OpcodeMemorySize,
				Imm:    wasm.U8Imm{},
			},
		},
		{
			name: "f32.const",
			body: []byte{0x43, 0x00, 0x00, 0x80, 0x3f},
			expected: wasm.Instruction{
				Opcode: wasm.OpcodeF32Const,
				Imm:    wasm.F32Imm{Bits: 0x3f800000},
			},
		},
		{
			name:     "memory.copy",
			body:     []byte{0xfc, 0x0a, 0x00, 0x00},
			features: wasm.FeatureBulkMemory,
			expected: wasm.Instruction{
				Opcode: wasm.OpcodeMemoryCopy,
				Imm:    wasm.CopyImm{},
			},
		},
		{
			name:     "memory.init",
			body:     []byte{0xfc, 0x08, 0x02, 0x00},
			features: wasm.FeatureBulkMemory,
			expected: wasm.Instruction{
				Opcode: wasm.OpcodeMemoryInit,
				Imm:    wasm.SegmentImm{Segment: 2, Dst: 0},
			},
		},
		{
			name:     "typed select",
			body:     []byte{0x1c, 0x01, 0x6f},
			features: wasm.FeatureReferenceTypes,
			expected: wasm.Instruction{
				Opcode: wasm.OpcodeTypedSelect,
				Imm:    wasm.ValueTypesImm{Types: []wasm.ValueType{wasm.ValueTypeExternref}},
			},
		},
		{
			name:     "ref.null",
			body:     []byte{0xd0, 0x70},
			features: wasm.FeatureReferenceTypes,
			expected: wasm.Instruction{
				Opcode: wasm.OpcodeRefNull,
				Imm:    wasm.RefTypeImm{Type: wasm.ValueTypeFuncref},
			},
		},
		{
			name: "v128.const",
			body: append([]byte{0xfd, 0x0c},
				1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16),
			features: wasm.FeatureSIMD,
			expected: wasm.Instruction{
				Opcode: wasm.OpcodeV128Const,
				Imm:    wasm.V128Imm{Bytes: [16]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}},
			},
		},
		{
			name: "i8x16.shuffle",
			body: append([]byte{0xfd, 0x0d},
				0, 1, 2, 3, 4, 5, 6, 7, 16, 17, 18, 19, 20, 21, 22, 23),
			features: wasm.FeatureSIMD,
			expected: wasm.Instruction{
				Opcode: wasm.OpcodeI8x16Shuffle,
				Imm:    wasm.ShuffleImm{Lanes: [16]byte{0, 1, 2, 3, 4, 5, 6, 7, 16, 17, 18, 19, 20, 21, 22, 23}},
			},
		},
		{
			name:     "v128.load8_lane",
			body:     []byte{0xfd, 0x54, 0x00, 0x10, 0x07},
			features: wasm.FeatureSIMD,
			expected: wasm.Instruction{
				Opcode: wasm.OpcodeV128Load8Lane,
				Imm:    wasm.MemArgLaneImm{MemArg: wasm.MemArg{AlignLog2: 0, Offset: 16}, Lane: 7},
			},
		},
		{
			name:     "i32.atomic.rmw.cmpxchg",
			body:     []byte{0xfe, 0x48, 0x02, 0x00},
			features: wasm.FeatureThreads,
			expected: wasm.Instruction{
				Opcode: wasm.OpcodeI32AtomicRmwCmpxchg,
				Imm:    wasm.MemArg{AlignLog2: 2, Offset: 0},
			},
		},
		{
			name:     "br_on_exn",
			body:     []byte{0x0a, 0x01, 0x00},
			features: wasm.FeatureExceptions,
			expected: wasm.Instruction{
				Opcode: wasm.OpcodeBrOnExn,
				Imm:    wasm.BrOnExnImm{Label: 1, Event: 0},
			},
		},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			body := append(append([]byte(nil), tc.body...), 0x0b) // end
			instrs := readAll(t, body, wasm.FeaturesV1|tc.features)
			require.Len(t, instrs, 2)
			require.True(t, tc.expected.Equal(instrs[0]),
				"expected %v, got %v", tc.expected, instrs[0])

			// Re-encoding an instruction reproduces its bytes.
			require.Equal(t, tc.body, EncodeInstruction(&instrs[0]))
		})
	}
}

func TestInstructionReader_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     []byte
		features wasm.Features
		expected string
	}{
		{
			name:     "unknown opcode",
			body:     []byte{0x27, 0x0b},
			expected: "unknown opcode 0x27",
		},
		{
			name:     "unknown subopcode",
			body:     []byte{0xfc, 0x7f, 0x0b},
			expected: "unknown opcode 0x7f behind prefix 0xfc",
		},
		{
			name:     "feature disabled",
			body:     []byte{0xc0, 0x0b}, // i32.extend8_s
			expected: `i32.extend8_s invalid as feature "sign-extension-ops" is disabled`,
		},
		{
			name:     "truncated immediate",
			body:     []byte{0x41},
			expected: "read i32 immediate",
		},
		{
			name:     "nonzero reserved byte",
			body:     []byte{0x3f, 0x01, 0x0b},
			expected: "reserved byte must be zero",
		},
		{
			name:     "shuffle lane out of range",
			body:     append([]byte{0xfd, 0x0d}, 32, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0),
			features: wasm.FeatureSIMD,
			expected: "shuffle lane 0 selects 32",
		},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			sink := &wasm.ErrorList{}
			ir := NewInstructionReader(NewReader(tc.body), wasm.FeaturesV1|tc.features, sink)
			for {
				if _, ok := ir.Next(); !ok {
					break
				}
			}
			require.True(t, ir.Failed())
			require.Error(t, sink.Err())
			require.Contains(t, sink.Err().Error(), tc.expected)
		})
	}
}

func TestDecodeConstantExpression(t *testing.T) {
	sink := &wasm.ErrorList{}
	e, err := decodeConstantExpression(NewReader([]byte{0x41, 0x2a, 0x0b}), wasm.FeaturesV1, sink)
	require.NoError(t, err)
	require.Equal(t, wasm.OpcodeI32Const, e.Instr.Opcode)
	require.Equal(t, wasm.I32Imm{Value: 42}, e.Instr.Imm)

	// Two producing instructions are not a constant expression.
	sink = &wasm.ErrorList{}
	_, err = decodeConstantExpression(NewReader([]byte{0x41, 0x01, 0x41, 0x02, 0x0b}), wasm.FeaturesV1, sink)
	require.Error(t, err)
}
