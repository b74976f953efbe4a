package wasm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInstruction_Equal(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Instruction
		expected bool
	}{
		{
			name:     "same opcode no imm",
			a:        Instruction{Opcode: OpcodeI32Add, Imm: NoImm{}},
			b:        Instruction{Opcode: OpcodeI32Add, Imm: NoImm{}, Loc: Location{Offset: 9}},
			expected: true, // locations are ignored
		},
		{
			name:     "different opcode",
			a:        Instruction{Opcode: OpcodeI32Add, Imm: NoImm{}},
			b:        Instruction{Opcode: OpcodeI32Sub, Imm: NoImm{}},
			expected: false,
		},
		{
			name:     "same index imm",
			a:        Instruction{Opcode: OpcodeCall, Imm: IndexImm{Index: 3}},
			b:        Instruction{Opcode: OpcodeCall, Imm: IndexImm{Index: 3}},
			expected: true,
		},
		{
			name:     "different memarg",
			a:        Instruction{Opcode: OpcodeI32Load, Imm: MemArg{AlignLog2: 2}},
			b:        Instruction{Opcode: OpcodeI32Load, Imm: MemArg{AlignLog2: 1}},
			expected: false,
		},
		{
			name:     "same br_table",
			a:        Instruction{Opcode: OpcodeBrTable, Imm: BrTableImm{Targets: []Index{0, 1}, Default: 2}},
			b:        Instruction{Opcode: OpcodeBrTable, Imm: BrTableImm{Targets: []Index{0, 1}, Default: 2}},
			expected: true,
		},
		{
			name:     "different br_table targets",
			a:        Instruction{Opcode: OpcodeBrTable, Imm: BrTableImm{Targets: []Index{0, 1}, Default: 2}},
			b:        Instruction{Opcode: OpcodeBrTable, Imm: BrTableImm{Targets: []Index{0, 2}, Default: 2}},
			expected: false,
		},
		{
			name:     "same typed select",
			a:        Instruction{Opcode: OpcodeTypedSelect, Imm: ValueTypesImm{Types: []ValueType{ValueTypeExternref}}},
			b:        Instruction{Opcode: OpcodeTypedSelect, Imm: ValueTypesImm{Types: []ValueType{ValueTypeExternref}}},
			expected: true,
		},
		{
			name:     "different imm shapes",
			a:        Instruction{Opcode: OpcodeI32Const, Imm: I32Imm{Value: 1}},
			b:        Instruction{Opcode: OpcodeI32Const, Imm: I64Imm{Value: 1}},
			expected: false,
		},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.a.Equal(tc.b))
			require.Equal(t, tc.expected, tc.b.Equal(tc.a))
		})
	}
}

func TestFunctionType_String(t *testing.T) {
	ft := &FunctionType{Params: []ValueType{ValueTypeI32, ValueTypeF64}, Results: []ValueType{ValueTypeI64}}
	require.Equal(t, "(i32, f64) -> (i64)", ft.String())
	require.True(t, ft.EqualsSignature([]ValueType{ValueTypeI32, ValueTypeF64}, []ValueType{ValueTypeI64}))
	require.False(t, ft.EqualsSignature(nil, nil))
}

func TestLocation(t *testing.T) {
	l := Location{Offset: 8, Length: 4}
	require.Equal(t, uint32(12), l.End())
	require.Equal(t, "0x8..0xc", l.String())
}
