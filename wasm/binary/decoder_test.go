package binary

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmkit/wasmkit/wasm"
)

func header(sections ...[]byte) []byte {
	buf := append([]byte(nil), Magic...)
	buf = append(buf, Version...)
	for _, s := range sections {
		buf = append(buf, s...)
	}
	return buf
}

func TestDecodeModule_Minimal(t *testing.T) {
	m, err := DecodeModule(header(), DecoderConfig{})
	require.NoError(t, err)
	require.Equal(t, &wasm.Module{}, m)
}

func TestDecodeModule_TypeSection(t *testing.T) {
	// One function type: () -> (i32)
	input := header([]byte{0x01, 0x05, 0x01, 0x60, 0x00, 0x01, 0x7f})

	m, err := DecodeModule(input, DecoderConfig{})
	require.NoError(t, err)
	require.Len(t, m.TypeSection, 1)
	require.Empty(t, m.TypeSection[0].Params)
	require.Equal(t, []wasm.ValueType{wasm.ValueTypeI32}, m.TypeSection[0].Results)

	// The type's location points at its bytes within the input.
	loc := m.TypeSection[0].Loc
	require.Equal(t, uint32(11), loc.Offset)
	require.Equal(t, uint32(4), loc.Length)

	// Round-tripping the AST reproduces the canonical input.
	require.Equal(t, input, EncodeModule(m))
}

func TestDecodeModule_InvalidMagic(t *testing.T) {
	_, err := DecodeModule([]byte{0x01, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}, DecoderConfig{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid magic number")
}

func TestDecodeModule_InvalidVersion(t *testing.T) {
	_, err := DecodeModule([]byte{0x00, 0x61, 0x73, 0x6d, 0x02, 0x00, 0x00, 0x00}, DecoderConfig{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid version header")
}

func TestDecodeModule_NonMinimalSectionLength(t *testing.T) {
	// Section length 5 encoded in five bytes instead of one.
	input := header([]byte{0x01, 0x85, 0x80, 0x80, 0x80, 0x00, 0x01, 0x60, 0x00, 0x00})

	_, err := DecodeModule(input, DecoderConfig{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "integer representation too long")
}

func TestDecodeModule_SectionOutOfOrder(t *testing.T) {
	input := header(
		[]byte{0x03, 0x02, 0x01, 0x00}, // function section first
		[]byte{0x01, 0x04, 0x01, 0x60, 0x00, 0x00}, // then type section
	)

	_, err := DecodeModule(input, DecoderConfig{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "section type out of order")
}

func TestDecodeModule_SectionSizeMismatch(t *testing.T) {
	// Type section claims 6 bytes but holds a 4-byte body plus junk.
	input := header([]byte{0x01, 0x06, 0x01, 0x60, 0x00, 0x00, 0xde, 0xad})

	_, err := DecodeModule(input, DecoderConfig{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "bytes remain undecoded")
}

func TestDecodeModule_FunctionCodeCountMismatch(t *testing.T) {
	input := header(
		[]byte{0x01, 0x04, 0x01, 0x60, 0x00, 0x00}, // one type
		[]byte{0x03, 0x02, 0x01, 0x00},             // one function
	)

	_, err := DecodeModule(input, DecoderConfig{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "function and code section have inconsistent lengths")
}

func TestDecodeModule_ImportsAndExports(t *testing.T) {
	input := header(
		[]byte{0x01, 0x04, 0x01, 0x60, 0x00, 0x00}, // type () -> ()
		// import "env"."f" (func 0), "env"."g" (global i32 const)
		[]byte{0x02, 0x12,
			0x02,
			0x03, 'e', 'n', 'v', 0x01, 'f', 0x00, 0x00,
			0x03, 'e', 'n', 'v', 0x01, 'g', 0x03, 0x7f, 0x00},
		[]byte{0x07, 0x05, 0x01, 0x01, 'h', 0x00, 0x00}, // export "h" (func 0)
	)

	m, err := DecodeModule(input, DecoderConfig{})
	require.NoError(t, err)
	require.Len(t, m.ImportSection, 2)
	require.Equal(t, "env", m.ImportSection[0].Module)
	require.Equal(t, "f", m.ImportSection[0].Name)
	require.Equal(t, wasm.ExternTypeFunc, m.ImportSection[0].Type)
	require.Equal(t, wasm.ExternTypeGlobal, m.ImportSection[1].Type)
	require.False(t, m.ImportSection[1].DescGlobal.Mutable)
	require.Equal(t, uint32(1), m.ImportFuncCount())

	require.Len(t, m.ExportSection, 1)
	require.Equal(t, "h", m.ExportSection[0].Name)

	require.Equal(t, input, EncodeModule(m))
}

func TestDecodeModule_CodeSection(t *testing.T) {
	input := header(
		[]byte{0x01, 0x05, 0x01, 0x60, 0x00, 0x01, 0x7f}, // () -> (i32)
		[]byte{0x03, 0x02, 0x01, 0x00},
		// one body: 1 local run (2 x i64), i32.const 8, end
		[]byte{0x0a, 0x08, 0x01, 0x06, 0x01, 0x02, 0x7e, 0x41, 0x08, 0x0b},
	)

	m, err := DecodeModule(input, DecoderConfig{})
	require.NoError(t, err)
	require.Len(t, m.CodeSection, 1)

	code := m.CodeSection[0]
	require.Equal(t, []wasm.ValueType{wasm.ValueTypeI64, wasm.ValueTypeI64}, code.LocalTypes)
	require.Len(t, code.Body, 2)
	require.Equal(t, wasm.OpcodeI32Const, code.Body[0].Opcode)
	require.Equal(t, wasm.I32Imm{Value: 8}, code.Body[0].Imm)
	require.Equal(t, wasm.OpcodeEnd, code.Body[1].Opcode)

	require.Equal(t, input, EncodeModule(m))
}

func TestDecodeModule_CustomAndNameSection(t *testing.T) {
	input := header(
		// custom section "hello" with payload de ad
		[]byte{0x00, 0x08, 0x05, 'h', 'e', 'l', 'l', 'o', 0xde, 0xad},
		// custom section "name": module name subsection, name "m"
		[]byte{0x00, 0x09, 0x04, 'n', 'a', 'm', 'e', 0x00, 0x02, 0x01, 'm'},
	)

	m, err := DecodeModule(input, DecoderConfig{})
	require.NoError(t, err)
	require.Len(t, m.CustomSections, 1)
	require.Equal(t, "hello", m.CustomSections[0].Name)
	require.Equal(t, []byte{0xde, 0xad}, m.CustomSections[0].Data)
	require.NotNil(t, m.NameSection)
	require.Equal(t, "m", m.NameSection.ModuleName)
}

func TestDecodeModule_DataAndDataCount(t *testing.T) {
	input := header(
		[]byte{0x05, 0x03, 0x01, 0x00, 0x01},             // memory 1 page
		[]byte{0x0c, 0x01, 0x01},                         // data count 1
		[]byte{0x0b, 0x07, 0x01, 0x00, 0x41, 0x00, 0x0b, 0x01, 0xff}, // active data [0xff] at 0
	)

	m, err := DecodeModule(input, DecoderConfig{Features: wasm.FeaturesV2})
	require.NoError(t, err)
	require.NotNil(t, m.DataCountSection)
	require.Equal(t, uint32(1), m.DataCountSection.Count)
	require.Len(t, m.DataSection, 1)
	require.Equal(t, wasm.DataModeActive, m.DataSection[0].Mode)
	require.Equal(t, []byte{0xff}, m.DataSection[0].Init)
	require.Equal(t, wasm.OpcodeI32Const, m.DataSection[0].Offset.Instr.Opcode)

	require.Equal(t, input, EncodeModule(m))
}

func TestDecodeModule_DataCountRequiresBulkMemory(t *testing.T) {
	input := header([]byte{0x0c, 0x01, 0x00})

	_, err := DecodeModule(input, DecoderConfig{})
	require.Error(t, err)
	require.Contains(t, err.Error(), `feature "bulk-memory-operations" is disabled`)
}

func TestDecodeModule_ZeroCopy(t *testing.T) {
	input := header([]byte{0x0b, 0x06, 0x01, 0x01, 0x03, 0xaa, 0xbb, 0xcc})

	m, err := DecodeModule(input, DecoderConfig{Features: wasm.FeaturesV2, ZeroCopy: true})
	require.NoError(t, err)
	require.Len(t, m.DataSection, 1)

	// The segment aliases the input buffer: mutating one shows in the other.
	input[len(input)-3] = 0x11
	require.Equal(t, []byte{0x11, 0xbb, 0xcc}, m.DataSection[0].Init)
}

func TestDecodeModule_EventSection(t *testing.T) {
	input := header(
		[]byte{0x01, 0x04, 0x01, 0x60, 0x00, 0x00},
		[]byte{0x0d, 0x03, 0x01, 0x00, 0x00}, // one event, attribute 0, type 0
	)

	m, err := DecodeModule(input, DecoderConfig{Features: wasm.FeaturesV1 | wasm.FeatureExceptions})
	require.NoError(t, err)
	require.Len(t, m.EventSection, 1)
	require.Equal(t, wasm.Index(0), m.EventSection[0].TypeIndex)

	_, err = DecodeModule(input, DecoderConfig{})
	require.Error(t, err)
	require.Contains(t, err.Error(), `feature "exception-handling" is disabled`)
}

func TestModuleReader_LazySections(t *testing.T) {
	input := header(
		[]byte{0x01, 0x04, 0x01, 0x60, 0x00, 0x00},
		[]byte{0x03, 0x02, 0x01, 0x00},
	)

	sink := &wasm.ErrorList{}
	mr := NewModuleReader(input, sink)

	s, ok := mr.Next()
	require.True(t, ok)
	require.Equal(t, wasm.SectionIDType, s.ID)

	tr, err := NewTypeSectionReader(s, wasm.FeaturesV1, sink)
	require.NoError(t, err)
	require.Equal(t, uint32(1), tr.Count())
	ft, ok := tr.Next()
	require.True(t, ok)
	require.Empty(t, ft.Params)
	_, ok = tr.Next()
	require.False(t, ok)

	s, ok = mr.Next()
	require.True(t, ok)
	require.Equal(t, wasm.SectionIDFunction, s.ID)

	_, ok = mr.Next()
	require.False(t, ok)
	require.True(t, sink.Empty())
}
