package wasmkit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmkit/wasmkit/wasm"
)

// A module exporting one function returning 42.
var answerModule = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00, // header
	0x01, 0x05, 0x01, 0x60, 0x00, 0x01, 0x7f, // type () -> (i32)
	0x03, 0x02, 0x01, 0x00, // function 0 uses type 0
	0x07, 0x0a, 0x01, 0x06, 'a', 'n', 's', 'w', 'e', 'r', 0x00, 0x00, // export
	0x0a, 0x06, 0x01, 0x04, 0x00, 0x41, 0x2a, 0x0b, // body: i32.const 42, end
}

func TestDecodeAndValidate(t *testing.T) {
	m, err := DecodeAndValidate(answerModule, Config{})
	require.NoError(t, err)
	require.Len(t, m.ExportSection, 1)
	require.Equal(t, "answer", m.ExportSection[0].Name)
}

func TestDecodeAndValidate_TypeError(t *testing.T) {
	// Same module, but the body returns an i64.
	bad := append([]byte(nil), answerModule...)
	bad[len(bad)-3] = 0x42 // i64.const

	m, err := DecodeAndValidate(bad, Config{})
	require.NotNil(t, m)
	require.Error(t, err)
	require.Contains(t, err.Error(), "expected i32 but found i64")
}

func TestDecodeModule_ReportsDecodeErrors(t *testing.T) {
	_, err := DecodeModule([]byte{0xba, 0xad}, Config{})
	require.Error(t, err)
}

func TestValidateModule(t *testing.T) {
	m, err := DecodeModule(answerModule, Config{})
	require.NoError(t, err)
	require.NoError(t, ValidateModule(m, Config{}))

	// The validator sees the decoded AST, so a rewrite that breaks typing is
	// caught without re-decoding.
	m.TypeSection[0].Results = []wasm.ValueType{wasm.ValueTypeF64}
	require.Error(t, ValidateModule(m, Config{}))
}
