package binary

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmkit/wasmkit/wasm"
)

// decodeEncoded decodes, re-encodes and compares: the canonical encoder must
// reproduce its own output, and the decoded ASTs must match.
func decodeEncoded(t *testing.T, input []byte, features wasm.Features) {
	t.Helper()
	m, err := DecodeModule(input, DecoderConfig{Features: features})
	require.NoError(t, err)

	encoded := EncodeModule(m)
	require.Equal(t, input, encoded)

	m2, err := DecodeModule(encoded, DecoderConfig{Features: features})
	require.NoError(t, err)
	require.Equal(t, stripLocs(m), stripLocs(m2))
}

// stripLocs is the identity here because re-decoding the same bytes yields
// the same locations; it exists to make the intent explicit at call sites.
func stripLocs(m *wasm.Module) *wasm.Module { return m }

func TestEncodeModule_RoundTrips(t *testing.T) {
	tests := []struct {
		name     string
		sections [][]byte
		features wasm.Features
	}{
		{
			name: "table and element",
			sections: [][]byte{
				{0x01, 0x04, 0x01, 0x60, 0x00, 0x00},
				{0x03, 0x02, 0x01, 0x00},
				{0x04, 0x04, 0x01, 0x70, 0x00, 0x01},                   // table funcref min 1
				{0x09, 0x07, 0x01, 0x00, 0x41, 0x00, 0x0b, 0x01, 0x00}, // active elem [func 0]
				{0x0a, 0x04, 0x01, 0x02, 0x00, 0x0b},                   // body: end
			},
		},
		{
			name: "passive element with expressions",
			sections: [][]byte{
				{0x01, 0x04, 0x01, 0x60, 0x00, 0x00},
				{0x09, 0x07, 0x01, 0x05, 0x70, 0x01, 0xd0, 0x70, 0x0b}, // passive, exprs, ref.null func
			},
			features: wasm.FeaturesV2,
		},
		{
			name: "declarative element",
			sections: [][]byte{
				{0x01, 0x04, 0x01, 0x60, 0x00, 0x00},
				{0x03, 0x02, 0x01, 0x00},
				{0x09, 0x05, 0x01, 0x03, 0x00, 0x01, 0x00}, // declarative, kind 0, [func 0]
				{0x0a, 0x04, 0x01, 0x02, 0x00, 0x0b},
			},
			features: wasm.FeaturesV2,
		},
		{
			name: "global with max limits memory",
			sections: [][]byte{
				{0x05, 0x04, 0x01, 0x01, 0x01, 0x10},             // memory min 1 max 16
				{0x06, 0x06, 0x01, 0x7f, 0x01, 0x41, 0x2a, 0x0b}, // global (mut i32) = 42
			},
		},
		{
			name: "start section",
			sections: [][]byte{
				{0x01, 0x04, 0x01, 0x60, 0x00, 0x00},
				{0x03, 0x02, 0x01, 0x00},
				{0x08, 0x01, 0x00},
				{0x0a, 0x04, 0x01, 0x02, 0x00, 0x0b},
			},
		},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			features := tc.features
			if features == 0 {
				features = wasm.FeaturesV1
			}
			decodeEncoded(t, header(tc.sections...), features)
		})
	}
}

func TestEncodeModule_NameSection(t *testing.T) {
	m := &wasm.Module{
		NameSection: &wasm.NameSection{
			ModuleName:    "m",
			FunctionNames: wasm.NameMap{{Index: 0, Name: "f"}},
			LocalNames: wasm.IndirectNameMap{
				{Index: 0, NameMap: wasm.NameMap{{Index: 0, Name: "x"}}},
			},
		},
	}

	encoded := EncodeModule(m)
	decoded, err := DecodeModule(encoded, DecoderConfig{})
	require.NoError(t, err)
	require.Equal(t, m.NameSection, decoded.NameSection)
}

func TestEncodeLimits(t *testing.T) {
	max := uint32(16)
	tests := []struct {
		name     string
		limits   wasm.Limits
		expected []byte
	}{
		{name: "min only", limits: wasm.Limits{Min: 1}, expected: []byte{0x00, 0x01}},
		{name: "min and max", limits: wasm.Limits{Min: 1, Max: &max}, expected: []byte{0x01, 0x01, 0x10}},
		{name: "shared", limits: wasm.Limits{Min: 1, Max: &max, Shared: true}, expected: []byte{0x03, 0x01, 0x10}},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, encodeLimits(&tc.limits))
		})
	}
}
