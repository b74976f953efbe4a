package leb128

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadUint32(t *testing.T) {
	for _, c := range []struct {
		bytes []byte
		exp   uint32
	}{
		{bytes: []byte{0x00}, exp: 0},
		{bytes: []byte{0x04}, exp: 4},
		{bytes: []byte{0x80, 0x7f}, exp: 16256},
		{bytes: []byte{0xe5, 0x8e, 0x26}, exp: 624485},
		{bytes: []byte{0x80, 0x80, 0x80, 0x4f}, exp: 165675008},
		{bytes: []byte{0xff, 0xff, 0xff, 0xff, 0x0f}, exp: 0xffffffff},
	} {
		actual, num, err := LoadUint32(c.bytes)
		require.NoError(t, err)
		assert.Equal(t, c.exp, actual)
		assert.Equal(t, uint64(len(c.bytes)), num)
	}
}

func TestLoadUint32_Errors(t *testing.T) {
	tests := []struct {
		name     string
		bytes    []byte
		expected error
	}{
		{name: "empty", bytes: nil, expected: ErrTruncated},
		{name: "dangling continuation", bytes: []byte{0x80}, expected: ErrTruncated},
		{name: "continuation on 5th byte", bytes: []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x00}, expected: ErrTooLong},
		{name: "5 with bit 32 set", bytes: []byte{0x85, 0x80, 0x80, 0x80, 0x10}, expected: ErrTooLarge},
		{name: "bit 32 set", bytes: []byte{0xff, 0xff, 0xff, 0xff, 0x1f}, expected: ErrTooLarge},
		{name: "non-minimal 5 in 5 bytes", bytes: []byte{0x85, 0x80, 0x80, 0x80, 0x00}, expected: ErrTooLong},
		{name: "non-minimal zero", bytes: []byte{0x80, 0x00}, expected: ErrTooLong},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := LoadUint32(tc.bytes)
			require.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestLoadUint64(t *testing.T) {
	for _, c := range []struct {
		bytes []byte
		exp   uint64
	}{
		{bytes: []byte{0x04}, exp: 4},
		{bytes: []byte{0x80, 0x7f}, exp: 16256},
		{bytes: []byte{0xe5, 0x8e, 0x26}, exp: 624485},
		{bytes: []byte{0x89, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01}, exp: 9223372036854775817},
		{bytes: []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}, exp: 0xffffffffffffffff},
	} {
		actual, num, err := LoadUint64(c.bytes)
		require.NoError(t, err)
		assert.Equal(t, c.exp, actual)
		assert.Equal(t, uint64(len(c.bytes)), num)
	}

	_, _, err := LoadUint64([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x02})
	require.ErrorIs(t, err, ErrTooLarge)

	_, _, err = LoadUint64([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x00})
	require.ErrorIs(t, err, ErrTooLong)
}

func TestLoadInt32(t *testing.T) {
	for _, c := range []struct {
		bytes []byte
		exp   int32
	}{
		{bytes: []byte{0x00}, exp: 0},
		{bytes: []byte{0x04}, exp: 4},
		{bytes: []byte{0xff, 0x00}, exp: 127},
		{bytes: []byte{0x81, 0x01}, exp: 129},
		{bytes: []byte{0x7f}, exp: -1},
		{bytes: []byte{0x81, 0x7f}, exp: -127},
		{bytes: []byte{0xff, 0x7e}, exp: -129},
		{bytes: []byte{0xff, 0xff, 0xff, 0xff, 0x07}, exp: 2147483647},
		{bytes: []byte{0x80, 0x80, 0x80, 0x80, 0x78}, exp: -2147483648},
	} {
		actual, num, err := LoadInt32(c.bytes)
		require.NoError(t, err)
		assert.Equal(t, c.exp, actual)
		assert.Equal(t, uint64(len(c.bytes)), num)
	}
}

func TestLoadInt32_Errors(t *testing.T) {
	tests := []struct {
		name     string
		bytes    []byte
		expected error
	}{
		{name: "continuation on 5th byte", bytes: []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x00}, expected: ErrTooLong},
		{name: "sign bits inconsistent", bytes: []byte{0xff, 0xff, 0xff, 0xff, 0x4f}, expected: ErrTooLarge},
		{name: "positive overflow", bytes: []byte{0xff, 0xff, 0xff, 0xff, 0x0f}, expected: ErrTooLarge},
		{name: "redundant zero terminator", bytes: []byte{0xbf, 0x00}, expected: ErrTooLong},
		{name: "redundant sign terminator", bytes: []byte{0xc1, 0x7f}, expected: ErrTooLong},
	}
	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := LoadInt32(tc.bytes)
			require.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestLoadInt33(t *testing.T) {
	for _, c := range []struct {
		bytes []byte
		exp   int64
	}{
		{bytes: []byte{0x40}, exp: -64}, // the void block type
		{bytes: []byte{0x7f}, exp: -1},
		{bytes: []byte{0x00}, exp: 0},
		{bytes: []byte{0x05}, exp: 5},
		{bytes: []byte{0xff, 0xff, 0xff, 0xff, 0x0f}, exp: 4294967295},
		{bytes: []byte{0x80, 0x80, 0x80, 0x80, 0x70}, exp: -4294967296},
	} {
		actual, num, err := LoadInt33(c.bytes)
		require.NoError(t, err)
		assert.Equal(t, c.exp, actual)
		assert.Equal(t, uint64(len(c.bytes)), num)
	}
}

func TestLoadInt64(t *testing.T) {
	for _, c := range []struct {
		bytes []byte
		exp   int64
	}{
		{bytes: []byte{0x00}, exp: 0},
		{bytes: []byte{0x04}, exp: 4},
		{bytes: []byte{0x7f}, exp: -1},
		{bytes: []byte{0x80, 0x7f}, exp: -128},
		{bytes: []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x00}, exp: 9223372036854775807},
		{bytes: []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x7f}, exp: -9223372036854775808},
	} {
		actual, num, err := LoadInt64(c.bytes)
		require.NoError(t, err)
		assert.Equal(t, c.exp, actual)
		assert.Equal(t, uint64(len(c.bytes)), num)
	}

	_, _, err := LoadInt64([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01})
	require.ErrorIs(t, err, ErrTooLarge)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Run("uint32", func(t *testing.T) {
		for _, v := range []uint32{0, 1, 4, 16256, 624485, 165675008, 1<<31 - 1, 0xffffffff} {
			encoded := EncodeUint32(v)
			require.True(t, len(encoded) <= 5)
			decoded, num, err := LoadUint32(encoded)
			require.NoError(t, err)
			require.Equal(t, v, decoded)
			require.Equal(t, uint64(len(encoded)), num)
		}
	})
	t.Run("int32", func(t *testing.T) {
		for _, v := range []int32{0, 1, -1, 63, 64, -64, -65, 127, -127, 1<<31 - 1, -1 << 31} {
			encoded := EncodeInt32(v)
			require.True(t, len(encoded) <= 5)
			decoded, num, err := LoadInt32(encoded)
			require.NoError(t, err)
			require.Equal(t, v, decoded)
			require.Equal(t, uint64(len(encoded)), num)
		}
	})
	t.Run("int64", func(t *testing.T) {
		for _, v := range []int64{0, -1, 1, 1<<63 - 1, -1 << 63, 624485, -624485} {
			encoded := EncodeInt64(v)
			require.True(t, len(encoded) <= 10)
			decoded, num, err := LoadInt64(encoded)
			require.NoError(t, err)
			require.Equal(t, v, decoded)
			require.Equal(t, uint64(len(encoded)), num)
		}
	})
}
