package wasm

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestErrorList_Empty(t *testing.T) {
	l := &ErrorList{}
	require.True(t, l.Empty())
	require.NoError(t, l.Err())
}

func TestErrorList_ContextChain(t *testing.T) {
	l := &ErrorList{}

	Context(l, Location{Offset: 0x10, Length: 4}, "memarg", func() {
		Context(l, Location{Offset: 0x11, Length: 2}, "align", func() {
			l.OnError(Location{Offset: 0x11, Length: 2}, "bad varint")
		})
	})
	l.OnError(Location{Offset: 0x20, Length: 1}, "stray byte")

	errs := l.Errors()
	require.Len(t, errs, 2)
	require.Equal(t, []string{"memarg", "align"}, errs[0].Context)
	require.Equal(t, "0x11..0x13: memarg > align: bad varint", errs[0].Error())
	require.Empty(t, errs[1].Context)
	require.Equal(t, "0x20..0x21: stray byte", errs[1].Error())
}

func TestErrorList_PopOnEveryPath(t *testing.T) {
	l := &ErrorList{}
	func() {
		defer func() { _ = recover() }()
		Context(l, Location{}, "outer", func() {
			panic("inner failure")
		})
	}()

	// The frame must not leak into later reports.
	l.OnError(Location{}, "later")
	require.Empty(t, l.Errors()[0].Context)
}

func TestErrorList_Err_CombinesAll(t *testing.T) {
	l := &ErrorList{}
	l.Errorf(Location{Offset: 1}, "first: %d", 1)
	l.OnError(Location{Offset: 2}, "second")

	err := l.Err()
	require.Error(t, err)
	require.Len(t, multierr.Errors(err), 2)
	require.Contains(t, err.Error(), "first: 1")
	require.Contains(t, err.Error(), "second")
}
