package binary

import (
	"fmt"

	"github.com/wasmkit/wasmkit/wasm"
)

// Element segment flag bits.
//
// See https://www.w3.org/TR/2022/WD-wasm-core-2-20220419/binary/modules.html#element-section
const (
	elemFlagPassiveOrDeclarative = 0x01
	elemFlagExplicitIndex        = 0x02
	elemFlagExpressions          = 0x04
)

func decodeElementSegment(r *Reader, features wasm.Features, sink wasm.ErrorSink) (wasm.ElementSegment, error) {
	start := r.Pos()

	flags, err := r.ReadU32()
	if err != nil {
		return wasm.ElementSegment{}, fmt.Errorf("read element flags: %w", err)
	}
	if flags > 7 {
		return wasm.ElementSegment{}, fmt.Errorf("invalid element flags: 0x%x", flags)
	}
	if flags != 0 {
		if err := features.RequireEnabled(wasm.FeatureBulkMemory); err != nil {
			return wasm.ElementSegment{}, fmt.Errorf("element segment flags 0x%x invalid as %v", flags, err)
		}
	}

	ret := wasm.ElementSegment{Type: wasm.ValueTypeFuncref}

	switch {
	case flags&elemFlagPassiveOrDeclarative == 0:
		ret.Mode = wasm.ElementModeActive
	case flags&elemFlagExplicitIndex == 0:
		ret.Mode = wasm.ElementModePassive
	default:
		ret.Mode = wasm.ElementModeDeclarative
	}

	if ret.Mode == wasm.ElementModeActive {
		if flags&elemFlagExplicitIndex != 0 {
			if ret.TableIndex, err = r.ReadU32(); err != nil {
				return wasm.ElementSegment{}, fmt.Errorf("read element table index: %w", err)
			}
			if ret.TableIndex != 0 {
				if err := features.RequireEnabled(wasm.FeatureReferenceTypes); err != nil {
					return wasm.ElementSegment{}, fmt.Errorf("table index must be zero but was %d: %v", ret.TableIndex, err)
				}
			}
		}
		if ret.Offset, err = decodeConstantExpression(r, features, sink); err != nil {
			return wasm.ElementSegment{}, fmt.Errorf("read element offset: %w", err)
		}
	}

	// The flavors with an explicit index or a non-active mode carry an
	// element kind byte (index flavor) or a reference type (expression
	// flavor); the short flavors 0 and 4 imply funcref.
	useExprs := flags&elemFlagExpressions != 0
	if flags&(elemFlagPassiveOrDeclarative|elemFlagExplicitIndex) != 0 {
		if useExprs {
			if ret.Type, err = decodeRefType(r, features); err != nil {
				return wasm.ElementSegment{}, fmt.Errorf("read element type: %w", err)
			}
		} else {
			kind, err := r.ReadByte()
			if err != nil {
				return wasm.ElementSegment{}, fmt.Errorf("read element kind: %w", err)
			}
			if kind != 0 {
				return wasm.ElementSegment{}, fmt.Errorf("invalid element kind: 0x%x", kind)
			}
		}
	}

	n, err := r.ReadCount()
	if err != nil {
		return wasm.ElementSegment{}, fmt.Errorf("read element initializer count: %w", err)
	}
	if useExprs {
		ret.Exprs = make([]wasm.ConstantExpression, n)
		for i := uint32(0); i < n; i++ {
			if ret.Exprs[i], err = decodeConstantExpression(r, features, sink); err != nil {
				return wasm.ElementSegment{}, fmt.Errorf("read %d-th element initializer: %w", i, err)
			}
		}
	} else {
		ret.Indexes = make([]wasm.Index, n)
		for i := uint32(0); i < n; i++ {
			if ret.Indexes[i], err = r.ReadU32(); err != nil {
				return wasm.ElementSegment{}, fmt.Errorf("read %d-th element function index: %w", i, err)
			}
		}
	}

	ret.Loc = r.From(start)
	return ret, nil
}

// Data segment flag values.
const (
	dataFlagActive          = 0x00
	dataFlagPassive         = 0x01
	dataFlagActiveWithIndex = 0x02
)

func decodeDataSegment(r *Reader, features wasm.Features, sink wasm.ErrorSink, copyBytes bool) (wasm.DataSegment, error) {
	start := r.Pos()

	flags, err := r.ReadU32()
	if err != nil {
		return wasm.DataSegment{}, fmt.Errorf("read data flags: %w", err)
	}

	ret := wasm.DataSegment{}
	switch flags {
	case dataFlagActive:
	case dataFlagPassive:
		if err := features.RequireEnabled(wasm.FeatureBulkMemory); err != nil {
			return wasm.DataSegment{}, fmt.Errorf("passive data segment invalid as %v", err)
		}
		ret.Mode = wasm.DataModePassive
	case dataFlagActiveWithIndex:
		if ret.MemoryIndex, err = r.ReadU32(); err != nil {
			return wasm.DataSegment{}, fmt.Errorf("read data memory index: %w", err)
		}
		if ret.MemoryIndex != 0 {
			return wasm.DataSegment{}, fmt.Errorf("memory index must be zero but was %d", ret.MemoryIndex)
		}
	default:
		return wasm.DataSegment{}, fmt.Errorf("invalid data flags: 0x%x", flags)
	}

	if ret.Mode == wasm.DataModeActive {
		if ret.Offset, err = decodeConstantExpression(r, features, sink); err != nil {
			return wasm.DataSegment{}, fmt.Errorf("read data offset: %w", err)
		}
	}

	n, err := r.ReadCount()
	if err != nil {
		return wasm.DataSegment{}, fmt.Errorf("read data size: %w", err)
	}
	b, err := r.ReadBytes(n)
	if err != nil {
		return wasm.DataSegment{}, fmt.Errorf("read data bytes: %w", err)
	}
	if copyBytes {
		ret.Init = append([]byte(nil), b...)
	} else {
		ret.Init = b
	}

	ret.Loc = r.From(start)
	return ret, nil
}
