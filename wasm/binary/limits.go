package binary

import (
	"fmt"

	"github.com/wasmkit/wasmkit/wasm"
)

// Flag bits of the limits encoding. The low bit signals a maximum, the second
// a shared memory (threads proposal).
const (
	limitsFlagHasMax = 0x01
	limitsFlagShared = 0x02
)

func decodeLimits(r *Reader, features wasm.Features) (wasm.Limits, error) {
	start := r.Pos()

	flags, err := r.ReadByte()
	if err != nil {
		return wasm.Limits{}, fmt.Errorf("read limits flags: %w", err)
	}
	if flags&^(limitsFlagHasMax|limitsFlagShared) != 0 {
		return wasm.Limits{}, fmt.Errorf("invalid limits flags: 0x%x", flags)
	}

	ret := wasm.Limits{Shared: flags&limitsFlagShared != 0}
	if ret.Shared {
		if err := features.RequireEnabled(wasm.FeatureThreads); err != nil {
			return wasm.Limits{}, fmt.Errorf("shared limits invalid as %v", err)
		}
	}

	if ret.Min, err = r.ReadU32(); err != nil {
		return wasm.Limits{}, fmt.Errorf("read limits min: %w", err)
	}

	if flags&limitsFlagHasMax != 0 {
		max, err := r.ReadU32()
		if err != nil {
			return wasm.Limits{}, fmt.Errorf("read limits max: %w", err)
		}
		if max < ret.Min {
			return wasm.Limits{}, fmt.Errorf("limits max %d < min %d", max, ret.Min)
		}
		ret.Max = &max
	} else if ret.Shared {
		return wasm.Limits{}, fmt.Errorf("shared limits must declare a max")
	}

	ret.Loc = r.From(start)
	return ret, nil
}

func decodeTable(r *Reader, features wasm.Features) (wasm.Table, error) {
	start := r.Pos()

	// funcref (0x70) predates reference-types, so it is not gated here.
	elemType, err := r.ReadByte()
	if err != nil {
		return wasm.Table{}, fmt.Errorf("read table element type: %w", err)
	}
	switch elemType {
	case wasm.ValueTypeFuncref:
	case wasm.ValueTypeExternref, wasm.ValueTypeExnref:
		if err := features.RequireEnabled(wasm.FeatureReferenceTypes); err != nil {
			return wasm.Table{}, fmt.Errorf("%s table invalid as %v", wasm.ValueTypeName(elemType), err)
		}
	default:
		return wasm.Table{}, fmt.Errorf("invalid table element type: 0x%x", elemType)
	}

	limits, err := decodeLimits(r, features)
	if err != nil {
		return wasm.Table{}, fmt.Errorf("read table limits: %w", err)
	}
	if limits.Shared {
		return wasm.Table{}, fmt.Errorf("tables cannot be shared")
	}

	return wasm.Table{Type: elemType, Limits: limits, Loc: r.From(start)}, nil
}

func decodeMemory(r *Reader, features wasm.Features) (wasm.Memory, error) {
	start := r.Pos()

	limits, err := decodeLimits(r, features)
	if err != nil {
		return wasm.Memory{}, fmt.Errorf("read memory limits: %w", err)
	}
	if limits.Min > wasm.MemoryLimitPages {
		return wasm.Memory{}, fmt.Errorf("memory min %d pages exceeds limit of %d", limits.Min, wasm.MemoryLimitPages)
	}
	if limits.Max != nil && *limits.Max > wasm.MemoryLimitPages {
		return wasm.Memory{}, fmt.Errorf("memory max %d pages exceeds limit of %d", *limits.Max, wasm.MemoryLimitPages)
	}

	return wasm.Memory{Limits: limits, Loc: r.From(start)}, nil
}

func decodeGlobalType(r *Reader, features wasm.Features) (wasm.GlobalType, error) {
	start := r.Pos()

	vt, err := decodeValueType(r, features)
	if err != nil {
		return wasm.GlobalType{}, fmt.Errorf("read global value type: %w", err)
	}

	mut, err := r.ReadByte()
	if err != nil {
		return wasm.GlobalType{}, fmt.Errorf("read global mutability: %w", err)
	}
	switch mut {
	case 0x00:
	case 0x01:
		if err := features.RequireEnabled(wasm.FeatureMutableGlobal); err != nil {
			return wasm.GlobalType{}, fmt.Errorf("mutable global invalid as %v", err)
		}
	default:
		return wasm.GlobalType{}, fmt.Errorf("invalid global mutability: 0x%x", mut)
	}

	return wasm.GlobalType{ValType: vt, Mutable: mut == 0x01, Loc: r.From(start)}, nil
}

func decodeEventType(r *Reader, features wasm.Features) (wasm.EventType, error) {
	start := r.Pos()

	if err := features.RequireEnabled(wasm.FeatureExceptions); err != nil {
		return wasm.EventType{}, fmt.Errorf("event invalid as %v", err)
	}

	attr, err := r.ReadByte()
	if err != nil {
		return wasm.EventType{}, fmt.Errorf("read event attribute: %w", err)
	}
	if attr != wasm.EventAttributeException {
		return wasm.EventType{}, fmt.Errorf("invalid event attribute: 0x%x", attr)
	}

	typeIndex, err := r.ReadU32()
	if err != nil {
		return wasm.EventType{}, fmt.Errorf("read event type index: %w", err)
	}

	return wasm.EventType{Attribute: attr, TypeIndex: typeIndex, Loc: r.From(start)}, nil
}
