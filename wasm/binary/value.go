package binary

import (
	"fmt"

	"github.com/wasmkit/wasmkit/wasm"
)

func decodeValueType(r *Reader, features wasm.Features) (wasm.ValueType, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	switch b {
	case wasm.ValueTypeI32, wasm.ValueTypeI64, wasm.ValueTypeF32, wasm.ValueTypeF64:
		return b, nil
	case wasm.ValueTypeV128:
		if err := features.RequireEnabled(wasm.FeatureSIMD); err != nil {
			return 0, fmt.Errorf("%s type invalid as %v", wasm.ValueTypeName(b), err)
		}
		return b, nil
	case wasm.ValueTypeFuncref, wasm.ValueTypeExternref:
		if err := features.RequireEnabled(wasm.FeatureReferenceTypes); err != nil {
			return 0, fmt.Errorf("%s type invalid as %v", wasm.ValueTypeName(b), err)
		}
		return b, nil
	case wasm.ValueTypeExnref:
		if err := features.RequireEnabled(wasm.FeatureExceptions); err != nil {
			return 0, fmt.Errorf("%s type invalid as %v", wasm.ValueTypeName(b), err)
		}
		return b, nil
	}
	return 0, fmt.Errorf("invalid value type: 0x%x", b)
}

func decodeValueTypes(r *Reader, features wasm.Features) ([]wasm.ValueType, error) {
	n, err := r.ReadCount()
	if err != nil {
		return nil, err
	}
	ret := make([]wasm.ValueType, n)
	for i := uint32(0); i < n; i++ {
		if ret[i], err = decodeValueType(r, features); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

func decodeRefType(r *Reader, features wasm.Features) (wasm.RefType, error) {
	t, err := decodeValueType(r, features)
	if err != nil {
		return 0, err
	}
	if !wasm.IsRefType(t) {
		return 0, fmt.Errorf("expected reference type but got %s", wasm.ValueTypeName(t))
	}
	return t, nil
}

func decodeFunctionType(r *Reader, features wasm.Features) (wasm.FunctionType, error) {
	start := r.Pos()

	b, err := r.ReadByte()
	if err != nil {
		return wasm.FunctionType{}, fmt.Errorf("read leading byte: %w", err)
	}
	if b != 0x60 {
		return wasm.FunctionType{}, fmt.Errorf("invalid leading byte of function type: %#x != 0x60", b)
	}

	params, err := decodeValueTypes(r, features)
	if err != nil {
		return wasm.FunctionType{}, fmt.Errorf("could not read parameter types: %w", err)
	}

	results, err := decodeValueTypes(r, features)
	if err != nil {
		return wasm.FunctionType{}, fmt.Errorf("could not read result types: %w", err)
	}
	if len(results) > 1 {
		if err := features.RequireEnabled(wasm.FeatureMultiValue); err != nil {
			return wasm.FunctionType{}, fmt.Errorf("multiple result types invalid as %v", err)
		}
	}

	return wasm.FunctionType{Params: params, Results: results, Loc: r.From(start)}, nil
}
