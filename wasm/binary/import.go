package binary

import (
	"fmt"

	"github.com/wasmkit/wasmkit/wasm"
)

func decodeImport(r *Reader, features wasm.Features, sink wasm.ErrorSink) (wasm.Import, error) {
	start := r.Pos()

	module, err := r.ReadName()
	if err != nil {
		return wasm.Import{}, fmt.Errorf("import module: %w", err)
	}
	name, err := r.ReadName()
	if err != nil {
		return wasm.Import{}, fmt.Errorf("import name: %w", err)
	}

	ret := wasm.Import{Module: module, Name: name}
	if ret.Type, err = r.ReadByte(); err != nil {
		return wasm.Import{}, fmt.Errorf("read import kind: %w", err)
	}

	switch ret.Type {
	case wasm.ExternTypeFunc:
		if ret.DescFunc, err = r.ReadU32(); err != nil {
			return wasm.Import{}, fmt.Errorf("read imported function type index: %w", err)
		}
	case wasm.ExternTypeTable:
		if ret.DescTable, err = decodeTable(r, features); err != nil {
			return wasm.Import{}, fmt.Errorf("read imported table: %w", err)
		}
	case wasm.ExternTypeMemory:
		if ret.DescMem, err = decodeMemory(r, features); err != nil {
			return wasm.Import{}, fmt.Errorf("read imported memory: %w", err)
		}
	case wasm.ExternTypeGlobal:
		if ret.DescGlobal, err = decodeGlobalType(r, features); err != nil {
			return wasm.Import{}, fmt.Errorf("read imported global: %w", err)
		}
	case wasm.ExternTypeEvent:
		if ret.DescEvent, err = decodeEventType(r, features); err != nil {
			return wasm.Import{}, fmt.Errorf("read imported event: %w", err)
		}
	default:
		return wasm.Import{}, fmt.Errorf("invalid import kind: 0x%x", ret.Type)
	}

	ret.Loc = r.From(start)
	return ret, nil
}

func decodeExport(r *Reader) (wasm.Export, error) {
	start := r.Pos()

	name, err := r.ReadName()
	if err != nil {
		return wasm.Export{}, fmt.Errorf("export name: %w", err)
	}

	ret := wasm.Export{Name: name}
	if ret.Type, err = r.ReadByte(); err != nil {
		return wasm.Export{}, fmt.Errorf("read export kind: %w", err)
	}
	switch ret.Type {
	case wasm.ExternTypeFunc, wasm.ExternTypeTable, wasm.ExternTypeMemory,
		wasm.ExternTypeGlobal, wasm.ExternTypeEvent:
	default:
		return wasm.Export{}, fmt.Errorf("invalid export kind: 0x%x", ret.Type)
	}

	if ret.Index, err = r.ReadU32(); err != nil {
		return wasm.Export{}, fmt.Errorf("read export index: %w", err)
	}

	ret.Loc = r.From(start)
	return ret, nil
}

func decodeGlobal(r *Reader, features wasm.Features, sink wasm.ErrorSink) (wasm.Global, error) {
	start := r.Pos()

	gt, err := decodeGlobalType(r, features)
	if err != nil {
		return wasm.Global{}, err
	}

	init, err := decodeConstantExpression(r, features, sink)
	if err != nil {
		return wasm.Global{}, fmt.Errorf("read global init: %w", err)
	}

	return wasm.Global{Type: gt, Init: init, Loc: r.From(start)}, nil
}
