package binary

import (
	"fmt"

	"github.com/wasmkit/wasmkit/wasm"
	"github.com/wasmkit/wasmkit/wasm/leb128"
)

func appendCount(b []byte, v uint32) []byte {
	return append(b, leb128.EncodeUint32(v)...)
}

// Subsection IDs of the "name" custom section.
//
// See https://www.w3.org/TR/2019/REC-wasm-core-1-20191205/#binary-namesec
const (
	subsectionIDModuleName = 0
	subsectionIDFunctionNames = 1
	subsectionIDLocalNames = 2
)

// decodeNameSection decodes the known subsections of the "name" custom
// section and skips unrecognized ones: custom section contents can never
// invalidate a module.
func decodeNameSection(r *Reader) (*wasm.NameSection, error) {
	ret := &wasm.NameSection{}

	for r.Len() > 0 {
		id, err := r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("read name subsection id: %w", err)
		}
		size, err := r.ReadU32()
		if err != nil {
			return nil, fmt.Errorf("read size of name subsection %d: %w", id, err)
		}
		sub, err := r.Sub(size)
		if err != nil {
			return nil, fmt.Errorf("name subsection %d: %w", id, err)
		}

		switch id {
		case subsectionIDModuleName:
			if ret.ModuleName, err = sub.ReadName(); err != nil {
				return nil, fmt.Errorf("read module name: %w", err)
			}
		case subsectionIDFunctionNames:
			if ret.FunctionNames, err = decodeNameMap(sub); err != nil {
				return nil, fmt.Errorf("read function names: %w", err)
			}
		case subsectionIDLocalNames:
			if ret.LocalNames, err = decodeIndirectNameMap(sub); err != nil {
				return nil, fmt.Errorf("read local names: %w", err)
			}
		}
	}
	return ret, nil
}

func decodeNameMap(r *Reader) (wasm.NameMap, error) {
	n, err := r.ReadCount()
	if err != nil {
		return nil, err
	}
	ret := make(wasm.NameMap, 0, n)
	for i := uint32(0); i < n; i++ {
		idx, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		name, err := r.ReadName()
		if err != nil {
			return nil, err
		}
		ret = append(ret, wasm.NameAssoc{Index: idx, Name: name})
	}
	return ret, nil
}

// encodeNameSectionData encodes the subsections present in n, without the
// enclosing custom section framing.
func encodeNameSectionData(n *wasm.NameSection) (ret []byte) {
	if n.ModuleName != "" {
		ret = append(ret, encodeNameSubsection(subsectionIDModuleName, encodeName(n.ModuleName))...)
	}
	if len(n.FunctionNames) > 0 {
		ret = append(ret, encodeNameSubsection(subsectionIDFunctionNames, encodeNameMap(n.FunctionNames))...)
	}
	if len(n.LocalNames) > 0 {
		var contents []byte
		contents = appendCount(contents, uint32(len(n.LocalNames)))
		for _, a := range n.LocalNames {
			contents = appendCount(contents, a.Index)
			contents = append(contents, encodeNameMap(a.NameMap)...)
		}
		ret = append(ret, encodeNameSubsection(subsectionIDLocalNames, contents)...)
	}
	return
}

func encodeNameSubsection(id byte, contents []byte) []byte {
	ret := append([]byte{id}, appendCount(nil, uint32(len(contents)))...)
	return append(ret, contents...)
}

func encodeNameMap(m wasm.NameMap) (ret []byte) {
	ret = appendCount(ret, uint32(len(m)))
	for _, a := range m {
		ret = appendCount(ret, a.Index)
		ret = append(ret, encodeName(a.Name)...)
	}
	return
}

func decodeIndirectNameMap(r *Reader) (wasm.IndirectNameMap, error) {
	n, err := r.ReadCount()
	if err != nil {
		return nil, err
	}
	ret := make(wasm.IndirectNameMap, 0, n)
	for i := uint32(0); i < n; i++ {
		idx, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		nm, err := decodeNameMap(r)
		if err != nil {
			return nil, err
		}
		ret = append(ret, wasm.NameMapAssoc{Index: idx, NameMap: nm})
	}
	return ret, nil
}
