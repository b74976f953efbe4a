package binary

import "github.com/wasmkit/wasmkit/wasm"

// Magic is the 4 byte preamble of every binary module: a NUL then "asm".
var Magic = []byte{0x00, 0x61, 0x73, 0x6d}

// Version is 1.0 in little-endian order. The version is not expected to
// change unless the format becomes incompatible, which proposals so far have
// avoided.
var Version = []byte{0x01, 0x00, 0x00, 0x00}

const headerSize = 8

// sectionOrder returns the rank of a known section ID in the canonical
// ordering, where the data count section sits between element and code.
// Custom sections have no rank and may appear anywhere.
func sectionOrder(id wasm.SectionID) int {
	switch id {
	case wasm.SectionIDType:
		return 1
	case wasm.SectionIDImport:
		return 2
	case wasm.SectionIDFunction:
		return 3
	case wasm.SectionIDTable:
		return 4
	case wasm.SectionIDMemory:
		return 5
	case wasm.SectionIDEvent:
		return 6
	case wasm.SectionIDGlobal:
		return 7
	case wasm.SectionIDExport:
		return 8
	case wasm.SectionIDStart:
		return 9
	case wasm.SectionIDElement:
		return 10
	case wasm.SectionIDDataCount:
		return 11
	case wasm.SectionIDCode:
		return 12
	case wasm.SectionIDData:
		return 13
	}
	return 0
}
