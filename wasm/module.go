package wasm

import "fmt"

// SectionID identifies a section in the binary format. Sections with known
// IDs must appear at most once and in ascending ID order, except that event
// (13) comes between memory and global and data count (12) between element
// and code; custom sections (ID zero) may appear anywhere.
//
// See https://www.w3.org/TR/2019/REC-wasm-core-1-20191205/#sections%E2%91%A0
type SectionID = byte

const (
	SectionIDCustom   SectionID = 0
	SectionIDType     SectionID = 1
	SectionIDImport   SectionID = 2
	SectionIDFunction SectionID = 3
	SectionIDTable    SectionID = 4
	SectionIDMemory   SectionID = 5
	SectionIDGlobal   SectionID = 6
	SectionIDExport   SectionID = 7
	SectionIDStart    SectionID = 8
	SectionIDElement  SectionID = 9
	SectionIDCode     SectionID = 10
	SectionIDData     SectionID = 11
	// SectionIDDataCount is from the bulk-memory-operations proposal. It
	// precedes the code section and duplicates the data segment count so the
	// code section can be validated in one pass.
	SectionIDDataCount SectionID = 12
	// SectionIDEvent is from the exception-handling proposal.
	SectionIDEvent SectionID = 13
)

// SectionIDName returns the canonical name of a section. Ex. "type" or "code"
func SectionIDName(id SectionID) string {
	switch id {
	case SectionIDCustom:
		return "custom"
	case SectionIDType:
		return "type"
	case SectionIDImport:
		return "import"
	case SectionIDFunction:
		return "function"
	case SectionIDTable:
		return "table"
	case SectionIDMemory:
		return "memory"
	case SectionIDGlobal:
		return "global"
	case SectionIDExport:
		return "export"
	case SectionIDStart:
		return "start"
	case SectionIDElement:
		return "element"
	case SectionIDCode:
		return "code"
	case SectionIDData:
		return "data"
	case SectionIDDataCount:
		return "data_count"
	case SectionIDEvent:
		return "event"
	}
	return "unknown"
}

// ExternType classifies an import or export.
//
// See https://www.w3.org/TR/2019/REC-wasm-core-1-20191205/#external-types%E2%91%A0
type ExternType = byte

const (
	ExternTypeFunc   ExternType = 0x00
	ExternTypeTable  ExternType = 0x01
	ExternTypeMemory ExternType = 0x02
	ExternTypeGlobal ExternType = 0x03
	ExternTypeEvent  ExternType = 0x04
)

// ExternTypeName returns the name used in the text format for the given type.
func ExternTypeName(t ExternType) string {
	switch t {
	case ExternTypeFunc:
		return "func"
	case ExternTypeTable:
		return "table"
	case ExternTypeMemory:
		return "memory"
	case ExternTypeGlobal:
		return "global"
	case ExternTypeEvent:
		return "event"
	}
	return fmt.Sprintf("0x%x", t)
}

// Module is the binary representation of a WebAssembly module: an ordered set
// of typed sections.
//
// Note: The fields are in the order sections appear in a canonical binary,
// except EventSection, whose section comes between memory and global.
//
// See https://www.w3.org/TR/2019/REC-wasm-core-1-20191205/#modules%E2%91%A8
type Module struct {
	TypeSection     []FunctionType
	ImportSection   []Import
	FunctionSection []Function
	TableSection    []Table
	MemorySection   []Memory
	GlobalSection   []Global
	EventSection    []EventType
	ExportSection   []Export
	StartSection    *StartFunction
	ElementSection  []ElementSegment
	DataCountSection *DataCount
	CodeSection     []Code
	DataSection     []DataSegment

	// NameSection is the decoded "name" custom section, when present.
	NameSection *NameSection
	// CustomSections are all custom sections except "name", in order of
	// appearance.
	CustomSections []CustomSection
}

// ImportFuncCount returns the number of imported functions.
func (m *Module) ImportFuncCount() uint32 {
	return m.importCount(ExternTypeFunc)
}

func (m *Module) importCount(t ExternType) (n uint32) {
	for i := range m.ImportSection {
		if m.ImportSection[i].Type == t {
			n++
		}
	}
	return
}

// Import is a statement that binds a module-external entity into one of this
// module's index spaces. Exactly one Desc field applies, selected by Type.
//
// See https://www.w3.org/TR/2019/REC-wasm-core-1-20191205/#binary-import
type Import struct {
	Module string
	Name   string
	Type   ExternType

	DescFunc   Index // Type == ExternTypeFunc: index into the type section
	DescTable  Table
	DescMem    Memory
	DescGlobal GlobalType
	DescEvent  EventType

	Loc Location
}

// Function declares the type of a module-defined function; its body is the
// code section entry at the same position.
type Function struct {
	TypeIndex Index

	Loc Location
}

// Global is a module-defined global with its initialization expression.
//
// See https://www.w3.org/TR/2019/REC-wasm-core-1-20191205/#binary-global
type Global struct {
	Type GlobalType
	Init ConstantExpression

	Loc Location
}

// Export makes an entity of this module reachable by name. Names are unique
// within a module across all extern types.
//
// See https://www.w3.org/TR/2019/REC-wasm-core-1-20191205/#binary-export
type Export struct {
	Name  string
	Type  ExternType
	Index Index

	Loc Location
}

// StartFunction names the function invoked at instantiation. It must have
// type [] -> [].
type StartFunction struct {
	FuncIndex Index

	Loc Location
}

// DataCount is the declared number of data segments (bulk-memory proposal).
type DataCount struct {
	Count uint32

	Loc Location
}

// ElementMode determines when an element segment applies.
type ElementMode byte

const (
	// ElementModeActive segments copy into a table at instantiation.
	ElementModeActive ElementMode = iota
	// ElementModePassive segments wait for table.init.
	ElementModePassive
	// ElementModeDeclarative segments only declare functions for ref.func.
	ElementModeDeclarative
)

// ElementSegment initializes a range of a table.
//
// Exactly one of Indexes or Exprs is set, matching the binary flavor: the
// low-numbered encodings carry plain function indexes, the expression
// encodings carry constant expressions.
//
// See https://www.w3.org/TR/2019/REC-wasm-core-1-20191205/#binary-elem
type ElementSegment struct {
	Mode       ElementMode
	Type       RefType
	TableIndex Index              // Mode == ElementModeActive
	Offset     ConstantExpression // Mode == ElementModeActive

	Indexes []Index
	Exprs   []ConstantExpression

	Loc Location
}

// DataMode determines when a data segment applies.
type DataMode byte

const (
	// DataModeActive segments copy into a memory at instantiation.
	DataModeActive DataMode = iota
	// DataModePassive segments wait for memory.init.
	DataModePassive
)

// DataSegment initializes a range of a linear memory.
//
// See https://www.w3.org/TR/2019/REC-wasm-core-1-20191205/#binary-data
type DataSegment struct {
	Mode        DataMode
	MemoryIndex Index              // Mode == DataModeActive
	Offset      ConstantExpression // Mode == DataModeActive
	Init        []byte

	Loc Location
}

// Code is a function body: its extra local declarations and instruction
// sequence. The final end instruction is included in Body.
//
// See https://www.w3.org/TR/2019/REC-wasm-core-1-20191205/#binary-code
type Code struct {
	LocalTypes []ValueType
	Body       []Instruction

	Loc Location
}

// ConstantExpression is a single value-producing instruction followed by end,
// evaluated at instantiation time.
//
// See https://www.w3.org/TR/2019/REC-wasm-core-1-20191205/#constant-expressions%E2%91%A0
type ConstantExpression struct {
	Instr Instruction

	Loc Location
}

// CustomSection is an uninterpreted named section.
//
// See https://www.w3.org/TR/2019/REC-wasm-core-1-20191205/#custom-section%E2%91%A0
type CustomSection struct {
	Name string
	Data []byte

	Loc Location
}

// NameMap associates an index with a UTF-8 name, sorted by index.
type NameMap []NameAssoc

type NameAssoc struct {
	Index Index
	Name  string
}

// IndirectNameMap associates an index with a NameMap, sorted by index.
type IndirectNameMap []NameMapAssoc

type NameMapAssoc struct {
	Index   Index
	NameMap NameMap
}

// NameSection represents the known subsections of the "name" custom section.
//
// Note: Module.NameSection is nil when the module has no "name" custom
// section or that section failed to decode.
//
// See https://www.w3.org/TR/2019/REC-wasm-core-1-20191205/#binary-namesec
type NameSection struct {
	// ModuleName is the symbolic identifier for a module. Ex. math
	ModuleName string
	// FunctionNames is an association of a function index to its symbolic
	// identifier. Ex. add
	FunctionNames NameMap
	// LocalNames contains symbolic identifiers for function parameters or
	// locals.
	LocalNames IndirectNameMap
}
