package wasm

import (
	"bytes"
	"fmt"
)

// Index is the zero-based offset into an index space: functions, tables,
// memories, globals, events, types, element or data segments. Each index space
// begins with imports of that kind, followed by module-defined entries.
//
// See https://www.w3.org/TR/2019/REC-wasm-core-1-20191205/#binary-index
type Index = uint32

// Location points into the byte slice a construct was decoded from. Locations
// survive structural rewrites of the AST unchanged.
type Location struct {
	Offset uint32
	Length uint32
}

// End returns the offset one past the located bytes.
func (l Location) End() uint32 { return l.Offset + l.Length }

func (l Location) String() string {
	return fmt.Sprintf("0x%x..0x%x", l.Offset, l.End())
}

// ValueType describes a parameter or result type mapped to a i32, i64, f32,
// f64, v128 or reference value.
//
// Note: This is defined as the byte that encodes the type in the binary
// format, so a decoded type needs no translation table.
//
// See https://www.w3.org/TR/2019/REC-wasm-core-1-20191205/#binary-valtype
type ValueType = byte

const (
	ValueTypeI32 ValueType = 0x7f
	ValueTypeI64 ValueType = 0x7e
	ValueTypeF32 ValueType = 0x7d
	ValueTypeF64 ValueType = 0x7c
	// ValueTypeV128 is the 128-bit vector type of the simd proposal.
	ValueTypeV128 ValueType = 0x7b
	// ValueTypeFuncref is the type of a nullable reference to a function.
	ValueTypeFuncref ValueType = 0x70
	// ValueTypeExternref is the type of a nullable reference to a host object,
	// from the reference-types proposal.
	ValueTypeExternref ValueType = 0x6f
	// ValueTypeExnref is the type of an exception reference, from the
	// exception-handling proposal.
	ValueTypeExnref ValueType = 0x68
)

// ValueTypeName returns the type name in the WebAssembly Text Format.
func ValueTypeName(t ValueType) string {
	switch t {
	case ValueTypeI32:
		return "i32"
	case ValueTypeI64:
		return "i64"
	case ValueTypeF32:
		return "f32"
	case ValueTypeF64:
		return "f64"
	case ValueTypeV128:
		return "v128"
	case ValueTypeFuncref:
		return "funcref"
	case ValueTypeExternref:
		return "externref"
	case ValueTypeExnref:
		return "exnref"
	}
	return "unknown"
}

// RefType is the subset of ValueType a table element or ref.null immediate may
// carry: ValueTypeFuncref, ValueTypeExternref or ValueTypeExnref.
type RefType = ValueType

// IsRefType returns true if t is a reference type.
func IsRefType(t ValueType) bool {
	return t == ValueTypeFuncref || t == ValueTypeExternref || t == ValueTypeExnref
}

// IsNumType returns true if t is a numeric or vector type, the set the untyped
// select instruction accepts.
func IsNumType(t ValueType) bool {
	switch t {
	case ValueTypeI32, ValueTypeI64, ValueTypeF32, ValueTypeF64, ValueTypeV128:
		return true
	}
	return false
}

// ValueTypesName returns a parenthesized, comma separated name of the types,
// used in error messages. Ex. "(i32, f64)"
func ValueTypesName(ts []ValueType) string {
	var buf bytes.Buffer
	buf.WriteByte('(')
	for i, t := range ts {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(ValueTypeName(t))
	}
	buf.WriteByte(')')
	return buf.String()
}

// FunctionType is a possibly empty sequence of parameter types followed by a
// possibly empty sequence of result types.
//
// Note: Before the multi-value feature, len(Results) was limited to one.
//
// See https://www.w3.org/TR/2019/REC-wasm-core-1-20191205/#binary-functype
type FunctionType struct {
	Params  []ValueType
	Results []ValueType

	Loc Location
}

// EqualsSignature returns true if the function type has the same parameters
// and results, ignoring locations.
func (t *FunctionType) EqualsSignature(params, results []ValueType) bool {
	return bytes.Equal(t.Params, params) && bytes.Equal(t.Results, results)
}

// String implements fmt.Stringer.
func (t *FunctionType) String() string {
	return fmt.Sprintf("%s -> %s", ValueTypesName(t.Params), ValueTypesName(t.Results))
}

// Limits bound the size of a table or memory. Min is mandatory, Max optional.
// Shared marks a memory shared between agents (threads proposal); a shared
// memory must declare a Max.
//
// See https://www.w3.org/TR/2019/REC-wasm-core-1-20191205/#binary-limits
type Limits struct {
	Min    uint32
	Max    *uint32
	Shared bool

	Loc Location
}

// MemoryPageSize is the size of a memory page: 64KiB.
const MemoryPageSize = uint32(65536)

// MemoryLimitPages is the maximum number of pages of a 32-bit memory: 2^16.
const MemoryLimitPages = uint32(65536)

// Table describes a table: its element reference type and size limits.
//
// See https://www.w3.org/TR/2019/REC-wasm-core-1-20191205/#binary-tabletype
type Table struct {
	Type   RefType
	Limits Limits

	Loc Location
}

// Memory describes a linear memory by its limits.
//
// See https://www.w3.org/TR/2019/REC-wasm-core-1-20191205/#binary-memtype
type Memory struct {
	Limits Limits

	Loc Location
}

// GlobalType pairs a value type with mutability.
//
// See https://www.w3.org/TR/2019/REC-wasm-core-1-20191205/#binary-globaltype
type GlobalType struct {
	ValType ValueType
	Mutable bool

	Loc Location
}

// EventType describes an event (exception-handling proposal): an attribute
// byte, currently always zero meaning "exception", and the index of the
// function type listing the exception's payload.
type EventType struct {
	Attribute byte
	TypeIndex Index

	Loc Location
}

// EventAttributeException is the only attribute defined by the
// exception-handling proposal.
const EventAttributeException byte = 0
