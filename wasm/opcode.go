package wasm

import "fmt"

// Opcode identifies an instruction. Single-byte opcodes are their byte value.
// Multi-byte opcodes, introduced by the 0xfc (misc), 0xfd (vector) and 0xfe
// (atomic) escape bytes followed by a LEB128 subopcode, are encoded here as
// prefix<<8 | subopcode so one type covers the whole instruction set.
//
// See https://www.w3.org/TR/2019/REC-wasm-core-1-20191205/#a7-index-of-instructions
type Opcode uint32

// Escape bytes introducing a LEB128-encoded subopcode.
const (
	MiscPrefix   byte = 0xfc
	VecPrefix    byte = 0xfd
	AtomicPrefix byte = 0xfe
)

// Prefix returns the escape byte of a multi-byte opcode, or 0 for the
// single-byte opcodes.
func (op Opcode) Prefix() byte { return byte(op >> 8) }

// Sub returns the subopcode of a multi-byte opcode, or the byte value of a
// single-byte opcode.
func (op Opcode) Sub() uint32 { return uint32(op) & 0xff }

// String implements fmt.Stringer with the text format instruction name.
func (op Opcode) String() string { return InstructionName(op) }

// Control instructions.
//
// See https://www.w3.org/TR/2019/REC-wasm-core-1-20191205/#control-instructions%E2%91%A6
const (
	OpcodeUnreachable Opcode = 0x00
	OpcodeNop         Opcode = 0x01
	OpcodeBlock       Opcode = 0x02
	OpcodeLoop        Opcode = 0x03
	OpcodeIf          Opcode = 0x04
	OpcodeElse        Opcode = 0x05
	// OpcodeTry through OpcodeBrOnExn are from the exception-handling
	// proposal.
	OpcodeTry     Opcode = 0x06
	OpcodeCatch   Opcode = 0x07
	OpcodeThrow   Opcode = 0x08
	OpcodeRethrow Opcode = 0x09
	OpcodeBrOnExn Opcode = 0x0a
	OpcodeEnd     Opcode = 0x0b
	OpcodeBr      Opcode = 0x0c
	OpcodeBrIf    Opcode = 0x0d
	OpcodeBrTable Opcode = 0x0e
	OpcodeReturn  Opcode = 0x0f

	OpcodeCall         Opcode = 0x10
	OpcodeCallIndirect Opcode = 0x11
	// OpcodeReturnCall and OpcodeReturnCallIndirect are from the tail-call
	// proposal.
	OpcodeReturnCall         Opcode = 0x12
	OpcodeReturnCallIndirect Opcode = 0x13
)

// Parametric instructions.
const (
	OpcodeDrop   Opcode = 0x1a
	OpcodeSelect Opcode = 0x1b
	// OpcodeTypedSelect is select with an explicit type annotation, from the
	// reference-types proposal.
	OpcodeTypedSelect Opcode = 0x1c
)

// Variable and table access instructions.
const (
	OpcodeLocalGet  Opcode = 0x20
	OpcodeLocalSet  Opcode = 0x21
	OpcodeLocalTee  Opcode = 0x22
	OpcodeGlobalGet Opcode = 0x23
	OpcodeGlobalSet Opcode = 0x24
	// OpcodeTableGet and OpcodeTableSet are from the reference-types proposal.
	OpcodeTableGet Opcode = 0x25
	OpcodeTableSet Opcode = 0x26
)

// Memory instructions.
const (
	OpcodeI32Load    Opcode = 0x28
	OpcodeI64Load    Opcode = 0x29
	OpcodeF32Load    Opcode = 0x2a
	OpcodeF64Load    Opcode = 0x2b
	OpcodeI32Load8S  Opcode = 0x2c
	OpcodeI32Load8U  Opcode = 0x2d
	OpcodeI32Load16S Opcode = 0x2e
	OpcodeI32Load16U Opcode = 0x2f
	OpcodeI64Load8S  Opcode = 0x30
	OpcodeI64Load8U  Opcode = 0x31
	OpcodeI64Load16S Opcode = 0x32
	OpcodeI64Load16U Opcode = 0x33
	OpcodeI64Load32S Opcode = 0x34
	OpcodeI64Load32U Opcode = 0x35
	OpcodeI32Store   Opcode = 0x36
	OpcodeI64Store   Opcode = 0x37
	OpcodeF32Store   Opcode = 0x38
	OpcodeF64Store   Opcode = 0x39
	OpcodeI32Store8  Opcode = 0x3a
	OpcodeI32Store16 Opcode = 0x3b
	OpcodeI64Store8  Opcode = 0x3c
	OpcodeI64Store16 Opcode = 0x3d
	OpcodeI64Store32 Opcode = 0x3e
	OpcodeMemorySize Opcode = 0x3f
	OpcodeMemoryGrow Opcode = 0x40
)

// Constant instructions.
const (
	OpcodeI32Const Opcode = 0x41
	OpcodeI64Const Opcode = 0x42
	OpcodeF32Const Opcode = 0x43
	OpcodeF64Const Opcode = 0x44
)

// Numeric instructions.
const (
	OpcodeI32Eqz Opcode = 0x45
	OpcodeI32Eq  Opcode = 0x46
	OpcodeI32Ne  Opcode = 0x47
	OpcodeI32LtS Opcode = 0x48
	OpcodeI32LtU Opcode = 0x49
	OpcodeI32GtS Opcode = 0x4a
	OpcodeI32GtU Opcode = 0x4b
	OpcodeI32LeS Opcode = 0x4c
	OpcodeI32LeU Opcode = 0x4d
	OpcodeI32GeS Opcode = 0x4e
	OpcodeI32GeU Opcode = 0x4f

	OpcodeI64Eqz Opcode = 0x50
	OpcodeI64Eq  Opcode = 0x51
	OpcodeI64Ne  Opcode = 0x52
	OpcodeI64LtS Opcode = 0x53
	OpcodeI64LtU Opcode = 0x54
	OpcodeI64GtS Opcode = 0x55
	OpcodeI64GtU Opcode = 0x56
	OpcodeI64LeS Opcode = 0x57
	OpcodeI64LeU Opcode = 0x58
	OpcodeI64GeS Opcode = 0x59
	OpcodeI64GeU Opcode = 0x5a

	OpcodeF32Eq Opcode = 0x5b
	OpcodeF32Ne Opcode = 0x5c
	OpcodeF32Lt Opcode = 0x5d
	OpcodeF32Gt Opcode = 0x5e
	OpcodeF32Le Opcode = 0x5f
	OpcodeF32Ge Opcode = 0x60

	OpcodeF64Eq Opcode = 0x61
	OpcodeF64Ne Opcode = 0x62
	OpcodeF64Lt Opcode = 0x63
	OpcodeF64Gt Opcode = 0x64
	OpcodeF64Le Opcode = 0x65
	OpcodeF64Ge Opcode = 0x66

	OpcodeI32Clz    Opcode = 0x67
	OpcodeI32Ctz    Opcode = 0x68
	OpcodeI32Popcnt Opcode = 0x69
	OpcodeI32Add    Opcode = 0x6a
	OpcodeI32Sub    Opcode = 0x6b
	OpcodeI32Mul    Opcode = 0x6c
	OpcodeI32DivS   Opcode = 0x6d
	OpcodeI32DivU   Opcode = 0x6e
	OpcodeI32RemS   Opcode = 0x6f
	OpcodeI32RemU   Opcode = 0x70
	OpcodeI32And    Opcode = 0x71
	OpcodeI32Or     Opcode = 0x72
	OpcodeI32Xor    Opcode = 0x73
	OpcodeI32Shl    Opcode = 0x74
	OpcodeI32ShrS   Opcode = 0x75
	OpcodeI32ShrU   Opcode = 0x76
	OpcodeI32Rotl   Opcode = 0x77
	OpcodeI32Rotr   Opcode = 0x78

	OpcodeI64Clz    Opcode = 0x79
	OpcodeI64Ctz    Opcode = 0x7a
	OpcodeI64Popcnt Opcode = 0x7b
	OpcodeI64Add    Opcode = 0x7c
	OpcodeI64Sub    Opcode = 0x7d
	OpcodeI64Mul    Opcode = 0x7e
	OpcodeI64DivS   Opcode = 0x7f
	OpcodeI64DivU   Opcode = 0x80
	OpcodeI64RemS   Opcode = 0x81
	OpcodeI64RemU   Opcode = 0x82
	OpcodeI64And    Opcode = 0x83
	OpcodeI64Or     Opcode = 0x84
	OpcodeI64Xor    Opcode = 0x85
	OpcodeI64Shl    Opcode = 0x86
	OpcodeI64ShrS   Opcode = 0x87
	OpcodeI64ShrU   Opcode = 0x88
	OpcodeI64Rotl   Opcode = 0x89
	OpcodeI64Rotr   Opcode = 0x8a

	OpcodeF32Abs      Opcode = 0x8b
	OpcodeF32Neg      Opcode = 0x8c
	OpcodeF32Ceil     Opcode = 0x8d
	OpcodeF32Floor    Opcode = 0x8e
	OpcodeF32Trunc    Opcode = 0x8f
	OpcodeF32Nearest  Opcode = 0x90
	OpcodeF32Sqrt     Opcode = 0x91
	OpcodeF32Add      Opcode = 0x92
	OpcodeF32Sub      Opcode = 0x93
	OpcodeF32Mul      Opcode = 0x94
	OpcodeF32Div      Opcode = 0x95
	OpcodeF32Min      Opcode = 0x96
	OpcodeF32Max      Opcode = 0x97
	OpcodeF32Copysign Opcode = 0x98

	OpcodeF64Abs      Opcode = 0x99
	OpcodeF64Neg      Opcode = 0x9a
	OpcodeF64Ceil     Opcode = 0x9b
	OpcodeF64Floor    Opcode = 0x9c
	OpcodeF64Trunc    Opcode = 0x9d
	OpcodeF64Nearest  Opcode = 0x9e
	OpcodeF64Sqrt     Opcode = 0x9f
	OpcodeF64Add      Opcode = 0xa0
	OpcodeF64Sub      Opcode = 0xa1
	OpcodeF64Mul      Opcode = 0xa2
	OpcodeF64Div      Opcode = 0xa3
	OpcodeF64Min      Opcode = 0xa4
	OpcodeF64Max      Opcode = 0xa5
	OpcodeF64Copysign Opcode = 0xa6

	OpcodeI32WrapI64    Opcode = 0xa7
	OpcodeI32TruncF32S  Opcode = 0xa8
	OpcodeI32TruncF32U  Opcode = 0xa9
	OpcodeI32TruncF64S  Opcode = 0xaa
	OpcodeI32TruncF64U  Opcode = 0xab
	OpcodeI64ExtendI32S Opcode = 0xac
	OpcodeI64ExtendI32U Opcode = 0xad
	OpcodeI64TruncF32S  Opcode = 0xae
	OpcodeI64TruncF32U  Opcode = 0xaf
	OpcodeI64TruncF64S  Opcode = 0xb0
	OpcodeI64TruncF64U  Opcode = 0xb1

	OpcodeF32ConvertI32S Opcode = 0xb2
	OpcodeF32ConvertI32U Opcode = 0xb3
	OpcodeF32ConvertI64S Opcode = 0xb4
	OpcodeF32ConvertI64U Opcode = 0xb5
	OpcodeF32DemoteF64   Opcode = 0xb6
	OpcodeF64ConvertI32S Opcode = 0xb7
	OpcodeF64ConvertI32U Opcode = 0xb8
	OpcodeF64ConvertI64S Opcode = 0xb9
	OpcodeF64ConvertI64U Opcode = 0xba
	OpcodeF64PromoteF32  Opcode = 0xbb

	OpcodeI32ReinterpretF32 Opcode = 0xbc
	OpcodeI64ReinterpretF64 Opcode = 0xbd
	OpcodeF32ReinterpretI32 Opcode = 0xbe
	OpcodeF64ReinterpretI64 Opcode = 0xbf

	// OpcodeI32Extend8S through OpcodeI64Extend32S are from the
	// sign-extension-ops proposal.
	OpcodeI32Extend8S  Opcode = 0xc0
	OpcodeI32Extend16S Opcode = 0xc1
	OpcodeI64Extend8S  Opcode = 0xc2
	OpcodeI64Extend16S Opcode = 0xc3
	OpcodeI64Extend32S Opcode = 0xc4
)

// Reference instructions, from the reference-types proposal.
const (
	OpcodeRefNull   Opcode = 0xd0
	OpcodeRefIsNull Opcode = 0xd1
	OpcodeRefFunc   Opcode = 0xd2
)

// Misc instructions behind the 0xfc escape: the saturating
// (non-trapping) float-to-int conversions and the bulk memory and table
// operations.
const (
	OpcodeI32TruncSatF32S Opcode = 0xfc00
	OpcodeI32TruncSatF32U Opcode = 0xfc01
	OpcodeI32TruncSatF64S Opcode = 0xfc02
	OpcodeI32TruncSatF64U Opcode = 0xfc03
	OpcodeI64TruncSatF32S Opcode = 0xfc04
	OpcodeI64TruncSatF32U Opcode = 0xfc05
	OpcodeI64TruncSatF64S Opcode = 0xfc06
	OpcodeI64TruncSatF64U Opcode = 0xfc07

	OpcodeMemoryInit Opcode = 0xfc08
	OpcodeDataDrop   Opcode = 0xfc09
	OpcodeMemoryCopy Opcode = 0xfc0a
	OpcodeMemoryFill Opcode = 0xfc0b
	OpcodeTableInit  Opcode = 0xfc0c
	OpcodeElemDrop   Opcode = 0xfc0d
	OpcodeTableCopy  Opcode = 0xfc0e
	OpcodeTableGrow  Opcode = 0xfc0f
	OpcodeTableSize  Opcode = 0xfc10
	OpcodeTableFill  Opcode = 0xfc11
)

// Vector instructions behind the 0xfd escape, from the simd proposal.
//
// See https://github.com/WebAssembly/spec/blob/wg-2.0.draft1/proposals/simd/SIMD.md
const (
	OpcodeV128Load        Opcode = 0xfd00
	OpcodeV128Load8x8S    Opcode = 0xfd01
	OpcodeV128Load8x8U    Opcode = 0xfd02
	OpcodeV128Load16x4S   Opcode = 0xfd03
	OpcodeV128Load16x4U   Opcode = 0xfd04
	OpcodeV128Load32x2S   Opcode = 0xfd05
	OpcodeV128Load32x2U   Opcode = 0xfd06
	OpcodeV128Load8Splat  Opcode = 0xfd07
	OpcodeV128Load16Splat Opcode = 0xfd08
	OpcodeV128Load32Splat Opcode = 0xfd09
	OpcodeV128Load64Splat Opcode = 0xfd0a
	OpcodeV128Store       Opcode = 0xfd0b
	OpcodeV128Const       Opcode = 0xfd0c

	OpcodeI8x16Shuffle Opcode = 0xfd0d
	OpcodeI8x16Swizzle Opcode = 0xfd0e

	OpcodeI8x16Splat Opcode = 0xfd0f
	OpcodeI16x8Splat Opcode = 0xfd10
	OpcodeI32x4Splat Opcode = 0xfd11
	OpcodeI64x2Splat Opcode = 0xfd12
	OpcodeF32x4Splat Opcode = 0xfd13
	OpcodeF64x2Splat Opcode = 0xfd14

	OpcodeI8x16ExtractLaneS Opcode = 0xfd15
	OpcodeI8x16ExtractLaneU Opcode = 0xfd16
	OpcodeI8x16ReplaceLane  Opcode = 0xfd17
	OpcodeI16x8ExtractLaneS Opcode = 0xfd18
	OpcodeI16x8ExtractLaneU Opcode = 0xfd19
	OpcodeI16x8ReplaceLane  Opcode = 0xfd1a
	OpcodeI32x4ExtractLane  Opcode = 0xfd1b
	OpcodeI32x4ReplaceLane  Opcode = 0xfd1c
	OpcodeI64x2ExtractLane  Opcode = 0xfd1d
	OpcodeI64x2ReplaceLane  Opcode = 0xfd1e
	OpcodeF32x4ExtractLane  Opcode = 0xfd1f
	OpcodeF32x4ReplaceLane  Opcode = 0xfd20
	OpcodeF64x2ExtractLane  Opcode = 0xfd21
	OpcodeF64x2ReplaceLane  Opcode = 0xfd22

	OpcodeI8x16Eq  Opcode = 0xfd23
	OpcodeI8x16Ne  Opcode = 0xfd24
	OpcodeI8x16LtS Opcode = 0xfd25
	OpcodeI8x16LtU Opcode = 0xfd26
	OpcodeI8x16GtS Opcode = 0xfd27
	OpcodeI8x16GtU Opcode = 0xfd28
	OpcodeI8x16LeS Opcode = 0xfd29
	OpcodeI8x16LeU Opcode = 0xfd2a
	OpcodeI8x16GeS Opcode = 0xfd2b
	OpcodeI8x16GeU Opcode = 0xfd2c

	OpcodeI16x8Eq  Opcode = 0xfd2d
	OpcodeI16x8Ne  Opcode = 0xfd2e
	OpcodeI16x8LtS Opcode = 0xfd2f
	OpcodeI16x8LtU Opcode = 0xfd30
	OpcodeI16x8GtS Opcode = 0xfd31
	OpcodeI16x8GtU Opcode = 0xfd32
	OpcodeI16x8LeS Opcode = 0xfd33
	OpcodeI16x8LeU Opcode = 0xfd34
	OpcodeI16x8GeS Opcode = 0xfd35
	OpcodeI16x8GeU Opcode = 0xfd36

	OpcodeI32x4Eq  Opcode = 0xfd37
	OpcodeI32x4Ne  Opcode = 0xfd38
	OpcodeI32x4LtS Opcode = 0xfd39
	OpcodeI32x4LtU Opcode = 0xfd3a
	OpcodeI32x4GtS Opcode = 0xfd3b
	OpcodeI32x4GtU Opcode = 0xfd3c
	OpcodeI32x4LeS Opcode = 0xfd3d
	OpcodeI32x4LeU Opcode = 0xfd3e
	OpcodeI32x4GeS Opcode = 0xfd3f
	OpcodeI32x4GeU Opcode = 0xfd40

	OpcodeF32x4Eq Opcode = 0xfd41
	OpcodeF32x4Ne Opcode = 0xfd42
	OpcodeF32x4Lt Opcode = 0xfd43
	OpcodeF32x4Gt Opcode = 0xfd44
	OpcodeF32x4Le Opcode = 0xfd45
	OpcodeF32x4Ge Opcode = 0xfd46

	OpcodeF64x2Eq Opcode = 0xfd47
	OpcodeF64x2Ne Opcode = 0xfd48
	OpcodeF64x2Lt Opcode = 0xfd49
	OpcodeF64x2Gt Opcode = 0xfd4a
	OpcodeF64x2Le Opcode = 0xfd4b
	OpcodeF64x2Ge Opcode = 0xfd4c

	OpcodeV128Not       Opcode = 0xfd4d
	OpcodeV128And       Opcode = 0xfd4e
	OpcodeV128AndNot    Opcode = 0xfd4f
	OpcodeV128Or        Opcode = 0xfd50
	OpcodeV128Xor       Opcode = 0xfd51
	OpcodeV128Bitselect Opcode = 0xfd52
	OpcodeV128AnyTrue   Opcode = 0xfd53

	OpcodeV128Load8Lane   Opcode = 0xfd54
	OpcodeV128Load16Lane  Opcode = 0xfd55
	OpcodeV128Load32Lane  Opcode = 0xfd56
	OpcodeV128Load64Lane  Opcode = 0xfd57
	OpcodeV128Store8Lane  Opcode = 0xfd58
	OpcodeV128Store16Lane Opcode = 0xfd59
	OpcodeV128Store32Lane Opcode = 0xfd5a
	OpcodeV128Store64Lane Opcode = 0xfd5b
	OpcodeV128Load32Zero  Opcode = 0xfd5c
	OpcodeV128Load64Zero  Opcode = 0xfd5d

	OpcodeF32x4DemoteF64x2Zero  Opcode = 0xfd5e
	OpcodeF64x2PromoteLowF32x4  Opcode = 0xfd5f

	OpcodeI8x16Abs          Opcode = 0xfd60
	OpcodeI8x16Neg          Opcode = 0xfd61
	OpcodeI8x16Popcnt       Opcode = 0xfd62
	OpcodeI8x16AllTrue      Opcode = 0xfd63
	OpcodeI8x16BitMask      Opcode = 0xfd64
	OpcodeI8x16NarrowI16x8S Opcode = 0xfd65
	OpcodeI8x16NarrowI16x8U Opcode = 0xfd66

	OpcodeF32x4Ceil    Opcode = 0xfd67
	OpcodeF32x4Floor   Opcode = 0xfd68
	OpcodeF32x4Trunc   Opcode = 0xfd69
	OpcodeF32x4Nearest Opcode = 0xfd6a

	OpcodeI8x16Shl     Opcode = 0xfd6b
	OpcodeI8x16ShrS    Opcode = 0xfd6c
	OpcodeI8x16ShrU    Opcode = 0xfd6d
	OpcodeI8x16Add     Opcode = 0xfd6e
	OpcodeI8x16AddSatS Opcode = 0xfd6f
	OpcodeI8x16AddSatU Opcode = 0xfd70
	OpcodeI8x16Sub     Opcode = 0xfd71
	OpcodeI8x16SubSatS Opcode = 0xfd72
	OpcodeI8x16SubSatU Opcode = 0xfd73

	OpcodeF64x2Ceil  Opcode = 0xfd74
	OpcodeF64x2Floor Opcode = 0xfd75

	OpcodeI8x16MinS Opcode = 0xfd76
	OpcodeI8x16MinU Opcode = 0xfd77
	OpcodeI8x16MaxS Opcode = 0xfd78
	OpcodeI8x16MaxU Opcode = 0xfd79

	OpcodeF64x2Trunc Opcode = 0xfd7a

	OpcodeI8x16AvgrU             Opcode = 0xfd7b
	OpcodeI16x8ExtaddPairwiseI8x16S Opcode = 0xfd7c
	OpcodeI16x8ExtaddPairwiseI8x16U Opcode = 0xfd7d
	OpcodeI32x4ExtaddPairwiseI16x8S Opcode = 0xfd7e
	OpcodeI32x4ExtaddPairwiseI16x8U Opcode = 0xfd7f

	OpcodeI16x8Abs           Opcode = 0xfd80
	OpcodeI16x8Neg           Opcode = 0xfd81
	OpcodeI16x8Q15mulrSatS   Opcode = 0xfd82
	OpcodeI16x8AllTrue       Opcode = 0xfd83
	OpcodeI16x8BitMask       Opcode = 0xfd84
	OpcodeI16x8NarrowI32x4S  Opcode = 0xfd85
	OpcodeI16x8NarrowI32x4U  Opcode = 0xfd86
	OpcodeI16x8ExtendLowI8x16S  Opcode = 0xfd87
	OpcodeI16x8ExtendHighI8x16S Opcode = 0xfd88
	OpcodeI16x8ExtendLowI8x16U  Opcode = 0xfd89
	OpcodeI16x8ExtendHighI8x16U Opcode = 0xfd8a
	OpcodeI16x8Shl           Opcode = 0xfd8b
	OpcodeI16x8ShrS          Opcode = 0xfd8c
	OpcodeI16x8ShrU          Opcode = 0xfd8d
	OpcodeI16x8Add           Opcode = 0xfd8e
	OpcodeI16x8AddSatS       Opcode = 0xfd8f
	OpcodeI16x8AddSatU       Opcode = 0xfd90
	OpcodeI16x8Sub           Opcode = 0xfd91
	OpcodeI16x8SubSatS       Opcode = 0xfd92
	OpcodeI16x8SubSatU       Opcode = 0xfd93

	OpcodeF64x2Nearest Opcode = 0xfd94

	OpcodeI16x8Mul  Opcode = 0xfd95
	OpcodeI16x8MinS Opcode = 0xfd96
	OpcodeI16x8MinU Opcode = 0xfd97
	OpcodeI16x8MaxS Opcode = 0xfd98
	OpcodeI16x8MaxU Opcode = 0xfd99
	OpcodeI16x8AvgrU Opcode = 0xfd9b
	OpcodeI16x8ExtmulLowI8x16S  Opcode = 0xfd9c
	OpcodeI16x8ExtmulHighI8x16S Opcode = 0xfd9d
	OpcodeI16x8ExtmulLowI8x16U  Opcode = 0xfd9e
	OpcodeI16x8ExtmulHighI8x16U Opcode = 0xfd9f

	OpcodeI32x4Abs     Opcode = 0xfda0
	OpcodeI32x4Neg     Opcode = 0xfda1
	OpcodeI32x4AllTrue Opcode = 0xfda3
	OpcodeI32x4BitMask Opcode = 0xfda4
	OpcodeI32x4ExtendLowI16x8S  Opcode = 0xfda7
	OpcodeI32x4ExtendHighI16x8S Opcode = 0xfda8
	OpcodeI32x4ExtendLowI16x8U  Opcode = 0xfda9
	OpcodeI32x4ExtendHighI16x8U Opcode = 0xfdaa
	OpcodeI32x4Shl     Opcode = 0xfdab
	OpcodeI32x4ShrS    Opcode = 0xfdac
	OpcodeI32x4ShrU    Opcode = 0xfdad
	OpcodeI32x4Add     Opcode = 0xfdae
	OpcodeI32x4Sub     Opcode = 0xfdb1
	OpcodeI32x4Mul     Opcode = 0xfdb5
	OpcodeI32x4MinS    Opcode = 0xfdb6
	OpcodeI32x4MinU    Opcode = 0xfdb7
	OpcodeI32x4MaxS    Opcode = 0xfdb8
	OpcodeI32x4MaxU    Opcode = 0xfdb9
	OpcodeI32x4DotI16x8S Opcode = 0xfdba
	OpcodeI32x4ExtmulLowI16x8S  Opcode = 0xfdbc
	OpcodeI32x4ExtmulHighI16x8S Opcode = 0xfdbd
	OpcodeI32x4ExtmulLowI16x8U  Opcode = 0xfdbe
	OpcodeI32x4ExtmulHighI16x8U Opcode = 0xfdbf

	OpcodeI64x2Abs     Opcode = 0xfdc0
	OpcodeI64x2Neg     Opcode = 0xfdc1
	OpcodeI64x2AllTrue Opcode = 0xfdc3
	OpcodeI64x2BitMask Opcode = 0xfdc4
	OpcodeI64x2ExtendLowI32x4S  Opcode = 0xfdc7
	OpcodeI64x2ExtendHighI32x4S Opcode = 0xfdc8
	OpcodeI64x2ExtendLowI32x4U  Opcode = 0xfdc9
	OpcodeI64x2ExtendHighI32x4U Opcode = 0xfdca
	OpcodeI64x2Shl     Opcode = 0xfdcb
	OpcodeI64x2ShrS    Opcode = 0xfdcc
	OpcodeI64x2ShrU    Opcode = 0xfdcd
	OpcodeI64x2Add     Opcode = 0xfdce
	OpcodeI64x2Sub     Opcode = 0xfdd1
	OpcodeI64x2Mul     Opcode = 0xfdd5
	OpcodeI64x2Eq      Opcode = 0xfdd6
	OpcodeI64x2Ne      Opcode = 0xfdd7
	OpcodeI64x2LtS     Opcode = 0xfdd8
	OpcodeI64x2GtS     Opcode = 0xfdd9
	OpcodeI64x2LeS     Opcode = 0xfdda
	OpcodeI64x2GeS     Opcode = 0xfddb
	OpcodeI64x2ExtmulLowI32x4S  Opcode = 0xfddc
	OpcodeI64x2ExtmulHighI32x4S Opcode = 0xfddd
	OpcodeI64x2ExtmulLowI32x4U  Opcode = 0xfdde
	OpcodeI64x2ExtmulHighI32x4U Opcode = 0xfddf

	OpcodeF32x4Abs  Opcode = 0xfde0
	OpcodeF32x4Neg  Opcode = 0xfde1
	OpcodeF32x4Sqrt Opcode = 0xfde3
	OpcodeF32x4Add  Opcode = 0xfde4
	OpcodeF32x4Sub  Opcode = 0xfde5
	OpcodeF32x4Mul  Opcode = 0xfde6
	OpcodeF32x4Div  Opcode = 0xfde7
	OpcodeF32x4Min  Opcode = 0xfde8
	OpcodeF32x4Max  Opcode = 0xfde9
	OpcodeF32x4Pmin Opcode = 0xfdea
	OpcodeF32x4Pmax Opcode = 0xfdeb

	OpcodeF64x2Abs  Opcode = 0xfdec
	OpcodeF64x2Neg  Opcode = 0xfded
	OpcodeF64x2Sqrt Opcode = 0xfdef
	OpcodeF64x2Add  Opcode = 0xfdf0
	OpcodeF64x2Sub  Opcode = 0xfdf1
	OpcodeF64x2Mul  Opcode = 0xfdf2
	OpcodeF64x2Div  Opcode = 0xfdf3
	OpcodeF64x2Min  Opcode = 0xfdf4
	OpcodeF64x2Max  Opcode = 0xfdf5
	OpcodeF64x2Pmin Opcode = 0xfdf6
	OpcodeF64x2Pmax Opcode = 0xfdf7

	OpcodeI32x4TruncSatF32x4S     Opcode = 0xfdf8
	OpcodeI32x4TruncSatF32x4U     Opcode = 0xfdf9
	OpcodeF32x4ConvertI32x4S      Opcode = 0xfdfa
	OpcodeF32x4ConvertI32x4U      Opcode = 0xfdfb
	OpcodeI32x4TruncSatF64x2SZero Opcode = 0xfdfc
	OpcodeI32x4TruncSatF64x2UZero Opcode = 0xfdfd
	OpcodeF64x2ConvertLowI32x4S   Opcode = 0xfdfe
	OpcodeF64x2ConvertLowI32x4U   Opcode = 0xfdff
)

// Atomic instructions behind the 0xfe escape, from the threads proposal.
//
// See https://github.com/WebAssembly/threads/blob/main/proposals/threads/Overview.md
const (
	OpcodeMemoryAtomicNotify Opcode = 0xfe00
	OpcodeMemoryAtomicWait32 Opcode = 0xfe01
	OpcodeMemoryAtomicWait64 Opcode = 0xfe02
	OpcodeAtomicFence        Opcode = 0xfe03

	OpcodeI32AtomicLoad    Opcode = 0xfe10
	OpcodeI64AtomicLoad    Opcode = 0xfe11
	OpcodeI32AtomicLoad8U  Opcode = 0xfe12
	OpcodeI32AtomicLoad16U Opcode = 0xfe13
	OpcodeI64AtomicLoad8U  Opcode = 0xfe14
	OpcodeI64AtomicLoad16U Opcode = 0xfe15
	OpcodeI64AtomicLoad32U Opcode = 0xfe16
	OpcodeI32AtomicStore   Opcode = 0xfe17
	OpcodeI64AtomicStore   Opcode = 0xfe18
	OpcodeI32AtomicStore8  Opcode = 0xfe19
	OpcodeI32AtomicStore16 Opcode = 0xfe1a
	OpcodeI64AtomicStore8  Opcode = 0xfe1b
	OpcodeI64AtomicStore16 Opcode = 0xfe1c
	OpcodeI64AtomicStore32 Opcode = 0xfe1d

	OpcodeI32AtomicRmwAdd    Opcode = 0xfe1e
	OpcodeI64AtomicRmwAdd    Opcode = 0xfe1f
	OpcodeI32AtomicRmw8AddU  Opcode = 0xfe20
	OpcodeI32AtomicRmw16AddU Opcode = 0xfe21
	OpcodeI64AtomicRmw8AddU  Opcode = 0xfe22
	OpcodeI64AtomicRmw16AddU Opcode = 0xfe23
	OpcodeI64AtomicRmw32AddU Opcode = 0xfe24

	OpcodeI32AtomicRmwSub    Opcode = 0xfe25
	OpcodeI64AtomicRmwSub    Opcode = 0xfe26
	OpcodeI32AtomicRmw8SubU  Opcode = 0xfe27
	OpcodeI32AtomicRmw16SubU Opcode = 0xfe28
	OpcodeI64AtomicRmw8SubU  Opcode = 0xfe29
	OpcodeI64AtomicRmw16SubU Opcode = 0xfe2a
	OpcodeI64AtomicRmw32SubU Opcode = 0xfe2b

	OpcodeI32AtomicRmwAnd    Opcode = 0xfe2c
	OpcodeI64AtomicRmwAnd    Opcode = 0xfe2d
	OpcodeI32AtomicRmw8AndU  Opcode = 0xfe2e
	OpcodeI32AtomicRmw16AndU Opcode = 0xfe2f
	OpcodeI64AtomicRmw8AndU  Opcode = 0xfe30
	OpcodeI64AtomicRmw16AndU Opcode = 0xfe31
	OpcodeI64AtomicRmw32AndU Opcode = 0xfe32

	OpcodeI32AtomicRmwOr    Opcode = 0xfe33
	OpcodeI64AtomicRmwOr    Opcode = 0xfe34
	OpcodeI32AtomicRmw8OrU  Opcode = 0xfe35
	OpcodeI32AtomicRmw16OrU Opcode = 0xfe36
	OpcodeI64AtomicRmw8OrU  Opcode = 0xfe37
	OpcodeI64AtomicRmw16OrU Opcode = 0xfe38
	OpcodeI64AtomicRmw32OrU Opcode = 0xfe39

	OpcodeI32AtomicRmwXor    Opcode = 0xfe3a
	OpcodeI64AtomicRmwXor    Opcode = 0xfe3b
	OpcodeI32AtomicRmw8XorU  Opcode = 0xfe3c
	OpcodeI32AtomicRmw16XorU Opcode = 0xfe3d
	OpcodeI64AtomicRmw8XorU  Opcode = 0xfe3e
	OpcodeI64AtomicRmw16XorU Opcode = 0xfe3f
	OpcodeI64AtomicRmw32XorU Opcode = 0xfe40

	OpcodeI32AtomicRmwXchg    Opcode = 0xfe41
	OpcodeI64AtomicRmwXchg    Opcode = 0xfe42
	OpcodeI32AtomicRmw8XchgU  Opcode = 0xfe43
	OpcodeI32AtomicRmw16XchgU Opcode = 0xfe44
	OpcodeI64AtomicRmw8XchgU  Opcode = 0xfe45
	OpcodeI64AtomicRmw16XchgU Opcode = 0xfe46
	OpcodeI64AtomicRmw32XchgU Opcode = 0xfe47

	OpcodeI32AtomicRmwCmpxchg    Opcode = 0xfe48
	OpcodeI64AtomicRmwCmpxchg    Opcode = 0xfe49
	OpcodeI32AtomicRmw8CmpxchgU  Opcode = 0xfe4a
	OpcodeI32AtomicRmw16CmpxchgU Opcode = 0xfe4b
	OpcodeI64AtomicRmw8CmpxchgU  Opcode = 0xfe4c
	OpcodeI64AtomicRmw16CmpxchgU Opcode = 0xfe4d
	OpcodeI64AtomicRmw32CmpxchgU Opcode = 0xfe4e
)

// InstructionName returns the instruction name in the text format, or a hex
// rendering for an opcode outside the known set.
func InstructionName(op Opcode) string {
	if name, ok := instructionNames[op]; ok {
		return name
	}
	if p := op.Prefix(); p != 0 {
		return fmt.Sprintf("0x%02x 0x%02x", p, op.Sub())
	}
	return fmt.Sprintf("0x%02x", byte(op))
}

// OpcodeNames returns a copy of the canonical name table, for consumers that
// enumerate the instruction set such as the text lexer's keyword table.
func OpcodeNames() map[Opcode]string {
	m := make(map[Opcode]string, len(instructionNames))
	for op, name := range instructionNames {
		m[op] = name
	}
	return m
}

// IsKnownOpcode returns true if op is in the instruction grammar this package
// understands, regardless of feature gating.
func IsKnownOpcode(op Opcode) bool {
	_, ok := instructionNames[op]
	return ok
}

// OpcodeFeature returns the feature bit gating op, or zero for the MVP
// instructions every feature set accepts.
func OpcodeFeature(op Opcode) Features {
	switch {
	case op >= OpcodeTry && op <= OpcodeBrOnExn:
		return FeatureExceptions
	case op == OpcodeReturnCall || op == OpcodeReturnCallIndirect:
		return FeatureTailCall
	case op == OpcodeTypedSelect, op == OpcodeTableGet, op == OpcodeTableSet:
		return FeatureReferenceTypes
	case op >= OpcodeI32Extend8S && op <= OpcodeI64Extend32S:
		return FeatureSignExtensionOps
	case op >= OpcodeRefNull && op <= OpcodeRefFunc:
		return FeatureReferenceTypes
	case op >= OpcodeI32TruncSatF32S && op <= OpcodeI64TruncSatF64U:
		return FeatureSaturatingFloatToInt
	case op >= OpcodeMemoryInit && op <= OpcodeTableCopy:
		return FeatureBulkMemory
	case op >= OpcodeTableGrow && op <= OpcodeTableFill:
		return FeatureReferenceTypes
	case op.Prefix() == VecPrefix:
		return FeatureSIMD
	case op.Prefix() == AtomicPrefix:
		return FeatureThreads
	}
	return 0
}

// LookupOpcode returns the opcode for a canonical text format name.
func LookupOpcode(name string) (Opcode, bool) {
	op, ok := opcodeByName[name]
	return op, ok
}

var opcodeByName = func() map[string]Opcode {
	m := make(map[string]Opcode, len(instructionNames))
	for op, name := range instructionNames {
		// "select" is spelled the same with and without a type annotation;
		// keep the untyped opcode as the canonical lookup result.
		if prev, ok := m[name]; ok && prev < op {
			continue
		}
		m[name] = op
	}
	return m
}()
