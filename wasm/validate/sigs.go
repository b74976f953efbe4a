package validate

import "github.com/wasmkit/wasmkit/wasm"

// Shorthands keeping the tables below readable.
const (
	i32  = wasm.ValueTypeI32
	i64  = wasm.ValueTypeI64
	f32  = wasm.ValueTypeF32
	f64  = wasm.ValueTypeF64
	v128 = wasm.ValueTypeV128
)

// sig is the stack effect of an instruction: in is popped (last on top), out
// is pushed.
type sig struct {
	in  []wasm.ValueType
	out []wasm.ValueType
}

// opSigs holds the stack effect of every instruction that needs no module or
// control context: numeric, conversion and vector operators. Context-
// dependent instructions (control, calls, variables, memory, tables,
// references, select) are handled case by case by the function validator.
var opSigs = buildOpSigs()

func buildOpSigs() map[wasm.Opcode]sig {
	m := make(map[wasm.Opcode]sig, 512)

	add := func(s sig, ops ...wasm.Opcode) {
		for _, op := range ops {
			m[op] = s
		}
	}
	addRange := func(s sig, from, to wasm.Opcode) {
		for op := from; op <= to; op++ {
			if wasm.IsKnownOpcode(op) {
				m[op] = s
			}
		}
	}

	// Integer and float tests, comparisons, and arithmetic.
	add(sig{in: []wasm.ValueType{i32}, out: []wasm.ValueType{i32}}, wasm.OpcodeI32Eqz)
	addRange(sig{in: []wasm.ValueType{i32, i32}, out: []wasm.ValueType{i32}}, wasm.OpcodeI32Eq, wasm.OpcodeI32GeU)
	add(sig{in: []wasm.ValueType{i64}, out: []wasm.ValueType{i32}}, wasm.OpcodeI64Eqz)
	addRange(sig{in: []wasm.ValueType{i64, i64}, out: []wasm.ValueType{i32}}, wasm.OpcodeI64Eq, wasm.OpcodeI64GeU)
	addRange(sig{in: []wasm.ValueType{f32, f32}, out: []wasm.ValueType{i32}}, wasm.OpcodeF32Eq, wasm.OpcodeF32Ge)
	addRange(sig{in: []wasm.ValueType{f64, f64}, out: []wasm.ValueType{i32}}, wasm.OpcodeF64Eq, wasm.OpcodeF64Ge)

	addRange(sig{in: []wasm.ValueType{i32}, out: []wasm.ValueType{i32}}, wasm.OpcodeI32Clz, wasm.OpcodeI32Popcnt)
	addRange(sig{in: []wasm.ValueType{i32, i32}, out: []wasm.ValueType{i32}}, wasm.OpcodeI32Add, wasm.OpcodeI32Rotr)
	addRange(sig{in: []wasm.ValueType{i64}, out: []wasm.ValueType{i64}}, wasm.OpcodeI64Clz, wasm.OpcodeI64Popcnt)
	addRange(sig{in: []wasm.ValueType{i64, i64}, out: []wasm.ValueType{i64}}, wasm.OpcodeI64Add, wasm.OpcodeI64Rotr)
	addRange(sig{in: []wasm.ValueType{f32}, out: []wasm.ValueType{f32}}, wasm.OpcodeF32Abs, wasm.OpcodeF32Sqrt)
	addRange(sig{in: []wasm.ValueType{f32, f32}, out: []wasm.ValueType{f32}}, wasm.OpcodeF32Add, wasm.OpcodeF32Copysign)
	addRange(sig{in: []wasm.ValueType{f64}, out: []wasm.ValueType{f64}}, wasm.OpcodeF64Abs, wasm.OpcodeF64Sqrt)
	addRange(sig{in: []wasm.ValueType{f64, f64}, out: []wasm.ValueType{f64}}, wasm.OpcodeF64Add, wasm.OpcodeF64Copysign)

	// Conversions.
	add(sig{in: []wasm.ValueType{i64}, out: []wasm.ValueType{i32}}, wasm.OpcodeI32WrapI64)
	add(sig{in: []wasm.ValueType{f32}, out: []wasm.ValueType{i32}},
		wasm.OpcodeI32TruncF32S, wasm.OpcodeI32TruncF32U, wasm.OpcodeI32ReinterpretF32,
		wasm.OpcodeI32TruncSatF32S, wasm.OpcodeI32TruncSatF32U)
	add(sig{in: []wasm.ValueType{f64}, out: []wasm.ValueType{i32}},
		wasm.OpcodeI32TruncF64S, wasm.OpcodeI32TruncF64U,
		wasm.OpcodeI32TruncSatF64S, wasm.OpcodeI32TruncSatF64U)
	add(sig{in: []wasm.ValueType{i32}, out: []wasm.ValueType{i64}},
		wasm.OpcodeI64ExtendI32S, wasm.OpcodeI64ExtendI32U)
	add(sig{in: []wasm.ValueType{f32}, out: []wasm.ValueType{i64}},
		wasm.OpcodeI64TruncF32S, wasm.OpcodeI64TruncF32U,
		wasm.OpcodeI64TruncSatF32S, wasm.OpcodeI64TruncSatF32U)
	add(sig{in: []wasm.ValueType{f64}, out: []wasm.ValueType{i64}},
		wasm.OpcodeI64TruncF64S, wasm.OpcodeI64TruncF64U, wasm.OpcodeI64ReinterpretF64,
		wasm.OpcodeI64TruncSatF64S, wasm.OpcodeI64TruncSatF64U)
	add(sig{in: []wasm.ValueType{i32}, out: []wasm.ValueType{f32}},
		wasm.OpcodeF32ConvertI32S, wasm.OpcodeF32ConvertI32U, wasm.OpcodeF32ReinterpretI32)
	add(sig{in: []wasm.ValueType{i64}, out: []wasm.ValueType{f32}},
		wasm.OpcodeF32ConvertI64S, wasm.OpcodeF32ConvertI64U)
	add(sig{in: []wasm.ValueType{f64}, out: []wasm.ValueType{f32}}, wasm.OpcodeF32DemoteF64)
	add(sig{in: []wasm.ValueType{i32}, out: []wasm.ValueType{f64}},
		wasm.OpcodeF64ConvertI32S, wasm.OpcodeF64ConvertI32U)
	add(sig{in: []wasm.ValueType{i64}, out: []wasm.ValueType{f64}},
		wasm.OpcodeF64ConvertI64S, wasm.OpcodeF64ConvertI64U, wasm.OpcodeF64ReinterpretI64)
	add(sig{in: []wasm.ValueType{f32}, out: []wasm.ValueType{f64}}, wasm.OpcodeF64PromoteF32)

	// Sign extensions.
	add(sig{in: []wasm.ValueType{i32}, out: []wasm.ValueType{i32}},
		wasm.OpcodeI32Extend8S, wasm.OpcodeI32Extend16S)
	add(sig{in: []wasm.ValueType{i64}, out: []wasm.ValueType{i64}},
		wasm.OpcodeI64Extend8S, wasm.OpcodeI64Extend16S, wasm.OpcodeI64Extend32S)

	// Vector comparisons and bitwise operators.
	v2v := sig{in: []wasm.ValueType{v128}, out: []wasm.ValueType{v128}}
	vv2v := sig{in: []wasm.ValueType{v128, v128}, out: []wasm.ValueType{v128}}
	v2i := sig{in: []wasm.ValueType{v128}, out: []wasm.ValueType{i32}}
	shift := sig{in: []wasm.ValueType{v128, i32}, out: []wasm.ValueType{v128}}

	addRange(vv2v, wasm.OpcodeI8x16Eq, wasm.OpcodeF64x2Ge)
	add(vv2v, wasm.OpcodeI64x2Eq, wasm.OpcodeI64x2Ne, wasm.OpcodeI64x2LtS,
		wasm.OpcodeI64x2GtS, wasm.OpcodeI64x2LeS, wasm.OpcodeI64x2GeS)
	add(v2v, wasm.OpcodeV128Not)
	add(vv2v, wasm.OpcodeV128And, wasm.OpcodeV128AndNot, wasm.OpcodeV128Or, wasm.OpcodeV128Xor)
	add(sig{in: []wasm.ValueType{v128, v128, v128}, out: []wasm.ValueType{v128}}, wasm.OpcodeV128Bitselect)
	add(v2i, wasm.OpcodeV128AnyTrue,
		wasm.OpcodeI8x16AllTrue, wasm.OpcodeI16x8AllTrue, wasm.OpcodeI32x4AllTrue, wasm.OpcodeI64x2AllTrue,
		wasm.OpcodeI8x16BitMask, wasm.OpcodeI16x8BitMask, wasm.OpcodeI32x4BitMask, wasm.OpcodeI64x2BitMask)

	// Vector integer and float arithmetic.
	add(v2v,
		wasm.OpcodeI8x16Abs, wasm.OpcodeI8x16Neg, wasm.OpcodeI8x16Popcnt,
		wasm.OpcodeI16x8Abs, wasm.OpcodeI16x8Neg,
		wasm.OpcodeI32x4Abs, wasm.OpcodeI32x4Neg,
		wasm.OpcodeI64x2Abs, wasm.OpcodeI64x2Neg,
		wasm.OpcodeF32x4Abs, wasm.OpcodeF32x4Neg, wasm.OpcodeF32x4Sqrt,
		wasm.OpcodeF64x2Abs, wasm.OpcodeF64x2Neg, wasm.OpcodeF64x2Sqrt,
		wasm.OpcodeF32x4Ceil, wasm.OpcodeF32x4Floor, wasm.OpcodeF32x4Trunc, wasm.OpcodeF32x4Nearest,
		wasm.OpcodeF64x2Ceil, wasm.OpcodeF64x2Floor, wasm.OpcodeF64x2Trunc, wasm.OpcodeF64x2Nearest,
		wasm.OpcodeI16x8ExtaddPairwiseI8x16S, wasm.OpcodeI16x8ExtaddPairwiseI8x16U,
		wasm.OpcodeI32x4ExtaddPairwiseI16x8S, wasm.OpcodeI32x4ExtaddPairwiseI16x8U,
		wasm.OpcodeI16x8ExtendLowI8x16S, wasm.OpcodeI16x8ExtendHighI8x16S,
		wasm.OpcodeI16x8ExtendLowI8x16U, wasm.OpcodeI16x8ExtendHighI8x16U,
		wasm.OpcodeI32x4ExtendLowI16x8S, wasm.OpcodeI32x4ExtendHighI16x8S,
		wasm.OpcodeI32x4ExtendLowI16x8U, wasm.OpcodeI32x4ExtendHighI16x8U,
		wasm.OpcodeI64x2ExtendLowI32x4S, wasm.OpcodeI64x2ExtendHighI32x4S,
		wasm.OpcodeI64x2ExtendLowI32x4U, wasm.OpcodeI64x2ExtendHighI32x4U,
		wasm.OpcodeI32x4TruncSatF32x4S, wasm.OpcodeI32x4TruncSatF32x4U,
		wasm.OpcodeF32x4ConvertI32x4S, wasm.OpcodeF32x4ConvertI32x4U,
		wasm.OpcodeI32x4TruncSatF64x2SZero, wasm.OpcodeI32x4TruncSatF64x2UZero,
		wasm.OpcodeF64x2ConvertLowI32x4S, wasm.OpcodeF64x2ConvertLowI32x4U,
		wasm.OpcodeF32x4DemoteF64x2Zero, wasm.OpcodeF64x2PromoteLowF32x4)
	add(vv2v,
		wasm.OpcodeI8x16Swizzle,
		wasm.OpcodeI8x16NarrowI16x8S, wasm.OpcodeI8x16NarrowI16x8U,
		wasm.OpcodeI16x8NarrowI32x4S, wasm.OpcodeI16x8NarrowI32x4U,
		wasm.OpcodeI8x16Add, wasm.OpcodeI8x16AddSatS, wasm.OpcodeI8x16AddSatU,
		wasm.OpcodeI8x16Sub, wasm.OpcodeI8x16SubSatS, wasm.OpcodeI8x16SubSatU,
		wasm.OpcodeI8x16MinS, wasm.OpcodeI8x16MinU, wasm.OpcodeI8x16MaxS, wasm.OpcodeI8x16MaxU,
		wasm.OpcodeI8x16AvgrU,
		wasm.OpcodeI16x8Add, wasm.OpcodeI16x8AddSatS, wasm.OpcodeI16x8AddSatU,
		wasm.OpcodeI16x8Sub, wasm.OpcodeI16x8SubSatS, wasm.OpcodeI16x8SubSatU,
		wasm.OpcodeI16x8Mul, wasm.OpcodeI16x8MinS, wasm.OpcodeI16x8MinU,
		wasm.OpcodeI16x8MaxS, wasm.OpcodeI16x8MaxU, wasm.OpcodeI16x8AvgrU,
		wasm.OpcodeI16x8Q15mulrSatS,
		wasm.OpcodeI16x8ExtmulLowI8x16S, wasm.OpcodeI16x8ExtmulHighI8x16S,
		wasm.OpcodeI16x8ExtmulLowI8x16U, wasm.OpcodeI16x8ExtmulHighI8x16U,
		wasm.OpcodeI32x4Add, wasm.OpcodeI32x4Sub, wasm.OpcodeI32x4Mul,
		wasm.OpcodeI32x4MinS, wasm.OpcodeI32x4MinU, wasm.OpcodeI32x4MaxS, wasm.OpcodeI32x4MaxU,
		wasm.OpcodeI32x4DotI16x8S,
		wasm.OpcodeI32x4ExtmulLowI16x8S, wasm.OpcodeI32x4ExtmulHighI16x8S,
		wasm.OpcodeI32x4ExtmulLowI16x8U, wasm.OpcodeI32x4ExtmulHighI16x8U,
		wasm.OpcodeI64x2Add, wasm.OpcodeI64x2Sub, wasm.OpcodeI64x2Mul,
		wasm.OpcodeI64x2ExtmulLowI32x4S, wasm.OpcodeI64x2ExtmulHighI32x4S,
		wasm.OpcodeI64x2ExtmulLowI32x4U, wasm.OpcodeI64x2ExtmulHighI32x4U,
		wasm.OpcodeF32x4Add, wasm.OpcodeF32x4Sub, wasm.OpcodeF32x4Mul, wasm.OpcodeF32x4Div,
		wasm.OpcodeF32x4Min, wasm.OpcodeF32x4Max, wasm.OpcodeF32x4Pmin, wasm.OpcodeF32x4Pmax,
		wasm.OpcodeF64x2Add, wasm.OpcodeF64x2Sub, wasm.OpcodeF64x2Mul, wasm.OpcodeF64x2Div,
		wasm.OpcodeF64x2Min, wasm.OpcodeF64x2Max, wasm.OpcodeF64x2Pmin, wasm.OpcodeF64x2Pmax)
	add(shift,
		wasm.OpcodeI8x16Shl, wasm.OpcodeI8x16ShrS, wasm.OpcodeI8x16ShrU,
		wasm.OpcodeI16x8Shl, wasm.OpcodeI16x8ShrS, wasm.OpcodeI16x8ShrU,
		wasm.OpcodeI32x4Shl, wasm.OpcodeI32x4ShrS, wasm.OpcodeI32x4ShrU,
		wasm.OpcodeI64x2Shl, wasm.OpcodeI64x2ShrS, wasm.OpcodeI64x2ShrU)

	// Splats and lane accessors; the lane bound itself is checked by the
	// function validator via laneCounts.
	add(sig{in: []wasm.ValueType{i32}, out: []wasm.ValueType{v128}},
		wasm.OpcodeI8x16Splat, wasm.OpcodeI16x8Splat, wasm.OpcodeI32x4Splat)
	add(sig{in: []wasm.ValueType{i64}, out: []wasm.ValueType{v128}}, wasm.OpcodeI64x2Splat)
	add(sig{in: []wasm.ValueType{f32}, out: []wasm.ValueType{v128}}, wasm.OpcodeF32x4Splat)
	add(sig{in: []wasm.ValueType{f64}, out: []wasm.ValueType{v128}}, wasm.OpcodeF64x2Splat)
	add(v2i, wasm.OpcodeI8x16ExtractLaneS, wasm.OpcodeI8x16ExtractLaneU,
		wasm.OpcodeI16x8ExtractLaneS, wasm.OpcodeI16x8ExtractLaneU, wasm.OpcodeI32x4ExtractLane)
	add(sig{in: []wasm.ValueType{v128}, out: []wasm.ValueType{i64}}, wasm.OpcodeI64x2ExtractLane)
	add(sig{in: []wasm.ValueType{v128}, out: []wasm.ValueType{f32}}, wasm.OpcodeF32x4ExtractLane)
	add(sig{in: []wasm.ValueType{v128}, out: []wasm.ValueType{f64}}, wasm.OpcodeF64x2ExtractLane)
	add(sig{in: []wasm.ValueType{v128, i32}, out: []wasm.ValueType{v128}},
		wasm.OpcodeI8x16ReplaceLane, wasm.OpcodeI16x8ReplaceLane, wasm.OpcodeI32x4ReplaceLane)
	add(sig{in: []wasm.ValueType{v128, i64}, out: []wasm.ValueType{v128}}, wasm.OpcodeI64x2ReplaceLane)
	add(sig{in: []wasm.ValueType{v128, f32}, out: []wasm.ValueType{v128}}, wasm.OpcodeF32x4ReplaceLane)
	add(sig{in: []wasm.ValueType{v128, f64}, out: []wasm.ValueType{v128}}, wasm.OpcodeF64x2ReplaceLane)
	add(vv2v, wasm.OpcodeI8x16Shuffle)

	return m
}

// laneCounts gives the lane bound of the extract/replace family and the lane
// memory accesses.
var laneCounts = map[wasm.Opcode]byte{
	wasm.OpcodeI8x16ExtractLaneS: 16,
	wasm.OpcodeI8x16ExtractLaneU: 16,
	wasm.OpcodeI8x16ReplaceLane:  16,
	wasm.OpcodeI16x8ExtractLaneS: 8,
	wasm.OpcodeI16x8ExtractLaneU: 8,
	wasm.OpcodeI16x8ReplaceLane:  8,
	wasm.OpcodeI32x4ExtractLane:  4,
	wasm.OpcodeI32x4ReplaceLane:  4,
	wasm.OpcodeI64x2ExtractLane:  2,
	wasm.OpcodeI64x2ReplaceLane:  2,
	wasm.OpcodeF32x4ExtractLane:  4,
	wasm.OpcodeF32x4ReplaceLane:  4,
	wasm.OpcodeF64x2ExtractLane:  2,
	wasm.OpcodeF64x2ReplaceLane:  2,
	wasm.OpcodeV128Load8Lane:     16,
	wasm.OpcodeV128Load16Lane:    8,
	wasm.OpcodeV128Load32Lane:    4,
	wasm.OpcodeV128Load64Lane:    2,
	wasm.OpcodeV128Store8Lane:    16,
	wasm.OpcodeV128Store16Lane:   8,
	wasm.OpcodeV128Store32Lane:   4,
	wasm.OpcodeV128Store64Lane:   2,
}

// memAccess describes a load, store or atomic access: the natural size in
// bytes its alignment hint is bounded by, and its stack effect.
type memAccess struct {
	size uint32
	sig  sig
}

var memAccesses = buildMemAccesses()

func buildMemAccesses() map[wasm.Opcode]memAccess {
	m := make(map[wasm.Opcode]memAccess, 128)

	add := func(op wasm.Opcode, size uint32, in, out []wasm.ValueType) {
		m[op] = memAccess{size: size, sig: sig{in: in, out: out}}
	}

	load := func(op wasm.Opcode, size uint32, t wasm.ValueType) {
		add(op, size, []wasm.ValueType{i32}, []wasm.ValueType{t})
	}
	store := func(op wasm.Opcode, size uint32, t wasm.ValueType) {
		add(op, size, []wasm.ValueType{i32, t}, nil)
	}

	load(wasm.OpcodeI32Load, 4, i32)
	load(wasm.OpcodeI64Load, 8, i64)
	load(wasm.OpcodeF32Load, 4, f32)
	load(wasm.OpcodeF64Load, 8, f64)
	load(wasm.OpcodeI32Load8S, 1, i32)
	load(wasm.OpcodeI32Load8U, 1, i32)
	load(wasm.OpcodeI32Load16S, 2, i32)
	load(wasm.OpcodeI32Load16U, 2, i32)
	load(wasm.OpcodeI64Load8S, 1, i64)
	load(wasm.OpcodeI64Load8U, 1, i64)
	load(wasm.OpcodeI64Load16S, 2, i64)
	load(wasm.OpcodeI64Load16U, 2, i64)
	load(wasm.OpcodeI64Load32S, 4, i64)
	load(wasm.OpcodeI64Load32U, 4, i64)
	store(wasm.OpcodeI32Store, 4, i32)
	store(wasm.OpcodeI64Store, 8, i64)
	store(wasm.OpcodeF32Store, 4, f32)
	store(wasm.OpcodeF64Store, 8, f64)
	store(wasm.OpcodeI32Store8, 1, i32)
	store(wasm.OpcodeI32Store16, 2, i32)
	store(wasm.OpcodeI64Store8, 1, i64)
	store(wasm.OpcodeI64Store16, 2, i64)
	store(wasm.OpcodeI64Store32, 4, i64)

	load(wasm.OpcodeV128Load, 16, v128)
	load(wasm.OpcodeV128Load8x8S, 8, v128)
	load(wasm.OpcodeV128Load8x8U, 8, v128)
	load(wasm.OpcodeV128Load16x4S, 8, v128)
	load(wasm.OpcodeV128Load16x4U, 8, v128)
	load(wasm.OpcodeV128Load32x2S, 8, v128)
	load(wasm.OpcodeV128Load32x2U, 8, v128)
	load(wasm.OpcodeV128Load8Splat, 1, v128)
	load(wasm.OpcodeV128Load16Splat, 2, v128)
	load(wasm.OpcodeV128Load32Splat, 4, v128)
	load(wasm.OpcodeV128Load64Splat, 8, v128)
	load(wasm.OpcodeV128Load32Zero, 4, v128)
	load(wasm.OpcodeV128Load64Zero, 8, v128)
	store(wasm.OpcodeV128Store, 16, v128)
	for i, op := range []wasm.Opcode{
		wasm.OpcodeV128Load8Lane, wasm.OpcodeV128Load16Lane,
		wasm.OpcodeV128Load32Lane, wasm.OpcodeV128Load64Lane,
	} {
		add(op, 1<<i, []wasm.ValueType{i32, v128}, []wasm.ValueType{v128})
	}
	for i, op := range []wasm.Opcode{
		wasm.OpcodeV128Store8Lane, wasm.OpcodeV128Store16Lane,
		wasm.OpcodeV128Store32Lane, wasm.OpcodeV128Store64Lane,
	} {
		add(op, 1<<i, []wasm.ValueType{i32, v128}, nil)
	}

	add(wasm.OpcodeMemoryAtomicNotify, 4, []wasm.ValueType{i32, i32}, []wasm.ValueType{i32})
	add(wasm.OpcodeMemoryAtomicWait32, 4, []wasm.ValueType{i32, i32, i64}, []wasm.ValueType{i32})
	add(wasm.OpcodeMemoryAtomicWait64, 8, []wasm.ValueType{i32, i64, i64}, []wasm.ValueType{i32})

	load(wasm.OpcodeI32AtomicLoad, 4, i32)
	load(wasm.OpcodeI64AtomicLoad, 8, i64)
	load(wasm.OpcodeI32AtomicLoad8U, 1, i32)
	load(wasm.OpcodeI32AtomicLoad16U, 2, i32)
	load(wasm.OpcodeI64AtomicLoad8U, 1, i64)
	load(wasm.OpcodeI64AtomicLoad16U, 2, i64)
	load(wasm.OpcodeI64AtomicLoad32U, 4, i64)
	store(wasm.OpcodeI32AtomicStore, 4, i32)
	store(wasm.OpcodeI64AtomicStore, 8, i64)
	store(wasm.OpcodeI32AtomicStore8, 1, i32)
	store(wasm.OpcodeI32AtomicStore16, 2, i32)
	store(wasm.OpcodeI64AtomicStore8, 1, i64)
	store(wasm.OpcodeI64AtomicStore16, 2, i64)
	store(wasm.OpcodeI64AtomicStore32, 4, i64)

	// The read-modify-write families repeat the same (type, size) pattern
	// at a fixed stride.
	rmwShape := []struct {
		t    wasm.ValueType
		size uint32
	}{
		{i32, 4}, {i64, 8}, {i32, 1}, {i32, 2}, {i64, 1}, {i64, 2}, {i64, 4},
	}
	for _, base := range []wasm.Opcode{
		wasm.OpcodeI32AtomicRmwAdd, wasm.OpcodeI32AtomicRmwSub,
		wasm.OpcodeI32AtomicRmwAnd, wasm.OpcodeI32AtomicRmwOr,
		wasm.OpcodeI32AtomicRmwXor, wasm.OpcodeI32AtomicRmwXchg,
	} {
		for i, shape := range rmwShape {
			add(base+wasm.Opcode(i), shape.size,
				[]wasm.ValueType{i32, shape.t}, []wasm.ValueType{shape.t})
		}
	}
	for i, shape := range rmwShape {
		add(wasm.OpcodeI32AtomicRmwCmpxchg+wasm.Opcode(i), shape.size,
			[]wasm.ValueType{i32, shape.t, shape.t}, []wasm.ValueType{shape.t})
	}

	return m
}
