package text

import "github.com/wasmkit/wasmkit/wasm"

// keywordInfo is one row of the keyword table: the token category and, per
// category, an opcode with its gating features or a value type.
type keywordInfo struct {
	tt    TokenType
	op    wasm.Opcode
	hasOp bool
	vt    wasm.ValueType
	feat  wasm.Features
}

// keywords maps every keyword spelling, canonical and legacy, to its token.
// The table is assembled from the opcode name table plus the declarative
// entries below, so a new opcode only needs a name to become lexable.
var keywords = buildKeywords()

// structuralKeywords are the non-instruction keywords of the text format and
// the script extension used by the specification test suites.
var structuralKeywords = map[string]TokenType{
	"module":            TokenModule,
	"func":              TokenFunc,
	"type":              TokenTypeKw,
	"table":             TokenTable,
	"memory":            TokenMemory,
	"global":            TokenGlobal,
	"elem":              TokenElem,
	"data":              TokenData,
	"start":             TokenStart,
	"import":            TokenImport,
	"export":            TokenExport,
	"param":             TokenParam,
	"result":            TokenResult,
	"local":             TokenLocal,
	"mut":               TokenMut,
	"offset":            TokenOffset,
	"item":              TokenItem,
	"event":             TokenEvent,
	"then":              TokenThen,
	"quote":             TokenQuote,
	"binary":            TokenBinary,
	"declare":           TokenDeclare,
	"shared":            TokenShared,
	"register":          TokenRegister,
	"invoke":            TokenInvoke,
	"get":               TokenGet,
	"assert_return":     TokenAssertReturn,
	"assert_trap":       TokenAssertTrap,
	"assert_malformed":  TokenAssertMalformed,
	"assert_invalid":    TokenAssertInvalid,
	"assert_unlinkable": TokenAssertUnlinkable,
	"assert_exhaustion": TokenAssertExhaustion,
}

var valueTypeKeywords = map[string]wasm.ValueType{
	"i32":  wasm.ValueTypeI32,
	"i64":  wasm.ValueTypeI64,
	"f32":  wasm.ValueTypeF32,
	"f64":  wasm.ValueTypeF64,
	"v128": wasm.ValueTypeV128,
}

var refTypeKeywords = map[string]wasm.RefType{
	"funcref":   wasm.ValueTypeFuncref,
	"externref": wasm.ValueTypeExternref,
	"exnref":    wasm.ValueTypeExnref,
	// anyref was the working name of externref.
	"anyref": wasm.ValueTypeExternref,
}

// legacySpellings maps retired spellings to their opcode. Both the '/' and
// '_' separators of the conversion family are read; only the canonical
// spelling is emitted.
var legacySpellings = map[string]wasm.Opcode{
	"i32.wrap/i64":        wasm.OpcodeI32WrapI64,
	"i32.trunc_s/f32":     wasm.OpcodeI32TruncF32S,
	"i32.trunc_u/f32":     wasm.OpcodeI32TruncF32U,
	"i32.trunc_s/f64":     wasm.OpcodeI32TruncF64S,
	"i32.trunc_u/f64":     wasm.OpcodeI32TruncF64U,
	"i64.extend_s/i32":    wasm.OpcodeI64ExtendI32S,
	"i64.extend_u/i32":    wasm.OpcodeI64ExtendI32U,
	"i64.trunc_s/f32":     wasm.OpcodeI64TruncF32S,
	"i64.trunc_u/f32":     wasm.OpcodeI64TruncF32U,
	"i64.trunc_s/f64":     wasm.OpcodeI64TruncF64S,
	"i64.trunc_u/f64":     wasm.OpcodeI64TruncF64U,
	"f32.convert_s/i32":   wasm.OpcodeF32ConvertI32S,
	"f32.convert_u/i32":   wasm.OpcodeF32ConvertI32U,
	"f32.convert_s/i64":   wasm.OpcodeF32ConvertI64S,
	"f32.convert_u/i64":   wasm.OpcodeF32ConvertI64U,
	"f32.demote/f64":      wasm.OpcodeF32DemoteF64,
	"f64.convert_s/i32":   wasm.OpcodeF64ConvertI32S,
	"f64.convert_u/i32":   wasm.OpcodeF64ConvertI32U,
	"f64.convert_s/i64":   wasm.OpcodeF64ConvertI64S,
	"f64.convert_u/i64":   wasm.OpcodeF64ConvertI64U,
	"f64.promote/f32":     wasm.OpcodeF64PromoteF32,
	"i32.reinterpret/f32": wasm.OpcodeI32ReinterpretF32,
	"i64.reinterpret/f64": wasm.OpcodeI64ReinterpretF64,
	"f32.reinterpret/i32": wasm.OpcodeF32ReinterpretI32,
	"f64.reinterpret/i64": wasm.OpcodeF64ReinterpretI64,

	"i32.trunc_s:sat/f32": wasm.OpcodeI32TruncSatF32S,
	"i32.trunc_u:sat/f32": wasm.OpcodeI32TruncSatF32U,
	"i32.trunc_s:sat/f64": wasm.OpcodeI32TruncSatF64S,
	"i32.trunc_u:sat/f64": wasm.OpcodeI32TruncSatF64U,
	"i64.trunc_s:sat/f32": wasm.OpcodeI64TruncSatF32S,
	"i64.trunc_u:sat/f32": wasm.OpcodeI64TruncSatF32U,
	"i64.trunc_s:sat/f64": wasm.OpcodeI64TruncSatF64S,
	"i64.trunc_u:sat/f64": wasm.OpcodeI64TruncSatF64U,

	"get_local":  wasm.OpcodeLocalGet,
	"set_local":  wasm.OpcodeLocalSet,
	"tee_local":  wasm.OpcodeLocalTee,
	"get_global": wasm.OpcodeGlobalGet,
	"set_global": wasm.OpcodeGlobalSet,

	"current_memory": wasm.OpcodeMemorySize,
	"grow_memory":    wasm.OpcodeMemoryGrow,

	"v8x16.shuffle": wasm.OpcodeI8x16Shuffle,
	"v8x16.swizzle": wasm.OpcodeI8x16Swizzle,

	"atomic.notify":   wasm.OpcodeMemoryAtomicNotify,
	"i32.atomic.wait": wasm.OpcodeMemoryAtomicWait32,
	"i64.atomic.wait": wasm.OpcodeMemoryAtomicWait64,
}

func buildKeywords() map[string]keywordInfo {
	m := make(map[string]keywordInfo, 700)

	for op, name := range wasm.OpcodeNames() {
		if op == wasm.OpcodeTypedSelect {
			// Shares its spelling with select; the typed form is chosen by
			// the parser when a result annotation follows.
			continue
		}
		m[name] = instrKeyword(op)
	}
	for spelling, op := range legacySpellings {
		m[spelling] = instrKeyword(op)
	}

	for name, tt := range structuralKeywords {
		m[name] = keywordInfo{tt: tt}
	}
	// else, end and catch double as structural keywords and instructions.
	m["else"] = keywordInfo{tt: TokenElse, op: wasm.OpcodeElse, hasOp: true}
	m["end"] = keywordInfo{tt: TokenEnd, op: wasm.OpcodeEnd, hasOp: true}
	m["catch"] = keywordInfo{tt: TokenCatch, op: wasm.OpcodeCatch, hasOp: true,
		feat: wasm.FeatureExceptions}

	for name, vt := range valueTypeKeywords {
		m[name] = keywordInfo{tt: TokenValueType, vt: vt}
	}
	for name, rt := range refTypeKeywords {
		m[name] = keywordInfo{tt: TokenReferenceType, vt: rt,
			feat: wasm.FeatureReferenceTypes}
	}
	m["v128"] = keywordInfo{tt: TokenValueType, vt: wasm.ValueTypeV128,
		feat: wasm.FeatureSIMD}
	m["exnref"] = keywordInfo{tt: TokenReferenceType, vt: wasm.ValueTypeExnref,
		feat: wasm.FeatureExceptions}

	return m
}

func instrKeyword(op wasm.Opcode) keywordInfo {
	return keywordInfo{
		tt:    instrTokenType(op),
		op:    op,
		hasOp: true,
		feat:  wasm.OpcodeFeature(op),
	}
}

// instrTokenType picks the token category of an opcode keyword: special
// categories first, then by immediate shape.
func instrTokenType(op wasm.Opcode) TokenType {
	switch op {
	case wasm.OpcodeBlock, wasm.OpcodeLoop, wasm.OpcodeIf, wasm.OpcodeTry:
		return TokenBlockInstr
	case wasm.OpcodeElse:
		return TokenElse
	case wasm.OpcodeEnd:
		return TokenEnd
	case wasm.OpcodeCatch:
		return TokenCatch
	case wasm.OpcodeBrTable:
		return TokenBrTableInstr
	case wasm.OpcodeBrOnExn:
		return TokenBrOnExnInstr
	case wasm.OpcodeCallIndirect, wasm.OpcodeReturnCallIndirect:
		return TokenCallIndirectInstr
	case wasm.OpcodeSelect:
		return TokenSelectInstr
	case wasm.OpcodeRefNull:
		return TokenRefNullInstr
	case wasm.OpcodeRefFunc:
		return TokenRefFuncInstr
	case wasm.OpcodeI32Const:
		return TokenI32ConstInstr
	case wasm.OpcodeI64Const:
		return TokenI64ConstInstr
	case wasm.OpcodeF32Const:
		return TokenF32ConstInstr
	case wasm.OpcodeF64Const:
		return TokenF64ConstInstr
	case wasm.OpcodeV128Const:
		return TokenSimdConstInstr
	case wasm.OpcodeI8x16Shuffle:
		return TokenSimdShuffleInstr
	case wasm.OpcodeTableInit:
		return TokenTableInitInstr
	case wasm.OpcodeTableCopy:
		return TokenTableCopyInstr
	}

	switch wasm.ImmKindOf(op) {
	case wasm.ImmMemArg:
		return TokenMemoryInstr
	case wasm.ImmMemArgLane, wasm.ImmLane:
		return TokenSimdLaneInstr
	case wasm.ImmIndex, wasm.ImmSegment:
		return TokenVarInstr
	default:
		// ImmU8 covers memory.size/grow and the misc reserved-byte forms,
		// spelled with no operand in the text format.
		return TokenBareInstr
	}
}
