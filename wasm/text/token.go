// Package text lexes the WebAssembly Text Format into a token stream.
//
// The lexer is a pull API: each Lex call returns one token with a precise
// location into the source. It is total: any byte slice lexes to a token or
// to an Invalid* token that advances at least one byte, so a parser above it
// can always make progress.
//
// See https://www.w3.org/TR/2019/REC-wasm-core-1-20191205/#text-format%E2%91%A0
package text

import (
	"github.com/wasmkit/wasmkit/wasm"
)

// TokenType is the category of a token.
type TokenType byte

const (
	// TokenInvalid is a byte that cannot begin any token; it is consumed
	// alone so lexing can continue.
	TokenInvalid TokenType = iota
	// TokenInvalidText is an unterminated string, a string containing an
	// unescaped newline, or one with a malformed escape.
	TokenInvalidText
	// TokenInvalidBlockComment is a block comment still open at end of input.
	TokenInvalidBlockComment
	// TokenInvalidLineComment is a line comment terminated by end of input
	// rather than a newline.
	TokenInvalidLineComment
	// TokenEOF marks the end of input. It has a zero-length location.
	TokenEOF

	TokenLpar
	TokenRpar
	// TokenLparAnn opens an annotation, ex. "(@name".
	TokenLparAnn
	TokenWhitespace
	TokenLineComment
	TokenBlockComment
	// TokenID is a '$'-prefixed identifier.
	TokenID
	// TokenText is a double-quoted string; Text carries the decoded length.
	TokenText
	// TokenNat, TokenInt and TokenFloat are numeric literals; Literal carries
	// sign, base and underscore details.
	TokenNat
	TokenInt
	TokenFloat
	// TokenValueType is a numeric or vector type keyword; ValueType carries
	// which.
	TokenValueType
	// TokenReferenceType is a reference type keyword; ValueType carries
	// which.
	TokenReferenceType
	// TokenReserved is a run of reserved characters that is no other token.
	TokenReserved
	// TokenOffsetEqNat and TokenAlignEqNat are the "offset=N" and "align=N"
	// forms of a memarg.
	TokenOffsetEqNat
	TokenAlignEqNat

	// Instruction keywords, categorized by their immediate. All carry Opcode.

	TokenBareInstr
	TokenVarInstr
	TokenBlockInstr
	TokenMemoryInstr
	TokenSimdLaneInstr
	TokenSimdShuffleInstr
	TokenSimdConstInstr
	TokenBrTableInstr
	TokenBrOnExnInstr
	TokenCallIndirectInstr
	TokenTableInitInstr
	TokenTableCopyInstr
	TokenSelectInstr
	TokenRefNullInstr
	TokenRefFuncInstr
	TokenI32ConstInstr
	TokenI64ConstInstr
	TokenF32ConstInstr
	TokenF64ConstInstr

	// Structural keywords. Else, End and Catch double as instructions and
	// carry Opcode.

	TokenModule
	TokenFunc
	TokenTypeKw
	TokenTable
	TokenMemory
	TokenGlobal
	TokenElem
	TokenData
	TokenStart
	TokenImport
	TokenExport
	TokenParam
	TokenResult
	TokenLocal
	TokenMut
	TokenOffset
	TokenItem
	TokenEvent
	TokenThen
	TokenElse
	TokenEnd
	TokenCatch
	TokenQuote
	TokenBinary
	TokenDeclare
	TokenShared
	TokenRegister
	TokenInvoke
	TokenGet
	TokenAssertReturn
	TokenAssertTrap
	TokenAssertMalformed
	TokenAssertInvalid
	TokenAssertUnlinkable
	TokenAssertExhaustion
)

// IsInstr returns true for the instruction keyword categories, including the
// structural tokens that double as instructions.
func (t TokenType) IsInstr() bool {
	return (t >= TokenBareInstr && t <= TokenF64ConstInstr) ||
		t == TokenElse || t == TokenEnd || t == TokenCatch
}

var tokenTypeNames = map[TokenType]string{
	TokenInvalid:             "invalid",
	TokenInvalidText:         "invalid text",
	TokenInvalidBlockComment: "invalid block comment",
	TokenInvalidLineComment:  "invalid line comment",
	TokenEOF:                 "eof",
	TokenLpar:                "(",
	TokenRpar:                ")",
	TokenLparAnn:             "(@",
	TokenWhitespace:          "whitespace",
	TokenLineComment:         "line comment",
	TokenBlockComment:        "block comment",
	TokenID:                  "id",
	TokenText:                "text",
	TokenNat:                 "nat",
	TokenInt:                 "int",
	TokenFloat:               "float",
	TokenValueType:           "value type",
	TokenReferenceType:       "reference type",
	TokenReserved:            "reserved",
	TokenOffsetEqNat:         "offset=",
	TokenAlignEqNat:          "align=",
	TokenBareInstr:           "instr",
	TokenVarInstr:            "var instr",
	TokenBlockInstr:          "block instr",
	TokenMemoryInstr:         "memory instr",
	TokenSimdLaneInstr:       "simd lane instr",
	TokenSimdShuffleInstr:    "simd shuffle instr",
	TokenSimdConstInstr:      "simd const instr",
	TokenBrTableInstr:        "br_table instr",
	TokenBrOnExnInstr:        "br_on_exn instr",
	TokenCallIndirectInstr:   "call_indirect instr",
	TokenTableInitInstr:      "table.init instr",
	TokenTableCopyInstr:      "table.copy instr",
	TokenSelectInstr:         "select instr",
	TokenRefNullInstr:        "ref.null instr",
	TokenRefFuncInstr:        "ref.func instr",
	TokenI32ConstInstr:       "i32.const instr",
	TokenI64ConstInstr:       "i64.const instr",
	TokenF32ConstInstr:       "f32.const instr",
	TokenF64ConstInstr:       "f64.const instr",
	TokenModule:              "module",
	TokenFunc:                "func",
	TokenTypeKw:              "type",
	TokenTable:               "table",
	TokenMemory:              "memory",
	TokenGlobal:              "global",
	TokenElem:                "elem",
	TokenData:                "data",
	TokenStart:               "start",
	TokenImport:              "import",
	TokenExport:              "export",
	TokenParam:               "param",
	TokenResult:              "result",
	TokenLocal:               "local",
	TokenMut:                 "mut",
	TokenOffset:              "offset",
	TokenItem:                "item",
	TokenEvent:               "event",
	TokenThen:                "then",
	TokenElse:                "else",
	TokenEnd:                 "end",
	TokenCatch:               "catch",
	TokenQuote:               "quote",
	TokenBinary:              "binary",
	TokenDeclare:             "declare",
	TokenShared:              "shared",
	TokenRegister:            "register",
	TokenInvoke:              "invoke",
	TokenGet:                 "get",
	TokenAssertReturn:        "assert_return",
	TokenAssertTrap:          "assert_trap",
	TokenAssertMalformed:     "assert_malformed",
	TokenAssertInvalid:       "assert_invalid",
	TokenAssertUnlinkable:    "assert_unlinkable",
	TokenAssertExhaustion:    "assert_exhaustion",
}

// String returns a short name for the category.
func (t TokenType) String() string {
	if s, ok := tokenTypeNames[t]; ok {
		return s
	}
	return "unknown"
}

// Sign is the leading sign of a numeric literal.
type Sign byte

const (
	SignNone Sign = iota
	SignPlus
	SignMinus
)

// LiteralKind discriminates the forms a numeric literal can take.
type LiteralKind byte

const (
	// LiteralNumber is a plain decimal literal.
	LiteralNumber LiteralKind = iota
	// LiteralHexNumber is a 0x-prefixed hexadecimal literal.
	LiteralHexNumber
	// LiteralInfinity is "inf" with an optional sign.
	LiteralInfinity
	// LiteralNan is "nan" with an optional sign.
	LiteralNan
	// LiteralNanPayload is "nan:0x…" with an explicit payload.
	LiteralNanPayload
)

// LiteralInfo describes a numeric literal token.
type LiteralInfo struct {
	Sign           Sign
	Kind           LiteralKind
	HasUnderscores bool
}

// TextInfo describes a string token.
type TextInfo struct {
	// Raw is the source bytes including the quotes.
	Raw []byte
	// ByteLen is the length of the decoded byte string.
	ByteLen uint32
}

// OpcodeInfo describes an instruction keyword: the opcode it spells, and the
// feature bit gating it. Legacy spellings map to the same opcode as their
// canonical form.
type OpcodeInfo struct {
	Opcode   wasm.Opcode
	Features wasm.Features
}

// Token is one lexed token. Which payload fields are meaningful depends on
// Type.
type Token struct {
	Type TokenType
	Loc  wasm.Location

	Opcode    OpcodeInfo     // instruction keywords
	Literal   LiteralInfo    // TokenNat, TokenInt, TokenFloat, offset=/align=
	Text      TextInfo       // TokenText
	ValueType wasm.ValueType // TokenValueType, TokenReferenceType
}

// charClass bits of the 7-bit ASCII table driving the lexer.
const (
	classReserved = 1 << iota
	classKeyword
	classHexDigit
	classDigit
)

// charClasses classifies the 128 ASCII characters:
// digit implies hex digit implies reserved, keyword (lowercase letter)
// implies reserved, and reserved is printable ASCII minus `"(),;[]{}`.
var charClasses = buildCharClasses()

func buildCharClasses() (table [128]byte) {
	for c := 0; c < 128; c++ {
		var mask byte
		if c >= '0' && c <= '9' {
			mask |= classDigit | classHexDigit
		}
		if (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F') {
			mask |= classHexDigit
		}
		if c >= 'a' && c <= 'z' {
			mask |= classKeyword
		}
		if c >= '!' && c <= '~' {
			switch c {
			case '"', '(', ')', ',', ';', '[', ']', '{', '}':
			default:
				mask |= classReserved
			}
		}
		table[c] = mask
	}
	return
}

func isReserved(b byte) bool { return b < 128 && charClasses[b]&classReserved != 0 }
func isDigit(b byte) bool    { return b < 128 && charClasses[b]&classDigit != 0 }
func isHexDigit(b byte) bool { return b < 128 && charClasses[b]&classHexDigit != 0 }
