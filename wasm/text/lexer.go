package text

import "github.com/wasmkit/wasmkit/wasm"

// Lex returns the token starting at offset pos in source. At end of input it
// returns a zero-length TokenEOF; otherwise the token consumes at least one
// byte, so repeated calls always terminate.
//
// Whitespace and comments are tokens too; use LexNoWhitespace to skip them.
func Lex(source []byte, pos uint32) Token {
	if pos >= uint32(len(source)) {
		return Token{Type: TokenEOF, Loc: wasm.Location{Offset: uint32(len(source))}}
	}

	b := source[pos]
	switch b {
	case '(':
		if pos+1 < uint32(len(source)) {
			switch source[pos+1] {
			case ';':
				return lexBlockComment(source, pos)
			case '@':
				return lexAnnotation(source, pos)
			}
		}
		return token(TokenLpar, pos, 1)

	case ')':
		return token(TokenRpar, pos, 1)

	case ';':
		if pos+1 < uint32(len(source)) && source[pos+1] == ';' {
			return lexLineComment(source, pos)
		}
		return token(TokenInvalid, pos, 1)

	case ' ', '\t', '\r', '\n':
		end := pos + 1
		for end < uint32(len(source)) {
			switch source[end] {
			case ' ', '\t', '\r', '\n':
				end++
				continue
			}
			break
		}
		return token(TokenWhitespace, pos, end-pos)

	case '"':
		return lexText(source, pos)
	}

	if !isReserved(b) {
		return token(TokenInvalid, pos, 1)
	}

	// Take the maximal run of reserved characters, then classify it whole.
	// A keyword followed by more reserved characters is not that keyword,
	// which realises the "no trailing reserved character" rule.
	end := pos + 1
	for end < uint32(len(source)) && isReserved(source[end]) {
		end++
	}
	return classifyReserved(source[pos:end], pos, end-pos)
}

// LexNoWhitespace returns the next token that is not whitespace or a comment.
func LexNoWhitespace(source []byte, pos uint32) Token {
	for {
		tok := Lex(source, pos)
		switch tok.Type {
		case TokenWhitespace, TokenLineComment, TokenBlockComment:
			pos = tok.Loc.End()
		default:
			return tok
		}
	}
}

func token(tt TokenType, pos, length uint32) Token {
	return Token{Type: tt, Loc: wasm.Location{Offset: pos, Length: length}}
}

func classifyReserved(run []byte, pos, length uint32) Token {
	if kw, ok := keywords[string(run)]; ok {
		tok := token(kw.tt, pos, length)
		if kw.hasOp {
			tok.Opcode = OpcodeInfo{Opcode: kw.op, Features: kw.feat}
		} else if kw.tt == TokenValueType || kw.tt == TokenReferenceType {
			tok.ValueType = kw.vt
		}
		return tok
	}

	if run[0] == '$' {
		if length == 1 {
			return token(TokenReserved, pos, length)
		}
		return token(TokenID, pos, length)
	}

	if prefixed, tt := matchNameEqNum(run, "offset=", TokenOffsetEqNat); prefixed != nil {
		return classifyEqNat(prefixed, tt, pos, length)
	}
	if prefixed, tt := matchNameEqNum(run, "align=", TokenAlignEqNat); prefixed != nil {
		return classifyEqNat(prefixed, tt, pos, length)
	}

	if tt, info, ok := classifyNumber(run); ok {
		tok := token(tt, pos, length)
		tok.Literal = info
		return tok
	}

	return token(TokenReserved, pos, length)
}

func matchNameEqNum(run []byte, prefix string, tt TokenType) ([]byte, TokenType) {
	if len(run) <= len(prefix) || string(run[:len(prefix)]) != prefix {
		return nil, 0
	}
	return run[len(prefix):], tt
}

func classifyEqNat(num []byte, tt TokenType, pos, length uint32) Token {
	ntt, info, ok := classifyNumber(num)
	if !ok || ntt != TokenNat {
		return token(TokenReserved, pos, length)
	}
	tok := token(tt, pos, length)
	tok.Literal = info
	return tok
}

func lexAnnotation(source []byte, pos uint32) Token {
	// "(@" then the annotation id: one or more reserved characters.
	end := pos + 2
	for end < uint32(len(source)) && isReserved(source[end]) {
		end++
	}
	return token(TokenLparAnn, pos, end-pos)
}

func lexLineComment(source []byte, pos uint32) Token {
	end := pos + 2
	for end < uint32(len(source)) {
		if source[end] == '\n' {
			return token(TokenLineComment, pos, end+1-pos)
		}
		end++
	}
	return token(TokenInvalidLineComment, pos, end-pos)
}

func lexBlockComment(source []byte, pos uint32) Token {
	// "(;" opens, ";)" closes, and comments nest.
	depth := 1
	i := pos + 2
	for i < uint32(len(source)) {
		switch source[i] {
		case '(':
			if i+1 < uint32(len(source)) && source[i+1] == ';' {
				depth++
				i += 2
				continue
			}
		case ';':
			if i+1 < uint32(len(source)) && source[i+1] == ')' {
				depth--
				i += 2
				if depth == 0 {
					return token(TokenBlockComment, pos, i-pos)
				}
				continue
			}
		}
		i++
	}
	return token(TokenInvalidBlockComment, pos, i-pos)
}

func lexText(source []byte, pos uint32) Token {
	i := pos + 1
	var byteLen uint32
	invalid := false

	for {
		if i >= uint32(len(source)) {
			// Unterminated.
			tok := token(TokenInvalidText, pos, i-pos)
			return tok
		}
		c := source[i]
		switch c {
		case '"':
			i++
			if invalid {
				return token(TokenInvalidText, pos, i-pos)
			}
			tok := token(TokenText, pos, i-pos)
			tok.Text = TextInfo{Raw: source[pos:i:i], ByteLen: byteLen}
			return tok

		case '\n':
			// A raw newline cannot appear in a string; finish the token at
			// the closing quote or EOF all the same so lexing can continue.
			invalid = true
			i++

		case '\\':
			if i+1 >= uint32(len(source)) {
				invalid = true
				i++
				continue
			}
			esc := source[i+1]
			switch esc {
			case 't', 'n', 'r', '"', '\'', '\\':
				byteLen++
				i += 2
			default:
				if isHexDigit(esc) && i+2 < uint32(len(source)) && isHexDigit(source[i+2]) {
					byteLen++
					i += 3
				} else {
					invalid = true
					i += 2
				}
			}

		default:
			byteLen++
			i++
		}
	}
}

// DecodeText unescapes the raw source bytes of a TokenText, including the
// surrounding quotes. ok is false on a malformed string, which Lex already
// reports as TokenInvalidText.
func DecodeText(raw []byte) (out []byte, ok bool) {
	if len(raw) < 2 || raw[0] != '"' || raw[len(raw)-1] != '"' {
		return nil, false
	}
	body := raw[1 : len(raw)-1]
	out = make([]byte, 0, len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			out = append(out, c)
			continue
		}
		i++
		if i >= len(body) {
			return nil, false
		}
		switch e := body[i]; e {
		case 't':
			out = append(out, '\t')
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case '"', '\'', '\\':
			out = append(out, e)
		default:
			if i+1 < len(body) && isHexDigit(e) && isHexDigit(body[i+1]) {
				out = append(out, hexVal(e)<<4|hexVal(body[i+1]))
				i++
			} else {
				return nil, false
			}
		}
	}
	return out, true
}

func hexVal(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	default:
		return b - 'A' + 10
	}
}
