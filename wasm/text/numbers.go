package text

// numbers.go classifies a maximal run of reserved characters as a numeric
// literal. Classification consumes the entire run or fails: trailing garbage
// makes the run reserved, never a shorter number.
//
// See https://www.w3.org/TR/2019/REC-wasm-core-1-20191205/#text-int and
// #text-float

// numScanner walks a byte slice that is known to contain only reserved
// characters.
type numScanner struct {
	b           []byte
	i           int
	underscores bool
}

func (s *numScanner) done() bool { return s.i >= len(s.b) }

func (s *numScanner) peek() byte {
	if s.done() {
		return 0
	}
	return s.b[s.i]
}

func (s *numScanner) match(c byte) bool {
	if !s.done() && s.b[s.i] == c {
		s.i++
		return true
	}
	return false
}

func (s *numScanner) matchString(sv string) bool {
	if len(s.b)-s.i < len(sv) || string(s.b[s.i:s.i+len(sv)]) != sv {
		return false
	}
	s.i += len(sv)
	return true
}

func (s *numScanner) matchSign() Sign {
	switch {
	case s.match('+'):
		return SignPlus
	case s.match('-'):
		return SignMinus
	}
	return SignNone
}

// matchNum consumes digits with optional single underscores between them.
// A trailing or doubled underscore fails.
func (s *numScanner) matchNum(hex bool) bool {
	isdig := isDigit
	if hex {
		isdig = isHexDigit
	}
	ok := false
	for isdig(s.peek()) {
		s.i++
		if s.match('_') {
			s.underscores = true
			ok = false
		} else {
			ok = true
		}
	}
	return ok
}

// classifyNumber decides whether run is a numeric literal and, if so, which.
// ok is false when the run is not a number at all, in which case the caller
// falls back to a reserved token.
func classifyNumber(run []byte) (tt TokenType, info LiteralInfo, ok bool) {
	s := &numScanner{b: run}

	sign := s.matchSign()
	tt = TokenNat
	if sign != SignNone {
		tt = TokenInt
	}
	info.Sign = sign

	// Floating-point specials clash with keywords only when unsigned, and
	// the keyword table wins there; "info" and "nano" stay keywords or
	// reserved because the whole run must match.
	if s.matchString("inf") {
		if !s.done() {
			return 0, LiteralInfo{}, false
		}
		return TokenFloat, LiteralInfo{Sign: sign, Kind: LiteralInfinity}, true
	}
	if s.matchString("nan") {
		if s.done() {
			return TokenFloat, LiteralInfo{Sign: sign, Kind: LiteralNan}, true
		}
		if s.match(':') && s.matchString("0x") && s.matchNum(true) && s.done() {
			return TokenFloat, LiteralInfo{Sign: sign, Kind: LiteralNanPayload, HasUnderscores: s.underscores}, true
		}
		return 0, LiteralInfo{}, false
	}

	if s.matchString("0x") {
		info.Kind = LiteralHexNumber
		if !s.matchNum(true) {
			return 0, LiteralInfo{}, false
		}
		if s.match('.') {
			tt = TokenFloat
			if isHexDigit(s.peek()) && !s.matchNum(true) {
				return 0, LiteralInfo{}, false
			}
		}
		if s.match('p') || s.match('P') {
			tt = TokenFloat
			s.matchSign()
			if !s.matchNum(false) {
				return 0, LiteralInfo{}, false
			}
		}
	} else {
		info.Kind = LiteralNumber
		if !s.matchNum(false) {
			return 0, LiteralInfo{}, false
		}
		if s.match('.') {
			tt = TokenFloat
			if isDigit(s.peek()) && !s.matchNum(false) {
				return 0, LiteralInfo{}, false
			}
		}
		if s.match('e') || s.match('E') {
			tt = TokenFloat
			s.matchSign()
			if !s.matchNum(false) {
				return 0, LiteralInfo{}, false
			}
		}
	}

	if !s.done() {
		return 0, LiteralInfo{}, false
	}
	info.HasUnderscores = s.underscores
	return tt, info, true
}
