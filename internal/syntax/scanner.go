package syntax

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Scanner performs lexical analysis on maga source code.
type Scanner struct {
	source

	tok  Token // current token
	prev Kind  // kind of the previous token, decides whether '-' starts a literal

	litBuf strings.Builder
}

// NewScanner creates a new Scanner for the given source.
// The errh function is called for each lexical error; if nil, errors are silently ignored.
func NewScanner(filename string, src io.Reader, errh func(line, col uint32, msg string)) *Scanner {
	return &Scanner{source: *newSource(filename, src, errh)}
}

// Token returns the current token.
func (s *Scanner) Token() Token {
	return s.tok
}

// Next advances to the next token. At the end of input the current
// token has kind _EOF.
func (s *Scanner) Next() {
	s.prev = s.tok.Kind

redo:
	for isWhitespace(s.ch) {
		s.nextch()
	}

	s.tok = Token{Pos: s.pos()}

	switch {
	case s.ch < 0:
		s.tok.Kind = _EOF

	case isLetter(s.ch):
		s.scanIdent()

	case isDigit(s.ch):
		s.scanNumber(false)

	case s.ch == '-' && isDigit(s.peekch()) && s.operandMayStart():
		s.nextch()
		s.scanNumber(true)

	default:
		if s.scanOperator() {
			goto redo
		}
	}
}

// IsEOF reports whether the scanner reached the end of input.
func (s *Scanner) IsEOF() bool {
	return s.tok.Kind == _EOF
}

// operandMayStart reports whether the next token is in operand position,
// so that "-1" is a signed literal while in "x-1" the '-' is an operator.
func (s *Scanner) operandMayStart() bool {
	switch s.prev {
	case _Name, _IntLit, _UIntLit, _Rparen:
		return false
	}
	return true
}

func (s *Scanner) scanIdent() {
	s.litBuf.Reset()
	for isLetter(s.ch) || isDigit(s.ch) {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	s.tok.Lit = s.litBuf.String()
	s.tok.Kind = LookupKeyword(s.tok.Lit)
}

// scanNumber scans a decimal literal. The leading '-' of a signed
// literal has already been consumed when neg is set.
func (s *Scanner) scanNumber(neg bool) {
	s.litBuf.Reset()
	if neg {
		s.litBuf.WriteByte('-')
	}
	digits := 0
	for isDigit(s.ch) {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
		digits++
	}
	s.tok.Lit = s.litBuf.String()

	if digits > 1 && strings.TrimPrefix(s.tok.Lit, "-")[0] == '0' {
		s.errorAtTok("invalid leading zero in integer literal " + s.tok.Lit)
	}

	if neg {
		s.tok.Kind = _IntLit
		v, err := strconv.ParseInt(s.tok.Lit, 10, 64)
		if err != nil {
			s.errorAtTok("integer literal " + s.tok.Lit + " out of range")
		}
		s.tok.Int = v
		return
	}

	s.tok.Kind = _UIntLit
	v, err := strconv.ParseUint(s.tok.Lit, 10, 64)
	if err != nil {
		s.errorAtTok("integer literal " + s.tok.Lit + " out of range")
	}
	s.tok.UInt = v
}

func (s *Scanner) errorAtTok(msg string) {
	if s.errh != nil {
		s.errh(s.tok.Pos.Line(), s.tok.Pos.Col(), msg)
	}
}

// scanOperator scans an operator or delimiter.
// Returns true if a comment or a bad character was skipped (caller should rescan).
func (s *Scanner) scanOperator() bool {
	ch := s.ch
	s.nextch()

	// withAssign picks the compound-assignment form when '=' follows.
	withAssign := func(plain, compound Kind) Kind {
		if s.ch == '=' {
			s.nextch()
			return compound
		}
		return plain
	}

	switch ch {
	case '+':
		s.tok.Kind = withAssign(_Add, _AddAssign)
	case '-':
		s.tok.Kind = withAssign(_Sub, _SubAssign)
	case '*':
		s.tok.Kind = withAssign(_Mul, _MulAssign)
	case '/':
		if s.ch == '/' {
			s.skipLineComment()
			return true
		}
		s.tok.Kind = withAssign(_Div, _DivAssign)
	case '%':
		s.tok.Kind = withAssign(_Rem, _RemAssign)
	case '<':
		s.tok.Kind = withAssign(_Lss, _Leq)
	case '>':
		s.tok.Kind = withAssign(_Gtr, _Geq)
	case '=':
		s.tok.Kind = _Assign
	case ':':
		s.tok.Kind = _Colon
	case ';':
		s.tok.Kind = _Semi
	case '.':
		s.tok.Kind = _Dot
	case ',':
		s.tok.Kind = _Comma
	case '(':
		s.tok.Kind = _Lparen
	case ')':
		s.tok.Kind = _Rparen
	case '{':
		s.tok.Kind = _Lbrace
	case '}':
		s.tok.Kind = _Rbrace
	case '[':
		s.tok.Kind = _Lbrack
	case ']':
		s.tok.Kind = _Rbrack
	default:
		s.errorAtTok(fmt.Sprintf("unexpected character %q", ch))
		return true
	}

	s.tok.Lit = s.tok.Kind.String()
	return false
}

// skipLineComment skips from the second '/' to the end of the line.
func (s *Scanner) skipLineComment() {
	for s.ch != '\n' && s.ch >= 0 {
		s.nextch()
	}
}

// Tokenize scans src completely and returns its token sequence.
// The first lexical error, if any, is returned as a *SyntaxError
// together with the tokens scanned so far.
func Tokenize(filename string, src io.Reader) ([]Token, error) {
	var first error
	errh := func(line, col uint32, msg string) {
		if first == nil {
			first = &SyntaxError{Pos: NewPos(filename, line, col), Msg: msg}
		}
	}

	s := NewScanner(filename, src, errh)
	var toks []Token
	for s.Next(); !s.IsEOF(); s.Next() {
		toks = append(toks, s.Token())
	}
	return toks, first
}

// IsSyntaxError reports whether err is or wraps a *SyntaxError.
func IsSyntaxError(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se)
}
