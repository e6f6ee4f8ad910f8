package syntax

import "fmt"

// Tokens is a forward-only cursor over a finalized token sequence.
// The position is always within [0, len]; len means no more tokens.
// The underlying sequence is never modified.
type Tokens struct {
	toks []Token
	pos  int
}

// NewTokens returns a cursor positioned at the first token of toks.
func NewTokens(toks []Token) *Tokens {
	return &Tokens{toks: toks}
}

// Tokens returns the underlying token sequence.
func (ts *Tokens) Tokens() []Token {
	return ts.toks
}

// Len returns the number of tokens in the sequence.
func (ts *Tokens) Len() int { return len(ts.toks) }

// Offset returns the current cursor position.
func (ts *Tokens) Offset() int { return ts.pos }

// HasMore reports whether a token is available at the cursor.
func (ts *Tokens) HasMore() bool {
	return ts.pos < len(ts.toks)
}

// Peek returns the current token without consuming it.
// It panics if the stream is exhausted; use TryPeek when that is possible.
func (ts *Tokens) Peek() Token {
	if !ts.HasMore() {
		panic("syntax: Peek on exhausted token stream")
	}
	return ts.toks[ts.pos]
}

// TryPeek returns the current token, or an error wrapping
// ErrExhaustedStream at the end of the stream.
func (ts *Tokens) TryPeek() (Token, error) {
	if !ts.HasMore() {
		return Token{}, ts.exhausted()
	}
	return ts.toks[ts.pos], nil
}

// Get returns the current token and advances by one.
// It panics if the stream is exhausted; use Next when that is possible.
func (ts *Tokens) Get() Token {
	if !ts.HasMore() {
		panic("syntax: Get on exhausted token stream")
	}
	ts.pos++
	return ts.toks[ts.pos-1]
}

// Next is the fallible form of Get.
func (ts *Tokens) Next() (Token, error) {
	if !ts.HasMore() {
		return Token{}, ts.exhausted()
	}
	ts.pos++
	return ts.toks[ts.pos-1], nil
}

// AddPos skips n tokens that were already inspected with Peek.
// The cursor stops at the end of the stream.
func (ts *Tokens) AddPos(n int) {
	if n < 0 {
		panic(fmt.Sprintf("syntax: AddPos(%d) would move the cursor backwards", n))
	}
	ts.pos += n
	if ts.pos > len(ts.toks) {
		ts.pos = len(ts.toks)
	}
}

// at reports whether the current token has kind k.
// It returns false at the end of the stream.
func (ts *Tokens) at(k Kind) bool {
	return ts.HasMore() && ts.toks[ts.pos].Kind == k
}

// got consumes the current token if it has kind k.
func (ts *Tokens) got(k Kind) bool {
	if ts.at(k) {
		ts.pos++
		return true
	}
	return false
}

// expect consumes the current token and fails unless it has kind k.
func (ts *Tokens) expect(k Kind, want string) (Token, error) {
	tok, err := ts.Next()
	if err != nil {
		return tok, err
	}
	if tok.Kind != k {
		return tok, unexpected(want, tok)
	}
	return tok, nil
}

// exhausted returns the end-of-stream error, positioned after the last token.
func (ts *Tokens) exhausted() error {
	pos := NoPos
	if n := len(ts.toks); n > 0 {
		pos = ts.toks[n-1].Pos
	}
	return &SyntaxError{Pos: pos, Msg: ErrExhaustedStream.Error(), Err: ErrExhaustedStream}
}

// AsIdent consumes an identifier and returns its text.
func (ts *Tokens) AsIdent() (string, error) {
	tok, err := ts.expect(_Name, "identifier")
	if err != nil {
		return "", err
	}
	return tok.Lit, nil
}

// AsLparen consumes a "(".
func (ts *Tokens) AsLparen() error {
	_, err := ts.expect(_Lparen, `"("`)
	return err
}

// AsRparen consumes a ")".
func (ts *Tokens) AsRparen() error {
	_, err := ts.expect(_Rparen, `")"`)
	return err
}

// AsLbrace consumes a "{".
func (ts *Tokens) AsLbrace() error {
	_, err := ts.expect(_Lbrace, `"{"`)
	return err
}

// AsRbrace consumes a "}".
func (ts *Tokens) AsRbrace() error {
	_, err := ts.expect(_Rbrace, `"}"`)
	return err
}

// AsColon consumes the ":" separating a name from its type.
func (ts *Tokens) AsColon() error {
	_, err := ts.expect(_Colon, `":"`)
	return err
}

// AsComma consumes a ",".
func (ts *Tokens) AsComma() error {
	_, err := ts.expect(_Comma, `","`)
	return err
}

// AsAssign consumes a "=".
func (ts *Tokens) AsAssign() error {
	_, err := ts.expect(_Assign, `"="`)
	return err
}

// AsSemi consumes a ";".
func (ts *Tokens) AsSemi() error {
	_, err := ts.expect(_Semi, `";"`)
	return err
}

// AsReturn consumes the return keyword.
func (ts *Tokens) AsReturn() error {
	_, err := ts.expect(_Return, `"return"`)
	return err
}
