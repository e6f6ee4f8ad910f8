package syntax

import (
	"errors"
	"io"
)

// parseState tracks which construct the parser is inside; it is attached
// to syntax errors as context.
//
//	Idle -> Function -> ParamList -> ReturnType? -> Body? -> Idle
type parseState uint8

const (
	stateIdle parseState = iota
	stateFunction
	stateParamList
	stateReturnType
	stateBody
)

var stateNames = [...]string{
	stateIdle:       "",
	stateFunction:   "function declaration",
	stateParamList:  "parameter list",
	stateReturnType: "return type",
	stateBody:       "function body",
}

// Parser builds an AST from a token sequence. A Parser is used once;
// parsing stops at the first error.
type Parser struct {
	ts    *Tokens
	state parseState
}

// NewParser creates a Parser positioned at the start of toks.
func NewParser(toks []Token) *Parser {
	return &Parser{ts: NewTokens(toks)}
}

// Parse parses a token sequence into a File.
func Parse(toks []Token) (*File, error) {
	return NewParser(toks).Parse()
}

// ParseFile tokenizes and parses src.
func ParseFile(filename string, src io.Reader) (*File, error) {
	toks, err := Tokenize(filename, src)
	if err != nil {
		return nil, err
	}
	return Parse(toks)
}

// ParseExpr parses toks as a single expression that must use every token.
func ParseExpr(toks []Token) (Expr, error) {
	p := NewParser(toks)
	x, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.ts.HasMore() {
		return nil, unexpected("end of expression", p.ts.Peek())
	}
	return x, nil
}

// ----------------------------------------------------------------------------
// Parsing entry point

// Parse parses the remaining tokens as a sequence of top-level elements.
// Any token other than "fun" at top level is an error.
func (p *Parser) Parse() (*File, error) {
	f := &File{}
	if p.ts.HasMore() {
		f.pos = p.ts.Peek().Pos
	}

	for p.ts.HasMore() {
		tok := p.ts.Peek()
		if tok.Kind != _Fun {
			return nil, unexpected("function declaration", tok)
		}
		fn, err := p.function()
		if err != nil {
			return nil, p.withContext(err)
		}
		f.Elements = append(f.Elements, fn)
	}

	return f, nil
}

// withContext attaches the current parser state to a syntax error.
func (p *Parser) withContext(err error) error {
	var se *SyntaxError
	if errors.As(err, &se) && se.Context == "" {
		se.Context = stateNames[p.state]
	}
	return err
}

// ----------------------------------------------------------------------------
// Functions

// function parses: fun Name ( Params ) [: Type] [Scope]
func (p *Parser) function() (*Function, error) {
	p.state = stateFunction

	tok, err := p.ts.expect(_Fun, `"fun"`)
	if err != nil {
		return nil, err
	}
	fn := &Function{Result: VoidType()}
	fn.pos = tok.Pos

	if fn.Name, err = p.ts.AsIdent(); err != nil {
		return nil, err
	}
	if err := p.ts.AsLparen(); err != nil {
		return nil, err
	}

	p.state = stateParamList
	for {
		tok, err := p.ts.TryPeek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == _Rparen {
			break
		}
		param, err := p.param()
		if err != nil {
			return nil, err
		}
		fn.Params = append(fn.Params, param)
	}
	p.ts.AddPos(1) // )

	if p.ts.got(_Colon) {
		p.state = stateReturnType
		if fn.Result, err = p.type_(); err != nil {
			return nil, err
		}
	}

	if p.ts.at(_Lbrace) {
		p.state = stateBody
		if fn.Body, err = p.scope(); err != nil {
			return nil, err
		}
	}

	p.state = stateIdle
	return fn, nil
}

// param parses: Name : Type [,]
// The comma may only be omitted before the closing parenthesis.
func (p *Parser) param() (*Param, error) {
	tok, err := p.ts.TryPeek()
	if err != nil {
		return nil, err
	}
	par := &Param{}
	par.pos = tok.Pos

	if par.Name, err = p.ts.AsIdent(); err != nil {
		return nil, err
	}
	if err := p.ts.AsColon(); err != nil {
		return nil, err
	}
	if par.Type, err = p.type_(); err != nil {
		return nil, err
	}

	if p.ts.got(_Comma) {
		return par, nil
	}
	next, err := p.ts.TryPeek()
	if err != nil {
		return nil, err
	}
	if next.Kind != _Rparen {
		return nil, unexpected(`"," or ")"`, next)
	}
	return par, nil
}

// type_ parses: [*] Name
// Only a single level of indirection is accepted.
func (p *Parser) type_() (Type, error) {
	var t Type
	t.Pointer = p.ts.got(_Mul)
	name, err := p.ts.AsIdent()
	if err != nil {
		return Type{}, err
	}
	t.Name = name
	return t, nil
}

// ----------------------------------------------------------------------------
// Statements

// scope parses: { Stmts }
func (p *Parser) scope() (*Scope, error) {
	tok, err := p.ts.expect(_Lbrace, `"{"`)
	if err != nil {
		return nil, err
	}
	s := &Scope{}
	s.pos = tok.Pos

	for {
		tok, err := p.ts.TryPeek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == _Rbrace {
			s.Rbrace = tok.Pos
			p.ts.AddPos(1)
			return s, nil
		}
		st, err := p.stmt()
		if err != nil {
			return nil, err
		}
		s.Stmts = append(s.Stmts, st)
	}
}

// stmt parses a statement.
func (p *Parser) stmt() (Stmt, error) {
	tok, err := p.ts.TryPeek()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case _Let, _Var:
		return p.assignStmt()
	case _Return:
		return p.returnStmt()
	default:
		return nil, unexpected("statement", tok)
	}
}

// assignStmt parses: (let | var) Name = Expr ;
func (p *Parser) assignStmt() (*AssignStmt, error) {
	tok := p.ts.Get()
	s := &AssignStmt{Mutable: tok.Kind == _Var}
	s.pos = tok.Pos

	var err error
	if s.Name, err = p.ts.AsIdent(); err != nil {
		return nil, err
	}
	if err := p.ts.AsAssign(); err != nil {
		return nil, err
	}
	if s.RHS, err = p.expr(); err != nil {
		return nil, err
	}
	if err := p.ts.AsSemi(); err != nil {
		return nil, err
	}
	return s, nil
}

// returnStmt parses: return [Expr] ;
func (p *Parser) returnStmt() (*ReturnStmt, error) {
	s := &ReturnStmt{}
	s.pos = p.ts.Peek().Pos
	if err := p.ts.AsReturn(); err != nil {
		return nil, err
	}

	tok, err := p.ts.TryPeek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != _Semi {
		if s.Result, err = p.expr(); err != nil {
			return nil, err
		}
	}

	if err := p.ts.AsSemi(); err != nil {
		return nil, err
	}
	return s, nil
}
