package syntax

// ----------------------------------------------------------------------------
// Expressions
//
// Binary operators are parsed by precedence climbing over the static
// precedence table in operator.go. Primaries need one token of lookahead.

// expr parses a full expression.
func (p *Parser) expr() (Expr, error) {
	lhs, err := p.primary()
	if err != nil {
		return nil, err
	}
	return p.binOpRHS(0, lhs)
}

// primary parses an identifier, a call, a literal or a parenthesized expression.
func (p *Parser) primary() (Expr, error) {
	tok, err := p.ts.TryPeek()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case _Name:
		return p.ident()
	case _IntLit, _UIntLit:
		return p.constant()
	case _Lparen:
		return p.paren()
	default:
		return nil, unexpected("expression", tok)
	}
}

// ident parses a variable reference, or a call when "(" follows the name.
func (p *Parser) ident() (Expr, error) {
	tok := p.ts.Get()

	if !p.ts.at(_Lparen) {
		v := &VariableExpr{Name: tok.Lit}
		v.pos = tok.Pos
		return v, nil
	}
	p.ts.AddPos(1) // (

	call := &CallExpr{Name: tok.Lit}
	call.pos = tok.Pos
	for {
		next, err := p.ts.TryPeek()
		if err != nil {
			return nil, err
		}
		if next.Kind == _Rparen {
			break
		}
		arg, err := p.expr()
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)

		if p.ts.at(_Rparen) {
			break
		}
		if err := p.ts.AsComma(); err != nil {
			return nil, err
		}
	}
	if err := p.ts.AsRparen(); err != nil {
		return nil, err
	}
	return call, nil
}

// constant parses an integer literal.
func (p *Parser) constant() (Expr, error) {
	tok := p.ts.Get()
	c := &ConstantExpr{}
	c.pos = tok.Pos
	switch tok.Kind {
	case _IntLit:
		c.Value = IntConst(tok.Int)
	case _UIntLit:
		c.Value = UIntConst(tok.UInt)
	default:
		return nil, unexpected("integer literal", tok)
	}
	return c, nil
}

// paren parses: ( Expr )
func (p *Parser) paren() (Expr, error) {
	if err := p.ts.AsLparen(); err != nil {
		return nil, err
	}
	x, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.ts.AsRparen(); err != nil {
		return nil, err
	}
	return x, nil
}

// binOpRHS folds binary operators of precedence >= minPrec onto lhs.
// Operators of equal precedence associate to the left; a tighter operator
// after the right operand is absorbed into it first.
func (p *Parser) binOpRHS(minPrec int, lhs Expr) (Expr, error) {
	for {
		tok, err := p.ts.TryPeek()
		if err != nil || tok.Kind == _Semi {
			return lhs, nil
		}
		prec := tokenPrecedence(tok)
		if prec < minPrec {
			return lhs, nil
		}

		op, err := OperatorFromToken(p.ts.Get())
		if err != nil {
			return nil, err
		}
		rhs, err := p.primary()
		if err != nil {
			return nil, err
		}

		if next, err := p.ts.TryPeek(); err == nil && prec < tokenPrecedence(next) {
			if rhs, err = p.binOpRHS(prec+1, rhs); err != nil {
				return nil, err
			}
		}

		bin := &BinaryExpr{Op: op, X: lhs, Y: rhs}
		bin.pos = lhs.Pos()
		lhs = bin
	}
}
