package goof

import (
	"slices"
	"strconv"
)

func (p *parser) parseExpression() (Expression, error) {
	return p.parseOr()
}

// parseChain folds a left-associative run of operators from ops, each
// operand parsed by next.
func (p *parser) parseChain(next func() (Expression, error), ops ...TokenType) (Expression, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.read()
		if !slices.Contains(ops, tok.Type) {
			p.back()
			return left, nil
		}
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Left: left, Operator: tok.Type, Right: right, position: tok.Pos}
	}
}

// parsePrefix applies op to the operand parsed by next when the current
// token is op.
func (p *parser) parsePrefix(next func() (Expression, error), ops ...TokenType) (Expression, error) {
	tok := p.read()
	if !slices.Contains(ops, tok.Type) {
		p.back()
		return next()
	}
	right, err := next()
	if err != nil {
		return nil, err
	}
	return &UnaryExpr{Operator: tok.Type, Right: right, position: tok.Pos}, nil
}

func (p *parser) parseOr() (Expression, error) {
	return p.parseChain(p.parseAnd, tokenOr)
}

func (p *parser) parseAnd() (Expression, error) {
	return p.parseChain(p.parseNot, tokenAnd)
}

func (p *parser) parseNot() (Expression, error) {
	return p.parsePrefix(p.parseEquality, tokenNot)
}

func (p *parser) parseEquality() (Expression, error) {
	return p.parseChain(p.parseRelational, tokenIs, tokenIsnt)
}

func (p *parser) parseRelational() (Expression, error) {
	return p.parseChain(p.parseAdditive, tokenBelow, tokenAbove, tokenAtMost, tokenAtLeast)
}

func (p *parser) parseAdditive() (Expression, error) {
	return p.parseChain(p.parseMultiplicative, tokenPlus, tokenMinus)
}

func (p *parser) parseMultiplicative() (Expression, error) {
	return p.parseChain(p.parsePower, tokenTimes, tokenOver, tokenMod)
}

// parsePower does not chain: `2 pow 3 pow 2` stops after the first pow.
func (p *parser) parsePower() (Expression, error) {
	left, err := p.parseConversion()
	if err != nil {
		return nil, err
	}
	if p.peek().Type != tokenPow {
		return left, nil
	}
	tok := p.read()
	right, err := p.parseConversion()
	if err != nil {
		return nil, err
	}
	return &BinaryExpr{Left: left, Operator: tokenPow, Right: right, position: tok.Pos}, nil
}

func (p *parser) parseConversion() (Expression, error) {
	return p.parsePrefix(p.parseNegation, tokenNum, tokenText, tokenChoice)
}

func (p *parser) parseNegation() (Expression, error) {
	return p.parsePrefix(p.parseDecimal, tokenNeg)
}

func (p *parser) parseDecimal() (Expression, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if p.peek().Type != tokenDot {
		return left, nil
	}
	dot := p.read()
	right, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	whole, okWhole := left.(*IntegerLiteral)
	frac, okFrac := right.(*IntegerLiteral)
	if !okWhole || !okFrac {
		return nil, p.errorAt(dot.Pos, "invalid decimal")
	}
	value, err := strconv.ParseFloat(whole.Digits+"."+frac.Digits, 64)
	if err != nil {
		return nil, p.errorAt(dot.Pos, "invalid decimal")
	}
	return &FloatLiteral{Value: value, position: dot.Pos}, nil
}

func (p *parser) parseAtom() (Expression, error) {
	tok := p.read()
	switch tok.Type {
	case tokenRead:
		return &ReadExpr{position: tok.Pos}, nil
	case tokenIdent:
		return &Identifier{Name: tok.Literal, position: tok.Pos}, nil
	case tokenInt:
		value, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return nil, p.errorAt(tok.Pos, "number too large")
		}
		return &IntegerLiteral{Value: value, Digits: tok.Literal, position: tok.Pos}, nil
	case tokenString:
		return &TextLiteral{Value: tok.Literal, position: tok.Pos}, nil
	case tokenYes:
		return &ChoiceLiteral{Value: true, position: tok.Pos}, nil
	case tokenNo:
		return &ChoiceLiteral{Value: false, position: tok.Pos}, nil
	case tokenOpen:
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if closing := p.read(); closing.Type != tokenClose {
			return nil, p.errorExpected(closing, "'close'")
		}
		return expr, nil
	default:
		return nil, p.errorExpected(tok, "value")
	}
}
