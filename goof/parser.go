package goof

// parser walks a fully materialized token slice. Lookahead is done by
// reading a token and stepping back when it does not fit.
type parser struct {
	tokens []Token
	cursor int
	src    *Source
}

func newParser(tokens []Token, src *Source) *parser {
	return &parser{tokens: tokens, src: src}
}

func (p *parser) at(i int) Token {
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

func (p *parser) read() Token {
	tok := p.at(p.cursor)
	p.cursor++
	return tok
}

func (p *parser) peek() Token {
	return p.at(p.cursor)
}

func (p *parser) back() {
	if p.cursor > 0 {
		p.cursor--
	}
}

// parseProgram returns one statement per source line.
func (p *parser) parseProgram() ([]Statement, error) {
	var statements []Statement
	for {
		tok := p.peek()
		switch tok.Type {
		case tokenEOF:
			return statements, nil
		case tokenNewline:
			p.read()
			statements = append(statements, &BlankStmt{position: tok.Pos})
			continue
		case tokenComment:
			p.read()
			statements = append(statements, &BlankStmt{position: tok.Pos})
		default:
			stmt, err := p.parseGuardedStatement()
			if err != nil {
				return nil, err
			}
			statements = append(statements, stmt)
			if p.peek().Type == tokenComment {
				p.read()
			}
		}

		eol := p.peek()
		switch eol.Type {
		case tokenEOF:
			return statements, nil
		case tokenNewline:
			p.read()
		default:
			return nil, p.errorUnexpected(eol)
		}
	}
}

func (p *parser) parseGuardedStatement() (Statement, error) {
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if p.peek().Type != tokenIf {
		return stmt, nil
	}
	p.read()
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &GuardStmt{Body: stmt, Condition: cond, position: stmt.Pos()}, nil
}

func (p *parser) parseStatement() (Statement, error) {
	tok := p.read()
	switch tok.Type {
	case tokenWrite:
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &WriteStmt{Value: value, position: tok.Pos}, nil
	case tokenRun:
		return p.parseRunStatement(tok)
	case tokenEnd:
		return &EndStmt{position: tok.Pos}, nil
	default:
		p.back()
		return p.parseExpressionOrAssignStatement()
	}
}

func (p *parser) parseRunStatement(run Token) (Statement, error) {
	tok := p.read()
	switch tok.Type {
	case tokenAt:
		line, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &RunLineStmt{Line: line, position: run.Pos}, nil
	case tokenFrom:
		from, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if next := p.read(); next.Type != tokenTo {
			return nil, p.errorExpected(next, "'to'")
		}
		to, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &RunRangeStmt{From: from, To: to, position: run.Pos}, nil
	default:
		return nil, p.errorExpected(tok, "'at' or 'from'")
	}
}

func (p *parser) parseExpressionOrAssignStatement() (Statement, error) {
	start := p.peek()
	left, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.peek().Type != tokenBe {
		return &ExprStmt{Expr: left, position: start.Pos}, nil
	}
	be := p.read()
	ident, ok := left.(*Identifier)
	if !ok {
		return nil, p.errorAt(start.Pos, "expected identifier before %s", tokenLabel(be))
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &AssignStmt{Name: ident, Value: value, position: start.Pos}, nil
}
