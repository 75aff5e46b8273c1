// Package parser builds an ast.Expr from source text with a hand-rolled
// precedence-climbing recursive descent parser (no parser-combinator
// library), matching the eight-level precedence table of the input
// language's grammar.
package parser

import (
	"github.com/arnegrid/qrobdd/ast"
	"github.com/arnegrid/qrobdd/lexer"
)

// Parser consumes tokens from a lexer.Lexer one at a time, keeping a
// single token of lookahead.
type Parser struct {
	lex *lexer.Lexer
	tok lexer.Token
	err error
}

// Parse parses the whole of src as a single expression and returns its
// ast.Expr, or the first lex/parse error encountered.
func Parse(src string) (ast.Expr, error) {
	p := &Parser{lex: lexer.New(src)}
	p.advance()
	if p.err != nil {
		return nil, p.err
	}
	e, err := p.parseIff()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != lexer.EOF {
		return nil, newParseError(p.tok.Pos, "end of input", p.tok.Kind.String())
	}
	return e, nil
}

func (p *Parser) advance() {
	if p.err != nil {
		return
	}
	tok, err := p.lex.Next()
	if err != nil {
		p.err = err
		return
	}
	p.tok = tok
}

func (p *Parser) expect(k lexer.Kind, what string) (lexer.Token, error) {
	if p.tok.Kind != k {
		return lexer.Token{}, newParseError(p.tok.Pos, what, p.tok.Kind.String())
	}
	tok := p.tok
	p.advance()
	return tok, p.err
}

// level 1: <=> / iff / eq, right-associative
func (p *Parser) parseIff() (ast.Expr, error) {
	lhs, err := p.parseImplies()
	if err != nil {
		return nil, err
	}
	switch p.tok.Kind {
	case lexer.DoubleArr, lexer.KwIff, lexer.KwEq:
		p.advance()
		if p.err != nil {
			return nil, p.err
		}
		rhs, err := p.parseIff()
		if err != nil {
			return nil, err
		}
		return ast.Bin{Op: ast.OpIff, X: lhs, Y: rhs}, nil
	}
	return lhs, nil
}

// level 2: => / implies / in, right-associative
func (p *Parser) parseImplies() (ast.Expr, error) {
	lhs, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	switch p.tok.Kind {
	case lexer.Arrow, lexer.KwImplies, lexer.KwIn:
		p.advance()
		if p.err != nil {
			return nil, p.err
		}
		rhs, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		return ast.Bin{Op: ast.OpImplies, X: lhs, Y: rhs}, nil
	}
	return lhs, nil
}

// level 3: | / or, nor, left-associative
func (p *Parser) parseOr() (ast.Expr, error) {
	lhs, err := p.parseXor()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinOp
		switch p.tok.Kind {
		case lexer.Pipe, lexer.KwOr:
			op = ast.OpOr
		case lexer.KwNor:
			op = ast.OpNor
		default:
			return lhs, nil
		}
		p.advance()
		if p.err != nil {
			return nil, p.err
		}
		rhs, err := p.parseXor()
		if err != nil {
			return nil, err
		}
		lhs = ast.Bin{Op: op, X: lhs, Y: rhs}
	}
}

// level 4: ^ / xor, left-associative
func (p *Parser) parseXor() (ast.Expr, error) {
	lhs, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.tok.Kind == lexer.Caret || p.tok.Kind == lexer.KwXor {
		p.advance()
		if p.err != nil {
			return nil, p.err
		}
		rhs, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		lhs = ast.Bin{Op: ast.OpXor, X: lhs, Y: rhs}
	}
	return lhs, nil
}

// level 5: & / and, nand, left-associative
func (p *Parser) parseAnd() (ast.Expr, error) {
	lhs, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.BinOp
		switch p.tok.Kind {
		case lexer.Amp, lexer.KwAnd:
			op = ast.OpAnd
		case lexer.KwNand:
			op = ast.OpNand
		default:
			return lhs, nil
		}
		p.advance()
		if p.err != nil {
			return nil, p.err
		}
		rhs, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		lhs = ast.Bin{Op: op, X: lhs, Y: rhs}
	}
}

var comparators = map[lexer.Kind]ast.CmpOp{
	lexer.Eq:  ast.CmpEq,
	lexer.Neq: ast.CmpNeq,
	lexer.Lt:  ast.CmpLt,
	lexer.Leq: ast.CmpLeq,
	lexer.Gt:  ast.CmpGt,
	lexer.Geq: ast.CmpGeq,
}

// level 6: counting comparator, non-associative; only a leading vector
// literal `[e1,...,en]` can be the left side of a comparison.
func (p *Parser) parseComparison() (ast.Expr, error) {
	if p.tok.Kind != lexer.LBrack {
		return p.parseUnary()
	}
	terms, err := p.parseTermList()
	if err != nil {
		return nil, err
	}
	cmp, ok := comparators[p.tok.Kind]
	if !ok {
		return nil, newParseError(p.tok.Pos, "counting comparator", p.tok.Kind.String())
	}
	p.advance()
	if p.err != nil {
		return nil, p.err
	}
	rhs, err := p.parseCardRHS()
	if err != nil {
		return nil, err
	}
	return ast.Card{Terms: terms, Cmp: cmp, RHS: rhs}, nil
}

func (p *Parser) parseCardRHS() (ast.CardRHS, error) {
	if p.tok.Kind == lexer.Int {
		n := p.tok.IntVal
		p.advance()
		return ast.IntRHS{N: n}, p.err
	}
	if p.tok.Kind == lexer.LBrack {
		terms, err := p.parseTermList()
		if err != nil {
			return nil, err
		}
		return ast.VecRHS{Terms: terms}, nil
	}
	return nil, newParseError(p.tok.Pos, "integer or vector", p.tok.Kind.String())
}

// parseTermList parses `[e1,...,en]`, already positioned at the `[`.
func (p *Parser) parseTermList() ([]ast.Expr, error) {
	if _, err := p.expect(lexer.LBrack, "["); err != nil {
		return nil, err
	}
	var terms []ast.Expr
	if p.tok.Kind != lexer.RBrack {
		for {
			e, err := p.parseIff()
			if err != nil {
				return nil, err
			}
			terms = append(terms, e)
			if p.tok.Kind != lexer.Comma {
				break
			}
			p.advance()
			if p.err != nil {
				return nil, p.err
			}
		}
	}
	if _, err := p.expect(lexer.RBrack, "]"); err != nil {
		return nil, err
	}
	return terms, nil
}

// level 7: unary !, -, not
func (p *Parser) parseUnary() (ast.Expr, error) {
	switch p.tok.Kind {
	case lexer.Bang, lexer.Minus, lexer.KwNot:
		p.advance()
		if p.err != nil {
			return nil, p.err
		}
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.Not{X: x}, nil
	}
	return p.parseAtom()
}

// level 8: atoms
func (p *Parser) parseAtom() (ast.Expr, error) {
	switch p.tok.Kind {
	case lexer.KwTrue:
		p.advance()
		return ast.Const{Value: true}, p.err
	case lexer.KwFalse:
		p.advance()
		return ast.Const{Value: false}, p.err
	case lexer.Ident:
		name := p.tok.Text
		p.advance()
		return ast.VarRef{Name: name}, p.err
	case lexer.LParen:
		p.advance()
		if p.err != nil {
			return nil, p.err
		}
		e, err := p.parseIff()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RParen, ")"); err != nil {
			return nil, err
		}
		return e, nil
	case lexer.KwIf:
		return p.parseIfThenElse()
	case lexer.KwForall, lexer.KwExists, lexer.KwAll:
		return p.parseQuantifier()
	case lexer.KwMu, lexer.KwNu, lexer.KwLfp, lexer.KwGfp:
		return p.parseFixpoint()
	}
	return nil, newParseError(p.tok.Pos, "expression", p.tok.Kind.String())
}

func (p *Parser) parseIfThenElse() (ast.Expr, error) {
	if _, err := p.expect(lexer.KwIf, "if"); err != nil {
		return nil, err
	}
	cond, err := p.parseIff()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.KwThen, "then"); err != nil {
		return nil, err
	}
	then, err := p.parseIff()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.KwElse, "else"); err != nil {
		return nil, err
	}
	els, err := p.parseIff()
	if err != nil {
		return nil, err
	}
	return ast.If{Cond: cond, Then: then, Else: els}, nil
}

func (p *Parser) parseQuantifier() (ast.Expr, error) {
	kind := ast.QuantExists
	if p.tok.Kind == lexer.KwForall || p.tok.Kind == lexer.KwAll {
		kind = ast.QuantForall
	}
	p.advance()
	if p.err != nil {
		return nil, p.err
	}
	var vars []string
	for {
		tok, err := p.expect(lexer.Ident, "variable name")
		if err != nil {
			return nil, err
		}
		vars = append(vars, tok.Text)
		if p.tok.Kind != lexer.Comma {
			break
		}
		p.advance()
		if p.err != nil {
			return nil, p.err
		}
	}
	if _, err := p.expect(lexer.Hash, "#"); err != nil {
		return nil, err
	}
	body, err := p.parseIff()
	if err != nil {
		return nil, err
	}
	return ast.Quant{Kind: kind, Vars: vars, Body: body}, nil
}

func (p *Parser) parseFixpoint() (ast.Expr, error) {
	kind := ast.FixMu
	if p.tok.Kind == lexer.KwNu || p.tok.Kind == lexer.KwGfp {
		kind = ast.FixNu
	}
	p.advance()
	if p.err != nil {
		return nil, p.err
	}
	tok, err := p.expect(lexer.Ident, "fixed-point variable")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.Hash, "#"); err != nil {
		return nil, err
	}
	body, err := p.parseIff()
	if err != nil {
		return nil, err
	}
	return ast.Fix{Kind: kind, Var: tok.Text, Body: body}, nil
}
