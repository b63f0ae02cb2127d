// Package parser is a hand-written recursive-descent parser over a token
// slice, producing the tagged AST of internal/ast. Grammar, precedence and
// the postfix/index-termination rule follow spec §4.2 exactly, cross-checked
// against the ljghy/evaluator2 reference parser this spec was distilled
// from (`Parser.cpp` in the retained original source).
package parser

import (
	"github.com/velalang/vela/internal/ast"
	"github.com/velalang/vela/internal/token"
	"github.com/velalang/vela/internal/verr"
)

// Parse tokenizes nothing itself — it consumes an already-lexed token
// slice — and tries the two top-level forms in order (assignment, then
// expression), rewinding between attempts. If neither consumes the entire
// stream, parsing fails with PARSE_FAILED.
func Parse(toks []token.Token) (*ast.Node, error) {
	p := &parser{toks: toks}

	if root, ok := p.parseAssign(); ok && p.atEnd() {
		return root, nil
	}

	p.pos = 0
	if root, ok := p.parseExpr(); ok && p.atEnd() {
		return root, nil
	}

	return nil, verr.New(verr.ParseFailed)
}

type parser struct {
	toks []token.Token
	pos  int
}

func (p *parser) atEnd() bool { return p.pos >= len(p.toks) }

func (p *parser) peekType() (token.Type, bool) {
	if p.atEnd() {
		return "", false
	}
	return p.toks[p.pos].Type, true
}

// expect consumes the current token if it has type t, reporting whether it
// did.
func (p *parser) expect(t token.Type) bool {
	if ty, ok := p.peekType(); ok && ty == t {
		p.pos++
		return true
	}
	return false
}

// --- assign := IDENT '=' expr | IDENT '(' param_list ')' '=' expr ---

func (p *parser) parseAssign() (*ast.Node, bool) {
	if ty, ok := p.peekType(); !ok || ty != token.IDENT {
		return nil, false
	}
	name := p.toks[p.pos].IdentValue()
	p.pos++

	if ty, ok := p.peekType(); ok && ty == token.LPAREN {
		p.pos++
		params, _ := p.parseParamList()
		if !p.expect(token.RPAREN) {
			return nil, false
		}
		if !p.expect(token.ASSIGN) {
			return nil, false
		}
		body, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		return &ast.Node{Kind: ast.AssignLambda, Ident: name, Children: []*ast.Node{params, body}}, true
	}

	if !p.expect(token.ASSIGN) {
		return nil, false
	}
	rhs, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	return &ast.Node{Kind: ast.Assign, Ident: name, Children: []*ast.Node{rhs}}, true
}

// --- expr := addsub ---

func (p *parser) parseExpr() (*ast.Node, bool) {
	return p.parseAddSub()
}

// addsub := unary (('+'|'-') unary)*, left-associative.
func (p *parser) parseAddSub() (*ast.Node, bool) {
	left, ok := p.parseUnary()
	if !ok {
		return nil, false
	}
	for {
		ty, ok := p.peekType()
		if !ok || (ty != token.PLUS && ty != token.MINUS) {
			return left, true
		}
		p.pos++
		right, ok := p.parseUnary()
		if !ok {
			return nil, false
		}
		kind := ast.Add
		if ty == token.MINUS {
			kind = ast.Sub
		}
		left = &ast.Node{Kind: kind, Children: []*ast.Node{left, right}}
	}
}

// unary := '-' muldiv | muldiv. Binds tighter than +/- but looser than
// */ — `-a*b` parses as `-(a*b)`.
func (p *parser) parseUnary() (*ast.Node, bool) {
	if ty, ok := p.peekType(); ok && ty == token.MINUS {
		p.pos++
		operand, ok := p.parseMulDiv()
		if !ok {
			return nil, false
		}
		return &ast.Node{Kind: ast.Neg, Children: []*ast.Node{operand}}, true
	}
	return p.parseMulDiv()
}

// muldiv := pow (('*'|'/') pow)*, left-associative.
func (p *parser) parseMulDiv() (*ast.Node, bool) {
	left, ok := p.parsePow()
	if !ok {
		return nil, false
	}
	for {
		ty, ok := p.peekType()
		if !ok || (ty != token.ASTERISK && ty != token.SLASH) {
			return left, true
		}
		p.pos++
		right, ok := p.parsePow()
		if !ok {
			return nil, false
		}
		kind := ast.Mul
		if ty == token.SLASH {
			kind = ast.Div
		}
		left = &ast.Node{Kind: kind, Children: []*ast.Node{left, right}}
	}
}

// pow := term ('^' pow)?, right-associative.
func (p *parser) parsePow() (*ast.Node, bool) {
	left, ok := p.parseTerm()
	if !ok {
		return nil, false
	}
	if ty, ok := p.peekType(); ok && ty == token.CARET {
		p.pos++
		right, ok := p.parsePow()
		if !ok {
			return nil, false
		}
		return &ast.Node{Kind: ast.Pow, Children: []*ast.Node{left, right}}, true
	}
	return left, true
}

// term := atom postfix*. Calls chain; an index terminates the chain —
// `f(x)[i]` is legal, `a[i](j)` is not (spec §4.2).
func (p *parser) parseTerm() (*ast.Node, bool) {
	node, ok := p.parseAtom()
	if !ok {
		return nil, false
	}

	for {
		ty, ok := p.peekType()
		if !ok {
			return node, true
		}
		switch ty {
		case token.LPAREN:
			p.pos++
			args, ok := p.parseExprList()
			if !ok || !p.expect(token.RPAREN) {
				return nil, false
			}
			node = &ast.Node{Kind: ast.Call, Children: []*ast.Node{node, args}}
		case token.LBRACKET:
			p.pos++
			idx, ok := p.parseExpr()
			if !ok || !p.expect(token.RBRACKET) {
				return nil, false
			}
			return &ast.Node{Kind: ast.Index, Children: []*ast.Node{node, idx}}, true
		default:
			return node, true
		}
	}
}

// atom := NUMBER | IDENT | '(' expr ')' | list | lambda
func (p *parser) parseAtom() (*ast.Node, bool) {
	ty, ok := p.peekType()
	if !ok {
		return nil, false
	}
	switch ty {
	case token.NUMBER:
		n := ast.NewNumber(p.toks[p.pos].NumberValue())
		p.pos++
		return n, true
	case token.IDENT:
		n := ast.NewIdent(p.toks[p.pos].IdentValue())
		p.pos++
		return n, true
	case token.LPAREN:
		p.pos++
		e, ok := p.parseExpr()
		if !ok || !p.expect(token.RPAREN) {
			return nil, false
		}
		return e, true
	case token.LBRACKET:
		return p.parseList()
	case token.AT:
		return p.parseLambda()
	default:
		return nil, false
	}
}

// list := '[' expr_list ']'
func (p *parser) parseList() (*ast.Node, bool) {
	if !p.expect(token.LBRACKET) {
		return nil, false
	}
	elems, ok := p.parseExprList()
	if !ok || !p.expect(token.RBRACKET) {
		return nil, false
	}
	return &ast.Node{Kind: ast.List, Children: elems.Children}, true
}

// lambda := '@' '(' param_list ')' '{' expr '}'
func (p *parser) parseLambda() (*ast.Node, bool) {
	if !p.expect(token.AT) || !p.expect(token.LPAREN) {
		return nil, false
	}
	params, _ := p.parseParamList()
	if !p.expect(token.RPAREN) || !p.expect(token.LBRACE) {
		return nil, false
	}
	body, ok := p.parseExpr()
	if !ok || !p.expect(token.RBRACE) {
		return nil, false
	}
	return &ast.Node{Kind: ast.Lambda, Children: []*ast.Node{params, body}}, true
}

// param_list := (IDENT (',' IDENT)*)? — always succeeds, possibly empty.
// A trailing comma is tolerated (matches the reference parser: the comma is
// consumed speculatively and a missing following IDENT simply ends the
// list rather than failing the parse).
func (p *parser) parseParamList() (*ast.Node, bool) {
	node := &ast.Node{Kind: ast.ParamList}
	for {
		ty, ok := p.peekType()
		if !ok || ty != token.IDENT {
			return node, true
		}
		node.Children = append(node.Children, ast.NewIdent(p.toks[p.pos].IdentValue()))
		p.pos++
		if !p.expect(token.COMMA) {
			return node, true
		}
	}
}

// expr_list := (expr (',' expr)*)? — always succeeds, possibly empty. A
// trailing comma is tolerated for the same reason as parseParamList.
func (p *parser) parseExprList() (*ast.Node, bool) {
	node := &ast.Node{Kind: ast.ExprList}
	for {
		e, ok := p.parseExpr()
		if !ok {
			return node, true
		}
		node.Children = append(node.Children, e)
		if !p.expect(token.COMMA) {
			return node, true
		}
	}
}
