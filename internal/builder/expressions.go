package builder

import (
	"strconv"

	"github.com/jeje1197/spearmint/internal/errs"
	"github.com/jeje1197/spearmint/internal/lexer"
	"github.com/jeje1197/spearmint/pkg/ast"
)

// parseExpression is the entry point of the precedence-climbing expression
// grammar (§4.2): or -> and -> comparison -> additive -> multiplicative ->
// power -> modifier (postfix chain) -> atom.
func (b *Builder) parseExpression() (ast.Node, error) {
	return b.parseOr()
}

func (b *Builder) parseOr() (ast.Node, error) {
	left, err := b.parseAnd()
	if err != nil {
		return nil, err
	}
	for b.check(lexer.OR) {
		opTok := b.advance()
		right, err := b.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{BaseNode: ast.BaseNode{Kind: ast.NodeBinOp, Pos: opTok.Pos()}, Left: left, Op: "||", Right: right}
	}
	return left, nil
}

func (b *Builder) parseAnd() (ast.Node, error) {
	left, err := b.parseComparison()
	if err != nil {
		return nil, err
	}
	for b.check(lexer.AND) {
		opTok := b.advance()
		right, err := b.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{BaseNode: ast.BaseNode{Kind: ast.NodeBinOp, Pos: opTok.Pos()}, Left: left, Op: "&&", Right: right}
	}
	return left, nil
}

var comparisonOps = map[lexer.TokenType]string{
	lexer.LT:  "<",
	lexer.GT:  ">",
	lexer.LTE: "<=",
	lexer.GTE: ">=",
	lexer.EQ:  "==",
	lexer.NEQ: "!=",
}

func (b *Builder) parseComparison() (ast.Node, error) {
	left, err := b.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := comparisonOps[b.peek().Type]
		if !ok {
			break
		}
		opTok := b.advance()
		right, err := b.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{BaseNode: ast.BaseNode{Kind: ast.NodeBinOp, Pos: opTok.Pos()}, Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (b *Builder) parseAdditive() (ast.Node, error) {
	left, err := b.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for b.checkAny(lexer.PLUS, lexer.MINUS) {
		opTok := b.advance()
		op := "+"
		if opTok.Type == lexer.MINUS {
			op = "-"
		}
		right, err := b.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{BaseNode: ast.BaseNode{Kind: ast.NodeBinOp, Pos: opTok.Pos()}, Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (b *Builder) parseMultiplicative() (ast.Node, error) {
	left, err := b.parsePower()
	if err != nil {
		return nil, err
	}
	for b.checkAny(lexer.STAR, lexer.SLASH, lexer.PERCENT) {
		opTok := b.advance()
		var op string
		switch opTok.Type {
		case lexer.STAR:
			op = "*"
		case lexer.SLASH:
			op = "/"
		case lexer.PERCENT:
			op = "%"
		}
		right, err := b.parsePower()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{BaseNode: ast.BaseNode{Kind: ast.NodeBinOp, Pos: opTok.Pos()}, Left: left, Op: op, Right: right}
	}
	return left, nil
}

// parsePower is right-associative: 2^3^2 == 2^(3^2).
func (b *Builder) parsePower() (ast.Node, error) {
	left, err := b.parseModifier()
	if err != nil {
		return nil, err
	}
	if b.check(lexer.CARET) {
		opTok := b.advance()
		right, err := b.parsePower()
		if err != nil {
			return nil, err
		}
		return &ast.BinOp{BaseNode: ast.BaseNode{Kind: ast.NodeBinOp, Pos: opTok.Pos()}, Left: left, Op: "^", Right: right}, nil
	}
	return left, nil
}

// parseModifier wraps an atom in the postfix chain of call/attribute/index
// operations. An attribute access immediately followed by '=' terminates the
// chain as an AttributeAssign (§4.2: only the trailing '.field' of a chain is
// assignable).
func (b *Builder) parseModifier() (ast.Node, error) {
	node, err := b.parseAtom()
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case b.check(lexer.LPAREN):
			b.advance()
			var args []ast.Node
			if !b.check(lexer.RPAREN) {
				for {
					arg, err := b.parseExpression()
					if err != nil {
						return nil, err
					}
					args = append(args, arg)
					if !b.check(lexer.COMMA) {
						break
					}
					b.advance()
				}
			}
			closeTok, err := b.expect(lexer.RPAREN)
			if err != nil {
				return nil, err
			}
			node = &ast.FunctionCall{BaseNode: ast.BaseNode{Kind: ast.NodeFunctionCall, Pos: closeTok.Pos()}, Callee: node, Args: args}

		case b.check(lexer.DOT):
			dotTok := b.advance()
			fieldTok, err := b.expect(lexer.IDENTIFIER)
			if err != nil {
				return nil, err
			}
			access := &ast.AttributeAccess{BaseNode: ast.BaseNode{Kind: ast.NodeAttributeAccess, Pos: dotTok.Pos()}, Target: node, Field: fieldTok.Value}
			if b.check(lexer.ASSIGN) {
				b.advance()
				value, err := b.parseExpression()
				if err != nil {
					return nil, err
				}
				return &ast.AttributeAssign{BaseNode: ast.BaseNode{Kind: ast.NodeAttributeAssign, Pos: access.Pos}, Target: access, Value: value}, nil
			}
			node = access

		case b.check(lexer.LBRACKET):
			openTok := b.advance()
			index, err := b.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := b.expect(lexer.RBRACKET); err != nil {
				return nil, err
			}
			node = &ast.IndexAccess{BaseNode: ast.BaseNode{Kind: ast.NodeIndexAccess, Pos: openTok.Pos()}, Target: node, Index: index}

		default:
			return node, nil
		}
	}
}

// parseAtom parses unary prefix operators, literals, identifiers, list
// literals, grouped expressions, and the 'new' constructor form. Unary
// operators recurse directly into parseAtom rather than the full modifier
// chain, matching the source grammar's atom-level unary rule.
func (b *Builder) parseAtom() (ast.Node, error) {
	tok := b.peek()

	switch tok.Type {
	case lexer.PLUS, lexer.MINUS, lexer.BANG:
		b.advance()
		op := map[lexer.TokenType]string{lexer.PLUS: "+", lexer.MINUS: "-", lexer.BANG: "!"}[tok.Type]
		operand, err := b.parseAtom()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{BaseNode: ast.BaseNode{Kind: ast.NodeUnaryOp, Pos: tok.Pos()}, Op: op, Operand: operand}, nil

	case lexer.INT:
		b.advance()
		v, err := strconv.ParseInt(tok.Value, 10, 64)
		if err != nil {
			return nil, errs.Parsef(tok.Pos(), "invalid integer literal %q", tok.Value)
		}
		return &ast.IntLiteral{BaseNode: ast.BaseNode{Kind: ast.NodeIntLiteral, Pos: tok.Pos()}, Value: v}, nil

	case lexer.FLOAT:
		b.advance()
		v, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return nil, errs.Parsef(tok.Pos(), "invalid float literal %q", tok.Value)
		}
		return &ast.FloatLiteral{BaseNode: ast.BaseNode{Kind: ast.NodeFloatLiteral, Pos: tok.Pos()}, Value: v}, nil

	case lexer.STRING:
		b.advance()
		return &ast.StringLiteral{BaseNode: ast.BaseNode{Kind: ast.NodeStringLiteral, Pos: tok.Pos()}, Value: tok.Value}, nil

	case lexer.IDENTIFIER:
		b.advance()
		return &ast.VarAccess{BaseNode: ast.BaseNode{Kind: ast.NodeVarAccess, Pos: tok.Pos()}, Name: tok.Value}, nil

	case lexer.LBRACKET:
		b.advance()
		list := &ast.ListLiteral{BaseNode: ast.BaseNode{Kind: ast.NodeListLiteral, Pos: tok.Pos()}}
		if !b.check(lexer.RBRACKET) {
			for {
				el, err := b.parseExpression()
				if err != nil {
					return nil, err
				}
				list.Elements = append(list.Elements, el)
				if !b.check(lexer.COMMA) {
					break
				}
				b.advance()
			}
		}
		if _, err := b.expect(lexer.RBRACKET); err != nil {
			return nil, err
		}
		return list, nil

	case lexer.LPAREN:
		b.advance()
		inner, err := b.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := b.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return inner, nil

	case lexer.NEW:
		return b.parseNewExpression()

	default:
		return nil, errs.Parsef(tok.Pos(), "unexpected token %s in expression", tok.Type)
	}
}

// parseNewExpression parses 'new' followed by a dotted identifier/attribute
// chain naming a type, plus an optional parenthesized argument list that is
// parsed and discarded: createInstance takes no constructor arguments, so
// there is nothing for those arguments to bind to.
func (b *Builder) parseNewExpression() (ast.Node, error) {
	startTok := b.advance() // 'new'

	nameTok, err := b.expect(lexer.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	var ref ast.Node = &ast.VarAccess{BaseNode: ast.BaseNode{Kind: ast.NodeVarAccess, Pos: nameTok.Pos()}, Name: nameTok.Value}

	for b.check(lexer.DOT) {
		dotTok := b.advance()
		fieldTok, err := b.expect(lexer.IDENTIFIER)
		if err != nil {
			return nil, err
		}
		ref = &ast.AttributeAccess{BaseNode: ast.BaseNode{Kind: ast.NodeAttributeAccess, Pos: dotTok.Pos()}, Target: ref, Field: fieldTok.Value}
	}

	if b.check(lexer.LPAREN) {
		b.advance()
		if !b.check(lexer.RPAREN) {
			for {
				if _, err := b.parseExpression(); err != nil {
					return nil, err
				}
				if !b.check(lexer.COMMA) {
					break
				}
				b.advance()
			}
		}
		if _, err := b.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
	}

	return &ast.ConstructorCall{BaseNode: ast.BaseNode{Kind: ast.NodeConstructorCall, Pos: startTok.Pos()}, Expression: ref}, nil
}
