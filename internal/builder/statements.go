package builder

import (
	"github.com/jeje1197/spearmint/internal/errs"
	"github.com/jeje1197/spearmint/internal/lexer"
	"github.com/jeje1197/spearmint/pkg/ast"
)

func (b *Builder) parseImportStatement() (*ast.Import, error) {
	startTok := b.advance() // 'import'
	strTok, err := b.expect(lexer.STRING)
	if err != nil {
		return nil, err
	}
	return &ast.Import{
		BaseNode:   ast.BaseNode{Kind: ast.NodeImport, Pos: startTok.Pos()},
		ModuleName: strTok.Value,
	}, nil
}

// parseVarDeclarationStatement parses ('var'|'const' 'var') ID (':' typeExpr)? '=' expr.
func (b *Builder) parseVarDeclarationStatement() (*ast.VarDeclaration, error) {
	startTok := b.peek()
	isConst := false
	if b.check(lexer.CONST) {
		isConst = true
		b.advance()
	}
	if _, err := b.expect(lexer.VAR); err != nil {
		return nil, err
	}

	nameTok, err := b.expect(lexer.IDENTIFIER)
	if err != nil {
		return nil, err
	}

	if err := b.skipTypeExpr(); err != nil {
		return nil, err
	}

	if _, err := b.expect(lexer.ASSIGN); err != nil {
		return nil, err
	}

	init, err := b.parseExpression()
	if err != nil {
		return nil, err
	}

	return &ast.VarDeclaration{
		BaseNode:    ast.BaseNode{Kind: ast.NodeVarDeclaration, Pos: startTok.Pos()},
		Name:        nameTok.Value,
		Initializer: init,
		IsConst:     isConst,
	}, nil
}

// parseVarAssign parses ID '=' expr, called only when lookahead confirmed
// the current identifier is immediately followed by '='.
func (b *Builder) parseVarAssign() (*ast.VarAssign, error) {
	nameTok, err := b.expect(lexer.IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := b.expect(lexer.ASSIGN); err != nil {
		return nil, err
	}
	expr, err := b.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.VarAssign{
		BaseNode:   ast.BaseNode{Kind: ast.NodeVarAssign, Pos: nameTok.Pos()},
		Name:       nameTok.Value,
		Expression: expr,
	}, nil
}

func (b *Builder) parseIfStatement() (*ast.If, error) {
	startTok := b.advance() // 'if'
	node := &ast.If{BaseNode: ast.BaseNode{Kind: ast.NodeIf, Pos: startTok.Pos()}}

	cond, body, err := b.parseIfCase()
	if err != nil {
		return nil, err
	}
	node.Cases = append(node.Cases, ast.IfCase{Condition: cond, Body: body})

	for b.check(lexer.ELSE) {
		b.advance()
		if b.check(lexer.IF) {
			b.advance()
			cond, body, err := b.parseIfCase()
			if err != nil {
				return nil, err
			}
			node.Cases = append(node.Cases, ast.IfCase{Condition: cond, Body: body})
			continue
		}
		elseBody, err := b.parseBlock()
		if err != nil {
			return nil, err
		}
		node.Else = elseBody
		break
	}

	return node, nil
}

func (b *Builder) parseIfCase() (ast.Node, *ast.VectorWrapper, error) {
	if _, err := b.expect(lexer.LPAREN); err != nil {
		return nil, nil, err
	}
	cond, err := b.parseExpression()
	if err != nil {
		return nil, nil, err
	}
	if _, err := b.expect(lexer.RPAREN); err != nil {
		return nil, nil, err
	}
	body, err := b.parseBlock()
	if err != nil {
		return nil, nil, err
	}
	return cond, body, nil
}

func (b *Builder) parseForStatement() (*ast.For, error) {
	startTok := b.advance() // 'for'
	if _, err := b.expect(lexer.LPAREN); err != nil {
		return nil, err
	}

	init, _, err := b.parseStatement()
	if err != nil {
		return nil, err
	}
	if _, err := b.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}

	cond, err := b.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := b.expect(lexer.SEMICOLON); err != nil {
		return nil, err
	}

	update, _, err := b.parseStatement()
	if err != nil {
		return nil, err
	}
	if _, err := b.expect(lexer.RPAREN); err != nil {
		return nil, err
	}

	body, err := b.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.For{
		BaseNode: ast.BaseNode{Kind: ast.NodeFor, Pos: startTok.Pos()},
		Init:     init,
		Cond:     cond,
		Update:   update,
		Body:     body,
	}, nil
}

func (b *Builder) parseWhileStatement() (*ast.While, error) {
	startTok := b.advance() // 'while'
	if _, err := b.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	cond, err := b.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := b.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	body, err := b.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.While{
		BaseNode: ast.BaseNode{Kind: ast.NodeWhile, Pos: startTok.Pos()},
		Cond:     cond,
		Body:     body,
	}, nil
}

func (b *Builder) parseFunctionDef() (*ast.FunctionDef, error) {
	startTok := b.advance() // 'fn'
	nameTok, err := b.expect(lexer.IDENTIFIER)
	if err != nil {
		return nil, err
	}

	if _, err := b.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	var params []string
	if !b.check(lexer.RPAREN) {
		for {
			p, err := b.expect(lexer.IDENTIFIER)
			if err != nil {
				return nil, err
			}
			params = append(params, p.Value)
			if !b.check(lexer.COMMA) {
				break
			}
			b.advance()
		}
	}
	if _, err := b.expect(lexer.RPAREN); err != nil {
		return nil, err
	}

	body, err := b.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.FunctionDef{
		BaseNode:   ast.BaseNode{Kind: ast.NodeFunctionDef, Pos: startTok.Pos()},
		Name:       nameTok.Value,
		ParamNames: params,
		Body:       body,
	}, nil
}

func (b *Builder) parseReturnStatement() (*ast.Return, error) {
	startTok := b.advance() // 'return'
	node := &ast.Return{BaseNode: ast.BaseNode{Kind: ast.NodeReturn, Pos: startTok.Pos()}}

	if !b.check(lexer.SEMICOLON) && !b.isAtEnd() && !b.check(lexer.RBRACE) {
		expr, err := b.parseExpression()
		if err != nil {
			return nil, err
		}
		node.Expression = expr
	}
	return node, nil
}

// parseStructureDef parses 'type' ID '{' (statement ';')* '}'; only
// VarDeclaration and FunctionDef are legal members (§4.3).
func (b *Builder) parseStructureDef() (*ast.StructureDef, error) {
	startTok := b.advance() // 'type'
	nameTok, err := b.expect(lexer.IDENTIFIER)
	if err != nil {
		return nil, err
	}

	if _, err := b.expect(lexer.LBRACE); err != nil {
		return nil, err
	}

	node := &ast.StructureDef{
		BaseNode: ast.BaseNode{Kind: ast.NodeStructureDef, Pos: startTok.Pos()},
		Name:     nameTok.Value,
	}

	for {
		b.skipSemicolons()
		if b.check(lexer.RBRACE) || b.isAtEnd() {
			break
		}

		tok := b.peek()
		var member ast.Node
		var blockLike bool
		switch tok.Type {
		case lexer.VAR, lexer.CONST:
			member, err = b.parseVarDeclarationStatement()
		case lexer.FN:
			member, err = b.parseFunctionDef()
			blockLike = true
		default:
			return nil, errs.Parsef(tok.Pos(), "only variable declarations and function definitions are allowed in a type block, got %s", tok.Type)
		}
		if err != nil {
			return nil, err
		}
		node.Members = append(node.Members, member)

		consumed := b.skipSemicolons()
		if !blockLike && consumed == 0 && !b.check(lexer.RBRACE) {
			t := b.peek()
			return nil, errs.Parsef(t.Pos(), "expected ';', got %s", t.Type)
		}
	}

	if _, err := b.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return node, nil
}
