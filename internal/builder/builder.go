// Package builder implements the hand-written recursive-descent parser that
// turns a Spearmint token stream into an AST program.
package builder

import (
	"github.com/jeje1197/spearmint/internal/errs"
	"github.com/jeje1197/spearmint/internal/lexer"
	"github.com/jeje1197/spearmint/pkg/ast"
)

// Builder walks a token stream and emits AST nodes. Errors abort parsing
// immediately (§7: the pipeline is not tolerant of multiple errors per run).
type Builder struct {
	filename string
	tokens   []lexer.Token
	pos      int
}

// New tokenizes input under filename and returns a Builder ready to Build.
func New(filename, input string) (*Builder, error) {
	lex := lexer.New(filename, input)
	tokens, err := lex.Tokenize()
	if err != nil {
		return nil, err
	}
	return &Builder{filename: filename, tokens: tokens, pos: 0}, nil
}

// Build parses the full token stream into a program: an ordered statement
// list wrapped in a VectorWrapper, per §3's "list of statements" contract.
// The parse must reach the END token; residual input is a ParseError.
func (b *Builder) Build() (*ast.VectorWrapper, error) {
	program := &ast.VectorWrapper{
		BaseNode: ast.BaseNode{Kind: ast.NodeVectorWrapper, Pos: b.peek().Pos()},
	}

	for {
		b.skipSemicolons()
		if b.isAtEnd() {
			break
		}

		stmt, blockLike, err := b.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, stmt)

		consumed := b.skipSemicolons()
		if !blockLike && consumed == 0 && !b.isAtEnd() {
			tok := b.peek()
			return nil, errs.Parsef(tok.Pos(), "expected ';', got %s", tok.Type)
		}
	}

	if !b.isAtEnd() {
		tok := b.peek()
		return nil, errs.Parsef(tok.Pos(), "unexpected token %s after program", tok.Type)
	}

	return program, nil
}

// parseStatement dispatches on the current token and returns the parsed
// node along with whether it is "block-like" (if/for/while/fn/type), whose
// trailing ';' the grammar treats as optional/redundant (§4.2).
func (b *Builder) parseStatement() (ast.Node, bool, error) {
	tok := b.peek()

	switch tok.Type {
	case lexer.IMPORT:
		n, err := b.parseImportStatement()
		return n, false, err
	case lexer.VAR, lexer.CONST:
		n, err := b.parseVarDeclarationStatement()
		return n, false, err
	case lexer.IF:
		n, err := b.parseIfStatement()
		return n, true, err
	case lexer.FOR:
		n, err := b.parseForStatement()
		return n, true, err
	case lexer.WHILE:
		n, err := b.parseWhileStatement()
		return n, true, err
	case lexer.FN:
		n, err := b.parseFunctionDef()
		return n, true, err
	case lexer.RETURN:
		n, err := b.parseReturnStatement()
		return n, false, err
	case lexer.BREAK:
		n := &ast.Break{BaseNode: ast.BaseNode{Kind: ast.NodeBreak, Pos: tok.Pos()}}
		b.advance()
		return n, false, nil
	case lexer.CONTINUE:
		n := &ast.Continue{BaseNode: ast.BaseNode{Kind: ast.NodeContinue, Pos: tok.Pos()}}
		b.advance()
		return n, false, nil
	case lexer.TYPE:
		n, err := b.parseStructureDef()
		return n, true, err
	case lexer.IDENTIFIER:
		if b.pos+1 < len(b.tokens) && b.tokens[b.pos+1].Type == lexer.ASSIGN {
			n, err := b.parseVarAssign()
			return n, false, err
		}
		n, err := b.parseExpression()
		return n, false, err
	default:
		n, err := b.parseExpression()
		return n, false, err
	}
}

// parseBlock parses '{' (statement ';')* '}' into a VectorWrapper.
func (b *Builder) parseBlock() (*ast.VectorWrapper, error) {
	startTok, err := b.expect(lexer.LBRACE)
	if err != nil {
		return nil, err
	}

	block := &ast.VectorWrapper{BaseNode: ast.BaseNode{Kind: ast.NodeVectorWrapper, Pos: startTok.Pos()}}

	for {
		b.skipSemicolons()
		if b.check(lexer.RBRACE) || b.isAtEnd() {
			break
		}
		stmt, blockLike, err := b.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)

		consumed := b.skipSemicolons()
		if !blockLike && consumed == 0 && !b.check(lexer.RBRACE) {
			tok := b.peek()
			return nil, errs.Parsef(tok.Pos(), "expected ';', got %s", tok.Type)
		}
	}

	if _, err := b.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return block, nil
}
