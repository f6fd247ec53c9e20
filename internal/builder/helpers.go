package builder

import (
	"github.com/jeje1197/spearmint/internal/errs"
	"github.com/jeje1197/spearmint/internal/lexer"
)

func (b *Builder) peek() lexer.Token {
	if b.pos >= len(b.tokens) {
		return b.tokens[len(b.tokens)-1] // END
	}
	return b.tokens[b.pos]
}

func (b *Builder) previous() lexer.Token {
	if b.pos == 0 {
		return b.tokens[0]
	}
	return b.tokens[b.pos-1]
}

func (b *Builder) advance() lexer.Token {
	tok := b.peek()
	if !b.isAtEnd() {
		b.pos++
	}
	return tok
}

func (b *Builder) check(t lexer.TokenType) bool {
	return b.peek().Type == t
}

func (b *Builder) checkAny(types ...lexer.TokenType) bool {
	for _, t := range types {
		if b.check(t) {
			return true
		}
	}
	return false
}

func (b *Builder) isAtEnd() bool {
	return b.peek().Type == lexer.END
}

// expect consumes the current token if it matches t, otherwise returns a
// ParseError naming the expectation and the offending token's position.
func (b *Builder) expect(t lexer.TokenType) (lexer.Token, error) {
	if b.check(t) {
		return b.advance(), nil
	}
	tok := b.peek()
	return lexer.Token{}, errs.Parsef(tok.Pos(), "expected %s, got %s", t, tok.Type)
}

// skipSemicolons consumes zero or more redundant ';' tokens, reporting how
// many it consumed.
func (b *Builder) skipSemicolons() int {
	n := 0
	for b.check(lexer.SEMICOLON) {
		b.advance()
		n++
	}
	return n
}

// skipTypeExpr consumes an (optional) ': typeExpr' annotation on a variable
// declaration; the grammar parses it purely to discard it (§4.2 typeExpr).
func (b *Builder) skipTypeExpr() error {
	if !b.check(lexer.COLON) {
		return nil
	}
	b.advance() // ':'
	if _, err := b.expect(lexer.IDENTIFIER); err != nil {
		return err
	}
	for b.check(lexer.DOT) {
		b.advance()
		if _, err := b.expect(lexer.IDENTIFIER); err != nil {
			return err
		}
	}
	for b.check(lexer.LBRACKET) {
		b.advance()
		if _, err := b.expect(lexer.RBRACKET); err != nil {
			return err
		}
	}
	return nil
}
