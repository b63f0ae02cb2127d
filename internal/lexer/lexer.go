// Package lexer tokenizes Vela source text. It never emits whitespace,
// comments (the language has none) or an explicit end-of-input token; the
// parser observes end of input as an exhausted token slice.
package lexer

import (
	"strconv"
	"strings"

	"github.com/velalang/vela/internal/token"
	"github.com/velalang/vela/internal/verr"
)

// Lexer converts a source string into an ordered token slice.
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           byte
	line         int
	column       int
}

// New creates a Lexer positioned at the start of input.
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		if l.ch == '\n' {
			l.line++
			l.column = 0
		}
		l.readChar()
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

// Tokenize runs the lexer to completion, returning every token in source
// order. On failure it returns a *verr.Error (DECIMAL_OUT_OF_RANGE or
// PARSE_FAILED).
func Tokenize(input string) ([]token.Token, error) {
	l := New(input)
	var toks []token.Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		if tok.Type == token.EOF {
			break
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

func (l *Lexer) next() (token.Token, error) {
	l.skipWhitespace()

	line, col := l.line, l.column

	if l.ch == 0 {
		return token.Token{Type: token.EOF, Line: line, Column: col}, nil
	}

	if typ, ok := token.LookupPunctuator(l.ch); ok {
		lexeme := string(l.ch)
		l.readChar()
		return token.Token{Type: typ, Lexeme: lexeme, Line: line, Column: col}, nil
	}

	if isDigit(l.ch) {
		return l.readNumber(line, col)
	}

	if isIdentStart(l.ch) {
		return l.readIdent(line, col), nil
	}

	return token.Token{}, verr.New(verr.ParseFailed)
}

// readNumber consumes a standard decimal literal: digits, an optional
// fractional part, and an optional signed e/E exponent. A leading sign is
// never consumed here — unary minus is the parser's job (spec §4.1).
func (l *Lexer) readNumber(line, col int) (token.Token, error) {
	start := l.position

	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		save := l.position
		saveRead := l.readPosition
		saveCh := l.ch
		saveCol := l.column

		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		if isDigit(l.ch) {
			for isDigit(l.ch) {
				l.readChar()
			}
		} else {
			// Not actually an exponent; rewind.
			l.position = save
			l.readPosition = saveRead
			l.ch = saveCh
			l.column = saveCol
		}
	}

	lexeme := l.input[start:l.position]
	f, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		if strings.Contains(err.Error(), "range") {
			return token.Token{}, verr.New(verr.DecimalOutOfRange)
		}
		return token.Token{}, verr.New(verr.ParseFailed)
	}
	return token.Token{Type: token.NUMBER, Lexeme: lexeme, Literal: f, Line: line, Column: col}, nil
}

func (l *Lexer) readIdent(line, col int) token.Token {
	start := l.position
	for isIdentPart(l.ch) {
		l.readChar()
	}
	lexeme := l.input[start:l.position]
	return token.Token{Type: token.IDENT, Lexeme: lexeme, Literal: lexeme, Line: line, Column: col}
}
