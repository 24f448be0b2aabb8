package gojson

import (
	"fmt"

	"github.com/uzleo/gojson/internal/errors"
)

// lexer performs a single left-to-right scan over src without backtracking.
// A fresh lexer is built per Lex call, so concurrent parses never share
// state.
type lexer struct {
	src    string
	cur    int
	tokens []Token
}

// Lex scans src into a flat token sequence. It classifies text into
// punctuation, string, number and keyword tokens and skips whitespace; it
// performs no structural validation (brace matching and grammar rules are
// the parser's job). Tokens reference byte ranges of src rather than copies,
// so src must remain available while the tokens are in use.
func Lex(src string) ([]Token, error) {
	l := &lexer{
		src: src,
		// very rough guess to reduce reslices on big documents
		tokens: make([]Token, 0, len(src)/4),
	}
	return l.scan()
}

func (l *lexer) scan() ([]Token, error) {
	for l.cur < len(l.src) {
		ch := l.src[l.cur]
		switch {
		case ch == '{':
			l.add(TokenLeftBrace, l.cur, l.cur+1)
			l.cur++
		case ch == '}':
			l.add(TokenRightBrace, l.cur, l.cur+1)
			l.cur++
		case ch == '[':
			l.add(TokenLeftBracket, l.cur, l.cur+1)
			l.cur++
		case ch == ']':
			l.add(TokenRightBracket, l.cur, l.cur+1)
			l.cur++
		case ch == ':':
			l.add(TokenColon, l.cur, l.cur+1)
			l.cur++
		case ch == ',':
			l.add(TokenComma, l.cur, l.cur+1)
			l.cur++
		case ch == 't':
			if err := l.scanKeyword("true", TokenTrue); err != nil {
				return nil, err
			}
		case ch == 'f':
			if err := l.scanKeyword("false", TokenFalse); err != nil {
				return nil, err
			}
		case ch == 'n':
			if err := l.scanKeyword("null", TokenNull); err != nil {
				return nil, err
			}
		case ch == '"':
			if err := l.scanString(); err != nil {
				return nil, err
			}
		case ch == '-' || isDigit(ch):
			l.scanNumber()
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			l.cur++
		default:
			return nil, errors.NewLexError(
				fmt.Sprintf("unexpected character %q at offset %d", ch, l.cur),
				errors.ErrUnexpectedCharacter,
			)
		}
	}
	return l.tokens, nil
}

func (l *lexer) add(tt TokenType, start, end int) {
	l.tokens = append(l.tokens, Token{Type: tt, Start: start, End: end})
}

// scanKeyword matches one of the literals true/false/null exactly,
// case-sensitive. A partial or mismatched run is a lex error.
func (l *lexer) scanKeyword(word string, tt TokenType) error {
	end := l.cur + len(word)
	if end > len(l.src) || l.src[l.cur:end] != word {
		return errors.NewLexError(
			fmt.Sprintf("expected literal %q at offset %d", word, l.cur),
			errors.ErrInvalidLiteral,
		)
	}
	l.add(tt, l.cur, end)
	l.cur = end
	return nil
}

// scanString advances to the matching unescaped closing quote. A backslash
// makes the following byte (including another quote) non-terminating; the
// escape sequences themselves are decoded later by the parser. The recorded
// span excludes both quote characters.
func (l *lexer) scanString() error {
	start := l.cur + 1 // past the opening quote
	i := start
	for i < len(l.src) {
		switch l.src[i] {
		case '\\':
			i += 2
		case '"':
			l.add(TokenString, start, i)
			l.cur = i + 1
			return nil
		default:
			i++
		}
	}
	return errors.NewLexError(
		fmt.Sprintf("string starting at offset %d was not terminated", l.cur),
		errors.ErrUnterminatedString,
	)
}

// scanNumber captures the whole run of numeric characters. The run is
// deliberately permissive (it admits shapes like "3.14.15"); the parser's
// conversion step is the authority on whether the lexeme is a valid number.
func (l *lexer) scanNumber() {
	start := l.cur
	i := l.cur
	for i < len(l.src) && isNumberChar(l.src[i]) {
		i++
	}
	l.add(TokenNumber, start, i)
	l.cur = i
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isNumberChar(b byte) bool {
	return isDigit(b) || b == '-' || b == '+' || b == '.' || b == 'e' || b == 'E'
}
