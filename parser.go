package gojson

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/uzleo/gojson/internal/errors"
)

// maxDepth bounds the nesting the parser accepts so adversarial input fails
// with a parse error instead of exhausting the call stack.
const maxDepth = 10000

// parser consumes a token sequence with one token of lookahead. A fresh
// parser is built per ParseTokens call; nothing is shared between parses.
type parser struct {
	src  string
	toks []Token
	pos  int
}

// ParseTokens builds a Value tree from a token sequence produced by Lex over
// the same src. It enforces the JSON grammar: a single root value of any
// variant, objects with string keys and colon-separated members, no trailing
// commas, and nothing but end-of-input after the root value.
func ParseTokens(src string, toks []Token) (Value, error) {
	p := &parser{src: src, toks: toks}
	v, err := p.parseValue(0)
	if err != nil {
		return Value{}, err
	}
	if p.pos != len(p.toks) {
		return Value{}, errors.NewParseError(
			fmt.Sprintf("unexpected %s after the root value", p.toks[p.pos].Type),
			errors.ErrTrailingTokens,
		)
	}
	return v, nil
}

func (p *parser) next() (Token, error) {
	if p.pos >= len(p.toks) {
		return Token{}, errors.NewParseError("unexpected end of input", errors.ErrUnexpectedEnd)
	}
	t := p.toks[p.pos]
	p.pos++
	return t, nil
}

func (p *parser) peek() (Token, bool) {
	if p.pos >= len(p.toks) {
		return Token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) expect(tt TokenType) error {
	t, err := p.next()
	if err != nil {
		return err
	}
	if t.Type != tt {
		return errors.NewParseError(
			fmt.Sprintf("expected %s but found %s at offset %d", tt, t.Type, t.Start),
			errors.ErrUnexpectedToken,
		)
	}
	return nil
}

func (p *parser) parseValue(depth int) (Value, error) {
	if depth > maxDepth {
		return Value{}, errors.NewParseError(
			fmt.Sprintf("nesting deeper than %d levels", maxDepth),
			errors.ErrMaxDepth,
		)
	}
	t, err := p.next()
	if err != nil {
		return Value{}, err
	}
	switch t.Type {
	case TokenLeftBrace:
		return p.parseObject(depth)
	case TokenLeftBracket:
		return p.parseArray(depth)
	case TokenString:
		s, err := decodeString(t.Lexeme(p.src))
		if err != nil {
			return Value{}, err
		}
		return String(s), nil
	case TokenNumber:
		// The lexer captured the whole numeric run; ParseFloat must consume
		// the entire lexeme, which rejects shapes like "3.14.15".
		lexeme := t.Lexeme(p.src)
		f, convErr := strconv.ParseFloat(lexeme, 64)
		if convErr != nil {
			return Value{}, errors.NewParseError(
				fmt.Sprintf("invalid number literal %q at offset %d", lexeme, t.Start),
				errors.ErrInvalidNumber,
			)
		}
		return Number(f), nil
	case TokenTrue:
		return Bool(true), nil
	case TokenFalse:
		return Bool(false), nil
	case TokenNull:
		return Null(), nil
	default:
		return Value{}, errors.NewParseError(
			fmt.Sprintf("unexpected %s at offset %d, expected a value", t.Type, t.Start),
			errors.ErrUnexpectedToken,
		)
	}
}

// parseObject is entered after the opening brace has been consumed.
func (p *parser) parseObject(depth int) (Value, error) {
	members := map[string]Value{}

	// Empty object: the member loop below does not admit zero members.
	if t, ok := p.peek(); ok && t.Type == TokenRightBrace {
		p.pos++
		return Object(members), nil
	}

	for {
		keyTok, err := p.next()
		if err != nil {
			return Value{}, err
		}
		if keyTok.Type == TokenRightBrace {
			// A closing brace right after a comma means the previous comma
			// was trailing.
			return Value{}, errors.NewParseError(
				fmt.Sprintf("trailing comma before '}' at offset %d", keyTok.Start),
				errors.ErrTrailingComma,
			)
		}
		if keyTok.Type != TokenString {
			return Value{}, errors.NewParseError(
				fmt.Sprintf("object key must be a string, found %s at offset %d", keyTok.Type, keyTok.Start),
				errors.ErrUnexpectedToken,
			)
		}
		key, err := decodeString(keyTok.Lexeme(p.src))
		if err != nil {
			return Value{}, err
		}
		if err := p.expect(TokenColon); err != nil {
			return Value{}, err
		}
		v, err := p.parseValue(depth + 1)
		if err != nil {
			return Value{}, err
		}
		// Duplicate keys: the last occurrence wins.
		members[key] = v

		sep, err := p.next()
		if err != nil {
			return Value{}, err
		}
		if sep.Type == TokenComma {
			continue
		}
		if sep.Type == TokenRightBrace {
			return Object(members), nil
		}
		return Value{}, errors.NewParseError(
			fmt.Sprintf("expected ',' or '}' in object, found %s at offset %d", sep.Type, sep.Start),
			errors.ErrUnexpectedToken,
		)
	}
}

// parseArray is entered after the opening bracket has been consumed.
func (p *parser) parseArray(depth int) (Value, error) {
	var elems []Value

	// Empty array: the element loop below does not admit zero elements.
	if t, ok := p.peek(); ok && t.Type == TokenRightBracket {
		p.pos++
		return Array(), nil
	}

	for {
		if t, ok := p.peek(); ok && t.Type == TokenRightBracket {
			return Value{}, errors.NewParseError(
				fmt.Sprintf("trailing comma before ']' at offset %d", t.Start),
				errors.ErrTrailingComma,
			)
		}
		v, err := p.parseValue(depth + 1)
		if err != nil {
			return Value{}, err
		}
		elems = append(elems, v)

		sep, err := p.next()
		if err != nil {
			return Value{}, err
		}
		if sep.Type == TokenComma {
			continue
		}
		if sep.Type == TokenRightBracket {
			return Array(elems...), nil
		}
		return Value{}, errors.NewParseError(
			fmt.Sprintf("expected ',' or ']' in array, found %s at offset %d", sep.Type, sep.Start),
			errors.ErrUnexpectedToken,
		)
	}
}

// decodeString converts a raw string lexeme (quotes already stripped, escape
// sequences still in place) into its decoded content. Supports the JSON
// escapes including \uXXXX with UTF-16 surrogate pairs.
func decodeString(raw string) (string, error) {
	if !strings.ContainsRune(raw, '\\') {
		return raw, nil
	}

	var out strings.Builder
	out.Grow(len(raw))
	for i := 0; i < len(raw); {
		ch := raw[i]
		if ch != '\\' {
			out.WriteByte(ch)
			i++
			continue
		}
		if i+1 >= len(raw) {
			return "", errors.NewParseError("incomplete escape sequence at end of string", errors.ErrInvalidEscape)
		}
		esc := raw[i+1]
		i += 2
		switch esc {
		case '"':
			out.WriteByte('"')
		case '\\':
			out.WriteByte('\\')
		case '/':
			out.WriteByte('/')
		case 'b':
			out.WriteByte('\b')
		case 'f':
			out.WriteByte('\f')
		case 'n':
			out.WriteByte('\n')
		case 'r':
			out.WriteByte('\r')
		case 't':
			out.WriteByte('\t')
		case 'u':
			r, n, err := decodeUnicodeEscape(raw[i:])
			if err != nil {
				return "", err
			}
			out.WriteRune(r)
			i += n
		default:
			return "", errors.NewParseError(
				fmt.Sprintf("invalid escape sequence \\%c", esc),
				errors.ErrInvalidEscape,
			)
		}
	}
	return out.String(), nil
}

// decodeUnicodeEscape reads the hex digits following a \u escape, pairing a
// high surrogate with a following \uXXXX low surrogate when present. It
// returns the decoded rune and the number of bytes consumed after "\u".
func decodeUnicodeEscape(s string) (rune, int, error) {
	if len(s) < 4 {
		return 0, 0, errors.NewParseError("unicode escape needs 4 hex digits", errors.ErrInvalidEscape)
	}
	hi, err := strconv.ParseUint(s[:4], 16, 32)
	if err != nil {
		return 0, 0, errors.NewParseError("invalid unicode escape", errors.ErrInvalidEscape)
	}
	r := rune(hi)
	if !utf16.IsSurrogate(r) {
		return r, 4, nil
	}
	if len(s) >= 10 && s[4] == '\\' && s[5] == 'u' {
		lo, err := strconv.ParseUint(s[6:10], 16, 32)
		if err == nil {
			if paired := utf16.DecodeRune(r, rune(lo)); paired != utf8.RuneError {
				return paired, 10, nil
			}
		}
	}
	// Unpaired surrogate: keep the replacement character, as the stdlib does.
	return utf8.RuneError, 4, nil
}
