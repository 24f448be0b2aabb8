package gojson

// TokenType is the enumeration of all token kinds the lexer can emit.
type TokenType int

const (
	TokenLeftBrace    TokenType = iota // "{"
	TokenRightBrace                    // "}"
	TokenLeftBracket                   // "["
	TokenRightBracket                  // "]"
	TokenColon                         // ":"
	TokenComma                         // ","
	TokenString                        // quoted string; lexeme excludes the quotes
	TokenNumber                        // numeric run; validated during parsing
	TokenTrue                          // literal "true"
	TokenFalse                         // literal "false"
	TokenNull                          // literal "null"
)

// String returns a human-readable name for the token type, used in
// diagnostics.
func (t TokenType) String() string {
	switch t {
	case TokenLeftBrace:
		return "'{'"
	case TokenRightBrace:
		return "'}'"
	case TokenLeftBracket:
		return "'['"
	case TokenRightBracket:
		return "']'"
	case TokenColon:
		return "':'"
	case TokenComma:
		return "','"
	case TokenString:
		return "string"
	case TokenNumber:
		return "number"
	case TokenTrue:
		return "true"
	case TokenFalse:
		return "false"
	case TokenNull:
		return "null"
	default:
		return "unknown"
	}
}

// Token is a single lexical unit produced by the lexer.
//
// A token does not own any text. Start and End are byte offsets [Start, End)
// into the source string handed to Lex; the source must outlive the token
// slice. For TokenString the span excludes the surrounding quotes and still
// contains the raw, undecoded escape sequences. Punctuation and keyword
// tokens carry their span only for positioning in error messages.
type Token struct {
	Type  TokenType
	Start int
	End   int
}

// Lexeme returns the text span of the token within src. src must be the same
// string the token was lexed from.
func (t Token) Lexeme(src string) string {
	return src[t.Start:t.End]
}
