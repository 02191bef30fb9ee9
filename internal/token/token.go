package token

type TokenType string

type Token struct {
	Type    TokenType
	Lexeme  string // raw text as it appeared in the source
	Literal interface{}
	Line    int
	Column  int
}

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	// Identifiers and literals
	IDENT = "IDENT"
	INT   = "INT"

	// Operators
	PLUS     = "PLUS"     // +
	MINUS    = "MINUS"    // -
	ASTERISK = "ASTERISK" // *
	LT       = "LT"       // <
	LE       = "LE"       // <=
	EQ       = "EQ"       // ==
	NOT_EQ   = "NOT_EQ"   // !=
	AND      = "AND"      // &&
	OR       = "OR"       // ||
	CONS     = "CONS"     // ::

	ASSIGN    = "ASSIGN"    // =
	BACKSLASH = "BACKSLASH" // \
	ARROW     = "ARROW"     // ->

	// Delimiters
	LPAREN   = "LPAREN"   // (
	RPAREN   = "RPAREN"   // )
	LBRACE   = "LBRACE"   // {
	RBRACE   = "RBRACE"   // }
	LBRACKET = "LBRACKET" // [
	RBRACKET = "RBRACKET" // ]

	// Keywords
	LET   = "LET"
	IN    = "IN"
	IF    = "IF"
	ELSE  = "ELSE"
	TRUE  = "TRUE"
	FALSE = "FALSE"
)

var keywords = map[string]TokenType{
	"let":   LET,
	"in":    IN,
	"if":    IF,
	"else":  ELSE,
	"true":  TRUE,
	"false": FALSE,
}

// LookupIdent returns the keyword token type for ident, or IDENT.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}
