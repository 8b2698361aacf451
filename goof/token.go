package goof

// TokenType identifies the lexical category of a token.
type TokenType string

const (
	tokenEOF     TokenType = "EOF"
	tokenNewline TokenType = "NEWLINE"

	tokenIdent  TokenType = "IDENT"
	tokenInt    TokenType = "INT"
	tokenString TokenType = "STRING"

	tokenWrite TokenType = "WRITE"
	tokenRead  TokenType = "READ"
	tokenRun   TokenType = "RUN"
	tokenFrom  TokenType = "FROM"
	tokenTo    TokenType = "TO"
	tokenAt    TokenType = "AT"
	tokenEnd   TokenType = "END"
	tokenIf    TokenType = "IF"
	tokenBe    TokenType = "BE"

	tokenYes   TokenType = "YES"
	tokenNo    TokenType = "NO"
	tokenOpen  TokenType = "OPEN"
	tokenClose TokenType = "CLOSE"
	tokenDot   TokenType = "DOT"

	tokenNeg    TokenType = "NEG"
	tokenNum    TokenType = "NUM"
	tokenText   TokenType = "TEXT"
	tokenChoice TokenType = "CHOICE"

	tokenPow   TokenType = "POW"
	tokenTimes TokenType = "TIMES"
	tokenOver  TokenType = "OVER"
	tokenMod   TokenType = "MOD"
	tokenPlus  TokenType = "PLUS"
	tokenMinus TokenType = "MINUS"

	tokenBelow   TokenType = "BELOW"
	tokenAbove   TokenType = "ABOVE"
	tokenAtMost  TokenType = "ATMOST"
	tokenAtLeast TokenType = "ATLEAST"
	tokenIs      TokenType = "IS"
	tokenIsnt    TokenType = "ISNT"

	tokenNot TokenType = "NOT"
	tokenAnd TokenType = "AND"
	tokenOr  TokenType = "OR"

	tokenComment TokenType = "COM"
)

// Token captures lexical information for the parser.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

// Position identifies a 1-based line and column in the source file.
type Position struct {
	Line   int
	Column int
}

var keywords = map[string]TokenType{
	"write":   tokenWrite,
	"read":    tokenRead,
	"run":     tokenRun,
	"from":    tokenFrom,
	"to":      tokenTo,
	"at":      tokenAt,
	"end":     tokenEnd,
	"if":      tokenIf,
	"be":      tokenBe,
	"yes":     tokenYes,
	"no":      tokenNo,
	"open":    tokenOpen,
	"close":   tokenClose,
	"dot":     tokenDot,
	"neg":     tokenNeg,
	"num":     tokenNum,
	"text":    tokenText,
	"choice":  tokenChoice,
	"pow":     tokenPow,
	"times":   tokenTimes,
	"over":    tokenOver,
	"mod":     tokenMod,
	"plus":    tokenPlus,
	"minus":   tokenMinus,
	"below":   tokenBelow,
	"above":   tokenAbove,
	"atmost":  tokenAtMost,
	"atleast": tokenAtLeast,
	"is":      tokenIs,
	"isnt":    tokenIsnt,
	"not":     tokenNot,
	"and":     tokenAnd,
	"or":      tokenOr,
	"com":     tokenComment,
}

func lookupIdent(ident string) TokenType {
	if tt, ok := keywords[ident]; ok {
		return tt
	}
	return tokenIdent
}

// Keywords returns the reserved words of the language in no particular order.
func Keywords() []string {
	out := make([]string, 0, len(keywords))
	for word := range keywords {
		out = append(out, word)
	}
	return out
}
