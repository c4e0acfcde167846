package sgml

import "fmt"

// TokenKind discriminates the token variants the lexer produces.
type TokenKind int

const (
	// TokenOpen and TokenClose bracket a container.
	TokenOpen TokenKind = iota
	TokenClose
	// TokenValue carries a scalar tag and its raw, unparsed string.
	TokenValue
	// TokenText is the verbatim payload of a <TEXT> block.
	TokenText
	// TokenRaw is a bare continuation line extending the preceding value.
	TokenRaw
)

func (k TokenKind) String() string {
	switch k {
	case TokenOpen:
		return "open"
	case TokenClose:
		return "close"
	case TokenValue:
		return "value"
	case TokenText:
		return "text"
	case TokenRaw:
		return "raw"
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is one element of the flat stream between the lexer and the tree
// builder. Immutable once produced.
type Token struct {
	Kind      TokenKind
	Container ContainerTag // set for TokenOpen / TokenClose
	Value     ValueTag     // set for TokenValue
	Text      string       // value string, text-block payload, or raw line
}

func (t Token) String() string {
	switch t.Kind {
	case TokenOpen:
		return fmt.Sprintf("<%s>", t.Container)
	case TokenClose:
		return fmt.Sprintf("</%s>", t.Container)
	case TokenValue:
		return fmt.Sprintf("<%s>%s", t.Value, t.Text)
	case TokenText:
		return fmt.Sprintf("TEXT(%d bytes)", len(t.Text))
	default:
		return fmt.Sprintf("RAW(%q)", t.Text)
	}
}
