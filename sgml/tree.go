package sgml

// NodeKind discriminates the generic tree variants.
type NodeKind int

const (
	NodeContainer NodeKind = iota
	NodeValue
	NodeText
	NodeEmpty
)

// Node is one vertex of the generic tagged tree. A container node owns its
// children exclusively; the tree has no back-references.
type Node struct {
	Kind      NodeKind
	Container ContainerTag // set for NodeContainer
	Value     ValueTag     // set for NodeValue
	Text      string       // value string or text-block payload
	Children  []*Node      // set for NodeContainer, in input order
}

// BuildTree consumes one node's worth of tokens from the front of toks and
// returns the node plus the unconsumed remainder. At the end of input it
// returns an empty node.
func BuildTree(toks []Token) (*Node, []Token, error) {
	if len(toks) == 0 {
		return &Node{Kind: NodeEmpty}, nil, nil
	}

	tok := toks[0]
	toks = toks[1:]

	switch tok.Kind {
	case TokenOpen:
		open := tok.Container
		var children []*Node
		for {
			if len(toks) == 0 {
				return nil, nil, &UnexpectedEOFError{Open: open}
			}
			next := toks[0]
			if next.Kind == TokenClose {
				if next.Container != open {
					return nil, nil, &UnexpectedCloseTagError{Got: next.Container, Want: open}
				}
				return &Node{Kind: NodeContainer, Container: open, Children: children}, toks[1:], nil
			}
			child, rest, err := BuildTree(toks)
			if err != nil {
				return nil, nil, err
			}
			children = append(children, child)
			toks = rest
		}

	case TokenClose:
		return nil, nil, &UnexpectedCloseTagError{Got: tok.Container}

	case TokenValue:
		// The format allows raw continuation lines that extend a value.
		value := tok.Text
		for len(toks) > 0 && toks[0].Kind == TokenRaw {
			value += toks[0].Text
			toks = toks[1:]
		}
		return &Node{Kind: NodeValue, Value: tok.Value, Text: value}, toks, nil

	case TokenText:
		return &Node{Kind: NodeText, Text: tok.Text}, toks, nil

	default: // TokenRaw with no preceding value
		return nil, nil, &MalformedLineError{Line: tok.Text, Reason: "content outside any tag"}
	}
}

// Flatten re-emits the token sequence a node was built from. Value
// continuations and text blocks come back as single tokens; used to verify
// that tree building preserves tag/value order.
func (n *Node) Flatten() []Token {
	switch n.Kind {
	case NodeContainer:
		toks := []Token{{Kind: TokenOpen, Container: n.Container}}
		for _, child := range n.Children {
			toks = append(toks, child.Flatten()...)
		}
		return append(toks, Token{Kind: TokenClose, Container: n.Container})
	case NodeValue:
		return []Token{{Kind: TokenValue, Value: n.Value, Text: n.Text}}
	case NodeText:
		return []Token{{Kind: TokenText, Text: n.Text}}
	default:
		return nil
	}
}
