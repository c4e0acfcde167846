package sgml

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// textTag is handled by the lexer itself: the body of a <TEXT> block may
// contain embedded tag-like strings (uuencoded attachments, nested markup)
// that must not be tokenized.
const textTag = "TEXT"

const textClose = "</" + textTag + ">"

// maxLine bounds a single input line. Uuencoded payloads keep lines short;
// the generous cap only guards against reading a non-archive file.
const maxLine = 1 << 20

// Tokenize reads a whole archive and returns its token stream, or the first
// classification error. Partial streams are never returned.
func Tokenize(r io.Reader) ([]Token, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var tokens []Token
	for sc.Scan() {
		raw := sc.Text()
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if !strings.HasPrefix(line, "<") {
			// Continuation of the previous value line; the tree builder
			// rejects it anywhere else.
			tokens = append(tokens, Token{Kind: TokenRaw, Text: line})
			continue
		}

		name, value, closing, err := splitTagLine(line)
		if err != nil {
			return nil, err
		}

		if name == textTag && !closing {
			body, err := captureText(sc)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, Token{Kind: TokenText, Text: body})
			continue
		}

		switch {
		case closing:
			tag, err := ParseContainerTag(name)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, Token{Kind: TokenClose, Container: tag})
		case IsContainerTag(name):
			if value != "" {
				return nil, &MalformedLineError{Line: line, Reason: fmt.Sprintf("container tag <%s> carries a value", name)}
			}
			tokens = append(tokens, Token{Kind: TokenOpen, Container: ContainerTag(name)})
		default:
			tag, err := ParseValueTag(name)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, Token{Kind: TokenValue, Value: tag, Text: value})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return tokens, nil
}

// splitTagLine decomposes a trimmed line starting with '<' into tag name,
// trailing value, and whether it is a close tag.
func splitTagLine(line string) (name, value string, closing bool, err error) {
	end := strings.IndexByte(line, '>')
	if end < 0 {
		return "", "", false, &MalformedLineError{Line: line, Reason: "missing '>'"}
	}
	name = line[1:end]
	value = line[end+1:]
	if strings.HasPrefix(name, "/") {
		name = name[1:]
		if value != "" {
			return "", "", false, &MalformedLineError{Line: line, Reason: "close tag carries a trailing value"}
		}
		closing = true
	}
	if name == "" {
		return "", "", false, &MalformedLineError{Line: line, Reason: "empty tag name"}
	}
	return name, value, closing, nil
}

// captureText collects lines verbatim until the literal </TEXT> marker.
// The body is not line-trimmed: uuencoded data is whitespace-significant.
func captureText(sc *bufio.Scanner) (string, error) {
	var b strings.Builder
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimRight(line, "\r") == textClose {
			return b.String(), nil
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return "", &UnexpectedEOFError{Open: textTag}
}
