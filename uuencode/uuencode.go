// Package uuencode decodes the legacy text-safe binary encoding used by
// filing archives to embed attachments (PDFs, graphics) inside TEXT blocks.
package uuencode

import (
	"bufio"
	"fmt"
	"strings"
)

// Prefix is the literal header that marks the start of a uuencoded payload.
const Prefix = "begin "

// DecodeError reports a payload that is not valid uuencode. Decoding never
// falls back to treating the payload as text.
type DecodeError struct {
	Line   string
	Reason string
}

func (e *DecodeError) Error() string {
	if e.Line == "" {
		return "uudecode: " + e.Reason
	}
	return fmt.Sprintf("uudecode: %s (line %q)", e.Reason, e.Line)
}

// IsEncoded reports whether s starts with a uuencode header line.
func IsEncoded(s string) bool {
	return strings.HasPrefix(s, Prefix)
}

// Decode decodes a full uuencoded payload, returning the filename recovered
// from the "begin <mode> <filename>" header and the raw bytes.
func Decode(s string) (filename string, data []byte, err error) {
	sc := bufio.NewScanner(strings.NewReader(s))
	sc.Buffer(make([]byte, 64*1024), 1<<20)

	filename, err = readHeader(sc)
	if err != nil {
		return "", nil, err
	}

	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "end" {
			return filename, data, nil
		}
		if line == "" {
			continue
		}

		n := decodeChar(line[0])
		if n == 0 {
			// Zero-length line ("`" or space) terminates the data section;
			// the "end" marker must still follow.
			continue
		}

		chunk, err := decodeLine(line[1:], n)
		if err != nil {
			return "", nil, err
		}
		data = append(data, chunk...)
	}
	if err := sc.Err(); err != nil {
		return "", nil, fmt.Errorf("uudecode: %w", err)
	}
	return "", nil, &DecodeError{Reason: `missing "end" marker`}
}

func readHeader(sc *bufio.Scanner) (string, error) {
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, Prefix) {
			return "", &DecodeError{Line: line, Reason: `expected "begin <mode> <filename>" header`}
		}
		fields := strings.SplitN(line[len(Prefix):], " ", 2)
		if len(fields) != 2 || fields[1] == "" {
			return "", &DecodeError{Line: line, Reason: "header is missing a filename"}
		}
		return fields[1], nil
	}
	return "", &DecodeError{Reason: "empty payload"}
}

// decodeLine expands one data line into n bytes. Lines shorter than the
// declared length are padded: some historic encoders strip trailing blanks.
func decodeLine(body string, n int) ([]byte, error) {
	need := (n + 2) / 3 * 4
	if len(body) > need {
		body = body[:need]
	}
	for len(body) < need {
		body += "`"
	}

	out := make([]byte, 0, n)
	for i := 0; i < need; i += 4 {
		for j := 0; j < 4; j++ {
			if c := body[i+j]; c < ' ' || c > '`' {
				return nil, &DecodeError{Line: body, Reason: fmt.Sprintf("character %q out of range", c)}
			}
		}
		d0 := decodeChar(body[i])
		d1 := decodeChar(body[i+1])
		d2 := decodeChar(body[i+2])
		d3 := decodeChar(body[i+3])
		out = append(out,
			byte(d0<<2|d1>>4),
			byte((d1&0x0f)<<4|d2>>2),
			byte((d2&0x03)<<6|d3),
		)
	}
	return out[:n], nil
}

// decodeChar maps one uuencode character to its 6-bit value; '`' (0x60) is
// the historic alias for zero.
func decodeChar(c byte) int {
	return int(c-0x20) & 0x3f
}
