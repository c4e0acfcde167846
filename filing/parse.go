// Package filing converts tokenized archive trees into the typed submission
// model, enforcing per-field cardinality and leaf-level conversions.
package filing

import (
	"fmt"
	"io"
	"os"

	"github.com/paulgb/sec-data-parser/sgml"
)

// Parse reads one complete archive and returns its typed submission. The
// pipeline is strictly sequential: tokenize, build the generic tree, bind.
// The first error at any stage aborts the parse; there is no partial result.
func Parse(r io.Reader) (*Submission, error) {
	tokens, err := sgml.Tokenize(r)
	if err != nil {
		return nil, err
	}

	root, rest, err := sgml.BuildTree(tokens)
	if err != nil {
		return nil, err
	}
	if root.Kind != sgml.NodeContainer || root.Container != sgml.TagSubmission {
		return nil, fmt.Errorf("expected a <%s> document, got %v", sgml.TagSubmission, root.Kind)
	}
	// Trailing tokens after the root close tag mean the file holds more than
	// one submission, which this format never does.
	if len(rest) != 0 {
		return nil, fmt.Errorf("%d unexpected tokens after </%s>", len(rest), sgml.TagSubmission)
	}

	return decodeSubmission(string(sgml.TagSubmission), root.Children)
}

// ParseFile parses the archive at path.
func ParseFile(path string) (*Submission, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer f.Close()
	return Parse(f)
}
