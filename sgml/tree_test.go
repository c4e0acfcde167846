package sgml

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func mustTokenize(t *testing.T, input string) []Token {
	t.Helper()
	toks, err := Tokenize(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	return toks
}

func TestBuildTreeRoundTrip(t *testing.T) {
	input := strings.Join([]string{
		"<SUBMISSION>",
		"<ACCESSION-NUMBER>0001104659-07-013496",
		"<FILER>",
		"<COMPANY-DATA>",
		"<CONFORMED-NAME>EXAMPLE CORP",
		"<CIK>0000123456",
		"</COMPANY-DATA>",
		"</FILER>",
		"</SUBMISSION>",
	}, "\n")

	toks := mustTokenize(t, input)
	root, rest, err := BuildTree(toks)
	if err != nil {
		t.Fatalf("BuildTree: %v", err)
	}
	if len(rest) != 0 {
		t.Fatalf("%d tokens left over", len(rest))
	}
	if root.Kind != NodeContainer || root.Container != TagSubmission {
		t.Fatalf("root = %+v, want SUBMISSION container", root)
	}

	// Flattening the tree must reproduce the exact token stream.
	if got := root.Flatten(); !reflect.DeepEqual(got, toks) {
		t.Errorf("Flatten() = %v, want %v", got, toks)
	}
}

func TestBuildTreeNesting(t *testing.T) {
	toks := mustTokenize(t, strings.Join([]string{
		"<FILER>",
		"<COMPANY-DATA>",
		"<CIK>0000123456",
		"</COMPANY-DATA>",
		"</FILER>",
	}, "\n"))

	root, _, err := BuildTree(toks)
	if err != nil {
		t.Fatalf("BuildTree: %v", err)
	}
	if len(root.Children) != 1 {
		t.Fatalf("filer has %d children, want 1", len(root.Children))
	}
	companyData := root.Children[0]
	if companyData.Container != TagCompanyData || len(companyData.Children) != 1 {
		t.Fatalf("child = %+v, want COMPANY-DATA with one child", companyData)
	}
	cik := companyData.Children[0]
	if cik.Kind != NodeValue || cik.Value != ValCIK || cik.Text != "0000123456" {
		t.Errorf("grandchild = %+v, want CIK value", cik)
	}
}

func TestBuildTreeValueContinuation(t *testing.T) {
	toks := []Token{
		{Kind: TokenValue, Value: ValConformedName, Text: "ACME "},
		{Kind: TokenRaw, Text: "CORP "},
		{Kind: TokenRaw, Text: "INTL"},
	}
	node, rest, err := BuildTree(toks)
	if err != nil {
		t.Fatalf("BuildTree: %v", err)
	}
	if len(rest) != 0 {
		t.Fatalf("%d tokens left over", len(rest))
	}
	if node.Text != "ACME CORP INTL" {
		t.Errorf("value = %q, want continuation lines appended", node.Text)
	}
}

func TestBuildTreeMismatchedClose(t *testing.T) {
	toks := mustTokenize(t, strings.Join([]string{
		"<FILER>",
		"<COMPANY-DATA>",
		"<CIK>0000123456",
		"</FILER>",
	}, "\n"))

	_, _, err := BuildTree(toks)
	var closeErr *UnexpectedCloseTagError
	if !errors.As(err, &closeErr) {
		t.Fatalf("err = %v, want UnexpectedCloseTagError", err)
	}
	if closeErr.Got != TagFiler || closeErr.Want != TagCompanyData {
		t.Errorf("got %+v, want </FILER> while <COMPANY-DATA> open", closeErr)
	}
}

func TestBuildTreeUnexpectedEOF(t *testing.T) {
	toks := mustTokenize(t, "<SUBMISSION>\n<ACCESSION-NUMBER>0000000000-00-000000\n")
	_, _, err := BuildTree(toks)
	var eofErr *UnexpectedEOFError
	if !errors.As(err, &eofErr) {
		t.Fatalf("err = %v, want UnexpectedEOFError", err)
	}
	if eofErr.Open != TagSubmission {
		t.Errorf("open = %s, want SUBMISSION", eofErr.Open)
	}
}

func TestBuildTreeBareClose(t *testing.T) {
	toks := mustTokenize(t, "</FILER>\n")
	_, _, err := BuildTree(toks)
	var closeErr *UnexpectedCloseTagError
	if !errors.As(err, &closeErr) {
		t.Fatalf("err = %v, want UnexpectedCloseTagError", err)
	}
	if closeErr.Got != TagFiler || closeErr.Want != "" {
		t.Errorf("got %+v, want bare </FILER>", closeErr)
	}
}

func TestBuildTreeStrayRawLine(t *testing.T) {
	toks := []Token{{Kind: TokenRaw, Text: "orphan line"}}
	_, _, err := BuildTree(toks)
	var lineErr *MalformedLineError
	if !errors.As(err, &lineErr) {
		t.Fatalf("err = %v, want MalformedLineError", err)
	}
}

func TestBuildTreeEmptyInput(t *testing.T) {
	node, rest, err := BuildTree(nil)
	if err != nil {
		t.Fatalf("BuildTree: %v", err)
	}
	if node.Kind != NodeEmpty || len(rest) != 0 {
		t.Errorf("got %+v with %d rest, want empty node", node, len(rest))
	}
}
