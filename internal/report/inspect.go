package report

import (
	"bytes"
	"encoding/hex"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/ledongthuc/pdf"
	"github.com/zeebo/blake3"
	"golang.org/x/net/html"

	"github.com/paulgb/sec-data-parser/filing"
)

// DocumentDetail is everything Describe and the batch report show about one
// document, including format-specific probes of the decoded body.
type DocumentDetail struct {
	Sequence  int             `json:"sequence"`
	Type      string          `json:"type"`
	Filename  string          `json:"filename,omitempty"`
	DataType  filing.DataType `json:"data_type,omitempty"`
	Bytes     int             `json:"bytes"`
	Digest    string          `json:"digest,omitempty"`
	PDFPages  int             `json:"pdf_pages,omitempty"`
	XMLRoot   string          `json:"xml_root,omitempty"`
	HTMLTitle string          `json:"html_title,omitempty"`
}

// Inspect probes a document's body. Probe failures are not errors: the body
// already decoded cleanly, so a malformed PDF or XML payload just leaves the
// corresponding field empty.
func Inspect(doc *filing.Document) DocumentDetail {
	detail := DocumentDetail{
		Sequence: doc.Sequence,
		Type:     doc.Type,
	}
	if doc.Filename != nil {
		detail.Filename = *doc.Filename
	}
	if doc.Body == nil {
		return detail
	}

	data := doc.Body.Bytes()
	sum := blake3.Sum256(data)
	detail.DataType = doc.Body.Type
	detail.Bytes = len(data)
	detail.Digest = hex.EncodeToString(sum[:])

	switch doc.Body.Type {
	case filing.DataTypePDF:
		detail.PDFPages = pdfPages(data)
	case filing.DataTypeXML, filing.DataTypeXBRL:
		detail.XMLRoot = xmlRoot(doc.Body.Text)
	case filing.DataTypeText:
		if looksLikeHTML(doc.Body.Text) {
			detail.HTMLTitle = htmlTitle(doc.Body.Text)
		}
	}
	return detail
}

func pdfPages(data []byte) (pages int) {
	// The pdf package panics on some malformed xref tables.
	defer func() {
		if recover() != nil {
			pages = 0
		}
	}()
	rdr, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0
	}
	return rdr.NumPage()
}

func xmlRoot(text string) string {
	doc, err := xmlquery.Parse(strings.NewReader(text))
	if err != nil {
		return ""
	}
	for n := doc.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == xmlquery.ElementNode {
			return n.Data
		}
	}
	return ""
}

func looksLikeHTML(text string) bool {
	head := strings.ToLower(text)
	if len(head) > 512 {
		head = head[:512]
	}
	return strings.Contains(head, "<html") || strings.Contains(head, "<!doctype html")
}

func htmlTitle(text string) string {
	doc, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return ""
	}
	return findTitle(doc)
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" && n.FirstChild != nil {
		return strings.TrimSpace(n.FirstChild.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if title := findTitle(c); title != "" {
			return title
		}
	}
	return ""
}
