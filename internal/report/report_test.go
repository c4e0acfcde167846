package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/paulgb/sec-data-parser/filing"
	"github.com/paulgb/sec-data-parser/internal/batch"
)

func sampleSubmission() *filing.Submission {
	filename := "form8k.htm"
	return &filing.Submission{
		AccessionNumber: "0000950134-07-005472",
		Type:            "8-K",
		FilingDate:      time.Date(2007, time.March, 12, 0, 0, 0, 0, time.UTC),
		Filers: []filing.Company{{
			CompanyData: &filing.CompanyData{ConformedName: "EXAMPLE CORP", CIK: "0000123456"},
		}},
		Documents: []filing.Document{{
			Type:     "8-K",
			Sequence: 1,
			Filename: &filename,
			Body: &filing.Body{
				Type: filing.DataTypeText,
				Text: "<html><head><title>Current Report</title></head><body>hi</body></html>",
			},
		}},
	}
}

func TestDescribe(t *testing.T) {
	var buf bytes.Buffer
	Describe(&buf, sampleSubmission())
	out := buf.String()

	for _, want := range []string{"0000950134-07-005472", "EXAMPLE CORP", "2007-03-12", "form8k.htm"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestInspect(t *testing.T) {
	sub := sampleSubmission()
	detail := Inspect(&sub.Documents[0])

	if detail.Sequence != 1 || detail.Type != "8-K" {
		t.Errorf("detail = %+v", detail)
	}
	if detail.Digest == "" || len(detail.Digest) != 64 {
		t.Errorf("digest = %q, want 64 hex chars", detail.Digest)
	}
	if detail.HTMLTitle != "Current Report" {
		t.Errorf("html title = %q", detail.HTMLTitle)
	}
}

func TestInspectXMLRoot(t *testing.T) {
	doc := filing.Document{
		Type:     "4",
		Sequence: 1,
		Body: &filing.Body{
			Type: filing.DataTypeXML,
			Text: "<?xml version=\"1.0\"?>\n<ownershipDocument><issuer/></ownershipDocument>",
		},
	}
	detail := Inspect(&doc)
	if detail.XMLRoot != "ownershipDocument" {
		t.Errorf("xml root = %q", detail.XMLRoot)
	}
}

func TestInspectNoBody(t *testing.T) {
	doc := filing.Document{Type: "8-K", Sequence: 1}
	detail := Inspect(&doc)
	if detail.Digest != "" || detail.Bytes != 0 {
		t.Errorf("empty document produced detail %+v", detail)
	}
}

func TestWriteMarkdown(t *testing.T) {
	results := []batch.Result{
		{Path: "archives/good.nc", Submission: sampleSubmission(), Elapsed: 3 * time.Millisecond},
		{Path: "archives/bad.nc", Err: bytes.ErrTooLarge},
	}

	var buf bytes.Buffer
	if err := WriteMarkdown(&buf, "archives", results); err != nil {
		t.Fatalf("WriteMarkdown: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"# Filing Archive Report",
		"| 2 | 1 | 1 | 1 |",
		"| 8-K | 1 |",
		"### archives/good.nc",
		"**Parse failed:**",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestRenderHTML(t *testing.T) {
	out, err := RenderHTML([]byte("# Report\n\nsome *text*\n"))
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, "<h1") || !strings.Contains(html, "<em>text</em>") {
		t.Errorf("html = %s", html)
	}
	if !strings.HasPrefix(html, "<!DOCTYPE html>") {
		t.Error("missing document shell")
	}
}
