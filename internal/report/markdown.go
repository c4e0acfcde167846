package report

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/yuin/goldmark"

	"github.com/paulgb/sec-data-parser/internal/batch"
)

// WriteMarkdown renders a batch run as a markdown report: an aggregate
// summary, a form-type breakdown, then one section per archive.
func WriteMarkdown(w io.Writer, dir string, results []batch.Result) error {
	summary := batch.Summarize(results)

	fmt.Fprintf(w, "# Filing Archive Report\n\n")
	fmt.Fprintf(w, "Source: `%s`  \n", dir)
	fmt.Fprintf(w, "Generated: %s\n\n", time.Now().Format(time.RFC3339))

	fmt.Fprintf(w, "## Summary\n\n")
	fmt.Fprintf(w, "| Archives | Parsed | Failed | Documents |\n")
	fmt.Fprintf(w, "| --- | --- | --- | --- |\n")
	fmt.Fprintf(w, "| %d | %d | %d | %d |\n\n", summary.Total, summary.Parsed, summary.Failed, summary.Documents)

	if len(summary.ByFormType) > 0 {
		fmt.Fprintf(w, "## Form Types\n\n")
		fmt.Fprintf(w, "| Form Type | Count |\n")
		fmt.Fprintf(w, "| --- | --- |\n")
		forms := make([]string, 0, len(summary.ByFormType))
		for form := range summary.ByFormType {
			forms = append(forms, form)
		}
		sort.Strings(forms)
		for _, form := range forms {
			fmt.Fprintf(w, "| %s | %d |\n", form, summary.ByFormType[form])
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "## Archives\n\n")
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "### %s\n\n**Parse failed:** %v\n\n", r.Path, r.Err)
			continue
		}
		sub := r.Submission
		fmt.Fprintf(w, "### %s\n\n", r.Path)
		fmt.Fprintf(w, "- Accession: %s\n", sub.AccessionNumber)
		fmt.Fprintf(w, "- Type: %s\n", sub.Type)
		fmt.Fprintf(w, "- Filed: %s\n", sub.FilingDate.Format("2006-01-02"))
		fmt.Fprintf(w, "- Parse time: %s\n\n", r.Elapsed.Round(time.Millisecond))

		if len(sub.Documents) == 0 {
			continue
		}
		fmt.Fprintf(w, "| Seq | Type | Data | Size | Digest |\n")
		fmt.Fprintf(w, "| --- | --- | --- | --- | --- |\n")
		for i := range sub.Documents {
			d := Inspect(&sub.Documents[i])
			digest := d.Digest
			if len(digest) > 12 {
				digest = digest[:12]
			}
			fmt.Fprintf(w, "| %d | %s | %s | %d | `%s` |\n",
				d.Sequence, d.Type, d.DataType.String(), d.Bytes, digest)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// RenderHTML converts a markdown report to a standalone HTML document.
func RenderHTML(md []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><title>Filing Archive Report</title></head><body>\n")
	if err := goldmark.Convert(md, &buf); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	buf.WriteString("</body></html>\n")
	return buf.Bytes(), nil
}
