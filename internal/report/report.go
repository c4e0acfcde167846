// Package report renders parsed submissions for humans: a colorized
// terminal description, per-document body inspection, and a markdown batch
// report.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/paulgb/sec-data-parser/filing"
)

var (
	sectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	keyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// Describe pretty-prints a submission: header fields, then each filer-style
// entity, then each document with its inspected body.
func Describe(w io.Writer, sub *filing.Submission) {
	printKV(w, 0, "Accession Number", sub.AccessionNumber)
	printKV(w, 0, "Type", sub.Type)
	printKV(w, 0, "Filing Date", sub.FilingDate.Format("2006-01-02"))
	if sub.Period != nil {
		printKV(w, 0, "Period", sub.Period.Format("2006-01-02"))
	}
	if len(sub.Items) > 0 {
		printKV(w, 0, "Items", strings.Join(sub.Items, ", "))
	}
	if sub.Paper {
		printKV(w, 0, "Paper", "yes")
	}

	printCompanies(w, "Filer", sub.Filers)
	printCompanies(w, "Reporting Owner", sub.ReportingOwners)
	printCompanies(w, "Subject Company", sub.SubjectCompanies)
	printCompanies(w, "Filed By", sub.FiledBy)
	if sub.Issuer != nil {
		printCompanies(w, "Issuer", []filing.Company{*sub.Issuer})
	}

	for i := range sub.Documents {
		doc := &sub.Documents[i]
		fmt.Fprintln(w, sectionStyle.Render("Document"))
		detail := Inspect(doc)
		printKV(w, 1, "Type", detail.Type)
		printKV(w, 1, "Sequence", fmt.Sprint(detail.Sequence))
		if detail.Filename != "" {
			printKV(w, 1, "Filename", detail.Filename)
		}
		if doc.Description != nil {
			printKV(w, 1, "Description", *doc.Description)
		}
		if doc.Body != nil {
			printKV(w, 1, "Data Type", detail.DataType.String())
			printKV(w, 1, "Size", fmt.Sprintf("%d bytes", detail.Bytes))
			printKV(w, 1, "Digest", detail.Digest)
			if detail.PDFPages > 0 {
				printKV(w, 1, "PDF Pages", fmt.Sprint(detail.PDFPages))
			}
			if detail.XMLRoot != "" {
				printKV(w, 1, "XML Root", detail.XMLRoot)
			}
			if detail.HTMLTitle != "" {
				printKV(w, 1, "HTML Title", detail.HTMLTitle)
			}
		}
	}

	if sub.ConfirmingCopy != nil {
		fmt.Fprintln(w, sectionStyle.Render("Confirming Copy"))
		Describe(w, sub.ConfirmingCopy)
	}
}

func printCompanies(w io.Writer, section string, companies []filing.Company) {
	for i := range companies {
		c := &companies[i]
		fmt.Fprintln(w, sectionStyle.Render(section))
		if name := c.Name(); name != "" {
			printKV(w, 1, "Name", name)
		}
		if c.CompanyData != nil {
			printKV(w, 1, "CIK", c.CompanyData.CIK)
		} else if c.OwnerData != nil {
			printKV(w, 1, "CIK", c.OwnerData.CIK)
		}
		for _, fv := range c.FilingValues {
			printKV(w, 1, "Form Type", fv.FormType)
		}
	}
}

func printKV(w io.Writer, indent int, key, value string) {
	fmt.Fprintf(w, "%s%s: %s\n",
		strings.Repeat("  ", indent),
		keyStyle.Render(key),
		valueStyle.Render(value),
	)
}
