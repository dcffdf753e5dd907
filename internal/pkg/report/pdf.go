package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// MIMEType is the content type of rendered documents
const MIMEType = "application/pdf"

// FileExt is the filename extension of rendered documents
const FileExt = "pdf"

const (
	pageMargin  = 15.0
	labelWidth  = 60.0
	rowHeight   = 7.0
	cellPadding = 2.0
)

// Render draws a document in one pass and returns the PDF bytes
func Render(doc *Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.Title, true)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	contentWidth := pageWidth - 2*pageMargin

	// Header block
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(contentWidth, 10, doc.Title, "", 1, "C", false, 0, "")
	if doc.Subtitle != "" {
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(contentWidth, 7, doc.Subtitle, "", 1, "C", false, 0, "")
	}
	pdf.Ln(3)
	pdf.SetDrawColor(120, 120, 120)
	pdf.Line(pageMargin, pdf.GetY(), pageWidth-pageMargin, pdf.GetY())
	pdf.Ln(4)

	for _, section := range doc.Sections {
		drawSection(pdf, &section, contentWidth)
	}

	if len(doc.Footer) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Arial", "I", 9)
		for _, line := range doc.Footer {
			pdf.CellFormat(contentWidth, 5.5, line, "", 1, "L", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render document: %w", err)
	}

	return buf.Bytes(), nil
}

func drawSection(pdf *gofpdf.Fpdf, section *Section, contentWidth float64) {
	if section.Heading != "" {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetFillColor(235, 235, 235)
		pdf.CellFormat(contentWidth, 8, section.Heading, "", 1, "L", true, 0, "")
		pdf.Ln(1)
	}

	pdf.SetFont("Arial", "", 10)
	for _, row := range section.Rows {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(labelWidth, rowHeight, row.Label, "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(contentWidth-labelWidth, rowHeight, row.Value, "", 1, "L", false, 0, "")
	}

	if section.Table != nil {
		drawTable(pdf, section.Table, contentWidth)
	}

	pdf.Ln(3)
}

func drawTable(pdf *gofpdf.Fpdf, table *Table, contentWidth float64) {
	if len(table.Headers) == 0 {
		return
	}
	colWidth := contentWidth / float64(len(table.Headers))

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(220, 220, 220)
	for _, header := range table.Headers {
		pdf.CellFormat(colWidth, rowHeight, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, row := range table.Rows {
		for i := 0; i < len(table.Headers); i++ {
			value := ""
			if i < len(row) {
				value = row[i]
			}
			pdf.CellFormat(colWidth, rowHeight, value, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}
}
