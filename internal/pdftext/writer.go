package pdftext

import (
	"MCQ-PDF-Exam-Backend/internal/model"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
)

const (
	pageWidth    = 612
	pageHeight   = 792
	marginLeft   = 40
	marginTop    = 40
	lineLeading  = 20
	linesPerPage = 34
)

// MCQLines renders questions in the convention the parser reads back.
func MCQLines(title string, questions []model.QuestionRecord) []string {
	lines := []string{title, ""}
	for i, q := range questions {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, q.Question))
		for j, opt := range q.Options {
			lines = append(lines, fmt.Sprintf("(%c) %s", 'A'+j, opt))
		}
		if q.CorrectAnswer != nil {
			lines = append(lines, "**Answer:** "+*q.CorrectAnswer)
		}
		lines = append(lines, "")
	}
	return lines
}

// WriteMCQ writes a Helvetica PDF with one text line per entry of MCQLines,
// starting a new page every linesPerPage lines.
func WriteMCQ(w io.Writer, title string, questions []model.QuestionRecord) error {
	lines := MCQLines(title, questions)
	var pages [][]string
	for len(lines) > linesPerPage {
		pages = append(pages, lines[:linesPerPage])
		lines = lines[linesPerPage:]
	}
	pages = append(pages, lines)

	doc := &pdfBuilder{}
	doc.buf.WriteString("%PDF-1.4\n")

	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}
	doc.object(1, "<< /Type /Catalog /Pages 2 0 R >>")
	doc.object(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)))
	doc.object(3, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")
	for i, pageLines := range pages {
		pageID, contentID := 4+2*i, 5+2*i
		doc.object(pageID, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %d %d] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>",
			pageWidth, pageHeight, contentID))
		stream := contentStream(pageLines)
		doc.object(contentID, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
	}
	doc.trailer()

	if _, err := w.Write(doc.buf.Bytes()); err != nil {
		return errors.Wrap(err, "failed to write PDF")
	}
	return nil
}

// Every line is followed by T*, which extracts as a newline, so page text
// always ends with a line break.
func contentStream(lines []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "BT\n/F1 12 Tf\n%d TL\n%d %d Td\n", lineLeading, marginLeft, pageHeight-marginTop)
	for _, line := range lines {
		if line != "" {
			fmt.Fprintf(&b, "(%s) Tj\n", escapeText(line))
		}
		b.WriteString("T*\n")
	}
	b.WriteString("ET")
	return b.String()
}

// escapeText encodes s as WinAnsi (Windows-1252) for the Helvetica font.
// Runes outside that code page become '?'.
func escapeText(s string) string {
	var b strings.Builder
	for _, r := range s {
		c, ok := charmap.Windows1252.EncodeRune(r)
		switch {
		case !ok:
			b.WriteByte('?')
		case c == '\\' || c == '(' || c == ')':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c < 0x20 || c > 0x7e:
			fmt.Fprintf(&b, "\\%03o", c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

type pdfBuilder struct {
	buf     bytes.Buffer
	offsets []int
}

// object must be called with ids 1, 2, 3... in order.
func (p *pdfBuilder) object(id int, body string) {
	p.offsets = append(p.offsets, p.buf.Len())
	fmt.Fprintf(&p.buf, "%d 0 obj\n%s\nendobj\n", id, body)
}

func (p *pdfBuilder) trailer() {
	xref := p.buf.Len()
	size := len(p.offsets) + 1
	fmt.Fprintf(&p.buf, "xref\n0 %d\n0000000000 65535 f \n", size)
	for _, off := range p.offsets {
		fmt.Fprintf(&p.buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&p.buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", size, xref)
}
