// Package pdftext reads the plain text out of PDF documents and writes the
// small MCQ documents used as fixtures.
package pdftext

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/panics"
)

//go:generate mockgen -source=extractor.go -destination=mocks/mock_extractor.go -package=mocks

// Extractor returns the text of every page of a PDF, concatenated in page
// order with no separator between pages.
type Extractor interface {
	Extract(data []byte) (string, error)
}

type LedongthucExtractor struct {
	log *logrus.Entry
}

func NewExtractor(log *logrus.Logger) *LedongthucExtractor {
	return &LedongthucExtractor{log: log.WithField("component", "pdftext")}
}

// Extract never panics: the pdf library panics on some malformed input, and
// that is reported as an error instead.
func (e *LedongthucExtractor) Extract(data []byte) (text string, err error) {
	var pc panics.Catcher
	pc.Try(func() {
		text, err = e.extract(data)
	})
	if r := pc.Recovered(); r != nil {
		e.log.WithField("panic", r.Value).Warn("pdf reader panicked")
		return "", errors.Errorf("failed to read PDF: %v", r.Value)
	}
	return text, err
}

func (e *LedongthucExtractor) extract(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errors.Wrap(err, "failed to open PDF")
	}

	pageCount := reader.NumPage()
	var b strings.Builder
	for i := 1; i <= pageCount; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", errors.Wrapf(err, "failed to extract text from page %d", i)
		}
		b.WriteString(pageText)
	}

	e.log.WithFields(logrus.Fields{
		"pages": pageCount,
		"bytes": b.Len(),
	}).Debug("pdf text extracted")
	return b.String(), nil
}
