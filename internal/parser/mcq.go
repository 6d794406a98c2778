// Package parser turns text extracted from an MCQ PDF into question records.
//
// The input convention is line oriented:
//
//	12. What is the capital of France?
//	(A) Berlin
//	(B) Paris
//	**Answer:** B
//
// Lines that match none of the three shapes are ignored.
package parser

import (
	"MCQ-PDF-Exam-Backend/internal/model"
	"regexp"
	"strings"
)

const answerMarker = "**Answer:**"

var (
	questionPattern = regexp.MustCompile(`^\d+\.\s*(.+)`)
	optionMarkers   = []string{"(A)", "(B)", "(C)", "(D)"}
)

type state int

const (
	stateIdle state = iota
	stateInQuestion
)

// machine holds the question block currently being accumulated.
type machine struct {
	state   state
	text    string
	options []string
	answer  *string
	out     []model.QuestionRecord
}

// Parse scans text line by line and returns the question blocks in source
// order. A block without any option line is dropped. Options are kept in the
// order they were read, not by their letter.
func Parse(text string) []model.QuestionRecord {
	m := &machine{}
	for _, raw := range strings.Split(text, "\n") {
		m.feed(strings.TrimSpace(raw))
	}
	m.flush()
	return m.out
}

func (m *machine) feed(line string) {
	if match := questionPattern.FindStringSubmatch(line); match != nil {
		m.flush()
		m.state = stateInQuestion
		m.text = strings.TrimSpace(match[1])
		return
	}
	if m.state != stateInQuestion {
		return
	}
	if isOptionLine(line) {
		m.options = append(m.options, strings.TrimSpace(line[3:]))
		return
	}
	if strings.HasPrefix(line, answerMarker) {
		if label := strings.TrimSpace(line[len(answerMarker):]); label != "" {
			m.answer = &label
		}
	}
}

// flush emits the current block if it has options and returns to Idle.
func (m *machine) flush() {
	if m.state == stateInQuestion && len(m.options) > 0 {
		m.out = append(m.out, model.QuestionRecord{
			Question:      m.text,
			Options:       m.options,
			CorrectAnswer: m.answer,
		})
	}
	m.state = stateIdle
	m.text = ""
	m.options = nil
	m.answer = nil
}

func isOptionLine(line string) bool {
	for _, marker := range optionMarkers {
		if strings.HasPrefix(line, marker) {
			return true
		}
	}
	return false
}
