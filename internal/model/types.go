package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// QuestionRecord is one parsed question block. CorrectAnswer is nil when the
// block had no answer line.
type QuestionRecord struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer *string  `json:"correct_answer"`
}

type ExamView struct {
	Title     string         `json:"title"`
	Questions []ExamQuestion `json:"questions"`
}

type ExamQuestion struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// AnswerKey maps the string form of a question id to its label.
type AnswerKey map[string]*string

type SubmittedAnswer struct {
	QuestionID string
	Value      json.RawMessage
}

// SubmittedAnswers keeps the order in which the client sent its keys. A key
// sent twice keeps its first position and its last value.
type SubmittedAnswers []SubmittedAnswer

func (s *SubmittedAnswers) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("answers must be a JSON object")
	}

	out := SubmittedAnswers{}
	index := map[string]int{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected key %v", keyTok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		if i, seen := index[key]; seen {
			out[i].Value = raw
			continue
		}
		index[key] = len(out)
		out = append(out, SubmittedAnswer{QuestionID: key, Value: raw})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*s = out
	return nil
}

func (s SubmittedAnswers) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, a := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(a.QuestionID)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if len(a.Value) == 0 {
			buf.WriteString("null")
		} else {
			buf.Write(a.Value)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Label returns the answer as a string when the client sent a JSON string.
func (a SubmittedAnswer) Label() (string, bool) {
	if !bytes.HasPrefix(bytes.TrimSpace(a.Value), []byte(`"`)) {
		return "", false
	}
	var label string
	if err := json.Unmarshal(a.Value, &label); err != nil {
		return "", false
	}
	return label, true
}

type ScoreResult struct {
	Score      int              `json:"score"`
	Total      int              `json:"total"`
	Percentage float64          `json:"percentage"`
	Results    []QuestionResult `json:"results"`
}

type QuestionResult struct {
	QuestionID    int             `json:"question_id"`
	UserAnswer    json.RawMessage `json:"user_answer"`
	CorrectAnswer *string         `json:"correct_answer"`
	IsCorrect     bool            `json:"is_correct"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
