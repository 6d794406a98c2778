package service

import (
	"MCQ-PDF-Exam-Backend/internal/model"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var ErrInvalidQuestionID = errors.New("question id must be an integer")

// BuildExam assigns ids by position and splits the records into the public
// view and the answer key. Both must be saved together.
func BuildExam(title string, records []model.QuestionRecord) (model.ExamView, model.AnswerKey) {
	view := model.ExamView{
		Title:     title,
		Questions: make([]model.ExamQuestion, 0, len(records)),
	}
	key := make(model.AnswerKey, len(records))
	for i, rec := range records {
		view.Questions = append(view.Questions, model.ExamQuestion{
			ID:       i,
			Question: rec.Question,
			Options:  rec.Options,
		})
		key[strconv.Itoa(i)] = rec.CorrectAnswer
	}
	return view, key
}

// Score walks the submitted answers in the order they were sent. The total is
// the size of the key, so missing answers count as wrong and unknown ids add
// nothing. An answer is correct only when it is a string equal to a non-null
// label.
func Score(submitted model.SubmittedAnswers, key model.AnswerKey) (model.ScoreResult, error) {
	result := model.ScoreResult{
		Total:   len(key),
		Results: make([]model.QuestionResult, 0, len(submitted)),
	}
	for _, answer := range submitted {
		id, err := strconv.Atoi(strings.TrimSpace(answer.QuestionID))
		if err != nil {
			return model.ScoreResult{}, errors.Wrapf(ErrInvalidQuestionID, "%q", answer.QuestionID)
		}

		correct := key[answer.QuestionID]
		userLabel, isString := answer.Label()
		isCorrect := correct != nil && isString && userLabel == *correct
		if isCorrect {
			result.Score++
		}

		userAnswer := answer.Value
		if len(userAnswer) == 0 {
			userAnswer = nil
		}
		result.Results = append(result.Results, model.QuestionResult{
			QuestionID:    id,
			UserAnswer:    userAnswer,
			CorrectAnswer: correct,
			IsCorrect:     isCorrect,
		})
	}

	if result.Total > 0 {
		result.Percentage = float64(result.Score) / float64(result.Total) * 100
	}
	return result, nil
}
