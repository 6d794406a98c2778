package repository

import (
	"MCQ-PDF-Exam-Backend/internal/model"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// AnswerRepository records the last set of answers a user saved. It has no
// relation to scoring.
type AnswerRepository interface {
	SaveAnswers(answers model.SubmittedAnswers) error
}

type FileAnswerRepository struct {
	file *jsonFile
	log  *logrus.Entry
}

func NewAnswerRepository(fs afero.Fs, dir string, log *logrus.Logger) (*FileAnswerRepository, error) {
	entry := log.WithField("component", "answer_repo")
	file, err := newJSONFile(fs, dir, UserAnswersFile, entry)
	if err != nil {
		return nil, err
	}
	return &FileAnswerRepository{file: file, log: entry}, nil
}

func (r *FileAnswerRepository) SaveAnswers(answers model.SubmittedAnswers) error {
	r.log.WithField("answers", len(answers)).Info("saving user answers")
	return r.file.persist(answers)
}
