package repository

import (
	"MCQ-PDF-Exam-Backend/internal/model"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

//go:generate mockgen -source=exam_repo.go -destination=mocks/mock_exam_repo.go -package=mocks

var (
	ErrExamNotFound      = errors.New("exam data not found")
	ErrAnswerKeyNotFound = errors.New("answer key not found")
)

// ExamRepository stores the public exam view and its private answer key. The
// two are always written together; they are read independently.
type ExamRepository interface {
	SaveExam(view model.ExamView, key model.AnswerKey) error
	LoadExam() (model.ExamView, error)
	LoadAnswerKey() (model.AnswerKey, error)
}

// FileExamRepository keeps both artifacts as JSON files in one directory.
// Nothing is cached: every load reads the file again, and there is no locking
// between a save and concurrent loads.
type FileExamRepository struct {
	exam *jsonFile
	key  *jsonFile
	log  *logrus.Entry
}

func NewExamRepository(fs afero.Fs, dir string, log *logrus.Logger) (*FileExamRepository, error) {
	entry := log.WithField("component", "exam_repo")
	exam, err := newJSONFile(fs, dir, ExamFile, entry)
	if err != nil {
		return nil, err
	}
	key, err := newJSONFile(fs, dir, AnswerKeyFile, entry)
	if err != nil {
		return nil, err
	}
	entry.WithField("dir", dir).Info("exam repository initialised")
	return &FileExamRepository{exam: exam, key: key, log: entry}, nil
}

func (r *FileExamRepository) SaveExam(view model.ExamView, key model.AnswerKey) error {
	r.log.WithField("questions", len(view.Questions)).Info("saving exam")
	if err := r.exam.persist(view); err != nil {
		return err
	}
	return r.key.persist(key)
}

func (r *FileExamRepository) LoadExam() (model.ExamView, error) {
	var view model.ExamView
	if err := r.exam.load(&view); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.ExamView{}, ErrExamNotFound
		}
		return model.ExamView{}, err
	}
	return view, nil
}

func (r *FileExamRepository) LoadAnswerKey() (model.AnswerKey, error) {
	key := model.AnswerKey{}
	if err := r.key.load(&key); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrAnswerKeyNotFound
		}
		return nil, err
	}
	return key, nil
}
