package service

import (
	"MCQ-PDF-Exam-Backend/internal/model"
	"MCQ-PDF-Exam-Backend/internal/parser"
	"MCQ-PDF-Exam-Backend/internal/pdftext"
	"MCQ-PDF-Exam-Backend/internal/repository"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const DefaultExamTitle = "Generated Exam"

var ErrInvalidFileType = errors.New("invalid file type")

type ExamService struct {
	extractor  pdftext.Extractor
	examRepo   repository.ExamRepository
	answerRepo repository.AnswerRepository
	title      string
	log        *logrus.Entry
}

func NewExamService(extractor pdftext.Extractor, examRepo repository.ExamRepository, answerRepo repository.AnswerRepository, title string, log *logrus.Logger) *ExamService {
	if title == "" {
		title = DefaultExamTitle
	}
	return &ExamService{
		extractor:  extractor,
		examRepo:   examRepo,
		answerRepo: answerRepo,
		title:      title,
		log:        log.WithField("component", "exam_service"),
	}
}

// ImportPDF extracts, parses and persists a new exam, replacing the previous
// one. It returns the number of questions kept.
func (s *ExamService) ImportPDF(filename string, data []byte) (int, error) {
	if !strings.HasSuffix(filename, ".pdf") {
		return 0, ErrInvalidFileType
	}
	startTime := time.Now()
	log := s.log.WithField("filename", filename)
	log.WithField("bytes", len(data)).Info("importing exam PDF")

	text, err := s.extractor.Extract(data)
	if err != nil {
		log.WithError(err).Error("text extraction failed")
		return 0, err
	}

	records := parser.Parse(text)
	view, key := BuildExam(s.title, records)
	if err := s.examRepo.SaveExam(view, key); err != nil {
		log.WithError(err).Error("saving exam failed")
		return 0, err
	}

	log.WithFields(logrus.Fields{
		"questions": len(records),
		"elapsed":   time.Since(startTime).String(),
	}).Info("exam imported")
	return len(records), nil
}

func (s *ExamService) GetExam() (model.ExamView, error) {
	return s.examRepo.LoadExam()
}

// SubmitAnswers scores against the answer key currently on storage.
func (s *ExamService) SubmitAnswers(answers model.SubmittedAnswers) (model.ScoreResult, error) {
	key, err := s.examRepo.LoadAnswerKey()
	if err != nil {
		return model.ScoreResult{}, err
	}
	result, err := Score(answers, key)
	if err != nil {
		return model.ScoreResult{}, err
	}
	s.log.WithFields(logrus.Fields{
		"score": result.Score,
		"total": result.Total,
	}).Info("answers scored")
	return result, nil
}

func (s *ExamService) SaveAnswers(answers model.SubmittedAnswers) error {
	return s.answerRepo.SaveAnswers(answers)
}
