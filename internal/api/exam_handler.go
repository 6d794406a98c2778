package api

import (
	"MCQ-PDF-Exam-Backend/internal/middleware"
	"MCQ-PDF-Exam-Backend/internal/model"
	"MCQ-PDF-Exam-Backend/internal/repository"
	"MCQ-PDF-Exam-Backend/internal/service"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ExamHandler struct {
	examService    *service.ExamService
	maxUploadBytes int64
	log            *logrus.Entry
}

func NewExamHandler(examService *service.ExamService, maxUploadBytes int64, log *logrus.Logger) *ExamHandler {
	return &ExamHandler{
		examService:    examService,
		maxUploadBytes: maxUploadBytes,
		log:            log.WithField("component", "exam_handler"),
	}
}

func jsonError(c *gin.Context, status int, msg string) {
	c.JSON(status, model.ErrorResponse{Error: msg})
}

// internalError passes the message through to the caller unchanged.
func (h *ExamHandler) internalError(c *gin.Context, err error, contextMsg string) {
	h.log.WithError(err).WithField("request_id", c.GetString(middleware.RequestIDKey)).Error(contextMsg)
	jsonError(c, http.StatusInternalServerError, err.Error())
}

func (h *ExamHandler) UploadHandler(c *gin.Context) {
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(c, http.StatusBadRequest, "File too large")
			return
		}
		// A part with an empty filename is parsed as a plain form value.
		if errors.Is(err, http.ErrMissingFile) && c.Request.MultipartForm != nil {
			if _, ok := c.Request.MultipartForm.Value["file"]; ok {
				jsonError(c, http.StatusBadRequest, "No selected file")
				return
			}
		}
		jsonError(c, http.StatusBadRequest, "No file part")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		h.internalError(c, err, "opening upload failed")
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		h.internalError(c, err, "reading upload failed")
		return
	}

	if _, err := h.examService.ImportPDF(fileHeader.Filename, data); err != nil {
		if errors.Is(err, service.ErrInvalidFileType) {
			jsonError(c, http.StatusBadRequest, "Invalid file type")
			return
		}
		h.internalError(c, err, "importing exam failed")
		return
	}
	c.JSON(http.StatusOK, model.MessageResponse{Message: "Exam data generated successfully"})
}

func (h *ExamHandler) GetExamHandler(c *gin.Context) {
	view, err := h.examService.GetExam()
	if err != nil {
		if errors.Is(err, repository.ErrExamNotFound) {
			jsonError(c, http.StatusNotFound, "Exam data not found")
			return
		}
		h.internalError(c, err, "loading exam failed")
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ExamHandler) SubmitHandler(c *gin.Context) {
	var answers model.SubmittedAnswers
	if err := c.ShouldBindJSON(&answers); err != nil {
		jsonError(c, http.StatusBadRequest, "Invalid answers: "+err.Error())
		return
	}

	result, err := h.examService.SubmitAnswers(answers)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrAnswerKeyNotFound):
			jsonError(c, http.StatusNotFound, "Answer key not found")
		case errors.Is(err, service.ErrInvalidQuestionID):
			jsonError(c, http.StatusBadRequest, err.Error())
		default:
			h.internalError(c, err, "scoring failed")
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ExamHandler) SaveAnswersHandler(c *gin.Context) {
	var answers model.SubmittedAnswers
	if err := c.ShouldBindJSON(&answers); err != nil {
		h.internalError(c, err, "decoding answers failed")
		return
	}
	if err := h.examService.SaveAnswers(answers); err != nil {
		h.internalError(c, err, "saving answers failed")
		return
	}
	c.JSON(http.StatusOK, model.MessageResponse{Message: "Answers saved successfully"})
}
