package api

import (
	pdfmocks "MCQ-PDF-Exam-Backend/internal/pdftext/mocks"
	"MCQ-PDF-Exam-Backend/internal/repository"
	"MCQ-PDF-Exam-Backend/internal/service"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"go.uber.org/mock/gomock"
)

const twoPlusTwo = "1. What is 2+2?\n(A) 3\n(B) 4\n(C) 5\n(D) 6\n**Answer:** B\n"

type testEnv struct {
	engine    *gin.Engine
	extractor *pdfmocks.MockExtractor
	fs        afero.Fs
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)

	fs := afero.NewMemMapFs()
	examRepo, err := repository.NewExamRepository(fs, "data", log)
	if err != nil {
		t.Fatalf("NewExamRepository: %v", err)
	}
	answerRepo, err := repository.NewAnswerRepository(fs, "data", log)
	if err != nil {
		t.Fatalf("NewAnswerRepository: %v", err)
	}

	extractor := pdfmocks.NewMockExtractor(gomock.NewController(t))
	h := NewExamHandler(service.NewExamService(extractor, examRepo, answerRepo, "", log), 1<<20, log)

	r := gin.New()
	r.POST("/upload", h.UploadHandler)
	r.GET("/exam", h.GetExamHandler)
	r.POST("/submit", h.SubmitHandler)
	r.POST("/save-answers", h.SaveAnswersHandler)
	return &testEnv{engine: r, extractor: extractor, fs: fs}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func uploadRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if field != "" {
		part, err := mw.CreateFormFile(field, filename)
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		part.Write(content)
	} else {
		mw.WriteField("note", "no file here")
	}
	mw.Close()
	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not a JSON object: %q", w.Body.String())
	}
	return out
}

func TestExamFlow(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(httptest.NewRequest(http.MethodGet, "/exam", nil))
	if w.Code != http.StatusNotFound || decode(t, w)["error"] != "Exam data not found" {
		t.Fatalf("GET /exam before upload: %d %s", w.Code, w.Body.String())
	}
	w = env.do(jsonRequest(http.MethodPost, "/submit", `{"0":"B"}`))
	if w.Code != http.StatusNotFound || decode(t, w)["error"] != "Answer key not found" {
		t.Fatalf("POST /submit before upload: %d %s", w.Code, w.Body.String())
	}

	env.extractor.EXPECT().Extract([]byte("%PDF-1.4 fake")).Return(twoPlusTwo, nil)
	w = env.do(uploadRequest(t, "file", "questions.pdf", []byte("%PDF-1.4 fake")))
	if w.Code != http.StatusOK || decode(t, w)["message"] != "Exam data generated successfully" {
		t.Fatalf("upload: %d %s", w.Code, w.Body.String())
	}

	w = env.do(httptest.NewRequest(http.MethodGet, "/exam", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET /exam: %d %s", w.Code, w.Body.String())
	}
	want := `{"title":"Generated Exam","questions":[{"id":0,"question":"What is 2+2?","options":["3","4","5","6"]}]}`
	if w.Body.String() != want {
		t.Fatalf("unexpected exam:\nwant %s\ngot  %s", want, w.Body.String())
	}

	w = env.do(jsonRequest(http.MethodPost, "/submit", `{"0":"B"}`))
	if w.Code != http.StatusOK {
		t.Fatalf("submit: %d %s", w.Code, w.Body.String())
	}
	want = `{"score":1,"total":1,"percentage":100,"results":[{"question_id":0,"user_answer":"B","correct_answer":"B","is_correct":true}]}`
	if w.Body.String() != want {
		t.Fatalf("unexpected score:\nwant %s\ngot  %s", want, w.Body.String())
	}

	w = env.do(jsonRequest(http.MethodPost, "/submit", `{"0":"A"}`))
	got := decode(t, w)
	if got["score"] != float64(0) || got["total"] != float64(1) || got["percentage"] != float64(0) {
		t.Fatalf("unexpected wrong-answer score: %v", got)
	}
}

func TestUploadValidation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		req  *http.Request
		msg  string
	}{
		{name: "missing file part", req: uploadRequest(t, "", "", nil), msg: "No file part"},
		{name: "empty filename", req: uploadRequest(t, "file", "", nil), msg: "No selected file"},
		{name: "wrong field name", req: uploadRequest(t, "document", "a.pdf", []byte("x")), msg: "No file part"},
		{name: "not multipart", req: jsonRequest(http.MethodPost, "/upload", `{}`), msg: "No file part"},
		{name: "wrong extension", req: uploadRequest(t, "file", "notes.txt", []byte("x")), msg: "Invalid file type"},
		{name: "upper-case extension", req: uploadRequest(t, "file", "EXAM.PDF", []byte("x")), msg: "Invalid file type"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := env.do(tc.req)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d %s", w.Code, w.Body.String())
			}
			if msg := decode(t, w)["error"]; msg != tc.msg {
				t.Fatalf("expected %q, got %v", tc.msg, msg)
			}
		})
	}
}

func TestUploadTooLarge(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(uploadRequest(t, "file", "big.pdf", bytes.Repeat([]byte("x"), 2<<20)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d %s", w.Code, w.Body.String())
	}
}

func TestUploadExtractionFailure(t *testing.T) {
	env := newTestEnv(t)
	env.extractor.EXPECT().Extract(gomock.Any()).Return("", errors.New("failed to open PDF: not a PDF file"))

	w := env.do(uploadRequest(t, "file", "broken.pdf", []byte("junk")))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if msg := decode(t, w)["error"]; msg != "failed to open PDF: not a PDF file" {
		t.Fatalf("expected message passed through, got %v", msg)
	}

	if w := env.do(httptest.NewRequest(http.MethodGet, "/exam", nil)); w.Code != http.StatusNotFound {
		t.Fatalf("failed upload must not create an exam, got %d", w.Code)
	}
}

func TestUploadDropsOptionlessQuestions(t *testing.T) {
	env := newTestEnv(t)
	text := "1. Heading only\n" + "2. Real?\n(A) yes\n(B) no\n**Answer:** A\n" + "3. Also heading\n"
	env.extractor.EXPECT().Extract(gomock.Any()).Return(text, nil)

	if w := env.do(uploadRequest(t, "file", "q.pdf", []byte("%PDF"))); w.Code != http.StatusOK {
		t.Fatalf("upload: %d %s", w.Code, w.Body.String())
	}
	w := env.do(httptest.NewRequest(http.MethodGet, "/exam", nil))
	questions, _ := decode(t, w)["questions"].([]interface{})
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d: %s", len(questions), w.Body.String())
	}
}

func TestSubmitBadBodies(t *testing.T) {
	env := newTestEnv(t)
	env.extractor.EXPECT().Extract(gomock.Any()).Return(twoPlusTwo, nil)
	env.do(uploadRequest(t, "file", "q.pdf", []byte("%PDF")))

	for _, body := range []string{``, `[1,2]`, `"B"`, `{"zero":"B"}`} {
		w := env.do(jsonRequest(http.MethodPost, "/submit", body))
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %q: expected 400, got %d %s", body, w.Code, w.Body.String())
		}
	}
}

func TestSaveAnswers(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(jsonRequest(http.MethodPost, "/save-answers", `{"1":"C","0":"A"}`))
	if w.Code != http.StatusOK || decode(t, w)["message"] != "Answers saved successfully" {
		t.Fatalf("save-answers: %d %s", w.Code, w.Body.String())
	}
	raw, err := afero.ReadFile(env.fs, filepath.Join("data", repository.UserAnswersFile))
	if err != nil {
		t.Fatalf("read saved answers: %v", err)
	}
	if string(raw) != "{\n  \"1\": \"C\",\n  \"0\": \"A\"\n}" {
		t.Fatalf("unexpected saved answers %q", raw)
	}

	w = env.do(jsonRequest(http.MethodPost, "/save-answers", `not json`))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for invalid body, got %d", w.Code)
	}
	if _, ok := decode(t, w)["error"]; !ok {
		t.Fatalf("expected error message, got %s", w.Body.String())
	}
}

func TestSaveAnswersRepeatedKey(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(jsonRequest(http.MethodPost, "/save-answers", `{"1":"C","0":"A","1":"D"}`))
	if w.Code != http.StatusOK {
		t.Fatalf("save-answers: %d %s", w.Code, w.Body.String())
	}
	raw, err := afero.ReadFile(env.fs, filepath.Join("data", repository.UserAnswersFile))
	if err != nil {
		t.Fatalf("read saved answers: %v", err)
	}
	if string(raw) != "{\n  \"1\": \"D\",\n  \"0\": \"A\"\n}" {
		t.Fatalf("unexpected saved answers %q", raw)
	}
}
