// Command mcqpdf writes a sample MCQ PDF that the server can import.
package main

import (
	"MCQ-PDF-Exam-Backend/internal/model"
	"MCQ-PDF-Exam-Backend/internal/pdftext"
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

func answer(s string) *string { return &s }

var sampleQuestions = []model.QuestionRecord{
	{Question: "What is the capital of France?", Options: []string{"Berlin", "Madrid", "Paris", "Rome"}, CorrectAnswer: answer("C")},
	{Question: "What is 2 + 2?", Options: []string{"3", "4", "5", "6"}, CorrectAnswer: answer("B")},
	{Question: "Which planet is known as the Red Planet?", Options: []string{"Earth", "Mars", "Jupiter", "Saturn"}, CorrectAnswer: answer("B")},
	{Question: `Who wrote "Romeo and Juliet"?`, Options: []string{"Shakespeare", "Dickens", "Hemingway", "Austen"}, CorrectAnswer: answer("A")},
}

func main() {
	output := pflag.StringP("output", "o", "mcq_questions.pdf", "path of the PDF to write")
	title := pflag.StringP("title", "t", "Multiple Choice Questions", "heading printed on the first page")
	pflag.Parse()

	f, err := os.Create(*output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := pdftext.WriteMCQ(f, *title, sampleQuestions); err != nil {
		f.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d questions to %s\n", len(sampleQuestions), *output)
}
