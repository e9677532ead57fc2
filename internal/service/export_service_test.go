package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/BizzNEST/BizzTEST/internal/model"
	"github.com/BizzNEST/BizzTEST/internal/scoring"
	"github.com/BizzNEST/BizzTEST/internal/util"
)

func TestSubmissionCSV(t *testing.T) {
	detail := &SubmissionDetail{
		EnrichedSubmission: EnrichedSubmission{
			StudentName:  "Ana Lopez",
			StudentEmail: "ana@example.com",
			QuizTitle:    "Networking, Basics",
			SubmittedAt:  time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
		},
		Reviews: []QuestionReview{
			{
				Type:          model.SingleChoice,
				Prompt:        "Default HTTP port?",
				Answer:        "1",
				CorrectAnswer: "1",
				Points:        2,
				Verdict:       scoring.VerdictCorrect,
				EarnedPoints:  2,
			},
			{
				Type:         model.ShortAnswer,
				Prompt:       `Say "hello"`,
				Answer:       "",
				Points:       1.5,
				Verdict:      scoring.VerdictUnanswered,
				EarnedPoints: 0,
			},
		},
	}

	data, err := SubmissionCSV(detail)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3:\n%s", len(lines), data)
	}
	if !strings.HasPrefix(lines[0], "Student Name,Student Email,Quiz Name,Submission Date") {
		t.Fatalf("header = %q", lines[0])
	}
	// Commas in the quiz title must be quoted.
	if !strings.Contains(lines[1], `"Networking, Basics"`) {
		t.Fatalf("row 1 = %q", lines[1])
	}
	if !strings.Contains(lines[1], "2025-03-14,Q1,single-choice") || !strings.HasSuffix(lines[1], "2,2,Yes") {
		t.Fatalf("row 1 = %q", lines[1])
	}
	if !strings.Contains(lines[2], "Q2") || !strings.HasSuffix(lines[2], "0,1.5,No") {
		t.Fatalf("row 2 = %q", lines[2])
	}
}

func TestBulkCSVCountsCorrectQuestions(t *testing.T) {
	quiz := gradedQuiz(t)
	sub := EnrichedSubmission{
		QuizID:      quiz.ID,
		QuizTitle:   quiz.Title,
		StudentName: "Ana",
		SubmittedAt: time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
		Score:       ScoreBlock{Earned: 2, Total: 5, Percentage: 40},
		Answers:     map[string]string{"q1": "1", "q2": "udp"},
		Quiz:        quiz,
	}

	data, err := BulkCSV([]EnrichedSubmission{sub})
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	// earned/total/percentage then correct-count over gradable questions.
	if !strings.HasSuffix(lines[1], "2,5,40,1,2,0") {
		t.Fatalf("row = %q", lines[1])
	}
}

func TestQuizCSVFiltersOtherQuizzes(t *testing.T) {
	subs := []EnrichedSubmission{
		{QuizID: "a", StudentName: "Ana"},
		{QuizID: "b", StudentName: "Bo"},
		{QuizID: "a", StudentName: "Cy"},
	}

	data, err := QuizCSV("a", subs)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, "Ana") || !strings.Contains(out, "Cy") {
		t.Fatalf("missing quiz-a rows:\n%s", out)
	}
	if strings.Contains(out, "Bo") {
		t.Fatalf("quiz-b row leaked:\n%s", out)
	}
}

func TestSummaryCSV(t *testing.T) {
	subs := []EnrichedSubmission{
		enrichedAt("a", "Quiz A", 100),
		enrichedAt("a", "Quiz A", 50),
	}

	data, err := SummaryCSV(subs)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if lines[1] != "Quiz A,2,75,100,50,1,50" {
		t.Fatalf("row = %q", lines[1])
	}
}

func TestExportFilenames(t *testing.T) {
	now := time.Date(2025, 3, 14, 23, 59, 0, 0, time.UTC)

	if got := SubmissionExportFilename("Ana Lopez", now); got != "quiz_result_Ana_Lopez_2025-03-14.csv" {
		t.Errorf("submission filename = %q", got)
	}
	if got := QuizExportFilename("Networking: Basics!", now); got != "quiz_Networking_Basics_2025-03-14.csv" {
		t.Errorf("quiz filename = %q", got)
	}
	if got := AllResultsExportFilename(now); got != "all_quiz_results_2025-03-14.csv" {
		t.Errorf("all filename = %q", got)
	}
	if got := SummaryExportFilename(now); got != "quiz_summary_2025-03-14.csv" {
		t.Errorf("summary filename = %q", got)
	}
}

func TestExportWithoutSubmissions(t *testing.T) {
	quiz := gradedQuiz(t)
	svc := NewExportService(NewSubmissionService(
		&fakeQuizSource{quizzes: map[string]*model.Quiz{quiz.ID: quiz}},
		&fakeSubmissionStore{},
	))

	if _, _, err := svc.ExportQuiz(quiz.ID); !errors.Is(err, util.ErrNoSubmissions) {
		t.Errorf("ExportQuiz err = %v, want ErrNoSubmissions", err)
	}
	if _, _, err := svc.ExportAll(false); !errors.Is(err, util.ErrNoSubmissions) {
		t.Errorf("ExportAll err = %v, want ErrNoSubmissions", err)
	}
	if _, _, err := svc.ExportAll(true); !errors.Is(err, util.ErrNoSubmissions) {
		t.Errorf("ExportAll summary err = %v, want ErrNoSubmissions", err)
	}
	if _, _, err := svc.ExportQuiz("missing"); !errors.Is(err, util.ErrQuizNotFound) {
		t.Errorf("ExportQuiz err = %v, want ErrQuizNotFound", err)
	}
}
