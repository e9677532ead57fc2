package service

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/BizzNEST/BizzTEST/internal/scoring"
	"github.com/BizzNEST/BizzTEST/internal/util"
	"gorm.io/gorm"
)

// ExportService renders submissions and summary statistics as CSV
// downloads for teachers.
type ExportService struct {
	Submissions *SubmissionService
}

func NewExportService(submissions *SubmissionService) *ExportService {
	return &ExportService{Submissions: submissions}
}

var (
	filenameTitleRe = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
)

func formatPoints(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func writeCSV(records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SubmissionCSV renders one submission with a row per question,
// including the verdict re-derived over the quiz's current questions.
func SubmissionCSV(detail *SubmissionDetail) ([]byte, error) {
	records := [][]string{{
		"Student Name",
		"Student Email",
		"Quiz Name",
		"Submission Date",
		"Question Number",
		"Question Type",
		"Question Text",
		"Student Answer",
		"Correct Answer",
		"Points Earned",
		"Total Points",
		"Is Correct",
	}}

	date := detail.SubmittedAt.UTC().Format(util.DateFormat)
	for i, review := range detail.Reviews {
		correct := "No"
		if review.Verdict == scoring.VerdictCorrect {
			correct = "Yes"
		}
		records = append(records, []string{
			detail.StudentName,
			detail.StudentEmail,
			detail.QuizTitle,
			date,
			fmt.Sprintf("Q%d", i+1),
			string(review.Type),
			review.Prompt,
			review.Answer,
			review.CorrectAnswer,
			formatPoints(review.EarnedPoints),
			formatPoints(review.Points),
			correct,
		})
	}

	return writeCSV(records)
}

// BulkCSV renders one row per submission with its frozen score plus a
// live correct-question count.
func BulkCSV(subs []EnrichedSubmission) ([]byte, error) {
	records := [][]string{{
		"Student Name",
		"Student Email",
		"Quiz Name",
		"Submission Date",
		"Total Score",
		"Total Points",
		"Percentage",
		"Questions Correct",
		"Total Questions",
		"Time Taken (minutes)",
	}}

	for _, sub := range subs {
		var correct, gradable int
		if sub.Quiz != nil {
			live := scoring.Score(sub.Quiz.Questions, sub.Answers)
			correct, gradable = live.CorrectCount, live.GradableCount
		}
		records = append(records, []string{
			sub.StudentName,
			sub.StudentEmail,
			sub.QuizTitle,
			sub.SubmittedAt.UTC().Format(util.DateFormat),
			formatPoints(sub.Score.Earned),
			formatPoints(sub.Score.Total),
			strconv.Itoa(sub.Score.Percentage),
			strconv.Itoa(correct),
			strconv.Itoa(gradable),
			"0", // time taken is not tracked
		})
	}

	return writeCSV(records)
}

// QuizCSV is BulkCSV restricted to one quiz.
func QuizCSV(quizID string, subs []EnrichedSubmission) ([]byte, error) {
	var filtered []EnrichedSubmission
	for _, sub := range subs {
		if sub.QuizID == quizID {
			filtered = append(filtered, sub)
		}
	}
	return BulkCSV(filtered)
}

// SummaryCSV renders one row of aggregate statistics per quiz.
func SummaryCSV(subs []EnrichedSubmission) ([]byte, error) {
	records := [][]string{{
		"Quiz Name",
		"Total Submissions",
		"Average Score (%)",
		"Highest Score (%)",
		"Lowest Score (%)",
		"Perfect Scores",
		"Passing Rate (70%+)",
	}}

	for _, stats := range SummarizeByQuiz(subs) {
		records = append(records, []string{
			stats.QuizTitle,
			strconv.Itoa(stats.Submissions),
			strconv.Itoa(stats.AveragePercentage),
			strconv.Itoa(stats.HighestPercentage),
			strconv.Itoa(stats.LowestPercentage),
			strconv.Itoa(stats.PerfectScores),
			strconv.Itoa(stats.PassingRate),
		})
	}

	return writeCSV(records)
}

func SubmissionExportFilename(studentName string, now time.Time) string {
	name := whitespaceRe.ReplaceAllString(studentName, "_")
	return fmt.Sprintf("quiz_result_%s_%s.csv", name, now.UTC().Format(util.DateFormat))
}

func QuizExportFilename(quizTitle string, now time.Time) string {
	title := filenameTitleRe.ReplaceAllString(quizTitle, "")
	title = whitespaceRe.ReplaceAllString(strings.TrimSpace(title), "_")
	return fmt.Sprintf("quiz_%s_results_%s.csv", title, now.UTC().Format(util.DateFormat))
}

func AllResultsExportFilename(now time.Time) string {
	return fmt.Sprintf("all_quiz_results_%s.csv", now.UTC().Format(util.DateFormat))
}

func SummaryExportFilename(now time.Time) string {
	return fmt.Sprintf("quiz_summary_%s.csv", now.UTC().Format(util.DateFormat))
}

// ExportSubmission fetches one submission and renders its detail CSV.
func (e *ExportService) ExportSubmission(id string) (string, []byte, error) {
	detail, err := e.Submissions.SubmissionDetail(id)
	if err != nil {
		return "", nil, err
	}
	data, err := SubmissionCSV(detail)
	if err != nil {
		return "", nil, err
	}
	return SubmissionExportFilename(detail.StudentName, time.Now()), data, nil
}

// ExportQuiz renders the per-submission roll-up for one quiz.
func (e *ExportService) ExportQuiz(quizID string) (string, []byte, error) {
	quiz, err := e.Submissions.Quizzes.FindQuizWithQuestions(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, util.ErrQuizNotFound
		}
		return "", nil, err
	}
	subs, err := e.Submissions.ListSubmissions(quizID)
	if err != nil {
		return "", nil, err
	}
	if len(subs) == 0 {
		return "", nil, util.ErrNoSubmissions
	}
	data, err := QuizCSV(quizID, subs)
	if err != nil {
		return "", nil, err
	}
	return QuizExportFilename(quiz.Title, time.Now()), data, nil
}

// ExportAll renders either every submission or the per-quiz summary.
func (e *ExportService) ExportAll(summary bool) (string, []byte, error) {
	subs, err := e.Submissions.ListSubmissions("")
	if err != nil {
		return "", nil, err
	}
	if len(subs) == 0 {
		return "", nil, util.ErrNoSubmissions
	}

	if summary {
		data, err := SummaryCSV(subs)
		if err != nil {
			return "", nil, err
		}
		return SummaryExportFilename(time.Now()), data, nil
	}

	data, err := BulkCSV(subs)
	if err != nil {
		return "", nil, err
	}
	return AllResultsExportFilename(time.Now()), data, nil
}
