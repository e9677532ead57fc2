package service

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/BizzNEST/BizzTEST/internal/model"
	"github.com/BizzNEST/BizzTEST/internal/scoring"
	"github.com/BizzNEST/BizzTEST/internal/util"
	"gorm.io/gorm"
)

type fakeQuizSource struct {
	quizzes map[string]*model.Quiz
}

func (f *fakeQuizSource) FindQuizWithQuestions(id string) (*model.Quiz, error) {
	quiz, ok := f.quizzes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return quiz, nil
}

type fakeSubmissionStore struct {
	created []*model.Submission
	rows    map[string]*model.Submission
	listed  []model.Submission
	failure error
}

func (f *fakeSubmissionStore) CreateSubmission(s *model.Submission) error {
	if f.failure != nil {
		return f.failure
	}
	if s.ID == "" {
		s.ID = model.GenerateUUID()
	}
	f.created = append(f.created, s)
	return nil
}

func (f *fakeSubmissionStore) FindSubmissionByID(id string) (*model.Submission, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return row, nil
}

func (f *fakeSubmissionStore) ListSubmissions(string) ([]model.Submission, error) {
	if f.failure != nil {
		return nil, f.failure
	}
	return f.listed, nil
}

func mustJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return raw
}

func gradedQuiz(t *testing.T) *model.Quiz {
	t.Helper()
	quiz := &model.Quiz{Title: "Networking Basics"}
	quiz.ID = "quiz-1"
	q1 := model.Question{
		QuizID:           quiz.ID,
		Type:             model.SingleChoice,
		Prompt:           "Default HTTP port?",
		CorrectAnswer:    "1",
		Points:           2,
		HasCorrectAnswer: true,
	}
	q1.ID = "q1"
	if err := q1.SetOptions([]string{"22", "80", "443"}); err != nil {
		t.Fatal(err)
	}
	q2 := model.Question{
		QuizID:           quiz.ID,
		Type:             model.ShortAnswer,
		Prompt:           "Transport protocol under HTTP/1.1?",
		CorrectAnswer:    "TCP",
		Points:           3,
		HasCorrectAnswer: true,
	}
	q2.ID = "q2"
	quiz.Questions = []model.Question{q1, q2}
	return quiz
}

func TestSubmitRejectsBlankName(t *testing.T) {
	svc := NewSubmissionService(&fakeQuizSource{quizzes: map[string]*model.Quiz{}}, &fakeSubmissionStore{})

	for _, name := range []string{"", "   ", "\t\n"} {
		if _, err := svc.Submit("quiz-1", name, "", nil); !errors.Is(err, util.ErrMissingStudentName) {
			t.Errorf("Submit(name=%q) err = %v, want ErrMissingStudentName", name, err)
		}
	}
}

func TestSubmitUnknownQuiz(t *testing.T) {
	store := &fakeSubmissionStore{}
	svc := NewSubmissionService(&fakeQuizSource{quizzes: map[string]*model.Quiz{}}, store)

	if _, err := svc.Submit("missing", "Ana", "", nil); !errors.Is(err, util.ErrQuizNotFound) {
		t.Fatalf("Submit err = %v, want ErrQuizNotFound", err)
	}
	if len(store.created) != 0 {
		t.Fatal("no submission row should be created for an unknown quiz")
	}
}

func TestSubmitFreezesScore(t *testing.T) {
	quiz := gradedQuiz(t)
	store := &fakeSubmissionStore{}
	svc := NewSubmissionService(&fakeQuizSource{quizzes: map[string]*model.Quiz{quiz.ID: quiz}}, store)

	sub, err := svc.Submit(quiz.ID, "Ana", "ana@example.com", map[string]string{
		"q1": "1",
		"q2": " tcp ",
	})
	if err != nil {
		t.Fatal(err)
	}
	if sub.Score != 5 || sub.TotalPoints != 5 {
		t.Fatalf("score = %v/%v, want 5/5", sub.Score, sub.TotalPoints)
	}

	// Editing the quiz afterwards must not touch the stored row.
	quiz.Questions[0].CorrectAnswer = "2"
	if sub.Score != 5 {
		t.Fatalf("stored score changed to %v after quiz edit", sub.Score)
	}
	if len(store.created) != 1 {
		t.Fatalf("created %d rows, want 1", len(store.created))
	}
}

func TestSubmitNilAnswersPersistsEmptyObject(t *testing.T) {
	quiz := gradedQuiz(t)
	store := &fakeSubmissionStore{}
	svc := NewSubmissionService(&fakeQuizSource{quizzes: map[string]*model.Quiz{quiz.ID: quiz}}, store)

	sub, err := svc.Submit(quiz.ID, "Ana", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(sub.Answers) != "{}" {
		t.Fatalf("answers = %s, want {}", sub.Answers)
	}
	if sub.Score != 0 || sub.TotalPoints != 5 {
		t.Fatalf("score = %v/%v, want 0/5", sub.Score, sub.TotalPoints)
	}
}

func TestEnrichSubmissionWithoutQuiz(t *testing.T) {
	sub := model.Submission{
		QuizID:      "gone",
		StudentName: "Ana",
		Score:       1,
		TotalPoints: 2,
		Answers:     json.RawMessage(`{"q1":"1"}`),
	}
	sub.ID = "sub-1"

	enriched := EnrichSubmission(sub)
	if enriched.QuizTitle != "Unknown Quiz" {
		t.Fatalf("QuizTitle = %q, want Unknown Quiz", enriched.QuizTitle)
	}
	if enriched.Score.Percentage != 50 {
		t.Fatalf("Percentage = %d, want 50", enriched.Score.Percentage)
	}
	if enriched.Answers["q1"] != "1" {
		t.Fatalf("Answers = %v", enriched.Answers)
	}
}

func TestSubmissionDetailVerdicts(t *testing.T) {
	quiz := gradedQuiz(t)
	sub := &model.Submission{
		QuizID:      quiz.ID,
		Quiz:        quiz,
		StudentName: "Ana",
		Score:       2,
		TotalPoints: 5,
		Answers:     mustJSON(t, map[string]string{"q1": "1"}),
	}
	sub.ID = "sub-1"

	svc := NewSubmissionService(
		&fakeQuizSource{quizzes: map[string]*model.Quiz{quiz.ID: quiz}},
		&fakeSubmissionStore{rows: map[string]*model.Submission{sub.ID: sub}},
	)

	detail, err := svc.SubmissionDetail(sub.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(detail.Reviews) != 2 {
		t.Fatalf("reviews = %d, want 2", len(detail.Reviews))
	}
	if detail.Reviews[0].Verdict != scoring.VerdictCorrect || detail.Reviews[0].EarnedPoints != 2 {
		t.Fatalf("q1 review = %+v", detail.Reviews[0])
	}
	if detail.Reviews[1].Verdict != scoring.VerdictUnanswered {
		t.Fatalf("q2 verdict = %v, want unanswered", detail.Reviews[1].Verdict)
	}
	if detail.LiveScore.EarnedPoints != 2 || detail.LiveScore.Percentage != 40 {
		t.Fatalf("live score = %+v", detail.LiveScore)
	}
}

func TestSubmissionDetailNotFound(t *testing.T) {
	svc := NewSubmissionService(
		&fakeQuizSource{quizzes: map[string]*model.Quiz{}},
		&fakeSubmissionStore{rows: map[string]*model.Submission{}},
	)
	if _, err := svc.SubmissionDetail("nope"); !errors.Is(err, util.ErrSubmissionNotFound) {
		t.Fatalf("err = %v, want ErrSubmissionNotFound", err)
	}
}

func enrichedAt(quizID, title string, percentage int) EnrichedSubmission {
	return EnrichedSubmission{
		QuizID:      quizID,
		QuizTitle:   title,
		SubmittedAt: time.Now(),
		Score:       ScoreBlock{Percentage: percentage},
	}
}

func TestSummarizeByQuiz(t *testing.T) {
	subs := []EnrichedSubmission{
		enrichedAt("a", "Quiz A", 100),
		enrichedAt("b", "Quiz B", 40),
		enrichedAt("a", "Quiz A", 70),
		enrichedAt("a", "Quiz A", 55),
	}

	stats := SummarizeByQuiz(subs)
	if len(stats) != 2 {
		t.Fatalf("groups = %d, want 2", len(stats))
	}

	a := stats[0]
	if a.QuizID != "a" || a.Submissions != 3 {
		t.Fatalf("first group = %+v", a)
	}
	if a.AveragePercentage != 75 || a.HighestPercentage != 100 || a.LowestPercentage != 55 {
		t.Fatalf("quiz a stats = %+v", a)
	}
	if a.PerfectScores != 1 {
		t.Fatalf("perfect = %d, want 1", a.PerfectScores)
	}
	// 100 and 70 pass the 70% bar, 55 does not.
	if a.PassingRate != 67 {
		t.Fatalf("passing rate = %d, want 67", a.PassingRate)
	}

	b := stats[1]
	if b.Submissions != 1 || b.AveragePercentage != 40 || b.PassingRate != 0 || b.PerfectScores != 0 {
		t.Fatalf("quiz b stats = %+v", b)
	}
}

func TestSummarizeByQuizEmpty(t *testing.T) {
	if stats := SummarizeByQuiz(nil); len(stats) != 0 {
		t.Fatalf("stats = %v, want empty", stats)
	}
}
