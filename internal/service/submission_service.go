package service

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/BizzNEST/BizzTEST/internal/model"
	"github.com/BizzNEST/BizzTEST/internal/scoring"
	"github.com/BizzNEST/BizzTEST/internal/util"
	"github.com/BizzNEST/BizzTEST/pkg/monitoring"
	"gorm.io/gorm"
)

// QuizSource and SubmissionStore are the two collaborators the
// assembler needs; the gorm repositories satisfy them.
type QuizSource interface {
	FindQuizWithQuestions(id string) (*model.Quiz, error)
}

type SubmissionStore interface {
	CreateSubmission(s *model.Submission) error
	FindSubmissionByID(id string) (*model.Submission, error)
	ListSubmissions(quizID string) ([]model.Submission, error)
}

type SubmissionService struct {
	Quizzes QuizSource
	Store   SubmissionStore
}

func NewSubmissionService(quizzes QuizSource, store SubmissionStore) *SubmissionService {
	return &SubmissionService{Quizzes: quizzes, Store: store}
}

// Submit scores the answer map against the quiz's questions and
// persists one immutable submission row. The score is frozen here:
// later quiz edits never rescore stored rows. Validation happens
// before any scoring; the scoring engine itself never fails.
func (s *SubmissionService) Submit(quizID, studentName, studentEmail string, answers map[string]string) (*model.Submission, error) {
	if strings.TrimSpace(studentName) == "" {
		return nil, util.ErrMissingStudentName
	}

	quiz, err := s.Quizzes.FindQuizWithQuestions(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}

	result := scoring.Score(quiz.Questions, answers)

	if answers == nil {
		answers = map[string]string{}
	}
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return nil, err
	}

	submission := &model.Submission{
		QuizID:       quizID,
		StudentName:  studentName,
		StudentEmail: studentEmail,
		Answers:      answersJSON,
		Score:        result.EarnedPoints,
		TotalPoints:  result.TotalPoints,
	}

	if err := s.Store.CreateSubmission(submission); err != nil {
		return nil, err
	}

	monitoring.SubmissionCounter.WithLabelValues(quizID).Inc()
	return submission, nil
}

type ScoreBlock struct {
	Earned     float64 `json:"earned"`
	Total      float64 `json:"total"`
	Percentage int     `json:"percentage"`
}

// EnrichedSubmission is the reporting shape: the stored row joined with
// its quiz and the percentage derived from the frozen score.
type EnrichedSubmission struct {
	ID           string            `json:"id"`
	QuizID       string            `json:"quizId"`
	QuizTitle    string            `json:"quizName"`
	StudentName  string            `json:"studentName"`
	StudentEmail string            `json:"studentEmail"`
	SubmittedAt  time.Time         `json:"submittedAt"`
	Score        ScoreBlock        `json:"score"`
	Answers      map[string]string `json:"answers"`
	Quiz         *model.Quiz       `json:"quiz,omitempty"`
}

func EnrichSubmission(sub model.Submission) EnrichedSubmission {
	enriched := EnrichedSubmission{
		ID:           sub.ID,
		QuizID:       sub.QuizID,
		QuizTitle:    "Unknown Quiz",
		StudentName:  sub.StudentName,
		StudentEmail: sub.StudentEmail,
		SubmittedAt:  sub.CreatedAt,
		Score: ScoreBlock{
			Earned:     sub.Score,
			Total:      sub.TotalPoints,
			Percentage: scoring.Percentage(sub.Score, sub.TotalPoints),
		},
		Answers: sub.AnswerMap(),
		Quiz:    sub.Quiz,
	}
	if sub.Quiz != nil {
		enriched.QuizTitle = sub.Quiz.Title
	}
	return enriched
}

func (s *SubmissionService) ListSubmissions(quizID string) ([]EnrichedSubmission, error) {
	subs, err := s.Store.ListSubmissions(quizID)
	if err != nil {
		return nil, err
	}

	enriched := make([]EnrichedSubmission, len(subs))
	for i, sub := range subs {
		enriched[i] = EnrichSubmission(sub)
	}
	return enriched, nil
}

// QuestionReview is one question of a submission detail view with the
// verdict re-derived at read time.
type QuestionReview struct {
	ID            string             `json:"id"`
	Type          model.QuestionType `json:"type"`
	Prompt        string             `json:"prompt"`
	Options       []string           `json:"options,omitempty"`
	CorrectAnswer string             `json:"correctAnswer,omitempty"`
	Points        float64            `json:"points"`
	Answer        string             `json:"answer"`
	Verdict       scoring.Verdict    `json:"verdict"`
	EarnedPoints  float64            `json:"earnedPoints"`
}

// SubmissionDetail carries both the frozen score (Score block) and a
// live re-derivation over the quiz's current questions. The two may
// diverge when the quiz changed after submission; that staleness is
// accepted.
type SubmissionDetail struct {
	EnrichedSubmission
	Reviews   []QuestionReview `json:"reviews"`
	LiveScore scoring.Result   `json:"liveScore"`
}

func (s *SubmissionService) SubmissionDetail(id string) (*SubmissionDetail, error) {
	sub, err := s.Store.FindSubmissionByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSubmissionNotFound
		}
		return nil, err
	}

	detail := &SubmissionDetail{EnrichedSubmission: EnrichSubmission(*sub)}
	if sub.Quiz == nil {
		return detail, nil
	}

	answers := detail.Answers
	detail.Reviews = make([]QuestionReview, len(sub.Quiz.Questions))
	for i, q := range sub.Quiz.Questions {
		graded := scoring.Grade(q, answers[q.ID])
		detail.Reviews[i] = QuestionReview{
			ID:            q.ID,
			Type:          q.Type,
			Prompt:        q.Prompt,
			Options:       q.OptionList(),
			CorrectAnswer: q.CorrectAnswer,
			Points:        q.Points,
			Answer:        answers[q.ID],
			Verdict:       graded.Verdict,
			EarnedPoints:  graded.EarnedPoints,
		}
	}
	detail.LiveScore = scoring.Score(sub.Quiz.Questions, answers)

	return detail, nil
}

// QuizStats is the per-quiz roll-up over stored submission
// percentages.
type QuizStats struct {
	QuizID            string `json:"quizId"`
	QuizTitle         string `json:"quizName"`
	Submissions       int    `json:"submissions"`
	AveragePercentage int    `json:"averagePercentage"`
	HighestPercentage int    `json:"highestPercentage"`
	LowestPercentage  int    `json:"lowestPercentage"`
	PerfectScores     int    `json:"perfectScores"`
	PassingRate       int    `json:"passingRate"`
}

// SummarizeByQuiz reduces enriched submissions into per-quiz summary
// statistics, grouped in first-seen order. All inputs already carry
// their percentage; no scoring happens here.
func SummarizeByQuiz(subs []EnrichedSubmission) []QuizStats {
	var order []string
	groups := map[string]*QuizStats{}
	percentages := map[string][]int{}

	for _, sub := range subs {
		stats, ok := groups[sub.QuizID]
		if !ok {
			stats = &QuizStats{QuizID: sub.QuizID, QuizTitle: sub.QuizTitle}
			groups[sub.QuizID] = stats
			order = append(order, sub.QuizID)
		}
		stats.Submissions++
		percentages[sub.QuizID] = append(percentages[sub.QuizID], sub.Score.Percentage)
	}

	out := make([]QuizStats, 0, len(order))
	for _, quizID := range order {
		stats := groups[quizID]
		ps := percentages[quizID]

		sum, highest, lowest, perfect, passing := 0, ps[0], ps[0], 0, 0
		for _, p := range ps {
			sum += p
			if p > highest {
				highest = p
			}
			if p < lowest {
				lowest = p
			}
			if p == 100 {
				perfect++
			}
			if p >= util.PassingPercentage {
				passing++
			}
		}

		stats.AveragePercentage = int(math.Round(float64(sum) / float64(len(ps))))
		stats.HighestPercentage = highest
		stats.LowestPercentage = lowest
		stats.PerfectScores = perfect
		stats.PassingRate = int(math.Round(100 * float64(passing) / float64(len(ps))))
		out = append(out, *stats)
	}

	return out
}

func (s *SubmissionService) Stats() ([]QuizStats, error) {
	subs, err := s.ListSubmissions("")
	if err != nil {
		return nil, err
	}
	return SummarizeByQuiz(subs), nil
}
