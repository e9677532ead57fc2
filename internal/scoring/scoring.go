// Package scoring turns a quiz's questions and a respondent's raw
// answer map into per-question verdicts and an aggregate score. It is
// pure: no storage, no validation errors; malformed or missing input
// always grades to a defined zero/incorrect result.
package scoring

import (
	"math"
	"strings"

	"github.com/BizzNEST/BizzTEST/internal/model"
)

// Verdict classifies one graded question.
type Verdict string

const (
	VerdictCorrect    Verdict = "correct"
	VerdictIncorrect  Verdict = "incorrect"
	VerdictUnanswered Verdict = "unanswered"
	VerdictOpenEnded  Verdict = "open-ended"
)

// QuestionResult is the grading outcome for a single question.
type QuestionResult struct {
	QuestionID   string  `json:"questionId"`
	Verdict      Verdict `json:"verdict"`
	EarnedPoints float64 `json:"earnedPoints"`
}

// Result aggregates a whole attempt. TotalPoints and GradableCount
// cover gradable questions only; open-ended questions contribute to
// neither side of the score.
type Result struct {
	EarnedPoints  float64 `json:"earnedPoints"`
	TotalPoints   float64 `json:"totalPoints"`
	CorrectCount  int     `json:"correctCount"`
	GradableCount int     `json:"gradableCount"`
	Percentage    int     `json:"percentage"`
}

// Grade applies the comparator for the question's type to the raw
// answer string. hasCorrectAnswer is the single source of truth for
// gradability: when it is false the verdict is open-ended no matter
// what the correctAnswer field holds.
func Grade(q model.Question, answer string) QuestionResult {
	res := QuestionResult{QuestionID: q.ID}

	if !q.HasCorrectAnswer {
		res.Verdict = VerdictOpenEnded
		return res
	}

	if strings.TrimSpace(answer) == "" {
		res.Verdict = VerdictUnanswered
		return res
	}

	switch q.Type {
	case model.MultiChoice:
		selected := model.SplitSelections(answer)
		correct := model.SplitSelections(q.CorrectAnswer)
		res.EarnedPoints = MultiSelectScore(selected, correct, len(q.OptionList()), q.Points)
		if sameSet(selected, correct) {
			res.Verdict = VerdictCorrect
		} else {
			res.Verdict = VerdictIncorrect
		}
	case model.ShortAnswer:
		if equalFold(answer, q.CorrectAnswer) {
			res.Verdict = VerdictCorrect
			res.EarnedPoints = q.Points
		} else {
			res.Verdict = VerdictIncorrect
		}
	default:
		// single-choice and true-false: exact, case-sensitive match.
		if answer == q.CorrectAnswer {
			res.Verdict = VerdictCorrect
			res.EarnedPoints = q.Points
		} else {
			res.Verdict = VerdictIncorrect
		}
	}

	return res
}

// Score grades every question and reduces the outcomes. Answers for
// unknown question ids are ignored; questions without answers count as
// unanswered.
func Score(questions []model.Question, answers map[string]string) Result {
	var r Result
	for _, q := range questions {
		if !q.HasCorrectAnswer {
			continue
		}
		r.GradableCount++
		r.TotalPoints += q.Points

		qr := Grade(q, answers[q.ID])
		r.EarnedPoints += qr.EarnedPoints
		if qr.Verdict == VerdictCorrect {
			r.CorrectCount++
		}
	}
	r.EarnedPoints = round2(r.EarnedPoints)
	r.Percentage = Percentage(r.EarnedPoints, r.TotalPoints)
	return r
}

// MultiSelectScore implements the correct-minus-incorrect partial
// credit rule: r = TP/k - FP/(m-k), clamped to [0,1], rounded to two
// decimals of the question's points. When every option is correct
// (m == k) there are no incorrect options to penalize, so the penalty
// term is zero instead of a division by zero.
func MultiSelectScore(selected, correct []string, totalOptions int, maxPoints float64) float64 {
	correctSet := toSet(correct)
	k := len(correctSet)
	if k == 0 {
		return 0
	}

	var tp, fp int
	for s := range toSet(selected) {
		if correctSet[s] {
			tp++
		} else {
			fp++
		}
	}

	s := float64(tp) / float64(k)
	if totalOptions > k {
		s -= float64(fp) / float64(totalOptions-k)
	}
	s = math.Max(0, math.Min(1, s))
	return round2(s * maxPoints)
}

// Percentage is round(100*earned/total), or 0 for an all-open-ended
// quiz.
func Percentage(earned, total float64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * earned / total))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func toSet(vals []string) map[string]bool {
	set := make(map[string]bool, len(vals))
	for _, v := range vals {
		set[v] = true
	}
	return set
}

func sameSet(a, b []string) bool {
	sa, sb := toSet(a), toSet(b)
	if len(sa) != len(sb) {
		return false
	}
	for v := range sa {
		if !sb[v] {
			return false
		}
	}
	return true
}
