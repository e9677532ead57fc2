package model

import (
	"encoding/json"
	"strings"
)

// QuestionType selects the grading comparator and the answer shape a
// question expects. file-upload and code are always open-ended.
type QuestionType string

const (
	SingleChoice QuestionType = "single-choice"
	MultiChoice  QuestionType = "multi-choice"
	TrueFalse    QuestionType = "true-false"
	ShortAnswer  QuestionType = "short-answer"
	FileUpload   QuestionType = "file-upload"
	Code         QuestionType = "code"
)

// swagger:model Quiz
type Quiz struct {
	UUIDBase
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Questions   []Question `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// swagger:model Question
type Question struct {
	UUIDBase
	QuizID           string          `gorm:"index;type:varchar(36)" json:"quizId"`
	Type             QuestionType    `gorm:"size:50;not null" json:"type"`
	Prompt           string          `gorm:"type:text;not null" json:"prompt"`
	Options          json.RawMessage `gorm:"type:json" json:"options,omitempty"` // JSON: []string, choice types only
	CorrectAnswer    string          `gorm:"type:text" json:"correctAnswer,omitempty"`
	Points           float64         `gorm:"default:1" json:"points"`
	HasCorrectAnswer bool            `gorm:"default:false" json:"hasCorrectAnswer"`
	Language         string          `gorm:"size:50" json:"language,omitempty"` // code questions only
	Order            int             `gorm:"default:0" json:"order"`
}

func (Question) TableName() string {
	return "questions"
}

// OptionList decodes the stored options blob. A missing or malformed
// blob decodes to nil rather than an error; grading treats that as a
// question with zero options.
func (q *Question) OptionList() []string {
	if len(q.Options) == 0 {
		return nil
	}
	var opts []string
	if err := json.Unmarshal(q.Options, &opts); err != nil {
		return nil
	}
	return opts
}

func (q *Question) SetOptions(opts []string) error {
	if opts == nil {
		q.Options = nil
		return nil
	}
	raw, err := json.Marshal(opts)
	if err != nil {
		return err
	}
	q.Options = raw
	return nil
}

func KnownQuestionType(t QuestionType) bool {
	switch t {
	case SingleChoice, MultiChoice, TrueFalse, ShortAnswer, FileUpload, Code:
		return true
	}
	return false
}

// RequiresOptions reports whether the type carries an option list.
func RequiresOptions(t QuestionType) bool {
	return t == SingleChoice || t == MultiChoice
}

// AlwaysOpenEnded reports whether the type can never be auto-graded.
func AlwaysOpenEnded(t QuestionType) bool {
	return t == FileUpload || t == Code
}

// SplitSelections parses the comma-joined option-index encoding used on
// the wire for multi-choice answers and correct answers. Empty segments
// are dropped; order carries no meaning.
func SplitSelections(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// DeriveHasCorrectAnswer applies the authoring-time gradability rule:
// short-answer needs non-blank correct text, file-upload and code are
// never gradable, everything else needs a correct value present (a
// non-empty selection list for multi-choice).
func DeriveHasCorrectAnswer(t QuestionType, correctAnswer string) bool {
	switch t {
	case FileUpload, Code:
		return false
	case ShortAnswer:
		return strings.TrimSpace(correctAnswer) != ""
	case MultiChoice:
		return len(SplitSelections(correctAnswer)) > 0
	default:
		return correctAnswer != ""
	}
}
