package model

import "encoding/json"

// Submission is one respondent's completed attempt. The answer map is
// stored as an opaque JSON blob and the score is frozen at submission
// time; later quiz edits never rescore historical rows.
// swagger:model Submission
type Submission struct {
	UUIDBase
	QuizID       string          `gorm:"index;type:varchar(36);not null" json:"quizId"`
	Quiz         *Quiz           `gorm:"foreignKey:QuizID" json:"quiz,omitempty"`
	StudentName  string          `gorm:"size:255;not null" json:"studentName"`
	StudentEmail string          `gorm:"size:255" json:"studentEmail"`
	Answers      json.RawMessage `gorm:"type:json" json:"answers"`
	Score        float64         `json:"score"`
	TotalPoints  float64         `json:"totalPoints"`
}

func (Submission) TableName() string {
	return "submissions"
}

// AnswerMap decodes the stored answer blob. Malformed blobs decode to
// an empty map; a missing answer is scored as unanswered, never as an
// error.
func (s *Submission) AnswerMap() map[string]string {
	answers := map[string]string{}
	if len(s.Answers) == 0 {
		return answers
	}
	_ = json.Unmarshal(s.Answers, &answers)
	return answers
}
