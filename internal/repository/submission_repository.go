package repository

import (
	"github.com/BizzNEST/BizzTEST/internal/model"
	"gorm.io/gorm"
)

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func (r *SubmissionRepository) CreateSubmission(s *model.Submission) error {
	return r.DB.Create(s).Error
}

func (r *SubmissionRepository) FindSubmissionByID(id string) (*model.Submission, error) {
	var s model.Submission
	err := r.DB.Preload("Quiz").Preload("Quiz.Questions", questionOrder).First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListSubmissions returns newest first, quiz (with questions)
// preloaded. An empty quizID lists every submission.
func (r *SubmissionRepository) ListSubmissions(quizID string) ([]model.Submission, error) {
	var subs []model.Submission
	query := r.DB.Preload("Quiz").Preload("Quiz.Questions", questionOrder).Order("created_at desc")
	if quizID != "" {
		query = query.Where("quiz_id = ?", quizID)
	}
	err := query.Find(&subs).Error
	return subs, err
}
