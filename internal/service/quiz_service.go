package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/BizzNEST/BizzTEST/internal/model"
	"github.com/BizzNEST/BizzTEST/internal/repository"
	"github.com/BizzNEST/BizzTEST/internal/util"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	quizCacheKeyPrefix = "quiz:"
	quizCacheTTL       = 10 * time.Minute
)

type QuizService struct {
	Repo  *repository.QuizRepository
	Redis *redis.Client
}

func NewQuizService(repo *repository.QuizRepository, rdb *redis.Client) *QuizService {
	return &QuizService{Repo: repo, Redis: rdb}
}

type QuestionRequest struct {
	Type          string   `json:"type" binding:"required"`
	Prompt        string   `json:"prompt" binding:"required"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Points        float64  `json:"points"`
	Language      string   `json:"language"`
}

type QuizRequest struct {
	Title       string            `json:"title" binding:"required"`
	Description string            `json:"description"`
	Questions   []QuestionRequest `json:"questions"`
}

// buildQuestions validates the authoring payload and derives
// gradability. Display order follows payload order.
func buildQuestions(reqs []QuestionRequest) ([]model.Question, error) {
	if len(reqs) == 0 {
		return nil, util.ErrEmptyQuestionList
	}

	questions := make([]model.Question, len(reqs))
	for i, req := range reqs {
		qt := model.QuestionType(req.Type)
		if !model.KnownQuestionType(qt) {
			return nil, fmt.Errorf("%w: question %d has unknown type %q", util.ErrInvalidQuestion, i+1, req.Type)
		}

		points := req.Points
		if points <= 0 {
			points = 1
		}

		q := model.Question{
			Type:             qt,
			Prompt:           req.Prompt,
			CorrectAnswer:    req.CorrectAnswer,
			Points:           points,
			HasCorrectAnswer: model.DeriveHasCorrectAnswer(qt, req.CorrectAnswer),
			Language:         req.Language,
			Order:            i,
		}

		if model.RequiresOptions(qt) {
			if q.HasCorrectAnswer && len(req.Options) < 2 {
				return nil, fmt.Errorf("%w: question %d needs at least two options", util.ErrInvalidQuestion, i+1)
			}
			if err := q.SetOptions(req.Options); err != nil {
				return nil, err
			}
		}

		questions[i] = q
	}

	return questions, nil
}

func (s *QuizService) CreateQuiz(req QuizRequest) (*model.Quiz, error) {
	questions, err := buildQuestions(req.Questions)
	if err != nil {
		return nil, err
	}

	quiz := &model.Quiz{
		Title:       req.Title,
		Description: req.Description,
	}
	if err := s.Repo.CreateQuizWithQuestions(quiz, questions); err != nil {
		return nil, err
	}
	quiz.Questions = questions
	return quiz, nil
}

func (s *QuizService) GetQuiz(id string) (*model.Quiz, error) {
	if cached := s.cacheGet(id); cached != nil {
		return cached, nil
	}

	quiz, err := s.Repo.FindQuizWithQuestions(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}

	s.cacheSet(quiz)
	return quiz, nil
}

func (s *QuizService) ListQuizzes() ([]model.Quiz, error) {
	return s.Repo.ListQuizzes()
}

// UpdateQuiz replaces the title, description and the entire question
// set in one transaction. Historical submissions keep their frozen
// scores.
func (s *QuizService) UpdateQuiz(id string, req QuizRequest) (*model.Quiz, error) {
	quiz, err := s.Repo.FindQuizByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}

	questions, err := buildQuestions(req.Questions)
	if err != nil {
		return nil, err
	}

	quiz.Title = req.Title
	quiz.Description = req.Description
	if err := s.Repo.ReplaceQuestions(quiz, questions); err != nil {
		return nil, err
	}

	s.cacheInvalidate(id)
	quiz.Questions = questions
	return quiz, nil
}

func (s *QuizService) DeleteQuiz(id string) error {
	if _, err := s.Repo.FindQuizByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrQuizNotFound
		}
		return err
	}
	if err := s.Repo.DeleteQuizCascade(id); err != nil {
		return err
	}
	s.cacheInvalidate(id)
	return nil
}

// StudentQuestion is the respondent-facing question shape: prompt and
// options without the answer key.
type StudentQuestion struct {
	ID               string             `json:"id"`
	Type             model.QuestionType `json:"type"`
	Prompt           string             `json:"prompt"`
	Options          []string           `json:"options,omitempty"`
	Points           float64            `json:"points"`
	HasCorrectAnswer bool               `json:"hasCorrectAnswer"`
	Language         string             `json:"language,omitempty"`
	Order            int                `json:"order"`
}

type StudentQuiz struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Questions   []StudentQuestion `json:"questions"`
}

func (s *QuizService) GetQuizForStudent(id string) (*StudentQuiz, error) {
	quiz, err := s.GetQuiz(id)
	if err != nil {
		return nil, err
	}

	questions := make([]StudentQuestion, len(quiz.Questions))
	for i, q := range quiz.Questions {
		questions[i] = StudentQuestion{
			ID:               q.ID,
			Type:             q.Type,
			Prompt:           q.Prompt,
			Options:          q.OptionList(),
			Points:           q.Points,
			HasCorrectAnswer: q.HasCorrectAnswer,
			Language:         q.Language,
			Order:            q.Order,
		}
	}

	return &StudentQuiz{
		ID:          quiz.ID,
		Title:       quiz.Title,
		Description: quiz.Description,
		Questions:   questions,
	}, nil
}

func (s *QuizService) cacheGet(id string) *model.Quiz {
	if s.Redis == nil {
		return nil
	}
	val, err := s.Redis.Get(context.Background(), quizCacheKeyPrefix+id).Result()
	if err != nil {
		return nil
	}
	var quiz model.Quiz
	if err := json.Unmarshal([]byte(val), &quiz); err != nil {
		return nil
	}
	return &quiz
}

func (s *QuizService) cacheSet(quiz *model.Quiz) {
	if s.Redis == nil {
		return
	}
	raw, err := json.Marshal(quiz)
	if err != nil {
		return
	}
	s.Redis.Set(context.Background(), quizCacheKeyPrefix+quiz.ID, raw, quizCacheTTL)
}

func (s *QuizService) cacheInvalidate(id string) {
	if s.Redis == nil {
		return
	}
	s.Redis.Del(context.Background(), quizCacheKeyPrefix+id)
}
