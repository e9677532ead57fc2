package service

import (
	"errors"
	"testing"

	"github.com/BizzNEST/BizzTEST/internal/model"
	"github.com/BizzNEST/BizzTEST/internal/util"
)

func TestBuildQuestionsValidation(t *testing.T) {
	tests := []struct {
		name    string
		reqs    []QuestionRequest
		wantErr error
	}{
		{
			name:    "empty list",
			reqs:    nil,
			wantErr: util.ErrEmptyQuestionList,
		},
		{
			name: "unknown type",
			reqs: []QuestionRequest{
				{Type: "essay", Prompt: "Discuss."},
			},
			wantErr: util.ErrInvalidQuestion,
		},
		{
			name: "gradable single choice needs options",
			reqs: []QuestionRequest{
				{Type: "single-choice", Prompt: "Pick one", CorrectAnswer: "0", Options: []string{"only"}},
			},
			wantErr: util.ErrInvalidQuestion,
		},
		{
			name: "valid mixed quiz",
			reqs: []QuestionRequest{
				{Type: "single-choice", Prompt: "Pick one", CorrectAnswer: "1", Options: []string{"a", "b"}},
				{Type: "short-answer", Prompt: "Say it", CorrectAnswer: "word", Points: 2},
				{Type: "file-upload", Prompt: "Upload it", Points: 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions, err := buildQuestions(tt.reqs)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if len(questions) != len(tt.reqs) {
				t.Fatalf("questions = %d, want %d", len(questions), len(tt.reqs))
			}
		})
	}
}

func TestBuildQuestionsDefaultsAndOrder(t *testing.T) {
	questions, err := buildQuestions([]QuestionRequest{
		{Type: "true-false", Prompt: "Water is wet", CorrectAnswer: "true"},
		{Type: "code", Prompt: "Write fizzbuzz", Language: "go"},
	})
	if err != nil {
		t.Fatal(err)
	}

	if questions[0].Points != 1 {
		t.Errorf("default points = %v, want 1", questions[0].Points)
	}
	if !questions[0].HasCorrectAnswer {
		t.Error("true-false with answer key should be gradable")
	}
	if questions[0].Order != 0 || questions[1].Order != 1 {
		t.Errorf("orders = %d,%d, want 0,1", questions[0].Order, questions[1].Order)
	}

	// Code questions are always reviewed by hand.
	if questions[1].HasCorrectAnswer {
		t.Error("code question must not be auto-gradable")
	}
	if questions[1].Type != model.Code || questions[1].Language != "go" {
		t.Errorf("code question = %+v", questions[1])
	}
}
