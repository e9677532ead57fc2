package util

import "errors"

var (
	ErrQuizNotFound       = errors.New("quiz not found")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrEmptyQuestionList  = errors.New("quiz must contain at least one question")
	ErrInvalidQuestion    = errors.New("invalid question")
	ErrMissingStudentName = errors.New("student name is required")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSubmissions      = errors.New("no submissions found")
)
