package controller

import (
	"errors"

	"github.com/BizzNEST/BizzTEST/internal/service"
	"github.com/BizzNEST/BizzTEST/internal/util"
	"github.com/gin-gonic/gin"
)

type SubmissionController struct {
	SubmissionService *service.SubmissionService
}

func NewSubmissionController(submissionService *service.SubmissionService) *SubmissionController {
	return &SubmissionController{SubmissionService: submissionService}
}

// swagger:model SubmitRequest
type SubmitRequest struct {
	StudentName  string            `json:"studentName" binding:"required"`
	StudentEmail string            `json:"studentEmail"`
	Answers      map[string]string `json:"answers"`
}

// Submit godoc
// @Summary Submit quiz answers
// @Description Scores the answers and stores an immutable submission
// @Tags submissions
// @Accept  json
// @Produce  json
// @Param   id path string true "Quiz ID"
// @Param   body body SubmitRequest true "Answer payload"
// @Success 201 {object} util.Response{data=object} "Scored result"
// @Failure 400 {object} util.Response "Missing student name"
// @Failure 404 {object} util.Response "Quiz not found"
// @Router /api/quizzes/{id}/submissions [post]
func (c *SubmissionController) Submit(ctx *gin.Context) {
	var req SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	sub, err := c.SubmissionService.Submit(ctx.Param("id"), req.StudentName, req.StudentEmail, req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrMissingStudentName):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrQuizNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{
		"id":     sub.ID,
		"score":  sub.Score,
		"total":  sub.TotalPoints,
		"quizId": sub.QuizID,
	})
}

// ListSubmissions godoc
// @Summary List submissions
// @Description All submissions, optionally restricted to one quiz
// @Tags submissions
// @Produce  json
// @Security BearerAuth
// @Param   quizId query string false "Quiz ID filter"
// @Success 200 {object} util.Response{data=[]service.EnrichedSubmission}
// @Router /api/submissions [get]
func (c *SubmissionController) ListSubmissions(ctx *gin.Context) {
	subs, err := c.SubmissionService.ListSubmissions(ctx.Query("quizId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, subs)
}

// GetSubmission godoc
// @Summary Submission detail
// @Description One submission with per-question verdicts
// @Tags submissions
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "Submission ID"
// @Success 200 {object} util.Response{data=service.SubmissionDetail}
// @Failure 404 {object} util.Response "Submission not found"
// @Router /api/submissions/{id} [get]
func (c *SubmissionController) GetSubmission(ctx *gin.Context) {
	detail, err := c.SubmissionService.SubmissionDetail(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrSubmissionNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, detail)
}

// Stats godoc
// @Summary Per-quiz submission statistics
// @Tags submissions
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]service.QuizStats}
// @Router /api/submissions/stats [get]
func (c *SubmissionController) Stats(ctx *gin.Context) {
	stats, err := c.SubmissionService.Stats()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}
