package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/BizzNEST/BizzTEST/internal/service"
	"github.com/BizzNEST/BizzTEST/internal/util"
	"github.com/gin-gonic/gin"
)

type ExportController struct {
	ExportService *service.ExportService
}

func NewExportController(exportService *service.ExportService) *ExportController {
	return &ExportController{ExportService: exportService}
}

func sendCSV(ctx *gin.Context, filename string, data []byte) {
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Header("Cache-Control", "no-cache")
	ctx.Data(http.StatusOK, "text/csv", data)
}

// ExportSubmission godoc
// @Summary Export one submission as CSV
// @Description One row per question with verdicts and points
// @Tags exports
// @Produce  text/csv
// @Security BearerAuth
// @Param   id path string true "Submission ID"
// @Success 200 {string} string "CSV file"
// @Failure 404 {object} util.Response "Submission not found"
// @Router /api/export/submissions/{id} [get]
func (c *ExportController) ExportSubmission(ctx *gin.Context) {
	filename, data, err := c.ExportService.ExportSubmission(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrSubmissionNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	sendCSV(ctx, filename, data)
}

// ExportQuiz godoc
// @Summary Export a quiz's results as CSV
// @Description One row per submission for the given quiz
// @Tags exports
// @Produce  text/csv
// @Security BearerAuth
// @Param   id path string true "Quiz ID"
// @Success 200 {string} string "CSV file"
// @Failure 404 {object} util.Response "Quiz not found"
// @Router /api/export/quizzes/{id} [get]
func (c *ExportController) ExportQuiz(ctx *gin.Context) {
	filename, data, err := c.ExportService.ExportQuiz(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) || errors.Is(err, util.ErrNoSubmissions) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	sendCSV(ctx, filename, data)
}

// ExportAll godoc
// @Summary Export all results as CSV
// @Description All submissions, or per-quiz summary statistics with type=summary
// @Tags exports
// @Produce  text/csv
// @Security BearerAuth
// @Param   type query string false "Export type" Enums(all, summary)
// @Success 200 {string} string "CSV file"
// @Failure 404 {object} util.Response "No submissions to export"
// @Router /api/export/all [get]
func (c *ExportController) ExportAll(ctx *gin.Context) {
	summary := ctx.Query("type") == "summary"
	filename, data, err := c.ExportService.ExportAll(summary)
	if err != nil {
		if errors.Is(err, util.ErrNoSubmissions) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	sendCSV(ctx, filename, data)
}
