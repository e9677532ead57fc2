package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BizzNEST/BizzTEST/internal/config"
	"github.com/BizzNEST/BizzTEST/internal/controller"
	"github.com/BizzNEST/BizzTEST/internal/repository"
	"github.com/gin-gonic/gin"
)

// Wires the full route table with inert controllers so auth placement
// can be checked without a database.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.JWT.Secret = "0123456789abcdef0123456789abcdef"

	c := &controllers{
		auth:       controller.NewAuthController(nil),
		quiz:       controller.NewQuizController(nil),
		submission: controller.NewSubmissionController(nil),
		export:     controller.NewExportController(nil),
		upload:     controller.NewUploadController(nil),
		health:     controller.NewHealthController(nil),
	}
	repos := &repositories{user: repository.NewUserRepository(nil)}

	router := gin.New()
	a := &App{Config: cfg}
	a.registerRoutes(router, c, repos, cfg)
	return router
}

// Respondents answer file-upload questions without logging in, so the
// upload route must not sit behind the teacher auth chain.
func TestUploadIsReachableAnonymously(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/upload", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// An empty request carries no file, so the handler itself rejects
	// it. Reaching that rejection proves auth did not intercept.
	if w.Code == http.StatusUnauthorized || w.Code == http.StatusForbidden {
		t.Fatalf("anonymous upload blocked with %d", w.Code)
	}
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestTeacherRoutesRequireToken(t *testing.T) {
	router := newTestRouter()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/me"},
		{http.MethodPost, "/api/quizzes"},
		{http.MethodGet, "/api/quizzes"},
		{http.MethodGet, "/api/submissions"},
		{http.MethodGet, "/api/export/all"},
	}

	for _, rt := range routes {
		req := httptest.NewRequest(rt.method, rt.path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s status = %d, want %d", rt.method, rt.path, w.Code, http.StatusUnauthorized)
		}
	}
}
