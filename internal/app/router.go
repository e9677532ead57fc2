package app

import (
	"github.com/BizzNEST/BizzTEST/docs"
	"github.com/BizzNEST/BizzTEST/internal/config"
	"github.com/BizzNEST/BizzTEST/internal/middleware"
	"github.com/BizzNEST/BizzTEST/internal/model"
	"github.com/BizzNEST/BizzTEST/pkg/monitoring"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	a.registerPublicRoutes(router, c, cfg)
	a.registerTeacherRoutes(router, c, repos, cfg)
}

// Public routes: students take quizzes anonymously, so fetching the
// sanitized quiz, submitting answers, and uploading files for
// file-upload questions require no token. Upload still records the
// caller's identity when a token happens to be present.
func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	public := router.Group("/api")
	{
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		public.GET("/quizzes/:id", c.quiz.GetQuizForStudent)
		public.POST("/quizzes/:id/submissions", c.submission.Submit)

		public.POST("/upload", middleware.TryAuthMiddleware(cfg), c.upload.Upload)
	}
}

func (a *App) registerTeacherRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	teacher := router.Group("/api")
	teacher.Use(
		middleware.AuthMiddleware(cfg),
		middleware.ActivityMiddleware(repos.user),
		middleware.RoleMiddleware(model.Teacher),
	)
	{
		teacher.GET("/me", c.auth.Me)

		teacher.POST("/quizzes", c.quiz.CreateQuiz)
		teacher.GET("/quizzes", c.quiz.ListQuizzes)
		teacher.GET("/quizzes/:id/full", c.quiz.GetQuiz)
		teacher.PUT("/quizzes/:id", c.quiz.UpdateQuiz)
		teacher.DELETE("/quizzes/:id", c.quiz.DeleteQuiz)

		teacher.GET("/submissions", c.submission.ListSubmissions)
		teacher.GET("/submissions/stats", c.submission.Stats)
		teacher.GET("/submissions/:id", c.submission.GetSubmission)

		teacher.GET("/export/submissions/:id", c.export.ExportSubmission)
		teacher.GET("/export/quizzes/:id", c.export.ExportQuiz)
		teacher.GET("/export/all", c.export.ExportAll)
	}
}
