package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/talentlens/talentlens/internal/domain/entities"
	"github.com/talentlens/talentlens/internal/infrastructure/http/middleware"
	"github.com/talentlens/talentlens/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg              *config.Config
	auth             *middleware.AuthMiddleware
	mockTestHandler  *MockTest
	interviewHandler *Interview
	jobHandler       *Job
	storageHandler   *Storage
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	auth *middleware.AuthMiddleware,
	mockTestHandler *MockTest,
	interviewHandler *Interview,
	jobHandler *Job,
	storageHandler *Storage,
) *Router {
	return &Router{
		cfg:              cfg,
		auth:             auth,
		mockTestHandler:  mockTestHandler,
		interviewHandler: interviewHandler,
		jobHandler:       jobHandler,
		storageHandler:   storageHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group, authenticated
	v1 := e.Group("/v1", rt.auth.Authenticate())

	rt.setupMockTestRoutes(v1)
	rt.setupInterviewRoutes(v1)
	rt.setupJobRoutes(v1)
	rt.setupUploadRoutes(v1)
}

// setupMockTestRoutes configures mock aptitude test routes
func (rt *Router) setupMockTestRoutes(g *echo.Group) {
	attempts := g.Group("/mock-tests/attempts")

	attempts.POST("", rt.mockTestHandler.Start)
	attempts.GET("", rt.mockTestHandler.List)
	attempts.GET("/:id", rt.mockTestHandler.Get)
	attempts.POST("/:id/submit", rt.mockTestHandler.Submit)
	attempts.POST("/:id/violations", rt.mockTestHandler.RecordViolations)
}

// setupInterviewRoutes configures proctored interview session routes
func (rt *Router) setupInterviewRoutes(g *echo.Group) {
	interviews := g.Group("/interviews")

	interviews.POST("", rt.interviewHandler.Create)
	interviews.GET("", rt.interviewHandler.List)
	interviews.GET("/:id", rt.interviewHandler.Get)
	interviews.POST("/:id/frames", rt.interviewHandler.Frames)
	interviews.POST("/:id/eye-contact/reset", rt.interviewHandler.ResetEyeContact)
	interviews.POST("/:id/preview-check", rt.interviewHandler.PreviewCheck)
	interviews.POST("/:id/face-check", rt.interviewHandler.FaceCheck)
	interviews.POST("/:id/tab-event", rt.interviewHandler.TabEvent)
	interviews.POST("/:id/submit", rt.interviewHandler.Submit)
	interviews.GET("/:id/score", rt.interviewHandler.GetScore)
	interviews.POST("/:id/stop", rt.interviewHandler.Stop)

	if rt.storageHandler != nil {
		interviews.POST("/:id/recording", rt.storageHandler.UploadRecording)
	}
}

// setupJobRoutes configures job posting and application routes
func (rt *Router) setupJobRoutes(g *echo.Group) {
	recruiterOnly := rt.auth.RequireRole(entities.RoleRecruiter, entities.RoleAdmin)

	jobs := g.Group("/jobs")
	jobs.GET("", rt.jobHandler.List)
	jobs.GET("/:id", rt.jobHandler.Get)
	jobs.POST("", rt.jobHandler.Create, recruiterOnly)
	jobs.POST("/:id/close", rt.jobHandler.Close, recruiterOnly)
	jobs.GET("/:id/applications", rt.jobHandler.ListApplications, recruiterOnly)
	jobs.POST("/:id/apply", rt.jobHandler.Apply)
	if rt.storageHandler != nil {
		jobs.POST("/:id/jd", rt.storageHandler.UploadJD, recruiterOnly)
	}

	apps := g.Group("/applications")
	apps.GET("", rt.jobHandler.MyApplications)
	apps.PATCH("/:id", rt.jobHandler.UpdateApplicationStatus, recruiterOnly)
}

// setupUploadRoutes configures artifact upload routes
func (rt *Router) setupUploadRoutes(g *echo.Group) {
	if rt.storageHandler == nil {
		return
	}
	uploads := g.Group("/uploads")
	uploads.POST("/resume", rt.storageHandler.UploadResume)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"time":        time.Now().Format(time.RFC3339),
		"environment": rt.cfg.Server.Environment,
	})
}
