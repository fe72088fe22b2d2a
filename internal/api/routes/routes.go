package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hirebridge/hirebridge/internal/api/handlers"
	"github.com/hirebridge/hirebridge/internal/api/middleware"
)

type Deps struct {
	Auth        *handlers.AuthHandler
	Job         *handlers.JobHandler
	Application *handlers.ApplicationHandler
	Profile     *handlers.ProfileHandler
	Resume      *handlers.ResumeHandler
	Dashboard   *handlers.DashboardHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Public
	r.POST("/auth/register", d.Auth.Register)
	r.POST("/auth/login", d.Auth.Login)
	r.GET("/jobs", d.Job.List)
	r.GET("/jobs/:id", d.Job.Get)

	// Protected routes (JWT)
	auth := r.Group("/")
	auth.Use(middleware.JWTAuth())

	auth.GET("/profile/me", d.Profile.Me)
	auth.PUT("/profile/update", d.Profile.Update)
	auth.GET("/applications", d.Application.List)
	auth.GET("/dashboard", d.Dashboard.Get)

	seeker := auth.Group("/")
	seeker.Use(middleware.RequireSeeker())
	seeker.POST("/jobs/:id/apply", d.Application.Apply)
	seeker.POST("/profile/resume", d.Resume.Upload)

	provider := auth.Group("/")
	provider.Use(middleware.RequireProvider())
	provider.POST("/jobs", d.Job.Create)
	provider.PATCH("/jobs/:id/status", d.Job.UpdateStatus)
	provider.PATCH("/applications/:id/status", d.Application.UpdateStatus)
}
