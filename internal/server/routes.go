// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/syedhameedmohamed/simple-job-tracker/internal/controller"
	"github.com/syedhameedmohamed/simple-job-tracker/internal/middleware"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	// Init swagger doc
	_ "github.com/syedhameedmohamed/simple-job-tracker/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *MyServer) RegisterRoutes() http.Handler {
	r := gin.Default()

	allowOrginsStr := os.Getenv("ALLOW_ORIGIN")
	allowOrgins := strings.Split(allowOrginsStr, ",")

	tracker := controller.NewTrackerController(s.DB)

	// Load the persisted unlock set up front so the reconciliation gate opens
	// at startup; a failure here self-heals on the next trophy check.
	tracker.WarmUp()

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowOrgins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.GET("/", s.HelloWorldHandler)
	r.GET("/health", s.healthHandler)
	v1 := r.Group("/api/v1")
	{
		v1.Use(middleware.EnvRateLimitMiddleware())

		jobRoute := v1.Group("/jobs")
		{
			jobRoute.GET("", tracker.GetJobs)
			jobRoute.POST("", tracker.CreateJob)
			jobRoute.PUT(":id", tracker.UpdateJob)
			jobRoute.DELETE(":id", tracker.DeleteJob)
		}

		resumeRoute := v1.Group("/resume")
		{
			resumeRoute.GET("", tracker.GetResume)
			resumeRoute.POST("", middleware.SizeLimit(1<<20), tracker.CreateResume)
			resumeRoute.PUT("", middleware.SizeLimit(1<<20), tracker.UpdateResume)
			resumeRoute.POST("export", middleware.SizeLimit(1<<20), tracker.ExportResumeHTML)
			resumeRoute.POST("export/latex", middleware.SizeLimit(1<<20), tracker.ExportResumeLaTeX)
		}

		trophyRoute := v1.Group("/trophies")
		{
			trophyRoute.GET("", tracker.GetUnlockedTrophies)
			trophyRoute.POST("", tracker.UnlockTrophy)
			trophyRoute.DELETE("", tracker.ResetTrophies)
			trophyRoute.GET("status", tracker.TrophyStatus)
			trophyRoute.GET("notifications", tracker.GetNotifications)
			trophyRoute.DELETE("notifications/:id", tracker.DismissNotification)
			trophyRoute.DELETE(":id", tracker.RevokeTrophy)
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// HelloWorldHandler handle request by return message "Hello World"
func (s *MyServer) HelloWorldHandler(c *gin.Context) {
	resp := make(map[string]string)
	resp["message"] = "Hello World"

	c.JSON(http.StatusOK, resp)
}

func (s *MyServer) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.DB.Health())
}
