package routes

import (
	"net/http"
	"os"

	"privacyguard/controllers/auth"
	"privacyguard/controllers/leads"
	"privacyguard/controllers/metrics"
	"privacyguard/controllers/voice"
	"privacyguard/controllers/websocket"
	"privacyguard/controllers/workflows"
	middleware "privacyguard/middlewares"

	"github.com/gin-gonic/gin"
)

// Router - returns gin router engine
func Router() *gin.Engine {

	var ENV = os.Getenv("APP_ENV")

	// If we're in production mode, set Gin to "release" mode
	if ENV == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// 1. Authentication and Authorization
	v1 := router.Group("/api/v1/")
	v1.Use(middleware.CORS())

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
		c.Abort()
	})

	v1.OPTIONS("/login", auth.LoginUser)
	v1.POST("/login", auth.LoginUser)

	// provider callbacks cannot carry our tokens
	v1.POST("/voice/webhook/:provider", voice.Webhook)

	// 2. Auth required
	v2 := router.Group("/api/v1/")
	v2.Use(middleware.CORS())
	v2.Use(middleware.Auth())

	v2.OPTIONS("/logout", auth.Logout)
	v2.POST("/logout", auth.Logout)

	/*
		WORKFLOW OPERATION
	*/

	v2.OPTIONS("/workflow/run", workflows.RunWorkflow)
	v2.POST("/workflow/run", workflows.RunWorkflow)

	v2.OPTIONS("/workflow/test", workflows.TestWorkflow)
	v2.POST("/workflow/test", workflows.TestWorkflow)

	/*
		LEAD OPERATION
	*/

	v2.OPTIONS("/leads", leads.GetLeads)
	v2.GET("/leads", leads.GetLeads)

	v2.OPTIONS("/kanban", leads.GetKanban)
	v2.GET("/kanban", leads.GetKanban)

	v2.OPTIONS("/leads/:id/stage", leads.UpdateStage)
	v2.PUT("/leads/:id/stage", leads.UpdateStage)

	v2.OPTIONS("/leads/:id/actions", leads.ManagerAction)
	v2.POST("/leads/:id/actions", leads.ManagerAction)

	v2.OPTIONS("/interactions/:lead_id", leads.GetInteractions)
	v2.GET("/interactions/:lead_id", leads.GetInteractions)

	v2.OPTIONS("/callbacks", leads.GetCallbacks)
	v2.GET("/callbacks", leads.GetCallbacks)

	/*
		DASHBOARD OPERATION
	*/

	v2.OPTIONS("/metrics", metrics.GetMetrics)
	v2.GET("/metrics", metrics.GetMetrics)

	/*
		VOICE OPERATION
	*/

	v2.OPTIONS("/voice/call", voice.InitiateCall)
	v2.POST("/voice/call", voice.InitiateCall)

	v1.GET("/ws", websocket.WebSocket)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Sorry! That one is not handled Here"})
	})

	return router
}
