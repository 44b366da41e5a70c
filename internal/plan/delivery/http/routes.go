package http

import (
	"github.com/gin-gonic/gin"

	"ai-tasker/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods under rg.
// Planning routes are rate limited; credential routes need the admin key.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	plans := rg.Group("/plans", mw.Scope())
	{
		plans.POST("/questions", mw.RateLimit(), h.GenerateQuestions)
		plans.POST("/tasks", mw.RateLimit(), h.GenerateTasks)
		plans.POST("/decode", h.Decode)
		plans.GET("", h.ListPlans)
		plans.GET("/:id", h.GetPlan)
	}

	creds := rg.Group("/credentials", mw.AdminKey())
	{
		creds.GET("/:name", h.GetCredential)
		creds.PUT("/:name", h.SetCredential)
		creds.DELETE("/:name", h.DeleteCredential)
	}
}
