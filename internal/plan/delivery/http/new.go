package http

import (
	"github.com/gin-gonic/gin"

	"ai-tasker/internal/plan"
	"ai-tasker/pkg/credential"
	"ai-tasker/pkg/log"
)

// Handler is the public interface for the plan HTTP delivery layer.
type Handler interface {
	GenerateQuestions(c *gin.Context)
	GenerateTasks(c *gin.Context)
	Decode(c *gin.Context)
	GetPlan(c *gin.Context)
	ListPlans(c *gin.Context)

	GetCredential(c *gin.Context)
	SetCredential(c *gin.Context)
	DeleteCredential(c *gin.Context)
}

type handler struct {
	l     log.Logger
	uc    plan.UseCase
	creds credential.Store
}

// New creates a new HTTP handler for the plan domain.
func New(l log.Logger, uc plan.UseCase, creds credential.Store) *handler {
	return &handler{
		l:     l,
		uc:    uc,
		creds: creds,
	}
}
