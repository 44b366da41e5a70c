package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"ai-tasker/internal/plan"
	"ai-tasker/pkg/credential"
	"ai-tasker/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Middleware settings
	adminKey        string
	rateLimitPerMin int

	// Plan domain
	planUC      plan.UseCase
	credentials credential.Store
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	AdminKey        string
	RateLimitPerMin int

	PlanUseCase plan.UseCase
	Credentials credential.Store
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: shutdownTimeout,
		adminKey:        cfg.AdminKey,
		rateLimitPerMin: cfg.RateLimitPerMin,
		planUC:          cfg.PlanUseCase,
		credentials:     cfg.Credentials,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.planUC == nil {
		return errors.New("plan use case is required")
	}
	if srv.credentials == nil {
		return errors.New("credential store is required")
	}
	return nil
}

// Handler exposes the engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
