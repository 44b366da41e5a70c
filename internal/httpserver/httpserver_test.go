package httpserver_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-tasker/internal/httpserver"
	"ai-tasker/internal/model"
	"ai-tasker/internal/plan"
	"ai-tasker/pkg/credential"
	"ai-tasker/pkg/log"
)

type stubUseCase struct{ plan.UseCase }

func (stubUseCase) ListPlans(ctx context.Context, sc model.Scope, input plan.ListInput) ([]model.Plan, error) {
	return nil, nil
}

func TestNewValidation(t *testing.T) {
	_, err := httpserver.New(log.NewNop(), httpserver.Config{Mode: "test", Port: 8080})
	assert.Error(t, err)

	_, err = httpserver.New(log.NewNop(), httpserver.Config{
		Mode:        "test",
		PlanUseCase: stubUseCase{},
		Credentials: credential.NewMemoryStore(),
	})
	assert.Error(t, err, "port is required")
}

func TestRoutes(t *testing.T) {
	srv, err := httpserver.New(log.NewNop(), httpserver.Config{
		Mode:        "test",
		Port:        8080,
		Environment: string(model.EnvironmentProduction),
		PlanUseCase: stubUseCase{},
		Credentials: credential.NewMemoryStore(),
	})
	require.NoError(t, err)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.True(t, strings.Contains(w.Body.String(), httpserver.ServiceName), path)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"), path)
	}

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/plans", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// No admin key configured.
	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/credentials/openai_api_key", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}
