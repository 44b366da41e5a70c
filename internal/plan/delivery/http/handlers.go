package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-tasker/internal/middleware"
	"ai-tasker/pkg/credential"
	"ai-tasker/pkg/response"
)

// GenerateQuestions godoc
// @Summary     Generate clarifying questions
// @Description Asks the configured AI provider for clarifying questions about a goal.
// @Tags        Plans
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string       false "Caller identity"
// @Param       body      body   questionsReq true  "Goal"
// @Success     200 {object} questionsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     412 {object} response.Resp "No provider credential"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Provider failure"
// @Router      /api/v1/plans/questions [POST]
func (h *handler) GenerateQuestions(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQuestionsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.GenerateQuestions(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GenerateQuestions: %v", err)
		h.mapError(c, err, false)
		return
	}

	response.OK(c, h.newQuestionsResp(output))
}

// GenerateTasks godoc
// @Summary     Generate a task plan
// @Description Asks the configured AI provider for a task plan. With answers the detailed planner
// @Description returns 15-30 tasks with input fields; without, the quick planner returns 3-7 tasks.
// @Tags        Plans
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string   false "Caller identity"
// @Param       body      body   tasksReq true  "Goal and planning hints"
// @Success     200 {object} tasksResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     412 {object} response.Resp "No provider credential"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Provider failure"
// @Router      /api/v1/plans/tasks [POST]
func (h *handler) GenerateTasks(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTasksReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.GenerateTasks(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GenerateTasks: %v", err)
		h.mapError(c, err, false)
		return
	}

	response.OK(c, h.newTasksResp(output))
}

// Decode godoc
// @Summary     Decode model output
// @Description Runs raw model output, or a full chat-completion body when envelope is true,
// @Description through the decode pipeline without calling a provider.
// @Tags        Plans
// @Accept      json
// @Produce     json
// @Param       body body decodeReq true "Content to decode"
// @Success     200 {object} decodeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Content could not be decoded"
// @Router      /api/v1/plans/decode [POST]
func (h *handler) Decode(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDecodeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Decode(ctx, middleware.GetScope(c), input)
	if err != nil {
		h.mapError(c, err, true)
		return
	}

	response.OK(c, h.newDecodeResp(output))
}

// GetPlan godoc
// @Summary     Get a stored plan
// @Tags        Plans
// @Produce     json
// @Param       X-User-ID header string false "Caller identity"
// @Param       id        path   string true  "Plan ID"
// @Success     200 {object} planResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/plans/{id} [GET]
func (h *handler) GetPlan(c *gin.Context) {
	ctx := c.Request.Context()

	p, err := h.uc.GetPlan(ctx, middleware.GetScope(c), c.Param("id"))
	if err != nil {
		h.mapError(c, err, false)
		return
	}

	response.OK(c, h.newPlanResp(p))
}

// ListPlans godoc
// @Summary     List stored plans
// @Description Returns the caller's plans, newest first.
// @Tags        Plans
// @Produce     json
// @Param       X-User-ID header string false "Caller identity"
// @Param       kind      query  string false "questions or tasks"
// @Param       limit     query  int    false "Page size (default: 20)"
// @Param       offset    query  int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/plans [GET]
func (h *handler) ListPlans(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	plans, err := h.uc.ListPlans(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListPlans: %v", err)
		h.mapError(c, err, false)
		return
	}

	response.OK(c, h.newListResp(plans))
}

// GetCredential godoc
// @Summary     Check a provider credential
// @Description Reports whether a credential is stored. The value is never returned.
// @Tags        Credentials
// @Produce     json
// @Param       X-Admin-Key header string true "Admin key"
// @Param       name        path   string true "Credential name, e.g. openai_api_key"
// @Success     200 {object} credentialResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/credentials/{name} [GET]
func (h *handler) GetCredential(c *gin.Context) {
	ctx := c.Request.Context()

	name, err := normalizeCredentialName(c.Param("name"))
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	_, err = h.creds.Get(ctx, name)
	switch {
	case err == nil:
		response.OK(c, credentialResp{Name: name, Configured: true})
	case errors.Is(err, credential.ErrNotFound):
		response.OK(c, credentialResp{Name: name, Configured: false})
	default:
		h.l.Errorf(ctx, "creds.Get %s: %v", name, err)
		response.InternalError(c, err)
	}
}

// SetCredential godoc
// @Summary     Store a provider credential
// @Tags        Credentials
// @Accept      json
// @Produce     json
// @Param       X-Admin-Key header string        true "Admin key"
// @Param       name        path   string        true "Credential name, e.g. openai_api_key"
// @Param       body        body   credentialReq true "Secret value"
// @Success     200 {object} credentialResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/credentials/{name} [PUT]
func (h *handler) SetCredential(c *gin.Context) {
	ctx := c.Request.Context()

	name, req, err := h.processSetCredentialReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.creds.Set(ctx, name, req.Value); err != nil {
		h.l.Errorf(ctx, "creds.Set %s: %v", name, err)
		response.InternalError(c, err)
		return
	}

	h.l.Infof(ctx, "credential %s updated", name)
	response.OK(c, credentialResp{Name: name, Configured: true})
}

// DeleteCredential godoc
// @Summary     Remove a provider credential
// @Description Removes a key stored through this API. A key supplied by the environment or config file cannot be removed here and yields 409.
// @Tags        Credentials
// @Produce     json
// @Param       X-Admin-Key header string true "Admin key"
// @Param       name        path   string true "Credential name"
// @Success     200 {object} credentialResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Provided by environment"
// @Router      /api/v1/credentials/{name} [DELETE]
func (h *handler) DeleteCredential(c *gin.Context) {
	ctx := c.Request.Context()

	name, err := normalizeCredentialName(c.Param("name"))
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	err = h.creds.Delete(ctx, name)
	switch {
	case err == nil:
		h.l.Infof(ctx, "credential %s removed", name)
		response.OK(c, credentialResp{Name: name, Configured: false})
	case errors.Is(err, credential.ErrNotFound):
		response.ErrorWithStatus(c, http.StatusNotFound, "not_found", "credential not found")
	case errors.Is(err, credential.ErrStillProvided):
		h.l.Warnf(ctx, "credential %s is set in the environment; only the stored copy was removed", name)
		response.ErrorWithStatus(c, http.StatusConflict, "read_only", "credential is provided by the environment and cannot be removed")
	default:
		h.l.Errorf(ctx, "creds.Delete %s: %v", name, err)
		response.InternalError(c, err)
	}
}
