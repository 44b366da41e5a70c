package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processQuestionsReq(c *gin.Context) (questionsReq, error) {
	var req questionsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processTasksReq(c *gin.Context) (tasksReq, error) {
	var req tasksReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processDecodeReq(c *gin.Context) (decodeReq, error) {
	var req decodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processSetCredentialReq(c *gin.Context) (string, credentialReq, error) {
	var req credentialReq
	name, err := normalizeCredentialName(c.Param("name"))
	if err != nil {
		return "", req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return "", req, errEmptyCredentialValue
	}
	return name, req, nil
}
