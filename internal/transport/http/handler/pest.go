package handler

import (
	"github.com/gin-gonic/gin"

	"agroassist/internal/app"
	"agroassist/internal/model"
	"agroassist/internal/transport/http/response"
)

type PestHandler struct {
	service *app.PestService
}

func NewPestHandler(service *app.PestService) *PestHandler {
	return &PestHandler{service: service}
}

func (h *PestHandler) Risk(c *gin.Context) {
	var req model.PestRiskRequest
	if err := bindJSON(c, &req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.service.Assess(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, result)
}
