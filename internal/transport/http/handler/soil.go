package handler

import (
	"github.com/gin-gonic/gin"

	"agroassist/internal/app"
	"agroassist/internal/model"
	"agroassist/internal/transport/http/response"
)

type SoilHandler struct{}

func NewSoilHandler() *SoilHandler {
	return &SoilHandler{}
}

func (h *SoilHandler) Analyze(c *gin.Context) {
	var req model.SoilRequest
	if err := bindJSON(c, &req); err != nil {
		response.BindError(c, err)
		return
	}
	response.OK(c, app.EvaluateSoil(req))
}
