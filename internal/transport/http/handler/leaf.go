package handler

import (
	"github.com/gin-gonic/gin"

	"agroassist/internal/app"
	"agroassist/internal/model"
	"agroassist/internal/transport/http/response"
)

// LeafHandler handles leaf disease classification requests.
type LeafHandler struct {
	service *app.LeafService
}

func NewLeafHandler(service *app.LeafService) *LeafHandler {
	return &LeafHandler{service: service}
}

// Predict accepts {"leafImage": "data:image/...;base64,..."} and returns the
// predicted leaf status with its confidence.
func (h *LeafHandler) Predict(c *gin.Context) {
	var req model.LeafRequest
	if err := bindJSON(c, &req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.service.Predict(req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, result)
}
