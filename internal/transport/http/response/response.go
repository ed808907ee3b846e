package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"agroassist/internal/app"
)

const (
	MsgInvalidJSON     = "Invalid JSON body"
	MsgBodyTooLarge    = "Request body too large"
	MsgInternalFailure = "Internal server error"
)

type ErrorBody struct {
	Error string `json:"error"`
}

func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, ErrorBody{Error: message})
}

// Fail writes the fixed client message for a service error. Causes are
// never sent to the client.
func Fail(c *gin.Context, err error) {
	var ae *app.Error
	if !errors.As(err, &ae) {
		Error(c, http.StatusInternalServerError, MsgInternalFailure)
		return
	}
	Error(c, StatusFor(ae.Kind), ae.Message)
}

func StatusFor(kind app.ErrorKind) int {
	switch kind {
	case app.KindInvalidInput:
		return http.StatusBadRequest
	case app.KindPredictionFailed, app.KindUpstreamInvalid, app.KindUpstreamUnavailable:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// BindError maps a JSON decode failure to 413 or 400.
func BindError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		Error(c, http.StatusRequestEntityTooLarge, MsgBodyTooLarge)
		return
	}
	Error(c, http.StatusBadRequest, MsgInvalidJSON)
}
