package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jack-Berry/UMC-Back/internal/model"
)

// errorStatus maps a service error to its HTTP status and public message.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, model.ErrIntegrity):
		return http.StatusInternalServerError, "message integrity check failed"
	case errors.Is(err, model.ErrTransientStore):
		return http.StatusServiceUnavailable, "store temporarily unavailable"
	default:
		return http.StatusInternalServerError, "server error"
	}
}

func writeError(c *gin.Context, err error) {
	_ = c.Error(err)
	code, msg := errorStatus(err)
	c.AbortWithStatusJSON(code, gin.H{"error": msg})
}

// eventCode is the machine readable code of a websocket error event.
func eventCode(err error) string {
	switch {
	case errors.Is(err, model.ErrValidation):
		return "bad_request"
	case errors.Is(err, model.ErrForbidden):
		return "forbidden"
	case errors.Is(err, model.ErrNotFound):
		return "not_found"
	case errors.Is(err, model.ErrTransientStore):
		return "unavailable"
	default:
		return "internal"
	}
}
