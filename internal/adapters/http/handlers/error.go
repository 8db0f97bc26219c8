package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/apiweb/internal/core/logger"
	"github.com/rafaelleal24/apiweb/internal/core/serviceerrors"
)

const internalErrorMessage = "internal server error"

type ErrorResponse struct {
	Error string `json:"error"`
}

var statusByKind = map[serviceerrors.ErrorKind]int{
	serviceerrors.KindNotFound:       http.StatusNotFound,
	serviceerrors.KindConflict:       http.StatusConflict,
	serviceerrors.KindInvalidRequest: http.StatusBadRequest,
}

// HandleError writes a ServiceError with its mapped status. Anything else is logged
// and answered with a generic 500 so adapter details stay out of responses.
func HandleError(c *gin.Context, err error) {
	var svcErr *serviceerrors.ServiceError
	if errors.As(err, &svcErr) {
		status, ok := statusByKind[svcErr.Kind]
		if !ok {
			status = http.StatusInternalServerError
		}
		c.JSON(status, ErrorResponse{Error: svcErr.Message})
		return
	}

	logger.Error(c.Request.Context(), "unhandled error", err, map[string]any{
		"http.method": c.Request.Method,
		"http.path":   c.Request.URL.Path,
	})
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: internalErrorMessage})
}
