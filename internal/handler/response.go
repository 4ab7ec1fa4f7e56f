package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/rocky2015aaa/bookshop/internal/apperr"
	"github.com/rocky2015aaa/bookshop/internal/validation"
)

// Envelope is the uniform success body.
type Envelope struct {
	Data    any    `json:"data"`
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

func respond(c *gin.Context, code int, data any, message string) {
	c.JSON(code, Envelope{
		Data:    data,
		Status:  true,
		Message: message,
	})
}

// writeError logs the failure with operation context and maps it through
// the error-kind table.
func writeError(c *gin.Context, op string, err error) {
	status := apperr.Status(err)

	evt := log.Warn()
	if status >= http.StatusInternalServerError {
		evt = log.Error()
	}
	evt.
		Err(err).
		Str("op", op).
		Str("kind", apperr.KindOf(err).String()).
		Str("request_id", c.GetString(requestIDKey)).
		Msg("request failed")

	c.AbortWithStatusJSON(status, validation.ErrorResponse{Detail: err.Error()})
}
