package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const msgInternal = "Error interno del servidor"

type HTTPError struct {
	Message string `json:"error"`
}

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, HTTPError{Message: message})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message)
}

func Internal(c *gin.Context) {
	Write(c, http.StatusInternalServerError, msgInternal)
}

// StatusOf maps a business error kind to its HTTP status code.
func StatusOf(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err as {"error": message}. Errors that are not business
// errors are logged and answered with a generic 500.
func Respond(c *gin.Context, log zerolog.Logger, err error) {
	if kind := KindOf(err); kind != KindUnknown {
		log.Debug().
			Str("kind", kind.String()).
			Str("path", c.FullPath()).
			Msg(messageOf(err))
		Write(c, StatusOf(kind), messageOf(err))
		return
	}

	log.Error().
		Err(err).
		Str("method", c.Request.Method).
		Str("path", c.FullPath()).
		Msg("unhandled error")

	Internal(c)
}
