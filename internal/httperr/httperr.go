package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPError segue o corpo de erro do frontend legado: {"error": "..."} e,
// opcionalmente, um campo details com o erro do upstream.
type HTTPError struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, HTTPError{Error: message})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message)
}

func Unauthorized(c *gin.Context, message string) {
	Write(c, http.StatusUnauthorized, message)
}

func Internal(c *gin.Context, message string, details any) {
	c.JSON(http.StatusInternalServerError, HTTPError{
		Error:   message,
		Details: details,
	})
}
