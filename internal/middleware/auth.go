package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/estetica-agenda/internal/auth"
)

// AuthMiddleware protege as rotas administrativas. O frontend legado manda
// o token cru no header Authorization, sem prefixo "Bearer" — aceitamos os
// dois formatos.
func AuthMiddleware(strategy auth.Strategy) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")

		if after, ok := strings.CutPrefix(token, "Bearer "); ok {
			token = after
		}

		if token == "" || !strategy.Verify(token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Next()
	}
}
