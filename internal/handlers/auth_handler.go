package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/estetica-agenda/internal/audit"
	"github.com/BruksfildServices01/estetica-agenda/internal/auth"
	"github.com/BruksfildServices01/estetica-agenda/internal/httperr"
)

type AuthHandler struct {
	strategy auth.Strategy
	audit    *audit.Dispatcher
}

func NewAuthHandler(strategy auth.Strategy, auditDispatcher *audit.Dispatcher) *AuthHandler {
	return &AuthHandler{
		strategy: strategy,
		audit:    auditDispatcher,
	}
}

// --------- Requests ---------

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unauthorized(c, "Credenciais inválidas")
		return
	}

	token, ok := h.strategy.Login(req.Username, req.Password)
	if !ok {
		h.audit.Dispatch(audit.Event{
			Action: "login_failed",
			Entity: "auth",
			Metadata: map[string]any{
				"username": req.Username,
			},
		})
		httperr.Unauthorized(c, "Credenciais inválidas")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
