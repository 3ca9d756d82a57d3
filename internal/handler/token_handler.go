package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"idvex/internal/domain"
	"idvex/internal/endpoint"
)

// TokenHandler handles token inspection endpoints.
type TokenHandler struct{}

// NewTokenHandler creates a new TokenHandler.
func NewTokenHandler() *TokenHandler {
	return &TokenHandler{}
}

type tokenInspectRequest struct {
	Token string `json:"token"`
}

// Inspect handles POST /api/v1/token/inspect. The token comes from the JSON
// body, or from the Authorization header when the body carries none.
func (h *TokenHandler) Inspect(c *gin.Context) {
	var req tokenInspectRequest
	_ = c.ShouldBindJSON(&req)

	token := strings.TrimSpace(req.Token)
	if token == "" {
		auth := c.GetHeader("Authorization")
		token = strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	if token == "" {
		HandleError(c, domain.ErrTokenRequired)
		return
	}

	info, err := endpoint.Inspect(token)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, info)
}
