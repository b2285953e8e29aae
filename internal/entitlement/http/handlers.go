package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/entitlement/domain"
	"github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/entitlement/service"
)

// Handler serves visitor session endpoints.
type Handler struct {
	entitlements *service.EntitlementService
}

// New creates a session handler
func New(entitlements *service.EntitlementService) *Handler {
	return &Handler{entitlements: entitlements}
}

type startSessionReq struct {
	Email string `json:"email"`
}

// StartSession binds a session to an email, creating the account on
// first contact.
func (h *Handler) StartSession(c *gin.Context) {
	var req startSessionReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	sessionID, account, err := h.entitlements.StartSession(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable, please retry"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"session_id": sessionID, "account": account})
}

// GetSession returns the account behind a session with a fresh read of
// the store.
func (h *Handler) GetSession(c *gin.Context) {
	account, err := h.entitlements.CurrentAccount(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == domain.ErrSessionNotFound || err == domain.ErrAccountNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable, please retry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"account": account})
}
