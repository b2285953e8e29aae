package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogdomain "github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/catalog/domain"
	"github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/entitlement/domain"
	"github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/guides/service"
)

// SessionHeader carries the visitor's session id on generation
// requests.
const SessionHeader = "X-Session-Id"

// Handler serves guide and MVP-plan generation.
type Handler struct {
	guides *service.GuideService
}

// New creates a guides handler
func New(guides *service.GuideService) *Handler {
	return &Handler{guides: guides}
}

type generateReq struct {
	IdeaID string `json:"idea_id"`
}

// GenerateGuide returns a development guide for an idea, charging the
// free-tier counter for unpaid accounts.
func (h *Handler) GenerateGuide(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil || req.IdeaID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "idea_id is required"})
		return
	}

	guide, account, err := h.guides.GenerateGuide(c.Request.Context(), c.GetHeader(SessionHeader), req.IdeaID)
	if err != nil {
		respondGenerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"guide": guide, "account": account})
}

// GenerateMvpPlan returns an MVP plan for an idea. Paid accounts only.
func (h *Handler) GenerateMvpPlan(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil || req.IdeaID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "idea_id is required"})
		return
	}

	plan, account, err := h.guides.GenerateMvpPlan(c.Request.Context(), c.GetHeader(SessionHeader), req.IdeaID)
	if err != nil {
		respondGenerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"mvp_plan": plan, "account": account})
}

// respondGenerationError maps entitlement denials to statuses the
// front end routes on: 401 collects an email, 402 routes to the
// upgrade flow.
func respondGenerationError(c *gin.Context, err error) {
	switch err {
	case domain.ErrNeedsIdentity:
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error(), "reason": "needs_identity"})
	case domain.ErrUpgradeRequired:
		c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error(), "reason": "upgrade_required"})
	case domain.ErrProOnly:
		c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error(), "reason": "pro_only"})
	case catalogdomain.ErrIdeaNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable, please retry"})
	}
}
