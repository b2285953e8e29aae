package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/entitlement/domain"
	"github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/payments"
	"github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/payments/repository"
	"github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/payments/service"
)

// Handler serves payment submission for visitors and the verification
// dashboard for admins.
type Handler struct {
	payments *service.PaymentService
	audit    *repository.AuditRepository
	intent   payments.UPIIntent
}

// New creates a payments handler. audit may be nil when auditing is
// disabled.
func New(paymentService *service.PaymentService, audit *repository.AuditRepository, intent payments.UPIIntent) *Handler {
	return &Handler{
		payments: paymentService,
		audit:    audit,
		intent:   intent,
	}
}

// PaymentIntent returns the UPI deep links the front end opens.
func (h *Handler) PaymentIntent(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"intent": h.intent})
}

type submitReq struct {
	Email         string `json:"email"`
	TransactionID string `json:"transaction_id"`
}

// SubmitPayment records a visitor's payment claim as pending.
func (h *Handler) SubmitPayment(c *gin.Context) {
	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil ||
		strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.TransactionID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and transaction_id are required"})
		return
	}

	account, err := h.payments.Submit(c.Request.Context(), req.Email, req.TransactionID)
	if err != nil {
		if err == domain.ErrClaimVerified {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable, please retry"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"account": account,
		"message": "payment submission received, verification within 24 hours",
	})
}

// ListPayments returns every submitted claim for the admin table.
func (h *Handler) ListPayments(c *gin.Context) {
	claims, err := h.payments.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable, please retry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": claims})
}

// PaymentStats returns the dashboard counters.
func (h *Handler) PaymentStats(c *gin.Context) {
	stats, err := h.payments.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable, please retry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// VerifyPayment marks a claim verified. The result reports whether a
// live session was bound to the email at verify time.
func (h *Handler) VerifyPayment(c *gin.Context) {
	email := c.Param("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	result, err := h.payments.Verify(c.Request.Context(), email)
	if err != nil {
		if err == domain.ErrClaimNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable, please retry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// ListAuditEvents returns the recent audit trail, empty when auditing
// is disabled.
func (h *Handler) ListAuditEvents(c *gin.Context) {
	if h.audit == nil {
		c.JSON(http.StatusOK, gin.H{"events": []repository.PaymentEvent{}, "auditing": "disabled"})
		return
	}

	events, err := h.audit.ListRecent(c.Request.Context(), 50)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable, please retry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}
