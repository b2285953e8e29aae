package http

import "github.com/gin-gonic/gin"

// Register registers the visitor-facing payment routes
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/payments/intent", h.PaymentIntent)
	rg.POST("/payments", h.SubmitPayment)
}

// RegisterAdmin registers the dashboard routes; the caller gates the
// group behind the admin key middleware.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.GET("/payments", h.ListPayments)
	rg.GET("/payments/stats", h.PaymentStats)
	rg.GET("/payments/events", h.ListAuditEvents)
	rg.POST("/payments/:email/verify", h.VerifyPayment)
}
