package http

import "github.com/gin-gonic/gin"

// Register registers the session routes
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/sessions", h.StartSession)
	rg.GET("/sessions/:id", h.GetSession)
}
