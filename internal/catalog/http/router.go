package http

import "github.com/gin-gonic/gin"

// Register registers the catalog routes
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/ideas", h.ListIdeas)
	rg.GET("/ideas/random", h.RandomIdea)
	rg.GET("/ideas/search", h.SearchIdeas)
	rg.GET("/ideas/stats", h.Statistics)
	rg.GET("/ideas/:id", h.GetIdea)
}
