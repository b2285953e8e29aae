package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/catalog/domain"
	"github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/catalog/service"
)

// Handler serves read-only catalog lookups.
type Handler struct {
	catalog *service.CatalogService
}

// New creates a catalog handler
func New(catalog *service.CatalogService) *Handler {
	return &Handler{catalog: catalog}
}

// ListIdeas returns a department's ideas, optionally filtered by exact
// category.
func (h *Handler) ListIdeas(c *gin.Context) {
	department := c.Query("department")
	if department == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "department is required"})
		return
	}

	category := c.Query("category")
	var ideas []domain.ProjectIdea
	if category != "" {
		ideas = h.catalog.ByDepartmentAndCategory(department, category)
	} else {
		ideas = h.catalog.ByDepartment(department)
	}

	if ideas == nil {
		ideas = []domain.ProjectIdea{}
	}
	c.JSON(http.StatusOK, gin.H{"ideas": ideas})
}

// RandomIdea picks a random idea for a department, falling back from
// the category filter to the whole department bucket.
func (h *Handler) RandomIdea(c *gin.Context) {
	department := c.Query("department")
	if department == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "department is required"})
		return
	}

	idea := h.catalog.RandomIdea(department, c.Query("category"))
	if idea == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no ideas for department"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"idea": idea})
}

// GetIdea returns a single idea by id.
func (h *Handler) GetIdea(c *gin.Context) {
	idea := h.catalog.ByID(c.Param("id"))
	if idea == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "idea not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"idea": idea})
}

// SearchIdeas matches a free-text query, or filters by difficulty or
// technology when those params are given instead.
func (h *Handler) SearchIdeas(c *gin.Context) {
	var ideas []domain.ProjectIdea
	switch {
	case c.Query("q") != "":
		ideas = h.catalog.Search(c.Query("q"))
	case c.Query("difficulty") != "":
		ideas = h.catalog.ByDifficulty(domain.Difficulty(c.Query("difficulty")))
	case c.Query("technology") != "":
		ideas = h.catalog.ByTechnology(c.Query("technology"))
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "q, difficulty or technology is required"})
		return
	}

	if ideas == nil {
		ideas = []domain.ProjectIdea{}
	}
	c.JSON(http.StatusOK, gin.H{"ideas": ideas})
}

// Statistics returns catalog totals.
func (h *Handler) Statistics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"statistics": h.catalog.Statistics()})
}
