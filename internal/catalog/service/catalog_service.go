package service

import (
	"math/rand"
	"sort"
	"strings"
	"sync"

	"github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/catalog/domain"
)

// CatalogService answers read-only lookups over the static idea
// catalog. The dataset never changes after construction. The random
// source is guarded by a mutex because *rand.Rand is not safe for the
// concurrent requests gin serves.
type CatalogService struct {
	ideas map[string][]domain.ProjectIdea

	mu  sync.Mutex
	rng *rand.Rand
}

// NewCatalogService creates a catalog service over the given dataset.
// The random source is injected so tests can seed it.
func NewCatalogService(ideas map[string][]domain.ProjectIdea, rng *rand.Rand) *CatalogService {
	return &CatalogService{
		ideas: ideas,
		rng:   rng,
	}
}

// ByDepartment returns the full bucket for a department, empty if the
// department is unknown.
func (s *CatalogService) ByDepartment(department string) []domain.ProjectIdea {
	return s.ideas[department]
}

// ByDepartmentAndCategory filters a department's bucket by exact
// category match.
func (s *CatalogService) ByDepartmentAndCategory(department, category string) []domain.ProjectIdea {
	var out []domain.ProjectIdea
	for _, idea := range s.ideas[department] {
		if idea.Category == category {
			out = append(out, idea)
		}
	}
	return out
}

// RandomIdea picks uniformly from the (department, category) set. If
// that set is empty it falls back to a uniform pick over the whole
// department bucket; callers rely on always getting an idea when the
// department exists. Returns nil only when the department bucket is
// empty too.
func (s *CatalogService) RandomIdea(department, category string) *domain.ProjectIdea {
	filtered := s.ByDepartmentAndCategory(department, category)
	if len(filtered) == 0 {
		bucket := s.ideas[department]
		if len(bucket) == 0 {
			return nil
		}
		idea := bucket[s.intn(len(bucket))]
		return &idea
	}
	idea := filtered[s.intn(len(filtered))]
	return &idea
}

func (s *CatalogService) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// ByID scans every department bucket for the id; first match wins.
// Global id uniqueness is enforced at dataset load.
func (s *CatalogService) ByID(id string) *domain.ProjectIdea {
	for _, dept := range s.departments() {
		for _, idea := range s.ideas[dept] {
			if idea.ID == id {
				found := idea
				return &found
			}
		}
	}
	return nil
}

// ByDifficulty collects ideas of the given difficulty across all
// departments.
func (s *CatalogService) ByDifficulty(difficulty domain.Difficulty) []domain.ProjectIdea {
	var out []domain.ProjectIdea
	for _, dept := range s.departments() {
		for _, idea := range s.ideas[dept] {
			if idea.Difficulty == difficulty {
				out = append(out, idea)
			}
		}
	}
	return out
}

// ByTechnology collects ideas whose technology list contains the term,
// case-insensitively.
func (s *CatalogService) ByTechnology(technology string) []domain.ProjectIdea {
	term := strings.ToLower(technology)
	var out []domain.ProjectIdea
	for _, dept := range s.departments() {
		for _, idea := range s.ideas[dept] {
			for _, tech := range idea.Technologies {
				if strings.Contains(strings.ToLower(tech), term) {
					out = append(out, idea)
					break
				}
			}
		}
	}
	return out
}

// Search matches the query against title, description and
// technologies, case-insensitively.
func (s *CatalogService) Search(query string) []domain.ProjectIdea {
	term := strings.ToLower(query)
	var out []domain.ProjectIdea
	for _, dept := range s.departments() {
		for _, idea := range s.ideas[dept] {
			if strings.Contains(strings.ToLower(idea.Title), term) ||
				strings.Contains(strings.ToLower(idea.Description), term) ||
				matchesTechnology(idea, term) {
				out = append(out, idea)
			}
		}
	}
	return out
}

// Statistics returns catalog totals for the reporting endpoint.
func (s *CatalogService) Statistics() domain.Statistics {
	stats := domain.Statistics{
		DepartmentCounts: make(map[string]int),
		CategoryCounts:   make(map[string]int),
		DifficultyCounts: make(map[string]int),
	}

	for dept, bucket := range s.ideas {
		stats.DepartmentCounts[dept] = len(bucket)
		stats.TotalIdeas += len(bucket)
		for _, idea := range bucket {
			stats.CategoryCounts[idea.Category]++
			stats.DifficultyCounts[string(idea.Difficulty)]++
		}
	}

	return stats
}

// departments returns department codes in a stable order so cross-
// department scans are deterministic.
func (s *CatalogService) departments() []string {
	depts := make([]string, 0, len(s.ideas))
	for dept := range s.ideas {
		depts = append(depts, dept)
	}
	sort.Strings(depts)
	return depts
}

func matchesTechnology(idea domain.ProjectIdea, term string) bool {
	for _, tech := range idea.Technologies {
		if strings.Contains(strings.ToLower(tech), term) {
			return true
		}
	}
	return false
}
