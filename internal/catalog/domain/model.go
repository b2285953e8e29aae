package domain

// Difficulty level of a project idea.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// ProjectIdea is a single catalog entry. The catalog is immutable after
// load; ids are unique across all department buckets.
type ProjectIdea struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Category         string     `json:"category"`
	Department       string     `json:"department"`
	Difficulty       Difficulty `json:"difficulty"`
	Technologies     []string   `json:"technologies"`
	DevelopmentGuide string     `json:"developmentGuide"`
	MvpPlan          string     `json:"mvpPlan"`
}

// Statistics summarizes the catalog for reporting endpoints.
type Statistics struct {
	TotalIdeas       int            `json:"total_ideas"`
	DepartmentCounts map[string]int `json:"department_counts"`
	CategoryCounts   map[string]int `json:"category_counts"`
	DifficultyCounts map[string]int `json:"difficulty_counts"`
}
