package catalog

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/catalog/domain"
)

//go:embed data/ideas.json
var dataFS embed.FS

// LoadDataset parses the embedded idea catalog. The result maps a
// department code to its ordered idea bucket and is treated as
// read-only by every caller.
func LoadDataset() (map[string][]domain.ProjectIdea, error) {
	raw, err := dataFS.ReadFile("data/ideas.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read idea dataset: %w", err)
	}

	var ideas map[string][]domain.ProjectIdea
	if err := json.Unmarshal(raw, &ideas); err != nil {
		return nil, fmt.Errorf("failed to parse idea dataset: %w", err)
	}

	if err := validateDataset(ideas); err != nil {
		return nil, err
	}

	return ideas, nil
}

// validateDataset enforces global id uniqueness across department
// buckets. Lookup by id relies on it.
func validateDataset(ideas map[string][]domain.ProjectIdea) error {
	seen := make(map[string]string)
	for dept, bucket := range ideas {
		for _, idea := range bucket {
			if idea.ID == "" {
				return fmt.Errorf("department %q contains an idea without an id", dept)
			}
			if prev, ok := seen[idea.ID]; ok {
				return fmt.Errorf("duplicate idea id %q in departments %q and %q", idea.ID, prev, dept)
			}
			seen[idea.ID] = dept
		}
	}
	return nil
}
