package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HariharanSuthan-A/ideation-ai-launchpad/internal/catalog/domain"
)

func TestLoadDataset(t *testing.T) {
	ideas, err := LoadDataset()
	require.NoError(t, err)
	require.NotEmpty(t, ideas)

	t.Run("every bucket is populated and consistent", func(t *testing.T) {
		for dept, bucket := range ideas {
			assert.NotEmpty(t, bucket, "department %q", dept)
			for _, idea := range bucket {
				assert.Equal(t, dept, idea.Department, "idea %q", idea.ID)
				assert.NotEmpty(t, idea.DevelopmentGuide, "idea %q", idea.ID)
				assert.NotEmpty(t, idea.MvpPlan, "idea %q", idea.ID)
			}
		}
	})
}

func TestValidateDatasetRejectsDuplicateIDs(t *testing.T) {
	bad := map[string][]domain.ProjectIdea{
		"cse":  {{ID: "dup-001"}},
		"mech": {{ID: "dup-001"}},
	}
	err := validateDataset(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dup-001")
}

func TestValidateDatasetRejectsMissingID(t *testing.T) {
	bad := map[string][]domain.ProjectIdea{
		"cse": {{Title: "no id"}},
	}
	require.Error(t, validateDataset(bad))
}
