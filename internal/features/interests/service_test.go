package interests

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPopularResponseNormalizesRelevance(t *testing.T) {
	popular := []TagCountResult{
		{Name: "golang", Count: 40},
		{Name: "fintech", Count: 20},
		{Name: "design", Count: 10},
	}

	resp := popularResponse(popular, 2)
	require.False(t, resp.Personalized)
	require.Len(t, resp.Categories, 2)
	require.Equal(t, "golang", resp.Categories[0].Name)
	require.Equal(t, "Golang", resp.Categories[0].DisplayName)
	require.Equal(t, 1.0, resp.Categories[0].RelevanceScore)
	require.Equal(t, 0.5, resp.Categories[1].RelevanceScore)
}

func TestPopularResponseEmptyInput(t *testing.T) {
	resp := popularResponse(nil, 5)
	require.False(t, resp.Personalized)
	require.Empty(t, resp.Categories)
}

func TestCapitalizeFirst(t *testing.T) {
	require.Equal(t, "Golang", capitalizeFirst("golang"))
	require.Equal(t, "", capitalizeFirst(""))
	require.Equal(t, "A", capitalizeFirst("a"))
}
