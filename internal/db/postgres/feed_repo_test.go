package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Penwall/internal/core/feeds"
)

func TestSortClausesCoverAllPolicies(t *testing.T) {
	for _, sort := range []string{feeds.SortNewest, feeds.SortOldest, feeds.SortMostLiked} {
		assert.NotEmpty(t, sortClauses[sort], sort)
	}
}

// Every clause must end on the unique id column so equal timestamps or equal
// like counts still produce one total order.
func TestSortClausesAreDeterministic(t *testing.T) {
	for sort, clause := range sortClauses {
		assert.True(t, strings.HasSuffix(clause, "p.id DESC") || strings.HasSuffix(clause, "p.id ASC"),
			"sort %q clause %q does not tie-break on id", sort, clause)
	}
}

func TestMostLikedTieBreaksOnRecencyThenID(t *testing.T) {
	clause := sortClauses[feeds.SortMostLiked]
	require.NotEmpty(t, clause)

	likesIdx := strings.Index(clause, "p.likes_count DESC")
	createdIdx := strings.Index(clause, "p.created_at DESC")
	idIdx := strings.Index(clause, "p.id DESC")

	require.GreaterOrEqual(t, likesIdx, 0)
	require.Greater(t, createdIdx, likesIdx)
	require.Greater(t, idIdx, createdIdx)
}
