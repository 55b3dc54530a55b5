package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The rebuild must derive every counter from results alone. Judge scores are
// an independent ledger; pulling them into a rebuild would silently inflate
// the leaderboard relative to the live aggregate-delta path.
func TestRebuildStandingsDerivesFromResultsOnly(t *testing.T) {
	assert.Contains(t, rebuildStandingsSQL, "FROM results")
	assert.NotContains(t, strings.ToLower(rebuildStandingsSQL), "scores")
	assert.NotContains(t, strings.ToLower(rebuildStandingsSQL), "total_score")
}

// Teams with no results at all must be reset to zero, not skipped.
func TestRebuildStandingsZeroesTeamsWithoutResults(t *testing.T) {
	assert.Contains(t, rebuildStandingsSQL, "LEFT JOIN")
	for _, counter := range []string{"r.points", "r.gold", "r.silver", "r.bronze"} {
		assert.Contains(t, rebuildStandingsSQL, "COALESCE("+counter+", 0)")
	}
}
