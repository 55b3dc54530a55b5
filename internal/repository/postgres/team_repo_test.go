package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/clause"

	"github.com/mcasfest/fest-api/internal/domain/repository"
)

// Every counter expression must clamp at zero. Deleting a result whose
// points exceed the team's current total leaves the counter at 0, never
// negative, and that guarantee lives entirely in these expressions.
func TestAggregateDeltaUpdatesClampEveryCounterAtZero(t *testing.T) {
	updates := aggregateDeltaUpdates(repository.AggregateDelta{
		Points: -20,
		Gold:   -1,
		Silver: -2,
		Bronze: -3,
	})

	expected := map[string]string{
		"total_points": "GREATEST(total_points + ?, 0)",
		"gold":         "GREATEST(gold + ?, 0)",
		"silver":       "GREATEST(silver + ?, 0)",
		"bronze":       "GREATEST(bronze + ?, 0)",
	}
	require.Len(t, updates, len(expected))

	for column, sql := range expected {
		expr, ok := updates[column].(clause.Expr)
		require.True(t, ok, "column %s must be an SQL expression", column)
		assert.Equal(t, sql, expr.SQL, column)
	}
}

func TestAggregateDeltaUpdatesCarryDeltaValues(t *testing.T) {
	updates := aggregateDeltaUpdates(repository.AggregateDelta{Points: -20, Gold: -1})

	points := updates["total_points"].(clause.Expr)
	require.Len(t, points.Vars, 1)
	assert.Equal(t, -20, points.Vars[0])

	gold := updates["gold"].(clause.Expr)
	require.Len(t, gold.Vars, 1)
	assert.Equal(t, -1, gold.Vars[0])
}

// A points-only delta (e.g. the approved-score reversal on event deletion)
// must not touch the medal columns at all.
func TestAggregateDeltaUpdatesOmitZeroMedalComponents(t *testing.T) {
	updates := aggregateDeltaUpdates(repository.AggregateDelta{Points: -88})

	require.Len(t, updates, 1)
	_, ok := updates["total_points"]
	assert.True(t, ok)
}
