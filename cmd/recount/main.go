// Command recount rebuilds the cached team standings counters from the
// results table. Run it after manual data surgery or if a bug ever lets the
// counters drift; results are the source of truth, the counters are a
// derived view.
package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"

	"github.com/mcasfest/fest-api/internal/config"
)

// rebuildStandingsSQL recomputes every team's counters from its non-deleted
// results. Judge scores never feed the standings: approving a score does not
// add points, so a rebuild must not either. The only score/standings
// interaction in the system is the reversal applied on event deletion, and
// that adjustment is already reflected in the live counters it reverted.
const rebuildStandingsSQL = `
	UPDATE teams t SET
		total_points = COALESCE(r.points, 0),
		gold         = COALESCE(r.gold, 0),
		silver       = COALESCE(r.silver, 0),
		bronze       = COALESCE(r.bronze, 0)
	FROM teams t2
	LEFT JOIN (
		SELECT team_id,
		       COALESCE(SUM(points), 0)                 AS points,
		       COUNT(*) FILTER (WHERE position = '1st') AS gold,
		       COUNT(*) FILTER (WHERE position = '2nd') AS silver,
		       COUNT(*) FILTER (WHERE position = '3rd') AS bronze
		FROM results
		GROUP BY team_id
	) r ON r.team_id = t2.id
	WHERE t.id = t2.id`

func main() {
	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	tx, err := db.Begin()
	if err != nil {
		log.Fatal(err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(rebuildStandingsSQL)
	if err != nil {
		log.Fatalf("Recount failed: %v", err)
	}

	affected, _ := res.RowsAffected()
	if err := tx.Commit(); err != nil {
		log.Fatalf("Commit failed: %v", err)
	}

	fmt.Printf("Standings rebuilt for %d teams.\n", affected)
}
