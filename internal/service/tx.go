package service

import (
	"database/sql"

	"gorm.io/gorm"

	"github.com/mcasfest/fest-api/internal/domain/entity"
)

// TxManager runs a function inside a database transaction. *gorm.DB
// satisfies it directly; tests substitute a stub.
type TxManager interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}

// StandingsNotifier is told after every committed change to team aggregates
// so the cached leaderboard can be refreshed and pushed to subscribers.
type StandingsNotifier interface {
	StandingsChanged()
}

// ResultNotifier additionally receives result lifecycle events, pushed to
// subscribers alongside the standings refresh.
type ResultNotifier interface {
	StandingsNotifier
	ResultRecorded(result *entity.Result)
	ResultDeleted(result *entity.Result)
}
