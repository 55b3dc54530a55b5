package repository

import "errors"

// Repository-level sentinel errors for conditions the service layer needs
// to distinguish from generic store failures.
var (
	// ErrDuplicateTeamName is returned on a unique violation for teams.name.
	ErrDuplicateTeamName = errors.New("team name already taken")

	// ErrDuplicateScore is returned when a judge submits a second score for
	// the same event and team (unique index idx_judge_event_team).
	ErrDuplicateScore = errors.New("score already submitted for this event and team")

	// ErrDuplicateUser is returned on a unique violation for users.username
	// or users.email.
	ErrDuplicateUser = errors.New("username or email already taken")
)
