// Package service orchestrates the domain use cases: validate input, check
// cross-record invariants through the repositories, drive entity transitions
// and shape every expected failure into the error taxonomy below. Nothing in
// here panics; the only "programming error" signal is ErrMissingActor.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/openroster/roster-stats-service/internal/model"
	"github.com/openroster/roster-stats-service/internal/repository"
	"github.com/openroster/roster-stats-service/internal/validation"
)

// Failure taxonomy. Repository sentinels (repository.ErrNotFound) pass
// through wrapped with the missing id; everything unexpected becomes
// ErrUnavailable with the real cause logged, never returned.
var (
	// ErrInvalidInput marks aggregated validation failures. Field-level
	// details are retrieved via FieldErrors(err).
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingActor signals a caller-contract violation: every mutating
	// operation requires a non-blank actor id for the audit trail.
	ErrMissingActor = errors.New("actor id must not be blank")

	// ErrDuplicateAssignment is the conflict returned when a player already
	// has an active membership for the same team and championship.
	ErrDuplicateAssignment = errors.New("player already has an active assignment for this team and championship")

	// ErrUnavailable is the generic user-facing failure for unexpected
	// storage errors. The underlying cause is logged server-side only.
	ErrUnavailable = errors.New("the operation could not be completed, please try again")
)

// invalidInputError aggregates field errors and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []validation.FieldError
}

func (e *invalidInputError) Error() string                   { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error                   { return ErrInvalidInput }
func (e *invalidInputError) Fields() []validation.FieldError { return e.fields }

// NewInvalidInputError builds an aggregated validation error; nil when no
// field errors are present.
func NewInvalidInputError(fe []validation.FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invalidInputError{fields: fe}
}

func invalidResult(r validation.Result) error {
	return NewInvalidInputError(r.FieldErrors())
}

func invalidField(field, message string) error {
	return NewInvalidInputError([]validation.FieldError{{Field: field, Message: message}})
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []validation.FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []validation.FieldError }
	if v, ok := err.(feIface); ok && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// requireActor guards the audit contract before any other work happens.
func requireActor(actor string) error {
	if strings.TrimSpace(actor) == "" {
		return ErrMissingActor
	}
	return nil
}

// notFound wraps the sentinel so the outcome names the missing id.
func notFound(entity string, id int64) error {
	return fmt.Errorf("%s %d: %w", entity, id, repository.ErrNotFound)
}

// storeFailure classifies a repository error: cancellation passes through,
// known sentinels are returned for the caller to map, anything else is
// logged in full and replaced with the generic ErrUnavailable.
func storeFailure(log zerolog.Logger, err error, msg string) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, repository.ErrNotFound),
		errors.Is(err, repository.ErrAlreadyExists),
		errors.Is(err, repository.ErrConflict):
		return err
	default:
		log.Error().Err(err).Msg(msg)
		return ErrUnavailable
	}
}

// PlayerService defines player-oriented use cases.
type PlayerService interface {
	CreatePlayer(ctx context.Context, in model.PlayerInput, actor string) (model.Player, error)
	UpdatePlayer(ctx context.Context, id int64, in model.PlayerInput, actor string) (model.Player, error)
	DeletePlayer(ctx context.Context, id int64, actor string) error
	GetPlayer(ctx context.Context, id int64) (model.Player, error)
	ListPlayers(ctx context.Context, page repository.Page) (repository.PageResult[model.Player], error)
	ListPlayersByUser(ctx context.Context, userID string) ([]model.Player, error)
}

// TeamPlayerService defines membership-oriented use cases.
type TeamPlayerService interface {
	AddPlayerToTeam(ctx context.Context, in model.TeamPlayerInput, actor string) (model.TeamPlayer, error)
	UpdateTeamAssignment(ctx context.Context, id int64, in model.TeamPlayerInput, actor string) (model.TeamPlayer, error)
	RemovePlayerFromTeam(ctx context.Context, id int64, leftDate time.Time, actor string) (model.TeamPlayer, error)
	GetTeamAssignment(ctx context.Context, id int64) (model.TeamPlayer, error)
	ListMemberships(ctx context.Context, playerID int64, includeInactive bool) ([]model.TeamPlayer, error)
	ListActiveMemberships(ctx context.Context, playerID int64) ([]model.TeamPlayer, error)
}

// StatisticService defines per-game record use cases and aggregation.
type StatisticService interface {
	CreateStatistic(ctx context.Context, in model.StatisticInput, actor string) (model.PlayerStatistic, error)
	UpdateStatistic(ctx context.Context, id int64, in model.StatisticInput, actor string) (model.PlayerStatistic, error)
	DeleteStatistic(ctx context.Context, id int64, actor string) error
	GetStatistic(ctx context.Context, id int64) (model.PlayerStatistic, error)
	ListStatistics(ctx context.Context, teamPlayerID int64) ([]model.PlayerStatistic, error)
	ListStatisticsByDateRange(ctx context.Context, teamPlayerID int64, from, to time.Time) ([]model.PlayerStatistic, error)
	GetPlayerAggregates(ctx context.Context, playerID int64, teamPlayerID *int64) (model.PlayerAggregates, error)
}

// componentLogger tags a sub-logger the way every service constructor does.
func componentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("module", "service").Str("component", component).Logger()
}

// clockOrReal lets constructors accept a nil clock in wiring code.
func clockOrReal(c clockwork.Clock) clockwork.Clock {
	if c == nil {
		return clockwork.NewRealClock()
	}
	return c
}
