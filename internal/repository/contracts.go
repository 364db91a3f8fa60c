// Package repository declares the persistence contracts the domain services
// depend on. Implementations live outside the domain; they return entities
// (never transport shapes) and surface the sentinel errors from errors.go.
package repository

import (
	"context"
	"time"

	"github.com/openroster/roster-stats-service/internal/model"
)

// PlayerRepository declares persistence operations for players. Deleting a
// player cascades to its memberships and their statistics; that cascade is a
// storage concern, not domain logic.
type PlayerRepository interface {
	Create(ctx context.Context, p model.Player) (model.Player, error)
	GetByID(ctx context.Context, id int64) (model.Player, error)
	Update(ctx context.Context, p model.Player) (model.Player, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, p Page) (PageResult[model.Player], error)
	ListByUser(ctx context.Context, userID string) ([]model.Player, error)
}

// TeamPlayerRepository declares persistence operations for team memberships.
// Create must reject a second active membership for the same
// (player, team, championship) tuple with ErrAlreadyExists; this closes the
// check-then-act window left by the service-level duplicate query.
type TeamPlayerRepository interface {
	Create(ctx context.Context, tp model.TeamPlayer) (model.TeamPlayer, error)
	GetByID(ctx context.Context, id int64) (model.TeamPlayer, error)
	Update(ctx context.Context, tp model.TeamPlayer) (model.TeamPlayer, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	ListByPlayer(ctx context.Context, playerID int64, includeInactive bool) ([]model.TeamPlayer, error)
	ListActiveByPlayer(ctx context.Context, playerID int64) ([]model.TeamPlayer, error)
	// HasActiveDuplicate reports whether an active membership exists for the
	// tuple, ignoring the record with excludeID (pass 0 on create).
	HasActiveDuplicate(ctx context.Context, playerID int64, teamName, championshipName string, excludeID int64) (bool, error)
}

// StatisticRepository declares persistence operations for per-game records.
type StatisticRepository interface {
	Create(ctx context.Context, s model.PlayerStatistic) (model.PlayerStatistic, error)
	GetByID(ctx context.Context, id int64) (model.PlayerStatistic, error)
	Update(ctx context.Context, s model.PlayerStatistic) (model.PlayerStatistic, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	ListByTeamPlayer(ctx context.Context, teamPlayerID int64) ([]model.PlayerStatistic, error)
	ListByDateRange(ctx context.Context, teamPlayerID int64, from, to time.Time) ([]model.PlayerStatistic, error)
	// GetAggregates computes totals and averages for a player's statistics,
	// optionally scoped to one membership. Grouping is a storage concern; the
	// result matches model.AggregateStatistics over the same records.
	GetAggregates(ctx context.Context, playerID int64, teamPlayerID *int64) (model.PlayerAggregates, error)
}
