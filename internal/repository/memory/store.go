// Package memory is the in-process reference implementation of the
// repository contracts, used by tests and the smoke binary. A single RWMutex
// serializes access; uniqueness checks therefore run atomically with the
// writes they guard.
package memory

import (
	"context"
	"sync"

	"github.com/openroster/roster-stats-service/internal/model"
)

// Store owns the shared maps behind the three repository views.
type Store struct {
	mu sync.RWMutex

	players     map[int64]model.Player
	teamPlayers map[int64]model.TeamPlayer
	statistics  map[int64]model.PlayerStatistic

	nextPlayerID     int64
	nextTeamPlayerID int64
	nextStatisticID  int64
}

func NewStore() *Store {
	return &Store{
		players:          map[int64]model.Player{},
		teamPlayers:      map[int64]model.TeamPlayer{},
		statistics:       map[int64]model.PlayerStatistic{},
		nextPlayerID:     1,
		nextTeamPlayerID: 1,
		nextStatisticID:  1,
	}
}

// Players returns the player view over the store.
func (s *Store) Players() *PlayerStore { return &PlayerStore{s} }

// TeamPlayers returns the membership view over the store.
func (s *Store) TeamPlayers() *TeamPlayerStore { return &TeamPlayerStore{s} }

// Statistics returns the per-game record view over the store.
func (s *Store) Statistics() *StatisticStore { return &StatisticStore{s} }

// ctxErr lets every operation honor cancellation before touching the maps.
func ctxErr(ctx context.Context) error { return ctx.Err() }

func (s *Store) hasActiveDuplicateLocked(playerID int64, teamName, championshipName string, excludeID int64) bool {
	for _, tp := range s.teamPlayers {
		if tp.ID == excludeID {
			continue
		}
		if tp.PlayerID == playerID && tp.TeamName == teamName && tp.ChampionshipName == championshipName && tp.IsActive() {
			return true
		}
	}
	return false
}
