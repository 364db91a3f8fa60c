package memory

import (
	"context"
	"sort"

	"github.com/openroster/roster-stats-service/internal/model"
	"github.com/openroster/roster-stats-service/internal/repository"
)

// TeamPlayerStore implements repository.TeamPlayerRepository over the shared
// store.
type TeamPlayerStore struct {
	s *Store
}

var _ repository.TeamPlayerRepository = (*TeamPlayerStore)(nil)

// Create enforces the active-duplicate invariant under the store lock, so
// two concurrent creates for the same tuple cannot both succeed.
func (r *TeamPlayerStore) Create(ctx context.Context, tp model.TeamPlayer) (model.TeamPlayer, error) {
	if err := ctxErr(ctx); err != nil {
		return model.TeamPlayer{}, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if tp.IsActive() && r.s.hasActiveDuplicateLocked(tp.PlayerID, tp.TeamName, tp.ChampionshipName, 0) {
		return model.TeamPlayer{}, repository.ErrAlreadyExists
	}
	tp.ID = r.s.nextTeamPlayerID
	r.s.nextTeamPlayerID++
	r.s.teamPlayers[tp.ID] = tp
	return tp, nil
}

func (r *TeamPlayerStore) GetByID(ctx context.Context, id int64) (model.TeamPlayer, error) {
	if err := ctxErr(ctx); err != nil {
		return model.TeamPlayer{}, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	tp, ok := r.s.teamPlayers[id]
	if !ok {
		return model.TeamPlayer{}, repository.ErrNotFound
	}
	return tp, nil
}

func (r *TeamPlayerStore) Update(ctx context.Context, tp model.TeamPlayer) (model.TeamPlayer, error) {
	if err := ctxErr(ctx); err != nil {
		return model.TeamPlayer{}, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.teamPlayers[tp.ID]; !ok {
		return model.TeamPlayer{}, repository.ErrNotFound
	}
	if tp.IsActive() && r.s.hasActiveDuplicateLocked(tp.PlayerID, tp.TeamName, tp.ChampionshipName, tp.ID) {
		return model.TeamPlayer{}, repository.ErrAlreadyExists
	}
	r.s.teamPlayers[tp.ID] = tp
	return tp, nil
}

// Delete removes the membership and cascades to its statistics.
func (r *TeamPlayerStore) Delete(ctx context.Context, id int64) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.teamPlayers[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.teamPlayers, id)
	for stID, st := range r.s.statistics {
		if st.TeamPlayerID == id {
			delete(r.s.statistics, stID)
		}
	}
	return nil
}

func (r *TeamPlayerStore) Exists(ctx context.Context, id int64) (bool, error) {
	if err := ctxErr(ctx); err != nil {
		return false, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.teamPlayers[id]
	return ok, nil
}

func (r *TeamPlayerStore) ListByPlayer(ctx context.Context, playerID int64, includeInactive bool) ([]model.TeamPlayer, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []model.TeamPlayer
	for _, tp := range r.s.teamPlayers {
		if tp.PlayerID != playerID {
			continue
		}
		if !includeInactive && !tp.IsActive() {
			continue
		}
		out = append(out, tp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *TeamPlayerStore) ListActiveByPlayer(ctx context.Context, playerID int64) ([]model.TeamPlayer, error) {
	return r.ListByPlayer(ctx, playerID, false)
}

func (r *TeamPlayerStore) HasActiveDuplicate(ctx context.Context, playerID int64, teamName, championshipName string, excludeID int64) (bool, error) {
	if err := ctxErr(ctx); err != nil {
		return false, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.hasActiveDuplicateLocked(playerID, teamName, championshipName, excludeID), nil
}
