package memory

import (
	"context"
	"sort"

	"github.com/openroster/roster-stats-service/internal/model"
	"github.com/openroster/roster-stats-service/internal/repository"
)

// PlayerStore implements repository.PlayerRepository over the shared store.
type PlayerStore struct {
	s *Store
}

var _ repository.PlayerRepository = (*PlayerStore)(nil)

func (r *PlayerStore) Create(ctx context.Context, p model.Player) (model.Player, error) {
	if err := ctxErr(ctx); err != nil {
		return model.Player{}, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p.ID = r.s.nextPlayerID
	r.s.nextPlayerID++
	r.s.players[p.ID] = p
	return p, nil
}

func (r *PlayerStore) GetByID(ctx context.Context, id int64) (model.Player, error) {
	if err := ctxErr(ctx); err != nil {
		return model.Player{}, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.players[id]
	if !ok {
		return model.Player{}, repository.ErrNotFound
	}
	return p, nil
}

func (r *PlayerStore) Update(ctx context.Context, p model.Player) (model.Player, error) {
	if err := ctxErr(ctx); err != nil {
		return model.Player{}, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.players[p.ID]; !ok {
		return model.Player{}, repository.ErrNotFound
	}
	r.s.players[p.ID] = p
	return p, nil
}

// Delete removes the player and cascades to its memberships and their
// statistics, keeping the store orphan-free.
func (r *PlayerStore) Delete(ctx context.Context, id int64) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.players[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.players, id)
	for tpID, tp := range r.s.teamPlayers {
		if tp.PlayerID != id {
			continue
		}
		delete(r.s.teamPlayers, tpID)
		for stID, st := range r.s.statistics {
			if st.TeamPlayerID == tpID {
				delete(r.s.statistics, stID)
			}
		}
	}
	return nil
}

func (r *PlayerStore) Exists(ctx context.Context, id int64) (bool, error) {
	if err := ctxErr(ctx); err != nil {
		return false, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.players[id]
	return ok, nil
}

func (r *PlayerStore) List(ctx context.Context, p repository.Page) (repository.PageResult[model.Player], error) {
	if err := ctxErr(ctx); err != nil {
		return repository.PageResult[model.Player]{}, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	all := make([]model.Player, 0, len(r.s.players))
	for _, pl := range r.s.players {
		all = append(all, pl)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	res := repository.PageResult[model.Player]{Total: len(all)}
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Offset >= len(all) {
		return res, nil
	}
	end := p.Offset + p.Limit
	if p.Limit <= 0 || end > len(all) {
		end = len(all)
	}
	res.Items = all[p.Offset:end]
	return res, nil
}

func (r *PlayerStore) ListByUser(ctx context.Context, userID string) ([]model.Player, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []model.Player
	for _, p := range r.s.players {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
