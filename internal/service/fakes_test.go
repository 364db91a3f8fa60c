package service_test

import (
	"context"
	"time"

	"github.com/openroster/roster-stats-service/internal/model"
	"github.com/openroster/roster-stats-service/internal/repository"
)

// Hand-rolled fakes shared by the service tests. They mimic storage behavior
// closely enough to drive every service path, including injected failures.

type fakePlayerRepo struct {
	nextID    int64
	players   map[int64]model.Player
	createErr error
}

func newFakePlayerRepo() *fakePlayerRepo {
	return &fakePlayerRepo{nextID: 1, players: map[int64]model.Player{}}
}

func (f *fakePlayerRepo) Create(_ context.Context, p model.Player) (model.Player, error) {
	if f.createErr != nil {
		return model.Player{}, f.createErr
	}
	p.ID = f.nextID
	f.nextID++
	f.players[p.ID] = p
	return p, nil
}

func (f *fakePlayerRepo) GetByID(_ context.Context, id int64) (model.Player, error) {
	p, ok := f.players[id]
	if !ok {
		return model.Player{}, repository.ErrNotFound
	}
	return p, nil
}

func (f *fakePlayerRepo) Update(_ context.Context, p model.Player) (model.Player, error) {
	if _, ok := f.players[p.ID]; !ok {
		return model.Player{}, repository.ErrNotFound
	}
	f.players[p.ID] = p
	return p, nil
}

func (f *fakePlayerRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.players[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.players, id)
	return nil
}

func (f *fakePlayerRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.players[id]
	return ok, nil
}

func (f *fakePlayerRepo) List(_ context.Context, _ repository.Page) (repository.PageResult[model.Player], error) {
	res := repository.PageResult[model.Player]{}
	for _, p := range f.players {
		res.Items = append(res.Items, p)
	}
	res.Total = len(res.Items)
	return res, nil
}

func (f *fakePlayerRepo) ListByUser(_ context.Context, userID string) ([]model.Player, error) {
	var out []model.Player
	for _, p := range f.players {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

var _ repository.PlayerRepository = (*fakePlayerRepo)(nil)

type fakeTeamPlayerRepo struct {
	nextID      int64
	items       map[int64]model.TeamPlayer
	createErr   error
	updateCalls int
}

func newFakeTeamPlayerRepo() *fakeTeamPlayerRepo {
	return &fakeTeamPlayerRepo{nextID: 1, items: map[int64]model.TeamPlayer{}}
}

func (f *fakeTeamPlayerRepo) Create(_ context.Context, tp model.TeamPlayer) (model.TeamPlayer, error) {
	if f.createErr != nil {
		return model.TeamPlayer{}, f.createErr
	}
	tp.ID = f.nextID
	f.nextID++
	f.items[tp.ID] = tp
	return tp, nil
}

func (f *fakeTeamPlayerRepo) GetByID(_ context.Context, id int64) (model.TeamPlayer, error) {
	tp, ok := f.items[id]
	if !ok {
		return model.TeamPlayer{}, repository.ErrNotFound
	}
	return tp, nil
}

func (f *fakeTeamPlayerRepo) Update(_ context.Context, tp model.TeamPlayer) (model.TeamPlayer, error) {
	f.updateCalls++
	if _, ok := f.items[tp.ID]; !ok {
		return model.TeamPlayer{}, repository.ErrNotFound
	}
	f.items[tp.ID] = tp
	return tp, nil
}

func (f *fakeTeamPlayerRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeTeamPlayerRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.items[id]
	return ok, nil
}

func (f *fakeTeamPlayerRepo) ListByPlayer(_ context.Context, playerID int64, includeInactive bool) ([]model.TeamPlayer, error) {
	var out []model.TeamPlayer
	for _, tp := range f.items {
		if tp.PlayerID != playerID {
			continue
		}
		if !includeInactive && !tp.IsActive() {
			continue
		}
		out = append(out, tp)
	}
	return out, nil
}

func (f *fakeTeamPlayerRepo) ListActiveByPlayer(ctx context.Context, playerID int64) ([]model.TeamPlayer, error) {
	return f.ListByPlayer(ctx, playerID, false)
}

func (f *fakeTeamPlayerRepo) HasActiveDuplicate(_ context.Context, playerID int64, teamName, championshipName string, excludeID int64) (bool, error) {
	for _, tp := range f.items {
		if tp.ID == excludeID {
			continue
		}
		if tp.PlayerID == playerID && tp.TeamName == teamName && tp.ChampionshipName == championshipName && tp.IsActive() {
			return true, nil
		}
	}
	return false, nil
}

var _ repository.TeamPlayerRepository = (*fakeTeamPlayerRepo)(nil)

type fakeStatisticRepo struct {
	nextID      int64
	items       map[int64]model.PlayerStatistic
	memberships map[int64]int64 // teamPlayerID -> playerID, for aggregates
	updateCalls int
}

func newFakeStatisticRepo() *fakeStatisticRepo {
	return &fakeStatisticRepo{nextID: 1, items: map[int64]model.PlayerStatistic{}, memberships: map[int64]int64{}}
}

func (f *fakeStatisticRepo) Create(_ context.Context, st model.PlayerStatistic) (model.PlayerStatistic, error) {
	st.ID = f.nextID
	f.nextID++
	f.items[st.ID] = st
	return st, nil
}

func (f *fakeStatisticRepo) GetByID(_ context.Context, id int64) (model.PlayerStatistic, error) {
	st, ok := f.items[id]
	if !ok {
		return model.PlayerStatistic{}, repository.ErrNotFound
	}
	return st, nil
}

func (f *fakeStatisticRepo) Update(_ context.Context, st model.PlayerStatistic) (model.PlayerStatistic, error) {
	f.updateCalls++
	if _, ok := f.items[st.ID]; !ok {
		return model.PlayerStatistic{}, repository.ErrNotFound
	}
	f.items[st.ID] = st
	return st, nil
}

func (f *fakeStatisticRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeStatisticRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.items[id]
	return ok, nil
}

func (f *fakeStatisticRepo) ListByTeamPlayer(_ context.Context, teamPlayerID int64) ([]model.PlayerStatistic, error) {
	var out []model.PlayerStatistic
	for _, st := range f.items {
		if st.TeamPlayerID == teamPlayerID {
			out = append(out, st)
		}
	}
	return out, nil
}

func (f *fakeStatisticRepo) ListByDateRange(_ context.Context, teamPlayerID int64, from, to time.Time) ([]model.PlayerStatistic, error) {
	var out []model.PlayerStatistic
	for _, st := range f.items {
		if st.TeamPlayerID != teamPlayerID {
			continue
		}
		if st.GameDate.Before(from) || st.GameDate.After(to) {
			continue
		}
		out = append(out, st)
	}
	return out, nil
}

func (f *fakeStatisticRepo) GetAggregates(_ context.Context, playerID int64, teamPlayerID *int64) (model.PlayerAggregates, error) {
	var scoped []model.PlayerStatistic
	for _, st := range f.items {
		if f.memberships[st.TeamPlayerID] != playerID {
			continue
		}
		if teamPlayerID != nil && st.TeamPlayerID != *teamPlayerID {
			continue
		}
		scoped = append(scoped, st)
	}
	return model.AggregateStatistics(scoped), nil
}

var _ repository.StatisticRepository = (*fakeStatisticRepo)(nil)
