package memory

import (
	"context"
	"sort"
	"time"

	"github.com/openroster/roster-stats-service/internal/model"
	"github.com/openroster/roster-stats-service/internal/repository"
)

// StatisticStore implements repository.StatisticRepository over the shared
// store.
type StatisticStore struct {
	s *Store
}

var _ repository.StatisticRepository = (*StatisticStore)(nil)

func (r *StatisticStore) Create(ctx context.Context, st model.PlayerStatistic) (model.PlayerStatistic, error) {
	if err := ctxErr(ctx); err != nil {
		return model.PlayerStatistic{}, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	st.ID = r.s.nextStatisticID
	r.s.nextStatisticID++
	r.s.statistics[st.ID] = st
	return st, nil
}

func (r *StatisticStore) GetByID(ctx context.Context, id int64) (model.PlayerStatistic, error) {
	if err := ctxErr(ctx); err != nil {
		return model.PlayerStatistic{}, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	st, ok := r.s.statistics[id]
	if !ok {
		return model.PlayerStatistic{}, repository.ErrNotFound
	}
	return st, nil
}

func (r *StatisticStore) Update(ctx context.Context, st model.PlayerStatistic) (model.PlayerStatistic, error) {
	if err := ctxErr(ctx); err != nil {
		return model.PlayerStatistic{}, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.statistics[st.ID]; !ok {
		return model.PlayerStatistic{}, repository.ErrNotFound
	}
	r.s.statistics[st.ID] = st
	return st, nil
}

func (r *StatisticStore) Delete(ctx context.Context, id int64) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.statistics[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.statistics, id)
	return nil
}

func (r *StatisticStore) Exists(ctx context.Context, id int64) (bool, error) {
	if err := ctxErr(ctx); err != nil {
		return false, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.statistics[id]
	return ok, nil
}

func (r *StatisticStore) ListByTeamPlayer(ctx context.Context, teamPlayerID int64) ([]model.PlayerStatistic, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []model.PlayerStatistic
	for _, st := range r.s.statistics {
		if st.TeamPlayerID == teamPlayerID {
			out = append(out, st)
		}
	}
	sortByGameDate(out)
	return out, nil
}

// ListByDateRange returns records with from <= GameDate <= to.
func (r *StatisticStore) ListByDateRange(ctx context.Context, teamPlayerID int64, from, to time.Time) ([]model.PlayerStatistic, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []model.PlayerStatistic
	for _, st := range r.s.statistics {
		if st.TeamPlayerID != teamPlayerID {
			continue
		}
		if st.GameDate.Before(from) || st.GameDate.After(to) {
			continue
		}
		out = append(out, st)
	}
	sortByGameDate(out)
	return out, nil
}

func (r *StatisticStore) GetAggregates(ctx context.Context, playerID int64, teamPlayerID *int64) (model.PlayerAggregates, error) {
	if err := ctxErr(ctx); err != nil {
		return model.PlayerAggregates{}, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	memberships := map[int64]bool{}
	for id, tp := range r.s.teamPlayers {
		if tp.PlayerID == playerID {
			memberships[id] = true
		}
	}
	var scoped []model.PlayerStatistic
	for _, st := range r.s.statistics {
		if !memberships[st.TeamPlayerID] {
			continue
		}
		if teamPlayerID != nil && st.TeamPlayerID != *teamPlayerID {
			continue
		}
		scoped = append(scoped, st)
	}
	return model.AggregateStatistics(scoped), nil
}

func sortByGameDate(stats []model.PlayerStatistic) {
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].GameDate.Equal(stats[j].GameDate) {
			return stats[i].ID < stats[j].ID
		}
		return stats[i].GameDate.Before(stats[j].GameDate)
	})
}
