package service

import (
	"context"
	"errors"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/openroster/roster-stats-service/internal/model"
	"github.com/openroster/roster-stats-service/internal/repository"
	"github.com/openroster/roster-stats-service/internal/validation"
)

type statisticService struct {
	statistics  repository.StatisticRepository
	teamPlayers repository.TeamPlayerRepository
	players     repository.PlayerRepository
	clock       clockwork.Clock
	log         zerolog.Logger
}

func NewStatisticService(statistics repository.StatisticRepository, teamPlayers repository.TeamPlayerRepository, players repository.PlayerRepository, clock clockwork.Clock, logger zerolog.Logger) StatisticService {
	return &statisticService{
		statistics:  statistics,
		teamPlayers: teamPlayers,
		players:     players,
		clock:       clockOrReal(clock),
		log:         componentLogger(logger, "statistic"),
	}
}

func (s *statisticService) CreateStatistic(ctx context.Context, in model.StatisticInput, actor string) (model.PlayerStatistic, error) {
	if err := requireActor(actor); err != nil {
		return model.PlayerStatistic{}, err
	}
	start := time.Now()
	now := s.clock.Now()

	if res := validation.ValidateStatistic(in, now); !res.Valid() {
		s.log.Debug().Interface("field_errors", res.FieldErrors()).Msg("statistic validation failed")
		return model.PlayerStatistic{}, invalidResult(res)
	}

	ok, err := s.teamPlayers.Exists(ctx, in.TeamPlayerID)
	if err != nil {
		return model.PlayerStatistic{}, storeFailure(s.log, err, "team player existence check failed")
	}
	if !ok {
		return model.PlayerStatistic{}, notFound("team player", in.TeamPlayerID)
	}

	out, err := s.statistics.Create(ctx, model.NewPlayerStatistic(in, actor, now))
	if err != nil {
		return model.PlayerStatistic{}, storeFailure(s.log, err, "create statistic failed")
	}
	s.log.Info().Dur("took", time.Since(start)).Int64("statistic_id", out.ID).Int64("team_player_id", out.TeamPlayerID).Str("actor", actor).Msg("statistic created")
	return out, nil
}

// UpdateStatistic fully replaces the record, carrying identity and
// created-audit forward from the stored version.
func (s *statisticService) UpdateStatistic(ctx context.Context, id int64, in model.StatisticInput, actor string) (model.PlayerStatistic, error) {
	if err := requireActor(actor); err != nil {
		return model.PlayerStatistic{}, err
	}
	if id <= 0 {
		return model.PlayerStatistic{}, invalidField("statistic_id", "must be > 0")
	}
	if in.StatisticID != id {
		return model.PlayerStatistic{}, invalidField("statistic_id", "does not match the target id")
	}
	now := s.clock.Now()

	if res := validation.ValidateStatistic(in, now); !res.Valid() {
		s.log.Debug().Int64("statistic_id", id).Interface("field_errors", res.FieldErrors()).Msg("statistic validation failed")
		return model.PlayerStatistic{}, invalidResult(res)
	}

	current, err := s.statistics.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.PlayerStatistic{}, notFound("statistic", id)
		}
		return model.PlayerStatistic{}, storeFailure(s.log, err, "load statistic failed")
	}

	if in.TeamPlayerID != current.TeamPlayerID {
		ok, err := s.teamPlayers.Exists(ctx, in.TeamPlayerID)
		if err != nil {
			return model.PlayerStatistic{}, storeFailure(s.log, err, "team player existence check failed")
		}
		if !ok {
			return model.PlayerStatistic{}, notFound("team player", in.TeamPlayerID)
		}
	}

	out, err := s.statistics.Update(ctx, current.WithUpdate(in, actor, now))
	if err != nil {
		return model.PlayerStatistic{}, storeFailure(s.log, err, "update statistic failed")
	}
	s.log.Info().Int64("statistic_id", id).Str("actor", actor).Msg("statistic updated")
	return out, nil
}

func (s *statisticService) DeleteStatistic(ctx context.Context, id int64, actor string) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if id <= 0 {
		return invalidField("statistic_id", "must be > 0")
	}
	if err := s.statistics.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("statistic", id)
		}
		return storeFailure(s.log, err, "delete statistic failed")
	}
	s.log.Info().Int64("statistic_id", id).Str("actor", actor).Msg("statistic deleted")
	return nil
}

func (s *statisticService) GetStatistic(ctx context.Context, id int64) (model.PlayerStatistic, error) {
	if id <= 0 {
		return model.PlayerStatistic{}, invalidField("statistic_id", "must be > 0")
	}
	out, err := s.statistics.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.PlayerStatistic{}, notFound("statistic", id)
		}
		return model.PlayerStatistic{}, storeFailure(s.log, err, "get statistic failed")
	}
	return out, nil
}

func (s *statisticService) ListStatistics(ctx context.Context, teamPlayerID int64) ([]model.PlayerStatistic, error) {
	if teamPlayerID <= 0 {
		return nil, invalidField("team_player_id", "must be > 0")
	}
	out, err := s.statistics.ListByTeamPlayer(ctx, teamPlayerID)
	if err != nil {
		return nil, storeFailure(s.log, err, "list statistics failed")
	}
	return out, nil
}

func (s *statisticService) ListStatisticsByDateRange(ctx context.Context, teamPlayerID int64, from, to time.Time) ([]model.PlayerStatistic, error) {
	var ferrs []validation.FieldError
	if teamPlayerID <= 0 {
		ferrs = append(ferrs, validation.FieldError{Field: "team_player_id", Message: "must be > 0"})
	}
	if from.IsZero() || to.IsZero() {
		ferrs = append(ferrs, validation.FieldError{Field: "date_range", Message: "from and to must be set"})
	} else if to.Before(from) {
		ferrs = append(ferrs, validation.FieldError{Field: "date_range", Message: "to must not be before from"})
	}
	if err := NewInvalidInputError(ferrs); err != nil {
		return nil, err
	}
	out, err := s.statistics.ListByDateRange(ctx, teamPlayerID, from, to)
	if err != nil {
		return nil, storeFailure(s.log, err, "list statistics by date range failed")
	}
	return out, nil
}

// GetPlayerAggregates delegates grouping to the repository and returns the
// aggregation shape, optionally scoped to one membership.
func (s *statisticService) GetPlayerAggregates(ctx context.Context, playerID int64, teamPlayerID *int64) (model.PlayerAggregates, error) {
	var ferrs []validation.FieldError
	if playerID <= 0 {
		ferrs = append(ferrs, validation.FieldError{Field: "player_id", Message: "must be > 0"})
	}
	if teamPlayerID != nil && *teamPlayerID <= 0 {
		ferrs = append(ferrs, validation.FieldError{Field: "team_player_id", Message: "must be > 0"})
	}
	if err := NewInvalidInputError(ferrs); err != nil {
		return model.PlayerAggregates{}, err
	}

	ok, err := s.players.Exists(ctx, playerID)
	if err != nil {
		return model.PlayerAggregates{}, storeFailure(s.log, err, "player existence check failed")
	}
	if !ok {
		return model.PlayerAggregates{}, notFound("player", playerID)
	}

	agg, err := s.statistics.GetAggregates(ctx, playerID, teamPlayerID)
	if err != nil {
		return model.PlayerAggregates{}, storeFailure(s.log, err, "get player aggregates failed")
	}
	return agg, nil
}
