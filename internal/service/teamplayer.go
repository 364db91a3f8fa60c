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

type teamPlayerService struct {
	teamPlayers repository.TeamPlayerRepository
	players     repository.PlayerRepository
	clock       clockwork.Clock
	log         zerolog.Logger
}

func NewTeamPlayerService(teamPlayers repository.TeamPlayerRepository, players repository.PlayerRepository, clock clockwork.Clock, logger zerolog.Logger) TeamPlayerService {
	return &teamPlayerService{
		teamPlayers: teamPlayers,
		players:     players,
		clock:       clockOrReal(clock),
		log:         componentLogger(logger, "teamplayer"),
	}
}

// AddPlayerToTeam creates a membership: validate, check the player exists,
// check the active-duplicate invariant, persist. The storage layer re-checks
// the invariant atomically, so a racing create surfaces as the same
// duplicate-assignment conflict.
func (s *teamPlayerService) AddPlayerToTeam(ctx context.Context, in model.TeamPlayerInput, actor string) (model.TeamPlayer, error) {
	if err := requireActor(actor); err != nil {
		return model.TeamPlayer{}, err
	}
	start := time.Now()
	now := s.clock.Now()

	if res := validation.ValidateTeamPlayer(in, now); !res.Valid() {
		s.log.Debug().Interface("field_errors", res.FieldErrors()).Msg("team player validation failed")
		return model.TeamPlayer{}, invalidResult(res)
	}

	ok, err := s.players.Exists(ctx, in.PlayerID)
	if err != nil {
		return model.TeamPlayer{}, storeFailure(s.log, err, "player existence check failed")
	}
	if !ok {
		return model.TeamPlayer{}, notFound("player", in.PlayerID)
	}

	tp := model.NewTeamPlayer(in, actor, now)
	if tp.IsActive() {
		dup, err := s.teamPlayers.HasActiveDuplicate(ctx, tp.PlayerID, tp.TeamName, tp.ChampionshipName, 0)
		if err != nil {
			return model.TeamPlayer{}, storeFailure(s.log, err, "duplicate assignment check failed")
		}
		if dup {
			s.log.Debug().Int64("player_id", tp.PlayerID).Str("team", tp.TeamName).Str("championship", tp.ChampionshipName).Msg("duplicate active assignment rejected")
			return model.TeamPlayer{}, ErrDuplicateAssignment
		}
	}

	out, err := s.teamPlayers.Create(ctx, tp)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return model.TeamPlayer{}, ErrDuplicateAssignment
		}
		return model.TeamPlayer{}, storeFailure(s.log, err, "create team player failed")
	}
	s.log.Info().Dur("took", time.Since(start)).Int64("team_player_id", out.ID).Int64("player_id", out.PlayerID).Str("actor", actor).Msg("player added to team")
	return out, nil
}

// UpdateTeamAssignment either drives the Active→Left transition (when the
// input carries a left date) or refreshes audit fields. A mismatch between
// the path id and the embedded id is an expected failure, not a panic.
func (s *teamPlayerService) UpdateTeamAssignment(ctx context.Context, id int64, in model.TeamPlayerInput, actor string) (model.TeamPlayer, error) {
	if err := requireActor(actor); err != nil {
		return model.TeamPlayer{}, err
	}
	if id <= 0 {
		return model.TeamPlayer{}, invalidField("team_player_id", "must be > 0")
	}
	if in.TeamPlayerID != id {
		return model.TeamPlayer{}, invalidField("team_player_id", "does not match the target id")
	}
	now := s.clock.Now()

	if res := validation.ValidateTeamPlayer(in, now); !res.Valid() {
		s.log.Debug().Int64("team_player_id", id).Interface("field_errors", res.FieldErrors()).Msg("team player validation failed")
		return model.TeamPlayer{}, invalidResult(res)
	}

	current, err := s.teamPlayers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.TeamPlayer{}, notFound("team player", id)
		}
		return model.TeamPlayer{}, storeFailure(s.log, err, "load team player failed")
	}

	var updated model.TeamPlayer
	if in.LeftDate != nil {
		updated, err = current.MarkAsLeft(*in.LeftDate, actor, now)
		if err != nil {
			// Entity invariant violations surface as field errors, never as
			// raw errors past the service boundary.
			return model.TeamPlayer{}, invalidField("left_date", err.Error())
		}
	} else {
		updated = current.Touched(actor, now)
	}

	out, err := s.teamPlayers.Update(ctx, updated)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.TeamPlayer{}, notFound("team player", id)
		}
		return model.TeamPlayer{}, storeFailure(s.log, err, "update team player failed")
	}
	s.log.Info().Int64("team_player_id", id).Str("actor", actor).Msg("team assignment updated")
	return out, nil
}

// RemovePlayerFromTeam marks a membership as left. The left-date bounds are
// checked here before the entity's own guards run; the duplication is
// intentional so a bad date never even loads into the transition.
func (s *teamPlayerService) RemovePlayerFromTeam(ctx context.Context, id int64, leftDate time.Time, actor string) (model.TeamPlayer, error) {
	if err := requireActor(actor); err != nil {
		return model.TeamPlayer{}, err
	}
	if id <= 0 {
		return model.TeamPlayer{}, invalidField("team_player_id", "must be > 0")
	}
	now := s.clock.Now()
	if leftDate.IsZero() {
		return model.TeamPlayer{}, invalidField("left_date", "must be set")
	}
	if leftDate.After(now) {
		return model.TeamPlayer{}, invalidField("left_date", "must not be in the future")
	}

	current, err := s.teamPlayers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.TeamPlayer{}, notFound("team player", id)
		}
		return model.TeamPlayer{}, storeFailure(s.log, err, "load team player failed")
	}
	if !leftDate.After(current.JoinedDate) {
		return model.TeamPlayer{}, invalidField("left_date", "must be after joined_date")
	}

	updated, err := current.MarkAsLeft(leftDate, actor, now)
	if err != nil {
		return model.TeamPlayer{}, invalidField("left_date", err.Error())
	}

	out, err := s.teamPlayers.Update(ctx, updated)
	if err != nil {
		return model.TeamPlayer{}, storeFailure(s.log, err, "update team player failed")
	}
	s.log.Info().Int64("team_player_id", id).Time("left_date", leftDate).Str("actor", actor).Msg("player removed from team")
	return out, nil
}

func (s *teamPlayerService) GetTeamAssignment(ctx context.Context, id int64) (model.TeamPlayer, error) {
	if id <= 0 {
		return model.TeamPlayer{}, invalidField("team_player_id", "must be > 0")
	}
	out, err := s.teamPlayers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.TeamPlayer{}, notFound("team player", id)
		}
		return model.TeamPlayer{}, storeFailure(s.log, err, "get team player failed")
	}
	return out, nil
}

func (s *teamPlayerService) ListMemberships(ctx context.Context, playerID int64, includeInactive bool) ([]model.TeamPlayer, error) {
	if playerID <= 0 {
		return nil, invalidField("player_id", "must be > 0")
	}
	out, err := s.teamPlayers.ListByPlayer(ctx, playerID, includeInactive)
	if err != nil {
		return nil, storeFailure(s.log, err, "list memberships failed")
	}
	return out, nil
}

func (s *teamPlayerService) ListActiveMemberships(ctx context.Context, playerID int64) ([]model.TeamPlayer, error) {
	if playerID <= 0 {
		return nil, invalidField("player_id", "must be > 0")
	}
	out, err := s.teamPlayers.ListActiveByPlayer(ctx, playerID)
	if err != nil {
		return nil, storeFailure(s.log, err, "list active memberships failed")
	}
	return out, nil
}
