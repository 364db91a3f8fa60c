package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/openroster/roster-stats-service/internal/model"
	"github.com/openroster/roster-stats-service/internal/repository"
	"github.com/openroster/roster-stats-service/internal/validation"
)

type playerService struct {
	players repository.PlayerRepository
	clock   clockwork.Clock
	log     zerolog.Logger
}

func NewPlayerService(players repository.PlayerRepository, clock clockwork.Clock, logger zerolog.Logger) PlayerService {
	return &playerService{
		players: players,
		clock:   clockOrReal(clock),
		log:     componentLogger(logger, "player"),
	}
}

func (s *playerService) CreatePlayer(ctx context.Context, in model.PlayerInput, actor string) (model.Player, error) {
	if err := requireActor(actor); err != nil {
		return model.Player{}, err
	}
	start := time.Now()
	now := s.clock.Now()

	if res := validation.ValidatePlayer(in, now); !res.Valid() {
		s.log.Debug().Interface("field_errors", res.FieldErrors()).Msg("player validation failed")
		return model.Player{}, invalidResult(res)
	}

	out, err := s.players.Create(ctx, model.NewPlayer(in, actor, now))
	if err != nil {
		return model.Player{}, storeFailure(s.log, err, "create player failed")
	}
	s.log.Info().Dur("took", time.Since(start)).Int64("player_id", out.ID).Str("actor", actor).Msg("player created")
	return out, nil
}

// UpdatePlayer replaces every caller-editable field. Identity and
// created-audit fields are carried over from the stored record.
func (s *playerService) UpdatePlayer(ctx context.Context, id int64, in model.PlayerInput, actor string) (model.Player, error) {
	if err := requireActor(actor); err != nil {
		return model.Player{}, err
	}
	if id <= 0 {
		return model.Player{}, invalidField("id", "must be > 0")
	}
	now := s.clock.Now()

	if res := validation.ValidatePlayer(in, now); !res.Valid() {
		s.log.Debug().Int64("player_id", id).Interface("field_errors", res.FieldErrors()).Msg("player validation failed")
		return model.Player{}, invalidResult(res)
	}

	current, err := s.players.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Player{}, notFound("player", id)
		}
		return model.Player{}, storeFailure(s.log, err, "load player failed")
	}

	out, err := s.players.Update(ctx, current.WithUpdate(in, actor, now))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Player{}, notFound("player", id)
		}
		return model.Player{}, storeFailure(s.log, err, "update player failed")
	}
	s.log.Info().Int64("player_id", id).Str("actor", actor).Msg("player updated")
	return out, nil
}

func (s *playerService) DeletePlayer(ctx context.Context, id int64, actor string) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if id <= 0 {
		return invalidField("id", "must be > 0")
	}
	if err := s.players.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("player", id)
		}
		return storeFailure(s.log, err, "delete player failed")
	}
	s.log.Info().Int64("player_id", id).Str("actor", actor).Msg("player deleted")
	return nil
}

func (s *playerService) GetPlayer(ctx context.Context, id int64) (model.Player, error) {
	if id <= 0 {
		return model.Player{}, invalidField("id", "must be > 0")
	}
	out, err := s.players.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Player{}, notFound("player", id)
		}
		return model.Player{}, storeFailure(s.log, err, "get player failed")
	}
	return out, nil
}

func (s *playerService) ListPlayers(ctx context.Context, page repository.Page) (repository.PageResult[model.Player], error) {
	p := normalizePage(page)
	res, err := s.players.List(ctx, p)
	if err != nil {
		return repository.PageResult[model.Player]{}, storeFailure(s.log, err, "list players failed")
	}
	return res, nil
}

func (s *playerService) ListPlayersByUser(ctx context.Context, userID string) ([]model.Player, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, invalidField("user_id", "must not be empty")
	}
	out, err := s.players.ListByUser(ctx, strings.TrimSpace(userID))
	if err != nil {
		return nil, storeFailure(s.log, err, "list players by user failed")
	}
	return out, nil
}

func normalizePage(p repository.Page) repository.Page {
	if p.Limit <= 0 {
		p.Limit = 50
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
