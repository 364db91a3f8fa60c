package model

import (
	"errors"
	"strings"
	"time"
)

// Entity-level invariant violations for the membership state machine. The
// service layer remaps these into the outcome channel; they never reach a
// caller as-is.
var (
	ErrMembershipAlreadyLeft = errors.New("membership is already marked as left")
	ErrLeftBeforeJoin        = errors.New("left date must be after the joined date")
	ErrLeftInFuture          = errors.New("left date must not be in the future")
)

// TeamPlayer represents one player's membership in a team within a
// championship. A record is Active while LeftDate is unset; marking it left
// is terminal — rejoining the same team requires a new record.
type TeamPlayer struct {
	ID               int64      `json:"id"`
	PlayerID         int64      `json:"player_id"`
	TeamName         string     `json:"team_name"`
	ChampionshipName string     `json:"championship_name"`
	JoinedDate       time.Time  `json:"joined_date"`
	LeftDate         *time.Time `json:"left_date,omitempty"`
	Audit
}

// TeamPlayerInput is the caller-supplied shape for membership operations.
// TeamPlayerID is only meaningful on updates, where it must match the target
// record.
type TeamPlayerInput struct {
	TeamPlayerID     int64      `json:"team_player_id,omitempty"`
	PlayerID         int64      `json:"player_id"`
	TeamName         string     `json:"team_name"`
	ChampionshipName string     `json:"championship_name"`
	JoinedDate       time.Time  `json:"joined_date"`
	LeftDate         *time.Time `json:"left_date,omitempty"`
}

// NewTeamPlayer builds a membership from validated input. A LeftDate in the
// input produces a historical (already left) record.
func NewTeamPlayer(in TeamPlayerInput, actor string, now time.Time) TeamPlayer {
	tp := TeamPlayer{
		PlayerID:         in.PlayerID,
		TeamName:         strings.TrimSpace(in.TeamName),
		ChampionshipName: strings.TrimSpace(in.ChampionshipName),
		JoinedDate:       in.JoinedDate,
		Audit:            newAudit(actor, now),
	}
	if in.LeftDate != nil {
		left := *in.LeftDate
		tp.LeftDate = &left
	}
	return tp
}

// IsActive reports whether the membership is still current.
func (tp TeamPlayer) IsActive() bool { return tp.LeftDate == nil }

// MarkAsLeft transitions an active membership to left. The transition is
// one-way: an already-left record is rejected, as is a left date on or before
// the joined date or after now.
func (tp TeamPlayer) MarkAsLeft(leftDate time.Time, actor string, now time.Time) (TeamPlayer, error) {
	if !tp.IsActive() {
		return TeamPlayer{}, ErrMembershipAlreadyLeft
	}
	if !leftDate.After(tp.JoinedDate) {
		return TeamPlayer{}, ErrLeftBeforeJoin
	}
	if leftDate.After(now) {
		return TeamPlayer{}, ErrLeftInFuture
	}
	tp.LeftDate = &leftDate
	tp.Audit = tp.Audit.modified(actor, now)
	return tp, nil
}

// Touched refreshes the updated-audit fields without changing state. Used by
// updates that carry no left date.
func (tp TeamPlayer) Touched(actor string, now time.Time) TeamPlayer {
	tp.Audit = tp.Audit.modified(actor, now)
	return tp
}
