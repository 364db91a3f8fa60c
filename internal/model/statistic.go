package model

import "time"

// PlayerStatistic is a single game's performance record tied to one team
// membership. It has no internal state machine; updates replace every field
// except identity and created-audit.
type PlayerStatistic struct {
	ID            int64     `json:"id"`
	TeamPlayerID  int64     `json:"team_player_id"`
	GameDate      time.Time `json:"game_date"`
	MinutesPlayed int       `json:"minutes_played"`
	IsStarter     bool      `json:"is_starter"`
	JerseyNumber  int       `json:"jersey_number"`
	Goals         int       `json:"goals"`
	Assists       int       `json:"assists"`
	Audit
}

// StatisticInput is the caller-supplied shape for statistic operations.
// StatisticID is only meaningful on updates, where it must match the target
// record.
type StatisticInput struct {
	StatisticID   int64     `json:"statistic_id,omitempty"`
	TeamPlayerID  int64     `json:"team_player_id"`
	GameDate      time.Time `json:"game_date"`
	MinutesPlayed int       `json:"minutes_played"`
	IsStarter     bool      `json:"is_starter"`
	JerseyNumber  int       `json:"jersey_number"`
	Goals         int       `json:"goals"`
	Assists       int       `json:"assists"`
}

// NewPlayerStatistic builds a statistic from validated input, stamping
// created-audit fields.
func NewPlayerStatistic(in StatisticInput, actor string, now time.Time) PlayerStatistic {
	return PlayerStatistic{
		TeamPlayerID:  in.TeamPlayerID,
		GameDate:      in.GameDate,
		MinutesPlayed: in.MinutesPlayed,
		IsStarter:     in.IsStarter,
		JerseyNumber:  in.JerseyNumber,
		Goals:         in.Goals,
		Assists:       in.Assists,
		Audit:         newAudit(actor, now),
	}
}

// WithUpdate replaces every caller-editable field from the input, carrying
// identity and created-audit forward.
func (s PlayerStatistic) WithUpdate(in StatisticInput, actor string, now time.Time) PlayerStatistic {
	s.TeamPlayerID = in.TeamPlayerID
	s.GameDate = in.GameDate
	s.MinutesPlayed = in.MinutesPlayed
	s.IsStarter = in.IsStarter
	s.JerseyNumber = in.JerseyNumber
	s.Goals = in.Goals
	s.Assists = in.Assists
	s.Audit = s.Audit.modified(actor, now)
	return s
}
