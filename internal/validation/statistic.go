package validation

import (
	"time"

	"github.com/openroster/roster-stats-service/internal/model"
)

const (
	maxMinutesPlayed = 120
	minJerseyNumber  = 1
	maxJerseyNumber  = 99
)

// ValidateStatistic checks every field rule for a per-game statistic input.
func ValidateStatistic(in model.StatisticInput, now time.Time) Result {
	var res Result

	if in.TeamPlayerID <= 0 {
		res.add("team_player_id", "must be > 0")
	}

	switch {
	case in.GameDate.IsZero():
		res.add("game_date", "must be set")
	case dateOnly(in.GameDate).After(dateOnly(now)):
		res.add("game_date", "must not be in the future")
	}

	if in.MinutesPlayed < 0 || in.MinutesPlayed > maxMinutesPlayed {
		res.add("minutes_played", "must be between 0 and 120")
	}
	if in.JerseyNumber < minJerseyNumber || in.JerseyNumber > maxJerseyNumber {
		res.add("jersey_number", "must be between 1 and 99")
	}
	if in.Goals < 0 {
		res.add("goals", "must be >= 0")
	}
	if in.Assists < 0 {
		res.add("assists", "must be >= 0")
	}

	return res
}
