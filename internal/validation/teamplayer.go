package validation

import (
	"strings"
	"time"

	"github.com/openroster/roster-stats-service/internal/model"
)

// ValidateTeamPlayer checks every field rule for a membership input. The
// active-duplicate invariant is a cross-record concern and lives in the
// service layer, not here.
func ValidateTeamPlayer(in model.TeamPlayerInput, now time.Time) Result {
	var res Result

	if in.PlayerID <= 0 {
		res.add("player_id", "must be > 0")
	}

	team := strings.TrimSpace(in.TeamName)
	if team == "" {
		res.add("team_name", "must not be empty")
	} else if len([]rune(team)) > maxNameLen {
		res.add("team_name", "length must be <= 200")
	}

	champ := strings.TrimSpace(in.ChampionshipName)
	if champ == "" {
		res.add("championship_name", "must not be empty")
	} else if len([]rune(champ)) > maxNameLen {
		res.add("championship_name", "length must be <= 200")
	}

	switch {
	case in.JoinedDate.IsZero():
		res.add("joined_date", "must be set")
	case in.JoinedDate.After(now.AddDate(1, 0, 0)):
		res.add("joined_date", "must not be more than 1 year in the future")
	}

	if in.LeftDate != nil {
		switch {
		case !in.JoinedDate.IsZero() && !in.LeftDate.After(in.JoinedDate):
			res.add("left_date", "must be after joined_date")
		case in.LeftDate.After(now):
			res.add("left_date", "must not be in the future")
		}
	}

	return res
}
