package validation

import (
	"net/url"
	"strings"
	"time"

	"github.com/openroster/roster-stats-service/internal/model"
)

const (
	maxNameLen     = 200
	maxPhotoURLLen = 500
	maxAgeYears    = 100
)

// ValidatePlayer checks every field rule for creating or updating a player.
func ValidatePlayer(in model.PlayerInput, now time.Time) Result {
	var res Result

	if strings.TrimSpace(in.UserID) == "" {
		res.add("user_id", "must not be empty")
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		res.add("name", "must not be empty")
	} else if len([]rune(name)) > maxNameLen {
		res.add("name", "length must be <= 200")
	}

	today := dateOnly(now)
	switch {
	case in.DateOfBirth.IsZero():
		res.add("date_of_birth", "must be set")
	case !dateOnly(in.DateOfBirth).Before(today):
		res.add("date_of_birth", "must be in the past")
	case dateOnly(in.DateOfBirth).Before(today.AddDate(-maxAgeYears, 0, 0)):
		res.add("date_of_birth", "must not be more than 100 years ago")
	}

	if _, ok := model.CanonicalGender(in.Gender); !ok {
		res.add("gender", "must be one of Male, Female, Non-binary, Prefer not to say")
	}

	if photo := strings.TrimSpace(in.PhotoURL); photo != "" {
		if len([]rune(photo)) > maxPhotoURLLen {
			res.add("photo_url", "length must be <= 500")
		} else if !isAbsoluteHTTPURL(photo) {
			res.add("photo_url", "must be an absolute http(s) URL")
		}
	}

	return res
}

func isAbsoluteHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// dateOnly strips the time-of-day component so date rules compare calendar
// days, not instants.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
