// Package model contains domain entities, the input shapes they are built
// from, and the pure aggregation over statistics. Entities own their state
// transitions; every transition returns a new value instead of mutating in
// place, so audit fields can only move through the functions defined here.
package model

import (
	"strings"
	"time"
)

// Canonical spellings of the gender enumeration. Input is matched
// case-insensitively but stored in this form.
const (
	GenderMale        = "Male"
	GenderFemale      = "Female"
	GenderNonBinary   = "Non-binary"
	GenderUndisclosed = "Prefer not to say"
)

// Audit carries who created and last modified a record. Created* is set once;
// Updated* stays zero until the first explicit modification and is never
// cleared afterwards.
type Audit struct {
	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	UpdatedBy string    `json:"updated_by,omitempty"`
}

func newAudit(actor string, now time.Time) Audit {
	return Audit{CreatedAt: now, CreatedBy: actor}
}

func (a Audit) modified(actor string, now time.Time) Audit {
	a.UpdatedAt = now
	a.UpdatedBy = actor
	return a
}

// Player represents an athlete owned by an application user.
type Player struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Gender      string    `json:"gender,omitempty"`    // empty = unspecified
	PhotoURL    string    `json:"photo_url,omitempty"` // empty = none
	Audit
}

// PlayerInput is the caller-supplied shape for creating or updating a player.
type PlayerInput struct {
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Gender      string    `json:"gender,omitempty"`
	PhotoURL    string    `json:"photo_url,omitempty"`
}

// NewPlayer builds a player from validated input, stamping created-audit
// fields. The ID is left zero for storage to assign.
func NewPlayer(in PlayerInput, actor string, now time.Time) Player {
	gender, _ := CanonicalGender(in.Gender)
	return Player{
		UserID:      strings.TrimSpace(in.UserID),
		Name:        strings.TrimSpace(in.Name),
		DateOfBirth: in.DateOfBirth,
		Gender:      gender,
		PhotoURL:    strings.TrimSpace(in.PhotoURL),
		Audit:       newAudit(actor, now),
	}
}

// WithUpdate replaces every caller-editable field from the input while
// carrying identity and created-audit forward, and stamps updated-audit.
func (p Player) WithUpdate(in PlayerInput, actor string, now time.Time) Player {
	gender, _ := CanonicalGender(in.Gender)
	p.UserID = strings.TrimSpace(in.UserID)
	p.Name = strings.TrimSpace(in.Name)
	p.DateOfBirth = in.DateOfBirth
	p.Gender = gender
	p.PhotoURL = strings.TrimSpace(in.PhotoURL)
	p.Audit = p.Audit.modified(actor, now)
	return p
}

// Age returns full calendar years between the date of birth and now. A
// birthday later in the current year than now means the year is not yet
// complete and is not counted.
func (p Player) Age(now time.Time) int {
	years := now.Year() - p.DateOfBirth.Year()
	beforeBirthday := now.Month() < p.DateOfBirth.Month() ||
		(now.Month() == p.DateOfBirth.Month() && now.Day() < p.DateOfBirth.Day())
	if beforeBirthday {
		years--
	}
	return years
}

// CanonicalGender maps a case-insensitive gender string to its canonical
// spelling. An empty (or all-whitespace) input is valid and maps to empty.
func CanonicalGender(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	for _, g := range []string{GenderMale, GenderFemale, GenderNonBinary, GenderUndisclosed} {
		if strings.EqualFold(s, g) {
			return g, true
		}
	}
	return "", false
}
