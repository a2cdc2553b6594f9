package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// stamp returns the last-modified pair recorded on every update. A blank
// actor is stored as NULL.
func stamp(now time.Time, actor string) (*time.Time, *string) {
	var by *string
	if a := strings.TrimSpace(actor); a != "" {
		by = &a
	}
	return &now, by
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// today truncates t to midnight UTC for date-only comparisons.
func today(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func parseID(s, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, invalid("%s must be a valid UUID", field)
	}
	return id, nil
}
