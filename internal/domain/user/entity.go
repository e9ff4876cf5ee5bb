package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("user not found")

// User is the identity-provider-linked profile. Industry stays nil
// until onboarding completes.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string

	Industry   *string
	Experience *int
	Bio        string
	Skills     []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u User) IsOnboarded() bool {
	return u.Industry != nil && *u.Industry != ""
}

// ProfileUpdate carries the onboarding fields written in one shot.
type ProfileUpdate struct {
	Industry   string
	Experience int
	Bio        string
	Skills     []string
}
