package dto

import (
	"time"

	"career-coach/internal/domain/user"

	"github.com/google/uuid"
)

type UserProfileResponse struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	Industry   *string   `json:"industry"`
	Experience *int      `json:"experience"`
	Bio        string    `json:"bio"`
	Skills     []string  `json:"skills"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewUserProfileResponse(u user.User) UserProfileResponse {
	skills := u.Skills
	if skills == nil {
		skills = []string{}
	}
	return UserProfileResponse{
		ID:         u.ID,
		Email:      u.Email,
		Industry:   u.Industry,
		Experience: u.Experience,
		Bio:        u.Bio,
		Skills:     skills,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

type OnboardingStatusResponse struct {
	IsOnboarded bool `json:"is_onboarded"`
}
