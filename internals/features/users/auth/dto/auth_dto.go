package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "englishku_backend/internals/features/users/user/model"
)

/* =========================================================
   REQUESTS
========================================================= */

type RegisterRequest struct {
	Firstname string `json:"firstname" validate:"required,min=1,max=100"`
	Lastname  string `json:"lastname" validate:"required,min=1,max=100"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
}

func (r *RegisterRequest) Normalize() {
	r.Firstname = strings.TrimSpace(r.Firstname)
	r.Lastname = strings.TrimSpace(r.Lastname)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type UpdateProfileRequest struct {
	Firstname *string `json:"firstname" validate:"omitempty,min=1,max=100"`
	Lastname  *string `json:"lastname" validate:"omitempty,min=1,max=100"`
	Email     *string `json:"email" validate:"omitempty,email,max=255"`
}

func (r UpdateProfileRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Firstname != nil {
		updates["user_firstname"] = strings.TrimSpace(*r.Firstname)
	}
	if r.Lastname != nil {
		updates["user_lastname"] = strings.TrimSpace(*r.Lastname)
	}
	if r.Email != nil {
		updates["user_email"] = strings.ToLower(strings.TrimSpace(*r.Email))
	}
	return updates
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
}

/* =========================================================
   RESPONSES
========================================================= */

type UserResponse struct {
	UserID         uuid.UUID         `json:"user_id"`
	Firstname      string            `json:"firstname"`
	Lastname       string            `json:"lastname"`
	Email          string            `json:"email"`
	Role           string            `json:"role"`
	CompletedTests []m.CompletedTest `json:"completed_tests"`
	CreatedAt      time.Time         `json:"created_at"`
}

func FromUserModel(user m.UserModel) UserResponse {
	completed := []m.CompletedTest(user.UserCompletedTests)
	if completed == nil {
		completed = []m.CompletedTest{}
	}
	return UserResponse{
		UserID:         user.UserID,
		Firstname:      user.UserFirstname,
		Lastname:       user.UserLastname,
		Email:          user.UserEmail,
		Role:           user.UserRole,
		CompletedTests: completed,
		CreatedAt:      user.UserCreatedAt,
	}
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
