package controller

import (
	"testing"

	"github.com/google/uuid"

	"englishku_backend/internals/constants"
)

func TestCanManageResult(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	tests := []struct {
		name   string
		caller uuid.UUID
		role   string
		want   bool
	}{
		{"owner with user role", owner, constants.RoleUser, true},
		{"other user", stranger, constants.RoleUser, false},
		{"admin on someone else's attempt", stranger, constants.RoleAdmin, true},
		{"other user with unknown role", stranger, "moderator", false},
		{"owner regardless of role", owner, "", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanManageResult(owner, tc.caller, tc.role); got != tc.want {
				t.Fatalf("CanManageResult = %v, want %v", got, tc.want)
			}
		})
	}
}
