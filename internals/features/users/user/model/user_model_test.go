package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestUpsertCompletedTestKeepsBestScore(t *testing.T) {
	testID := uuid.New()
	now := time.Now()
	var u UserModel

	u.UpsertCompletedTest(testID, 60, now)
	if len(u.UserCompletedTests) != 1 || u.UserCompletedTests[0].Score != 60 {
		t.Fatalf("after first attempt: %+v", u.UserCompletedTests)
	}

	// a worse retake must not lower the stored score
	u.UpsertCompletedTest(testID, 40, now.Add(time.Hour))
	if u.UserCompletedTests[0].Score != 60 {
		t.Fatalf("score lowered to %d after worse retake", u.UserCompletedTests[0].Score)
	}

	// a better retake replaces it
	u.UpsertCompletedTest(testID, 95, now.Add(2*time.Hour))
	if u.UserCompletedTests[0].Score != 95 {
		t.Fatalf("score = %d after better retake, want 95", u.UserCompletedTests[0].Score)
	}
	if len(u.UserCompletedTests) != 1 {
		t.Fatalf("roll-up grew to %d entries for one test", len(u.UserCompletedTests))
	}

	// a second test gets its own entry
	u.UpsertCompletedTest(uuid.New(), 50, now)
	if len(u.UserCompletedTests) != 2 {
		t.Fatalf("roll-up has %d entries, want 2", len(u.UserCompletedTests))
	}
}

func TestRemoveCompletedTest(t *testing.T) {
	keep := uuid.New()
	drop := uuid.New()
	now := time.Now()

	var u UserModel
	u.UpsertCompletedTest(keep, 80, now)
	u.UpsertCompletedTest(drop, 90, now)

	u.RemoveCompletedTest(drop)
	if len(u.UserCompletedTests) != 1 {
		t.Fatalf("roll-up has %d entries, want 1", len(u.UserCompletedTests))
	}
	if u.UserCompletedTests[0].TestID != keep {
		t.Fatal("wrong entry removed")
	}

	// removing an unknown id is a no-op
	u.RemoveCompletedTest(uuid.New())
	if len(u.UserCompletedTests) != 1 {
		t.Fatal("no-op removal changed the roll-up")
	}
}

func TestIsAdmin(t *testing.T) {
	if (&UserModel{UserRole: "user"}).IsAdmin() {
		t.Error("regular user reported as admin")
	}
	if !(&UserModel{UserRole: "admin"}).IsAdmin() {
		t.Error("admin not recognized")
	}
}
