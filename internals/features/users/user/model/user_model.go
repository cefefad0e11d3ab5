package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"englishku_backend/internals/constants"
)

/* =============================================================================
   MODEL: users
============================================================================= */

// CompletedTest is one entry of the per-user best-score roll-up.
// Only regular tests land here, mock tests keep their own result records.
type CompletedTest struct {
	TestID      uuid.UUID `json:"test_id"`
	Score       int       `json:"score"`
	CompletedAt string    `json:"completed_at"`
}

type UserModel struct {
	UserID        uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	UserFirstname string    `gorm:"column:user_firstname;type:varchar(100);not null" json:"user_firstname"`
	UserLastname  string    `gorm:"column:user_lastname;type:varchar(100);not null" json:"user_lastname"`
	UserEmail     string    `gorm:"column:user_email;type:varchar(255);not null;uniqueIndex:uq_users_email" json:"user_email"`
	UserPassword  string    `gorm:"column:user_password;type:varchar(255);not null" json:"-"`
	UserRole      string    `gorm:"column:user_role;type:varchar(16);not null;default:'user'" json:"user_role"`

	UserCompletedTests datatypes.JSONSlice[CompletedTest] `gorm:"column:user_completed_tests;type:jsonb" json:"user_completed_tests"`

	UserCreatedAt time.Time `gorm:"column:user_created_at;not null;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;not null;autoUpdateTime" json:"user_updated_at"`
}

// TableName overrides the table name used by GORM.
func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) IsAdmin() bool {
	return u.UserRole == constants.RoleAdmin
}

// UpsertCompletedTest keeps the best score per test.
func (u *UserModel) UpsertCompletedTest(testID uuid.UUID, score int, completedAt time.Time) {
	for i := range u.UserCompletedTests {
		if u.UserCompletedTests[i].TestID == testID {
			if score > u.UserCompletedTests[i].Score {
				u.UserCompletedTests[i].Score = score
				u.UserCompletedTests[i].CompletedAt = completedAt.UTC().Format(time.RFC3339)
			}
			return
		}
	}
	u.UserCompletedTests = append(u.UserCompletedTests, CompletedTest{
		TestID:      testID,
		Score:       score,
		CompletedAt: completedAt.UTC().Format(time.RFC3339),
	})
}

// RemoveCompletedTest drops the roll-up entry for a test.
func (u *UserModel) RemoveCompletedTest(testID uuid.UUID) {
	out := u.UserCompletedTests[:0]
	for _, ct := range u.UserCompletedTests {
		if ct.TestID != testID {
			out = append(out, ct)
		}
	}
	u.UserCompletedTests = out
}
