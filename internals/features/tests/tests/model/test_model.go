package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

/* =============================================================================
   ENUM-like: test type ('speech','listening')
============================================================================= */
type TestType string

const (
	TestTypeSpeech    TestType = "speech"
	TestTypeListening TestType = "listening"
)

func (t TestType) String() string { return string(t) }
func (t TestType) Valid() bool {
	switch t {
	case TestTypeSpeech, TestTypeListening:
		return true
	default:
		return false
	}
}

func (t *TestType) Scan(value any) error {
	if value == nil {
		*t = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = TestType(v)
	case []byte:
		*t = TestType(string(v))
	default:
		return fmt.Errorf("unsupported type for TestType: %T", value)
	}
	if !t.Valid() {
		return fmt.Errorf("invalid TestType: %q", *t)
	}
	return nil
}

func (t TestType) Value() (driver.Value, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid TestType: %q", t)
	}
	return string(t), nil
}

/* =============================================================================
   MODEL: tests
============================================================================= */
type TestModel struct {
	TestID       uuid.UUID `gorm:"column:test_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"test_id"`
	TestLessonID uuid.UUID `gorm:"column:test_lesson_id;type:uuid;not null;index:idx_tests_lesson" json:"test_lesson_id"`
	TestGradeID  uuid.UUID `gorm:"column:test_grade_id;type:uuid;not null;index:idx_tests_grade" json:"test_grade_id"`

	TestTitle      string   `gorm:"column:test_title;type:varchar(180);not null" json:"test_title"`
	TestType       TestType `gorm:"column:test_type;type:varchar(16);not null" json:"test_type"`
	TestDifficulty string   `gorm:"column:test_difficulty;type:varchar(16);not null;default:'medium'" json:"test_difficulty"`
	TestIsActive   bool     `gorm:"column:test_is_active;not null;default:true" json:"test_is_active"`

	TestCreatedAt time.Time `gorm:"column:test_created_at;not null;autoCreateTime" json:"test_created_at"`
	TestUpdatedAt time.Time `gorm:"column:test_updated_at;not null;autoUpdateTime" json:"test_updated_at"`
}

// TableName overrides the table name used by GORM.
func (TestModel) TableName() string {
	return "tests"
}
