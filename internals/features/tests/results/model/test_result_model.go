package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =============================================================================
   MODEL: test_results
   - one attempt of a regular (speech/listening) test
============================================================================= */

// TestResultAnswer is one answered question inside an attempt.
type TestResultAnswer struct {
	QuestionID    uuid.UUID `json:"question_id"`
	UserAnswer    string    `json:"user_answer"`
	CorrectAnswer string    `json:"correct_answer"`
	IsCorrect     bool      `json:"is_correct"`
	Score         int       `json:"score"`
}

type TestResultModel struct {
	TestResultID       uuid.UUID `gorm:"column:test_result_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"test_result_id"`
	TestResultUserID   uuid.UUID `gorm:"column:test_result_user_id;type:uuid;not null;index:idx_test_results_user_test,priority:1" json:"test_result_user_id"`
	TestResultTestID   uuid.UUID `gorm:"column:test_result_test_id;type:uuid;not null;index:idx_test_results_user_test,priority:2" json:"test_result_test_id"`
	TestResultLessonID uuid.UUID `gorm:"column:test_result_lesson_id;type:uuid;not null;index:idx_test_results_grade_lesson,priority:2" json:"test_result_lesson_id"`
	TestResultGradeID  uuid.UUID `gorm:"column:test_result_grade_id;type:uuid;not null;index:idx_test_results_grade_lesson,priority:1" json:"test_result_grade_id"`

	TestResultScore          int `gorm:"column:test_result_score;not null" json:"test_result_score"`
	TestResultTotalQuestions int `gorm:"column:test_result_total_questions;not null" json:"test_result_total_questions"`
	TestResultCorrectAnswers int `gorm:"column:test_result_correct_answers;not null" json:"test_result_correct_answers"`
	TestResultTimeTaken      int `gorm:"column:test_result_time_taken;not null;default:0" json:"test_result_time_taken"` // seconds

	TestResultAnswers       datatypes.JSONSlice[TestResultAnswer] `gorm:"column:test_result_answers;type:jsonb" json:"test_result_answers"`
	TestResultFeedback      string                                `gorm:"column:test_result_feedback;type:text;not null;default:''" json:"test_result_feedback"`
	TestResultAttemptNumber int                                   `gorm:"column:test_result_attempt_number;not null;default:1" json:"test_result_attempt_number"`

	TestResultCreatedAt time.Time `gorm:"column:test_result_created_at;not null;autoCreateTime;index:idx_test_results_created_desc,sort:desc" json:"test_result_created_at"`
	TestResultUpdatedAt time.Time `gorm:"column:test_result_updated_at;not null;autoUpdateTime" json:"test_result_updated_at"`
}

// TableName overrides the table name used by GORM.
func (TestResultModel) TableName() string {
	return "test_results"
}

// ClampScore keeps a submitted score inside 0..100.
func ClampScore(score float64) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return int(score + 0.5)
}
