package model

import (
	"time"

	"github.com/google/uuid"
)

/* =============================================================================
   MODEL: topic_tests
   - speaking test offered after every 5th lesson of a grade
   - criteria weights MUST sum to exactly 100 (enforced in the DTO layer)
============================================================================= */

// EvaluationCriteria holds the rubric weights, in percent.
type EvaluationCriteria struct {
	Relevance  int `gorm:"column:topic_test_criteria_relevance;not null" json:"relevance" validate:"gte=0,lte=100"`
	Grammar    int `gorm:"column:topic_test_criteria_grammar;not null" json:"grammar" validate:"gte=0,lte=100"`
	Fluency    int `gorm:"column:topic_test_criteria_fluency;not null" json:"fluency" validate:"gte=0,lte=100"`
	Vocabulary int `gorm:"column:topic_test_criteria_vocabulary;not null" json:"vocabulary" validate:"gte=0,lte=100"`
}

// WeightSum returns relevance+grammar+fluency+vocabulary.
func (c EvaluationCriteria) WeightSum() int {
	return c.Relevance + c.Grammar + c.Fluency + c.Vocabulary
}

type TopicTestModel struct {
	TopicTestID      uuid.UUID `gorm:"column:topic_test_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"topic_test_id"`
	TopicTestGradeID uuid.UUID `gorm:"column:topic_test_grade_id;type:uuid;not null;uniqueIndex:uq_topic_tests_grade_lesson,priority:1" json:"topic_test_grade_id"`

	// the lesson number after which this topic test unlocks (5, 10, 15, 20)
	TopicTestAfterLesson int `gorm:"column:topic_test_after_lesson;not null;uniqueIndex:uq_topic_tests_grade_lesson,priority:2" json:"topic_test_after_lesson"`

	TopicTestTopic    string `gorm:"column:topic_test_topic;type:varchar(200);not null" json:"topic_test_topic"`
	TopicTestPrompt   string `gorm:"column:topic_test_prompt;type:text;not null" json:"topic_test_prompt"`
	TopicTestDuration int    `gorm:"column:topic_test_duration;not null;default:120" json:"topic_test_duration"` // seconds

	TopicTestCriteria EvaluationCriteria `gorm:"embedded" json:"topic_test_criteria"`

	TopicTestIsActive bool `gorm:"column:topic_test_is_active;not null;default:true" json:"topic_test_is_active"`

	TopicTestCreatedAt time.Time `gorm:"column:topic_test_created_at;not null;autoCreateTime" json:"topic_test_created_at"`
	TopicTestUpdatedAt time.Time `gorm:"column:topic_test_updated_at;not null;autoUpdateTime" json:"topic_test_updated_at"`
}

// TableName overrides the table name used by GORM.
func (TopicTestModel) TableName() string {
	return "topic_tests"
}
