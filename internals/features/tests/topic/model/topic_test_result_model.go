package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =============================================================================
   MODEL: topic_test_results
============================================================================= */

// Correction is one suggested fix inside the AI feedback.
type Correction struct {
	Original    string `json:"original"`
	Corrected   string `json:"corrected"`
	Explanation string `json:"explanation"`
}

// AIEvaluation is the structured outcome of the speech evaluation.
type AIEvaluation struct {
	RelevanceScore  int          `json:"relevance_score"`
	GrammarScore    int          `json:"grammar_score"`
	FluencyScore    int          `json:"fluency_score"`
	VocabularyScore int          `json:"vocabulary_score"`
	OverallScore    int          `json:"overall_score"`
	Feedback        string       `json:"feedback"`
	Corrections     []Correction `json:"corrections"`
	Strengths       []string     `json:"strengths"`
	Improvements    []string     `json:"improvements"`
}

type TopicTestResultModel struct {
	TopicTestResultID          uuid.UUID `gorm:"column:topic_test_result_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"topic_test_result_id"`
	TopicTestResultUserID      uuid.UUID `gorm:"column:topic_test_result_user_id;type:uuid;not null;index:idx_topic_test_results_user" json:"topic_test_result_user_id"`
	TopicTestResultTopicTestID uuid.UUID `gorm:"column:topic_test_result_topic_test_id;type:uuid;not null;index:idx_topic_test_results_topic_test" json:"topic_test_result_topic_test_id"`
	TopicTestResultGradeID     uuid.UUID `gorm:"column:topic_test_result_grade_id;type:uuid;not null;index:idx_topic_test_results_grade" json:"topic_test_result_grade_id"`

	TopicTestResultLessonNumber int    `gorm:"column:topic_test_result_lesson_number;not null" json:"topic_test_result_lesson_number"`
	TopicTestResultSpokenText   string `gorm:"column:topic_test_result_spoken_text;type:text;not null" json:"topic_test_result_spoken_text"`

	TopicTestResultEvaluation datatypes.JSONType[AIEvaluation] `gorm:"column:topic_test_result_evaluation;type:jsonb" json:"topic_test_result_evaluation"`

	TopicTestResultDuration  int `gorm:"column:topic_test_result_duration;not null;default:0" json:"topic_test_result_duration"` // seconds
	TopicTestResultWordCount int `gorm:"column:topic_test_result_word_count;not null;default:0" json:"topic_test_result_word_count"`

	TopicTestResultCreatedAt time.Time `gorm:"column:topic_test_result_created_at;not null;autoCreateTime" json:"topic_test_result_created_at"`
}

// TableName overrides the table name used by GORM.
func (TopicTestResultModel) TableName() string {
	return "topic_test_results"
}

// CountWords counts whitespace-separated words of the spoken text.
func CountWords(s string) int {
	return len(strings.Fields(s))
}

// BeforeCreate derives the word count from the spoken text.
func (m *TopicTestResultModel) BeforeCreate(_ *gorm.DB) error {
	m.TopicTestResultWordCount = CountWords(m.TopicTestResultSpokenText)
	return nil
}
