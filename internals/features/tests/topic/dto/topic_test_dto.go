package dto

import (
	"strings"

	"github.com/google/uuid"

	m "englishku_backend/internals/features/tests/topic/model"
)

/* =========================================================
   CREATE / UPDATE
========================================================= */

type CriteriaInput struct {
	Relevance  int `json:"relevance" validate:"gte=0,lte=100"`
	Grammar    int `json:"grammar" validate:"gte=0,lte=100"`
	Fluency    int `json:"fluency" validate:"gte=0,lte=100"`
	Vocabulary int `json:"vocabulary" validate:"gte=0,lte=100"`
}

func (c CriteriaInput) ToModel() m.EvaluationCriteria {
	return m.EvaluationCriteria{
		Relevance:  c.Relevance,
		Grammar:    c.Grammar,
		Fluency:    c.Fluency,
		Vocabulary: c.Vocabulary,
	}
}

type CreateTopicTestRequest struct {
	GradeID     uuid.UUID     `json:"topic_test_grade_id" validate:"required"`
	AfterLesson int           `json:"topic_test_after_lesson" validate:"required,gte=1"`
	Topic       string        `json:"topic_test_topic" validate:"required,min=1,max=200"`
	Prompt      string        `json:"topic_test_prompt" validate:"required,min=1"`
	Duration    int           `json:"topic_test_duration" validate:"omitempty,gte=30,lte=600"`
	Criteria    CriteriaInput `json:"topic_test_criteria" validate:"required"`
	IsActive    *bool         `json:"topic_test_is_active"`
}

func (r *CreateTopicTestRequest) Normalize() {
	r.Topic = strings.TrimSpace(r.Topic)
	r.Prompt = strings.TrimSpace(r.Prompt)
}

func (r CreateTopicTestRequest) ToModel() m.TopicTestModel {
	duration := r.Duration
	if duration == 0 {
		duration = 120
	}
	test := m.TopicTestModel{
		TopicTestGradeID:     r.GradeID,
		TopicTestAfterLesson: r.AfterLesson,
		TopicTestTopic:       r.Topic,
		TopicTestPrompt:      r.Prompt,
		TopicTestDuration:    duration,
		TopicTestCriteria:    r.Criteria.ToModel(),
		TopicTestIsActive:    true,
	}
	if r.IsActive != nil {
		test.TopicTestIsActive = *r.IsActive
	}
	return test
}

type UpdateTopicTestRequest struct {
	AfterLesson *int           `json:"topic_test_after_lesson" validate:"omitempty,gte=1"`
	Topic       *string        `json:"topic_test_topic" validate:"omitempty,min=1,max=200"`
	Prompt      *string        `json:"topic_test_prompt" validate:"omitempty,min=1"`
	Duration    *int           `json:"topic_test_duration" validate:"omitempty,gte=30,lte=600"`
	Criteria    *CriteriaInput `json:"topic_test_criteria"`
	IsActive    *bool          `json:"topic_test_is_active"`
}

func (r UpdateTopicTestRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.AfterLesson != nil {
		updates["topic_test_after_lesson"] = *r.AfterLesson
	}
	if r.Topic != nil {
		updates["topic_test_topic"] = strings.TrimSpace(*r.Topic)
	}
	if r.Prompt != nil {
		updates["topic_test_prompt"] = strings.TrimSpace(*r.Prompt)
	}
	if r.Duration != nil {
		updates["topic_test_duration"] = *r.Duration
	}
	if r.Criteria != nil {
		updates["topic_test_criteria_relevance"] = r.Criteria.Relevance
		updates["topic_test_criteria_grammar"] = r.Criteria.Grammar
		updates["topic_test_criteria_fluency"] = r.Criteria.Fluency
		updates["topic_test_criteria_vocabulary"] = r.Criteria.Vocabulary
	}
	if r.IsActive != nil {
		updates["topic_test_is_active"] = *r.IsActive
	}
	return updates
}

/* =========================================================
   EVALUATE
========================================================= */

type EvaluateTopicTestRequest struct {
	TopicTestID uuid.UUID `json:"topic_test_id" validate:"required"`
	SpokenText  string    `json:"spoken_text" validate:"required,min=1"`
	Duration    int       `json:"duration" validate:"gte=0"`
}

func (r *EvaluateTopicTestRequest) Normalize() {
	r.SpokenText = strings.TrimSpace(r.SpokenText)
}
