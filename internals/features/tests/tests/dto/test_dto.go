package dto

import (
	"strings"

	"github.com/google/uuid"

	m "englishku_backend/internals/features/tests/tests/model"
)

/* =========================================================
   TEST CREATE / UPDATE
========================================================= */

type CreateTestRequest struct {
	LessonID   uuid.UUID `json:"test_lesson_id" validate:"required"`
	GradeID    uuid.UUID `json:"test_grade_id" validate:"required"`
	Title      string    `json:"test_title" validate:"required,min=1,max=180"`
	Type       string    `json:"test_type" validate:"required,oneof=speech listening"`
	Difficulty string    `json:"test_difficulty" validate:"omitempty,oneof=easy medium hard"`
	IsActive   *bool     `json:"test_is_active"`
}

func (r *CreateTestRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
}

func (r CreateTestRequest) ToModel() m.TestModel {
	difficulty := r.Difficulty
	if difficulty == "" {
		difficulty = "medium"
	}
	test := m.TestModel{
		TestLessonID:   r.LessonID,
		TestGradeID:    r.GradeID,
		TestTitle:      r.Title,
		TestType:       m.TestType(r.Type),
		TestDifficulty: difficulty,
		TestIsActive:   true,
	}
	if r.IsActive != nil {
		test.TestIsActive = *r.IsActive
	}
	return test
}

type UpdateTestRequest struct {
	Title      *string `json:"test_title" validate:"omitempty,min=1,max=180"`
	Type       *string `json:"test_type" validate:"omitempty,oneof=speech listening"`
	Difficulty *string `json:"test_difficulty" validate:"omitempty,oneof=easy medium hard"`
	IsActive   *bool   `json:"test_is_active"`
}

func (r UpdateTestRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Title != nil {
		updates["test_title"] = strings.TrimSpace(*r.Title)
	}
	if r.Type != nil {
		updates["test_type"] = *r.Type
	}
	if r.Difficulty != nil {
		updates["test_difficulty"] = *r.Difficulty
	}
	if r.IsActive != nil {
		updates["test_is_active"] = *r.IsActive
	}
	return updates
}

/* =========================================================
   TEST DETAIL CREATE / UPDATE
========================================================= */

type CreateTestDetailRequest struct {
	TestID    uuid.UUID `json:"test_detail_test_id" validate:"required"`
	Condition string    `json:"test_detail_condition" validate:"required,min=1"`
	Text      string    `json:"test_detail_text" validate:"required,min=1"`
}

func (r *CreateTestDetailRequest) Normalize() {
	r.Condition = strings.TrimSpace(r.Condition)
	r.Text = strings.TrimSpace(r.Text)
}

func (r CreateTestDetailRequest) ToModel() m.TestDetailModel {
	return m.TestDetailModel{
		TestDetailTestID:    r.TestID,
		TestDetailCondition: r.Condition,
		TestDetailText:      r.Text,
	}
}

type UpdateTestDetailRequest struct {
	Condition *string `json:"test_detail_condition" validate:"omitempty,min=1"`
	Text      *string `json:"test_detail_text" validate:"omitempty,min=1"`
}

func (r UpdateTestDetailRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Condition != nil {
		updates["test_detail_condition"] = strings.TrimSpace(*r.Condition)
	}
	if r.Text != nil {
		updates["test_detail_text"] = strings.TrimSpace(*r.Text)
	}
	return updates
}

/* =========================================================
   RESPONSE
========================================================= */

type TestWithDetailsResponse struct {
	Test    m.TestModel         `json:"test"`
	Details []m.TestDetailModel `json:"details"`
}
