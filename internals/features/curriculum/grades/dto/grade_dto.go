package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "englishku_backend/internals/features/curriculum/grades/model"
)

/* =========================================================
   CREATE / UPDATE
========================================================= */

type CreateGradeRequest struct {
	Name        string `json:"grade_name" validate:"required,min=1,max=100"`
	Description string `json:"grade_description" validate:"max=1000"`
	IsActive    *bool  `json:"grade_is_active"`
}

func (r *CreateGradeRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
}

func (r CreateGradeRequest) ToModel() m.GradeModel {
	grade := m.GradeModel{
		GradeName:        r.Name,
		GradeDescription: r.Description,
		GradeIsActive:    true,
	}
	if r.IsActive != nil {
		grade.GradeIsActive = *r.IsActive
	}
	return grade
}

type UpdateGradeRequest struct {
	Name        *string `json:"grade_name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"grade_description" validate:"omitempty,max=1000"`
	IsActive    *bool   `json:"grade_is_active"`
}

// Updates builds a column map for a partial update.
func (r UpdateGradeRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Name != nil {
		updates["grade_name"] = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		updates["grade_description"] = strings.TrimSpace(*r.Description)
	}
	if r.IsActive != nil {
		updates["grade_is_active"] = *r.IsActive
	}
	return updates
}

/* =========================================================
   RESPONSE
========================================================= */

type GradeResponse struct {
	GradeID     uuid.UUID `json:"grade_id"`
	Name        string    `json:"grade_name"`
	Description string    `json:"grade_description"`
	IsActive    bool      `json:"grade_is_active"`
	LessonCount int64     `json:"lesson_count,omitempty"`
	CreatedAt   time.Time `json:"grade_created_at"`
	UpdatedAt   time.Time `json:"grade_updated_at"`
}

func FromGradeModel(grade m.GradeModel) GradeResponse {
	return GradeResponse{
		GradeID:     grade.GradeID,
		Name:        grade.GradeName,
		Description: grade.GradeDescription,
		IsActive:    grade.GradeIsActive,
		CreatedAt:   grade.GradeCreatedAt,
		UpdatedAt:   grade.GradeUpdatedAt,
	}
}

func FromGradeModels(grades []m.GradeModel) []GradeResponse {
	out := make([]GradeResponse, 0, len(grades))
	for _, grade := range grades {
		out = append(out, FromGradeModel(grade))
	}
	return out
}
