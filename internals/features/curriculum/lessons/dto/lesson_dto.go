package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "englishku_backend/internals/features/curriculum/lessons/model"
)

/* =========================================================
   CREATE / UPDATE
========================================================= */

type WordPairInput struct {
	En string `json:"en" validate:"required,min=1,max=120"`
	Uz string `json:"uz" validate:"required,min=1,max=120"`
}

type CreateLessonRequest struct {
	GradeID     uuid.UUID       `json:"lesson_grade_id" validate:"required"`
	Title       string          `json:"lesson_title" validate:"required,min=1,max=180"`
	Description string          `json:"lesson_description" validate:"max=5000"`
	OrderNumber int             `json:"lesson_order_number" validate:"required,gte=1"`
	IsActive    *bool           `json:"lesson_is_active"`
	WordPairs   []WordPairInput `json:"lesson_word_pairs" validate:"dive"`
}

func (r *CreateLessonRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	for i := range r.WordPairs {
		r.WordPairs[i].En = strings.TrimSpace(r.WordPairs[i].En)
		r.WordPairs[i].Uz = strings.TrimSpace(r.WordPairs[i].Uz)
	}
}

func (r CreateLessonRequest) ToModel() m.LessonModel {
	lesson := m.LessonModel{
		LessonGradeID:     r.GradeID,
		LessonTitle:       r.Title,
		LessonDescription: r.Description,
		LessonOrderNumber: r.OrderNumber,
		LessonIsActive:    true,
		LessonAudioFiles:  datatypes.JSONSlice[m.LessonAudioFile]{},
		LessonWordPairs:   toWordPairs(r.WordPairs),
	}
	if r.IsActive != nil {
		lesson.LessonIsActive = *r.IsActive
	}
	return lesson
}

type UpdateLessonRequest struct {
	Title       *string          `json:"lesson_title" validate:"omitempty,min=1,max=180"`
	Description *string          `json:"lesson_description" validate:"omitempty,max=5000"`
	OrderNumber *int             `json:"lesson_order_number" validate:"omitempty,gte=1"`
	IsActive    *bool            `json:"lesson_is_active"`
	WordPairs   *[]WordPairInput `json:"lesson_word_pairs" validate:"omitempty,dive"`
}

func (r UpdateLessonRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Title != nil {
		updates["lesson_title"] = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		updates["lesson_description"] = strings.TrimSpace(*r.Description)
	}
	if r.OrderNumber != nil {
		updates["lesson_order_number"] = *r.OrderNumber
	}
	if r.IsActive != nil {
		updates["lesson_is_active"] = *r.IsActive
	}
	if r.WordPairs != nil {
		updates["lesson_word_pairs"] = toWordPairs(*r.WordPairs)
	}
	return updates
}

func toWordPairs(in []WordPairInput) datatypes.JSONSlice[m.LessonWordPair] {
	pairs := make([]m.LessonWordPair, 0, len(in))
	for _, p := range in {
		pairs = append(pairs, m.LessonWordPair{
			En: strings.TrimSpace(p.En),
			Uz: strings.TrimSpace(p.Uz),
		})
	}
	return datatypes.JSONSlice[m.LessonWordPair](pairs)
}

/* =========================================================
   RESPONSE
========================================================= */

type LessonResponse struct {
	LessonID    uuid.UUID           `json:"lesson_id"`
	GradeID     uuid.UUID           `json:"lesson_grade_id"`
	Title       string              `json:"lesson_title"`
	Description string              `json:"lesson_description"`
	OrderNumber int                 `json:"lesson_order_number"`
	IsActive    bool                `json:"lesson_is_active"`
	AudioFiles  []m.LessonAudioFile `json:"lesson_audio_files"`
	WordPairs   []m.LessonWordPair  `json:"lesson_word_pairs"`
	CreatedAt   time.Time           `json:"lesson_created_at"`
	UpdatedAt   time.Time           `json:"lesson_updated_at"`
}

func FromLessonModel(lesson m.LessonModel) LessonResponse {
	audio := []m.LessonAudioFile(lesson.LessonAudioFiles)
	if audio == nil {
		audio = []m.LessonAudioFile{}
	}
	pairs := []m.LessonWordPair(lesson.LessonWordPairs)
	if pairs == nil {
		pairs = []m.LessonWordPair{}
	}
	return LessonResponse{
		LessonID:    lesson.LessonID,
		GradeID:     lesson.LessonGradeID,
		Title:       lesson.LessonTitle,
		Description: lesson.LessonDescription,
		OrderNumber: lesson.LessonOrderNumber,
		IsActive:    lesson.LessonIsActive,
		AudioFiles:  audio,
		WordPairs:   pairs,
		CreatedAt:   lesson.LessonCreatedAt,
		UpdatedAt:   lesson.LessonUpdatedAt,
	}
}

func FromLessonModels(lessons []m.LessonModel) []LessonResponse {
	out := make([]LessonResponse, 0, len(lessons))
	for _, lesson := range lessons {
		out = append(out, FromLessonModel(lesson))
	}
	return out
}
