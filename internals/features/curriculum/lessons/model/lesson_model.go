package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =============================================================================
   MODEL: lessons
   - lesson_order_number is unique within a grade (compound index)
============================================================================= */

// LessonAudioFile is one uploaded audio attachment.
type LessonAudioFile struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	Path         string `json:"path"`
	Size         int64  `json:"size"`
	UploadedAt   string `json:"uploaded_at"`
}

// LessonWordPair is a small en/uz dictionary entry attached to the lesson.
type LessonWordPair struct {
	En string `json:"en"`
	Uz string `json:"uz"`
}

type LessonModel struct {
	LessonID          uuid.UUID `gorm:"column:lesson_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"lesson_id"`
	LessonGradeID     uuid.UUID `gorm:"column:lesson_grade_id;type:uuid;not null;uniqueIndex:uq_lessons_grade_order,priority:1;index:idx_lessons_grade" json:"lesson_grade_id"`
	LessonTitle       string    `gorm:"column:lesson_title;type:varchar(180);not null" json:"lesson_title"`
	LessonDescription string    `gorm:"column:lesson_description;type:text;not null;default:''" json:"lesson_description"`
	LessonOrderNumber int       `gorm:"column:lesson_order_number;not null;uniqueIndex:uq_lessons_grade_order,priority:2" json:"lesson_order_number"`
	LessonIsActive    bool      `gorm:"column:lesson_is_active;not null;default:true" json:"lesson_is_active"`

	LessonAudioFiles datatypes.JSONSlice[LessonAudioFile] `gorm:"column:lesson_audio_files;type:jsonb" json:"lesson_audio_files"`
	LessonWordPairs  datatypes.JSONSlice[LessonWordPair]  `gorm:"column:lesson_word_pairs;type:jsonb" json:"lesson_word_pairs"`

	LessonCreatedAt time.Time `gorm:"column:lesson_created_at;not null;autoCreateTime" json:"lesson_created_at"`
	LessonUpdatedAt time.Time `gorm:"column:lesson_updated_at;not null;autoUpdateTime" json:"lesson_updated_at"`
}

// TableName overrides the table name used by GORM.
func (LessonModel) TableName() string {
	return "lessons"
}
