package model

import (
	"time"

	"github.com/google/uuid"
)

type GradeModel struct {
	GradeID          uuid.UUID `gorm:"column:grade_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"grade_id"`
	GradeName        string    `gorm:"column:grade_name;type:varchar(100);not null;uniqueIndex:uq_grades_name" json:"grade_name"`
	GradeDescription string    `gorm:"column:grade_description;type:text;not null;default:''" json:"grade_description"`
	GradeIsActive    bool      `gorm:"column:grade_is_active;not null;default:true" json:"grade_is_active"`

	GradeCreatedAt time.Time `gorm:"column:grade_created_at;not null;autoCreateTime" json:"grade_created_at"`
	GradeUpdatedAt time.Time `gorm:"column:grade_updated_at;not null;autoUpdateTime" json:"grade_updated_at"`
}

// TableName overrides the table name used by GORM.
func (GradeModel) TableName() string {
	return "grades"
}
