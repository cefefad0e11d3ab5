package model

import (
	"time"

	"github.com/google/uuid"
)

/* =============================================================================
   MODEL: test_details
   - one question/prompt of a test
   - test_detail_test_id is a typed FK onto tests, a mis-pointed reference
     fails the constraint instead of silently missing on lookup
============================================================================= */
type TestDetailModel struct {
	TestDetailID     uuid.UUID `gorm:"column:test_detail_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"test_detail_id"`
	TestDetailTestID uuid.UUID `gorm:"column:test_detail_test_id;type:uuid;not null;index:idx_test_details_test" json:"test_detail_test_id"`

	TestDetailCondition string `gorm:"column:test_detail_condition;type:text;not null" json:"test_detail_condition"`
	TestDetailText      string `gorm:"column:test_detail_text;type:text;not null" json:"test_detail_text"`

	Test *TestModel `gorm:"foreignKey:TestDetailTestID;references:TestID" json:"-"`

	TestDetailCreatedAt time.Time `gorm:"column:test_detail_created_at;not null;autoCreateTime" json:"test_detail_created_at"`
	TestDetailUpdatedAt time.Time `gorm:"column:test_detail_updated_at;not null;autoUpdateTime" json:"test_detail_updated_at"`
}

// TableName overrides the table name used by GORM.
func (TestDetailModel) TableName() string {
	return "test_details"
}
