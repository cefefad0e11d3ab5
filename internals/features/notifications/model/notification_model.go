package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =============================================================================
   ENUM-like: notification type
============================================================================= */
type NotificationType string

const (
	NotificationTypeAIFeedback   NotificationType = "ai_feedback"
	NotificationTypeTestComplete NotificationType = "test_complete"
	NotificationTypeAchievement  NotificationType = "achievement"
	NotificationTypeSystem       NotificationType = "system"
)

func (t NotificationType) String() string { return string(t) }
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationTypeAIFeedback, NotificationTypeTestComplete,
		NotificationTypeAchievement, NotificationTypeSystem:
		return true
	default:
		return false
	}
}

func (t *NotificationType) Scan(value any) error {
	if value == nil {
		*t = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = NotificationType(v)
	case []byte:
		*t = NotificationType(string(v))
	default:
		return fmt.Errorf("unsupported type for NotificationType: %T", value)
	}
	if !t.Valid() {
		return fmt.Errorf("invalid NotificationType: %q", *t)
	}
	return nil
}

func (t NotificationType) Value() (driver.Value, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid NotificationType: %q", t)
	}
	return string(t), nil
}

/* =============================================================================
   MODEL: notifications
============================================================================= */
type NotificationModel struct {
	NotificationID     uuid.UUID `gorm:"column:notification_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"notification_id"`
	NotificationUserID uuid.UUID `gorm:"column:notification_user_id;type:uuid;not null;index:idx_notifications_user_read,priority:1" json:"notification_user_id"`

	NotificationType    NotificationType `gorm:"column:notification_type;type:varchar(24);not null" json:"notification_type"`
	NotificationTitle   string           `gorm:"column:notification_title;type:varchar(180);not null" json:"notification_title"`
	NotificationMessage string           `gorm:"column:notification_message;type:text;not null" json:"notification_message"`

	NotificationData datatypes.JSON `gorm:"column:notification_data;type:jsonb" json:"notification_data"`

	NotificationIsRead bool       `gorm:"column:notification_is_read;not null;default:false;index:idx_notifications_user_read,priority:2" json:"notification_is_read"`
	NotificationReadAt *time.Time `gorm:"column:notification_read_at" json:"notification_read_at"`

	NotificationCreatedAt time.Time `gorm:"column:notification_created_at;not null;autoCreateTime;index:idx_notifications_created_desc,sort:desc" json:"notification_created_at"`
}

// TableName overrides the table name used by GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// MarkRead flips the read flag and stamps the read time once.
func (m *NotificationModel) MarkRead(now time.Time) {
	if m.NotificationIsRead {
		return
	}
	m.NotificationIsRead = true
	m.NotificationReadAt = &now
}
