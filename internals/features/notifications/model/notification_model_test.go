package model

import (
	"testing"
	"time"
)

func TestMarkRead(t *testing.T) {
	var n NotificationModel
	first := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	n.MarkRead(first)
	if !n.NotificationIsRead {
		t.Fatal("notification not marked read")
	}
	if n.NotificationReadAt == nil || !n.NotificationReadAt.Equal(first) {
		t.Fatalf("read_at = %v, want %v", n.NotificationReadAt, first)
	}

	// second call keeps the original timestamp
	n.MarkRead(first.Add(time.Hour))
	if !n.NotificationReadAt.Equal(first) {
		t.Fatalf("read_at moved to %v on repeat call", n.NotificationReadAt)
	}
}

func TestNotificationTypeValid(t *testing.T) {
	valid := []NotificationType{
		NotificationTypeAIFeedback,
		NotificationTypeTestComplete,
		NotificationTypeAchievement,
		NotificationTypeSystem,
	}
	for _, nt := range valid {
		if !nt.Valid() {
			t.Errorf("%q reported invalid", nt)
		}
	}
	if NotificationType("email").Valid() {
		t.Error("unknown type reported valid")
	}
	if NotificationType("").Valid() {
		t.Error("empty type reported valid")
	}
}
