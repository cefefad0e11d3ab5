package controller

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	notificationModel "englishku_backend/internals/features/notifications/model"
)

func feedbackNotification(t *testing.T, nType notificationModel.NotificationType, data map[string]any) *notificationModel.NotificationModel {
	t.Helper()
	n := &notificationModel.NotificationModel{NotificationType: nType}
	if data != nil {
		raw, err := sonic.Marshal(data)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		n.NotificationData = datatypes.JSON(raw)
	}
	return n
}

func TestAIFeedbackRedirect(t *testing.T) {
	testID := uuid.New()

	t.Run("feedback with linked test", func(t *testing.T) {
		n := feedbackNotification(t, notificationModel.NotificationTypeAIFeedback, map[string]any{
			"topic_test_id":        testID,
			"topic_test_result_id": uuid.New(),
		})
		gotID, gotURL := AIFeedbackRedirect(n)
		if gotID != testID {
			t.Fatalf("test id = %s, want %s", gotID, testID)
		}
		if want := "/topic-tests/" + testID.String(); gotURL != want {
			t.Fatalf("redirect = %q, want %q", gotURL, want)
		}
	})

	t.Run("non-feedback type", func(t *testing.T) {
		n := feedbackNotification(t, notificationModel.NotificationTypeTestComplete, map[string]any{
			"topic_test_id": testID,
		})
		if gotID, gotURL := AIFeedbackRedirect(n); gotID != uuid.Nil || gotURL != "" {
			t.Fatalf("got (%s, %q), want no redirect", gotID, gotURL)
		}
	})

	t.Run("feedback without payload", func(t *testing.T) {
		n := feedbackNotification(t, notificationModel.NotificationTypeAIFeedback, nil)
		if gotID, gotURL := AIFeedbackRedirect(n); gotID != uuid.Nil || gotURL != "" {
			t.Fatalf("got (%s, %q), want no redirect", gotID, gotURL)
		}
	})

	t.Run("feedback payload missing the test id", func(t *testing.T) {
		n := feedbackNotification(t, notificationModel.NotificationTypeAIFeedback, map[string]any{
			"score": 85,
		})
		if gotID, gotURL := AIFeedbackRedirect(n); gotID != uuid.Nil || gotURL != "" {
			t.Fatalf("got (%s, %q), want no redirect", gotID, gotURL)
		}
	})
}
