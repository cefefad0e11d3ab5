package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	notificationModel "englishku_backend/internals/features/notifications/model"
	topicModel "englishku_backend/internals/features/tests/topic/model"
	helper "englishku_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// GET /api/notifications?unread_only=&page=&limit=
func (ctrl *NotificationController) GetAll(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&notificationModel.NotificationModel{}).
		Where("notification_user_id = ?", userID)
	if strings.EqualFold(c.Query("unread_only"), "true") {
		q = q.Where("notification_is_read = ?", false)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count notifications")
	}

	var unread int64
	if err := ctrl.DB.Model(&notificationModel.NotificationModel{}).
		Where("notification_user_id = ? AND notification_is_read = ?", userID, false).
		Count(&unread).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count unread notifications")
	}

	var notifications []notificationModel.NotificationModel
	if err := q.Order("notification_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&notifications).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch notifications")
	}

	return helper.SuccessData(c, fiber.Map{
		"notifications": notifications,
		"unread_count":  unread,
		"pagination":    helper.BuildPagination(total, paging.Page, paging.Limit),
	})
}

// GET /api/notifications/:id
func (ctrl *NotificationController) GetByID(c *fiber.Ctx) error {
	notification, err := ctrl.findOwned(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessData(c, notification)
}

// AIFeedbackRedirect resolves the topic test linked from a feedback
// notification's data payload. The second return is the client route to
// open; both are zero when the notification links nothing.
func AIFeedbackRedirect(n *notificationModel.NotificationModel) (uuid.UUID, string) {
	if n.NotificationType != notificationModel.NotificationTypeAIFeedback || len(n.NotificationData) == 0 {
		return uuid.Nil, ""
	}
	var ref struct {
		TopicTestID uuid.UUID `json:"topic_test_id"`
	}
	if err := sonic.Unmarshal(n.NotificationData, &ref); err != nil || ref.TopicTestID == uuid.Nil {
		return uuid.Nil, ""
	}
	return ref.TopicTestID, "/topic-tests/" + ref.TopicTestID.String()
}

// GET /api/notifications/:id/details
// Opening a notification marks it read and, for AI feedback, resolves
// the topic test it points at plus the client route to open.
func (ctrl *NotificationController) GetDetails(c *fiber.Ctx) error {
	notification, err := ctrl.findOwned(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if !notification.NotificationIsRead {
		notification.MarkRead(time.Now())
		if err := ctrl.DB.Model(notification).Updates(map[string]interface{}{
			"notification_is_read": true,
			"notification_read_at": notification.NotificationReadAt,
		}).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to mark notification as read")
		}
	}

	testID, redirectURL := AIFeedbackRedirect(notification)
	if testID == uuid.Nil {
		return helper.SuccessData(c, fiber.Map{
			"notification": notification,
			"redirect_url": nil,
		})
	}

	var test topicModel.TopicTestModel
	if err := ctrl.DB.First(&test, "topic_test_id = ?", testID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch topic test")
		}
		// the linked test was deleted since the notification was sent
		return helper.SuccessData(c, fiber.Map{
			"notification": notification,
			"redirect_url": nil,
		})
	}

	return helper.SuccessData(c, fiber.Map{
		"notification": notification,
		"test":         test,
		"redirect_url": redirectURL,
	})
}

// PUT /api/notifications/:id/read
func (ctrl *NotificationController) MarkRead(c *fiber.Ctx) error {
	notification, err := ctrl.findOwned(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if !notification.NotificationIsRead {
		notification.MarkRead(time.Now())
		if err := ctrl.DB.Model(notification).Updates(map[string]interface{}{
			"notification_is_read": true,
			"notification_read_at": notification.NotificationReadAt,
		}).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to mark notification as read")
		}
	}

	return helper.Success(c, "Notification marked as read", notification)
}

// PUT /api/notifications/read-all
func (ctrl *NotificationController) MarkAllRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	now := time.Now()
	res := ctrl.DB.Model(&notificationModel.NotificationModel{}).
		Where("notification_user_id = ? AND notification_is_read = ?", userID, false).
		Updates(map[string]interface{}{
			"notification_is_read": true,
			"notification_read_at": now,
		})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to mark notifications as read")
	}

	return helper.Success(c, "All notifications marked as read", fiber.Map{"updated": res.RowsAffected})
}

// DELETE /api/notifications/:id
func (ctrl *NotificationController) Delete(c *fiber.Ctx) error {
	notification, err := ctrl.findOwned(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctrl.DB.Delete(notification).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete notification")
	}

	return helper.Success(c, "Notification deleted", fiber.Map{"deleted_id": notification.NotificationID})
}

func (ctrl *NotificationController) findOwned(c *fiber.Ctx) (*notificationModel.NotificationModel, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid notification ID")
	}

	var notification notificationModel.NotificationModel
	if err := ctrl.DB.First(&notification, "notification_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Notification not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch notification")
	}
	if notification.NotificationUserID != userID {
		return nil, fiber.NewError(fiber.StatusForbidden, "You may only manage your own notifications")
	}
	return &notification, nil
}
