package controller

import (
	"errors"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	notificationModel "englishku_backend/internals/features/notifications/model"
	topicDTO "englishku_backend/internals/features/tests/topic/dto"
	topicModel "englishku_backend/internals/features/tests/topic/model"
	topicService "englishku_backend/internals/features/tests/topic/service"
	helper "englishku_backend/internals/helpers"
)

/* =========================================================
   Topic test evaluation and result history
========================================================= */

// POST /api/topic-tests/evaluate
func (ctrl *TopicTestController) Evaluate(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req topicDTO.EvaluateTopicTestRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	req.Normalize()
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var test topicModel.TopicTestModel
	if err := ctrl.DB.First(&test, "topic_test_id = ?", req.TopicTestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Topic test not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch topic test")
	}

	evaluation := ctrl.Evaluator.Evaluate(c.Context(), &test, req.SpokenText)

	result := topicModel.TopicTestResultModel{
		TopicTestResultUserID:       userID,
		TopicTestResultTopicTestID:  test.TopicTestID,
		TopicTestResultGradeID:      test.TopicTestGradeID,
		TopicTestResultLessonNumber: test.TopicTestAfterLesson,
		TopicTestResultSpokenText:   req.SpokenText,
		TopicTestResultEvaluation:   datatypes.NewJSONType(evaluation),
		TopicTestResultDuration:     req.Duration,
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&result).Error; err != nil {
			return err
		}

		data, _ := sonic.Marshal(fiber.Map{
			"topic_test_id":        test.TopicTestID,
			"topic_test_result_id": result.TopicTestResultID,
			"overall_score":        evaluation.OverallScore,
		})
		notification := notificationModel.NotificationModel{
			NotificationUserID:  userID,
			NotificationType:    notificationModel.NotificationTypeAIFeedback,
			NotificationTitle:   "Speaking feedback is ready",
			NotificationMessage: topicService.FeedbackMessage(test.TopicTestTopic, evaluation.OverallScore),
			NotificationData:    datatypes.JSON(data),
		}
		return tx.Create(&notification).Error
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save evaluation")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Evaluation complete", result)
}

// GET /api/topic-tests/results/my?page=&limit=
func (ctrl *TopicTestController) MyResults(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&topicModel.TopicTestResultModel{}).
		Where("topic_test_result_user_id = ?", userID)
	if gradeStr := strings.TrimSpace(c.Query("grade_id")); gradeStr != "" {
		gradeID, err := uuid.Parse(gradeStr)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid grade ID")
		}
		q = q.Where("topic_test_result_grade_id = ?", gradeID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count results")
	}

	var results []topicModel.TopicTestResultModel
	if err := q.Order("topic_test_result_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&results).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch results")
	}

	return helper.SuccessData(c, fiber.Map{
		"results":    results,
		"pagination": helper.BuildPagination(total, paging.Page, paging.Limit),
	})
}

// GET /api/topic-tests/results/:id
func (ctrl *TopicTestController) GetResultByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid result ID")
	}

	var result topicModel.TopicTestResultModel
	if err := ctrl.DB.First(&result, "topic_test_result_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Result not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch result")
	}
	if result.TopicTestResultUserID != userID {
		return helper.Error(c, fiber.StatusForbidden, "You may only view your own results")
	}

	return helper.SuccessData(c, result)
}
