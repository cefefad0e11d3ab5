package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"englishku_backend/internals/constants"
	notificationModel "englishku_backend/internals/features/notifications/model"
	resultDTO "englishku_backend/internals/features/tests/results/dto"
	resultModel "englishku_backend/internals/features/tests/results/model"
	testModel "englishku_backend/internals/features/tests/tests/model"
	userModel "englishku_backend/internals/features/users/user/model"
	helper "englishku_backend/internals/helpers"
)

type TestResultController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTestResultController(db *gorm.DB) *TestResultController {
	return &TestResultController{DB: db, Validator: validator.New()}
}

// POST /api/test-results
func (ctrl *TestResultController) Submit(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req resultDTO.SubmitTestResultRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	req.Normalize()
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var test testModel.TestModel
	if err := ctrl.DB.Select("test_id", "test_title").
		First(&test, "test_id = ?", req.TestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Test not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to check test")
	}

	result := req.ToModel(userID)

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var prior int64
		if err := tx.Model(&resultModel.TestResultModel{}).
			Where("test_result_user_id = ? AND test_result_test_id = ?", userID, req.TestID).
			Count(&prior).Error; err != nil {
			return err
		}
		result.TestResultAttemptNumber = int(prior) + 1

		if err := tx.Create(&result).Error; err != nil {
			return err
		}

		// best-score roll-up on the user record
		var user userModel.UserModel
		if err := tx.First(&user, "user_id = ?", userID).Error; err != nil {
			return err
		}
		user.UpsertCompletedTest(req.TestID, result.TestResultScore, result.TestResultCreatedAt)
		if err := tx.Model(&user).
			Update("user_completed_tests", user.UserCompletedTests).Error; err != nil {
			return err
		}

		notification := notificationModel.NotificationModel{
			NotificationUserID:  userID,
			NotificationType:    notificationModel.NotificationTypeTestComplete,
			NotificationTitle:   "Test completed",
			NotificationMessage: fmt.Sprintf("You finished %q with a score of %d.", test.TestTitle, result.TestResultScore),
		}
		return tx.Create(&notification).Error
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save test result")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Test result saved", result)
}

// GET /api/test-results/my?test_id=&grade_id=&page=&limit=
func (ctrl *TestResultController) MyResults(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&resultModel.TestResultModel{}).
		Where("test_result_user_id = ?", userID)
	if testStr := strings.TrimSpace(c.Query("test_id")); testStr != "" {
		testID, err := uuid.Parse(testStr)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid test ID")
		}
		q = q.Where("test_result_test_id = ?", testID)
	}
	if gradeStr := strings.TrimSpace(c.Query("grade_id")); gradeStr != "" {
		gradeID, err := uuid.Parse(gradeStr)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid grade ID")
		}
		q = q.Where("test_result_grade_id = ?", gradeID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count results")
	}

	var results []resultModel.TestResultModel
	if err := q.Order("test_result_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&results).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch results")
	}

	return helper.SuccessData(c, fiber.Map{
		"results":    results,
		"pagination": helper.BuildPagination(total, paging.Page, paging.Limit),
	})
}

// GET /api/test-results/statistics
func (ctrl *TestResultController) Statistics(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var stats resultDTO.TestStatistics
	row := ctrl.DB.Model(&resultModel.TestResultModel{}).
		Select("COUNT(*) AS total_attempts, COALESCE(AVG(test_result_score), 0) AS average_score, COALESCE(MAX(test_result_score), 0) AS best_score, COALESCE(SUM(test_result_time_taken), 0) AS total_time_taken, COALESCE(SUM(test_result_total_questions), 0) AS total_questions, COALESCE(SUM(test_result_correct_answers), 0) AS total_correct_answers").
		Where("test_result_user_id = ?", userID).
		Row()
	if err := row.Scan(&stats.TotalAttempts, &stats.AverageScore, &stats.BestScore, &stats.TotalTimeTaken, &stats.TotalQuestions, &stats.TotalCorrectAnswers); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to compute statistics")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err == nil {
		stats.TestsCompleted = len(user.UserCompletedTests)
	}

	byGrade := make([]resultDTO.GradeStatistics, 0)
	if err := ctrl.DB.Model(&resultModel.TestResultModel{}).
		Select("test_result_grade_id AS grade_id, COALESCE(MAX(grades.grade_name), '') AS grade_name, COUNT(*) AS tests_count, COALESCE(AVG(test_result_score), 0) AS average_score, COALESCE(MAX(test_result_score), 0) AS best_score").
		Joins("LEFT JOIN grades ON grades.grade_id = test_results.test_result_grade_id").
		Where("test_result_user_id = ?", userID).
		Group("test_result_grade_id").
		Scan(&byGrade).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to compute grade statistics")
	}

	var recent []resultModel.TestResultModel
	if err := ctrl.DB.
		Where("test_result_user_id = ?", userID).
		Order("test_result_created_at DESC").
		Limit(5).
		Find(&recent).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch recent results")
	}

	return helper.SuccessData(c, fiber.Map{
		"overall":  stats,
		"by_grade": byGrade,
		"recent":   recent,
	})
}

// GET /api/test-results/:id (owner or admin)
func (ctrl *TestResultController) GetByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	result, err := ctrl.findResult(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	role, _ := helper.GetRoleFromToken(c)
	if !CanManageResult(result.TestResultUserID, userID, role) {
		return helper.Error(c, fiber.StatusForbidden, "You may only view your own results")
	}

	return helper.SuccessData(c, result)
}

// CanManageResult reports whether a caller may read or delete an
// attempt. Owners manage their own attempts, admins manage any.
func CanManageResult(ownerID, callerID uuid.UUID, callerRole string) bool {
	return ownerID == callerID || callerRole == constants.RoleAdmin
}

// DELETE /api/test-results/:id (owner or admin)
func (ctrl *TestResultController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	result, err := ctrl.findResult(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	role, _ := helper.GetRoleFromToken(c)
	if !CanManageResult(result.TestResultUserID, userID, role) {
		return helper.Error(c, fiber.StatusForbidden, "You may only delete your own results")
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(result).Error; err != nil {
			return err
		}

		// recompute the roll-up entry from the remaining attempts
		var best resultModel.TestResultModel
		err := tx.Where("test_result_user_id = ? AND test_result_test_id = ?",
			result.TestResultUserID, result.TestResultTestID).
			Order("test_result_score DESC").
			First(&best).Error

		var user userModel.UserModel
		if err2 := tx.First(&user, "user_id = ?", result.TestResultUserID).Error; err2 != nil {
			return err2
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			user.RemoveCompletedTest(result.TestResultTestID)
		} else if err != nil {
			return err
		} else {
			user.RemoveCompletedTest(result.TestResultTestID)
			user.UpsertCompletedTest(best.TestResultTestID, best.TestResultScore, best.TestResultCreatedAt)
		}
		return tx.Model(&user).
			Update("user_completed_tests", user.UserCompletedTests).Error
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete test result")
	}

	return helper.Success(c, "Test result deleted", fiber.Map{"deleted_id": result.TestResultID})
}

func (ctrl *TestResultController) findResult(c *fiber.Ctx) (*resultModel.TestResultModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid result ID")
	}

	var result resultModel.TestResultModel
	if err := ctrl.DB.First(&result, "test_result_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Test result not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch test result")
	}
	return &result, nil
}
