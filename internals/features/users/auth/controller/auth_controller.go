package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"englishku_backend/internals/constants"
	authDTO "englishku_backend/internals/features/users/auth/dto"
	authService "englishku_backend/internals/features/users/auth/service"
	userModel "englishku_backend/internals/features/users/user/model"
	helper "englishku_backend/internals/helpers"
)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validator: validator.New()}
}

// POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	req.Normalize()
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing int64
	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("user_email = ?", req.Email).
		Count(&existing).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to check email")
	}
	if existing > 0 {
		return helper.Error(c, fiber.StatusConflict, "Email is already registered")
	}

	hash, err := authService.HashPassword(req.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to secure password")
	}

	user := userModel.UserModel{
		UserFirstname: req.Firstname,
		UserLastname:  req.Lastname,
		UserEmail:     req.Email,
		UserPassword:  hash,
		UserRole:      constants.RoleUser,
	}
	if err := ctrl.DB.Create(&user).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.Error(c, fiber.StatusConflict, "Email is already registered")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create account")
	}

	token, err := authService.GenerateToken(user.UserID, user.UserRole)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Account created", authDTO.AuthResponse{
		Token: token,
		User:  authDTO.FromUserModel(user),
	})
}

// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	req.Normalize()
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_email = ?", req.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch account")
	}

	if !authService.CheckPassword(user.UserPassword, req.Password) {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := authService.GenerateToken(user.UserID, user.UserRole)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.Success(c, "Logged in", authDTO.AuthResponse{
		Token: token,
		User:  authDTO.FromUserModel(user),
	})
}

// GET /api/auth/profile
func (ctrl *AuthController) Profile(c *fiber.Ctx) error {
	user, err := ctrl.currentUser(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessData(c, authDTO.FromUserModel(*user))
}

// PUT /api/auth/profile
func (ctrl *AuthController) UpdateProfile(c *fiber.Ctx) error {
	user, err := ctrl.currentUser(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req authDTO.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := req.Updates()
	if len(updates) == 0 {
		return helper.Success(c, "No changes", authDTO.FromUserModel(*user))
	}

	if err := ctrl.DB.Model(user).Updates(updates).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.Error(c, fiber.StatusConflict, "Email is already registered")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update profile")
	}

	return helper.Success(c, "Profile updated", authDTO.FromUserModel(*user))
}

// PUT /api/auth/password
func (ctrl *AuthController) UpdatePassword(c *fiber.Ctx) error {
	user, err := ctrl.currentUser(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req authDTO.UpdatePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if !authService.CheckPassword(user.UserPassword, req.CurrentPassword) {
		return helper.Error(c, fiber.StatusUnauthorized, "Current password is incorrect")
	}

	hash, err := authService.HashPassword(req.NewPassword)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to secure password")
	}

	if err := ctrl.DB.Model(user).Update("user_password", hash).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return helper.Success(c, "Password updated", nil)
}

func (ctrl *AuthController) currentUser(c *fiber.Ctx) (*userModel.UserModel, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, err
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Account not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch account")
	}
	return &user, nil
}
