package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	adminDTO "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/admins/dto"
	adminModel "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/admins/model"
	adminService "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/admins/service"
	helper "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /api/auth/register
// Registration closes permanently once any admin row exists.
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req adminDTO.RegisterAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Name = strings.TrimSpace(req.Name)

	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	if err := ctrl.DB.Model(&adminModel.AdminModel{}).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Admin registration is restricted. An admin already exists.")
	}

	hashed, err := adminService.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	admin := adminModel.AdminModel{
		AdminName:     req.Name,
		AdminEmail:    req.Email,
		AdminPassword: hashed,
	}
	if err := ctrl.DB.Create(&admin).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	token, err := adminService.GenerateToken(admin.AdminID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.JsonCreated(c, "", adminDTO.NewAuthAdminResponse(admin, token))
}

// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req adminDTO.LoginAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var admin adminModel.AdminModel
	if err := ctrl.DB.Where("admin_email = ?", req.Email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := adminService.CheckPasswordHash(admin.AdminPassword, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := adminService.GenerateToken(admin.AdminID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.JsonOK(c, "", adminDTO.NewAuthAdminResponse(admin, token))
}

// GET /api/auth/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	adminIDStr, _ := c.Locals("admin_id").(string)
	adminID, err := uuid.Parse(adminIDStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not authorized")
	}

	var admin adminModel.AdminModel
	if err := ctrl.DB.First(&admin, "admin_id = ?", adminID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Admin not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", admin)
}

// POST /api/auth/logout
// Tokens are stateless, so logout is an acknowledgment for the client.
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Logged out successfully", nil)
}
