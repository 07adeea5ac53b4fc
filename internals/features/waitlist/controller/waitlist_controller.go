package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	waitlistDTO "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/waitlist/dto"
	waitlistModel "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/waitlist/model"
	helper "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/helpers"
)

type WaitlistController struct {
	DB *gorm.DB
}

func NewWaitlistController(db *gorm.DB) *WaitlistController {
	return &WaitlistController{DB: db}
}

// POST /api/waitlist (public)
func (ctrl *WaitlistController) JoinWaitlist(c *fiber.Ctx) error {
	var req waitlistDTO.JoinWaitlistRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	entry := req.ToModel()
	if err := ctrl.DB.Create(&entry).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "You have joined the waitlist. We will get back to you soon!", entry)
}

// GET /api/waitlist (admin)
func (ctrl *WaitlistController) GetWaitlist(c *fiber.Ctx) error {
	var entries []waitlistModel.WaitlistModel
	if err := ctrl.DB.Order("created_at desc").Find(&entries).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, len(entries), entries)
}
