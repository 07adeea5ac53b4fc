package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	comingSoonDTO "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/comingsoon/dto"
	comingSoonModel "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/comingsoon/model"
	helper "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/helpers"
)

type ComingSoonController struct {
	DB *gorm.DB
}

func NewComingSoonController(db *gorm.DB) *ComingSoonController {
	return &ComingSoonController{DB: db}
}

// GET /api/coming-soon (public)
func (ctrl *ComingSoonController) GetAll(c *fiber.Ctx) error {
	var entries []comingSoonModel.ComingSoonModel
	if err := ctrl.DB.Order("created_at desc").Find(&entries).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, len(entries), entries)
}

// GET /api/coming-soon/:id (public)
func (ctrl *ComingSoonController) GetOne(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var entry comingSoonModel.ComingSoonModel
	if err := ctrl.DB.First(&entry, "coming_soon_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Entry not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", entry)
}

// POST /api/coming-soon (admin)
func (ctrl *ComingSoonController) Create(c *fiber.Ctx) error {
	var req comingSoonDTO.CreateComingSoonRequest
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
	return helper.JsonCreated(c, "", entry)
}

// PUT /api/coming-soon/:id (admin)
func (ctrl *ComingSoonController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req comingSoonDTO.UpdateComingSoonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var entry comingSoonModel.ComingSoonModel
	if err := ctrl.DB.First(&entry, "coming_soon_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Entry not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	req.Apply(&entry)
	if err := ctrl.DB.Save(&entry).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", entry)
}

// DELETE /api/coming-soon/:id (admin)
func (ctrl *ComingSoonController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctrl.DB.Delete(&comingSoonModel.ComingSoonModel{}, "coming_soon_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Entry not found")
	}
	return helper.JsonOK(c, "Entry deleted successfully", nil)
}
