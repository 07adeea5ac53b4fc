package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	contactDTO "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/contacts/dto"
	contactModel "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/contacts/model"
	helper "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/helpers"
)

type ContactController struct {
	DB *gorm.DB
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{DB: db}
}

// POST /api/contact (public)
func (ctrl *ContactController) SubmitContact(c *fiber.Ctx) error {
	var req contactDTO.SubmitContactRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	contact := req.ToModel()
	if err := ctrl.DB.Create(&contact).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Message sent successfully. We will get back to you soon!", contact)
}

// GET /api/contact/messages?is_read=&page=&per_page= (admin)
func (ctrl *ContactController) GetMessages(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&contactModel.ContactModel{})
	if isRead := c.Query("is_read"); isRead != "" {
		q = q.Where("contact_is_read = ?", isRead == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	p := helper.ResolvePaging(c, 20, 100)
	var messages []contactModel.ContactModel
	if err := q.Order("created_at desc").Offset(p.Offset).Limit(p.Limit).Find(&messages).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, int(total), messages)
}

// GET /api/contact/messages/:id (admin)
func (ctrl *ContactController) GetMessage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid message id")
	}

	var message contactModel.ContactModel
	if err := ctrl.DB.First(&message, "contact_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Message not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", message)
}

// PATCH /api/contact/messages/:id/read (admin) — toggles the read flag.
func (ctrl *ContactController) ToggleReadStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid message id")
	}

	var message contactModel.ContactModel
	if err := ctrl.DB.First(&message, "contact_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Message not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	message.ContactIsRead = !message.ContactIsRead
	if err := ctrl.DB.Save(&message).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	state := "unread"
	if message.ContactIsRead {
		state = "read"
	}
	return helper.JsonOK(c, fmt.Sprintf("Message marked as %s", state), message)
}

// DELETE /api/contact/messages/:id (admin)
func (ctrl *ContactController) DeleteMessage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid message id")
	}

	res := ctrl.DB.Delete(&contactModel.ContactModel{}, "contact_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Message not found")
	}

	return helper.JsonOK(c, "Message deleted successfully", nil)
}
