package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/courses/model"
	scheduleDTO "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/schedules/dto"
	scheduleModel "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/schedules/model"
	helper "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/helpers"
)

type ScheduleController struct {
	DB *gorm.DB
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{DB: db}
}

// GET /api/schedules?course_id=
// Always ordered by week ascending.
func (ctrl *ScheduleController) GetSchedules(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&scheduleModel.ScheduleModel{}).
		Select("schedules.*, courses.course_title AS course_title").
		Joins("LEFT JOIN courses ON courses.course_id = schedules.schedule_course_id").
		Order("schedules.schedule_week asc")

	if courseIDStr := c.Query("course_id"); courseIDStr != "" {
		courseID, err := uuid.Parse(courseIDStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
		}
		q = q.Where("schedules.schedule_course_id = ?", courseID)
	}

	var schedules []scheduleDTO.ScheduleWithCourse
	if err := q.Scan(&schedules).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, len(schedules), schedules)
}

// GET /api/schedules/:id
func (ctrl *ScheduleController) GetSchedule(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid schedule id")
	}

	var schedule scheduleDTO.ScheduleWithCourse
	err = ctrl.DB.Model(&scheduleModel.ScheduleModel{}).
		Select("schedules.*, courses.course_title AS course_title").
		Joins("LEFT JOIN courses ON courses.course_id = schedules.schedule_course_id").
		Where("schedules.schedule_id = ?", id).
		First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Schedule not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", schedule)
}

// POST /api/schedules (admin)
func (ctrl *ScheduleController) CreateSchedule(c *fiber.Ctx) error {
	var req scheduleDTO.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	if err := ctrl.DB.Model(&courseModel.CourseModel{}).
		Where("course_id = ?", req.CourseID).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	schedule := req.ToModel()
	if err := ctrl.DB.Create(&schedule).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Schedule created successfully", schedule)
}

// PUT /api/schedules/:id (admin)
func (ctrl *ScheduleController) UpdateSchedule(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid schedule id")
	}

	var req scheduleDTO.UpdateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var schedule scheduleModel.ScheduleModel
	if err := ctrl.DB.First(&schedule, "schedule_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Schedule not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	req.Apply(&schedule)
	if err := ctrl.DB.Save(&schedule).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", schedule)
}

// DELETE /api/schedules/:id (admin)
func (ctrl *ScheduleController) DeleteSchedule(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid schedule id")
	}

	res := ctrl.DB.Delete(&scheduleModel.ScheduleModel{}, "schedule_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Schedule not found")
	}

	return helper.JsonOK(c, "Schedule deleted successfully", nil)
}
