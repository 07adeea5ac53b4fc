package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseDTO "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/courses/dto"
	courseModel "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/courses/model"
	helper "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/helpers"
)

type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

// GET /api/courses
// Public callers only see published courses; an authenticated admin sees all.
func (ctrl *CourseController) GetCourses(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&courseModel.CourseModel{}).Order("created_at desc")
	if c.Locals("admin_id") == nil {
		q = q.Where("course_is_published = ?", true)
	}

	var courses []courseModel.CourseModel
	if err := q.Find(&courses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, len(courses), courses)
}

// GET /api/courses/:id
func (ctrl *CourseController) GetCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var course courseModel.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", course)
}

// POST /api/courses (admin)
func (ctrl *CourseController) CreateCourse(c *fiber.Ctx) error {
	var req courseDTO.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	course, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid syllabus")
	}
	if err := ctrl.DB.Create(&course).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "", course)
}

// PUT /api/courses/:id (admin)
func (ctrl *CourseController) UpdateCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var req courseDTO.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var course courseModel.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := req.Apply(&course); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid syllabus")
	}
	if err := ctrl.DB.Save(&course).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", course)
}

// DELETE /api/courses/:id (admin)
func (ctrl *CourseController) DeleteCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	res := ctrl.DB.Delete(&courseModel.CourseModel{}, "course_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	return helper.JsonOK(c, "Course removed", nil)
}
