package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/courses/model"
	enrollmentDTO "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/enrollments/dto"
	enrollmentModel "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/enrollments/model"
	helper "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/helpers"
	ossHelper "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/helpers/oss"
)

type EnrollmentController struct {
	DB *gorm.DB
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db}
}

// European applicants settle offline and wait for admin review; everyone else
// is sent straight to checkout.
func submissionMessage(region enrollmentModel.Region) string {
	if region == enrollmentModel.RegionEurope {
		return "Application and receipt submitted successfully. Admin will review."
	}
	return "Application submitted. Please proceed to payment."
}

// POST /api/enrollments (public, multipart)
func (ctrl *EnrollmentController) CreateEnrollment(c *fiber.Ctx) error {
	var req enrollmentDTO.CreateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	receipt, receiptErr := c.FormFile("receipt")
	hasReceipt := receiptErr == nil && receipt != nil

	// region rules run before any write
	if err := req.ValidateRegionRules(hasReceipt); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var count int64
	if err := ctrl.DB.Model(&courseModel.CourseModel{}).
		Where("course_id = ?", req.CourseID).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}

	enrollment := req.ToModel()

	if enrollment.EnrollmentRegion == enrollmentModel.RegionEurope &&
		enrollment.EnrollmentPaymentMethod == enrollmentModel.MethodManual {
		url, err := ossHelper.UploadReceipt(receipt)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store receipt")
		}
		enrollment.EnrollmentReceiptURL = url
	}

	if err := ctrl.DB.Create(&enrollment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, submissionMessage(enrollment.EnrollmentRegion), enrollment)
}

// GET /api/enrollments?page=&per_page= (admin)
func (ctrl *EnrollmentController) GetEnrollments(c *fiber.Ctx) error {
	var total int64
	if err := ctrl.DB.Model(&enrollmentModel.EnrollmentModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	p := helper.ResolvePaging(c, 20, 100)
	var enrollments []enrollmentDTO.EnrollmentWithCourse
	err := ctrl.DB.Model(&enrollmentModel.EnrollmentModel{}).
		Select("enrollments.*, courses.course_title, courses.course_price_ngn, courses.course_price_eur").
		Joins("LEFT JOIN courses ON courses.course_id = enrollments.enrollment_course_id").
		Order("enrollments.created_at desc").
		Offset(p.Offset).Limit(p.Limit).
		Scan(&enrollments).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, int(total), enrollments)
}

// PATCH /api/enrollments/:id/status (admin)
// Moving to paid stamps paid_at and bumps the course counter, once.
func (ctrl *EnrollmentController) UpdateEnrollmentStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid enrollment id")
	}

	var req enrollmentDTO.UpdateEnrollmentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var enrollment enrollmentModel.EnrollmentModel
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&enrollment, "enrollment_id = ?", id).Error; err != nil {
			return err
		}

		newStatus := enrollmentModel.EnrollmentStatus(req.Status)
		if newStatus == enrollmentModel.EnrollmentPaid &&
			enrollment.EnrollmentStatus != enrollmentModel.EnrollmentPaid {
			now := time.Now()
			enrollment.EnrollmentPaidAt = &now
			if err := courseModel.IncrementEnrollmentCount(tx, enrollment.EnrollmentCourseID); err != nil {
				return err
			}
		}
		enrollment.EnrollmentStatus = newStatus

		return tx.Save(&enrollment).Error
	}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Enrollment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", enrollment)
}
