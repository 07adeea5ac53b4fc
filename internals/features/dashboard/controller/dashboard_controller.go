package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contactModel "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/contacts/model"
	courseModel "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/courses/model"
	dashboardDTO "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/dashboard/dto"
	paymentModel "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/payments/model"
	helper "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GET /api/dashboard/stats (admin)
// Read-only rollups; no cross-collection transaction, so numbers can be
// momentarily inconsistent under concurrent writes.
func (ctrl *DashboardController) GetStats(c *fiber.Ctx) error {
	var stats dashboardDTO.DashboardStats

	courses := ctrl.DB.Model(&courseModel.CourseModel{})
	if err := courses.Count(&stats.Courses.Total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := ctrl.DB.Model(&courseModel.CourseModel{}).
		Where("course_is_published = ?", true).Count(&stats.Courses.Published).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	stats.Courses.Unpublished = stats.Courses.Total - stats.Courses.Published

	if err := ctrl.DB.Model(&contactModel.ContactModel{}).Count(&stats.Messages.Total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := ctrl.DB.Model(&contactModel.ContactModel{}).
		Where("contact_is_read = ?", false).Count(&stats.Messages.Unread).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	stats.Messages.Read = stats.Messages.Total - stats.Messages.Unread

	if err := ctrl.DB.Model(&paymentModel.PaymentModel{}).Count(&stats.Payments.Total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	statusCounts := map[paymentModel.PaymentStatus]*int64{
		paymentModel.PaymentSuccess: &stats.Payments.Successful,
		paymentModel.PaymentPending: &stats.Payments.Pending,
		paymentModel.PaymentFailed:  &stats.Payments.Failed,
	}
	for status, dst := range statusCounts {
		if err := ctrl.DB.Model(&paymentModel.PaymentModel{}).
			Where("payment_status = ?", status).Count(dst).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	if err := ctrl.DB.Model(&paymentModel.PaymentModel{}).
		Where("payment_status = ?", paymentModel.PaymentSuccess).
		Select("COALESCE(SUM(payment_amount), 0)").
		Scan(&stats.Revenue.Total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.Model(&paymentModel.PaymentModel{}).
		Select("courses.course_id AS course_id, courses.course_title AS course_title, SUM(payments.payment_amount) AS total_revenue, COUNT(*) AS enrollments").
		Joins("JOIN courses ON courses.course_id = payments.payment_course_id").
		Where("payments.payment_status = ?", paymentModel.PaymentSuccess).
		Group("courses.course_id, courses.course_title").
		Order("total_revenue desc").
		Scan(&stats.Revenue.ByCourse).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	sixMonthsAgo := time.Now().AddDate(0, -6, 0)
	if err := ctrl.DB.Model(&paymentModel.PaymentModel{}).
		Select("EXTRACT(YEAR FROM payment_paid_at)::int AS year, EXTRACT(MONTH FROM payment_paid_at)::int AS month, SUM(payment_amount) AS revenue, COUNT(*) AS count").
		Where("payment_status = ? AND payment_paid_at >= ?", paymentModel.PaymentSuccess, sixMonthsAgo).
		Group("year, month").
		Order("year asc, month asc").
		Scan(&stats.Revenue.Monthly).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", stats)
}

// GET /api/dashboard/recent-activities?limit= (admin)
func (ctrl *DashboardController) GetRecentActivities(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	if limit < 1 || limit > 100 {
		limit = 10
	}

	var activities dashboardDTO.RecentActivities

	if err := ctrl.DB.Model(&paymentModel.PaymentModel{}).
		Select("payments.*, courses.course_title").
		Joins("LEFT JOIN courses ON courses.course_id = payments.payment_course_id").
		Order("payments.created_at desc").
		Limit(limit).
		Scan(&activities.Payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.Order("created_at desc").Limit(limit).
		Find(&activities.Messages).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.Order("created_at desc").Limit(limit).
		Find(&activities.Courses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", activities)
}
