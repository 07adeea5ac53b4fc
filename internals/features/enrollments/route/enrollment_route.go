package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollmentController "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/enrollments/controller"
	authMiddleware "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/middlewares/auth"
)

func EnrollmentRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := enrollmentController.NewEnrollmentController(db)

	enrollments := r.Group("/enrollments")
	enrollments.Post("/", ctrl.CreateEnrollment)

	enrollments.Get("/", authMiddleware.AdminAuth(), ctrl.GetEnrollments)
	enrollments.Patch("/:id/status", authMiddleware.AdminAuth(), ctrl.UpdateEnrollmentStatus)
}
