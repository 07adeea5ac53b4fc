package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseController "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/courses/controller"
	authMiddleware "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/middlewares/auth"
)

func CourseRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := courseController.NewCourseController(db)

	courses := r.Group("/courses")
	courses.Get("/", authMiddleware.OptionalAdminAuth(), ctrl.GetCourses)
	courses.Get("/:id", ctrl.GetCourse)

	courses.Post("/", authMiddleware.AdminAuth(), ctrl.CreateCourse)
	courses.Put("/:id", authMiddleware.AdminAuth(), ctrl.UpdateCourse)
	courses.Delete("/:id", authMiddleware.AdminAuth(), ctrl.DeleteCourse)
}
