package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scheduleController "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/schedules/controller"
	authMiddleware "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/middlewares/auth"
)

func ScheduleRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := scheduleController.NewScheduleController(db)

	schedules := r.Group("/schedules")
	schedules.Get("/", ctrl.GetSchedules)
	schedules.Get("/:id", ctrl.GetSchedule)

	schedules.Post("/", authMiddleware.AdminAuth(), ctrl.CreateSchedule)
	schedules.Put("/:id", authMiddleware.AdminAuth(), ctrl.UpdateSchedule)
	schedules.Delete("/:id", authMiddleware.AdminAuth(), ctrl.DeleteSchedule)
}
