package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	waitlistController "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/waitlist/controller"
	authMiddleware "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/middlewares/auth"
)

func WaitlistRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := waitlistController.NewWaitlistController(db)

	waitlist := r.Group("/waitlist")
	waitlist.Post("/", ctrl.JoinWaitlist)
	waitlist.Get("/", authMiddleware.AdminAuth(), ctrl.GetWaitlist)
}
