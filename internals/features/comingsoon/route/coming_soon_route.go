package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	comingSoonController "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/comingsoon/controller"
	authMiddleware "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/middlewares/auth"
)

func ComingSoonRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := comingSoonController.NewComingSoonController(db)

	comingSoon := r.Group("/coming-soon")
	comingSoon.Get("/", ctrl.GetAll)
	comingSoon.Get("/:id", ctrl.GetOne)

	comingSoon.Post("/", authMiddleware.AdminAuth(), ctrl.Create)
	comingSoon.Put("/:id", authMiddleware.AdminAuth(), ctrl.Update)
	comingSoon.Delete("/:id", authMiddleware.AdminAuth(), ctrl.Delete)
}
