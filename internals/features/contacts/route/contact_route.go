package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contactController "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/contacts/controller"
	authMiddleware "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/middlewares/auth"
)

func ContactRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := contactController.NewContactController(db)

	contact := r.Group("/contact")
	contact.Post("/", ctrl.SubmitContact)

	messages := contact.Group("/messages", authMiddleware.AdminAuth())
	messages.Get("/", ctrl.GetMessages)
	messages.Get("/:id", ctrl.GetMessage)
	messages.Patch("/:id/read", ctrl.ToggleReadStatus)
	messages.Delete("/:id", ctrl.DeleteMessage)
}
