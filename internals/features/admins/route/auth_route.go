package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminController "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/admins/controller"
	"github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/middlewares"
	authMiddleware "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/middlewares/auth"
)

func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := adminController.NewAuthController(db)

	auth := r.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Get("/me", authMiddleware.AdminAuth(), ctrl.Me)
	auth.Post("/logout", authMiddleware.AdminAuth(), ctrl.Logout)
}
