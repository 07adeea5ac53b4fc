package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardController "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/dashboard/controller"
	authMiddleware "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/middlewares/auth"
)

func DashboardRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := dashboardController.NewDashboardController(db)

	dashboard := r.Group("/dashboard", authMiddleware.AdminAuth())
	dashboard.Get("/stats", ctrl.GetStats)
	dashboard.Get("/recent-activities", ctrl.GetRecentActivities)
}
