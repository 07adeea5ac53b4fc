package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminRoute "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/admins/route"
	comingSoonRoute "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/comingsoon/route"
	contactRoute "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/contacts/route"
	courseRoute "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/courses/route"
	dashboardRoute "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/dashboard/route"
	enrollmentRoute "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/enrollments/route"
	paymentRoute "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/payments/route"
	paymentService "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/payments/service"
	scheduleRoute "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/schedules/route"
	waitlistRoute "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/waitlist/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, paystack *paymentService.PaystackClient) {
	api := app.Group("/api")

	log.Println("[INFO] Mounting Auth routes...")
	adminRoute.AuthRoutes(api, db)

	log.Println("[INFO] Mounting Course routes...")
	courseRoute.CourseRoutes(api, db)

	log.Println("[INFO] Mounting Schedule routes...")
	scheduleRoute.ScheduleRoutes(api, db)

	log.Println("[INFO] Mounting Contact/Waitlist routes...")
	contactRoute.ContactRoutes(api, db)
	waitlistRoute.WaitlistRoutes(api, db)
	comingSoonRoute.ComingSoonRoutes(api, db)

	log.Println("[INFO] Mounting Enrollment routes...")
	enrollmentRoute.EnrollmentRoutes(api, db)

	log.Println("[INFO] Mounting Payment routes...")
	paymentRoute.PaymentRoutes(api, db, paystack)

	log.Println("[INFO] Mounting Dashboard routes...")
	dashboardRoute.DashboardRoutes(api, db)
}
