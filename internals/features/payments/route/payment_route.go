package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/payments/controller"
	paymentService "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/payments/service"
	authMiddleware "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/middlewares/auth"
)

func PaymentRoutes(r fiber.Router, db *gorm.DB, paystack *paymentService.PaystackClient) {
	ctrl := paymentController.NewPaymentController(db, paystack)

	payments := r.Group("/payments")
	payments.Post("/initiate", ctrl.InitiatePayment)
	payments.Post("/verify", ctrl.VerifyPayment)
	payments.Post("/webhook", ctrl.HandleWebhook)

	payments.Get("/", authMiddleware.AdminAuth(), ctrl.GetPayments)
	payments.Get("/:reference", authMiddleware.AdminAuth(), ctrl.GetPaymentByReference)
}
