package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	courseModel "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/courses/model"
	enrollmentModel "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/enrollments/model"
	paymentDTO "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/payments/dto"
	paymentModel "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/payments/model"
	paymentService "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/payments/service"
	helper "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/helpers"

	"github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/configs"
)

type PaymentController struct {
	DB       *gorm.DB
	Paystack *paymentService.PaystackClient
}

func NewPaymentController(db *gorm.DB, paystack *paymentService.PaystackClient) *PaymentController {
	return &PaymentController{DB: db, Paystack: paystack}
}

// POST /api/payments/initiate
func (ctrl *PaymentController) InitiatePayment(c *fiber.Ctx) error {
	var req paymentDTO.InitiatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var course courseModel.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", req.CourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !course.CourseIsPublished {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course is not open for enrollment")
	}

	reference := paymentService.GenerateReference()
	payment := paymentModel.PaymentModel{
		PaymentCourseID:      course.CourseID,
		PaymentCustomerName:  req.CustomerName,
		PaymentCustomerEmail: req.CustomerEmail,
		PaymentCustomerPhone: req.CustomerPhone,
		PaymentAmount:        course.CoursePriceNGN,
		PaymentCurrency:      "NGN",
		PaymentReference:     reference,
		PaymentStatus:        paymentModel.PaymentPending,
	}
	if err := ctrl.DB.Create(&payment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// link the customer's pending application so the webhook/verify flow can
	// advance it later
	if err := ctrl.DB.Model(&enrollmentModel.EnrollmentModel{}).
		Where("enrollment_email = ? AND enrollment_course_id = ? AND enrollment_status = ? AND enrollment_paystack_reference IS NULL",
			req.CustomerEmail, course.CourseID, enrollmentModel.EnrollmentPending).
		Update("enrollment_paystack_reference", reference).Error; err != nil {
		log.Printf("[PAYMENT] failed to link enrollment for %s: %v", reference, err)
	}

	// Paystack charges in kobo
	amountKobo := int64(course.CoursePriceNGN) * 100
	callbackURL := configs.ClientURL + "/payment/callback"
	metadata := map[string]interface{}{
		"course_id":     course.CourseID.String(),
		"course_name":   course.CourseTitle,
		"customer_name": req.CustomerName,
		"payment_id":    payment.PaymentID.String(),
	}

	// a gateway failure leaves the pending row behind on purpose; it records
	// the attempt and is safe to re-initiate
	initData, err := ctrl.Paystack.InitializeTransaction(c.UserContext(), req.CustomerEmail, amountKobo, reference, callbackURL, metadata)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	payment.PaymentPaystackReference = initData.Reference
	if err := ctrl.DB.Save(&payment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "Payment initiated successfully", paymentDTO.InitiatePaymentResponse{
		PaymentID:        payment.PaymentID,
		Reference:        payment.PaymentReference,
		AuthorizationURL: initData.AuthorizationURL,
		AccessCode:       initData.AccessCode,
	})
}

// POST /api/payments/verify
func (ctrl *PaymentController) VerifyPayment(c *fiber.Ctx) error {
	var req paymentDTO.VerifyPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if req.Reference == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payment reference is required")
	}

	var payment paymentModel.PaymentModel
	if err := ctrl.DB.Where("payment_reference = ?", req.Reference).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Payment record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// already reconciled; do not touch the record or the counter again
	if payment.PaymentStatus == paymentModel.PaymentSuccess {
		return helper.JsonOK(c, "Payment already verified", payment)
	}

	verifyData, err := ctrl.Paystack.VerifyTransaction(c.UserContext(), req.Reference)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if verifyData.Status != "success" {
		if err := paymentService.MarkPaymentFailed(ctrl.DB, req.Reference); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "Payment verification failed")
	}

	if err := paymentService.MarkPaymentSuccess(ctrl.DB, req.Reference, verifyData.Channel); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.Where("payment_reference = ?", req.Reference).First(&payment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Payment verified successfully", payment)
}

// GET /api/payments?status=&course_id=&page=&per_page= (admin)
func (ctrl *PaymentController) GetPayments(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&paymentModel.PaymentModel{}).
		Select("payments.*, courses.course_title").
		Joins("LEFT JOIN courses ON courses.course_id = payments.payment_course_id").
		Order("payments.created_at desc")
	countQ := ctrl.DB.Model(&paymentModel.PaymentModel{})
	revenueQ := ctrl.DB.Model(&paymentModel.PaymentModel{}).
		Where("payment_status = ?", paymentModel.PaymentSuccess)

	if status := c.Query("status"); status != "" {
		q = q.Where("payments.payment_status = ?", status)
		countQ = countQ.Where("payment_status = ?", status)
	}
	if courseIDStr := c.Query("course_id"); courseIDStr != "" {
		courseID, err := uuid.Parse(courseIDStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
		}
		q = q.Where("payments.payment_course_id = ?", courseID)
		countQ = countQ.Where("payment_course_id = ?", courseID)
		revenueQ = revenueQ.Where("payment_course_id = ?", courseID)
	}

	var total int64
	if err := countQ.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	p := helper.ResolvePaging(c, 20, 100)
	var payments []paymentDTO.PaymentWithCourse
	if err := q.Offset(p.Offset).Limit(p.Limit).Scan(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var totalRevenue int64
	if err := revenueQ.Select("COALESCE(SUM(payment_amount), 0)").Scan(&totalRevenue).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":       true,
		"count":         total,
		"total_revenue": totalRevenue,
		"data":          payments,
	})
}

// GET /api/payments/:reference (admin)
func (ctrl *PaymentController) GetPaymentByReference(c *fiber.Ctx) error {
	reference := c.Params("reference")

	var payment paymentDTO.PaymentWithCourse
	err := ctrl.DB.Model(&paymentModel.PaymentModel{}).
		Select("payments.*, courses.course_title").
		Joins("LEFT JOIN courses ON courses.course_id = payments.payment_course_id").
		Where("payments.payment_reference = ?", reference).
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Payment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", payment)
}

// POST /api/payments/webhook
// The signature header is the only authentication on this endpoint. Events we
// cannot act on still return 200 so the gateway stops redelivering them.
func (ctrl *PaymentController) HandleWebhook(c *fiber.Ctx) error {
	body := c.Body()
	signature := c.Get("x-paystack-signature")

	if !ctrl.Paystack.VerifyWebhookSignature(body, signature) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid signature")
	}

	event, err := paymentService.ParseWebhookEvent(body)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid webhook payload")
	}

	// audit trail first, processing second
	audit := paymentModel.PaymentEventModel{
		PaymentEventReference: event.Data.Reference,
		PaymentEventType:      event.Event,
		PaymentEventPayload:   datatypes.JSON(body),
	}
	if err := ctrl.DB.Create(&audit).Error; err != nil {
		log.Printf("[WEBHOOK] failed to record event %s: %v", event.Event, err)
	}

	if event.Event != "charge.success" {
		log.Printf("[WEBHOOK] ignoring event %s", event.Event)
		return c.SendString("Webhook received")
	}

	if err := paymentService.MarkPaymentSuccess(ctrl.DB, event.Data.Reference, event.Data.Channel); err != nil {
		if errors.Is(err, paymentService.ErrPaymentNotFound) {
			log.Printf("[WEBHOOK] payment not found for reference: %s", event.Data.Reference)
			return c.SendString("Webhook received")
		}
		log.Printf("[WEBHOOK] failed to process %s: %v", event.Data.Reference, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Webhook error")
	}

	return c.SendString("Webhook received")
}
