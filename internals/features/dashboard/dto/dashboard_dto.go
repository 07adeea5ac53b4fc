package dto

import (
	"github.com/google/uuid"

	contactModel "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/contacts/model"
	courseModel "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/courses/model"
	paymentDTO "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/features/payments/dto"
)

type CourseStats struct {
	Total       int64 `json:"total"`
	Published   int64 `json:"published"`
	Unpublished int64 `json:"unpublished"`
}

type MessageStats struct {
	Total  int64 `json:"total"`
	Unread int64 `json:"unread"`
	Read   int64 `json:"read"`
}

type PaymentStats struct {
	Total      int64 `json:"total"`
	Successful int64 `json:"successful"`
	Pending    int64 `json:"pending"`
	Failed     int64 `json:"failed"`
}

type CourseRevenueRow struct {
	CourseID     uuid.UUID `gorm:"column:course_id" json:"course_id"`
	CourseTitle  string    `gorm:"column:course_title" json:"course_title"`
	TotalRevenue int64     `gorm:"column:total_revenue" json:"total_revenue"`
	Enrollments  int64     `gorm:"column:enrollments" json:"enrollments"`
}

type MonthlyRevenueRow struct {
	Year    int   `gorm:"column:year" json:"year"`
	Month   int   `gorm:"column:month" json:"month"`
	Revenue int64 `gorm:"column:revenue" json:"revenue"`
	Count   int64 `gorm:"column:count" json:"count"`
}

type RevenueStats struct {
	Total    int64               `json:"total"`
	ByCourse []CourseRevenueRow  `json:"by_course"`
	Monthly  []MonthlyRevenueRow `json:"monthly"`
}

type DashboardStats struct {
	Courses  CourseStats  `json:"courses"`
	Messages MessageStats `json:"messages"`
	Payments PaymentStats `json:"payments"`
	Revenue  RevenueStats `json:"revenue"`
}

type RecentActivities struct {
	Payments []paymentDTO.PaymentWithCourse `json:"payments"`
	Messages []contactModel.ContactModel    `json:"messages"`
	Courses  []courseModel.CourseModel      `json:"courses"`
}
