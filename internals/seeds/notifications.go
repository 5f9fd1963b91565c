// file: internals/seeds/notifications.go
package seeds

import (
	"time"

	notifModel "ems_backend/internals/features/notifications/model"
)

func strPtr(s string) *string { return &s }

// Notifications: feed awal lonceng notifikasi, terbaru dulu.
func Notifications(now time.Time) []notifModel.NotificationModel {
	return []notifModel.NotificationModel{
		{
			NotificationID:        "notif-1",
			NotificationTitle:     "New employee added",
			NotificationMessage:   "Priya Singh completed onboarding for the Product team.",
			NotificationCategory:  notifModel.CategoryHR,
			NotificationCreatedAt: now,
			IsRead:                false,
			Actor:                 strPtr("Priya Singh"),
		},
		{
			NotificationID:        "notif-2",
			NotificationTitle:     "Leave request approved",
			NotificationMessage:   "Rahul Sharma's vacation leave was approved.",
			NotificationCategory:  notifModel.CategoryLeave,
			NotificationCreatedAt: now.AddDate(0, 0, -1),
			IsRead:                false,
			Actor:                 strPtr("Admin"),
		},
		{
			NotificationID:        "notif-3",
			NotificationTitle:     "Attendance summary generated",
			NotificationMessage:   "Weekly attendance summary is ready for review.",
			NotificationCategory:  notifModel.CategoryAttendance,
			NotificationCreatedAt: now.AddDate(0, 0, -1),
			IsRead:                true,
			ActionURL:             strPtr("#attendance-report"),
		},
		{
			NotificationID:        "notif-4",
			NotificationTitle:     "Leave request pending",
			NotificationMessage:   "Vikram Patel submitted a medical leave request.",
			NotificationCategory:  notifModel.CategoryLeave,
			NotificationCreatedAt: now.AddDate(0, 0, -2),
			IsRead:                false,
		},
		{
			NotificationID:        "notif-5",
			NotificationTitle:     "System maintenance scheduled",
			NotificationMessage:   "The portal will be under maintenance this weekend.",
			NotificationCategory:  notifModel.CategorySystem,
			NotificationCreatedAt: now.AddDate(0, 0, -3),
			IsRead:                true,
		},
		{
			NotificationID:        "notif-6",
			NotificationTitle:     "Payroll processed",
			NotificationMessage:   "September payroll run finished for all departments.",
			NotificationCategory:  notifModel.CategoryPayroll,
			NotificationCreatedAt: now.AddDate(0, 0, -4),
			IsRead:                false,
		},
		{
			NotificationID:        "notif-7",
			NotificationTitle:     "Attendance anomaly detected",
			NotificationMessage:   "Repeated late check-ins flagged in Quality Assurance.",
			NotificationCategory:  notifModel.CategoryAttendance,
			NotificationCreatedAt: now.AddDate(0, 0, -5),
			IsRead:                true,
		},
	}
}
