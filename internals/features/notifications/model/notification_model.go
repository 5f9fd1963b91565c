package model

import "time"

// Kategori notifikasi (tab filter di portal)
const (
	CategorySystem     = "System"
	CategoryHR         = "HR"
	CategoryAttendance = "Attendance"
	CategoryLeave      = "Leave"
	CategoryPayroll    = "Payroll"
)

var NotificationCategories = []string{
	CategorySystem, CategoryHR, CategoryAttendance, CategoryLeave, CategoryPayroll,
}

type NotificationModel struct {
	NotificationID        string    `json:"notification_id"`
	NotificationTitle     string    `json:"notification_title"`
	NotificationMessage   string    `json:"notification_message"`
	NotificationCategory  string    `json:"notification_category"`
	NotificationCreatedAt time.Time `json:"notification_created_at"`
	IsRead                bool      `json:"is_read"`
	Actor                 *string   `json:"actor,omitempty"`
	ActionURL             *string   `json:"action_url,omitempty"`
}

func (m NotificationModel) RecordID() string { return m.NotificationID }

func (m NotificationModel) SearchFields() []string {
	return []string{m.NotificationTitle, m.NotificationMessage}
}

func IsValidCategory(category string) bool {
	for _, c := range NotificationCategories {
		if c == category {
			return true
		}
	}
	return false
}
