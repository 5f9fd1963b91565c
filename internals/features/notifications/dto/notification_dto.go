// file: internals/features/notifications/dto/notification_dto.go
package dto

import (
	"strings"
	"time"

	model "ems_backend/internals/features/notifications/model"
	helper "ems_backend/internals/helpers"
)

/* ===================== REQUESTS ===================== */

type CreateNotificationRequest struct {
	NotificationTitle    string  `json:"notification_title" validate:"required,min=2,max=120"`
	NotificationMessage  string  `json:"notification_message" validate:"required,min=2,max=500"`
	NotificationCategory string  `json:"notification_category" validate:"required,oneof=System HR Attendance Leave Payroll"`
	Actor                *string `json:"actor" validate:"omitempty,max=100"`
	ActionURL            *string `json:"action_url" validate:"omitempty,max=300"`
}

func (r CreateNotificationRequest) ToModel(id string, now time.Time) model.NotificationModel {
	m := model.NotificationModel{
		NotificationID:        id,
		NotificationTitle:     strings.TrimSpace(r.NotificationTitle),
		NotificationMessage:   strings.TrimSpace(r.NotificationMessage),
		NotificationCategory:  r.NotificationCategory,
		NotificationCreatedAt: now,
		IsRead:                false,
	}
	if r.Actor != nil && strings.TrimSpace(*r.Actor) != "" {
		actor := strings.TrimSpace(*r.Actor)
		m.Actor = &actor
	}
	if r.ActionURL != nil && strings.TrimSpace(*r.ActionURL) != "" {
		url := strings.TrimSpace(*r.ActionURL)
		m.ActionURL = &url
	}
	return m
}

/* ===================== RESPONSES ===================== */

type NotificationResponse struct {
	NotificationID        string    `json:"notification_id"`
	NotificationTitle     string    `json:"notification_title"`
	NotificationMessage   string    `json:"notification_message"`
	NotificationCategory  string    `json:"notification_category"`
	NotificationCreatedAt time.Time `json:"notification_created_at"`
	IsRead                bool      `json:"is_read"`
	Actor                 *string   `json:"actor,omitempty"`
	ActionURL             *string   `json:"action_url,omitempty"`
}

// DayGroup: metadata pengelompokan feed per hari.
type DayGroup struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

func ToNotificationResponse(m model.NotificationModel) NotificationResponse {
	return NotificationResponse{
		NotificationID:        m.NotificationID,
		NotificationTitle:     m.NotificationTitle,
		NotificationMessage:   m.NotificationMessage,
		NotificationCategory:  m.NotificationCategory,
		NotificationCreatedAt: m.NotificationCreatedAt,
		IsRead:                m.IsRead,
		Actor:                 m.Actor,
		ActionURL:             m.ActionURL,
	}
}

func ToNotificationResponses(models []model.NotificationModel) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(models))
	for _, m := range models {
		out = append(out, ToNotificationResponse(m))
	}
	return out
}

// GroupByDay membangun metadata grup per tanggal, mengikuti urutan feed.
func GroupByDay(models []model.NotificationModel) []DayGroup {
	groups := make([]DayGroup, 0)
	index := make(map[string]int)
	for _, m := range models {
		day := m.NotificationCreatedAt.Format(helper.ISODate)
		if i, ok := index[day]; ok {
			groups[i].Count++
			continue
		}
		index[day] = len(groups)
		groups = append(groups, DayGroup{Date: day, Count: 1})
	}
	return groups
}
