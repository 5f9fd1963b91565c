// file: internals/features/events/dto/event_dto.go
package dto

import (
	"strings"

	model "ems_backend/internals/features/events/model"
)

/* ===================== REQUESTS ===================== */

type CreateEventRequest struct {
	EventTitle       string `json:"event_title" validate:"required,min=2,max=120"`
	EventDate        string `json:"event_date" validate:"required,datetime=2006-01-02"`
	EventTime        string `json:"event_time" validate:"omitempty,datetime=15:04"`
	EventCategory    string `json:"event_category" validate:"omitempty,oneof=Meeting Workshop Holiday Reminder"`
	EventDescription string `json:"event_description" validate:"omitempty,max=500"`
}

func (r CreateEventRequest) ToModel(id string) model.EventModel {
	category := r.EventCategory
	if category == "" {
		category = model.CategoryReminder
	}
	return model.EventModel{
		EventID:          id,
		EventTitle:       strings.TrimSpace(r.EventTitle),
		EventDate:        strings.TrimSpace(r.EventDate),
		EventTime:        strings.TrimSpace(r.EventTime),
		EventCategory:    category,
		EventDescription: strings.TrimSpace(r.EventDescription),
	}
}

type UpdateEventRequest struct {
	EventTitle       *string `json:"event_title" validate:"omitempty,min=2,max=120"`
	EventDate        *string `json:"event_date" validate:"omitempty,datetime=2006-01-02"`
	EventTime        *string `json:"event_time" validate:"omitempty,datetime=15:04"`
	EventCategory    *string `json:"event_category" validate:"omitempty,oneof=Meeting Workshop Holiday Reminder"`
	EventDescription *string `json:"event_description" validate:"omitempty,max=500"`
}

func (r *UpdateEventRequest) ApplyToModel(m *model.EventModel) {
	if r.EventTitle != nil {
		m.EventTitle = strings.TrimSpace(*r.EventTitle)
	}
	if r.EventDate != nil {
		m.EventDate = strings.TrimSpace(*r.EventDate)
	}
	if r.EventTime != nil {
		m.EventTime = strings.TrimSpace(*r.EventTime)
	}
	if r.EventCategory != nil {
		m.EventCategory = *r.EventCategory
	}
	if r.EventDescription != nil {
		m.EventDescription = strings.TrimSpace(*r.EventDescription)
	}
}

/* ===================== RESPONSES ===================== */

type EventResponse struct {
	EventID          string `json:"event_id"`
	EventTitle       string `json:"event_title"`
	EventDate        string `json:"event_date"`
	EventTime        string `json:"event_time,omitempty"`
	EventCategory    string `json:"event_category"`
	EventDescription string `json:"event_description,omitempty"`
}

// CalendarDay: satu tanggal di tampilan bulan beserta event-nya.
type CalendarDay struct {
	Date   string          `json:"date"`
	Events []EventResponse `json:"events"`
}

func ToEventResponse(m model.EventModel) EventResponse {
	return EventResponse{
		EventID:          m.EventID,
		EventTitle:       m.EventTitle,
		EventDate:        m.EventDate,
		EventTime:        m.EventTime,
		EventCategory:    m.EventCategory,
		EventDescription: m.EventDescription,
	}
}

func ToEventResponses(models []model.EventModel) []EventResponse {
	out := make([]EventResponse, 0, len(models))
	for _, m := range models {
		out = append(out, ToEventResponse(m))
	}
	return out
}
