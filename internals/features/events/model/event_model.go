package model

// Kategori event kalender
const (
	CategoryMeeting  = "Meeting"
	CategoryWorkshop = "Workshop"
	CategoryHoliday  = "Holiday"
	CategoryReminder = "Reminder"
)

var EventCategories = []string{CategoryMeeting, CategoryWorkshop, CategoryHoliday, CategoryReminder}

type EventModel struct {
	EventID          string `json:"event_id"`
	EventTitle       string `json:"event_title"`
	EventDate        string `json:"event_date"`           // YYYY-MM-DD
	EventTime        string `json:"event_time,omitempty"` // HH:MM, boleh kosong
	EventCategory    string `json:"event_category"`
	EventDescription string `json:"event_description,omitempty"`
}

func (m EventModel) RecordID() string { return m.EventID }

func (m EventModel) SearchFields() []string {
	return []string{m.EventTitle, m.EventDescription}
}

func IsValidCategory(category string) bool {
	for _, c := range EventCategories {
		if c == category {
			return true
		}
	}
	return false
}
