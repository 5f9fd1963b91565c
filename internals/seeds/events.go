// file: internals/seeds/events.go
package seeds

import (
	"time"

	eventModel "ems_backend/internals/features/events/model"
	helper "ems_backend/internals/helpers"
)

// Events: agenda perusahaan untuk kalender dashboard.
func Events(now time.Time) []eventModel.EventModel {
	return []eventModel.EventModel{
		{
			EventID:          "event-quarterly-review",
			EventTitle:       "Quarterly Review",
			EventDate:        now.Format(helper.ISODate),
			EventTime:        "11:00",
			EventCategory:    eventModel.CategoryMeeting,
			EventDescription: "Discuss KPIs and roadmap with leadership.",
		},
		{
			EventID:          "event-design-workshop",
			EventTitle:       "Design Systems Workshop",
			EventDate:        now.AddDate(0, 0, 4).Format(helper.ISODate),
			EventTime:        "15:00",
			EventCategory:    eventModel.CategoryWorkshop,
			EventDescription: "Hands-on session for the shared component library.",
		},
		{
			EventID:          "event-founders-day",
			EventTitle:       "Founder's Day",
			EventDate:        now.AddDate(0, 0, 10).Format(helper.ISODate),
			EventCategory:    eventModel.CategoryHoliday,
			EventDescription: "Company-wide office holiday.",
		},
	}
}
