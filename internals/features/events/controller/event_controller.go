// file: internals/features/events/controller/event_controller.go
package controller

import (
	"sort"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ems_backend/internals/databases"
	eventDTO "ems_backend/internals/features/events/dto"
	eventModel "ems_backend/internals/features/events/model"
	helper "ems_backend/internals/helpers"
	"ems_backend/internals/store"
)

type EventController struct {
	Registry *databases.Registry
}

func NewEventController(registry *databases.Registry) *EventController {
	return &EventController{Registry: registry}
}

// ===================== LIST =====================
// GET /api/a/events/list?search=&category=&page=&per_page=
func (h *EventController) List(c *fiber.Ctx) error {
	search := strings.TrimSpace(c.Query("search"))
	category := strings.TrimSpace(c.Query("category"))
	paging := helper.ResolvePaging(c, store.DefaultPageSize, 100)

	pred := store.And(
		store.TextSearch(search, eventModel.EventModel.SearchFields),
		store.Exact(category, func(e eventModel.EventModel) string { return e.EventCategory }),
	)

	filtered := store.Filter(h.Registry.Events.Snapshot(), pred)
	ordered := store.SortBy(filtered, func(a, b eventModel.EventModel) bool {
		if a.EventDate != b.EventDate {
			return a.EventDate < b.EventDate
		}
		return a.EventTime < b.EventTime
	})
	pageItems, info := store.Paginate(ordered, paging.Page, paging.PerPage)

	includes := fiber.Map{"category_options": eventModel.EventCategories}

	return helper.JsonListEx(c, "events fetched",
		eventDTO.ToEventResponses(pageItems),
		helper.PaginationFromView(info, len(pageItems)),
		includes,
	)
}

// ===================== MONTH VIEW =====================
// GET /api/a/events/month?month=2025-10
// Default bulan berjalan. Event dikelompokkan per tanggal, terurut.
func (h *EventController) MonthView(c *fiber.Ctx) error {
	month := strings.TrimSpace(c.Query("month"))
	if month == "" {
		month = time.Now().Format("2006-01")
	}
	if _, err := time.Parse("2006-01", month); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "month must look like 2025-10")
	}

	byDate := make(map[string][]eventModel.EventModel)
	for _, e := range h.Registry.Events.Snapshot() {
		if strings.HasPrefix(e.EventDate, month+"-") {
			byDate[e.EventDate] = append(byDate[e.EventDate], e)
		}
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	days := make([]eventDTO.CalendarDay, 0, len(dates))
	for _, d := range dates {
		dayEvents := store.SortBy(byDate[d], func(a, b eventModel.EventModel) bool {
			return a.EventTime < b.EventTime
		})
		days = append(days, eventDTO.CalendarDay{
			Date:   d,
			Events: eventDTO.ToEventResponses(dayEvents),
		})
	}

	return helper.JsonOK(c, "month view", fiber.Map{
		"month": month,
		"days":  days,
	})
}

// ===================== CREATE =====================
// POST /api/a/events
func (h *EventController) Create(c *fiber.Ctx) error {
	var req eventDTO.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	event := req.ToModel("event-" + uuid.NewString())
	h.Registry.Events.Prepend(event)

	return helper.JsonCreated(c, "event created", eventDTO.ToEventResponse(event))
}

// ===================== UPDATE =====================
// PUT /api/a/events/:id
func (h *EventController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var req eventDTO.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updated := h.Registry.Events.Update(id, func(e eventModel.EventModel) eventModel.EventModel {
		req.ApplyToModel(&e)
		return e
	})
	if !updated {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}

	event, _ := h.Registry.Events.Get(id)
	return helper.JsonUpdated(c, "event updated", eventDTO.ToEventResponse(event))
}

// ===================== DELETE =====================
// DELETE /api/a/events/:id
func (h *EventController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	h.Registry.Events.Delete(id)
	return helper.JsonDeleted(c, "event deleted", fiber.Map{"event_id": id})
}
