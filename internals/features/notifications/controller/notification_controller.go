// file: internals/features/notifications/controller/notification_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ems_backend/internals/databases"
	notifDTO "ems_backend/internals/features/notifications/dto"
	notifModel "ems_backend/internals/features/notifications/model"
	helper "ems_backend/internals/helpers"
	"ems_backend/internals/store"
)

type NotificationController struct {
	Registry *databases.Registry
}

func NewNotificationController(registry *databases.Registry) *NotificationController {
	return &NotificationController{Registry: registry}
}

// ===================== LIST =====================
// GET /api/a/notifications/list?category=&search=&unread_only=&page=&per_page=
// category=All (atau kosong) menampilkan semua tab.
func (h *NotificationController) List(c *fiber.Ctx) error {
	category := strings.TrimSpace(c.Query("category"))
	if strings.EqualFold(category, "All") {
		category = ""
	}
	search := strings.TrimSpace(c.Query("search"))
	unreadOnly := c.QueryBool("unread_only", false)
	paging := helper.ResolvePaging(c, store.DefaultPageSize, 100)

	var unreadPred store.Predicate[notifModel.NotificationModel]
	if unreadOnly {
		unreadPred = func(n notifModel.NotificationModel) bool { return !n.IsRead }
	}

	pred := store.And(
		store.TextSearch(search, notifModel.NotificationModel.SearchFields),
		store.Exact(category, func(n notifModel.NotificationModel) string { return n.NotificationCategory }),
		unreadPred,
	)

	filtered := store.Filter(h.Registry.Notifications.Snapshot(), pred)
	ordered := store.SortBy(filtered, func(a, b notifModel.NotificationModel) bool {
		return a.NotificationCreatedAt.After(b.NotificationCreatedAt)
	})
	pageItems, info := store.Paginate(ordered, paging.Page, paging.PerPage)

	unreadCount := 0
	for _, n := range h.Registry.Notifications.Snapshot() {
		if !n.IsRead {
			unreadCount++
		}
	}

	includes := fiber.Map{
		"day_groups":       notifDTO.GroupByDay(ordered),
		"category_options": append([]string{"All"}, notifModel.NotificationCategories...),
		"unread_count":     unreadCount,
	}

	return helper.JsonListEx(c, "notifications fetched",
		notifDTO.ToNotificationResponses(pageItems),
		helper.PaginationFromView(info, len(pageItems)),
		includes,
	)
}

// ===================== CREATE =====================
// POST /api/a/notifications
func (h *NotificationController) Create(c *fiber.Ctx) error {
	var req notifDTO.CreateNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	notif := req.ToModel("notif-"+uuid.NewString(), time.Now())
	h.Registry.Notifications.Prepend(notif)

	return helper.JsonCreated(c, "notification created", notifDTO.ToNotificationResponse(notif))
}

// ===================== MARK READ / UNREAD =====================
// POST /api/a/notifications/:id/read
// POST /api/a/notifications/:id/unread
func (h *NotificationController) MarkRead(c *fiber.Ctx) error {
	return h.setRead(c, true, "notification marked as read")
}

func (h *NotificationController) MarkUnread(c *fiber.Ctx) error {
	return h.setRead(c, false, "notification marked as unread")
}

func (h *NotificationController) setRead(c *fiber.Ctx, read bool, message string) error {
	id := c.Params("id")

	updated := h.Registry.Notifications.Update(id, func(n notifModel.NotificationModel) notifModel.NotificationModel {
		n.IsRead = read
		return n
	})
	if !updated {
		return helper.JsonError(c, fiber.StatusNotFound, "Notification not found")
	}

	notif, _ := h.Registry.Notifications.Get(id)
	return helper.JsonUpdated(c, message, notifDTO.ToNotificationResponse(notif))
}

// ===================== MARK ALL READ =====================
// POST /api/a/notifications/mark-all-read
func (h *NotificationController) MarkAllRead(c *fiber.Ctx) error {
	marked := 0
	h.Registry.Notifications.Dispatch(func(current []notifModel.NotificationModel) []notifModel.NotificationModel {
		next := make([]notifModel.NotificationModel, len(current))
		copy(next, current)
		for i := range next {
			if !next[i].IsRead {
				next[i].IsRead = true
				marked++
			}
		}
		return next
	})

	return helper.JsonUpdated(c, "all notifications marked as read", fiber.Map{"marked": marked})
}

// ===================== DELETE =====================
// DELETE /api/a/notifications/:id
func (h *NotificationController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	h.Registry.Notifications.Delete(id)
	return helper.JsonDeleted(c, "notification deleted", fiber.Map{"notification_id": id})
}
