// file: internals/features/settings/controller/settings_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"ems_backend/internals/databases"
	settingsDTO "ems_backend/internals/features/settings/dto"
	settingsModel "ems_backend/internals/features/settings/model"
	userModel "ems_backend/internals/features/users/auth/model"
	helper "ems_backend/internals/helpers"
)

type SettingsController struct {
	Registry *databases.Registry
}

func NewSettingsController(registry *databases.Registry) *SettingsController {
	return &SettingsController{Registry: registry}
}

// ===================== THEME =====================
// GET /api/a/settings/theme
// Preferensi per user dari sesi; default light.
func (h *SettingsController) GetTheme(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	theme := userModel.ThemeLight
	if user, ok := h.Registry.Users.Get(userID); ok && user.Theme != "" {
		theme = user.Theme
	}

	return helper.JsonOK(c, "theme preference", fiber.Map{"theme": theme})
}

// PUT /api/a/settings/theme
func (h *SettingsController) UpdateTheme(c *fiber.Ctx) error {
	var req settingsDTO.UpdateThemeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	userID, _ := c.Locals("user_id").(string)
	updated := h.Registry.Users.Update(userID, func(u userModel.UserModel) userModel.UserModel {
		u.Theme = req.Theme
		u.UpdatedAt = time.Now()
		return u
	})
	if !updated {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Session user no longer exists")
	}

	return helper.JsonUpdated(c, "theme updated", fiber.Map{"theme": req.Theme})
}

// ===================== ORGANIZATION =====================
// GET /api/a/settings/organization
func (h *SettingsController) GetOrganization(c *fiber.Ctx) error {
	settings := h.Registry.Settings.Snapshot()
	if len(settings) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Organization settings not found")
	}
	return helper.JsonOK(c, "organization settings", settingsDTO.ToOrgSettingsResponse(settings[0]))
}

// PUT /api/a/settings/organization
func (h *SettingsController) UpdateOrganization(c *fiber.Ctx) error {
	var req settingsDTO.UpdateOrgSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	settings := h.Registry.Settings.Snapshot()
	if len(settings) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Organization settings not found")
	}

	id := settings[0].OrgID
	h.Registry.Settings.Update(id, func(s settingsModel.OrgSettingsModel) settingsModel.OrgSettingsModel {
		req.ApplyToModel(&s, time.Now())
		return s
	})

	current, _ := h.Registry.Settings.Get(id)
	return helper.JsonUpdated(c, "organization settings updated", settingsDTO.ToOrgSettingsResponse(current))
}
