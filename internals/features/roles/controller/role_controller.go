// file: internals/features/roles/controller/role_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ems_backend/internals/constants"
	"ems_backend/internals/databases"
	roleDTO "ems_backend/internals/features/roles/dto"
	roleModel "ems_backend/internals/features/roles/model"
	helper "ems_backend/internals/helpers"
	"ems_backend/internals/store"
)

type RoleController struct {
	Registry *databases.Registry
}

func NewRoleController(registry *databases.Registry) *RoleController {
	return &RoleController{Registry: registry}
}

// ===================== LIST =====================
// GET /api/a/roles/list?search=&page=&per_page=
func (h *RoleController) List(c *fiber.Ctx) error {
	search := strings.TrimSpace(c.Query("search"))
	paging := helper.ResolvePaging(c, store.DefaultPageSize, 100)

	pred := store.And(
		store.TextSearch(search, roleModel.RoleModel.SearchFields),
	)

	filtered := store.Filter(h.Registry.Roles.Snapshot(), pred)
	pageItems, info := store.Paginate(filtered, paging.Page, paging.PerPage)

	includes := fiber.Map{"permission_set": constants.Permissions}

	return helper.JsonListEx(c, "roles fetched",
		roleDTO.ToRoleResponses(pageItems),
		helper.PaginationFromView(info, len(pageItems)),
		includes,
	)
}

// ===================== SUMMARY =====================
// GET /api/a/roles/summary
func (h *RoleController) Summary(c *fiber.Ctx) error {
	roles := h.Registry.Roles.Snapshot()

	summary := roleDTO.RoleSummary{TotalRoles: len(roles)}
	enabledTotal := 0
	for _, r := range roles {
		summary.TotalAssignments += r.AssignedUsers
		if r.Permissions[constants.PermissionManageUsers] {
			summary.HighPrivilege++
		}
		enabledTotal += r.EnabledPermissionCount()
	}
	if len(roles) > 0 {
		summary.AvgEnabledPerRole = float64(enabledTotal) / float64(len(roles))
	}

	return helper.JsonOK(c, "roles summary", summary)
}

// ===================== CREATE =====================
// POST /api/a/roles
func (h *RoleController) Create(c *fiber.Ctx) error {
	var req roleDTO.CreateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	name := strings.TrimSpace(req.RoleName)
	if _, exists := h.Registry.Roles.Find(func(r roleModel.RoleModel) bool {
		return strings.EqualFold(r.RoleName, name)
	}); exists {
		return helper.JsonError(c, fiber.StatusConflict, "Role already exists")
	}

	role := req.ToModel("role-" + uuid.NewString())
	h.Registry.Roles.Prepend(role)

	return helper.JsonCreated(c, "role created", roleDTO.ToRoleResponse(role))
}

// ===================== UPDATE =====================
// PUT /api/a/roles/:id
func (h *RoleController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var req roleDTO.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updated := h.Registry.Roles.Update(id, func(r roleModel.RoleModel) roleModel.RoleModel {
		req.ApplyToModel(&r)
		return r
	})
	if !updated {
		return helper.JsonError(c, fiber.StatusNotFound, "Role not found")
	}

	role, _ := h.Registry.Roles.Get(id)
	return helper.JsonUpdated(c, "role updated", roleDTO.ToRoleResponse(role))
}

// ===================== TOGGLE PERMISSION =====================
// POST /api/a/roles/:id/toggle-permission
// Membalik tepat satu permission; nama di luar permission set ditolak.
func (h *RoleController) TogglePermission(c *fiber.Ctx) error {
	id := c.Params("id")

	var req roleDTO.TogglePermissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	perm := strings.TrimSpace(req.Permission)
	if !constants.IsKnownPermission(perm) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unknown permission: "+perm)
	}

	updated := h.Registry.Roles.Update(id, func(r roleModel.RoleModel) roleModel.RoleModel {
		perms := roleModel.NormalizePermissions(r.Permissions)
		perms[perm] = !perms[perm]
		r.Permissions = perms
		return r
	})
	if !updated {
		return helper.JsonError(c, fiber.StatusNotFound, "Role not found")
	}

	role, _ := h.Registry.Roles.Get(id)
	return helper.JsonUpdated(c, "permission toggled", roleDTO.ToRoleResponse(role))
}

// ===================== DELETE =====================
// DELETE /api/a/roles/:id
func (h *RoleController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	h.Registry.Roles.Delete(id)
	return helper.JsonDeleted(c, "role deleted", fiber.Map{"role_id": id})
}
