// file: internals/features/roles/dto/role_dto.go
package dto

import (
	"strings"

	model "ems_backend/internals/features/roles/model"
)

/* ===================== REQUESTS ===================== */

type CreateRoleRequest struct {
	RoleName        string          `json:"role_name" validate:"required,min=2,max=60"`
	RoleDescription string          `json:"role_description" validate:"omitempty,max=300"`
	Permissions     map[string]bool `json:"permissions" validate:"omitempty"`
}

func (r CreateRoleRequest) ToModel(id string) model.RoleModel {
	return model.RoleModel{
		RoleID:          id,
		RoleName:        strings.TrimSpace(r.RoleName),
		RoleDescription: strings.TrimSpace(r.RoleDescription),
		Permissions:     model.NormalizePermissions(r.Permissions),
		AssignedUsers:   0,
	}
}

type UpdateRoleRequest struct {
	RoleName        *string          `json:"role_name" validate:"omitempty,min=2,max=60"`
	RoleDescription *string          `json:"role_description" validate:"omitempty,max=300"`
	Permissions     *map[string]bool `json:"permissions" validate:"omitempty"`
}

func (r *UpdateRoleRequest) ApplyToModel(m *model.RoleModel) {
	if r.RoleName != nil {
		m.RoleName = strings.TrimSpace(*r.RoleName)
	}
	if r.RoleDescription != nil {
		m.RoleDescription = strings.TrimSpace(*r.RoleDescription)
	}
	if r.Permissions != nil {
		m.Permissions = model.NormalizePermissions(*r.Permissions)
	}
}

type TogglePermissionRequest struct {
	Permission string `json:"permission" validate:"required"`
}

/* ===================== RESPONSES ===================== */

type RoleResponse struct {
	RoleID          string          `json:"role_id"`
	RoleName        string          `json:"role_name"`
	RoleDescription string          `json:"role_description"`
	Permissions     map[string]bool `json:"permissions"`
	EnabledCount    int             `json:"enabled_count"`
	AssignedUsers   int             `json:"assigned_users"`
}

type RoleSummary struct {
	TotalRoles        int     `json:"total_roles"`
	TotalAssignments  int     `json:"total_assignments"`
	HighPrivilege     int     `json:"high_privilege_roles"`
	AvgEnabledPerRole float64 `json:"avg_enabled_permissions"`
}

func ToRoleResponse(m model.RoleModel) RoleResponse {
	return RoleResponse{
		RoleID:          m.RoleID,
		RoleName:        m.RoleName,
		RoleDescription: m.RoleDescription,
		Permissions:     m.Permissions,
		EnabledCount:    m.EnabledPermissionCount(),
		AssignedUsers:   m.AssignedUsers,
	}
}

func ToRoleResponses(models []model.RoleModel) []RoleResponse {
	out := make([]RoleResponse, 0, len(models))
	for _, m := range models {
		out = append(out, ToRoleResponse(m))
	}
	return out
}
