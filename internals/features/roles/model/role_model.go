package model

import "ems_backend/internals/constants"

type RoleModel struct {
	RoleID          string          `json:"role_id"`
	RoleName        string          `json:"role_name"`
	RoleDescription string          `json:"role_description"`
	Permissions     map[string]bool `json:"permissions"`
	AssignedUsers   int             `json:"assigned_users"`
}

func (m RoleModel) RecordID() string { return m.RoleID }

func (m RoleModel) SearchFields() []string {
	return []string{m.RoleName, m.RoleDescription}
}

// EnabledPermissionCount menghitung permission yang aktif.
func (m RoleModel) EnabledPermissionCount() int {
	count := 0
	for _, enabled := range m.Permissions {
		if enabled {
			count++
		}
	}
	return count
}

// NewPermissionMap membuat map lengkap atas permission set, hanya
// entry di enabled yang true.
func NewPermissionMap(enabled ...string) map[string]bool {
	perms := make(map[string]bool, len(constants.Permissions))
	for _, p := range constants.Permissions {
		perms[p] = false
	}
	for _, p := range enabled {
		if _, ok := perms[p]; ok {
			perms[p] = true
		}
	}
	return perms
}

// NormalizePermissions melengkapi map dari request supaya seluruh
// permission set selalu hadir dan key asing dibuang.
func NormalizePermissions(raw map[string]bool) map[string]bool {
	perms := NewPermissionMap()
	for name, enabled := range raw {
		if _, ok := perms[name]; ok {
			perms[name] = enabled
		}
	}
	return perms
}
