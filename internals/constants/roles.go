package constants

// Role akun portal (form register)
const (
	RoleAdmin      = "admin"
	RoleHRManager  = "hr_manager"
	RoleSuperAdmin = "super_admin"
)

var AccountRoles = []string{RoleAdmin, RoleHRManager, RoleSuperAdmin}

// Permission set modul Roles (urutan mengikuti tampilan portal)
const (
	PermissionView          = "View"
	PermissionEdit          = "Edit"
	PermissionDelete        = "Delete"
	PermissionApprove       = "Approve"
	PermissionExportReports = "Export Reports"
	PermissionManageUsers   = "Manage Users"
)

var Permissions = []string{
	PermissionView,
	PermissionEdit,
	PermissionDelete,
	PermissionApprove,
	PermissionExportReports,
	PermissionManageUsers,
}

func IsKnownPermission(name string) bool {
	for _, p := range Permissions {
		if p == name {
			return true
		}
	}
	return false
}
