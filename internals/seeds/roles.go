// file: internals/seeds/roles.go
package seeds

import (
	"ems_backend/internals/constants"
	empModel "ems_backend/internals/features/employees/model"
	roleModel "ems_backend/internals/features/roles/model"
)

// Roles: preset peran beserta matriks permission-nya.
func Roles(employees []empModel.EmployeeModel) []roleModel.RoleModel {
	return []roleModel.RoleModel{
		{
			RoleID:          "role-admin",
			RoleName:        "Admin",
			RoleDescription: "Full access to every module, including user management.",
			Permissions:     roleModel.NewPermissionMap(constants.Permissions...),
			AssignedUsers:   2,
		},
		{
			RoleID:          "role-hr",
			RoleName:        "HR Manager",
			RoleDescription: "Manages employee records, approvals, and report exports.",
			Permissions:     roleModel.NewPermissionMap(constants.PermissionView, constants.PermissionEdit, constants.PermissionApprove, constants.PermissionExportReports),
			AssignedUsers:   3,
		},
		{
			RoleID:          "role-employee",
			RoleName:        "Employee",
			RoleDescription: "Read-only access to their own records and announcements.",
			Permissions:     roleModel.NewPermissionMap(constants.PermissionView),
			AssignedUsers:   len(employees),
		},
	}
}
