// file: internals/databases/registry.go
package databases

import (
	"log"
	"time"

	attModel "ems_backend/internals/features/attendance/model"
	deptModel "ems_backend/internals/features/departments/model"
	empModel "ems_backend/internals/features/employees/model"
	eventModel "ems_backend/internals/features/events/model"
	leaveModel "ems_backend/internals/features/leaves/model"
	notifModel "ems_backend/internals/features/notifications/model"
	salaryModel "ems_backend/internals/features/payroll/model"
	roleModel "ems_backend/internals/features/roles/model"
	settingsModel "ems_backend/internals/features/settings/model"
	userModel "ems_backend/internals/features/users/auth/model"
	"ems_backend/internals/middlewares/auth"
	"ems_backend/internals/seeds"
	"ems_backend/internals/store"
)

// Registry memegang seluruh store in-memory aplikasi.
// Satu instance per proses (atau per test), dibuat lewat NewRegistry.
type Registry struct {
	Employees     *store.Store[empModel.EmployeeModel]
	Departments   *store.Store[deptModel.DepartmentModel]
	Attendance    *store.Store[attModel.AttendanceModel]
	Leaves        *store.Store[leaveModel.LeaveModel]
	Salaries      *store.Store[salaryModel.SalaryModel]
	Roles         *store.Store[roleModel.RoleModel]
	Notifications *store.Store[notifModel.NotificationModel]
	Events        *store.Store[eventModel.EventModel]
	Users         *store.Store[userModel.UserModel]
	Settings      *store.Store[settingsModel.OrgSettingsModel]

	Blacklist *auth.TokenBlacklist
}

// NewRegistry membangun seluruh store dari data seed dan memasang
// subscription rekonsiliasi salinan data karyawan.
func NewRegistry() *Registry {
	now := time.Now()
	employees := seeds.Employees(now)

	r := &Registry{
		Employees:     store.New(employees),
		Departments:   store.New(seeds.Departments(employees, now)),
		Attendance:    store.New(seeds.Attendance(employees, now)),
		Leaves:        store.New(seeds.Leaves(employees, now)),
		Salaries:      store.New(seeds.Salaries(employees)),
		Roles:         store.New(seeds.Roles(employees)),
		Notifications: store.New(seeds.Notifications(now)),
		Events:        store.New(seeds.Events(now)),
		Users:         store.New(seeds.Users(now)),
		Settings:      store.New(seeds.OrgSettings(now)),

		Blacklist: auth.NewTokenBlacklist(),
	}

	r.Employees.Subscribe(r.reconcileEmployeeCopies)

	log.Printf("[INFO] registry siap: %d employees, %d departments, %d attendance, %d leaves, %d salaries",
		r.Employees.Len(), r.Departments.Len(), r.Attendance.Len(), r.Leaves.Len(), r.Salaries.Len())
	return r
}

// reconcileEmployeeCopies menyamakan salinan nama/departemen/role pada
// attendance, leaves, dan payroll setiap kali store karyawan berubah.
// Record milik karyawan yang sudah dihapus dibiarkan apa adanya (histori).
func (r *Registry) reconcileEmployeeCopies(employees []empModel.EmployeeModel) {
	byID := make(map[string]empModel.EmployeeModel, len(employees))
	for _, e := range employees {
		byID[e.EmployeeID] = e
	}

	r.Attendance.Dispatch(func(current []attModel.AttendanceModel) []attModel.AttendanceModel {
		next := make([]attModel.AttendanceModel, len(current))
		copy(next, current)
		for i, rec := range next {
			if emp, ok := byID[rec.EmployeeID]; ok {
				next[i].EmployeeName = emp.EmployeeName
				next[i].Department = emp.EmployeeDepartment
				next[i].Role = emp.EmployeeRole
			}
		}
		return next
	})

	r.Leaves.Dispatch(func(current []leaveModel.LeaveModel) []leaveModel.LeaveModel {
		next := make([]leaveModel.LeaveModel, len(current))
		copy(next, current)
		for i, rec := range next {
			if emp, ok := byID[rec.EmployeeID]; ok {
				next[i].EmployeeName = emp.EmployeeName
				next[i].Department = emp.EmployeeDepartment
			}
		}
		return next
	})

	r.Salaries.Dispatch(func(current []salaryModel.SalaryModel) []salaryModel.SalaryModel {
		next := make([]salaryModel.SalaryModel, len(current))
		copy(next, current)
		for i, rec := range next {
			if emp, ok := byID[rec.EmployeeID]; ok {
				next[i].EmployeeName = emp.EmployeeName
				next[i].Department = emp.EmployeeDepartment
				next[i].Role = emp.EmployeeRole
			}
		}
		return next
	})

	r.refreshDepartmentCounts(employees)
}

// refreshDepartmentCounts menghitung ulang employee_count per departemen.
func (r *Registry) refreshDepartmentCounts(employees []empModel.EmployeeModel) {
	counts := make(map[string]int)
	for _, e := range employees {
		counts[e.EmployeeDepartment]++
	}

	r.Departments.Dispatch(func(current []deptModel.DepartmentModel) []deptModel.DepartmentModel {
		next := make([]deptModel.DepartmentModel, len(current))
		copy(next, current)
		for i, dept := range next {
			next[i].DepartmentEmployeeCount = counts[dept.DepartmentName]
		}
		return next
	})
}
