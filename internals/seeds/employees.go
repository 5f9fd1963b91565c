// file: internals/seeds/employees.go
package seeds

import (
	"time"

	empModel "ems_backend/internals/features/employees/model"
)

// Employees mengembalikan 5 record karyawan kanonik demo portal.
// ID seed stabil (EMP-001..EMP-005); id baru dari create memakai UUID.
func Employees(now time.Time) []empModel.EmployeeModel {
	rows := []struct {
		id, name, email, role, department, status, joinDate string
	}{
		{"EMP-001", "Anita Verma", "anita.verma@example.com", "HR Manager", "Human Resources", empModel.StatusActive, "2022-03-15"},
		{"EMP-002", "Rahul Sharma", "rahul.sharma@example.com", "Software Engineer", "Engineering", empModel.StatusActive, "2023-07-01"},
		{"EMP-003", "Priya Singh", "priya.singh@example.com", "Product Designer", "Product", empModel.StatusOnLeave, "2021-11-22"},
		{"EMP-004", "Vikram Patel", "vikram.patel@example.com", "QA Analyst", "Quality Assurance", empModel.StatusProbation, "2024-02-05"},
		{"EMP-005", "Meera Iyer", "meera.iyer@example.com", "Operations Lead", "Operations", empModel.StatusActive, "2019-08-19"},
	}

	out := make([]empModel.EmployeeModel, 0, len(rows))
	for _, r := range rows {
		out = append(out, empModel.EmployeeModel{
			EmployeeID:         r.id,
			EmployeeName:       r.name,
			EmployeeEmail:      r.email,
			EmployeeRole:       r.role,
			EmployeeDepartment: r.department,
			EmployeeStatus:     r.status,
			EmployeeJoinDate:   r.joinDate,
			EmployeeCreatedAt:  now,
			EmployeeUpdatedAt:  now,
		})
	}
	return out
}

// DepartmentOptions: daftar departemen unik dari seed, urut kemunculan.
func DepartmentOptions(employees []empModel.EmployeeModel) []string {
	seen := make(map[string]bool)
	out := make([]string, 0, len(employees))
	for _, e := range employees {
		if !seen[e.EmployeeDepartment] {
			seen[e.EmployeeDepartment] = true
			out = append(out, e.EmployeeDepartment)
		}
	}
	return out
}

// RoleOptions: daftar role unik dari seed, urut kemunculan.
func RoleOptions(employees []empModel.EmployeeModel) []string {
	seen := make(map[string]bool)
	out := make([]string, 0, len(employees))
	for _, e := range employees {
		if !seen[e.EmployeeRole] {
			seen[e.EmployeeRole] = true
			out = append(out, e.EmployeeRole)
		}
	}
	return out
}
