package model

import "time"

// Status kepegawaian (badge di list view)
const (
	StatusActive    = "Active"
	StatusOnLeave   = "On Leave"
	StatusProbation = "Probation"
)

var EmployeeStatuses = []string{StatusActive, StatusOnLeave, StatusProbation}

type EmployeeModel struct {
	EmployeeID         string    `json:"employee_id"`
	EmployeeName       string    `json:"employee_name"`
	EmployeeEmail      string    `json:"employee_email"`
	EmployeeRole       string    `json:"employee_role"`
	EmployeeDepartment string    `json:"employee_department"`
	EmployeeStatus     string    `json:"employee_status"`
	EmployeeJoinDate   string    `json:"employee_join_date"` // YYYY-MM-DD
	EmployeeCreatedAt  time.Time `json:"employee_created_at"`
	EmployeeUpdatedAt  time.Time `json:"employee_updated_at"`
}

func (m EmployeeModel) RecordID() string { return m.EmployeeID }

// SearchFields: gabungan field untuk text search list view
// (name, email, role, department, mengikuti portal).
func (m EmployeeModel) SearchFields() []string {
	return []string{m.EmployeeName, m.EmployeeEmail, m.EmployeeRole, m.EmployeeDepartment}
}

func IsValidStatus(status string) bool {
	for _, s := range EmployeeStatuses {
		if s == status {
			return true
		}
	}
	return false
}
