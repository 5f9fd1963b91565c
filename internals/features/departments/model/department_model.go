package model

import "time"

type DepartmentModel struct {
	DepartmentID            string    `json:"department_id"`
	DepartmentName          string    `json:"department_name"`
	DepartmentDescription   string    `json:"department_description"`
	DepartmentEmployeeCount int       `json:"department_employee_count"`
	DepartmentCreatedAt     time.Time `json:"department_created_at"`
	DepartmentUpdatedAt     time.Time `json:"department_updated_at"`
}

func (m DepartmentModel) RecordID() string { return m.DepartmentID }

func (m DepartmentModel) SearchFields() []string {
	return []string{m.DepartmentName, m.DepartmentDescription}
}
