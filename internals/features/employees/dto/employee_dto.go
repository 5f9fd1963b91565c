// file: internals/features/employees/dto/employee_dto.go
package dto

import (
	"strings"
	"time"

	model "ems_backend/internals/features/employees/model"
)

/* ===================== REQUESTS ===================== */

type CreateEmployeeRequest struct {
	EmployeeName       string `json:"employee_name" validate:"required,min=2,max=100"`
	EmployeeEmail      string `json:"employee_email" validate:"required,email"`
	EmployeeRole       string `json:"employee_role" validate:"required,min=2,max=80"`
	EmployeeDepartment string `json:"employee_department" validate:"required,min=2,max=80"`
	EmployeeStatus     string `json:"employee_status" validate:"omitempty,oneof=Active 'On Leave' Probation"`
	EmployeeJoinDate   string `json:"employee_join_date" validate:"required,datetime=2006-01-02"`
}

// ToModel: builder untuk create; id dibuat controller.
func (r CreateEmployeeRequest) ToModel(id string, now time.Time) model.EmployeeModel {
	status := strings.TrimSpace(r.EmployeeStatus)
	if status == "" {
		status = model.StatusActive
	}
	return model.EmployeeModel{
		EmployeeID:         id,
		EmployeeName:       strings.TrimSpace(r.EmployeeName),
		EmployeeEmail:      strings.ToLower(strings.TrimSpace(r.EmployeeEmail)),
		EmployeeRole:       strings.TrimSpace(r.EmployeeRole),
		EmployeeDepartment: strings.TrimSpace(r.EmployeeDepartment),
		EmployeeStatus:     status,
		EmployeeJoinDate:   strings.TrimSpace(r.EmployeeJoinDate),
		EmployeeCreatedAt:  now,
		EmployeeUpdatedAt:  now,
	}
}

// Update: semua optional (partial update), id & timestamps tidak bisa diganti.
type UpdateEmployeeRequest struct {
	EmployeeName       *string `json:"employee_name" validate:"omitempty,min=2,max=100"`
	EmployeeEmail      *string `json:"employee_email" validate:"omitempty,email"`
	EmployeeRole       *string `json:"employee_role" validate:"omitempty,min=2,max=80"`
	EmployeeDepartment *string `json:"employee_department" validate:"omitempty,min=2,max=80"`
	EmployeeStatus     *string `json:"employee_status" validate:"omitempty,oneof=Active 'On Leave' Probation"`
	EmployeeJoinDate   *string `json:"employee_join_date" validate:"omitempty,datetime=2006-01-02"`
}

// ApplyToModel: terapkan hanya field yang dikirim.
func (r *UpdateEmployeeRequest) ApplyToModel(m *model.EmployeeModel, now time.Time) {
	if r.EmployeeName != nil {
		m.EmployeeName = strings.TrimSpace(*r.EmployeeName)
	}
	if r.EmployeeEmail != nil {
		m.EmployeeEmail = strings.ToLower(strings.TrimSpace(*r.EmployeeEmail))
	}
	if r.EmployeeRole != nil {
		m.EmployeeRole = strings.TrimSpace(*r.EmployeeRole)
	}
	if r.EmployeeDepartment != nil {
		m.EmployeeDepartment = strings.TrimSpace(*r.EmployeeDepartment)
	}
	if r.EmployeeStatus != nil {
		m.EmployeeStatus = strings.TrimSpace(*r.EmployeeStatus)
	}
	if r.EmployeeJoinDate != nil {
		m.EmployeeJoinDate = strings.TrimSpace(*r.EmployeeJoinDate)
	}
	m.EmployeeUpdatedAt = now
}

/* ===================== RESPONSES ===================== */

type EmployeeResponse struct {
	EmployeeID         string    `json:"employee_id"`
	EmployeeName       string    `json:"employee_name"`
	EmployeeEmail      string    `json:"employee_email"`
	EmployeeRole       string    `json:"employee_role"`
	EmployeeDepartment string    `json:"employee_department"`
	EmployeeStatus     string    `json:"employee_status"`
	EmployeeJoinDate   string    `json:"employee_join_date"`
	EmployeeCreatedAt  time.Time `json:"employee_created_at"`
	EmployeeUpdatedAt  time.Time `json:"employee_updated_at"`
}

func ToEmployeeResponse(m model.EmployeeModel) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:         m.EmployeeID,
		EmployeeName:       m.EmployeeName,
		EmployeeEmail:      m.EmployeeEmail,
		EmployeeRole:       m.EmployeeRole,
		EmployeeDepartment: m.EmployeeDepartment,
		EmployeeStatus:     m.EmployeeStatus,
		EmployeeJoinDate:   m.EmployeeJoinDate,
		EmployeeCreatedAt:  m.EmployeeCreatedAt,
		EmployeeUpdatedAt:  m.EmployeeUpdatedAt,
	}
}

func ToEmployeeResponses(models []model.EmployeeModel) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(models))
	for _, m := range models {
		out = append(out, ToEmployeeResponse(m))
	}
	return out
}
