// file: internals/features/departments/dto/department_dto.go
package dto

import (
	"strings"
	"time"

	model "ems_backend/internals/features/departments/model"
)

/* ===================== REQUESTS ===================== */

type CreateDepartmentRequest struct {
	DepartmentName          string `json:"department_name" validate:"required,min=2,max=80"`
	DepartmentDescription   string `json:"department_description" validate:"omitempty,max=300"`
	DepartmentEmployeeCount *int   `json:"department_employee_count" validate:"omitempty,gte=0"`
}

func (r CreateDepartmentRequest) ToModel(id string, now time.Time) model.DepartmentModel {
	count := 0
	if r.DepartmentEmployeeCount != nil {
		count = *r.DepartmentEmployeeCount
	}
	return model.DepartmentModel{
		DepartmentID:            id,
		DepartmentName:          strings.TrimSpace(r.DepartmentName),
		DepartmentDescription:   strings.TrimSpace(r.DepartmentDescription),
		DepartmentEmployeeCount: count,
		DepartmentCreatedAt:     now,
		DepartmentUpdatedAt:     now,
	}
}

type UpdateDepartmentRequest struct {
	DepartmentName          *string `json:"department_name" validate:"omitempty,min=2,max=80"`
	DepartmentDescription   *string `json:"department_description" validate:"omitempty,max=300"`
	DepartmentEmployeeCount *int    `json:"department_employee_count" validate:"omitempty,gte=0"`
}

func (r *UpdateDepartmentRequest) ApplyToModel(m *model.DepartmentModel, now time.Time) {
	if r.DepartmentName != nil {
		m.DepartmentName = strings.TrimSpace(*r.DepartmentName)
	}
	if r.DepartmentDescription != nil {
		m.DepartmentDescription = strings.TrimSpace(*r.DepartmentDescription)
	}
	if r.DepartmentEmployeeCount != nil {
		m.DepartmentEmployeeCount = *r.DepartmentEmployeeCount
	}
	m.DepartmentUpdatedAt = now
}

/* ===================== RESPONSES ===================== */

type DepartmentResponse struct {
	DepartmentID            string    `json:"department_id"`
	DepartmentName          string    `json:"department_name"`
	DepartmentDescription   string    `json:"department_description"`
	DepartmentEmployeeCount int       `json:"department_employee_count"`
	DepartmentCreatedAt     time.Time `json:"department_created_at"`
	DepartmentUpdatedAt     time.Time `json:"department_updated_at"`
}

func ToDepartmentResponse(m model.DepartmentModel) DepartmentResponse {
	return DepartmentResponse{
		DepartmentID:            m.DepartmentID,
		DepartmentName:          m.DepartmentName,
		DepartmentDescription:   m.DepartmentDescription,
		DepartmentEmployeeCount: m.DepartmentEmployeeCount,
		DepartmentCreatedAt:     m.DepartmentCreatedAt,
		DepartmentUpdatedAt:     m.DepartmentUpdatedAt,
	}
}

func ToDepartmentResponses(models []model.DepartmentModel) []DepartmentResponse {
	out := make([]DepartmentResponse, 0, len(models))
	for _, m := range models {
		out = append(out, ToDepartmentResponse(m))
	}
	return out
}
