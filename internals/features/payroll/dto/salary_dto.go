// file: internals/features/payroll/dto/salary_dto.go
package dto

import (
	"strings"

	model "ems_backend/internals/features/payroll/model"
)

/* ===================== REQUESTS ===================== */

// Create: status awal selalu Pending; transisi Paid lewat endpoint mark-paid.
type CreateSalaryRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	Month      string `json:"month" validate:"required,min=3,max=30"` // contoh: "October 2025"
	Amount     int    `json:"amount" validate:"gte=0"`
	Remarks    string `json:"remarks" validate:"omitempty,max=300"`
}

// Update: tanpa status; hanya nominal dan catatan.
type UpdateSalaryRequest struct {
	Amount  *int    `json:"amount" validate:"omitempty,gte=0"`
	Remarks *string `json:"remarks" validate:"omitempty,max=300"`
}

func (r *UpdateSalaryRequest) ApplyToModel(m *model.SalaryModel) {
	if r.Amount != nil {
		m.Amount = *r.Amount
	}
	if r.Remarks != nil {
		remarks := strings.TrimSpace(*r.Remarks)
		if remarks == "" {
			m.Remarks = nil
		} else {
			m.Remarks = &remarks
		}
	}
}

/* ===================== RESPONSES ===================== */

type SalaryResponse struct {
	SalaryID     string  `json:"salary_id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Department   string  `json:"department"`
	Role         string  `json:"role"`
	Month        string  `json:"month"`
	Amount       int     `json:"amount"`
	Status       string  `json:"status"`
	PaymentDate  *string `json:"payment_date,omitempty"`
	Remarks      *string `json:"remarks,omitempty"`
}

type MonthSummary struct {
	Month           string `json:"month"`
	TotalAmount     int    `json:"total_amount"`
	PaidCount       int    `json:"paid_count"`
	PendingCount    int    `json:"pending_count"`
	ProcessingCount int    `json:"processing_count"`
	Outstanding     int    `json:"outstanding_amount"`
}

func ToSalaryResponse(m model.SalaryModel) SalaryResponse {
	return SalaryResponse{
		SalaryID:     m.SalaryID,
		EmployeeID:   m.EmployeeID,
		EmployeeName: m.EmployeeName,
		Department:   m.Department,
		Role:         m.Role,
		Month:        m.Month,
		Amount:       m.Amount,
		Status:       m.Status,
		PaymentDate:  m.PaymentDate,
		Remarks:      m.Remarks,
	}
}

func ToSalaryResponses(models []model.SalaryModel) []SalaryResponse {
	out := make([]SalaryResponse, 0, len(models))
	for _, m := range models {
		out = append(out, ToSalaryResponse(m))
	}
	return out
}

// SummarizeMonth menghitung kartu ringkasan payroll satu periode.
func SummarizeMonth(month string, records []model.SalaryModel) MonthSummary {
	s := MonthSummary{Month: month}
	for _, r := range records {
		s.TotalAmount += r.Amount
		switch r.Status {
		case model.StatusPaid:
			s.PaidCount++
		case model.StatusPending:
			s.PendingCount++
			s.Outstanding += r.Amount
		case model.StatusProcessing:
			s.ProcessingCount++
			s.Outstanding += r.Amount
		}
	}
	return s
}
