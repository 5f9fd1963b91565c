// file: internals/features/leaves/dto/leave_dto.go
package dto

import (
	model "ems_backend/internals/features/leaves/model"
)

/* ===================== REQUESTS ===================== */

// Apply: status tidak ada di payload, selalu mulai Pending.
type ApplyLeaveRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	LeaveType  string `json:"leave_type" validate:"required,oneof=Casual Medical Vacation Unpaid"`
	StartDate  string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Reason     string `json:"reason" validate:"omitempty,max=500"`
}

/* ===================== RESPONSES ===================== */

type LeaveResponse struct {
	LeaveID      string `json:"leave_id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Department   string `json:"department"`
	LeaveType    string `json:"leave_type"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Days         int    `json:"days"`
	Reason       string `json:"reason"`
	Status       string `json:"status"`
	AppliedOn    string `json:"applied_on"`
}

func ToLeaveResponse(m model.LeaveModel) LeaveResponse {
	return LeaveResponse{
		LeaveID:      m.LeaveID,
		EmployeeID:   m.EmployeeID,
		EmployeeName: m.EmployeeName,
		Department:   m.Department,
		LeaveType:    m.LeaveType,
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		Days:         m.Days,
		Reason:       m.Reason,
		Status:       m.Status,
		AppliedOn:    m.AppliedOn,
	}
}

func ToLeaveResponses(models []model.LeaveModel) []LeaveResponse {
	out := make([]LeaveResponse, 0, len(models))
	for _, m := range models {
		out = append(out, ToLeaveResponse(m))
	}
	return out
}
