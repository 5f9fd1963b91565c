// file: internals/features/attendance/dto/attendance_dto.go
package dto

import (
	model "ems_backend/internals/features/attendance/model"
)

/* ===================== REQUESTS ===================== */

// CheckIn: date kosong = hari ini, time kosong = jam sekarang.
type CheckInRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	Date       string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time       string `json:"time" validate:"omitempty"` // contoh: "09:45 AM"
}

type CheckOutRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	Date       string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time       string `json:"time" validate:"omitempty"`
}

// MarkStatus: set status manual (Absent / On Leave) untuk satu hari.
type MarkStatusRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	Date       string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Status     string `json:"status" validate:"required,oneof=Present Absent 'On Leave' Remote"`
}

/* ===================== RESPONSES ===================== */

type AttendanceResponse struct {
	AttendanceID string  `json:"attendance_id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Department   string  `json:"department"`
	Role         string  `json:"role"`
	Date         string  `json:"date"`
	CheckIn      *string `json:"check_in"`
	CheckOut     *string `json:"check_out"`
	Status       string  `json:"status"`
	TotalHours   string  `json:"total_hours"`
}

type AttendanceSummary struct {
	Total   int `json:"total"`
	Present int `json:"present"`
	Remote  int `json:"remote"`
	OnLeave int `json:"on_leave"`
	Absent  int `json:"absent"`
}

func ToAttendanceResponse(m model.AttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		AttendanceID: m.AttendanceID,
		EmployeeID:   m.EmployeeID,
		EmployeeName: m.EmployeeName,
		Department:   m.Department,
		Role:         m.Role,
		Date:         m.Date,
		CheckIn:      m.CheckIn,
		CheckOut:     m.CheckOut,
		Status:       m.Status,
		TotalHours:   m.TotalHours,
	}
}

func ToAttendanceResponses(models []model.AttendanceModel) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(models))
	for _, m := range models {
		out = append(out, ToAttendanceResponse(m))
	}
	return out
}

// SummaryOf menghitung kartu ringkasan dari set yang sudah terfilter.
func SummaryOf(records []model.AttendanceModel) AttendanceSummary {
	s := AttendanceSummary{Total: len(records)}
	for _, r := range records {
		switch r.Status {
		case model.StatusPresent:
			s.Present++
		case model.StatusRemote:
			s.Remote++
		case model.StatusOnLeave:
			s.OnLeave++
		case model.StatusAbsent:
			s.Absent++
		}
	}
	return s
}
