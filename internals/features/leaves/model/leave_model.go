package model

// Tipe cuti yang dikenal form pengajuan
const (
	TypeCasual   = "Casual"
	TypeMedical  = "Medical"
	TypeVacation = "Vacation"
	TypeUnpaid   = "Unpaid"
)

var LeaveTypes = []string{TypeCasual, TypeMedical, TypeVacation, TypeUnpaid}

// State machine: Pending -> Approved | Rejected (terminal setelah diputuskan)
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// DefaultReason dipakai kalau form dikirim tanpa alasan.
const DefaultReason = "Leave requested via self-service portal."

type LeaveModel struct {
	LeaveID      string `json:"leave_id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Department   string `json:"department"`
	LeaveType    string `json:"leave_type"`
	StartDate    string `json:"start_date"` // YYYY-MM-DD
	EndDate      string `json:"end_date"`   // YYYY-MM-DD
	Days         int    `json:"days"`
	Reason       string `json:"reason"`
	Status       string `json:"status"`
	AppliedOn    string `json:"applied_on"` // YYYY-MM-DD
}

func (m LeaveModel) RecordID() string { return m.LeaveID }

func (m LeaveModel) SearchFields() []string {
	return []string{m.EmployeeName, m.EmployeeID}
}

func IsValidType(leaveType string) bool {
	for _, t := range LeaveTypes {
		if t == leaveType {
			return true
		}
	}
	return false
}
