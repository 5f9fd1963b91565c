package model

// Status kehadiran harian
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusOnLeave = "On Leave"
	StatusRemote  = "Remote"
)

var AttendanceStatuses = []string{StatusPresent, StatusAbsent, StatusOnLeave, StatusRemote}

// AttendanceModel menyalin nama/departemen/role karyawan saat record dibuat.
// Salinan direkonsiliasi oleh registry saat data karyawan berubah.
type AttendanceModel struct {
	AttendanceID string  `json:"attendance_id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Department   string  `json:"department"`
	Role         string  `json:"role"`
	Date         string  `json:"date"` // YYYY-MM-DD
	CheckIn      *string `json:"check_in"`
	CheckOut     *string `json:"check_out"`
	Status       string  `json:"status"`
	TotalHours   string  `json:"total_hours"`
}

func (m AttendanceModel) RecordID() string { return m.AttendanceID }

func (m AttendanceModel) SearchFields() []string {
	return []string{m.EmployeeName, m.EmployeeID}
}

func IsValidStatus(status string) bool {
	for _, s := range AttendanceStatuses {
		if s == status {
			return true
		}
	}
	return false
}
