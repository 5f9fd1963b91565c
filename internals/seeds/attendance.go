// file: internals/seeds/attendance.go
package seeds

import (
	"time"

	attModel "ems_backend/internals/features/attendance/model"
	empModel "ems_backend/internals/features/employees/model"
)

const attendanceSeedDays = 10

// siklus status deterministik dari portal
var attendanceStatusCycle = []string{
	attModel.StatusPresent,
	attModel.StatusRemote,
	attModel.StatusPresent,
	attModel.StatusPresent,
	attModel.StatusOnLeave,
	attModel.StatusPresent,
	attModel.StatusPresent,
	attModel.StatusAbsent,
}

// Attendance membangkitkan kehadiran untuk 10 hari terakhir per karyawan.
// Absent dan On Leave tidak punya jam check-in/out dan total "0h".
func Attendance(employees []empModel.EmployeeModel, now time.Time) []attModel.AttendanceModel {
	dates := make([]string, 0, attendanceSeedDays)
	for i := 0; i < attendanceSeedDays; i++ {
		dates = append(dates, now.AddDate(0, 0, -i).Format("2006-01-02"))
	}

	checkIn := "09:45 AM"
	checkOut := "06:30 PM"

	records := make([]attModel.AttendanceModel, 0, len(employees)*len(dates))
	for empIdx, emp := range employees {
		for dateIdx, date := range dates {
			status := attendanceStatusCycle[(empIdx+dateIdx)%len(attendanceStatusCycle)]
			rec := attModel.AttendanceModel{
				AttendanceID: emp.EmployeeID + "-" + date,
				EmployeeID:   emp.EmployeeID,
				EmployeeName: emp.EmployeeName,
				Department:   emp.EmployeeDepartment,
				Role:         emp.EmployeeRole,
				Date:         date,
				Status:       status,
				TotalHours:   "8h 45m",
			}
			if status == attModel.StatusAbsent || status == attModel.StatusOnLeave {
				rec.TotalHours = "0h"
			} else {
				ci, co := checkIn, checkOut
				rec.CheckIn = &ci
				rec.CheckOut = &co
			}
			records = append(records, rec)
		}
	}
	return records
}
