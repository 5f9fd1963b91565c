// file: internals/seeds/leaves.go
package seeds

import (
	"fmt"
	"time"

	empModel "ems_backend/internals/features/employees/model"
	leaveModel "ems_backend/internals/features/leaves/model"
)

var leaveTypeCycle = []string{
	leaveModel.TypeCasual,
	leaveModel.TypeMedical,
	leaveModel.TypeVacation,
	leaveModel.TypeUnpaid,
}

var leaveStatusCycle = []string{
	leaveModel.StatusPending,
	leaveModel.StatusApproved,
	leaveModel.StatusPending,
	leaveModel.StatusRejected,
}

// Leaves membangkitkan satu pengajuan cuti per karyawan, mundur 3 hari
// per index, dengan siklus tipe/status deterministik dari portal.
func Leaves(employees []empModel.EmployeeModel, now time.Time) []leaveModel.LeaveModel {
	out := make([]leaveModel.LeaveModel, 0, len(employees))
	for idx, emp := range employees {
		base := now.AddDate(0, 0, -idx*3)
		end := base.AddDate(0, 0, idx%3+1)

		out = append(out, leaveModel.LeaveModel{
			LeaveID:      fmt.Sprintf("%s-lv-%d", emp.EmployeeID, idx+1),
			EmployeeID:   emp.EmployeeID,
			EmployeeName: emp.EmployeeName,
			Department:   emp.EmployeeDepartment,
			LeaveType:    leaveTypeCycle[idx%len(leaveTypeCycle)],
			StartDate:    base.Format("2006-01-02"),
			EndDate:      end.Format("2006-01-02"),
			Days:         idx%3 + 2,
			Reason:       "Personal commitments and rest.",
			Status:       leaveStatusCycle[idx%len(leaveStatusCycle)],
			AppliedOn:    base.Format("2006-01-02"),
		})
	}
	return out
}
