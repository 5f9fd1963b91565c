package databases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	empModel "ems_backend/internals/features/employees/model"
)

func TestRegistrySeedsEveryStore(t *testing.T) {
	r := NewRegistry()

	assert.Equal(t, 5, r.Employees.Len())
	assert.Equal(t, 5, r.Departments.Len())
	assert.Equal(t, 50, r.Attendance.Len())
	assert.Equal(t, 5, r.Leaves.Len())
	assert.Equal(t, 15, r.Salaries.Len())
	assert.Equal(t, 3, r.Roles.Len())
	assert.Equal(t, 7, r.Notifications.Len())
	assert.Equal(t, 3, r.Events.Len())
	assert.Equal(t, 1, r.Users.Len())
	assert.Equal(t, 1, r.Settings.Len())
	require.NotNil(t, r.Blacklist)
}

// Update karyawan harus merembet ke salinan nama/departemen/role
// di attendance, leaves, dan payroll.
func TestEmployeeUpdatePropagatesToCopies(t *testing.T) {
	r := NewRegistry()

	r.Employees.Update("EMP-002", func(e empModel.EmployeeModel) empModel.EmployeeModel {
		e.EmployeeName = "Rahul S. Sharma"
		e.EmployeeDepartment = "Product"
		return e
	})

	for _, lv := range r.Leaves.Snapshot() {
		if lv.EmployeeID == "EMP-002" {
			assert.Equal(t, "Rahul S. Sharma", lv.EmployeeName)
			assert.Equal(t, "Product", lv.Department)
		}
	}
	for _, s := range r.Salaries.Snapshot() {
		if s.EmployeeID == "EMP-002" {
			assert.Equal(t, "Rahul S. Sharma", s.EmployeeName)
			assert.Equal(t, "Product", s.Department)
		}
	}
	for _, a := range r.Attendance.Snapshot() {
		if a.EmployeeID == "EMP-002" {
			assert.Equal(t, "Rahul S. Sharma", a.EmployeeName)
		}
	}
}

func TestEmployeeMoveRefreshesDepartmentCounts(t *testing.T) {
	r := NewRegistry()

	r.Employees.Update("EMP-002", func(e empModel.EmployeeModel) empModel.EmployeeModel {
		e.EmployeeDepartment = "Product"
		return e
	})

	counts := map[string]int{}
	for _, d := range r.Departments.Snapshot() {
		counts[d.DepartmentName] = d.DepartmentEmployeeCount
	}
	assert.Equal(t, 0, counts["Engineering"])
	assert.Equal(t, 2, counts["Product"])
}

// Record milik karyawan yang dihapus dibiarkan sebagai histori.
func TestDeletedEmployeeKeepsHistoricalRecords(t *testing.T) {
	r := NewRegistry()

	salariesBefore := r.Salaries.Len()
	r.Employees.Delete("EMP-005")

	assert.Equal(t, salariesBefore, r.Salaries.Len())
	found := false
	for _, s := range r.Salaries.Snapshot() {
		if s.EmployeeID == "EMP-005" {
			found = true
			assert.Equal(t, "Meera Iyer", s.EmployeeName)
		}
	}
	assert.True(t, found)
}
