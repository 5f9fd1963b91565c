// file: internals/seeds/departments.go
package seeds

import (
	"strings"
	"time"

	deptModel "ems_backend/internals/features/departments/model"
	empModel "ems_backend/internals/features/employees/model"
)

var departmentDescriptions = map[string]string{
	"Human Resources":   "Manages hiring, onboarding, and employee engagement programs.",
	"Engineering":       "Builds and maintains product features, infrastructure, and tooling.",
	"Product":           "Owns product strategy, discovery, and experience design.",
	"Quality Assurance": "Ensures release stability with manual and automated testing.",
	"Operations":        "Oversees cross-functional initiatives and vendor relationships.",
}

// Departments diturunkan dari seed karyawan: satu record per departemen
// dengan jumlah karyawan aktual plus deskripsi baku.
func Departments(employees []empModel.EmployeeModel, now time.Time) []deptModel.DepartmentModel {
	counts := make(map[string]int)
	for _, e := range employees {
		counts[e.EmployeeDepartment]++
	}

	out := make([]deptModel.DepartmentModel, 0, len(counts))
	for _, name := range DepartmentOptions(employees) {
		out = append(out, deptModel.DepartmentModel{
			DepartmentID:            departmentSlug(name),
			DepartmentName:          name,
			DepartmentDescription:   departmentDescriptions[name],
			DepartmentEmployeeCount: counts[name],
			DepartmentCreatedAt:     now,
			DepartmentUpdatedAt:     now,
		})
	}
	return out
}

func departmentSlug(name string) string {
	return "dept-" + strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
