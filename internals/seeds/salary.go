// file: internals/seeds/salary.go
package seeds

import (
	"strings"

	empModel "ems_backend/internals/features/employees/model"
	salaryModel "ems_backend/internals/features/payroll/model"
)

// Periode payroll demo, terbaru dulu.
var SalaryMonths = []string{"October 2025", "September 2025", "August 2025"}

var monthPayoutDates = map[string]string{
	"October 2025":   "2025-10-30",
	"September 2025": "2025-09-30",
	"August 2025":    "2025-08-30",
}

const DefaultBaseSalary = 75000

var BaseSalaryByRole = map[string]int{
	"HR Manager":        78000,
	"Software Engineer": 92000,
	"Product Designer":  86000,
	"QA Analyst":        66000,
	"Operations Lead":   88000,
}

var BaseSalaryByDepartment = map[string]int{
	"Human Resources":   78000,
	"Engineering":       92000,
	"Product":           86000,
	"Quality Assurance": 70000,
	"Operations":        88000,
}

// pattern status per (bulan, karyawan); bulan lama semuanya Paid
var monthlyStatusPattern = [][]string{
	{salaryModel.StatusPaid, salaryModel.StatusPaid, salaryModel.StatusPending, salaryModel.StatusProcessing, salaryModel.StatusPaid},
	{salaryModel.StatusPaid, salaryModel.StatusPaid, salaryModel.StatusPaid, salaryModel.StatusPaid, salaryModel.StatusPaid},
	{salaryModel.StatusPaid, salaryModel.StatusPaid, salaryModel.StatusPaid, salaryModel.StatusPaid, salaryModel.StatusPaid},
}

const (
	remarksPending    = "Awaiting employee bank confirmation"
	remarksProcessing = "Scheduled for nightly payroll run"
)

// Salaries membangkitkan record gaji per (bulan x karyawan).
func Salaries(employees []empModel.EmployeeModel) []salaryModel.SalaryModel {
	out := make([]salaryModel.SalaryModel, 0, len(SalaryMonths)*len(employees))
	for monthIdx, month := range SalaryMonths {
		for empIdx, emp := range employees {
			status := salaryModel.StatusPaid
			if monthIdx < len(monthlyStatusPattern) && empIdx < len(monthlyStatusPattern[monthIdx]) {
				status = monthlyStatusPattern[monthIdx][empIdx]
			}

			amount, ok := BaseSalaryByRole[emp.EmployeeRole]
			if !ok {
				amount = DefaultBaseSalary
			}

			rec := salaryModel.SalaryModel{
				SalaryID:     SalaryID(emp.EmployeeID, month),
				EmployeeID:   emp.EmployeeID,
				EmployeeName: emp.EmployeeName,
				Department:   emp.EmployeeDepartment,
				Role:         emp.EmployeeRole,
				Month:        month,
				Amount:       amount,
				Status:       status,
			}
			switch status {
			case salaryModel.StatusPaid:
				payout := monthPayoutDates[month]
				rec.PaymentDate = &payout
			case salaryModel.StatusPending:
				remarks := remarksPending
				rec.Remarks = &remarks
			case salaryModel.StatusProcessing:
				remarks := remarksProcessing
				rec.Remarks = &remarks
			}
			out = append(out, rec)
		}
	}
	return out
}

// SalaryID membentuk id record gaji yang aman dipakai di path URL.
func SalaryID(employeeID, month string) string {
	return employeeID + "-" + strings.ReplaceAll(strings.ToLower(month), " ", "-")
}

// BaseSalaryForDepartment: default nominal form create di portal.
func BaseSalaryForDepartment(department string) int {
	if amount, ok := BaseSalaryByDepartment[department]; ok {
		return amount
	}
	return DefaultBaseSalary
}
