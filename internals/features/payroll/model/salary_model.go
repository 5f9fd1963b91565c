package model

// State machine: Pending | Processing -> Paid (terminal)
const (
	StatusPaid       = "Paid"
	StatusPending    = "Pending"
	StatusProcessing = "Processing"
)

var SalaryStatuses = []string{StatusPaid, StatusPending, StatusProcessing}

type SalaryModel struct {
	SalaryID     string  `json:"salary_id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Department   string  `json:"department"`
	Role         string  `json:"role"`
	Month        string  `json:"month"` // contoh: "October 2025"
	Amount       int     `json:"amount"`
	Status       string  `json:"status"`
	PaymentDate  *string `json:"payment_date,omitempty"` // YYYY-MM-DD
	Remarks      *string `json:"remarks,omitempty"`
}

func (m SalaryModel) RecordID() string { return m.SalaryID }

func (m SalaryModel) SearchFields() []string {
	return []string{m.EmployeeName, m.EmployeeID, m.Department}
}
