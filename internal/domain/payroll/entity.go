package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodStatus enum
type PeriodStatus string

const (
	PeriodStatusOpen      PeriodStatus = "open"
	PeriodStatusCompleted PeriodStatus = "completed"
)

// PayrollPeriod - one calendar month of payroll and its aggregate totals
type PayrollPeriod struct {
	ID               string
	Month            int
	Year             int
	Status           PeriodStatus
	TotalGrossPay    decimal.Decimal
	TotalDeductions  decimal.Decimal
	TotalNetPay      decimal.Decimal
	TotalEPFEmployee decimal.Decimal
	TotalEPFEmployer decimal.Decimal
	TotalSOCSO       decimal.Decimal // employee + employer
	TotalEIS         decimal.Decimal // employee + employer
	TotalPCB         decimal.Decimal
	TotalEmployees   int
	ProcessedBy      *string
	ProcessedAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// PayrollEntry - one employee's computed pay inside a period
type PayrollEntry struct {
	ID         string
	PeriodID   string
	EmployeeID string
	StatutoryContribution
	CreatedAt time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}

// StatutoryContribution is the result of applying the statutory rates to one basic salary.
type StatutoryContribution struct {
	BasicSalary     decimal.Decimal
	GrossPay        decimal.Decimal
	EPFEmployee     decimal.Decimal
	EPFEmployer     decimal.Decimal
	SOCSOEmployee   decimal.Decimal
	SOCSOEmployer   decimal.Decimal
	EISEmployee     decimal.Decimal
	EISEmployer     decimal.Decimal
	PCB             decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
}

// PeriodTotals accumulates entries into the aggregate stored on a period.
type PeriodTotals struct {
	GrossPay    decimal.Decimal
	Deductions  decimal.Decimal
	NetPay      decimal.Decimal
	EPFEmployee decimal.Decimal
	EPFEmployer decimal.Decimal
	SOCSO       decimal.Decimal
	EIS         decimal.Decimal
	PCB         decimal.Decimal
	Employees   int
}

func (t *PeriodTotals) Add(c StatutoryContribution) {
	t.GrossPay = t.GrossPay.Add(c.GrossPay)
	t.Deductions = t.Deductions.Add(c.TotalDeductions)
	t.NetPay = t.NetPay.Add(c.NetPay)
	t.EPFEmployee = t.EPFEmployee.Add(c.EPFEmployee)
	t.EPFEmployer = t.EPFEmployer.Add(c.EPFEmployer)
	t.SOCSO = t.SOCSO.Add(c.SOCSOEmployee).Add(c.SOCSOEmployer)
	t.EIS = t.EIS.Add(c.EISEmployee).Add(c.EISEmployer)
	t.PCB = t.PCB.Add(c.PCB)
	t.Employees++
}

// Complete stamps the totals on p and marks it completed.
func (p *PayrollPeriod) Complete(t PeriodTotals, processedBy string, at time.Time) {
	p.Status = PeriodStatusCompleted
	p.TotalGrossPay = t.GrossPay
	p.TotalDeductions = t.Deductions
	p.TotalNetPay = t.NetPay
	p.TotalEPFEmployee = t.EPFEmployee
	p.TotalEPFEmployer = t.EPFEmployer
	p.TotalSOCSO = t.SOCSO
	p.TotalEIS = t.EIS
	p.TotalPCB = t.PCB
	p.TotalEmployees = t.Employees
	p.ProcessedBy = &processedBy
	p.ProcessedAt = &at
}
