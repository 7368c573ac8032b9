package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID               string
	EmployeeCode     string
	FullName         string
	BaseSalary       *decimal.Decimal
	EmploymentStatus EmploymentStatus
	HireDate         time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Salary returns the base salary, treating a missing one as zero.
func (e Employee) Salary() decimal.Decimal {
	if e.BaseSalary == nil {
		return decimal.Zero
	}
	return *e.BaseSalary
}

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusOnLeave    EmploymentStatus = "on_leave"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)

func (s EmploymentStatus) IsValid() bool {
	switch s {
	case EmploymentStatusActive, EmploymentStatusOnLeave, EmploymentStatusResigned, EmploymentStatusTerminated:
		return true
	}
	return false
}
