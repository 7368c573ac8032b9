package payroll

import (
	"github.com/cmlabs-hris/backoffice-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// StatutoryRates are the contribution rates and monthly caps applied to a basic salary.
// A zero cap means uncapped.
type StatutoryRates struct {
	EPFEmployee      decimal.Decimal
	EPFEmployer      decimal.Decimal
	SOCSOEmployee    decimal.Decimal
	SOCSOEmployer    decimal.Decimal
	SOCSOEmployeeCap decimal.Decimal
	SOCSOEmployerCap decimal.Decimal
	EIS              decimal.Decimal
	EISCap           decimal.Decimal
	PCB              decimal.Decimal
}

// DefaultStatutoryRates returns the current EPF, SOCSO, EIS and PCB rates.
// Each call builds a fresh value, so callers may adjust their copy freely.
func DefaultStatutoryRates() StatutoryRates {
	return StatutoryRates{
		EPFEmployee:      decimal.RequireFromString("0.11"),
		EPFEmployer:      decimal.RequireFromString("0.12"),
		SOCSOEmployee:    decimal.RequireFromString("0.005"),
		SOCSOEmployer:    decimal.RequireFromString("0.0175"),
		SOCSOEmployeeCap: decimal.RequireFromString("19.75"),
		SOCSOEmployerCap: decimal.RequireFromString("69.15"),
		EIS:              decimal.RequireFromString("0.002"),
		EISCap:           decimal.RequireFromString("8.00"),
		PCB:              decimal.RequireFromString("0.05"), // flat estimate, not the progressive schedule
	}
}

// CalculateStatutory applies DefaultStatutoryRates to basicSalary.
func CalculateStatutory(basicSalary decimal.Decimal) payroll.StatutoryContribution {
	return DefaultStatutoryRates().Calculate(basicSalary)
}

// Calculate is total and pure. Negative salaries are treated as zero and
// every amount is rounded to cents, half away from zero.
func (r StatutoryRates) Calculate(basicSalary decimal.Decimal) payroll.StatutoryContribution {
	basic := basicSalary
	if basic.IsNegative() {
		basic = decimal.Zero
	}

	c := payroll.StatutoryContribution{
		BasicSalary:   basic,
		GrossPay:      basic,
		EPFEmployee:   cents(basic, r.EPFEmployee),
		EPFEmployer:   cents(basic, r.EPFEmployer),
		SOCSOEmployee: capped(cents(basic, r.SOCSOEmployee), r.SOCSOEmployeeCap),
		SOCSOEmployer: capped(cents(basic, r.SOCSOEmployer), r.SOCSOEmployerCap),
		EISEmployee:   capped(cents(basic, r.EIS), r.EISCap),
		EISEmployer:   capped(cents(basic, r.EIS), r.EISCap),
		PCB:           cents(basic, r.PCB),
	}
	c.TotalDeductions = c.EPFEmployee.Add(c.SOCSOEmployee).Add(c.EISEmployee).Add(c.PCB)
	c.NetPay = c.GrossPay.Sub(c.TotalDeductions)
	return c
}

func cents(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Round(2)
}

func capped(amount, limit decimal.Decimal) decimal.Decimal {
	if limit.IsZero() {
		return amount
	}
	return decimal.Min(amount, limit)
}
