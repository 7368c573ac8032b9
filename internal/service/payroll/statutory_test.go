package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertAmount(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.Equal(t, want, got.StringFixed(2), field)
}

func TestCalculateStatutory_CappedSalary(t *testing.T) {
	c := CalculateStatutory(dec("5000"))

	assertAmount(t, "5000.00", c.GrossPay, "gross")
	assertAmount(t, "550.00", c.EPFEmployee, "epf employee")
	assertAmount(t, "600.00", c.EPFEmployer, "epf employer")
	assertAmount(t, "19.75", c.SOCSOEmployee, "socso employee")
	assertAmount(t, "69.15", c.SOCSOEmployer, "socso employer")
	assertAmount(t, "8.00", c.EISEmployee, "eis employee")
	assertAmount(t, "8.00", c.EISEmployer, "eis employer")
	assertAmount(t, "250.00", c.PCB, "pcb")
	assertAmount(t, "827.75", c.TotalDeductions, "total deductions")
	assertAmount(t, "4172.25", c.NetPay, "net pay")
}

func TestCalculateStatutory_BelowCaps(t *testing.T) {
	c := CalculateStatutory(dec("3000"))

	assertAmount(t, "330.00", c.EPFEmployee, "epf employee")
	assertAmount(t, "360.00", c.EPFEmployer, "epf employer")
	assertAmount(t, "15.00", c.SOCSOEmployee, "socso employee")
	assertAmount(t, "52.50", c.SOCSOEmployer, "socso employer")
	assertAmount(t, "6.00", c.EISEmployee, "eis employee")
	assertAmount(t, "6.00", c.EISEmployer, "eis employer")
	assertAmount(t, "150.00", c.PCB, "pcb")
	assertAmount(t, "501.00", c.TotalDeductions, "total deductions")
	assertAmount(t, "2499.00", c.NetPay, "net pay")
}

func TestCalculateStatutory_RoundsToCents(t *testing.T) {
	c := CalculateStatutory(dec("1234.56"))

	assertAmount(t, "135.80", c.EPFEmployee, "epf employee")
	assertAmount(t, "6.17", c.SOCSOEmployee, "socso employee")
	assertAmount(t, "2.47", c.EISEmployee, "eis employee")
	assertAmount(t, "61.73", c.PCB, "pcb")
	assertAmount(t, "206.17", c.TotalDeductions, "total deductions")
	assertAmount(t, "1028.39", c.NetPay, "net pay")
}

func TestCalculateStatutory_HalfCentRoundsUp(t *testing.T) {
	c := CalculateStatutory(dec("1.00"))

	assertAmount(t, "0.01", c.SOCSOEmployee, "0.005 rounds up")
	assertAmount(t, "0.00", c.EISEmployee, "0.002 rounds down")
	assertAmount(t, "0.17", c.TotalDeductions, "total deductions")
	assertAmount(t, "0.83", c.NetPay, "net pay")
}

func TestCalculateStatutory_NegativeTreatedAsZero(t *testing.T) {
	c := CalculateStatutory(dec("-100"))

	assert.True(t, c.BasicSalary.IsZero())
	assert.True(t, c.GrossPay.IsZero())
	assert.True(t, c.TotalDeductions.IsZero())
	assert.True(t, c.NetPay.IsZero())
	assert.True(t, c.EPFEmployer.IsZero())
}

func TestCalculateStatutory_CapsNeverExceeded(t *testing.T) {
	for _, s := range []string{"3950", "3951", "10000", "1000000", "99999999.99"} {
		c := CalculateStatutory(dec(s))

		assert.True(t, c.SOCSOEmployee.LessThanOrEqual(dec("19.75")), s)
		assert.True(t, c.SOCSOEmployer.LessThanOrEqual(dec("69.15")), s)
		assert.True(t, c.EISEmployee.LessThanOrEqual(dec("8.00")), s)
		assert.True(t, c.EISEmployer.LessThanOrEqual(dec("8.00")), s)
	}
}

func TestCalculateStatutory_NetPayIdentity(t *testing.T) {
	for _, s := range []string{"0", "0.01", "1", "999.99", "2500.50", "3333.33", "7777.77", "12345.67"} {
		c := CalculateStatutory(dec(s))

		sum := c.EPFEmployee.Add(c.SOCSOEmployee).Add(c.EISEmployee).Add(c.PCB)
		assert.True(t, c.TotalDeductions.Equal(sum), s)
		assert.True(t, c.NetPay.Equal(c.BasicSalary.Sub(sum)), s)
		assert.True(t, c.NetPay.Equal(CalculateStatutory(dec(s)).NetPay), "idempotent for %s", s)
	}
}

func TestStatutoryRates_ZeroCapMeansUncapped(t *testing.T) {
	rates := DefaultStatutoryRates()
	rates.SOCSOEmployeeCap = decimal.Zero

	c := rates.Calculate(dec("10000"))

	assertAmount(t, "50.00", c.SOCSOEmployee, "uncapped socso employee")
}

func TestDefaultStatutoryRates_CopiesAreIndependent(t *testing.T) {
	rates := DefaultStatutoryRates()
	rates.EPFEmployee = dec("0.50")
	assertAmount(t, "2500.00", rates.Calculate(dec("5000")).EPFEmployee, "adjusted copy")

	assert.True(t, DefaultStatutoryRates().EPFEmployee.Equal(dec("0.11")))
	assertAmount(t, "550.00", CalculateStatutory(dec("5000")).EPFEmployee, "package rates unchanged")
}
