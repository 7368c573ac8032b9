package payroll

import (
	"time"

	"github.com/cmlabs-hris/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== PERIOD DTOs ==========

type CreatePeriodRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *CreatePeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year < 2000 || r.Year > 9999 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2000 and 9999"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProcessPeriodRequest struct {
	PeriodID    string `json:"-"`
	ProcessedBy string `json:"-"`
}

func (r *ProcessPeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PeriodID) {
		errs = append(errs, validator.ValidationError{Field: "period_id", Message: "is required"})
	}
	if validator.IsEmpty(r.ProcessedBy) {
		errs = append(errs, validator.ValidationError{Field: "processed_by", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PeriodFilter struct {
	Year   *int    `json:"year,omitempty"`
	Status *string `json:"status,omitempty"`
	Page   int     `json:"page"`
	Limit  int     `json:"limit"`
}

func (f *PeriodFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}

type PeriodResponse struct {
	ID               string          `json:"id"`
	Month            int             `json:"month"`
	Year             int             `json:"year"`
	Status           string          `json:"status"`
	TotalGrossPay    decimal.Decimal `json:"total_gross_pay"`
	TotalDeductions  decimal.Decimal `json:"total_deductions"`
	TotalNetPay      decimal.Decimal `json:"total_net_pay"`
	TotalEPFEmployee decimal.Decimal `json:"total_epf_employee"`
	TotalEPFEmployer decimal.Decimal `json:"total_epf_employer"`
	TotalSOCSO       decimal.Decimal `json:"total_socso"`
	TotalEIS         decimal.Decimal `json:"total_eis"`
	TotalPCB         decimal.Decimal `json:"total_pcb"`
	TotalEmployees   int             `json:"total_employees"`
	ProcessedBy      *string         `json:"processed_by,omitempty"`
	ProcessedAt      *time.Time      `json:"processed_at,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

func ToPeriodResponse(p PayrollPeriod) PeriodResponse {
	return PeriodResponse{
		ID:               p.ID,
		Month:            p.Month,
		Year:             p.Year,
		Status:           string(p.Status),
		TotalGrossPay:    p.TotalGrossPay,
		TotalDeductions:  p.TotalDeductions,
		TotalNetPay:      p.TotalNetPay,
		TotalEPFEmployee: p.TotalEPFEmployee,
		TotalEPFEmployer: p.TotalEPFEmployer,
		TotalSOCSO:       p.TotalSOCSO,
		TotalEIS:         p.TotalEIS,
		TotalPCB:         p.TotalPCB,
		TotalEmployees:   p.TotalEmployees,
		ProcessedBy:      p.ProcessedBy,
		ProcessedAt:      p.ProcessedAt,
		CreatedAt:        p.CreatedAt,
	}
}

type ListPeriodResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
	Periods    []PeriodResponse `json:"periods"`
}

// ========== ENTRY DTOs ==========

type StatutoryResponse struct {
	BasicSalary     decimal.Decimal `json:"basic_salary"`
	GrossPay        decimal.Decimal `json:"gross_pay"`
	EPFEmployee     decimal.Decimal `json:"epf_employee"`
	EPFEmployer     decimal.Decimal `json:"epf_employer"`
	SOCSOEmployee   decimal.Decimal `json:"socso_employee"`
	SOCSOEmployer   decimal.Decimal `json:"socso_employer"`
	EISEmployee     decimal.Decimal `json:"eis_employee"`
	EISEmployer     decimal.Decimal `json:"eis_employer"`
	PCB             decimal.Decimal `json:"pcb"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetPay          decimal.Decimal `json:"net_pay"`
}

func ToStatutoryResponse(c StatutoryContribution) StatutoryResponse {
	return StatutoryResponse{
		BasicSalary:     c.BasicSalary,
		GrossPay:        c.GrossPay,
		EPFEmployee:     c.EPFEmployee,
		EPFEmployer:     c.EPFEmployer,
		SOCSOEmployee:   c.SOCSOEmployee,
		SOCSOEmployer:   c.SOCSOEmployer,
		EISEmployee:     c.EISEmployee,
		EISEmployer:     c.EISEmployer,
		PCB:             c.PCB,
		TotalDeductions: c.TotalDeductions,
		NetPay:          c.NetPay,
	}
}

type EntryResponse struct {
	ID           string  `json:"id"`
	PeriodID     string  `json:"period_id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	EmployeeCode *string `json:"employee_code,omitempty"`
	StatutoryResponse
	CreatedAt time.Time `json:"created_at"`
}

func ToEntryResponse(e PayrollEntry) EntryResponse {
	return EntryResponse{
		ID:                e.ID,
		PeriodID:          e.PeriodID,
		EmployeeID:        e.EmployeeID,
		EmployeeName:      e.EmployeeName,
		EmployeeCode:      e.EmployeeCode,
		StatutoryResponse: ToStatutoryResponse(e.StatutoryContribution),
		CreatedAt:         e.CreatedAt,
	}
}

type PreviewStatutoryRequest struct {
	BasicSalary *decimal.Decimal `json:"basic_salary"`
}
