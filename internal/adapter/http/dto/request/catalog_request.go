package request

import "insurance_xpto/internal/usecase"

type CreateInsuranceTypeRequest struct {
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description"`
	ValidityMonths int    `json:"validity_months" example:"12"`
}

func (r CreateInsuranceTypeRequest) ToInput() usecase.CreateInsuranceTypeInput {
	return usecase.CreateInsuranceTypeInput{Name: r.Name, Description: r.Description, ValidityMonths: r.ValidityMonths}
}

type CreateCoverageRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	CoverageLimit float64 `json:"coverage_limit" binding:"required"`
	BasePremium   float64 `json:"base_premium"`
	IsOptional    bool    `json:"is_optional"`
}

func (r CreateCoverageRequest) ToInput() usecase.CreateCoverageInput {
	return usecase.CreateCoverageInput{
		Name:          r.Name,
		Description:   r.Description,
		CoverageLimit: r.CoverageLimit,
		BasePremium:   r.BasePremium,
		IsOptional:    r.IsOptional,
	}
}
