package response

import "insurance_xpto/internal/domain/entities"

type InsuranceTypeResponse struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	ValidityMonths int    `json:"validity_months"`
	IsActive       bool   `json:"is_active"`
}

func FromInsuranceTypes(types []entities.InsuranceType) []InsuranceTypeResponse {
	out := make([]InsuranceTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, FromInsuranceType(t))
	}
	return out
}

func FromInsuranceType(t entities.InsuranceType) InsuranceTypeResponse {
	return InsuranceTypeResponse{ID: t.ID, Name: t.Name, Description: t.Description, ValidityMonths: t.ValidityMonths, IsActive: t.IsActive}
}

type CoverageResponse struct {
	ID              uint    `json:"id"`
	InsuranceTypeID uint    `json:"insurance_type_id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	CoverageLimit   float64 `json:"coverage_limit"`
	BasePremium     float64 `json:"base_premium"`
	IsOptional      bool    `json:"is_optional"`
}

func FromCoverage(c entities.Coverage) CoverageResponse {
	return CoverageResponse{
		ID:              c.ID,
		InsuranceTypeID: c.InsuranceTypeID,
		Name:            c.Name,
		Description:     c.Description,
		CoverageLimit:   c.CoverageLimit,
		BasePremium:     c.BasePremium,
		IsOptional:      c.IsOptional,
	}
}

func FromCoverages(coverages []entities.Coverage) []CoverageResponse {
	out := make([]CoverageResponse, 0, len(coverages))
	for _, c := range coverages {
		out = append(out, FromCoverage(c))
	}
	return out
}
