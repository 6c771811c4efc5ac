package entities

import "time"

// DefaultValidityMonths applies when an insurance type has no validity configured.
const DefaultValidityMonths = 12

type InsuranceType struct {
	ID             uint
	Name           string
	Description    string
	ValidityMonths int
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PolicyEnd returns the end of a policy window starting at start.
func (t InsuranceType) PolicyEnd(start time.Time) time.Time {
	months := t.ValidityMonths
	if months <= 0 {
		months = DefaultValidityMonths
	}
	return start.AddDate(0, months, 0)
}

// Coverage is a named protection limit offered under an insurance type.
type Coverage struct {
	ID              uint
	InsuranceTypeID uint
	Name            string
	Description     string
	CoverageLimit   float64
	BasePremium     float64
	IsOptional      bool
	CreatedAt       time.Time
}
