package entities

import "time"

// Policy is an issued contract. PolicyNumber is unique and never changes
// after issuance; there is exactly one policy per offer.
type Policy struct {
	ID           uint
	OfferID      uint
	PolicyNumber string
	StartDate    time.Time
	EndDate      time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ActiveAt reports whether t falls inside the policy window.
func (p Policy) ActiveAt(t time.Time) bool {
	return !t.Before(p.StartDate) && t.Before(p.EndDate)
}
