package repository

import (
	"time"

	"gorm.io/datatypes"
)

type UserModel struct {
	ID           uint      `gorm:"primaryKey"`
	Email        string    `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string    `gorm:"size:255;not null"`
	Role         string    `gorm:"size:20;not null;index"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (UserModel) TableName() string { return "users" }

type CustomerModel struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"not null;uniqueIndex"`
	FirstName   string `gorm:"size:100;not null"`
	LastName    string `gorm:"size:100;not null"`
	Email       string `gorm:"size:255;not null"`
	Phone       string `gorm:"size:30"`
	Address     string `gorm:"size:255"`
	NationalID  string `gorm:"size:50"`
	DateOfBirth *time.Time
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (CustomerModel) TableName() string { return "customers" }

type AgentModel struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"not null;uniqueIndex"`
	FirstName  string    `gorm:"size:100;not null"`
	LastName   string    `gorm:"size:100;not null"`
	Email      string    `gorm:"size:255;not null"`
	Phone      string    `gorm:"size:30"`
	Department string    `gorm:"size:100"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

func (AgentModel) TableName() string { return "agents" }

type InsuranceTypeModel struct {
	ID             uint      `gorm:"primaryKey"`
	Name           string    `gorm:"size:100;not null;uniqueIndex"`
	Description    string    `gorm:"size:500"`
	ValidityMonths int       `gorm:"not null;default:12"`
	IsActive       bool      `gorm:"not null;default:true"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

func (InsuranceTypeModel) TableName() string { return "insurance_types" }

type CoverageModel struct {
	ID              uint      `gorm:"primaryKey"`
	InsuranceTypeID uint      `gorm:"not null;index"`
	Name            string    `gorm:"size:100;not null"`
	Description     string    `gorm:"size:500"`
	CoverageLimit   float64   `gorm:"type:numeric(14,2);not null"`
	BasePremium     float64   `gorm:"type:numeric(14,2);not null"`
	IsOptional      bool      `gorm:"not null;default:false"`
	CreatedAt       time.Time `gorm:"not null"`
}

func (CoverageModel) TableName() string { return "coverages" }

type OfferModel struct {
	ID                      uint    `gorm:"primaryKey"`
	CustomerID              uint    `gorm:"not null;index"`
	AgentID                 *uint   `gorm:"index"`
	InsuranceTypeID         uint    `gorm:"not null;index"`
	BasePrice               float64 `gorm:"type:numeric(14,2);not null;default:0"`
	DiscountRate            float64 `gorm:"type:numeric(5,4);not null;default:0"`
	FinalPrice              float64 `gorm:"type:numeric(14,2);not null;default:0"`
	Status                  string  `gorm:"size:30;not null;index"`
	ValidUntil              *time.Time
	IsCustomerApproved      bool `gorm:"not null;default:false"`
	CustomerApprovedAt      *time.Time
	ReviewedAt              *time.Time
	ReviewedBy              *uint
	CustomerAdditionalInfo  string    `gorm:"size:1000"`
	RequestedCoverageAmount float64   `gorm:"type:numeric(14,2);not null"`
	RequestedStartDate      time.Time `gorm:"type:date"`
	Department              string    `gorm:"size:100"`
	AdminNotes              string    `gorm:"size:1000"`
	RejectionReason         string    `gorm:"size:500"`
	CreatedBy               uint      `gorm:"not null"`
	CreatedAt               time.Time `gorm:"not null"`
	UpdatedAt               time.Time `gorm:"not null"`

	SelectedCoverages []SelectedCoverageModel `gorm:"foreignKey:OfferID"`
}

func (OfferModel) TableName() string { return "offers" }

type SelectedCoverageModel struct {
	ID         uint    `gorm:"primaryKey"`
	OfferID    uint    `gorm:"not null;index"`
	CoverageID uint    `gorm:"not null"`
	Premium    float64 `gorm:"type:numeric(14,2);not null"`
	Notes      string  `gorm:"size:500"`
}

func (SelectedCoverageModel) TableName() string { return "selected_coverages" }

// PolicyModel carries the two unique constraints that make issuance safe
// under concurrency: one policy per offer and globally unique numbers.
type PolicyModel struct {
	ID           uint      `gorm:"primaryKey"`
	OfferID      uint      `gorm:"not null;uniqueIndex:ux_policies_offer_id"`
	PolicyNumber string    `gorm:"size:64;not null;uniqueIndex:ux_policies_policy_number"`
	StartDate    time.Time `gorm:"type:date;not null"`
	EndDate      time.Time `gorm:"type:date;not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (PolicyModel) TableName() string { return "policies" }

type PaymentModel struct {
	ID                uint           `gorm:"primaryKey"`
	PolicyID          uint           `gorm:"not null;index"`
	Amount            float64        `gorm:"type:numeric(14,2);not null"`
	PaidAt            time.Time      `gorm:"not null"`
	Method            string         `gorm:"size:30;not null"`
	Status            string         `gorm:"size:20;not null;index"`
	TransactionID     string         `gorm:"size:100;index"`
	CardLast4         string         `gorm:"size:4"`
	ProviderReference string         `gorm:"size:100"`
	ProviderPayload   datatypes.JSON `gorm:"type:jsonb"`
	Notes             string         `gorm:"size:1000"`
	CreatedAt         time.Time      `gorm:"not null"`
	UpdatedAt         time.Time      `gorm:"not null"`
}

func (PaymentModel) TableName() string { return "payments" }

type ClaimModel struct {
	ID                      uint      `gorm:"primaryKey"`
	PolicyID                uint      `gorm:"not null;index"`
	CreatedBy               uint      `gorm:"not null"`
	ProcessedBy             *uint     `gorm:"index"`
	Description             string    `gorm:"size:2000;not null"`
	Status                  string    `gorm:"size:20;not null;index"`
	Type                    string    `gorm:"size:20;not null"`
	Priority                string    `gorm:"size:10;not null"`
	ClaimedAmount           float64   `gorm:"type:numeric(14,2);not null"`
	ApprovedAmount          *float64  `gorm:"type:numeric(14,2)"`
	IncidentDate            time.Time `gorm:"not null"`
	EstimatedResolutionDate *time.Time
	ProcessedAt             *time.Time
	Notes                   string    `gorm:"size:2000"`
	CreatedAt               time.Time `gorm:"not null"`
	UpdatedAt               time.Time `gorm:"not null"`
}

func (ClaimModel) TableName() string { return "claims" }

type DocumentModel struct {
	ID          uint      `gorm:"primaryKey"`
	PolicyID    uint      `gorm:"not null;index"`
	PaymentID   *uint     `gorm:"index"`
	Kind        string    `gorm:"size:20;not null"`
	FileName    string    `gorm:"size:255;not null"`
	ContentType string    `gorm:"size:100;not null"`
	StorageKey  string    `gorm:"size:500;not null;uniqueIndex"`
	SizeBytes   int64     `gorm:"not null"`
	Checksum    string    `gorm:"size:64;not null"`
	CreatedBy   uint      `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (DocumentModel) TableName() string { return "documents" }

type RevokedTokenModel struct {
	TokenID   string    `gorm:"primaryKey;size:64"`
	UserID    uint      `gorm:"not null;index"`
	ExpiresAt time.Time `gorm:"not null;index"`
	RevokedAt time.Time `gorm:"not null"`
}

func (RevokedTokenModel) TableName() string { return "token_blacklist" }

// AllModels lists every table owned by the service, in dependency order.
func AllModels() []any {
	return []any{
		&UserModel{},
		&CustomerModel{},
		&AgentModel{},
		&InsuranceTypeModel{},
		&CoverageModel{},
		&OfferModel{},
		&SelectedCoverageModel{},
		&PolicyModel{},
		&PaymentModel{},
		&ClaimModel{},
		&DocumentModel{},
		&RevokedTokenModel{},
	}
}
