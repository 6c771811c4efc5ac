package usecase

import (
	"errors"
	"fmt"
	"insurance_xpto/internal/domain/entities"
)

// Error kinds. Specific errors below wrap one of these so handlers can map
// whole families with errors.Is.
var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
	ErrStorage      = errors.New("storage error")
)

var (
	ErrInvalidOfferID          = fmt.Errorf("%w: invalid offer id", ErrValidation)
	ErrInvalidCustomerID       = fmt.Errorf("%w: invalid customer id", ErrValidation)
	ErrInvalidInsuranceTypeID  = fmt.Errorf("%w: invalid insurance type id", ErrValidation)
	ErrCustomerNotFound        = fmt.Errorf("%w: customer does not exist", ErrValidation)
	ErrInsuranceTypeNotFound   = fmt.Errorf("%w: insurance type does not exist", ErrValidation)
	ErrInsuranceTypeInactive   = fmt.Errorf("%w: insurance type is not active", ErrValidation)
	ErrCoverageNotFound        = fmt.Errorf("%w: coverage does not exist for insurance type", ErrValidation)
	ErrInvalidCoverageAmount   = fmt.Errorf("%w: requested coverage amount must be positive", ErrValidation)
	ErrInvalidStartDate        = fmt.Errorf("%w: requested start date is required", ErrValidation)
	ErrInvalidPricing          = fmt.Errorf("%w: invalid pricing terms", ErrValidation)
	ErrInvalidPaymentAmount    = fmt.Errorf("%w: payment amount does not match offer final price", ErrValidation)
	ErrInvalidPaymentMethod    = fmt.Errorf("%w: invalid payment method", ErrValidation)
	ErrInvalidCardLast4        = fmt.Errorf("%w: card last4 must be four digits", ErrValidation)
	ErrInvalidPaymentStatus    = fmt.Errorf("%w: invalid payment status", ErrValidation)
	ErrInvalidClaim            = fmt.Errorf("%w: invalid claim", ErrValidation)
	ErrPolicyNotActive         = fmt.Errorf("%w: policy not active on incident date", ErrValidation)
	ErrInvalidCatalogItem      = fmt.Errorf("%w: invalid catalog item", ErrValidation)
	ErrInvalidCredentialsInput = fmt.Errorf("%w: email and password are required", ErrValidation)
	ErrWeakPassword            = fmt.Errorf("%w: password must have at least 8 characters", ErrValidation)
	ErrInvalidProfile          = fmt.Errorf("%w: first name, last name and a valid email are required", ErrValidation)

	ErrOfferNotFound   = fmt.Errorf("%w: offer", ErrNotFound)
	ErrPolicyNotFound  = fmt.Errorf("%w: policy", ErrNotFound)
	ErrPaymentNotFound = fmt.Errorf("%w: payment", ErrNotFound)
	ErrClaimNotFound   = fmt.Errorf("%w: claim", ErrNotFound)
	ErrCatalogNotFound = fmt.Errorf("%w: insurance type", ErrNotFound)

	ErrAlreadyIssued                = errors.New("policy already issued for offer")
	ErrPolicyNumberGenerationFailed = errors.New("policy number generation failed")
	ErrPaymentDeclined              = errors.New("payment declined by provider")
	ErrPaymentGatewayNotConfigured  = errors.New("payment gateway not configured")
	ErrDocumentStorageNotConfigured = errors.New("document storage not configured")
	ErrEmailAlreadyRegistered       = errors.New("email already registered")
	ErrInvalidCredentials           = fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	ErrInvalidToken                 = fmt.Errorf("%w: invalid or expired token", ErrUnauthorized)
	ErrTokenRevoked                 = fmt.Errorf("%w: token revoked", ErrUnauthorized)
	ErrAccountDisabled              = fmt.Errorf("%w: account disabled", ErrUnauthorized)
)

// storageErr tags an unexpected repository failure.
func storageErr(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrStorage, err)
}

// classify keeps business errors as they are and tags everything else as a
// storage fault. Used on errors coming back from a transaction.
func classify(err error) error {
	if err == nil {
		return nil
	}
	for _, known := range []error{
		ErrValidation, ErrNotFound, ErrForbidden, ErrUnauthorized, ErrStorage,
		entities.ErrInvalidStateTransition, ErrAlreadyIssued, ErrPolicyNumberGenerationFailed,
		ErrPaymentDeclined, ErrEmailAlreadyRegistered,
	} {
		if errors.Is(err, known) {
			return err
		}
	}
	return storageErr(err)
}
