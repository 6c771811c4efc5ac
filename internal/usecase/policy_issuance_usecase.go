package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand"
	"strings"
	"time"

	"insurance_xpto/internal/domain/entities"
	"insurance_xpto/internal/usecase/interfaces"

	"go.opentelemetry.io/otel/attribute"
)

const (
	EventPolicyIssued        = "policy.issued"
	EventPaymentRefundFailed = "payment.refund_failed"

	DefaultPolicyNumberPrefix = "POL"
	// MaxPolicyNumberAttempts bounds retries on policy number collisions.
	MaxPolicyNumberAttempts = 5

	amountTolerance = 0.01
)

// PolicyNumberGenerator returns a candidate policy number. Uniqueness is
// enforced by the store; the issuance flow retries on collision.
type PolicyNumberGenerator func(issuedAt time.Time) string

// NewRandomPolicyNumberGenerator builds numbers like POL-00421337-2025.
func NewRandomPolicyNumberGenerator(prefix string) PolicyNumberGenerator {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = DefaultPolicyNumberPrefix
	}
	return func(issuedAt time.Time) string {
		return fmt.Sprintf("%s-%08d-%d", prefix, rand.Intn(100_000_000), issuedAt.Year())
	}
}

type PayAndIssueInput struct {
	PaymentAmount float64
	PaymentMethod entities.PaymentMethod
	TransactionID string
	CardLast4     string
	CardToken     string
	PayerEmail    string
}

type IssuanceResult struct {
	Policy  entities.Policy
	Payment entities.Payment
	Offer   entities.Offer
}

type PolicyIssuedEvent struct {
	PolicyID     uint      `json:"policy_id"`
	PolicyNumber string    `json:"policy_number"`
	OfferID      uint      `json:"offer_id"`
	CustomerID   uint      `json:"customer_id"`
	PaymentID    uint      `json:"payment_id"`
	Amount       float64   `json:"amount"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
}

type RefundFailedEvent struct {
	OfferID           uint   `json:"offer_id"`
	ProviderPaymentID string `json:"provider_payment_id"`
	Reason            string `json:"reason"`
}

// IPolicyIssuanceUseCase turns an approved offer into a paid policy.
type IPolicyIssuanceUseCase interface {
	PayAndIssuePolicy(ctx context.Context, actor entities.Actor, offerID uint, in PayAndIssueInput) (IssuanceResult, error)
}

type PolicyIssuanceUseCase struct {
	offers         interfaces.IOfferRepository
	policies       interfaces.IPolicyRepository
	payments       interfaces.IPaymentRepository
	insuranceTypes interfaces.IInsuranceTypeRepository
	tx             interfaces.ITransactor
	gateway        interfaces.IPaymentGateway
	events         interfaces.IEventPublisher

	policyNumbers  PolicyNumberGenerator
	transactionIDs func() string
	maxAttempts    int
	now            func() time.Time
}

var _ IPolicyIssuanceUseCase = (*PolicyIssuanceUseCase)(nil)

func NewPolicyIssuanceUseCase(
	offers interfaces.IOfferRepository,
	policies interfaces.IPolicyRepository,
	payments interfaces.IPaymentRepository,
	insuranceTypes interfaces.IInsuranceTypeRepository,
	tx interfaces.ITransactor,
	gateway interfaces.IPaymentGateway,
	events interfaces.IEventPublisher,
	policyNumbers PolicyNumberGenerator,
	transactionIDs func() string,
) *PolicyIssuanceUseCase {
	if policyNumbers == nil {
		policyNumbers = NewRandomPolicyNumberGenerator(DefaultPolicyNumberPrefix)
	}
	return &PolicyIssuanceUseCase{
		offers:         offers,
		policies:       policies,
		payments:       payments,
		insuranceTypes: insuranceTypes,
		tx:             tx,
		gateway:        gateway,
		events:         events,
		policyNumbers:  policyNumbers,
		transactionIDs: transactionIDs,
		maxAttempts:    MaxPolicyNumberAttempts,
		now:            utcNow,
	}
}

// PayAndIssuePolicy charges the customer and, in one transaction, records the
// successful payment, creates the policy and marks the offer as issued.
//
// The offer row stays locked from the state re-check until commit, the card
// charge included, so concurrent calls charge at most once and the losers get
// ErrAlreadyIssued. Policy number collisions are retried inside the same
// transaction through savepoints. A charge whose issuance does not commit is
// refunded.
func (u *PolicyIssuanceUseCase) PayAndIssuePolicy(ctx context.Context, actor entities.Actor, offerID uint, in PayAndIssueInput) (_ IssuanceResult, err error) {
	ctx, span := startSpan(ctx, "PolicyIssuanceUseCase.PayAndIssuePolicy",
		attribute.Int64("offer.id", int64(offerID)),
		attribute.String("payment.method", string(in.PaymentMethod)))
	defer func() { endSpan(span, err) }()

	log.Printf("[issuance][usecase] start offer_id=%d amount=%.2f method=%s", offerID, in.PaymentAmount, in.PaymentMethod)
	if err := validatePayAndIssue(offerID, in); err != nil {
		return IssuanceResult{}, err
	}

	_, insuranceType, err := u.precheck(ctx, actor, offerID, in.PaymentAmount)
	if err != nil {
		log.Printf("[issuance][usecase] precheck failed offer_id=%d err=%v", offerID, err)
		return IssuanceResult{}, err
	}

	var (
		result    IssuanceResult
		charged   interfaces.ChargeResult
		chargeErr error
	)
	err = u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		locked, err := u.lockIssuable(ctx, offerID)
		if err != nil {
			return err
		}

		charged, chargeErr = u.charge(ctx, locked, in)
		if chargeErr != nil {
			return chargeErr
		}
		transactionID := u.transactionID(in, charged)

		for attempt := 1; attempt <= u.maxAttempts; attempt++ {
			now := u.now()
			number := u.policyNumbers(now)
			err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
				var err error
				result, err = u.issue(ctx, locked, insuranceType, number, transactionID, charged, in, now)
				return err
			})
			if err == nil {
				log.Printf("[issuance][usecase] success offer_id=%d policy_id=%d policy_number=%s payment_id=%d attempt=%d",
					offerID, result.Policy.ID, result.Policy.PolicyNumber, result.Payment.ID, attempt)
				return nil
			}
			if !errors.Is(err, interfaces.ErrDuplicateKey) {
				return err
			}
			log.Printf("[issuance][usecase] policy number collision offer_id=%d policy_number=%s attempt=%d", offerID, number, attempt)
		}
		log.Printf("[issuance][usecase] policy number attempts exhausted offer_id=%d attempts=%d", offerID, u.maxAttempts)
		return ErrPolicyNumberGenerationFailed
	})
	if err != nil {
		if chargeErr != nil {
			log.Printf("[issuance][usecase] charge failed offer_id=%d err=%v", offerID, chargeErr)
			return IssuanceResult{}, chargeErr
		}
		log.Printf("[issuance][usecase] issuance failed offer_id=%d provider_payment_id=%s err=%v", offerID, charged.ProviderPaymentID, err)
		u.refund(ctx, offerID, charged)
		return IssuanceResult{}, classify(err)
	}

	publish(ctx, u.events, EventPolicyIssued, result.Policy.PolicyNumber, PolicyIssuedEvent{
		PolicyID:     result.Policy.ID,
		PolicyNumber: result.Policy.PolicyNumber,
		OfferID:      result.Offer.ID,
		CustomerID:   result.Offer.CustomerID,
		PaymentID:    result.Payment.ID,
		Amount:       result.Payment.Amount,
		StartDate:    result.Policy.StartDate,
		EndDate:      result.Policy.EndDate,
	})
	return result, nil
}

// lockIssuable locks the offer row and repeats the state checks of precheck
// against the locked copy.
func (u *PolicyIssuanceUseCase) lockIssuable(ctx context.Context, offerID uint) (entities.Offer, error) {
	locked, err := u.offers.GetByIDForUpdate(ctx, offerID)
	if err != nil {
		return entities.Offer{}, storageErr(err)
	}
	if locked.ID == 0 {
		return entities.Offer{}, ErrOfferNotFound
	}
	existing, err := u.policies.GetByOfferID(ctx, offerID)
	if err != nil {
		return entities.Offer{}, storageErr(err)
	}
	if existing.ID != 0 {
		return entities.Offer{}, ErrAlreadyIssued
	}
	if err := locked.CanIssue(); err != nil {
		return entities.Offer{}, err
	}
	return locked, nil
}

// issue writes the policy, the payment and the issued offer. It takes the
// offer by value so a failed attempt leaves the caller's copy untouched.
func (u *PolicyIssuanceUseCase) issue(ctx context.Context, offer entities.Offer, insuranceType entities.InsuranceType, number, transactionID string, charged interfaces.ChargeResult, in PayAndIssueInput, now time.Time) (IssuanceResult, error) {
	start := policyStart(offer, now)
	policy, err := u.policies.Create(ctx, entities.Policy{
		OfferID:      offer.ID,
		PolicyNumber: number,
		StartDate:    start,
		EndDate:      insuranceType.PolicyEnd(start),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			return IssuanceResult{}, err
		}
		return IssuanceResult{}, storageErr(err)
	}

	payment, err := u.payments.Create(ctx, entities.Payment{
		PolicyID:           policy.ID,
		Amount:             in.PaymentAmount,
		PaidAt:             now,
		Method:             in.PaymentMethod,
		Status:             entities.PaymentStatusSuccess,
		TransactionID:      transactionID,
		CardLast4:          strings.TrimSpace(in.CardLast4),
		ProviderReference:  charged.ProviderPaymentID,
		ProviderPayloadRaw: charged.ProviderResponse,
		CreatedAt:          now,
		UpdatedAt:          now,
	})
	if err != nil {
		return IssuanceResult{}, storageErr(err)
	}

	if err := offer.Issue(now); err != nil {
		return IssuanceResult{}, err
	}
	updated, err := u.offers.Update(ctx, offer)
	if err != nil {
		return IssuanceResult{}, storageErr(err)
	}
	return IssuanceResult{Policy: policy, Payment: payment, Offer: updated}, nil
}

func (u *PolicyIssuanceUseCase) transactionID(in PayAndIssueInput, charged interfaces.ChargeResult) string {
	if id := strings.TrimSpace(in.TransactionID); id != "" {
		return id
	}
	if charged.ProviderPaymentID != "" {
		return charged.ProviderPaymentID
	}
	if u.transactionIDs != nil {
		return u.transactionIDs()
	}
	return ""
}

// refund returns a captured charge after a failed issuance. It runs detached
// from the request deadline; a failure is published for reconciliation.
func (u *PolicyIssuanceUseCase) refund(ctx context.Context, offerID uint, charged interfaces.ChargeResult) {
	if charged.ProviderPaymentID == "" || u.gateway == nil {
		return
	}
	ctx = context.WithoutCancel(ctx)
	if err := u.gateway.Refund(ctx, charged.ProviderPaymentID); err != nil {
		log.Printf("[issuance][usecase] refund failed offer_id=%d provider_payment_id=%s err=%v", offerID, charged.ProviderPaymentID, err)
		publish(ctx, u.events, EventPaymentRefundFailed, charged.ProviderPaymentID, RefundFailedEvent{
			OfferID:           offerID,
			ProviderPaymentID: charged.ProviderPaymentID,
			Reason:            err.Error(),
		})
		return
	}
	log.Printf("[issuance][usecase] charge refunded offer_id=%d provider_payment_id=%s", offerID, charged.ProviderPaymentID)
}

// precheck validates state, ownership and amount before money is moved.
// The same state checks run again under the row lock.
func (u *PolicyIssuanceUseCase) precheck(ctx context.Context, actor entities.Actor, offerID uint, amount float64) (entities.Offer, entities.InsuranceType, error) {
	offer, err := u.offers.GetByID(ctx, offerID)
	if err != nil {
		return entities.Offer{}, entities.InsuranceType{}, storageErr(err)
	}
	if offer.ID == 0 {
		return entities.Offer{}, entities.InsuranceType{}, ErrOfferNotFound
	}
	if !actor.OwnsCustomer(offer.CustomerID) {
		return entities.Offer{}, entities.InsuranceType{}, ErrForbidden
	}

	existing, err := u.policies.GetByOfferID(ctx, offerID)
	if err != nil {
		return entities.Offer{}, entities.InsuranceType{}, storageErr(err)
	}
	if existing.ID != 0 {
		return entities.Offer{}, entities.InsuranceType{}, ErrAlreadyIssued
	}
	if err := offer.CanIssue(); err != nil {
		return entities.Offer{}, entities.InsuranceType{}, err
	}
	if math.Abs(amount-offer.FinalPrice) > amountTolerance {
		return entities.Offer{}, entities.InsuranceType{}, fmt.Errorf("%w: expected %.2f got %.2f", ErrInvalidPaymentAmount, offer.FinalPrice, amount)
	}

	insuranceType, err := u.insuranceTypes.GetByID(ctx, offer.InsuranceTypeID)
	if err != nil {
		return entities.Offer{}, entities.InsuranceType{}, storageErr(err)
	}
	if insuranceType.ID == 0 {
		return entities.Offer{}, entities.InsuranceType{}, ErrInsuranceTypeNotFound
	}
	return offer, insuranceType, nil
}

// charge collects card payments through the gateway while the offer row is
// locked. Bank transfers and cash are recorded as settled by the caller.
func (u *PolicyIssuanceUseCase) charge(ctx context.Context, offer entities.Offer, in PayAndIssueInput) (interfaces.ChargeResult, error) {
	if !in.PaymentMethod.IsCard() {
		return interfaces.ChargeResult{}, nil
	}
	if u.gateway == nil {
		return interfaces.ChargeResult{}, ErrPaymentGatewayNotConfigured
	}

	res, err := u.gateway.Charge(ctx, interfaces.ChargeRequest{
		Amount:            offer.FinalPrice,
		Method:            string(in.PaymentMethod),
		Description:       fmt.Sprintf("Offer %d", offer.ID),
		ExternalReference: offerKey(offer.ID),
		PayerEmail:        strings.TrimSpace(in.PayerEmail),
		CardToken:         strings.TrimSpace(in.CardToken),
	})
	if err != nil {
		return interfaces.ChargeResult{}, err
	}
	if !res.Approved {
		return interfaces.ChargeResult{}, fmt.Errorf("%w: provider_status=%s", ErrPaymentDeclined, res.ProviderStatus)
	}
	return res, nil
}

func validatePayAndIssue(offerID uint, in PayAndIssueInput) error {
	if offerID == 0 {
		return ErrInvalidOfferID
	}
	if in.PaymentAmount <= 0 {
		return ErrInvalidPaymentAmount
	}
	if !in.PaymentMethod.Valid() {
		return ErrInvalidPaymentMethod
	}
	if last4 := strings.TrimSpace(in.CardLast4); last4 != "" {
		if len(last4) != 4 || strings.Trim(last4, "0123456789") != "" {
			return ErrInvalidCardLast4
		}
	}
	return nil
}

func policyStart(o entities.Offer, now time.Time) time.Time {
	if o.RequestedStartDate.IsZero() {
		return dateOnly(now)
	}
	return o.RequestedStartDate.UTC()
}
