package usecase

import (
	"context"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"insurance_xpto/internal/domain/entities"
	"insurance_xpto/internal/usecase/interfaces"

	"go.opentelemetry.io/otel/attribute"
)

const (
	EventOfferRequested = "offer.requested"
	EventOfferPriced    = "offer.priced"
	EventOfferApproved  = "offer.approved"
	EventOfferRejected  = "offer.rejected"
	EventOfferCancelled = "offer.cancelled"
)

type SelectedCoverageInput struct {
	CoverageID uint
	Notes      string
}

type RequestOfferInput struct {
	CustomerID              uint
	InsuranceTypeID         uint
	RequestedCoverageAmount float64
	RequestedStartDate      time.Time
	AdditionalInfo          string
	Department              string
	Coverages               []SelectedCoverageInput
}

// PriceOfferInput carries the agent pricing. A zero FinalPrice is computed
// from BasePrice and DiscountRate; a supplied one is taken as authoritative.
type PriceOfferInput struct {
	BasePrice    float64
	DiscountRate float64
	FinalPrice   float64
	ValidUntil   time.Time
	AdminNotes   string
}

// OfferEvent is the payload of offer.* events.
type OfferEvent struct {
	OfferID    uint                 `json:"offer_id"`
	CustomerID uint                 `json:"customer_id"`
	Status     entities.OfferStatus `json:"status"`
	FinalPrice float64              `json:"final_price"`
	OccurredAt time.Time            `json:"occurred_at"`
}

// IOfferUseCase drives an offer from request to customer approval.
//
// Every mutation locks the offer row, runs exactly one entity transition and
// writes it back inside a single transaction.
type IOfferUseCase interface {
	RequestOffer(ctx context.Context, actor entities.Actor, in RequestOfferInput) (entities.Offer, error)
	PriceOffer(ctx context.Context, actor entities.Actor, offerID uint, in PriceOfferInput) (entities.Offer, error)
	ApproveOffer(ctx context.Context, actor entities.Actor, offerID uint, approved bool, reason string) (entities.Offer, error)
	RejectOffer(ctx context.Context, actor entities.Actor, offerID uint, reason string) (entities.Offer, error)
	CancelOffer(ctx context.Context, actor entities.Actor, offerID uint, reason string) (entities.Offer, error)
	GetByID(ctx context.Context, actor entities.Actor, id uint) (entities.Offer, error)
	List(ctx context.Context, actor entities.Actor, filter interfaces.OfferFilter) ([]entities.Offer, error)
}

type OfferUseCase struct {
	repo           interfaces.IOfferRepository
	customers      interfaces.ICustomerRepository
	insuranceTypes interfaces.IInsuranceTypeRepository
	coverages      interfaces.ICoverageRepository
	tx             interfaces.ITransactor
	events         interfaces.IEventPublisher
	now            func() time.Time
}

var _ IOfferUseCase = (*OfferUseCase)(nil)

func NewOfferUseCase(
	repo interfaces.IOfferRepository,
	customers interfaces.ICustomerRepository,
	insuranceTypes interfaces.IInsuranceTypeRepository,
	coverages interfaces.ICoverageRepository,
	tx interfaces.ITransactor,
	events interfaces.IEventPublisher,
) *OfferUseCase {
	return &OfferUseCase{
		repo:           repo,
		customers:      customers,
		insuranceTypes: insuranceTypes,
		coverages:      coverages,
		tx:             tx,
		events:         events,
		now:            utcNow,
	}
}

func (u *OfferUseCase) RequestOffer(ctx context.Context, actor entities.Actor, in RequestOfferInput) (_ entities.Offer, err error) {
	ctx, span := startSpan(ctx, "OfferUseCase.RequestOffer",
		attribute.Int64("customer.id", int64(in.CustomerID)),
		attribute.Int64("insurance_type.id", int64(in.InsuranceTypeID)))
	defer func() { endSpan(span, err) }()

	if actor.Role == entities.RoleCustomer {
		if in.CustomerID == 0 {
			in.CustomerID = actor.CustomerID
		}
		if !actor.OwnsCustomer(in.CustomerID) {
			return entities.Offer{}, ErrForbidden
		}
	}
	if in.CustomerID == 0 {
		return entities.Offer{}, ErrInvalidCustomerID
	}
	if in.InsuranceTypeID == 0 {
		return entities.Offer{}, ErrInvalidInsuranceTypeID
	}
	if in.RequestedCoverageAmount <= 0 {
		return entities.Offer{}, ErrInvalidCoverageAmount
	}
	if in.RequestedStartDate.IsZero() {
		return entities.Offer{}, ErrInvalidStartDate
	}
	log.Printf("[offer][usecase] request start customer_id=%d insurance_type_id=%d", in.CustomerID, in.InsuranceTypeID)

	customer, err := u.customers.GetByID(ctx, in.CustomerID)
	if err != nil {
		return entities.Offer{}, storageErr(err)
	}
	if customer.ID == 0 {
		return entities.Offer{}, ErrCustomerNotFound
	}

	insuranceType, err := u.insuranceTypes.GetByID(ctx, in.InsuranceTypeID)
	if err != nil {
		return entities.Offer{}, storageErr(err)
	}
	if insuranceType.ID == 0 {
		return entities.Offer{}, ErrInsuranceTypeNotFound
	}
	if !insuranceType.IsActive {
		return entities.Offer{}, ErrInsuranceTypeInactive
	}

	selected := make([]entities.SelectedCoverage, 0, len(in.Coverages))
	for _, c := range in.Coverages {
		coverage, err := u.coverages.GetByID(ctx, c.CoverageID)
		if err != nil {
			return entities.Offer{}, storageErr(err)
		}
		if coverage.ID == 0 || coverage.InsuranceTypeID != insuranceType.ID {
			return entities.Offer{}, fmt.Errorf("%w: coverage_id=%d", ErrCoverageNotFound, c.CoverageID)
		}
		selected = append(selected, entities.SelectedCoverage{
			CoverageID: coverage.ID,
			Premium:    coverage.BasePremium,
			Notes:      strings.TrimSpace(c.Notes),
		})
	}

	now := u.now()
	offer := entities.Offer{
		CustomerID:              customer.ID,
		Agent:                   entities.NoAgent(),
		InsuranceTypeID:         insuranceType.ID,
		Status:                  entities.OfferStatusRequested,
		CustomerAdditionalInfo:  strings.TrimSpace(in.AdditionalInfo),
		RequestedCoverageAmount: in.RequestedCoverageAmount,
		RequestedStartDate:      in.RequestedStartDate.UTC(),
		Department:              strings.TrimSpace(in.Department),
		CreatedBy:               actor.UserID,
		CreatedAt:               now,
		UpdatedAt:               now,
		SelectedCoverages:       selected,
	}

	created, err := u.repo.Create(ctx, offer)
	if err != nil {
		log.Printf("[offer][usecase] request create failed customer_id=%d err=%v", in.CustomerID, err)
		return entities.Offer{}, storageErr(err)
	}
	log.Printf("[offer][usecase] request success offer_id=%d customer_id=%d", created.ID, created.CustomerID)

	publish(ctx, u.events, EventOfferRequested, offerKey(created.ID), offerEvent(created))
	return created, nil
}

func (u *OfferUseCase) PriceOffer(ctx context.Context, actor entities.Actor, offerID uint, in PriceOfferInput) (_ entities.Offer, err error) {
	ctx, span := startSpan(ctx, "OfferUseCase.PriceOffer", attribute.Int64("offer.id", int64(offerID)))
	defer func() { endSpan(span, err) }()

	if !actor.IsStaff() {
		return entities.Offer{}, ErrForbidden
	}

	reviewer := entities.NoAgent()
	if actor.Role == entities.RoleAgent {
		reviewer = entities.AssignedAgent(actor.AgentID)
	}

	// A closed offer reports the state conflict before any pricing error.
	updated, err := u.transition(ctx, offerID, "price", nil, func(o *entities.Offer, now time.Time) error {
		if err := o.CanPrice(); err != nil {
			return err
		}
		terms, err := u.pricingTerms(in, now)
		if err != nil {
			return err
		}
		return o.Price(terms, reviewer, now)
	})
	if err != nil {
		return entities.Offer{}, err
	}
	publish(ctx, u.events, EventOfferPriced, offerKey(updated.ID), offerEvent(updated))
	return updated, nil
}

func (u *OfferUseCase) ApproveOffer(ctx context.Context, actor entities.Actor, offerID uint, approved bool, reason string) (_ entities.Offer, err error) {
	ctx, span := startSpan(ctx, "OfferUseCase.ApproveOffer",
		attribute.Int64("offer.id", int64(offerID)),
		attribute.Bool("offer.approved", approved))
	defer func() { endSpan(span, err) }()

	owner := func(o entities.Offer) error {
		if !actor.OwnsCustomer(o.CustomerID) {
			return ErrForbidden
		}
		return nil
	}

	if approved {
		updated, err := u.transition(ctx, offerID, "approve", owner, func(o *entities.Offer, now time.Time) error {
			return o.Approve(now)
		})
		if err != nil {
			return entities.Offer{}, err
		}
		publish(ctx, u.events, EventOfferApproved, offerKey(updated.ID), offerEvent(updated))
		return updated, nil
	}

	updated, err := u.transition(ctx, offerID, "decline", owner, func(o *entities.Offer, now time.Time) error {
		return o.Decline(strings.TrimSpace(reason), now)
	})
	if err != nil {
		return entities.Offer{}, err
	}
	publish(ctx, u.events, EventOfferRejected, offerKey(updated.ID), offerEvent(updated))
	return updated, nil
}

func (u *OfferUseCase) RejectOffer(ctx context.Context, actor entities.Actor, offerID uint, reason string) (_ entities.Offer, err error) {
	ctx, span := startSpan(ctx, "OfferUseCase.RejectOffer", attribute.Int64("offer.id", int64(offerID)))
	defer func() { endSpan(span, err) }()

	if !actor.IsStaff() {
		return entities.Offer{}, ErrForbidden
	}
	updated, err := u.transition(ctx, offerID, "reject", nil, func(o *entities.Offer, now time.Time) error {
		return o.Reject(strings.TrimSpace(reason), now)
	})
	if err != nil {
		return entities.Offer{}, err
	}
	publish(ctx, u.events, EventOfferRejected, offerKey(updated.ID), offerEvent(updated))
	return updated, nil
}

func (u *OfferUseCase) CancelOffer(ctx context.Context, actor entities.Actor, offerID uint, reason string) (_ entities.Offer, err error) {
	ctx, span := startSpan(ctx, "OfferUseCase.CancelOffer", attribute.Int64("offer.id", int64(offerID)))
	defer func() { endSpan(span, err) }()

	ownerOrStaff := func(o entities.Offer) error {
		if actor.IsStaff() || actor.OwnsCustomer(o.CustomerID) {
			return nil
		}
		return ErrForbidden
	}
	updated, err := u.transition(ctx, offerID, "cancel", ownerOrStaff, func(o *entities.Offer, now time.Time) error {
		return o.Cancel(strings.TrimSpace(reason), now)
	})
	if err != nil {
		return entities.Offer{}, err
	}
	publish(ctx, u.events, EventOfferCancelled, offerKey(updated.ID), offerEvent(updated))
	return updated, nil
}

func (u *OfferUseCase) GetByID(ctx context.Context, actor entities.Actor, id uint) (entities.Offer, error) {
	if id == 0 {
		return entities.Offer{}, ErrInvalidOfferID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Offer{}, storageErr(err)
	}
	if o.ID == 0 {
		return entities.Offer{}, ErrOfferNotFound
	}
	if !actor.IsStaff() && !actor.OwnsCustomer(o.CustomerID) {
		return entities.Offer{}, ErrForbidden
	}
	return o, nil
}

func (u *OfferUseCase) List(ctx context.Context, actor entities.Actor, filter interfaces.OfferFilter) ([]entities.Offer, error) {
	switch {
	case actor.Role == entities.RoleCustomer:
		filter.CustomerID = actor.CustomerID
	case !actor.IsStaff():
		return nil, ErrForbidden
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, filter.Status)
	}
	offers, err := u.repo.List(ctx, filter)
	if err != nil {
		return nil, storageErr(err)
	}
	return offers, nil
}

// transition loads the offer under a row lock, checks authorize, applies the
// state change and persists it. Nothing is written when any step fails.
func (u *OfferUseCase) transition(
	ctx context.Context,
	offerID uint,
	op string,
	authorize func(entities.Offer) error,
	apply func(o *entities.Offer, now time.Time) error,
) (entities.Offer, error) {
	if offerID == 0 {
		return entities.Offer{}, ErrInvalidOfferID
	}
	log.Printf("[offer][usecase] %s start offer_id=%d", op, offerID)

	var updated entities.Offer
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		offer, err := u.repo.GetByIDForUpdate(ctx, offerID)
		if err != nil {
			return storageErr(err)
		}
		if offer.ID == 0 {
			return ErrOfferNotFound
		}
		if authorize != nil {
			if err := authorize(offer); err != nil {
				return err
			}
		}
		if err := apply(&offer, u.now()); err != nil {
			return err
		}
		updated, err = u.repo.Update(ctx, offer)
		if err != nil {
			return storageErr(err)
		}
		return nil
	})
	if err != nil {
		log.Printf("[offer][usecase] %s failed offer_id=%d err=%v", op, offerID, err)
		return entities.Offer{}, classify(err)
	}
	log.Printf("[offer][usecase] %s success offer_id=%d status=%s", op, updated.ID, updated.Status)
	return updated, nil
}

func (u *OfferUseCase) pricingTerms(in PriceOfferInput, now time.Time) (entities.PricingTerms, error) {
	if in.BasePrice <= 0 {
		return entities.PricingTerms{}, fmt.Errorf("%w: base price must be positive", ErrInvalidPricing)
	}
	if in.DiscountRate < 0 || in.DiscountRate >= 1 {
		return entities.PricingTerms{}, fmt.Errorf("%w: discount rate must be in [0, 1)", ErrInvalidPricing)
	}
	if in.ValidUntil.IsZero() || !in.ValidUntil.After(now) {
		return entities.PricingTerms{}, fmt.Errorf("%w: valid until must be in the future", ErrInvalidPricing)
	}
	final := in.FinalPrice
	if final == 0 {
		final = ComputeFinalPrice(in.BasePrice, in.DiscountRate)
	}
	if final <= 0 || final > in.BasePrice {
		return entities.PricingTerms{}, fmt.Errorf("%w: final price must be in (0, base price]", ErrInvalidPricing)
	}
	return entities.PricingTerms{
		BasePrice:    in.BasePrice,
		DiscountRate: in.DiscountRate,
		FinalPrice:   final,
		ValidUntil:   in.ValidUntil.UTC(),
		AdminNotes:   strings.TrimSpace(in.AdminNotes),
	}, nil
}

// ComputeFinalPrice applies the discount and rounds to cents.
func ComputeFinalPrice(base, discountRate float64) float64 {
	return math.Round(base*(1-discountRate)*100) / 100
}

func offerKey(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func offerEvent(o entities.Offer) OfferEvent {
	return OfferEvent{
		OfferID:    o.ID,
		CustomerID: o.CustomerID,
		Status:     o.Status,
		FinalPrice: o.FinalPrice,
		OccurredAt: o.UpdatedAt,
	}
}
