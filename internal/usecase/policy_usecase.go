package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"insurance_xpto/internal/domain/entities"
	"insurance_xpto/internal/usecase/interfaces"
)

// IPolicyUseCase exposes read access to policies and the admin cascade delete.
type IPolicyUseCase interface {
	GetByID(ctx context.Context, actor entities.Actor, id uint) (entities.Policy, error)
	List(ctx context.Context, actor entities.Actor, filter interfaces.PolicyFilter) ([]entities.Policy, error)
	Delete(ctx context.Context, actor entities.Actor, id uint) error
	ListPayments(ctx context.Context, actor entities.Actor, policyID uint) ([]entities.Payment, error)
	GetPayment(ctx context.Context, actor entities.Actor, paymentID uint) (entities.Payment, error)
	UpdatePaymentStatus(ctx context.Context, actor entities.Actor, paymentID uint, status entities.PaymentStatus, notes string) (entities.Payment, error)
}

type PolicyUseCase struct {
	policies interfaces.IPolicyRepository
	offers   interfaces.IOfferRepository
	payments interfaces.IPaymentRepository
	tx       interfaces.ITransactor
}

var _ IPolicyUseCase = (*PolicyUseCase)(nil)

func NewPolicyUseCase(policies interfaces.IPolicyRepository, offers interfaces.IOfferRepository, payments interfaces.IPaymentRepository, tx interfaces.ITransactor) *PolicyUseCase {
	return &PolicyUseCase{policies: policies, offers: offers, payments: payments, tx: tx}
}

func (u *PolicyUseCase) GetByID(ctx context.Context, actor entities.Actor, id uint) (entities.Policy, error) {
	p, _, err := loadOwnedPolicy(ctx, u.policies, u.offers, actor, id)
	return p, err
}

func (u *PolicyUseCase) List(ctx context.Context, actor entities.Actor, filter interfaces.PolicyFilter) ([]entities.Policy, error) {
	switch {
	case actor.Role == entities.RoleCustomer:
		filter.CustomerID = actor.CustomerID
	case !actor.IsStaff():
		return nil, ErrForbidden
	}
	policies, err := u.policies.List(ctx, filter)
	if err != nil {
		return nil, storageErr(err)
	}
	return policies, nil
}

// Delete removes a policy with its claims, payments and documents.
func (u *PolicyUseCase) Delete(ctx context.Context, actor entities.Actor, id uint) error {
	if actor.Role != entities.RoleAdmin {
		return ErrForbidden
	}
	if id == 0 {
		return ErrPolicyNotFound
	}
	log.Printf("[policy][usecase] delete start policy_id=%d", id)

	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		p, err := u.policies.GetByID(ctx, id)
		if err != nil {
			return storageErr(err)
		}
		if p.ID == 0 {
			return ErrPolicyNotFound
		}
		return u.policies.DeleteCascade(ctx, id)
	})
	if err != nil {
		log.Printf("[policy][usecase] delete failed policy_id=%d err=%v", id, err)
		return classify(err)
	}
	log.Printf("[policy][usecase] delete success policy_id=%d", id)
	return nil
}

func (u *PolicyUseCase) ListPayments(ctx context.Context, actor entities.Actor, policyID uint) ([]entities.Payment, error) {
	if _, _, err := loadOwnedPolicy(ctx, u.policies, u.offers, actor, policyID); err != nil {
		return nil, err
	}
	payments, err := u.payments.ListByPolicyID(ctx, policyID)
	if err != nil {
		return nil, storageErr(err)
	}
	return payments, nil
}

func (u *PolicyUseCase) GetPayment(ctx context.Context, actor entities.Actor, paymentID uint) (entities.Payment, error) {
	if paymentID == 0 {
		return entities.Payment{}, ErrPaymentNotFound
	}
	p, err := u.payments.GetByID(ctx, paymentID)
	if err != nil {
		return entities.Payment{}, storageErr(err)
	}
	if p.ID == 0 {
		return entities.Payment{}, ErrPaymentNotFound
	}
	if _, _, err := loadOwnedPolicy(ctx, u.policies, u.offers, actor, p.PolicyID); err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

// UpdatePaymentStatus changes only status and notes; amounts stay frozen.
func (u *PolicyUseCase) UpdatePaymentStatus(ctx context.Context, actor entities.Actor, paymentID uint, status entities.PaymentStatus, notes string) (entities.Payment, error) {
	if actor.Role != entities.RoleAdmin {
		return entities.Payment{}, ErrForbidden
	}
	if !status.Valid() {
		return entities.Payment{}, ErrInvalidPaymentStatus
	}
	updated, err := u.payments.UpdateStatus(ctx, paymentID, status, strings.TrimSpace(notes))
	if err != nil {
		return entities.Payment{}, storageErr(err)
	}
	if updated.ID == 0 {
		return entities.Payment{}, ErrPaymentNotFound
	}
	log.Printf("[payment][usecase] status updated payment_id=%d status=%s", updated.ID, updated.Status)
	return updated, nil
}

// loadOwnedPolicy fetches a policy and its offer, enforcing that customers
// only see their own contracts.
func loadOwnedPolicy(ctx context.Context, policies interfaces.IPolicyRepository, offers interfaces.IOfferRepository, actor entities.Actor, id uint) (entities.Policy, entities.Offer, error) {
	if id == 0 {
		return entities.Policy{}, entities.Offer{}, ErrPolicyNotFound
	}
	p, err := policies.GetByID(ctx, id)
	if err != nil {
		return entities.Policy{}, entities.Offer{}, storageErr(err)
	}
	if p.ID == 0 {
		return entities.Policy{}, entities.Offer{}, ErrPolicyNotFound
	}
	o, err := offers.GetByID(ctx, p.OfferID)
	if err != nil {
		return entities.Policy{}, entities.Offer{}, storageErr(err)
	}
	if !actor.IsStaff() && !actor.OwnsCustomer(o.CustomerID) {
		return entities.Policy{}, entities.Offer{}, ErrForbidden
	}
	return p, o, nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
