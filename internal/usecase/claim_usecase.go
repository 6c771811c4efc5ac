package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"insurance_xpto/internal/domain/entities"
	"insurance_xpto/internal/usecase/interfaces"
)

const (
	EventClaimFiled    = "claim.filed"
	EventClaimReviewed = "claim.reviewed"
)

type FileClaimInput struct {
	Description   string
	Type          entities.ClaimType
	Priority      entities.ClaimPriority
	ClaimedAmount float64
	IncidentDate  time.Time
	Notes         string
}

type ClaimEvent struct {
	ClaimID  uint                 `json:"claim_id"`
	PolicyID uint                 `json:"policy_id"`
	Status   entities.ClaimStatus `json:"status"`
	Amount   float64              `json:"amount"`
}

type IClaimUseCase interface {
	FileClaim(ctx context.Context, actor entities.Actor, policyID uint, in FileClaimInput) (entities.Claim, error)
	Review(ctx context.Context, actor entities.Actor, claimID uint, review entities.ClaimReview) (entities.Claim, error)
	GetByID(ctx context.Context, actor entities.Actor, id uint) (entities.Claim, error)
	ListByPolicyID(ctx context.Context, actor entities.Actor, policyID uint) ([]entities.Claim, error)
}

type ClaimUseCase struct {
	claims   interfaces.IClaimRepository
	policies interfaces.IPolicyRepository
	offers   interfaces.IOfferRepository
	tx       interfaces.ITransactor
	events   interfaces.IEventPublisher
	now      func() time.Time
}

var _ IClaimUseCase = (*ClaimUseCase)(nil)

func NewClaimUseCase(claims interfaces.IClaimRepository, policies interfaces.IPolicyRepository, offers interfaces.IOfferRepository, tx interfaces.ITransactor, events interfaces.IEventPublisher) *ClaimUseCase {
	return &ClaimUseCase{claims: claims, policies: policies, offers: offers, tx: tx, events: events, now: utcNow}
}

// FileClaim reports an incident on a policy owned by the calling customer.
func (u *ClaimUseCase) FileClaim(ctx context.Context, actor entities.Actor, policyID uint, in FileClaimInput) (entities.Claim, error) {
	if actor.Role != entities.RoleCustomer {
		return entities.Claim{}, ErrForbidden
	}
	in.Description = strings.TrimSpace(in.Description)
	if in.Priority == "" {
		in.Priority = entities.ClaimPriorityMedium
	}
	switch {
	case in.Description == "":
		return entities.Claim{}, fmt.Errorf("%w: description is required", ErrInvalidClaim)
	case !in.Type.Valid():
		return entities.Claim{}, fmt.Errorf("%w: unknown type %q", ErrInvalidClaim, in.Type)
	case !in.Priority.Valid():
		return entities.Claim{}, fmt.Errorf("%w: unknown priority %q", ErrInvalidClaim, in.Priority)
	case in.ClaimedAmount <= 0:
		return entities.Claim{}, fmt.Errorf("%w: claimed amount must be positive", ErrInvalidClaim)
	case in.IncidentDate.IsZero():
		return entities.Claim{}, fmt.Errorf("%w: incident date is required", ErrInvalidClaim)
	}

	policy, _, err := loadOwnedPolicy(ctx, u.policies, u.offers, actor, policyID)
	if err != nil {
		return entities.Claim{}, err
	}
	if !policy.ActiveAt(in.IncidentDate) {
		return entities.Claim{}, ErrPolicyNotActive
	}

	now := u.now()
	created, err := u.claims.Create(ctx, entities.Claim{
		PolicyID:      policy.ID,
		CreatedBy:     actor.UserID,
		Description:   in.Description,
		Status:        entities.ClaimStatusPending,
		Type:          in.Type,
		Priority:      in.Priority,
		ClaimedAmount: in.ClaimedAmount,
		IncidentDate:  in.IncidentDate.UTC(),
		Notes:         strings.TrimSpace(in.Notes),
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		log.Printf("[claim][usecase] file failed policy_id=%d err=%v", policyID, err)
		return entities.Claim{}, storageErr(err)
	}
	log.Printf("[claim][usecase] filed claim_id=%d policy_id=%d amount=%.2f", created.ID, created.PolicyID, created.ClaimedAmount)

	publish(ctx, u.events, EventClaimFiled, strconv.FormatUint(uint64(created.PolicyID), 10), ClaimEvent{
		ClaimID: created.ID, PolicyID: created.PolicyID, Status: created.Status, Amount: created.ClaimedAmount,
	})
	return created, nil
}

// Review applies a staff decision to a claim.
func (u *ClaimUseCase) Review(ctx context.Context, actor entities.Actor, claimID uint, review entities.ClaimReview) (entities.Claim, error) {
	if !actor.IsStaff() {
		return entities.Claim{}, ErrForbidden
	}
	if !review.Status.Valid() {
		return entities.Claim{}, fmt.Errorf("%w: unknown status %q", ErrInvalidClaim, review.Status)
	}
	if review.ApprovedAmount != nil && *review.ApprovedAmount < 0 {
		return entities.Claim{}, fmt.Errorf("%w: approved amount must not be negative", ErrInvalidClaim)
	}
	if claimID == 0 {
		return entities.Claim{}, ErrClaimNotFound
	}

	// The claim row stays locked from the status check until the update commits.
	var updated entities.Claim
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		claim, err := u.claims.GetByIDForUpdate(ctx, claimID)
		if err != nil {
			return storageErr(err)
		}
		if claim.ID == 0 {
			return ErrClaimNotFound
		}
		if _, _, err := loadOwnedPolicy(ctx, u.policies, u.offers, actor, claim.PolicyID); err != nil {
			return err
		}
		if err := claim.ApplyReview(review, actor.UserID, u.now()); err != nil {
			if errors.Is(err, entities.ErrApprovedAmountRequired) {
				return fmt.Errorf("%w: %w", ErrInvalidClaim, err)
			}
			return err
		}

		updated, err = u.claims.Update(ctx, claim)
		if err != nil {
			return storageErr(err)
		}
		if updated.ID == 0 {
			return ErrClaimNotFound
		}
		return nil
	})
	if err != nil {
		return entities.Claim{}, err
	}
	log.Printf("[claim][usecase] reviewed claim_id=%d status=%s processor=%d", updated.ID, updated.Status, actor.UserID)

	amount := updated.ClaimedAmount
	if updated.ApprovedAmount != nil {
		amount = *updated.ApprovedAmount
	}
	publish(ctx, u.events, EventClaimReviewed, strconv.FormatUint(uint64(updated.PolicyID), 10), ClaimEvent{
		ClaimID: updated.ID, PolicyID: updated.PolicyID, Status: updated.Status, Amount: amount,
	})
	return updated, nil
}

func (u *ClaimUseCase) GetByID(ctx context.Context, actor entities.Actor, id uint) (entities.Claim, error) {
	if id == 0 {
		return entities.Claim{}, ErrClaimNotFound
	}
	c, err := u.claims.GetByID(ctx, id)
	if err != nil {
		return entities.Claim{}, storageErr(err)
	}
	if c.ID == 0 {
		return entities.Claim{}, ErrClaimNotFound
	}
	if _, _, err := loadOwnedPolicy(ctx, u.policies, u.offers, actor, c.PolicyID); err != nil {
		return entities.Claim{}, err
	}
	return c, nil
}

func (u *ClaimUseCase) ListByPolicyID(ctx context.Context, actor entities.Actor, policyID uint) ([]entities.Claim, error) {
	if _, _, err := loadOwnedPolicy(ctx, u.policies, u.offers, actor, policyID); err != nil {
		return nil, err
	}
	claims, err := u.claims.ListByPolicyID(ctx, policyID)
	if err != nil {
		return nil, storageErr(err)
	}
	return claims, nil
}
