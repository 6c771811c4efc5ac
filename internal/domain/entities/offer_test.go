package entities

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allOfferStatuses = []OfferStatus{
	OfferStatusRequested,
	OfferStatusPriced,
	OfferStatusCustomerApproved,
	OfferStatusPolicyIssued,
	OfferStatusRejected,
	OfferStatusCancelled,
}

func TestOffer_HappyPath(t *testing.T) {
	now := time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)
	o := Offer{ID: 1, CustomerID: 7, InsuranceTypeID: 2, Status: OfferStatusRequested}

	require.NoError(t, o.Price(PricingTerms{
		BasePrice:    1000,
		DiscountRate: 0.1,
		FinalPrice:   900,
		ValidUntil:   now.AddDate(0, 1, 0),
	}, AssignedAgent(3), now))
	assert.Equal(t, OfferStatusPriced, o.Status)
	assert.Equal(t, 900.0, o.FinalPrice)
	agentID, ok := o.Agent.ID()
	assert.True(t, ok)
	assert.Equal(t, uint(3), agentID)
	require.NotNil(t, o.ReviewedAt)

	require.NoError(t, o.Approve(now))
	assert.True(t, o.IsCustomerApproved)
	assert.Equal(t, OfferStatusCustomerApproved, o.Status)
	require.NoError(t, o.CanIssue())

	require.NoError(t, o.Issue(now))
	assert.Equal(t, OfferStatusPolicyIssued, o.Status)
	assert.True(t, o.Status.Terminal())
}

func TestOffer_PriceKeepsAssignedAgent(t *testing.T) {
	now := time.Now().UTC()
	o := Offer{Status: OfferStatusRequested, Agent: AssignedAgent(5)}
	require.NoError(t, o.Price(PricingTerms{BasePrice: 10, FinalPrice: 10, ValidUntil: now}, AssignedAgent(9), now))

	id, _ := o.Agent.ID()
	assert.Equal(t, uint(5), id)
	reviewer, _ := o.ReviewedBy.ID()
	assert.Equal(t, uint(9), reviewer)
}

func TestOffer_DeclineIsTerminal(t *testing.T) {
	now := time.Now().UTC()
	o := Offer{Status: OfferStatusPriced}
	require.NoError(t, o.Decline("too expensive", now))
	assert.Equal(t, OfferStatusRejected, o.Status)

	assert.ErrorIs(t, o.Price(PricingTerms{}, AssignedAgent(1), now), ErrInvalidStateTransition)
	assert.ErrorIs(t, o.Approve(now), ErrInvalidStateTransition)
	assert.ErrorIs(t, o.Issue(now), ErrInvalidStateTransition)
}

func TestTransitionError(t *testing.T) {
	o := Offer{Status: OfferStatusCancelled}
	err := o.Approve(time.Now())

	var te *TransitionError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "approve", te.Operation)
	assert.Equal(t, OfferStatusCancelled, te.From)
}

func TestAgentRef(t *testing.T) {
	assert.False(t, NoAgent().IsAssigned())
	assert.Nil(t, NoAgent().Ptr())
	assert.Equal(t, uint(4), *AssignedAgent(4).Ptr())
	assert.Equal(t, NoAgent(), AgentRefFromPtr(nil))
	id := uint(8)
	assert.Equal(t, AssignedAgent(8), AgentRefFromPtr(&id))
}

// Each transition succeeds exactly from its allowed source states and leaves
// the offer untouched otherwise.
func TestOffer_TransitionProperties(t *testing.T) {
	type op struct {
		name    string
		allowed []OfferStatus
		apply   func(o *Offer, now time.Time) error
	}
	ops := []op{
		{"price", []OfferStatus{OfferStatusRequested}, func(o *Offer, now time.Time) error {
			return o.Price(PricingTerms{BasePrice: 100, FinalPrice: 90, DiscountRate: 0.1, ValidUntil: now}, AssignedAgent(1), now)
		}},
		{"approve", []OfferStatus{OfferStatusPriced}, func(o *Offer, now time.Time) error { return o.Approve(now) }},
		{"decline", []OfferStatus{OfferStatusPriced}, func(o *Offer, now time.Time) error { return o.Decline("no", now) }},
		{"reject", []OfferStatus{OfferStatusRequested, OfferStatusPriced}, func(o *Offer, now time.Time) error { return o.Reject("no", now) }},
		{"cancel", []OfferStatus{OfferStatusRequested, OfferStatusPriced}, func(o *Offer, now time.Time) error { return o.Cancel("", now) }},
		{"issue", []OfferStatus{OfferStatusCustomerApproved}, func(o *Offer, now time.Time) error { return o.Issue(now) }},
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("transition succeeds iff source state is allowed", prop.ForAll(
		func(statusIdx, opIdx int, base float64) bool {
			status := allOfferStatuses[statusIdx]
			operation := ops[opIdx]
			now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

			o := Offer{ID: 1, CustomerID: 7, Status: status, BasePrice: base}
			before := o
			err := operation.apply(&o, now)

			allowed := false
			for _, s := range operation.allowed {
				if s == status {
					allowed = true
				}
			}
			if allowed {
				return err == nil && o.Status != status
			}
			return errors.Is(err, ErrInvalidStateTransition) && reflect.DeepEqual(before, o)
		},
		gen.IntRange(0, len(allOfferStatuses)-1),
		gen.IntRange(0, len(ops)-1),
		gen.Float64Range(0, 10000),
	))

	properties.TestingRun(t)
}
