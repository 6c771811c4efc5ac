package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"insurance_xpto/internal/domain/entities"
	mock_interfaces "insurance_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type claimMocks struct {
	claims   *mock_interfaces.MockIClaimRepository
	policies *mock_interfaces.MockIPolicyRepository
	offers   *mock_interfaces.MockIOfferRepository
	events   *mock_interfaces.MockIEventPublisher
}

func newClaimUseCase(ctrl *gomock.Controller) (*ClaimUseCase, claimMocks) {
	m := claimMocks{
		claims:   mock_interfaces.NewMockIClaimRepository(ctrl),
		policies: mock_interfaces.NewMockIPolicyRepository(ctrl),
		offers:   mock_interfaces.NewMockIOfferRepository(ctrl),
		events:   mock_interfaces.NewMockIEventPublisher(ctrl),
	}
	uc := NewClaimUseCase(m.claims, m.policies, m.offers, newMemStore(), m.events)
	uc.now = func() time.Time { return testNow }
	return uc, m
}

// ownedPolicy makes policy 11 (offer 21) belong to customer 7, active for 2025.
func (m claimMocks) ownedPolicy() {
	m.policies.EXPECT().GetByID(gomock.Any(), uint(11)).Return(entities.Policy{
		ID: 11, OfferID: 21, PolicyNumber: "POL-00000001-2024", StartDate: testStart, EndDate: testStart.AddDate(1, 0, 0),
	}, nil).AnyTimes()
	m.offers.EXPECT().GetByID(gomock.Any(), uint(21)).Return(entities.Offer{ID: 21, CustomerID: 7}, nil).AnyTimes()
}

func TestClaimUseCase_FileClaim(t *testing.T) {
	ctx := context.Background()
	incident := testStart.AddDate(0, 2, 0)
	valid := FileClaimInput{Description: "rear ended", Type: entities.ClaimTypeAccident, ClaimedAmount: 1500, IncidentDate: incident}

	t.Run("staff cannot file", func(t *testing.T) {
		uc, _ := newClaimUseCase(gomock.NewController(t))
		if _, err := uc.FileClaim(ctx, agentThree, 11, valid); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("validation", func(t *testing.T) {
		uc, _ := newClaimUseCase(gomock.NewController(t))
		cases := []struct {
			name   string
			mutate func(in *FileClaimInput)
		}{
			{"empty description", func(in *FileClaimInput) { in.Description = "  " }},
			{"unknown type", func(in *FileClaimInput) { in.Type = "flood" }},
			{"unknown priority", func(in *FileClaimInput) { in.Priority = "urgent" }},
			{"zero amount", func(in *FileClaimInput) { in.ClaimedAmount = 0 }},
			{"missing incident date", func(in *FileClaimInput) { in.IncidentDate = time.Time{} }},
		}
		for _, tc := range cases {
			in := valid
			tc.mutate(&in)
			if _, err := uc.FileClaim(ctx, customerSeven, 11, in); !errors.Is(err, ErrInvalidClaim) {
				t.Fatalf("%s: expected ErrInvalidClaim, got %v", tc.name, err)
			}
		}
	})

	t.Run("not the policy owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newClaimUseCase(ctrl)
		m.ownedPolicy()
		if _, err := uc.FileClaim(ctx, otherCustomer, 11, valid); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("incident outside policy window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newClaimUseCase(ctrl)
		m.ownedPolicy()
		in := valid
		in.IncidentDate = testStart.AddDate(2, 0, 0)
		if _, err := uc.FileClaim(ctx, customerSeven, 11, in); !errors.Is(err, ErrPolicyNotActive) {
			t.Fatalf("expected ErrPolicyNotActive, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newClaimUseCase(ctrl)
		m.ownedPolicy()
		m.claims.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Claim{})).DoAndReturn(
			func(_ context.Context, c entities.Claim) (entities.Claim, error) {
				if c.PolicyID != 11 || c.Status != entities.ClaimStatusPending || c.Priority != entities.ClaimPriorityMedium || c.CreatedBy != 70 {
					t.Fatalf("unexpected claim: %+v", c)
				}
				c.ID = 31
				return c, nil
			},
		)
		m.events.EXPECT().Publish(gomock.Any(), EventClaimFiled, "11", gomock.Any()).Return(nil)

		c, err := uc.FileClaim(ctx, customerSeven, 11, valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID != 31 {
			t.Fatalf("expected claim 31, got %d", c.ID)
		}
	})

	t.Run("publish failure does not fail the claim", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newClaimUseCase(ctrl)
		m.ownedPolicy()
		m.claims.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Claim{ID: 32, PolicyID: 11}, nil)
		m.events.EXPECT().Publish(gomock.Any(), EventClaimFiled, "11", gomock.Any()).Return(errors.New("broker down"))

		if _, err := uc.FileClaim(ctx, customerSeven, 11, valid); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestClaimUseCase_Review(t *testing.T) {
	ctx := context.Background()
	amount := 1200.0

	t.Run("customer cannot review", func(t *testing.T) {
		uc, _ := newClaimUseCase(gomock.NewController(t))
		_, err := uc.Review(ctx, customerSeven, 31, entities.ClaimReview{Status: entities.ClaimStatusInReview})
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("illegal transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newClaimUseCase(ctrl)
		m.ownedPolicy()
		m.claims.EXPECT().GetByIDForUpdate(gomock.Any(), uint(31)).Return(entities.Claim{ID: 31, PolicyID: 11, Status: entities.ClaimStatusPending}, nil)

		_, err := uc.Review(ctx, agentThree, 31, entities.ClaimReview{Status: entities.ClaimStatusClosed})
		if !errors.Is(err, entities.ErrInvalidStateTransition) {
			t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
		}
	})

	t.Run("approval without amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newClaimUseCase(ctrl)
		m.ownedPolicy()
		m.claims.EXPECT().GetByIDForUpdate(gomock.Any(), uint(31)).Return(entities.Claim{ID: 31, PolicyID: 11, Status: entities.ClaimStatusInReview}, nil)

		_, err := uc.Review(ctx, agentThree, 31, entities.ClaimReview{Status: entities.ClaimStatusApproved})
		if !errors.Is(err, ErrInvalidClaim) {
			t.Fatalf("expected ErrInvalidClaim, got %v", err)
		}
	})

	t.Run("unknown claim", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newClaimUseCase(ctrl)
		m.claims.EXPECT().GetByIDForUpdate(gomock.Any(), uint(99)).Return(entities.Claim{}, nil)

		_, err := uc.Review(ctx, agentThree, 99, entities.ClaimReview{Status: entities.ClaimStatusInReview})
		if !errors.Is(err, ErrClaimNotFound) {
			t.Fatalf("expected ErrClaimNotFound, got %v", err)
		}
	})

	t.Run("approve", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newClaimUseCase(ctrl)
		m.ownedPolicy()
		m.claims.EXPECT().GetByIDForUpdate(gomock.Any(), uint(31)).Return(entities.Claim{ID: 31, PolicyID: 11, Status: entities.ClaimStatusInReview, ClaimedAmount: 1500}, nil)
		m.claims.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Claim{})).DoAndReturn(
			func(_ context.Context, c entities.Claim) (entities.Claim, error) {
				if c.Status != entities.ClaimStatusApproved || c.ApprovedAmount == nil || *c.ApprovedAmount != 1200 {
					t.Fatalf("unexpected claim: %+v", c)
				}
				if c.ProcessedBy == nil || *c.ProcessedBy != 30 || c.ProcessedAt == nil {
					t.Fatalf("expected processor stamp, got %+v", c)
				}
				return c, nil
			},
		)
		m.events.EXPECT().Publish(gomock.Any(), EventClaimReviewed, "11", ClaimEvent{ClaimID: 31, PolicyID: 11, Status: entities.ClaimStatusApproved, Amount: 1200}).Return(nil)

		if _, err := uc.Review(ctx, agentThree, 31, entities.ClaimReview{Status: entities.ClaimStatusApproved, ApprovedAmount: &amount}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

// lockedClaims keeps claims in memory. reads pause briefly so concurrent
// reviews overlap unless the transactor serializes them.
type lockedClaims struct {
	mu     sync.Mutex
	claims map[uint]entities.Claim
}

func (r *lockedClaims) Create(_ context.Context, c entities.Claim) (entities.Claim, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.claims[c.ID] = c
	return c, nil
}

func (r *lockedClaims) GetByID(_ context.Context, id uint) (entities.Claim, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.claims[id], nil
}

func (r *lockedClaims) GetByIDForUpdate(ctx context.Context, id uint) (entities.Claim, error) {
	c, err := r.GetByID(ctx, id)
	time.Sleep(10 * time.Millisecond)
	return c, err
}

func (r *lockedClaims) ListByPolicyID(context.Context, uint) ([]entities.Claim, error) {
	return nil, nil
}

func (r *lockedClaims) Update(_ context.Context, c entities.Claim) (entities.Claim, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.claims[c.ID] = c
	return c, nil
}

func TestClaimUseCase_ConcurrentReviewsApplyOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := claimMocks{
		policies: mock_interfaces.NewMockIPolicyRepository(ctrl),
		offers:   mock_interfaces.NewMockIOfferRepository(ctrl),
		events:   mock_interfaces.NewMockIEventPublisher(ctrl),
	}
	m.ownedPolicy()
	m.events.EXPECT().Publish(gomock.Any(), EventClaimReviewed, "11", gomock.Any()).Return(nil).Times(1)

	repo := &lockedClaims{claims: map[uint]entities.Claim{
		31: {ID: 31, PolicyID: 11, Status: entities.ClaimStatusInReview, ClaimedAmount: 1500},
	}}
	uc := NewClaimUseCase(repo, m.policies, m.offers, newMemStore(), m.events)
	uc.now = func() time.Time { return testNow }

	amount := 1200.0
	reviews := []entities.ClaimReview{
		{Status: entities.ClaimStatusApproved, ApprovedAmount: &amount},
		{Status: entities.ClaimStatusRejected},
	}
	errs := make([]error, len(reviews))
	var wg sync.WaitGroup
	for i, review := range reviews {
		wg.Add(1)
		go func(i int, review entities.ClaimReview) {
			defer wg.Done()
			_, errs[i] = uc.Review(context.Background(), agentThree, 31, review)
		}(i, review)
	}
	wg.Wait()

	var applied, rejected int
	for _, err := range errs {
		switch {
		case err == nil:
			applied++
		case errors.Is(err, entities.ErrInvalidStateTransition):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if applied != 1 || rejected != 1 {
		t.Fatalf("expected one applied and one refused review, got %d and %d", applied, rejected)
	}
	final := repo.claims[31]
	if final.Status != entities.ClaimStatusApproved && final.Status != entities.ClaimStatusRejected {
		t.Fatalf("unexpected final status %s", final.Status)
	}
}

func TestClaimUseCase_Reads(t *testing.T) {
	ctx := context.Background()

	t.Run("missing claim", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newClaimUseCase(ctrl)
		m.claims.EXPECT().GetByID(gomock.Any(), uint(99)).Return(entities.Claim{}, nil)
		if _, err := uc.GetByID(ctx, customerSeven, 99); !errors.Is(err, ErrClaimNotFound) {
			t.Fatalf("expected ErrClaimNotFound, got %v", err)
		}
	})

	t.Run("list for owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newClaimUseCase(ctrl)
		m.ownedPolicy()
		m.claims.EXPECT().ListByPolicyID(gomock.Any(), uint(11)).Return([]entities.Claim{{ID: 31}, {ID: 32}}, nil)

		claims, err := uc.ListByPolicyID(ctx, customerSeven, 11)
		if err != nil || len(claims) != 2 {
			t.Fatalf("expected 2 claims, got %d err=%v", len(claims), err)
		}
	})

	t.Run("list for stranger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newClaimUseCase(ctrl)
		m.ownedPolicy()
		if _, err := uc.ListByPolicyID(ctx, otherCustomer, 11); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})
}
