package usecase

import (
	"context"
	"sync"
	"time"

	"insurance_xpto/internal/domain/entities"
	"insurance_xpto/internal/usecase/interfaces"
)

// memStore is an in-memory backing store for workflow tests. Transactions are
// serialized and rolled back by restoring a snapshot, which stands in for the
// row lock and atomic commit of the real database.
type memStore struct {
	txMu sync.Mutex
	mu   sync.Mutex

	offers         map[uint]entities.Offer
	policies       map[uint]entities.Policy
	payments       map[uint]entities.Payment
	customers      map[uint]entities.Customer
	insuranceTypes map[uint]entities.InsuranceType
	coverages      map[uint]entities.Coverage
	nextID         uint

	// failPaymentCreate makes the next payment insert fail.
	failPaymentCreate error
	// duplicateNumbers makes policy inserts fail with ErrDuplicateKey for these numbers.
	duplicateNumbers map[string]bool
}

type memTxKey struct{}

func newMemStore() *memStore {
	return &memStore{
		offers:           map[uint]entities.Offer{},
		policies:         map[uint]entities.Policy{},
		payments:         map[uint]entities.Payment{},
		customers:        map[uint]entities.Customer{},
		insuranceTypes:   map[uint]entities.InsuranceType{},
		coverages:        map[uint]entities.Coverage{},
		nextID:           1000,
		duplicateNumbers: map[string]bool{},
	}
}

type memSnapshot struct {
	offers   map[uint]entities.Offer
	policies map[uint]entities.Policy
	payments map[uint]entities.Payment
}

func copyMap[K comparable, V any](in map[K]V) map[K]V {
	out := make(map[K]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func (s *memStore) snapshot() memSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return memSnapshot{offers: copyMap(s.offers), policies: copyMap(s.policies), payments: copyMap(s.payments)}
}

func (s *memStore) restore(snap memSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offers, s.policies, s.payments = snap.offers, snap.policies, snap.payments
}

// WithinTransaction serializes top level transactions; a nested call acts as
// a savepoint over the enclosing one.
func (s *memStore) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(memTxKey{}) == nil {
		s.txMu.Lock()
		defer s.txMu.Unlock()
		ctx = context.WithValue(ctx, memTxKey{}, true)
	}
	snap := s.snapshot()
	if err := fn(ctx); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

func (s *memStore) id() uint {
	s.nextID++
	return s.nextID
}

// offers

type memOffers struct{ s *memStore }

func (r memOffers) Create(_ context.Context, o entities.Offer) (entities.Offer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o.ID = r.s.id()
	r.s.offers[o.ID] = o
	return o, nil
}

func (r memOffers) GetByID(_ context.Context, id uint) (entities.Offer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.offers[id], nil
}

func (r memOffers) GetByIDForUpdate(ctx context.Context, id uint) (entities.Offer, error) {
	return r.GetByID(ctx, id)
}

func (r memOffers) Update(_ context.Context, o entities.Offer) (entities.Offer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.offers[o.ID]; !ok {
		return entities.Offer{}, nil
	}
	r.s.offers[o.ID] = o
	return o, nil
}

func (r memOffers) List(_ context.Context, filter interfaces.OfferFilter) ([]entities.Offer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []entities.Offer
	for _, o := range r.s.offers {
		if filter.CustomerID != 0 && o.CustomerID != filter.CustomerID {
			continue
		}
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

// policies

type memPolicies struct{ s *memStore }

func (r memPolicies) Create(_ context.Context, p entities.Policy) (entities.Policy, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.duplicateNumbers[p.PolicyNumber] {
		return entities.Policy{}, interfaces.ErrDuplicateKey
	}
	for _, existing := range r.s.policies {
		if existing.OfferID == p.OfferID || existing.PolicyNumber == p.PolicyNumber {
			return entities.Policy{}, interfaces.ErrDuplicateKey
		}
	}
	p.ID = r.s.id()
	r.s.policies[p.ID] = p
	return p, nil
}

func (r memPolicies) GetByID(_ context.Context, id uint) (entities.Policy, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.policies[id], nil
}

func (r memPolicies) GetByOfferID(_ context.Context, offerID uint) (entities.Policy, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.policies {
		if p.OfferID == offerID {
			return p, nil
		}
	}
	return entities.Policy{}, nil
}

func (r memPolicies) List(_ context.Context, filter interfaces.PolicyFilter) ([]entities.Policy, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []entities.Policy
	for _, p := range r.s.policies {
		if filter.CustomerID != 0 && r.s.offers[p.OfferID].CustomerID != filter.CustomerID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r memPolicies) DeleteCascade(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for pid, p := range r.s.payments {
		if p.PolicyID == id {
			delete(r.s.payments, pid)
		}
	}
	delete(r.s.policies, id)
	return nil
}

// payments

type memPayments struct{ s *memStore }

func (r memPayments) Create(_ context.Context, p entities.Payment) (entities.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failPaymentCreate; err != nil {
		r.s.failPaymentCreate = nil
		return entities.Payment{}, err
	}
	p.ID = r.s.id()
	r.s.payments[p.ID] = p
	return p, nil
}

func (r memPayments) GetByID(_ context.Context, id uint) (entities.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.payments[id], nil
}

func (r memPayments) ListByPolicyID(_ context.Context, policyID uint) ([]entities.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []entities.Payment
	for _, p := range r.s.payments {
		if p.PolicyID == policyID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r memPayments) UpdateStatus(_ context.Context, id uint, status entities.PaymentStatus, notes string) (entities.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.payments[id]
	if !ok {
		return entities.Payment{}, nil
	}
	p.Status, p.Notes = status, notes
	r.s.payments[id] = p
	return p, nil
}

// parties and catalog

type memCustomers struct{ s *memStore }

func (r memCustomers) Create(_ context.Context, c entities.Customer) (entities.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c.ID == 0 {
		c.ID = r.s.id()
	}
	r.s.customers[c.ID] = c
	return c, nil
}

func (r memCustomers) GetByID(_ context.Context, id uint) (entities.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.customers[id], nil
}

func (r memCustomers) GetByUserID(_ context.Context, userID uint) (entities.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.customers {
		if c.UserID == userID {
			return c, nil
		}
	}
	return entities.Customer{}, nil
}

type memInsuranceTypes struct{ s *memStore }

func (r memInsuranceTypes) Create(_ context.Context, t entities.InsuranceType) (entities.InsuranceType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if t.ID == 0 {
		t.ID = r.s.id()
	}
	r.s.insuranceTypes[t.ID] = t
	return t, nil
}

func (r memInsuranceTypes) GetByID(_ context.Context, id uint) (entities.InsuranceType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.insuranceTypes[id], nil
}

func (r memInsuranceTypes) GetByName(_ context.Context, name string) (entities.InsuranceType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.insuranceTypes {
		if t.Name == name {
			return t, nil
		}
	}
	return entities.InsuranceType{}, nil
}

func (r memInsuranceTypes) List(_ context.Context) ([]entities.InsuranceType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []entities.InsuranceType
	for _, t := range r.s.insuranceTypes {
		out = append(out, t)
	}
	return out, nil
}

type memCoverages struct{ s *memStore }

func (r memCoverages) Create(_ context.Context, c entities.Coverage) (entities.Coverage, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c.ID == 0 {
		c.ID = r.s.id()
	}
	r.s.coverages[c.ID] = c
	return c, nil
}

func (r memCoverages) GetByID(_ context.Context, id uint) (entities.Coverage, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.coverages[id], nil
}

func (r memCoverages) ListByInsuranceTypeID(_ context.Context, insuranceTypeID uint) ([]entities.Coverage, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []entities.Coverage
	for _, c := range r.s.coverages {
		if c.InsuranceTypeID == insuranceTypeID {
			out = append(out, c)
		}
	}
	return out, nil
}

// recordingPublisher collects published event types.
type recordingPublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *recordingPublisher) Publish(_ context.Context, eventType, _ string, _ any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, eventType)
	return nil
}

func (p *recordingPublisher) count(eventType string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, e := range p.events {
		if e == eventType {
			n++
		}
	}
	return n
}

// approvingGateway approves every charge. delay holds each charge, which
// widens the window for concurrent callers.
type approvingGateway struct {
	mu      sync.Mutex
	delay   time.Duration
	calls   int
	refunds []string
}

func (g *approvingGateway) Charge(_ context.Context, req interfaces.ChargeRequest) (interfaces.ChargeResult, error) {
	if g.delay > 0 {
		time.Sleep(g.delay)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	return interfaces.ChargeResult{ProviderPaymentID: "mp-1", ProviderStatus: "approved", Approved: true, ProviderResponse: []byte(`{"status":"approved"}`)}, nil
}

func (g *approvingGateway) Refund(_ context.Context, providerPaymentID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.refunds = append(g.refunds, providerPaymentID)
	return nil
}

func (g *approvingGateway) charges() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}
