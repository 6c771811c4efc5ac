package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"insurance_xpto/internal/domain/entities"
	"insurance_xpto/internal/reporting"
	"insurance_xpto/internal/usecase/interfaces"
)

// DocumentRenderer turns read-only projections into text artifacts.
type DocumentRenderer interface {
	RenderPolicyDocument(doc reporting.PolicyDocument) ([]byte, error)
	RenderPaymentReceipt(receipt reporting.PaymentReceipt) ([]byte, error)
}

// RenderedDocument is a generated artifact ready to be served or archived.
type RenderedDocument struct {
	FileName    string
	ContentType string
	Body        []byte
}

type IDocumentUseCase interface {
	GeneratePolicyDocument(ctx context.Context, actor entities.Actor, policyID uint) (RenderedDocument, error)
	GeneratePaymentReceipt(ctx context.Context, actor entities.Actor, paymentID uint) (RenderedDocument, error)
	ArchivePolicyDocument(ctx context.Context, actor entities.Actor, policyID uint) (entities.Document, error)
	ArchivePaymentReceipt(ctx context.Context, actor entities.Actor, paymentID uint) (entities.Document, error)
	ListByPolicyID(ctx context.Context, actor entities.Actor, policyID uint) ([]entities.Document, error)
}

// DocumentDeps groups the read side the document projections are built from.
type DocumentDeps struct {
	Policies       interfaces.IPolicyRepository
	Offers         interfaces.IOfferRepository
	Payments       interfaces.IPaymentRepository
	Customers      interfaces.ICustomerRepository
	Agents         interfaces.IAgentRepository
	InsuranceTypes interfaces.IInsuranceTypeRepository
	Coverages      interfaces.ICoverageRepository
	Documents      interfaces.IDocumentRepository
}

type DocumentUseCase struct {
	DocumentDeps
	renderer DocumentRenderer
	storage  interfaces.IDocumentStorage
	now      func() time.Time
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

// NewDocumentUseCase wires the document flows. storage may be nil, in which
// case archiving is unavailable but rendering still works.
func NewDocumentUseCase(deps DocumentDeps, renderer DocumentRenderer, storage interfaces.IDocumentStorage) *DocumentUseCase {
	return &DocumentUseCase{DocumentDeps: deps, renderer: renderer, storage: storage, now: utcNow}
}

func (u *DocumentUseCase) GeneratePolicyDocument(ctx context.Context, actor entities.Actor, policyID uint) (RenderedDocument, error) {
	policy, offer, err := loadOwnedPolicy(ctx, u.Policies, u.Offers, actor, policyID)
	if err != nil {
		return RenderedDocument{}, err
	}
	doc, err := u.policyProjection(ctx, policy, offer)
	if err != nil {
		return RenderedDocument{}, err
	}
	body, err := u.renderer.RenderPolicyDocument(doc)
	if err != nil {
		return RenderedDocument{}, err
	}
	return RenderedDocument{
		FileName:    fmt.Sprintf("policy-%s.txt", policy.PolicyNumber),
		ContentType: reporting.ContentType,
		Body:        body,
	}, nil
}

func (u *DocumentUseCase) GeneratePaymentReceipt(ctx context.Context, actor entities.Actor, paymentID uint) (RenderedDocument, error) {
	_, body, err := u.renderReceipt(ctx, actor, paymentID)
	if err != nil {
		return RenderedDocument{}, err
	}
	return RenderedDocument{
		FileName:    fmt.Sprintf("receipt-%d.txt", paymentID),
		ContentType: reporting.ContentType,
		Body:        body,
	}, nil
}

// ArchivePolicyDocument renders the policy, uploads it and records a Document row.
func (u *DocumentUseCase) ArchivePolicyDocument(ctx context.Context, actor entities.Actor, policyID uint) (entities.Document, error) {
	if !actor.IsStaff() {
		return entities.Document{}, ErrForbidden
	}
	rendered, err := u.GeneratePolicyDocument(ctx, actor, policyID)
	if err != nil {
		return entities.Document{}, err
	}
	return u.archive(ctx, actor, policyID, nil, entities.DocumentKindPolicy, rendered)
}

func (u *DocumentUseCase) ArchivePaymentReceipt(ctx context.Context, actor entities.Actor, paymentID uint) (entities.Document, error) {
	if !actor.IsStaff() {
		return entities.Document{}, ErrForbidden
	}
	payment, body, err := u.renderReceipt(ctx, actor, paymentID)
	if err != nil {
		return entities.Document{}, err
	}
	rendered := RenderedDocument{
		FileName:    fmt.Sprintf("receipt-%d.txt", paymentID),
		ContentType: reporting.ContentType,
		Body:        body,
	}
	id := payment.ID
	return u.archive(ctx, actor, payment.PolicyID, &id, entities.DocumentKindReceipt, rendered)
}

func (u *DocumentUseCase) ListByPolicyID(ctx context.Context, actor entities.Actor, policyID uint) ([]entities.Document, error) {
	if _, _, err := loadOwnedPolicy(ctx, u.Policies, u.Offers, actor, policyID); err != nil {
		return nil, err
	}
	docs, err := u.Documents.ListByPolicyID(ctx, policyID)
	if err != nil {
		return nil, storageErr(err)
	}
	return docs, nil
}

func (u *DocumentUseCase) archive(ctx context.Context, actor entities.Actor, policyID uint, paymentID *uint, kind entities.DocumentKind, rendered RenderedDocument) (entities.Document, error) {
	if u.storage == nil {
		return entities.Document{}, ErrDocumentStorageNotConfigured
	}
	key := fmt.Sprintf("policies/%d/%s/%s-%s", policyID, kind, uuid.NewString(), rendered.FileName)
	if err := u.storage.Put(ctx, key, rendered.ContentType, rendered.Body); err != nil {
		log.Printf("[document][usecase] upload failed policy_id=%d key=%s err=%v", policyID, key, err)
		return entities.Document{}, storageErr(err)
	}

	sum := sha256.Sum256(rendered.Body)
	doc, err := u.Documents.Create(ctx, entities.Document{
		PolicyID:    policyID,
		PaymentID:   paymentID,
		Kind:        kind,
		FileName:    rendered.FileName,
		ContentType: rendered.ContentType,
		StorageKey:  key,
		SizeBytes:   int64(len(rendered.Body)),
		Checksum:    hex.EncodeToString(sum[:]),
		CreatedBy:   actor.UserID,
		CreatedAt:   u.now(),
	})
	if err != nil {
		return entities.Document{}, storageErr(err)
	}
	log.Printf("[document][usecase] archived document_id=%d policy_id=%d kind=%s key=%s", doc.ID, policyID, kind, key)
	return doc, nil
}

func (u *DocumentUseCase) renderReceipt(ctx context.Context, actor entities.Actor, paymentID uint) (entities.Payment, []byte, error) {
	if paymentID == 0 {
		return entities.Payment{}, nil, ErrPaymentNotFound
	}
	payment, err := u.Payments.GetByID(ctx, paymentID)
	if err != nil {
		return entities.Payment{}, nil, storageErr(err)
	}
	if payment.ID == 0 {
		return entities.Payment{}, nil, ErrPaymentNotFound
	}
	policy, offer, err := loadOwnedPolicy(ctx, u.Policies, u.Offers, actor, payment.PolicyID)
	if err != nil {
		return entities.Payment{}, nil, err
	}
	customer, err := u.Customers.GetByID(ctx, offer.CustomerID)
	if err != nil {
		return entities.Payment{}, nil, storageErr(err)
	}

	body, err := u.renderer.RenderPaymentReceipt(reporting.PaymentReceipt{
		PaymentID:     payment.ID,
		PolicyNumber:  policy.PolicyNumber,
		CustomerName:  customer.FullName(),
		Amount:        payment.Amount,
		Method:        string(payment.Method),
		Status:        string(payment.Status),
		TransactionID: payment.TransactionID,
		CardLast4:     payment.CardLast4,
		PaidAt:        payment.PaidAt,
		Notes:         payment.Notes,
	})
	if err != nil {
		return entities.Payment{}, nil, err
	}
	return payment, body, nil
}

func (u *DocumentUseCase) policyProjection(ctx context.Context, policy entities.Policy, offer entities.Offer) (reporting.PolicyDocument, error) {
	customer, err := u.Customers.GetByID(ctx, offer.CustomerID)
	if err != nil {
		return reporting.PolicyDocument{}, storageErr(err)
	}
	insuranceType, err := u.InsuranceTypes.GetByID(ctx, offer.InsuranceTypeID)
	if err != nil {
		return reporting.PolicyDocument{}, storageErr(err)
	}

	var agentName string
	if agentID, ok := offer.Agent.ID(); ok {
		agent, err := u.Agents.GetByID(ctx, agentID)
		if err != nil {
			return reporting.PolicyDocument{}, storageErr(err)
		}
		agentName = agent.FullName()
	}

	lines := make([]reporting.CoverageLine, 0, len(offer.SelectedCoverages))
	for _, sc := range offer.SelectedCoverages {
		c, err := u.Coverages.GetByID(ctx, sc.CoverageID)
		if err != nil {
			return reporting.PolicyDocument{}, storageErr(err)
		}
		lines = append(lines, reporting.CoverageLine{
			Name:    c.Name,
			Limit:   c.CoverageLimit,
			Premium: sc.Premium,
			Notes:   sc.Notes,
		})
	}

	return reporting.PolicyDocument{
		PolicyNumber:       policy.PolicyNumber,
		StartDate:          policy.StartDate,
		EndDate:            policy.EndDate,
		InsuranceType:      insuranceType.Name,
		CustomerName:       customer.FullName(),
		CustomerEmail:      customer.Email,
		CustomerPhone:      customer.Phone,
		CustomerAddress:    customer.Address,
		AgentName:          agentName,
		CoverageAmount:     offer.RequestedCoverageAmount,
		BasePrice:          offer.BasePrice,
		DiscountRate:       offer.DiscountRate,
		FinalPrice:         offer.FinalPrice,
		AdditionalInfo:     offer.CustomerAdditionalInfo,
		CustomerApprovedAt: offer.CustomerApprovedAt,
		IssuedAt:           policy.CreatedAt,
		Coverages:          lines,
	}, nil
}
