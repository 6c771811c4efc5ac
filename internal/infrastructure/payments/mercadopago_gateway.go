package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/refund"

	"insurance_xpto/internal/usecase/interfaces"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MockDeclinedCardToken makes the mock gateway answer with a rejection.
const MockDeclinedCardToken = "mock-declined"

const statusApproved = "approved"

type paymentCreator interface {
	Create(ctx context.Context, request payment.Request) (*payment.Response, error)
}

type refundCreator interface {
	Create(ctx context.Context, paymentID int) (*refund.Response, error)
}

type MercadoPagoGateway struct {
	client   paymentCreator
	refunds  refundCreator
	mockMode bool
	now      func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return NewMockGateway(), nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), refunds: refund.NewClient(cfg), now: utcNow}, nil
}

// NewMockGateway approves every charge except MockDeclinedCardToken.
func NewMockGateway() *MercadoPagoGateway {
	return &MercadoPagoGateway{mockMode: true, now: utcNow}
}

// Charge collects a card payment for a policy issuance.
func (g *MercadoPagoGateway) Charge(ctx context.Context, req interfaces.ChargeRequest) (interfaces.ChargeResult, error) {
	if g != nil && g.mockMode {
		return g.mockCharge(req)
	}
	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.ChargeResult{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] charge start reference=%s amount=%.2f method=%s", req.ExternalReference, req.Amount, req.Method)

	sdkReq := payment.Request{
		TransactionAmount: req.Amount,
		Token:             req.CardToken,
		Description:       req.Description,
		ExternalReference: req.ExternalReference,
		Installments:      1,
	}
	if req.PayerEmail != "" {
		sdkReq.Payer = &payment.PayerRequest{Email: req.PayerEmail}
	}

	resp, err := g.client.Create(ctx, sdkReq)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed reference=%s err=%v", req.ExternalReference, err)
		return interfaces.ChargeResult{}, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
		return interfaces.ChargeResult{}, err
	}
	log.Printf("[payment][gateway] charge done provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return interfaces.ChargeResult{
		ProviderPaymentID: fmt.Sprintf("%d", resp.ID),
		ProviderStatus:    resp.Status,
		Approved:          resp.Status == statusApproved,
		ProviderResponse:  b,
	}, nil
}

// Refund returns a captured payment in full.
func (g *MercadoPagoGateway) Refund(ctx context.Context, providerPaymentID string) error {
	if g != nil && g.mockMode {
		log.Printf("[payment][gateway] mock refund provider_payment_id=%s", providerPaymentID)
		return nil
	}
	if g == nil || g.refunds == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(providerPaymentID)
	if err != nil {
		return fmt.Errorf("invalid provider payment id %q: %w", providerPaymentID, err)
	}
	resp, err := g.refunds.Create(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] sdk refund failed provider_payment_id=%d err=%v", id, err)
		return err
	}
	log.Printf("[payment][gateway] refund done provider_payment_id=%d refund_id=%d status=%s", id, resp.ID, resp.Status)
	return nil
}

func (g *MercadoPagoGateway) mockCharge(req interfaces.ChargeRequest) (interfaces.ChargeResult, error) {
	log.Printf("[payment][gateway] mock charge start reference=%s amount=%.2f", req.ExternalReference, req.Amount)

	now := g.now()
	id := strconv.FormatInt(now.UnixNano(), 10)
	status, detail := statusApproved, "accredited"
	if req.CardToken == MockDeclinedCardToken {
		status, detail = "rejected", "cc_rejected_insufficient_amount"
	}

	resp := map[string]any{
		"id":                 id,
		"status":             status,
		"status_detail":      detail,
		"transaction_amount": req.Amount,
		"external_reference": req.ExternalReference,
		"description":        req.Description,
		"date_created":       now.Format(time.RFC3339Nano),
	}
	if status == statusApproved {
		resp["date_approved"] = now.Format(time.RFC3339Nano)
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] mock response marshal failed err=%v", err)
		return interfaces.ChargeResult{}, err
	}

	log.Printf("[payment][gateway] mock charge done provider_payment_id=%s provider_status=%s", id, status)
	return interfaces.ChargeResult{
		ProviderPaymentID: id,
		ProviderStatus:    status,
		Approved:          status == statusApproved,
		ProviderResponse:  b,
	}, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func utcNow() time.Time { return time.Now().UTC() }
