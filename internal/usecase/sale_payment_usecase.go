package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"lotes_backoffice/internal/domain/entities"
	"lotes_backoffice/internal/infrastructure/logger"
	"lotes_backoffice/internal/usecase/interfaces"
)

var (
	ErrPaymentNotFound                = errors.New("payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment_id")
	ErrPaymentNotPending              = errors.New("payment is not pending")
	ErrPaymentCurrencyNotSupported    = errors.New("online payments only accept PEN")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// ISalePaymentUseCase serves the payment views of a sale and online charges
// of pending installments.
type ISalePaymentUseCase interface {
	Payments(ctx context.Context, saleID string, dir SortDirection) ([]entities.Payment, error)
	Summary(ctx context.Context, saleID string) (PaymentSummary, error)
	PayOnline(ctx context.Context, saleID, paymentID string, mpPayload json.RawMessage) (entities.Payment, error)
}

type SalePaymentUseCase struct {
	api     interfaces.ISalesAPI
	queries *Queries
	gateway interfaces.IPaymentGateway
}

var _ ISalePaymentUseCase = (*SalePaymentUseCase)(nil)

func NewSalePaymentUseCase(api interfaces.ISalesAPI, queries *Queries, gateway interfaces.IPaymentGateway) *SalePaymentUseCase {
	return &SalePaymentUseCase{api: api, queries: queries, gateway: gateway}
}

func (u *SalePaymentUseCase) Payments(ctx context.Context, saleID string, dir SortDirection) ([]entities.Payment, error) {
	payments, err := u.load(ctx, saleID)
	if err != nil {
		return nil, err
	}
	return SortPayments(payments, dir), nil
}

func (u *SalePaymentUseCase) Summary(ctx context.Context, saleID string) (PaymentSummary, error) {
	payments, err := u.load(ctx, saleID)
	if err != nil {
		return PaymentSummary{}, err
	}
	return SummarizePayments(payments)
}

func (u *SalePaymentUseCase) load(ctx context.Context, saleID string) ([]entities.Payment, error) {
	saleID = strings.TrimSpace(saleID)
	if saleID == "" {
		return nil, ErrInvalidSaleID
	}
	payments, err := u.queries.SalePayments(ctx, saleID)
	if errors.Is(err, interfaces.ErrNotFound) {
		return nil, ErrSaleNotFound
	}
	return payments, err
}

// PayOnline charges a pending payment through the gateway and stores the
// provider response as the payment's metadata at the backend.
//
// The amount always comes from the backend payment, never from the payload.
func (u *SalePaymentUseCase) PayOnline(ctx context.Context, saleID, paymentID string, mpPayload json.RawMessage) (entities.Payment, error) {
	log := logger.For("payment.usecase")
	saleID = strings.TrimSpace(saleID)
	paymentID = strings.TrimSpace(paymentID)
	log.Info().Str("sale_id", saleID).Str("payment_id", paymentID).Int("payload_len", len(mpPayload)).Msg("pay-online start")
	mockMode := u.gateway != nil && u.gateway.MockMode()

	if saleID == "" {
		return entities.Payment{}, ErrInvalidSaleID
	}
	if paymentID == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Info().Str("payment_id", paymentID).Msg("invalid payload")
			return entities.Payment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		log.Error().Str("payment_id", paymentID).Msg("gateway not configured")
		return entities.Payment{}, ErrPaymentGatewayNotConfigured
	}

	// read through the backend, not the cache: the status must be current
	payments, err := u.api.SalePayments(ctx, saleID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return entities.Payment{}, ErrSaleNotFound
		}
		log.Error().Err(err).Str("sale_id", saleID).Msg("failed loading payments")
		return entities.Payment{}, err
	}
	p, ok := findPayment(payments, paymentID)
	if !ok {
		return entities.Payment{}, ErrPaymentNotFound
	}
	if p.Status != entities.PaymentStatusPending {
		log.Info().Str("payment_id", paymentID).Str("status", string(p.Status)).Msg("payment not pending")
		return entities.Payment{}, ErrPaymentNotPending
	}
	if p.Currency == entities.CurrencyUSD {
		return entities.Payment{}, ErrPaymentCurrencyNotSupported
	}

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		if !mockMode {
			return entities.Payment{}, ErrInvalidMPPayload
		}
		reqMap = map[string]any{}
	}
	if !mockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Info().Str("payment_id", paymentID).Msg("missing payment_method_id")
			return entities.Payment{}, ErrInvalidMPPayload
		}
		normalizeSandboxPayerFromUserID(reqMap)
		ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Info().Str("payment_id", paymentID).Msg("missing or invalid payer")
			return entities.Payment{}, ErrInvalidMPPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = fmt.Sprintf("%s:%s", saleID, paymentID)
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Venta %s - %s", saleID, p.ConfigLabel())
	}
	reqMap["transaction_amount"] = p.Amount.Float64()
	body, err := json.Marshal(reqMap)
	if err != nil {
		return entities.Payment{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, body)
	if err != nil {
		log.Error().Err(err).Str("payment_id", paymentID).Msg("payment gateway failed")
		return entities.Payment{}, classifyGatewayError(err)
	}
	log.Info().Str("payment_id", paymentID).Str("provider_payment_id", providerPaymentID).Str("provider_status", providerStatus).Msg("payment gateway success")

	var parsed map[string]any
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warn().Err(err).Str("payment_id", paymentID).Msg("provider response unmarshal failed")
	}
	metadata := map[string]any{
		"provider":          "mercadopago",
		"providerPaymentId": providerPaymentID,
		"providerStatus":    providerStatus,
		"providerResponse":  parsed,
	}

	updated, err := u.api.RegisterOnlinePayment(ctx, saleID, paymentID, metadata)
	if err != nil {
		// the charge went through; the provider id in the log is the reconciliation key
		log.Error().Err(err).Str("payment_id", paymentID).Str("provider_payment_id", providerPaymentID).Msg("register online payment failed")
		return entities.Payment{}, err
	}
	u.queries.Invalidate(ctx, keySale(saleID))
	log.Info().Str("payment_id", paymentID).Str("status", string(updated.Status)).Msg("pay-online success")
	return updated, nil
}

func findPayment(payments []entities.Payment, id string) (entities.Payment, bool) {
	for _, p := range payments {
		if p.ID == id {
			return p, true
		}
	}
	return entities.Payment{}, false
}

func classifyGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func ensurePayerDefaults(m map[string]any) {
	if m["payer"] == nil {
		m["payer"] = map[string]any{}
	}
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// sandbox accepts either payer.id or payer.email
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
			payer["email"] = email
		} else if isSandboxToken() {
			payer["email"] = "test_user_pe@testuser.com"
		}
	}
}

func normalizeSandboxPayerFromUserID(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") || !isSandboxToken() {
		return
	}
	configuredUserID := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID"))
	configuredEmail := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"))
	if configuredUserID == "" || configuredEmail == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != configuredUserID {
		return
	}
	payer["email"] = configuredEmail
	delete(payer, "id")
	logger.For("payment.usecase").Debug().Msg("mapped sandbox payer user_id to payer.email")
}

func isSandboxToken() bool {
	return strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-")
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
