package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts the online payment provider (Mercado Pago).
//
// It charges an installment and hands back the raw provider response, which is
// kept as payment metadata at the backend.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
	// MockMode reports whether charges are approved locally without the provider.
	MockMode() bool
}
