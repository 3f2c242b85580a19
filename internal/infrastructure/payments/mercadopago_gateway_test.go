package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestMercadoPagoGateway_MockMode(t *testing.T) {
	t.Setenv("MERCADOPAGO_MOCK", "")
	t.Setenv("PAYMENT_GATEWAY_MOCK", " TRUE ")

	g, err := NewMercadoPagoGateway("")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !g.MockMode() {
		t.Fatalf("expected mock mode")
	}
	fixed := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return fixed }

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":120.5,"external_reference":"sale-1:pay-1"}`))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if status != "approved" || id == "" {
		t.Fatalf("unexpected result: %s %s", id, status)
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("response is not json: %v", err)
	}
	if body["external_reference"] != "sale-1:pay-1" || body["status_detail"] != "accredited" {
		t.Fatalf("request fields not echoed: %v", body)
	}
	if body["date_approved"] != fixed.Format(time.RFC3339Nano) {
		t.Fatalf("unexpected date_approved: %v", body["date_approved"])
	}
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	if _, err := NewMercadoPagoGateway("  "); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}

	var g *MercadoPagoGateway
	if g.MockMode() {
		t.Fatalf("nil gateway reported mock mode")
	}
	if _, _, _, err := g.CreatePayment(context.Background(), nil); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}
