package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockModeEnabled(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")
	if MockModeEnabled() {
		t.Fatal("expected mock mode off")
	}
	t.Setenv("MERCADOPAGO_MOCK", " Yes ")
	if !MockModeEnabled() {
		t.Fatal("expected mock mode on")
	}
}

func TestNewMercadoPagoGateway_MissingToken(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")
	if _, err := NewMercadoPagoGateway(" "); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	if _, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`)); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}

func TestMercadoPagoGateway_MockApprovesAndEchoes(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
	g, err := NewMercadoPagoGateway("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"external_reference":"u1","transaction_amount":9.99}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" || status != "approved" {
		t.Fatalf("unexpected id=%q status=%q", id, status)
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if body["external_reference"] != "u1" || body["status_detail"] != "accredited" || body["id"] != id {
		t.Fatalf("unexpected response: %v", body)
	}
}
