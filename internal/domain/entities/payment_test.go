package entities

import (
	"encoding/json"
	"testing"
)

func TestDecimal_UnmarshalJSON(t *testing.T) {
	cases := map[string]float64{
		`1500.5`:    1500.5,
		`"1500.00"`: 1500,
		`" 12.3 "`:  12.3,
		`""`:        0,
		`null`:      0,
	}
	for raw, want := range cases {
		var d Decimal
		if err := json.Unmarshal([]byte(raw), &d); err != nil {
			t.Fatalf("%s: unexpected err: %v", raw, err)
		}
		if d.Float64() != want {
			t.Fatalf("%s: expected %v, got %v", raw, want, d)
		}
	}
	var d Decimal
	if err := json.Unmarshal([]byte(`"abc"`), &d); err == nil {
		t.Fatalf("expected error for non numeric string")
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		amount   float64
		currency Currency
		want     string
	}{
		{1234.5, CurrencyPEN, "S/ 1,234.50"},
		{1234567.891, CurrencyUSD, "$ 1,234,567.89"},
		{0, "", "S/ 0.00"},
		{-20, CurrencyPEN, "-S/ 20.00"},
	}
	for _, tc := range cases {
		if got := FormatAmount(tc.amount, tc.currency); got != tc.want {
			t.Fatalf("FormatAmount(%v, %q): expected %q, got %q", tc.amount, tc.currency, tc.want, got)
		}
	}
}

func TestPayment_Labels(t *testing.T) {
	p := Payment{Status: PaymentStatusCancelled}
	if p.ConfigLabel() != "Sin configuración" || p.Counts() {
		t.Fatalf("unexpected payment helpers")
	}
	p = Payment{Status: PaymentStatusRejected, PaymentConfig: PaymentConfig{Name: "Cuota"}}
	if p.ConfigLabel() != "Cuota" || !p.Counts() {
		t.Fatalf("unexpected payment helpers")
	}
}

func TestListParams_Normalize(t *testing.T) {
	p := ListParams{Page: 0, Limit: 500, Order: "sideways"}.Normalize()
	if p.Page != DefaultPage || p.Limit != MaxLimit || p.Order != OrderDESC {
		t.Fatalf("unexpected params %+v", p)
	}
	active := true
	v := ListParams{Search: "ana", IsActive: &active}.Values()
	if v.Get("search") != "ana" || v.Get("isActive") != "true" || v.Get("limit") != "10" {
		t.Fatalf("unexpected values %v", v)
	}
}

func TestSaleWizard_CurrentStep(t *testing.T) {
	var w SaleWizard
	if w.CurrentStep() != StepLotSelection {
		t.Fatalf("expected lot step")
	}
	w.Step1.SelectedLot = &Lot{ID: "l1"}
	if w.CurrentStep() != StepSaleType {
		t.Fatalf("expected sale type step")
	}
	w.Financing = &FinancingData{SaleType: SaleTypeFinanced}
	if w.CurrentStep() != StepFinancing {
		t.Fatalf("expected financing step")
	}
	w.Financing.Schedule = []Installment{{Number: 1}}
	if w.CurrentStep() != StepClientInfo {
		t.Fatalf("expected client step")
	}
	w.Step4 = &Step4Data{}
	if w.CurrentStep() != StepSummary {
		t.Fatalf("expected summary step")
	}
}
