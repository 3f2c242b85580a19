package usecase

import (
	"errors"
	"testing"

	"lotes_backoffice/internal/domain/entities"
)

func payment(id, label string, amount float64, status entities.PaymentStatus, ticket *string) entities.Payment {
	return entities.Payment{
		ID:            id,
		PaymentConfig: entities.PaymentConfig{Name: label},
		Amount:        entities.Decimal(amount),
		Currency:      entities.CurrencyPEN,
		Status:        status,
		TicketNumber:  ticket,
	}
}

func TestSummarizePayments(t *testing.T) {
	t.Run("groups in first seen order and skips cancelled totals", func(t *testing.T) {
		payments := []entities.Payment{
			payment("1", "Cuota", 1000, entities.PaymentStatusApproved, nil),
			payment("2", "Separación", 500, entities.PaymentStatusPending, nil),
			payment("3", "Cuota", 250.5, entities.PaymentStatusCancelled, nil),
			payment("4", "", 100, entities.PaymentStatusCompleted, nil),
			payment("5", "Cuota", 1000.25, entities.PaymentStatusRejected, nil),
		}
		s, err := SummarizePayments(payments)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(s.Groups) != 3 {
			t.Fatalf("expected 3 groups, got %+v", s.Groups)
		}
		if s.Groups[0].Label != "Cuota" || s.Groups[1].Label != "Separación" || s.Groups[2].Label != "Sin configuración" {
			t.Fatalf("unexpected order: %+v", s.Groups)
		}
		if s.Groups[0].Count != 3 || s.Groups[0].Total != 2000.25 {
			t.Fatalf("unexpected cuota group: %+v", s.Groups[0])
		}
		if s.Total != 2600.25 || s.FormattedTotal != "S/ 2,600.25" {
			t.Fatalf("unexpected total: %v %q", s.Total, s.FormattedTotal)
		}
	})

	t.Run("empty defaults to soles", func(t *testing.T) {
		s, err := SummarizePayments(nil)
		if err != nil || s.Currency != entities.CurrencyPEN || len(s.Groups) != 0 || s.FormattedTotal != "S/ 0.00" {
			t.Fatalf("unexpected summary: %+v", s)
		}
	})

	t.Run("dollar sales", func(t *testing.T) {
		p := payment("1", "Cuota", 1234.5, entities.PaymentStatusApproved, nil)
		p.Currency = entities.CurrencyUSD
		s, err := SummarizePayments([]entities.Payment{p})
		if err != nil || s.FormattedTotal != "$ 1,234.50" {
			t.Fatalf("unexpected formatted total %q %v", s.FormattedTotal, err)
		}
	})

	t.Run("payments without a currency take the sale's", func(t *testing.T) {
		first := payment("1", "Cuota", 100, entities.PaymentStatusPending, nil)
		first.Currency = ""
		second := payment("2", "Cuota", 50, entities.PaymentStatusPending, nil)
		second.Currency = entities.CurrencyUSD
		s, err := SummarizePayments([]entities.Payment{first, second})
		if err != nil || s.Currency != entities.CurrencyUSD || s.FormattedTotal != "$ 150.00" {
			t.Fatalf("unexpected summary %+v %v", s, err)
		}
	})

	t.Run("mixed currencies are rejected", func(t *testing.T) {
		soles := payment("1", "Cuota", 100, entities.PaymentStatusApproved, nil)
		dollars := payment("2", "Cuota", 100, entities.PaymentStatusApproved, nil)
		dollars.Currency = entities.CurrencyUSD
		if _, err := SummarizePayments([]entities.Payment{soles, dollars}); !errors.Is(err, ErrMixedCurrencies) {
			t.Fatalf("expected ErrMixedCurrencies, got %v", err)
		}
	})
}

func TestSortDirection(t *testing.T) {
	if SortNone.Next() != SortAsc || SortAsc.Next() != SortDesc || SortDesc.Next() != SortNone {
		t.Fatalf("unexpected cycle")
	}
	if d, ok := ParseSortDirection(" DESC "); !ok || d != SortDesc {
		t.Fatalf("expected desc, got %q %v", d, ok)
	}
	if _, ok := ParseSortDirection("sideways"); ok {
		t.Fatalf("expected invalid direction")
	}
}

func TestCompareTicketNumbers(t *testing.T) {
	cases := []struct {
		a, b *string
		want int
	}{
		{strPtr("B001-9"), strPtr("B001-10"), -1},
		{strPtr("B001-10"), strPtr("B001-9"), 1},
		{strPtr("A001-50"), strPtr("B001-1"), -1},
		{strPtr("B001-7"), strPtr("B001-7"), 0},
		{strPtr("B001-x"), strPtr("B001-y"), -1},
		{nil, strPtr("B001-1"), 1},
		{strPtr("B001-1"), nil, -1},
		{nil, nil, 0},
	}
	for _, tc := range cases {
		if got := CompareTicketNumbers(tc.a, tc.b); got != tc.want {
			t.Fatalf("compare(%v, %v): expected %d, got %d", deref(tc.a), deref(tc.b), tc.want, got)
		}
	}
}

func deref(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}

func TestSortPayments(t *testing.T) {
	in := []entities.Payment{
		payment("a", "", 1, entities.PaymentStatusPending, strPtr("B001-10")),
		payment("b", "", 1, entities.PaymentStatusPending, nil),
		payment("c", "", 1, entities.PaymentStatusPending, strPtr("B001-9")),
		payment("d", "", 1, entities.PaymentStatusPending, strPtr("A002-1")),
	}
	ids := func(ps []entities.Payment) string {
		out := ""
		for _, p := range ps {
			out += p.ID
		}
		return out
	}

	if got := ids(SortPayments(in, SortNone)); got != "abcd" {
		t.Fatalf("none: expected abcd, got %s", got)
	}
	if got := ids(SortPayments(in, SortAsc)); got != "dcab" {
		t.Fatalf("asc: expected dcab, got %s", got)
	}
	if got := ids(SortPayments(in, SortDesc)); got != "acdb" {
		t.Fatalf("desc: expected acdb, got %s", got)
	}
	if ids(in) != "abcd" {
		t.Fatalf("input must not be reordered")
	}
}
