package request

import (
	"errors"
	"testing"
	"time"

	"lotes_backoffice/internal/domain/entities"
)

func TestFinancingRequest_ToInput(t *testing.T) {
	in, err := FinancingRequest{
		SaleType:         entities.SaleTypeFinanced,
		InitialAmount:    5000,
		InterestRate:     12,
		LotInstallments:  24,
		FirstPaymentDate: " 2026-04-10 ",
	}.ToInput()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !in.FirstPaymentDate.Equal(time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)) || in.LotInstallments != 24 || in.InterestRate != 12 {
		t.Fatalf("unexpected input: %+v", in)
	}

	in, err = FinancingRequest{}.ToInput()
	if err != nil || !in.FirstPaymentDate.IsZero() {
		t.Fatalf("expected empty date left for the usecase, got %v %+v", err, in)
	}

	if _, err := (FinancingRequest{FirstPaymentDate: "10/04/2026"}).ToInput(); !errors.Is(err, ErrInvalidFirstPaymentDate) {
		t.Fatalf("expected ErrInvalidFirstPaymentDate, got %v", err)
	}
}

func TestClientInfoRequest_ToInput(t *testing.T) {
	addr := "Jr. Lima 100"
	in := ClientInfoRequest{Address: &addr, SecondaryClients: []entities.SecondaryClient{{FirstName: "Luis"}}}.ToInput()
	if in.Address != &addr || len(in.SecondaryClients) != 1 || in.Guarantor != nil {
		t.Fatalf("unexpected input: %+v", in)
	}
}

func TestListQuery_ToParams(t *testing.T) {
	active := false
	p := ListQuery{Page: 3, Limit: 25, Order: "asc", Search: "  ana ", IsActive: &active, StartDate: "2026-01-01", EndDate: "bad"}.ToParams()
	if p.Page != 3 || p.Limit != 25 || p.Order != entities.OrderASC || p.Search != "ana" {
		t.Fatalf("unexpected params: %+v", p)
	}
	if p.IsActive == nil || *p.IsActive || p.From == nil || p.To != nil {
		t.Fatalf("unexpected filters: %+v", p)
	}

	d := ListQuery{}.ToParams()
	if d.Page != entities.DefaultPage || d.Limit != entities.DefaultLimit || d.Order != entities.OrderDESC {
		t.Fatalf("unexpected defaults: %+v", d)
	}
}
