package repository

import (
	"context"
	"testing"
	"time"

	"lotes_backoffice/internal/domain/entities"
)

func sampleWizard(now time.Time) entities.SaleWizard {
	lot := entities.Lot{ID: "l1", TotalPrice: 50000, Status: entities.LotStatusActivo}
	return entities.SaleWizard{
		ID:        "wiz-1",
		UserID:    "user-1",
		Step1:     entities.Step1Data{ProjectID: "p1", StageID: "s1", BlockID: "b1", SelectedLot: &lot},
		Financing: &entities.FinancingData{SaleType: entities.SaleTypeDirectPayment},
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
}

func TestSaleWizardItem_RoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	w := sampleWizard(now)

	it, err := toSaleWizardItem(w)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if it.Step != int(entities.StepClientInfo) || it.ExpiresAt != now.Add(time.Hour).Unix() {
		t.Fatalf("unexpected item columns: %+v", it)
	}
	if it.CreatedAt != "2026-03-10T09:00:00Z" {
		t.Fatalf("unexpected created_at %q", it.CreatedAt)
	}

	got, err := fromSaleWizardItem(it)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ID != "wiz-1" || got.Step1.SelectedLot == nil || got.Step1.SelectedLot.ID != "l1" {
		t.Fatalf("unexpected wizard: %+v", got)
	}
	if got.CurrentStep() != entities.StepClientInfo {
		t.Fatalf("unexpected step %d", got.CurrentStep())
	}
}

func TestFromSaleWizardItem_ColumnsWin(t *testing.T) {
	got, err := fromSaleWizardItem(saleWizardItem{ID: "wiz-2", UserID: "user-2", State: `{"id":"stale","userId":"other"}`})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ID != "wiz-2" || got.UserID != "user-2" {
		t.Fatalf("expected columns to win, got %+v", got)
	}
	if _, err := fromSaleWizardItem(saleWizardItem{ID: "x", State: "{"}); err == nil {
		t.Fatalf("expected error for broken state")
	}
}

func TestSaleWizardMemoryRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	repo := NewSaleWizardMemoryRepository()
	repo.now = func() time.Time { return now }

	if _, err := repo.Save(ctx, sampleWizard(now)); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := repo.GetByID(ctx, "wiz-1")
	if err != nil || got.ID != "wiz-1" {
		t.Fatalf("unexpected %v %+v", err, got)
	}

	missing, err := repo.GetByID(ctx, "nope")
	if err != nil || missing.ID != "" {
		t.Fatalf("expected zero wizard, got %v %+v", err, missing)
	}

	// expired entries are swept on the next write
	now = now.Add(2 * time.Hour)
	other := sampleWizard(now)
	other.ID = "wiz-2"
	if _, err := repo.Save(ctx, other); err != nil {
		t.Fatalf("save: %v", err)
	}
	if repo.Len() != 1 {
		t.Fatalf("expected expired wizard swept, got %d", repo.Len())
	}

	if err := repo.Delete(ctx, "wiz-2"); err != nil || repo.Len() != 0 {
		t.Fatalf("unexpected delete result %v %d", err, repo.Len())
	}
}

func TestSessionMemoryStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	store := NewSessionMemoryStore()
	store.now = func() time.Time { return now }

	_ = store.Save(ctx, entities.AuthSession{ID: "old", ExpiresAt: now.Add(-time.Minute)})
	_ = store.Save(ctx, entities.AuthSession{ID: "s1", ExpiresAt: now.Add(time.Hour)})

	if _, ok, _ := store.Get(ctx, "old"); ok {
		t.Fatalf("expected expired session dropped")
	}
	s, ok, err := store.Get(ctx, "s1")
	if err != nil || !ok || s.ID != "s1" {
		t.Fatalf("unexpected %v %v %+v", err, ok, s)
	}
	_ = store.Delete(ctx, "s1")
	if _, ok, _ := store.Get(ctx, "s1"); ok {
		t.Fatalf("expected session deleted")
	}
}
