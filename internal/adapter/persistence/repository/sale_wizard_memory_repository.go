package repository

import (
	"context"
	"sync"
	"time"

	"lotes_backoffice/internal/domain/entities"
	"lotes_backoffice/internal/usecase/interfaces"
)

// SaleWizardMemoryRepository keeps wizards in process memory, encoded the same
// way the DynamoDB repository stores them. Used with WIZARD_STORE=memory and in tests.
type SaleWizardMemoryRepository struct {
	mu    sync.Mutex
	items map[string]saleWizardItem
	now   func() time.Time
}

var _ interfaces.ISaleWizardRepository = (*SaleWizardMemoryRepository)(nil)

func NewSaleWizardMemoryRepository() *SaleWizardMemoryRepository {
	return &SaleWizardMemoryRepository{items: map[string]saleWizardItem{}, now: time.Now}
}

func (r *SaleWizardMemoryRepository) Save(_ context.Context, w entities.SaleWizard) (entities.SaleWizard, error) {
	it, err := toSaleWizardItem(w)
	if err != nil {
		return entities.SaleWizard{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweep()
	r.items[w.ID] = it
	return fromSaleWizardItem(it)
}

func (r *SaleWizardMemoryRepository) GetByID(_ context.Context, id string) (entities.SaleWizard, error) {
	r.mu.Lock()
	it, ok := r.items[id]
	r.mu.Unlock()
	if !ok {
		return entities.SaleWizard{}, nil
	}
	return fromSaleWizardItem(it)
}

func (r *SaleWizardMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *SaleWizardMemoryRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// sweep drops expired items, like DynamoDB TTL would. Caller holds mu.
func (r *SaleWizardMemoryRepository) sweep() {
	now := r.now().Unix()
	for id, it := range r.items {
		if it.ExpiresAt > 0 && it.ExpiresAt < now {
			delete(r.items, id)
		}
	}
}
