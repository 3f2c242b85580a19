package interfaces

import (
	"context"

	"lotes_backoffice/internal/domain/entities"
)

// ISaleWizardRepository keeps in-progress sale wizards between requests.
//
// GetByID returns a zero-value wizard (empty ID) when nothing is stored, the
// same convention the DynamoDB repositories follow.
type ISaleWizardRepository interface {
	Save(ctx context.Context, w entities.SaleWizard) (entities.SaleWizard, error)
	GetByID(ctx context.Context, id string) (entities.SaleWizard, error)
	Delete(ctx context.Context, id string) error
}
