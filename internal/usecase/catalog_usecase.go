package usecase

import (
	"context"
	"strings"

	"lotes_backoffice/internal/domain/entities"
)

// ICatalogUseCase is the read-only catalog used by the back-office filters.
type ICatalogUseCase interface {
	Roles(ctx context.Context) ([]entities.Role, error)
	Projects(ctx context.Context) ([]entities.Project, error)
	Stages(ctx context.Context, projectID string) ([]entities.Stage, error)
	Blocks(ctx context.Context, stageID string) ([]entities.Block, error)
	Lots(ctx context.Context, projectID, blockID string) ([]entities.Lot, error)
	Leads(ctx context.Context, params entities.ListParams) (entities.Page[entities.Lead], error)
}

type CatalogUseCase struct {
	queries *Queries
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(queries *Queries) *CatalogUseCase {
	return &CatalogUseCase{queries: queries}
}

func (u *CatalogUseCase) Roles(ctx context.Context) ([]entities.Role, error) {
	return u.queries.Roles(ctx)
}

func (u *CatalogUseCase) Projects(ctx context.Context) ([]entities.Project, error) {
	return u.queries.Projects(ctx)
}

func (u *CatalogUseCase) Stages(ctx context.Context, projectID string) ([]entities.Stage, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return []entities.Stage{}, nil
	}
	return u.queries.Stages(ctx, projectID)
}

func (u *CatalogUseCase) Blocks(ctx context.Context, stageID string) ([]entities.Block, error) {
	stageID = strings.TrimSpace(stageID)
	if stageID == "" {
		return []entities.Block{}, nil
	}
	return u.queries.Blocks(ctx, stageID)
}

// Lots lists the lots of one block; without a block there is nothing to list.
func (u *CatalogUseCase) Lots(ctx context.Context, projectID, blockID string) ([]entities.Lot, error) {
	projectID = strings.TrimSpace(projectID)
	blockID = strings.TrimSpace(blockID)
	if projectID == "" || blockID == "" {
		return []entities.Lot{}, nil
	}
	return u.queries.Lots(ctx, projectID, blockID)
}

func (u *CatalogUseCase) Leads(ctx context.Context, params entities.ListParams) (entities.Page[entities.Lead], error) {
	return u.queries.Leads(ctx, params)
}
