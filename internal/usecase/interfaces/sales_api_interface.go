package interfaces

import (
	"context"

	"lotes_backoffice/internal/domain/entities"
)

// ISalesAPI abstracts the external sales backend.
//
// Every list method returns already-normalized data: whatever envelope the
// backend used is resolved by the implementation.
type ISalesAPI interface {
	Login(ctx context.Context, email, password string) (entities.AuthTokens, error)
	Roles(ctx context.Context) ([]entities.Role, error)

	ActiveProjects(ctx context.Context) ([]entities.Project, error)
	Stages(ctx context.Context, projectID string) ([]entities.Stage, error)
	Blocks(ctx context.Context, stageID string) ([]entities.Block, error)
	Lots(ctx context.Context, projectID, blockID string, params entities.ListParams) (entities.Page[entities.Lot], error)

	Leads(ctx context.Context, params entities.ListParams) (entities.Page[entities.Lead], error)
	Lead(ctx context.Context, id string) (entities.Lead, error)
	ClientByDocument(ctx context.Context, document string) (*entities.Client, error)

	ActiveParticipants(ctx context.Context, t entities.ParticipantType) ([]entities.Participant, error)

	Sale(ctx context.Context, saleID string) (entities.Sale, error)
	CreateSale(ctx context.Context, req entities.CreateSaleRequest) (entities.Sale, error)
	AssignParticipant(ctx context.Context, saleID, field, participantID string) error

	SalePayments(ctx context.Context, saleID string) ([]entities.Payment, error)
	RegisterOnlinePayment(ctx context.Context, saleID, paymentID string, metadata map[string]any) (entities.Payment, error)
}
