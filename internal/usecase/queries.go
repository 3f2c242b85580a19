package usecase

import (
	"context"
	"time"

	"lotes_backoffice/internal/domain/entities"
	"lotes_backoffice/internal/infrastructure/cache"
	"lotes_backoffice/internal/usecase/interfaces"
)

// Cache keys. Child keys embed their parent id, so a parent change always
// reads a different entry. Only the public catalog (projects, stages, blocks,
// roles) is shared between users; everything else goes through fetchForCaller.
var (
	keyProjects = cache.Key{"projects", "actives"}
	keyRoles    = cache.Key{"roles"}
	keySales    = cache.Key{"sales"}
)

func keyStages(projectID string) cache.Key { return cache.Key{"stages", projectID} }
func keyBlocks(stageID string) cache.Key   { return cache.Key{"blocks", stageID} }
func keyLots(projectID string) cache.Key   { return cache.Key{"lots", projectID} }
func keySale(saleID string) cache.Key      { return cache.Key{"sales", saleID} }
func keySalePayments(saleID string) cache.Key {
	return cache.Key{"sales", saleID, "payments"}
}

// userScope marks the key parts that identify the caller. It sits at the end of
// a key so prefix invalidation of a resource reaches every user's entry.
const userScope = "@user"

// lotsPageSize covers any realistic block; lots are listed per block without paging.
const lotsPageSize = 100

// Queries is the cached read side over the backend.
type Queries struct {
	api   interfaces.ISalesAPI
	cache *cache.QueryCache
}

func NewQueries(api interfaces.ISalesAPI, c *cache.QueryCache) *Queries {
	return &Queries{api: api, cache: c}
}

// fetchForCaller caches per user. Without a caller there is nobody to scope
// the entry to, so the read goes straight to the backend.
func fetchForCaller[T any](ctx context.Context, q *Queries, key cache.Key, staleTime time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	userID := UserIDFrom(ctx)
	if userID == "" {
		return fn(ctx)
	}
	scoped := make(cache.Key, 0, len(key)+2)
	scoped = append(scoped, key...)
	scoped = append(scoped, userScope, userID)
	return cache.Fetch(ctx, q.cache, scoped, staleTime, fn)
}

func (q *Queries) Invalidate(ctx context.Context, keys ...cache.Key) {
	q.cache.Invalidate(ctx, keys...)
}

func (q *Queries) Roles(ctx context.Context) ([]entities.Role, error) {
	return cache.Fetch(ctx, q.cache, keyRoles, cache.StaleRoles, q.api.Roles)
}

func (q *Queries) Projects(ctx context.Context) ([]entities.Project, error) {
	return cache.Fetch(ctx, q.cache, keyProjects, cache.StaleCatalog, q.api.ActiveProjects)
}

func (q *Queries) Stages(ctx context.Context, projectID string) ([]entities.Stage, error) {
	return cache.Fetch(ctx, q.cache, keyStages(projectID), cache.StaleCatalog, func(ctx context.Context) ([]entities.Stage, error) {
		return q.api.Stages(ctx, projectID)
	})
}

func (q *Queries) Blocks(ctx context.Context, stageID string) ([]entities.Block, error) {
	return cache.Fetch(ctx, q.cache, keyBlocks(stageID), cache.StaleCatalog, func(ctx context.Context) ([]entities.Block, error) {
		return q.api.Blocks(ctx, stageID)
	})
}

func (q *Queries) Lots(ctx context.Context, projectID, blockID string) ([]entities.Lot, error) {
	key := append(keyLots(projectID), blockID)
	return fetchForCaller(ctx, q, key, cache.StaleList, func(ctx context.Context) ([]entities.Lot, error) {
		page, err := q.api.Lots(ctx, projectID, blockID, entities.ListParams{Page: 1, Limit: lotsPageSize, Order: entities.OrderASC})
		if err != nil {
			return nil, err
		}
		return page.Items, nil
	})
}

func (q *Queries) Leads(ctx context.Context, params entities.ListParams) (entities.Page[entities.Lead], error) {
	params = params.Normalize()
	key := cache.Key{"leads", params.CacheKey()}
	return fetchForCaller(ctx, q, key, cache.StaleList, func(ctx context.Context) (entities.Page[entities.Lead], error) {
		return q.api.Leads(ctx, params)
	})
}

func (q *Queries) Lead(ctx context.Context, leadID string) (entities.Lead, error) {
	return fetchForCaller(ctx, q, cache.Key{"leads", "by-id", leadID}, cache.StaleList, func(ctx context.Context) (entities.Lead, error) {
		return q.api.Lead(ctx, leadID)
	})
}

func (q *Queries) ClientByDocument(ctx context.Context, document string) (*entities.Client, error) {
	return fetchForCaller(ctx, q, cache.Key{"clients", "document", document}, cache.StaleCatalog, func(ctx context.Context) (*entities.Client, error) {
		return q.api.ClientByDocument(ctx, document)
	})
}

func (q *Queries) ActiveParticipants(ctx context.Context, t entities.ParticipantType) ([]entities.Participant, error) {
	key := cache.Key{"participants", "actives", string(t)}
	return fetchForCaller(ctx, q, key, cache.StaleCatalog, func(ctx context.Context) ([]entities.Participant, error) {
		return q.api.ActiveParticipants(ctx, t)
	})
}

func (q *Queries) Sale(ctx context.Context, saleID string) (entities.Sale, error) {
	return fetchForCaller(ctx, q, keySale(saleID), cache.StaleList, func(ctx context.Context) (entities.Sale, error) {
		return q.api.Sale(ctx, saleID)
	})
}

func (q *Queries) SalePayments(ctx context.Context, saleID string) ([]entities.Payment, error) {
	return fetchForCaller(ctx, q, keySalePayments(saleID), cache.StaleList, func(ctx context.Context) ([]entities.Payment, error) {
		return q.api.SalePayments(ctx, saleID)
	})
}
