package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"lotes_backoffice/internal/domain/entities"
	"lotes_backoffice/internal/infrastructure/logger"
	"lotes_backoffice/internal/usecase/interfaces"
	"lotes_backoffice/pkg/debounce"

	"github.com/google/uuid"
)

var (
	ErrWizardNotFound    = errors.New("sale wizard not found")
	ErrWizardExpired     = errors.New("sale wizard expired")
	ErrInvalidWizardID   = errors.New("invalid sale wizard id")
	ErrWizardStepLocked  = errors.New("previous wizard step is not complete")
	ErrWizardIncomplete  = errors.New("sale wizard is not complete")
	ErrLeadSearchTooLong = errors.New("lead search is too long")
)

const (
	DefaultWizardTTL   = 2 * time.Hour
	leadSearchPageSize = 10
	maxLeadSearchLen   = 100
	searchIdleTimeout  = 15 * time.Minute
)

// ISaleWizardUseCase drives the multi-step sale creation flow.
//
// Every operation loads the wizard, applies one step action and saves it back;
// nothing reaches the backend as a mutation until Submit.
type ISaleWizardUseCase interface {
	Start(ctx context.Context, userID string) (entities.SaleWizard, error)
	Get(ctx context.Context, id string) (entities.SaleWizard, error)
	Discard(ctx context.Context, id string) error

	LotOptions(ctx context.Context, id string) (LotOptions, error)
	ChangeProject(ctx context.Context, id, projectID string) (entities.SaleWizard, error)
	ChangeStage(ctx context.Context, id, stageID string) (entities.SaleWizard, error)
	ChangeBlock(ctx context.Context, id, blockID string) (entities.SaleWizard, error)
	SelectLot(ctx context.Context, id, lotID string) (entities.SaleWizard, error)

	SetSaleType(ctx context.Context, id string, t entities.SaleType) (entities.SaleWizard, error)
	ApplyFinancing(ctx context.Context, id string, in FinancingInput) (entities.SaleWizard, error)

	SelectLead(ctx context.Context, id, leadID string) (entities.SaleWizard, error)
	SetClientAddress(ctx context.Context, id, address string) (entities.SaleWizard, error)
	ToggleClientSections(ctx context.Context, id string, guarantor, secondaryClients *bool) (entities.SaleWizard, error)
	SubmitClientInfo(ctx context.Context, id string, in ClientInfoInput) (entities.SaleWizard, error)
	SearchLeads(ctx context.Context, id, input string, submit bool) (entities.SaleWizard, error)
	Leads(ctx context.Context, id string, params entities.ListParams) (entities.Page[entities.Lead], error)

	Submit(ctx context.Context, id string) (entities.Sale, error)
}

type leadSearch struct {
	debouncer *debounce.Debouncer
	ctx       context.Context
	touched   time.Time
}

type SaleWizardUseCase struct {
	repo    interfaces.ISaleWizardRepository
	api     interfaces.ISalesAPI
	queries *Queries
	ttl     time.Duration
	now     func() time.Time

	locks sync.Map

	searchMu     sync.Mutex
	searches     map[string]*leadSearch
	searchDelay  time.Duration
	debounceOpts []debounce.Option
}

var _ ISaleWizardUseCase = (*SaleWizardUseCase)(nil)

func NewSaleWizardUseCase(repo interfaces.ISaleWizardRepository, api interfaces.ISalesAPI, queries *Queries, ttl time.Duration) *SaleWizardUseCase {
	if ttl <= 0 {
		ttl = DefaultWizardTTL
	}
	return &SaleWizardUseCase{
		repo:        repo,
		api:         api,
		queries:     queries,
		ttl:         ttl,
		now:         func() time.Time { return time.Now().UTC() },
		searches:    map[string]*leadSearch{},
		searchDelay: debounce.DefaultDelay,
	}
}

func (u *SaleWizardUseCase) Start(ctx context.Context, userID string) (entities.SaleWizard, error) {
	now := u.now()
	w := entities.SaleWizard{
		ID:         uuid.NewString(),
		UserID:     strings.TrimSpace(userID),
		ClientForm: entities.ClientInfoDraft{SecondaryClients: []entities.SecondaryClient{}},
		CreatedAt:  now,
		UpdatedAt:  now,
		ExpiresAt:  now.Add(u.ttl),
	}
	saved, err := u.repo.Save(ctx, w)
	if err != nil {
		logger.For("wizard.usecase").Error().Err(err).Msg("start failed")
		return entities.SaleWizard{}, err
	}
	logger.For("wizard.usecase").Info().Str("wizard_id", w.ID).Str("user_id", w.UserID).Msg("wizard started")
	return saved, nil
}

func (u *SaleWizardUseCase) Get(ctx context.Context, id string) (entities.SaleWizard, error) {
	return u.load(ctx, id)
}

func (u *SaleWizardUseCase) Discard(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidWizardID
	}
	mu := u.lock(id)
	mu.Lock()
	defer mu.Unlock()

	w, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if w.ID != "" && !ownedByCaller(ctx, w) {
		return ErrWizardNotFound
	}

	u.stopSearch(id)
	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	u.locks.Delete(id)
	logger.For("wizard.usecase").Info().Str("wizard_id", id).Msg("wizard discarded")
	return nil
}

func (u *SaleWizardUseCase) LotOptions(ctx context.Context, id string) (LotOptions, error) {
	w, err := u.load(ctx, id)
	if err != nil {
		return LotOptions{}, err
	}
	return u.queries.LoadLotOptions(ctx, w.Step1), nil
}

func (u *SaleWizardUseCase) ChangeProject(ctx context.Context, id, projectID string) (entities.SaleWizard, error) {
	projectID = strings.TrimSpace(projectID)
	var project entities.Project
	if projectID != "" {
		projects, err := u.queries.Projects(ctx)
		if err != nil {
			return entities.SaleWizard{}, err
		}
		p, ok := findProject(projects, projectID)
		if !ok {
			return entities.SaleWizard{}, ErrProjectNotFound
		}
		project = p
	}
	return u.mutateLots(ctx, id, func(sel *LotSelection) error {
		sel.HandleProjectChange(project)
		return nil
	})
}

func (u *SaleWizardUseCase) ChangeStage(ctx context.Context, id, stageID string) (entities.SaleWizard, error) {
	stageID = strings.TrimSpace(stageID)
	return u.mutateLots(ctx, id, func(sel *LotSelection) error {
		if stageID != "" && sel.GetFormData().ProjectID == "" {
			return ErrStageNeedsProject
		}
		sel.HandleStageChange(stageID)
		return nil
	})
}

func (u *SaleWizardUseCase) ChangeBlock(ctx context.Context, id, blockID string) (entities.SaleWizard, error) {
	blockID = strings.TrimSpace(blockID)
	return u.mutateLots(ctx, id, func(sel *LotSelection) error {
		if blockID != "" && sel.GetFormData().StageID == "" {
			return ErrBlockNeedsStage
		}
		sel.HandleBlockChange(blockID)
		return nil
	})
}

// SelectLot resolves the lot from the block's list; the client never supplies prices.
func (u *SaleWizardUseCase) SelectLot(ctx context.Context, id, lotID string) (entities.SaleWizard, error) {
	lotID = strings.TrimSpace(lotID)
	return u.mutateLots(ctx, id, func(sel *LotSelection) error {
		data := sel.GetFormData()
		if data.BlockID == "" {
			return ErrLotRequiresBlock
		}
		lots, err := u.queries.Lots(ctx, data.ProjectID, data.BlockID)
		if err != nil {
			return err
		}
		lot, ok := findLot(lots, lotID)
		if !ok {
			return ErrLotNotFound
		}
		return sel.HandleSelectLot(lot)
	})
}

func (u *SaleWizardUseCase) SetSaleType(ctx context.Context, id string, t entities.SaleType) (entities.SaleWizard, error) {
	return u.mutate(ctx, id, func(w *entities.SaleWizard) error {
		if w.CurrentStep() < entities.StepSaleType {
			return ErrWizardStepLocked
		}
		switch t {
		case entities.SaleTypeDirectPayment:
			w.Financing = &entities.FinancingData{SaleType: t}
		case entities.SaleTypeFinanced:
			if w.Financing == nil || w.Financing.SaleType != t {
				w.Financing = &entities.FinancingData{SaleType: t}
			}
		default:
			return ErrInvalidSaleType
		}
		return nil
	})
}

func (u *SaleWizardUseCase) ApplyFinancing(ctx context.Context, id string, in FinancingInput) (entities.SaleWizard, error) {
	return u.mutate(ctx, id, func(w *entities.SaleWizard) error {
		if w.CurrentStep() < entities.StepSaleType {
			return ErrWizardStepLocked
		}
		if in.SaleType == "" && w.Financing != nil {
			in.SaleType = w.Financing.SaleType
		}
		data, err := ApplyFinancing(w.Step1, in)
		if err != nil {
			return err
		}
		w.Financing = &data
		return nil
	})
}

func (u *SaleWizardUseCase) SelectLead(ctx context.Context, id, leadID string) (entities.SaleWizard, error) {
	return u.mutateClient(ctx, id, func(form *ClientInfoForm) error {
		return form.HandleLeadSelect(ctx, leadID)
	})
}

func (u *SaleWizardUseCase) SetClientAddress(ctx context.Context, id, address string) (entities.SaleWizard, error) {
	return u.mutateClient(ctx, id, func(form *ClientInfoForm) error {
		form.SetAddress(address)
		return nil
	})
}

func (u *SaleWizardUseCase) ToggleClientSections(ctx context.Context, id string, guarantor, secondaryClients *bool) (entities.SaleWizard, error) {
	return u.mutateClient(ctx, id, func(form *ClientInfoForm) error {
		if guarantor != nil {
			form.ToggleGuarantor(*guarantor)
		}
		if secondaryClients != nil {
			form.ToggleSecondaryClients(*secondaryClients)
		}
		return nil
	})
}

// SubmitClientInfo saves the posted draft even when validation fails, so the
// user keeps what was typed; the validation error is returned afterwards.
func (u *SaleWizardUseCase) SubmitClientInfo(ctx context.Context, id string, in ClientInfoInput) (entities.SaleWizard, error) {
	var submitErr error
	w, err := u.mutate(ctx, id, func(w *entities.SaleWizard) error {
		if w.CurrentStep() < entities.StepClientInfo {
			return ErrWizardStepLocked
		}
		form := NewClientInfoForm(w.ClientForm, u.queries)
		form.Apply(in)
		w.ClientForm = form.Draft()
		w.Step4 = nil
		submitErr = form.HandleSubmit(func(data entities.Step4Data) error {
			w.Step4 = &data
			return nil
		})
		return nil
	})
	if err != nil {
		return entities.SaleWizard{}, err
	}
	return w, submitErr
}

// SearchLeads records lead search input. The search itself runs once typing
// pauses for the debounce delay, or immediately when submit (Enter) is set;
// its results are prefetched into the query cache for Leads to read.
func (u *SaleWizardUseCase) SearchLeads(ctx context.Context, id, input string, submit bool) (entities.SaleWizard, error) {
	input = strings.TrimSpace(input)
	if len(input) > maxLeadSearchLen {
		return entities.SaleWizard{}, ErrLeadSearchTooLong
	}
	w, err := u.mutate(ctx, id, func(w *entities.SaleWizard) error {
		w.LeadSearch.Input = input
		w.LeadSearch.UpdatedAt = u.now()
		return nil
	})
	if err != nil {
		return entities.SaleWizard{}, err
	}

	s := u.search(ctx, w.ID)
	s.debouncer.Input(input)
	if submit {
		s.debouncer.Submit()
	}
	return w, nil
}

func (u *SaleWizardUseCase) Leads(ctx context.Context, id string, params entities.ListParams) (entities.Page[entities.Lead], error) {
	w, err := u.load(ctx, id)
	if err != nil {
		return entities.Page[entities.Lead]{}, err
	}
	if params.Search == "" {
		params.Search = w.LeadSearch.Committed
	}
	if params.Limit == 0 {
		params.Limit = leadSearchPageSize
	}
	return u.queries.Leads(ctx, params)
}

func (u *SaleWizardUseCase) Submit(ctx context.Context, id string) (entities.Sale, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Sale{}, ErrInvalidWizardID
	}
	log := logger.For("wizard.usecase")
	mu := u.lock(id)
	mu.Lock()
	defer mu.Unlock()

	w, err := u.loadUnlocked(ctx, id)
	if err != nil {
		return entities.Sale{}, err
	}
	if w.CurrentStep() != entities.StepSummary {
		log.Info().Str("wizard_id", id).Int("step", int(w.CurrentStep())).Msg("submit rejected; wizard incomplete")
		return entities.Sale{}, ErrWizardIncomplete
	}

	req := BuildCreateSaleRequest(w)
	log.Info().Str("wizard_id", id).Str("lot_id", req.LotID).Str("sale_type", string(req.SaleType)).Msg("submitting sale")
	sale, err := u.api.CreateSale(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("wizard_id", id).Msg("create sale failed")
		return entities.Sale{}, err
	}

	u.queries.Invalidate(ctx, keySales, keyLots(w.Step1.ProjectID))
	u.stopSearch(id)
	if err := u.repo.Delete(ctx, id); err != nil {
		// the sale exists; a leftover draft only expires later
		log.Warn().Err(err).Str("wizard_id", id).Msg("wizard cleanup failed")
	}
	u.locks.Delete(id)
	log.Info().Str("wizard_id", id).Str("sale_id", sale.ID).Msg("sale created")
	return sale, nil
}

// BuildCreateSaleRequest aggregates the completed steps into the backend payload.
func BuildCreateSaleRequest(w entities.SaleWizard) entities.CreateSaleRequest {
	req := entities.CreateSaleRequest{Currency: w.Step1.ProjectCurrency}
	if lot := w.Step1.SelectedLot; lot != nil {
		req.LotID = lot.ID
		req.TotalAmount = lot.TotalPrice.Float64()
		req.TotalAmountUrbanDev = lot.UrbanizationPrice.Float64()
	}
	if f := w.Financing; f != nil {
		req.SaleType = f.SaleType
		if f.SaleType == entities.SaleTypeFinanced {
			req.InitialAmount = f.InitialAmount
			req.InterestRate = f.InterestRate
			req.QuantityLotInstallments = f.LotInstallments
			req.QuantityHuInstallments = f.UrbanizationInstallments
			req.FirstPaymentDate = f.FirstPaymentDate.Format("2006-01-02")
			req.Installments = f.Schedule
		}
	}
	if s := w.Step4; s != nil {
		req.ClientID = s.ClientID
		req.LeadID = s.LeadID
		req.ClientAddress = s.Address
		req.Guarantor = s.Guarantor
		req.SecondaryClients = s.SecondaryClients
	}
	return req
}

func (u *SaleWizardUseCase) mutateLots(ctx context.Context, id string, fn func(sel *LotSelection) error) (entities.SaleWizard, error) {
	return u.mutate(ctx, id, func(w *entities.SaleWizard) error {
		sel := NewLotSelection(w.Step1)
		if err := fn(sel); err != nil {
			return err
		}
		before := w.Step1.SelectedLot
		w.Step1 = sel.GetFormData()
		if !sameLot(before, w.Step1.SelectedLot) {
			// the plan was priced for the previous lot
			w.Financing = nil
		}
		return nil
	})
}

func (u *SaleWizardUseCase) mutateClient(ctx context.Context, id string, fn func(form *ClientInfoForm) error) (entities.SaleWizard, error) {
	var stepErr error
	w, err := u.mutate(ctx, id, func(w *entities.SaleWizard) error {
		if w.CurrentStep() < entities.StepClientInfo {
			return ErrWizardStepLocked
		}
		form := NewClientInfoForm(w.ClientForm, u.queries)
		stepErr = fn(form)
		w.ClientForm = form.Draft()
		w.Step4 = nil
		return nil
	})
	if err != nil {
		return entities.SaleWizard{}, err
	}
	return w, stepErr
}

func (u *SaleWizardUseCase) mutate(ctx context.Context, id string, fn func(w *entities.SaleWizard) error) (entities.SaleWizard, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SaleWizard{}, ErrInvalidWizardID
	}
	mu := u.lock(id)
	mu.Lock()
	defer mu.Unlock()

	w, err := u.loadUnlocked(ctx, id)
	if err != nil {
		return entities.SaleWizard{}, err
	}
	if err := fn(&w); err != nil {
		return entities.SaleWizard{}, err
	}
	now := u.now()
	w.UpdatedAt = now
	w.ExpiresAt = now.Add(u.ttl)
	return u.repo.Save(ctx, w)
}

func (u *SaleWizardUseCase) load(ctx context.Context, id string) (entities.SaleWizard, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SaleWizard{}, ErrInvalidWizardID
	}
	return u.loadUnlocked(ctx, id)
}

func (u *SaleWizardUseCase) loadUnlocked(ctx context.Context, id string) (entities.SaleWizard, error) {
	w, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.SaleWizard{}, err
	}
	if w.ID == "" || !ownedByCaller(ctx, w) {
		return entities.SaleWizard{}, ErrWizardNotFound
	}
	if w.Expired(u.now()) {
		return entities.SaleWizard{}, ErrWizardExpired
	}
	return w, nil
}

func (u *SaleWizardUseCase) lock(id string) *sync.Mutex {
	mu, _ := u.locks.LoadOrStore(id, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func (u *SaleWizardUseCase) search(ctx context.Context, id string) *leadSearch {
	u.searchMu.Lock()
	defer u.searchMu.Unlock()

	now := u.now()
	for otherID, s := range u.searches {
		if otherID != id && now.Sub(s.touched) > searchIdleTimeout {
			s.debouncer.Stop()
			delete(u.searches, otherID)
		}
	}

	s, ok := u.searches[id]
	if !ok {
		s = &leadSearch{}
		s.debouncer = debounce.New(u.searchDelay, func(value string) {
			u.searchMu.Lock()
			runCtx := s.ctx
			u.searchMu.Unlock()
			u.runLeadSearch(runCtx, id, value)
		}, u.debounceOpts...)
		u.searches[id] = s
	}
	// the debounced search outlives the request but keeps its values (access token)
	s.ctx = context.WithoutCancel(ctx)
	s.touched = now
	return s
}

func (u *SaleWizardUseCase) stopSearch(id string) {
	u.searchMu.Lock()
	defer u.searchMu.Unlock()
	if s, ok := u.searches[id]; ok {
		s.debouncer.Stop()
		delete(u.searches, id)
	}
}

func (u *SaleWizardUseCase) runLeadSearch(ctx context.Context, id, value string) {
	log := logger.For("wizard.search")
	page, err := u.queries.Leads(ctx, entities.ListParams{Page: 1, Limit: leadSearchPageSize, Search: value})
	if err != nil {
		log.Warn().Err(err).Str("wizard_id", id).Str("search", value).Msg("lead search failed")
		return
	}
	if _, err := u.mutate(ctx, id, func(w *entities.SaleWizard) error {
		w.LeadSearch.Committed = value
		return nil
	}); err != nil {
		log.Warn().Err(err).Str("wizard_id", id).Msg("lead search commit failed")
		return
	}
	log.Debug().Str("wizard_id", id).Str("search", value).Int("results", len(page.Items)).Msg("lead search committed")
}

// ownedByCaller reports whether the request's user started the wizard. Another
// user's wizard is reported as not found. Calls without a user are internal.
func ownedByCaller(ctx context.Context, w entities.SaleWizard) bool {
	caller := UserIDFrom(ctx)
	return caller == "" || w.UserID == "" || w.UserID == caller
}

func sameLot(a, b *entities.Lot) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID == b.ID
}
