package handlers

import (
	"context"
	"errors"
	"net/http"

	request "lotes_backoffice/internal/adapter/http/dto/request"
	response "lotes_backoffice/internal/adapter/http/dto/response"
	"lotes_backoffice/internal/domain/entities"
	"lotes_backoffice/internal/infrastructure/logger"
	"lotes_backoffice/internal/usecase"
	"lotes_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

// SaleWizardHandler exposes the sale creation wizard, one route per step action.
// Every step route answers with the whole wizard so the front can re-render.
type SaleWizardHandler struct {
	usecase usecase.ISaleWizardUseCase
}

func NewSaleWizardHandler(uc usecase.ISaleWizardUseCase) *SaleWizardHandler {
	return &SaleWizardHandler{usecase: uc}
}

func (h *SaleWizardHandler) Start(c *gin.Context) {
	s, _ := SessionFrom(c)
	w, err := h.usecase.Start(c.Request.Context(), s.User.ID)
	if err != nil {
		writeError(c, mapSaleWizardError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSaleWizard(w))
}

func (h *SaleWizardHandler) Get(c *gin.Context) {
	w, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	h.respond(c, w, err)
}

func (h *SaleWizardHandler) Discard(c *gin.Context) {
	if err := h.usecase.Discard(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapSaleWizardError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SaleWizardHandler) LotOptions(c *gin.Context) {
	opts, err := h.usecase.LotOptions(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapSaleWizardError(err))
		return
	}
	c.JSON(http.StatusOK, opts)
}

func (h *SaleWizardHandler) ChangeProject(c *gin.Context) {
	h.selection(c, h.usecase.ChangeProject)
}

func (h *SaleWizardHandler) ChangeStage(c *gin.Context) {
	h.selection(c, h.usecase.ChangeStage)
}

func (h *SaleWizardHandler) ChangeBlock(c *gin.Context) {
	h.selection(c, h.usecase.ChangeBlock)
}

func (h *SaleWizardHandler) SelectLot(c *gin.Context) {
	h.selection(c, h.usecase.SelectLot)
}

func (h *SaleWizardHandler) SetSaleType(c *gin.Context) {
	var payload request.SaleTypeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	w, err := h.usecase.SetSaleType(c.Request.Context(), c.Param("id"), payload.SaleType)
	h.respond(c, w, err)
}

func (h *SaleWizardHandler) ApplyFinancing(c *gin.Context) {
	var payload request.FinancingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, pkg.NewValidationError("Invalid form", map[string]string{"firstPaymentDate": err.Error()}, http.StatusUnprocessableEntity))
		return
	}
	w, err := h.usecase.ApplyFinancing(c.Request.Context(), c.Param("id"), in)
	h.respond(c, w, err)
}

func (h *SaleWizardHandler) SelectLead(c *gin.Context) {
	var payload request.LeadSelectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	w, err := h.usecase.SelectLead(c.Request.Context(), c.Param("id"), payload.LeadID)
	h.respond(c, w, err)
}

func (h *SaleWizardHandler) SetClientAddress(c *gin.Context) {
	var payload request.AddressRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	w, err := h.usecase.SetClientAddress(c.Request.Context(), c.Param("id"), payload.Address)
	h.respond(c, w, err)
}

func (h *SaleWizardHandler) ToggleClientSections(c *gin.Context) {
	var payload request.TogglesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	w, err := h.usecase.ToggleClientSections(c.Request.Context(), c.Param("id"), payload.Guarantor, payload.SecondaryClients)
	h.respond(c, w, err)
}

// SubmitClientInfo answers 422 with the field errors when the form is invalid;
// the draft is kept either way.
func (h *SaleWizardHandler) SubmitClientInfo(c *gin.Context) {
	var payload request.ClientInfoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	w, err := h.usecase.SubmitClientInfo(c.Request.Context(), c.Param("id"), payload.ToInput())
	h.respond(c, w, err)
}

// SearchLeads records the search box; results are read through Leads once the
// debounced search has run.
func (h *SaleWizardHandler) SearchLeads(c *gin.Context) {
	var payload request.LeadSearchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	w, err := h.usecase.SearchLeads(c.Request.Context(), c.Param("id"), payload.Input, payload.Submit)
	if err != nil {
		writeError(c, mapSaleWizardError(err))
		return
	}
	c.JSON(http.StatusAccepted, response.FromSaleWizard(w))
}

func (h *SaleWizardHandler) Leads(c *gin.Context) {
	var q request.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	page, err := h.usecase.Leads(c.Request.Context(), c.Param("id"), q.ToParams())
	if err != nil {
		writeError(c, mapSaleWizardError(err))
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *SaleWizardHandler) Submit(c *gin.Context) {
	id := c.Param("id")
	sale, err := h.usecase.Submit(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapSaleWizardError(err))
		return
	}
	logger.For("wizard.handler").Info().Str("wizard_id", id).Str("sale_id", sale.ID).Msg("sale submitted")
	c.JSON(http.StatusCreated, response.FromSale(sale))
}

// selection applies one level of the lot cascade; an empty id clears that level.
func (h *SaleWizardHandler) selection(c *gin.Context, change func(ctx context.Context, id, value string) (entities.SaleWizard, error)) {
	var payload request.SelectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	w, err := change(c.Request.Context(), c.Param("id"), payload.ID)
	h.respond(c, w, err)
}

// respond writes the wizard, or the error. A step error that still saved the
// draft (e.g. a failed client lookup) is reported as the error.
func (h *SaleWizardHandler) respond(c *gin.Context, w entities.SaleWizard, err error) {
	if err != nil {
		writeError(c, mapSaleWizardError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSaleWizard(w))
}

func mapSaleWizardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWizardID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrWizardNotFound):
		return pkg.NewDomainErrorSimple("WIZARD_NOT_FOUND", "Sale wizard not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWizardExpired):
		return pkg.NewDomainErrorSimple("WIZARD_EXPIRED", "Sale wizard expired", http.StatusGone)
	case errors.Is(err, usecase.ErrWizardStepLocked):
		return pkg.NewDomainErrorSimple("WIZARD_STEP_LOCKED", "Complete the previous step first", http.StatusConflict)
	case errors.Is(err, usecase.ErrWizardIncomplete):
		return pkg.NewDomainErrorSimple("WIZARD_INCOMPLETE", "Sale wizard is not complete", http.StatusConflict)
	case errors.Is(err, usecase.ErrLeadSearchTooLong):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found or inactive", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLotNotFound):
		return pkg.NewDomainErrorSimple("LOT_NOT_FOUND", "Lot not found in the selected block", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLotNotAvailable):
		return pkg.NewDomainErrorSimple("LOT_NOT_AVAILABLE", "Lot is not available for sale", http.StatusConflict)
	case errors.Is(err, usecase.ErrStageNeedsProject), errors.Is(err, usecase.ErrBlockNeedsStage), errors.Is(err, usecase.ErrLotRequiresBlock):
		return pkg.NewDomainErrorSimple("SELECTION_OUT_OF_ORDER", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrFinancingRequiresLot):
		return pkg.NewDomainErrorSimple("WIZARD_STEP_LOCKED", "Complete the previous step first", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidSaleType):
		return pkg.NewValidationError("Invalid form", map[string]string{"saleType": err.Error()}, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidInitialAmount):
		return pkg.NewValidationError("Invalid form", map[string]string{"initialAmount": err.Error()}, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidInterestRate):
		return pkg.NewValidationError("Invalid form", map[string]string{"interestRate": err.Error()}, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidInstallments):
		return pkg.NewValidationError("Invalid form", map[string]string{"lotInstallments": err.Error()}, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrUrbanizationNotFinanceable):
		return pkg.NewValidationError("Invalid form", map[string]string{"urbanizationInstallments": err.Error()}, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidFirstPaymentDate):
		return pkg.NewValidationError("Invalid form", map[string]string{"firstPaymentDate": err.Error()}, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidLeadID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrLeadWithoutDocument):
		return pkg.NewDomainErrorSimple("LEAD_WITHOUT_DOCUMENT", "The selected lead has no document", http.StatusUnprocessableEntity)
	default:
		return mapCommonError(err)
	}
}
