package handlers

import (
	"errors"
	"net/http"

	request "lotes_backoffice/internal/adapter/http/dto/request"
	response "lotes_backoffice/internal/adapter/http/dto/response"
	"lotes_backoffice/internal/domain/entities"
	"lotes_backoffice/internal/usecase"
	"lotes_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

// ParticipantHandler handles the sale detail and its participant slots.
type ParticipantHandler struct {
	usecase usecase.IParticipantAssignmentUseCase
}

func NewParticipantHandler(uc usecase.IParticipantAssignmentUseCase) *ParticipantHandler {
	return &ParticipantHandler{usecase: uc}
}

func (h *ParticipantHandler) GetSale(c *gin.Context) {
	sale, err := h.usecase.Sale(c.Request.Context(), c.Param("sale_id"))
	if err != nil {
		writeError(c, mapParticipantError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSale(sale))
}

func (h *ParticipantHandler) Candidates(c *gin.Context) {
	t, ok := entities.ParseParticipantType(c.Query("type"))
	if !ok {
		writeError(c, mapParticipantError(usecase.ErrInvalidParticipantType))
		return
	}
	candidates, err := h.usecase.Candidates(c.Request.Context(), c.Param("sale_id"), t)
	if err != nil {
		writeError(c, mapParticipantError(err))
		return
	}
	c.JSON(http.StatusOK, response.CandidateListResponse{Type: t, Label: t.Label(), Candidates: candidates})
}

// Assign answers 200 with outcome INFO when the participant already holds the
// slot; nothing is sent to the backend in that case.
func (h *ParticipantHandler) Assign(c *gin.Context) {
	var payload request.AssignParticipantRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	t, ok := entities.ParseParticipantType(payload.ParticipantType)
	if !ok {
		writeError(c, mapParticipantError(usecase.ErrInvalidParticipantType))
		return
	}
	res, err := h.usecase.Assign(c.Request.Context(), c.Param("sale_id"), t, payload.ParticipantID)
	if err != nil {
		writeError(c, mapParticipantError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAssignmentResult(res))
}

func mapParticipantError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSaleID), errors.Is(err, usecase.ErrInvalidParticipantChoice):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidParticipantType):
		return pkg.NewDomainErrorSimple("INVALID_PARTICIPANT_TYPE", "Invalid participant type", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSaleNotFound):
		return pkg.NewDomainErrorSimple("SALE_NOT_FOUND", "Sale not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrParticipantNotCandidate):
		return pkg.NewDomainErrorSimple("PARTICIPANT_NOT_CANDIDATE", "Participant is not active for this type", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrAssignmentInProgress):
		return pkg.NewDomainErrorSimple("ASSIGNMENT_IN_PROGRESS", "Assignment already in progress", http.StatusConflict)
	default:
		return mapCommonError(err)
	}
}
