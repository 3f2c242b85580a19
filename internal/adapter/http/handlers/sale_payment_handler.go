package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "lotes_backoffice/internal/adapter/http/dto/response"
	"lotes_backoffice/internal/infrastructure/logger"
	"lotes_backoffice/internal/usecase"
	"lotes_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

// SalePaymentHandler handles the payment views of a sale and online charges.
type SalePaymentHandler struct {
	usecase usecase.ISalePaymentUseCase
}

func NewSalePaymentHandler(uc usecase.ISalePaymentUseCase) *SalePaymentHandler {
	return &SalePaymentHandler{usecase: uc}
}

// List sorts by ticket number when sort=ticket; direction is asc, desc or empty.
func (h *SalePaymentHandler) List(c *gin.Context) {
	dir := usecase.SortNone
	if sortBy := c.Query("sort"); sortBy != "" {
		if sortBy != "ticket" {
			writeError(c, errInvalidRequest)
			return
		}
		d, ok := usecase.ParseSortDirection(c.Query("direction"))
		if !ok {
			writeError(c, errInvalidRequest)
			return
		}
		dir = d
	}

	payments, err := h.usecase.Payments(c.Request.Context(), c.Param("sale_id"), dir)
	if err != nil {
		writeError(c, mapSalePaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments, dir))
}

func (h *SalePaymentHandler) Summary(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Request.Context(), c.Param("sale_id"))
	if err != nil {
		writeError(c, mapSalePaymentError(err))
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *SalePaymentHandler) PayOnline(c *gin.Context) {
	saleID, paymentID := c.Param("sale_id"), c.Param("payment_id")
	log := logger.For("payment.handler")
	mpPayload, err := readMPPayload(c)
	if err != nil {
		log.Info().Err(err).Str("payment_id", paymentID).Msg("invalid payload")
		writeError(c, errInvalidRequest)
		return
	}

	p, err := h.usecase.PayOnline(c.Request.Context(), saleID, paymentID, mpPayload)
	if err != nil {
		writeError(c, mapSalePaymentError(err))
		return
	}
	log.Info().Str("sale_id", saleID).Str("payment_id", p.ID).Str("status", string(p.Status)).Msg("online payment registered")
	c.JSON(http.StatusOK, response.FromPayment(p))
}

// readMPPayload accepts the Mercado Pago payload bare or wrapped as {"mp_payload": {...}}.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if v := strings.TrimSpace(string(wrapped)); v == "" || v == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(raw), nil
}

func mapSalePaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSaleID), errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrSaleNotFound):
		return pkg.NewDomainErrorSimple("SALE_NOT_FOUND", "Sale not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotPending):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_PENDING", "Payment is not pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrMixedCurrencies):
		return pkg.NewDomainError("PAYMENT_CURRENCIES_MIXED", "Sale payments use more than one currency", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentCurrencyNotSupported):
		return pkg.NewDomainErrorSimple("PAYMENT_CURRENCY_NOT_SUPPORTED", "Online payments only accept PEN", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_PROVIDER_NOT_CONFIGURED", "Online payments are not configured", err, http.StatusServiceUnavailable)
	default:
		return mapCommonError(err)
	}
}
