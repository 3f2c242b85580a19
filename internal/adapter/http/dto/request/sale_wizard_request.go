package request

import (
	"errors"
	"strings"
	"time"

	"lotes_backoffice/internal/domain/entities"
	"lotes_backoffice/internal/usecase"
)

var ErrInvalidFirstPaymentDate = errors.New("firstPaymentDate must be YYYY-MM-DD")

// SelectionRequest picks (or clears, with an empty id) one level of the lot selection.
type SelectionRequest struct {
	ID string `json:"id"`
}

type SaleTypeRequest struct {
	SaleType entities.SaleType `json:"saleType" binding:"required,oneof=DIRECT_PAYMENT FINANCED"`
}

type FinancingRequest struct {
	SaleType                 entities.SaleType `json:"saleType" binding:"omitempty,oneof=DIRECT_PAYMENT FINANCED"`
	InitialAmount            float64           `json:"initialAmount" binding:"gte=0"`
	InterestRate             float64           `json:"interestRate" binding:"gte=0,lte=100"`
	LotInstallments          int               `json:"lotInstallments" binding:"gte=0"`
	UrbanizationInstallments int               `json:"urbanizationInstallments" binding:"gte=0"`
	FirstPaymentDate         string            `json:"firstPaymentDate"`
}

func (r FinancingRequest) ToInput() (usecase.FinancingInput, error) {
	in := usecase.FinancingInput{
		SaleType:                 r.SaleType,
		InitialAmount:            r.InitialAmount,
		InterestRate:             r.InterestRate,
		LotInstallments:          r.LotInstallments,
		UrbanizationInstallments: r.UrbanizationInstallments,
	}
	if raw := strings.TrimSpace(r.FirstPaymentDate); raw != "" {
		d, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return usecase.FinancingInput{}, ErrInvalidFirstPaymentDate
		}
		in.FirstPaymentDate = d
	}
	return in, nil
}

type LeadSelectRequest struct {
	LeadID string `json:"leadId" binding:"required"`
}

type AddressRequest struct {
	Address string `json:"address"`
}

// TogglesRequest switches the optional client sections; absent fields are left as they are.
type TogglesRequest struct {
	Guarantor        *bool `json:"guarantor"`
	SecondaryClients *bool `json:"secondaryClients"`
}

type ClientInfoRequest struct {
	Address          *string                    `json:"address"`
	Guarantor        *entities.Guarantor        `json:"guarantor"`
	SecondaryClients []entities.SecondaryClient `json:"secondaryClients"`
}

func (r ClientInfoRequest) ToInput() usecase.ClientInfoInput {
	return usecase.ClientInfoInput{
		Address:          r.Address,
		Guarantor:        r.Guarantor,
		SecondaryClients: r.SecondaryClients,
	}
}

// LeadSearchRequest is the lead search box content; Submit means Enter was pressed.
type LeadSearchRequest struct {
	Input  string `json:"input" binding:"max=100"`
	Submit bool   `json:"submit"`
}
