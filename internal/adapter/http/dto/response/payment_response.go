package response

import (
	"lotes_backoffice/internal/domain/entities"
	"lotes_backoffice/internal/usecase"
)

type PaymentResponse struct {
	entities.Payment
	ConfigLabel     string `json:"configLabel"`
	FormattedAmount string `json:"formattedAmount"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		Payment:         p,
		ConfigLabel:     p.ConfigLabel(),
		FormattedAmount: entities.FormatAmount(p.Amount.Float64(), p.Currency),
	}
}

// PaymentListResponse echoes the applied sort and the one the ticket header toggles to next.
type PaymentListResponse struct {
	Items    []PaymentResponse     `json:"items"`
	Sort     usecase.SortDirection `json:"sort"`
	NextSort usecase.SortDirection `json:"nextSort"`
}

func FromPayments(payments []entities.Payment, dir usecase.SortDirection) PaymentListResponse {
	items := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		items = append(items, FromPayment(p))
	}
	return PaymentListResponse{Items: items, Sort: dir, NextSort: dir.Next()}
}
