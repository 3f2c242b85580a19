package response

import (
	"lotes_backoffice/internal/domain/entities"
	"lotes_backoffice/internal/usecase"
)

// ParticipantSlotResponse is one of the seven participant slots of a sale.
type ParticipantSlotResponse struct {
	Type        entities.ParticipantType `json:"type"`
	Label       string                   `json:"label"`
	Field       string                   `json:"field"`
	Participant *entities.Participant    `json:"participant"`
}

type SaleResponse struct {
	entities.Sale
	CollectorName   string                    `json:"collectorName"`
	FormattedAmount string                    `json:"formattedAmount"`
	Participants    []ParticipantSlotResponse `json:"participants"`
}

func FromSale(s entities.Sale) SaleResponse {
	slots := make([]ParticipantSlotResponse, 0, len(entities.ParticipantTypes))
	for _, t := range entities.ParticipantTypes {
		slots = append(slots, ParticipantSlotResponse{
			Type:        t,
			Label:       t.Label(),
			Field:       t.FieldName(),
			Participant: s.Slot(t),
		})
	}
	return SaleResponse{
		Sale:            s,
		CollectorName:   s.Collector.DisplayName(),
		FormattedAmount: entities.FormatAmount(s.TotalAmount.Float64(), s.Currency),
		Participants:    slots,
	}
}

type CandidateListResponse struct {
	Type       entities.ParticipantType `json:"type"`
	Label      string                   `json:"label"`
	Candidates []usecase.Candidate      `json:"candidates"`
}

type AssignmentResponse struct {
	Outcome usecase.AssignmentOutcome `json:"outcome"`
	Message string                    `json:"message,omitempty"`
	Sale    SaleResponse              `json:"sale"`
}

func FromAssignmentResult(r usecase.AssignmentResult) AssignmentResponse {
	return AssignmentResponse{Outcome: r.Outcome, Message: r.Message, Sale: FromSale(r.Sale)}
}
