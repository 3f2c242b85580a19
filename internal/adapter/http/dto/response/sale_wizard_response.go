package response

import (
	"time"

	"lotes_backoffice/internal/domain/entities"
	"lotes_backoffice/internal/usecase"
)

type SaleWizardResponse struct {
	ID          string                   `json:"id"`
	CurrentStep int                      `json:"currentStep"`
	CanProceed  bool                     `json:"canProceed"`
	Step1       entities.Step1Data       `json:"step1"`
	Financing   *entities.FinancingData  `json:"financing,omitempty"`
	ClientForm  entities.ClientInfoDraft `json:"clientForm"`
	Step4       *entities.Step4Data      `json:"step4,omitempty"`
	LeadSearch  entities.LeadSearchState `json:"leadSearch"`
	Summary     *SaleSummaryResponse     `json:"summary,omitempty"`
	ExpiresAt   time.Time                `json:"expiresAt"`
}

// SaleSummaryResponse is the last step: the payload Submit will send, plus display amounts.
type SaleSummaryResponse struct {
	Request           entities.CreateSaleRequest `json:"request"`
	LotTotal          string                     `json:"lotTotal"`
	UrbanizationTotal string                     `json:"urbanizationTotal"`
	InitialAmount     string                     `json:"initialAmount,omitempty"`
	InstallmentCount  int                        `json:"installmentCount"`
}

func FromSaleWizard(w entities.SaleWizard) SaleWizardResponse {
	step := w.CurrentStep()
	out := SaleWizardResponse{
		ID:          w.ID,
		CurrentStep: int(step),
		CanProceed:  usecase.NewLotSelection(w.Step1).CanProceed(),
		Step1:       w.Step1,
		Financing:   w.Financing,
		ClientForm:  w.ClientForm,
		Step4:       w.Step4,
		LeadSearch:  w.LeadSearch,
		ExpiresAt:   w.ExpiresAt,
	}
	if step == entities.StepSummary {
		req := usecase.BuildCreateSaleRequest(w)
		s := &SaleSummaryResponse{
			Request:           req,
			LotTotal:          entities.FormatAmount(req.TotalAmount, req.Currency),
			UrbanizationTotal: entities.FormatAmount(req.TotalAmountUrbanDev, req.Currency),
			InstallmentCount:  len(req.Installments),
		}
		if req.SaleType == entities.SaleTypeFinanced {
			s.InitialAmount = entities.FormatAmount(req.InitialAmount, req.Currency)
		}
		out.Summary = s
	}
	return out
}
