package entities

import "time"

// WizardStep numbers the sale wizard steps.
type WizardStep int

const (
	StepLotSelection WizardStep = 1
	StepSaleType     WizardStep = 2
	StepFinancing    WizardStep = 3
	StepClientInfo   WizardStep = 4
	StepSummary      WizardStep = 5
)

// Step1Data is the lot selection snapshot.
type Step1Data struct {
	ProjectID       string   `json:"projectId"`
	ProjectName     string   `json:"projectName"`
	ProjectCurrency Currency `json:"projectCurrency"`
	StageID         string   `json:"stageId"`
	BlockID         string   `json:"blockId"`
	SelectedLot     *Lot     `json:"selectedLot"`
}

type InstallmentTrack string

const (
	TrackLot          InstallmentTrack = "LOT"
	TrackUrbanization InstallmentTrack = "URBANIZATION"
)

type Installment struct {
	Number  int              `json:"number"`
	Track   InstallmentTrack `json:"track"`
	DueDate time.Time        `json:"dueDate"`
	Amount  float64          `json:"amount"`
}

// FinancingData holds the sale type and, for financed sales, the payment plan.
type FinancingData struct {
	SaleType                 SaleType      `json:"saleType"`
	InitialAmount            float64       `json:"initialAmount"`
	InterestRate             float64       `json:"interestRate"`
	LotInstallments          int           `json:"lotInstallments"`
	UrbanizationInstallments int           `json:"urbanizationInstallments"`
	FirstPaymentDate         time.Time     `json:"firstPaymentDate"`
	Schedule                 []Installment `json:"schedule,omitempty"`
}

// Step4Data is the client info snapshot.
type Step4Data struct {
	LeadID           string            `json:"leadId"`
	LeadName         string            `json:"leadName"`
	LeadDocument     string            `json:"leadDocument"`
	ClientID         int               `json:"clientId"`
	Address          string            `json:"address"`
	Guarantor        *Guarantor        `json:"guarantor,omitempty"`
	SecondaryClients []SecondaryClient `json:"secondaryClients"`
}

// ClientInfoDraft is the in-progress client form before it is submitted as Step4Data.
type ClientInfoDraft struct {
	LeadID                  string            `json:"leadId"`
	LeadName                string            `json:"leadName"`
	LeadDocument            string            `json:"leadDocument"`
	ClientID                int               `json:"clientId"`
	Address                 string            `json:"address"`
	AddressEdited           bool              `json:"addressEdited"`
	AddressAutofilledFor    string            `json:"addressAutofilledFor,omitempty"`
	GuarantorEnabled        bool              `json:"guarantorEnabled"`
	Guarantor               *Guarantor        `json:"guarantor,omitempty"`
	SecondaryClientsEnabled bool              `json:"secondaryClientsEnabled"`
	SecondaryClients        []SecondaryClient `json:"secondaryClients"`
}

type LeadSearchState struct {
	Input     string    `json:"input"`
	Committed string    `json:"committed"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SaleWizard is one in-progress sale creation. It only lives until it is
// submitted, discarded or expires.
type SaleWizard struct {
	ID         string          `json:"id"`
	UserID     string          `json:"userId"`
	Step1      Step1Data       `json:"step1"`
	Financing  *FinancingData  `json:"financing,omitempty"`
	ClientForm ClientInfoDraft `json:"clientForm"`
	Step4      *Step4Data      `json:"step4,omitempty"`
	LeadSearch LeadSearchState `json:"leadSearch"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
	ExpiresAt  time.Time       `json:"expiresAt"`
}

// CurrentStep is the first step that is not complete yet.
func (w SaleWizard) CurrentStep() WizardStep {
	switch {
	case w.Step1.SelectedLot == nil:
		return StepLotSelection
	case w.Financing == nil || w.Financing.SaleType == "":
		return StepSaleType
	case w.Financing.SaleType == SaleTypeFinanced && len(w.Financing.Schedule) == 0:
		return StepFinancing
	case w.Step4 == nil:
		return StepClientInfo
	default:
		return StepSummary
	}
}

func (w SaleWizard) Expired(now time.Time) bool {
	return !w.ExpiresAt.IsZero() && now.After(w.ExpiresAt)
}

// CreateSaleRequest is the payload sent to the backend when the wizard is submitted.
type CreateSaleRequest struct {
	LotID                   string            `json:"lotId"`
	SaleType                SaleType          `json:"saleType"`
	ClientID                int               `json:"clientId"`
	LeadID                  string            `json:"leadId"`
	ClientAddress           string            `json:"clientAddress"`
	TotalAmount             float64           `json:"totalAmount"`
	TotalAmountUrbanDev     float64           `json:"totalAmountUrbanDev"`
	InitialAmount           float64           `json:"initialAmount,omitempty"`
	InterestRate            float64           `json:"interestRate,omitempty"`
	QuantityLotInstallments int               `json:"quantitySaleCoutes,omitempty"`
	QuantityHuInstallments  int               `json:"quantityHuCuotes,omitempty"`
	FirstPaymentDate        string            `json:"firstPaymentDate,omitempty"`
	Installments            []Installment     `json:"financingInstallments,omitempty"`
	Guarantor               *Guarantor        `json:"guarantor,omitempty"`
	SecondaryClients        []SecondaryClient `json:"secondaryClients,omitempty"`
	Currency                Currency          `json:"currency"`
}
