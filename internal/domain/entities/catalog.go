package entities

// Currency is the currency a project sells its lots in.
type Currency string

const (
	CurrencyPEN Currency = "PEN"
	CurrencyUSD Currency = "USD"
)

// LotStatus mirrors the backend lot lifecycle. Only Activo lots are sellable.
type LotStatus string

const (
	LotStatusActivo   LotStatus = "Activo"
	LotStatusInactivo LotStatus = "Inactivo"
	LotStatusVendido  LotStatus = "Vendido"
	LotStatusSeparado LotStatus = "Separado"
)

type Project struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Currency Currency `json:"currency"`
	IsActive bool     `json:"isActive"`
	LogoURL  string   `json:"logo,omitempty"`
}

type Stage struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ProjectID string `json:"projectId,omitempty"`
	IsActive  bool   `json:"isActive"`
}

type Block struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	StageID  string `json:"stageId,omitempty"`
	IsActive bool   `json:"isActive"`
}

// Lot is a sellable unit inside project > stage > block.
type Lot struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Area              Decimal   `json:"area"`
	LotPrice          Decimal   `json:"lotPrice"`
	UrbanizationPrice Decimal   `json:"urbanizationPrice"`
	TotalPrice        Decimal   `json:"totalPrice"`
	Status            LotStatus `json:"status"`
	BlockID           string    `json:"blockId,omitempty"`
	BlockName         string    `json:"blockName,omitempty"`
	StageID           string    `json:"stageId,omitempty"`
	StageName         string    `json:"stageName,omitempty"`
}

func (l Lot) IsAvailable() bool {
	return l.Status == LotStatusActivo
}

// HasUrbanization reports whether the lot carries a separate urbanization charge,
// which enables the urbanization financing track.
func (l Lot) HasUrbanization() bool {
	return l.UrbanizationPrice > 0
}
