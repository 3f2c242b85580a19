package entities

import "strings"

type DocumentType string

const (
	DocumentTypeDNI DocumentType = "DNI"
	DocumentTypeCE  DocumentType = "CE"
	DocumentTypeRUC DocumentType = "RUC"
)

// Lead is a prospective client captured by the sales pipeline.
type Lead struct {
	ID           string       `json:"id"`
	FirstName    string       `json:"firstName"`
	LastName     string       `json:"lastName"`
	Document     string       `json:"document"`
	DocumentType DocumentType `json:"documentType"`
	Phone        string       `json:"phone,omitempty"`
	Email        string       `json:"email,omitempty"`
	IsInOffice   bool         `json:"isInOffice"`
}

func (l Lead) FullName() string {
	return strings.TrimSpace(l.FirstName + " " + l.LastName)
}

// Client is the backend client record created once a lead buys.
type Client struct {
	ID      int    `json:"id"`
	Address string `json:"address"`
	Lead    *Lead  `json:"lead,omitempty"`
}

type Guarantor struct {
	FirstName    string       `json:"firstName" validate:"required,min=2"`
	LastName     string       `json:"lastName" validate:"required,min=2"`
	Document     string       `json:"document" validate:"required,document"`
	DocumentType DocumentType `json:"documentType" validate:"required,oneof=DNI CE RUC"`
	Phone        string       `json:"phone" validate:"required,min=6"`
	Address      string       `json:"address" validate:"required"`
	Email        string       `json:"email,omitempty" validate:"omitempty,email"`
}

type SecondaryClient struct {
	FirstName    string       `json:"firstName" validate:"required,min=2"`
	LastName     string       `json:"lastName" validate:"required,min=2"`
	Document     string       `json:"document" validate:"required,document"`
	DocumentType DocumentType `json:"documentType" validate:"required,oneof=DNI CE RUC"`
	Phone        string       `json:"phone,omitempty"`
	Address      string       `json:"address,omitempty"`
	Email        string       `json:"email,omitempty" validate:"omitempty,email"`
}
