package entities

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PaymentStatus represents the backend review status of a payment.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusApproved  PaymentStatus = "APPROVED"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusRejected  PaymentStatus = "REJECTED"
	PaymentStatusCancelled PaymentStatus = "CANCELLED"
)

type PaymentConfig struct {
	ID   int    `json:"id"`
	Code string `json:"code,omitempty"`
	Name string `json:"name"`
}

// Payment belongs to a sale.
//
// Metadata is free-form and keeps e.g. the online payment provider response.
type Payment struct {
	ID            string         `json:"id"`
	SaleID        string         `json:"saleId,omitempty"`
	PaymentConfig PaymentConfig  `json:"paymentConfig"`
	Amount        Decimal        `json:"amount"`
	Currency      Currency       `json:"currency"`
	Status        PaymentStatus  `json:"status"`
	TicketNumber  *string        `json:"numberTicket"`
	CreatedAt     time.Time      `json:"createdAt"`
	ReviewedAt    *time.Time     `json:"reviewedAt,omitempty"`
	Reason        *string        `json:"rejectionReason,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

func (p Payment) ConfigLabel() string {
	if p.PaymentConfig.Name != "" {
		return p.PaymentConfig.Name
	}
	return "Sin configuración"
}

// Counts reports whether the payment adds to totals. Cancelled payments never do.
func (p Payment) Counts() bool {
	return p.Status != PaymentStatusCancelled
}

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders an amount with the currency symbol used in the back-office,
// e.g. "S/ 1,234.50" or "$ 1,234.50".
func FormatAmount(amount float64, currency Currency) string {
	symbol := "S/"
	if currency == CurrencyUSD {
		symbol = "$"
	}
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + symbol + " " + amountPrinter.Sprintf("%.2f", amount)
}
