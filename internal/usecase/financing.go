package usecase

import (
	"errors"
	"math"
	"time"

	"lotes_backoffice/internal/domain/entities"
)

const maxInstallments = 120

var (
	ErrInvalidSaleType            = errors.New("invalid sale type")
	ErrInvalidInitialAmount       = errors.New("initial amount must be positive and lower than the lot price")
	ErrInvalidInstallments        = errors.New("installment count out of range")
	ErrInvalidInterestRate        = errors.New("interest rate must be between 0 and 100")
	ErrUrbanizationNotFinanceable = errors.New("lot has no urbanization charge to finance")
	ErrInvalidFirstPaymentDate    = errors.New("first payment date is required")
	ErrFinancingRequiresLot       = errors.New("a lot must be selected before financing")
)

// FinancingInput is what the user fills in the financing step.
type FinancingInput struct {
	SaleType                 entities.SaleType
	InitialAmount            float64
	InterestRate             float64
	LotInstallments          int
	UrbanizationInstallments int
	FirstPaymentDate         time.Time
}

// ApplyFinancing validates the input against the selected lot and returns the
// financing data, including the installment schedule for financed sales.
//
// The initial amount is paid against the lot price only; the urbanization
// charge is never part of it. An urbanization charge that is not split into
// installments is due in full as one installment on the first payment date,
// so the initial amount plus the schedule always cover the lot total.
func ApplyFinancing(step1 entities.Step1Data, in FinancingInput) (entities.FinancingData, error) {
	lot := step1.SelectedLot
	if lot == nil {
		return entities.FinancingData{}, ErrFinancingRequiresLot
	}

	switch in.SaleType {
	case entities.SaleTypeDirectPayment:
		return entities.FinancingData{SaleType: entities.SaleTypeDirectPayment}, nil
	case entities.SaleTypeFinanced:
	default:
		return entities.FinancingData{}, ErrInvalidSaleType
	}

	lotPrice := lot.LotPrice.Float64()
	if lotPrice <= 0 {
		lotPrice = lot.TotalPrice.Float64() - lot.UrbanizationPrice.Float64()
	}
	if in.InitialAmount <= 0 || in.InitialAmount >= lotPrice {
		return entities.FinancingData{}, ErrInvalidInitialAmount
	}
	if in.LotInstallments < 1 || in.LotInstallments > maxInstallments {
		return entities.FinancingData{}, ErrInvalidInstallments
	}
	if in.UrbanizationInstallments < 0 || in.UrbanizationInstallments > maxInstallments {
		return entities.FinancingData{}, ErrInvalidInstallments
	}
	if in.UrbanizationInstallments > 0 && !lot.HasUrbanization() {
		return entities.FinancingData{}, ErrUrbanizationNotFinanceable
	}
	if in.InterestRate < 0 || in.InterestRate > 100 {
		return entities.FinancingData{}, ErrInvalidInterestRate
	}
	if in.FirstPaymentDate.IsZero() {
		return entities.FinancingData{}, ErrInvalidFirstPaymentDate
	}

	first := in.FirstPaymentDate.UTC().Truncate(24 * time.Hour)
	schedule := BuildSchedule(entities.TrackLot, lotPrice-in.InitialAmount, in.InterestRate, in.LotInstallments, first)
	urbanInstallments := in.UrbanizationInstallments
	if lot.HasUrbanization() {
		if urbanInstallments == 0 {
			urbanInstallments = 1
		}
		// urbanization is financed without interest
		schedule = append(schedule, BuildSchedule(entities.TrackUrbanization, lot.UrbanizationPrice.Float64(), 0, urbanInstallments, first)...)
	}

	return entities.FinancingData{
		SaleType:                 entities.SaleTypeFinanced,
		InitialAmount:            roundCents(in.InitialAmount),
		InterestRate:             in.InterestRate,
		LotInstallments:          in.LotInstallments,
		UrbanizationInstallments: urbanInstallments,
		FirstPaymentDate:         first,
		Schedule:                 schedule,
	}, nil
}

// BuildSchedule splits principal into n monthly installments starting at first.
//
// With a positive annual rate the installments follow French amortization
// (constant payment); otherwise the principal is divided evenly. Amounts are
// rounded to cents and the rounding remainder goes to the last installment, so
// without interest the installments always add up to the principal.
func BuildSchedule(track entities.InstallmentTrack, principal, annualRate float64, n int, first time.Time) []entities.Installment {
	if n <= 0 || principal <= 0 {
		return nil
	}

	var payment float64
	total := principal
	if annualRate > 0 {
		r := annualRate / 100 / 12
		payment = principal * r / (1 - math.Pow(1+r, -float64(n)))
		total = payment * float64(n)
	} else {
		payment = principal / float64(n)
	}
	payment = roundCents(payment)
	total = roundCents(total)

	out := make([]entities.Installment, 0, n)
	var acc float64
	for i := 0; i < n; i++ {
		amount := payment
		if i == n-1 {
			amount = roundCents(total - acc)
		}
		acc = roundCents(acc + amount)
		out = append(out, entities.Installment{
			Number:  i + 1,
			Track:   track,
			DueDate: addMonthsClamped(first, i),
			Amount:  amount,
		})
	}
	return out
}

// addMonthsClamped keeps the due day, falling back to the month's last day
// (Jan 31 + 1 month is Feb 28/29, not Mar 3).
func addMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	target := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	last := target.AddDate(0, 1, -1).Day()
	if d > last {
		d = last
	}
	return time.Date(target.Year(), target.Month(), d, 0, 0, 0, 0, t.Location())
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
