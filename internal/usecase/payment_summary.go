package usecase

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"lotes_backoffice/internal/domain/entities"
)

// PaymentGroup totals the payments sharing one payment config label.
type PaymentGroup struct {
	Label          string  `json:"label"`
	Count          int     `json:"count"`
	Total          float64 `json:"total"`
	FormattedTotal string  `json:"formattedTotal"`
}

type PaymentSummary struct {
	Groups         []PaymentGroup    `json:"groups"`
	Currency       entities.Currency `json:"currency"`
	Total          float64           `json:"total"`
	FormattedTotal string            `json:"formattedTotal"`
}

// ErrMixedCurrencies is returned when a sale's payments are not all in one currency.
var ErrMixedCurrencies = errors.New("payments use more than one currency")

// SummarizePayments groups payments by config label in first-seen order.
// Every payment is counted; cancelled ones add nothing to any total.
// Payments without a currency take the sale's; two distinct currencies are
// rejected rather than summed.
func SummarizePayments(payments []entities.Payment) (PaymentSummary, error) {
	summary := PaymentSummary{Groups: []PaymentGroup{}, Currency: entities.CurrencyPEN}
	var currency entities.Currency
	for _, p := range payments {
		switch {
		case p.Currency == "" || p.Currency == currency:
		case currency == "":
			currency = p.Currency
		default:
			return PaymentSummary{}, fmt.Errorf("%w: %s and %s", ErrMixedCurrencies, currency, p.Currency)
		}
	}
	if currency != "" {
		summary.Currency = currency
	}

	index := map[string]int{}
	for _, p := range payments {
		label := p.ConfigLabel()
		i, ok := index[label]
		if !ok {
			i = len(summary.Groups)
			index[label] = i
			summary.Groups = append(summary.Groups, PaymentGroup{Label: label})
		}
		g := &summary.Groups[i]
		g.Count++
		if p.Counts() {
			g.Total = roundCents(g.Total + p.Amount.Float64())
		}
	}

	for i := range summary.Groups {
		g := &summary.Groups[i]
		g.FormattedTotal = entities.FormatAmount(g.Total, summary.Currency)
		summary.Total = roundCents(summary.Total + g.Total)
	}
	summary.FormattedTotal = entities.FormatAmount(summary.Total, summary.Currency)
	return summary, nil
}

// SortDirection is the ticket column toggle. The zero value keeps backend order.
type SortDirection string

const (
	SortNone SortDirection = ""
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Next cycles none -> asc -> desc -> none.
func (d SortDirection) Next() SortDirection {
	switch d {
	case SortNone:
		return SortAsc
	case SortAsc:
		return SortDesc
	default:
		return SortNone
	}
}

func ParseSortDirection(s string) (SortDirection, bool) {
	switch d := SortDirection(strings.ToLower(strings.TrimSpace(s))); d {
	case SortNone, SortAsc, SortDesc:
		return d, true
	}
	return SortNone, false
}

// CompareTicketNumbers orders tickets like "B001-10" by prefix (lexically)
// then by suffix (numerically). A nil ticket sorts after any other.
func CompareTicketNumbers(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return compareTickets(*a, *b)
}

func compareTickets(a, b string) int {
	ap, as := splitTicket(a)
	bp, bs := splitTicket(b)
	if c := strings.Compare(ap, bp); c != 0 {
		return c
	}
	an, aErr := strconv.ParseInt(as, 10, 64)
	bn, bErr := strconv.ParseInt(bs, 10, 64)
	if aErr == nil && bErr == nil {
		return cmp.Compare(an, bn)
	}
	return strings.Compare(as, bs)
}

func splitTicket(t string) (prefix, suffix string) {
	prefix, suffix, _ = strings.Cut(strings.TrimSpace(t), "-")
	return prefix, suffix
}

// SortPayments returns a sorted copy. Payments without a ticket stay last in
// both directions; SortNone returns the input order.
func SortPayments(payments []entities.Payment, dir SortDirection) []entities.Payment {
	out := slices.Clone(payments)
	if dir == SortNone {
		return out
	}
	slices.SortStableFunc(out, func(x, y entities.Payment) int {
		a, b := x.TicketNumber, y.TicketNumber
		if a == nil || b == nil {
			return CompareTicketNumbers(a, b)
		}
		if dir == SortDesc {
			return compareTickets(*b, *a)
		}
		return compareTickets(*a, *b)
	})
	return out
}
