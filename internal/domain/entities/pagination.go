package entities

import (
	"net/url"
	"strconv"
	"time"
)

type Order string

const (
	OrderASC  Order = "ASC"
	OrderDESC Order = "DESC"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type PageMeta struct {
	TotalItems   int `json:"totalItems"`
	ItemCount    int `json:"itemCount,omitempty"`
	ItemsPerPage int `json:"itemsPerPage"`
	TotalPages   int `json:"totalPages"`
	CurrentPage  int `json:"currentPage"`
}

// Page is the single paginated envelope used inside this service,
// whatever shape the backend answered with.
type Page[T any] struct {
	Items []T      `json:"items"`
	Meta  PageMeta `json:"meta"`
}

// ListParams are the pagination and filter params every list endpoint accepts.
type ListParams struct {
	Page     int
	Limit    int
	Order    Order
	Search   string
	IsActive *bool
	From     *time.Time
	To       *time.Time
}

// Normalize clamps page/limit and defaults the order.
func (p ListParams) Normalize() ListParams {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Order != OrderASC && p.Order != OrderDESC {
		p.Order = OrderDESC
	}
	return p
}

// Values encodes the params as query string values.
func (p ListParams) Values() url.Values {
	p = p.Normalize()
	v := url.Values{}
	v.Set("page", strconv.Itoa(p.Page))
	v.Set("limit", strconv.Itoa(p.Limit))
	v.Set("order", string(p.Order))
	if p.Search != "" {
		v.Set("search", p.Search)
	}
	if p.IsActive != nil {
		v.Set("isActive", strconv.FormatBool(*p.IsActive))
	}
	if p.From != nil {
		v.Set("startDate", p.From.Format("2006-01-02"))
	}
	if p.To != nil {
		v.Set("endDate", p.To.Format("2006-01-02"))
	}
	return v
}

// CacheKey renders the params as a stable cache key fragment.
func (p ListParams) CacheKey() string {
	return p.Values().Encode()
}
