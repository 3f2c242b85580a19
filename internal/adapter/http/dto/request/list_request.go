package request

import (
	"strings"
	"time"

	"lotes_backoffice/internal/domain/entities"
)

// ListQuery is the query string shared by paginated list routes.
type ListQuery struct {
	Page      int    `form:"page" binding:"omitempty,min=1"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Order     string `form:"order" binding:"omitempty,oneof=ASC DESC asc desc"`
	Search    string `form:"search" binding:"omitempty,max=100"`
	IsActive  *bool  `form:"isActive"`
	StartDate string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

func (q ListQuery) ToParams() entities.ListParams {
	p := entities.ListParams{
		Page:     q.Page,
		Limit:    q.Limit,
		Order:    entities.Order(strings.ToUpper(q.Order)),
		Search:   strings.TrimSpace(q.Search),
		IsActive: q.IsActive,
	}
	if t, err := time.Parse(time.DateOnly, q.StartDate); err == nil {
		p.From = &t
	}
	if t, err := time.Parse(time.DateOnly, q.EndDate); err == nil {
		p.To = &t
	}
	return p.Normalize()
}
