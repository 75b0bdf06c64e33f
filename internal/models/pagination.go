package models

import "math"

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

type SortField string

const (
	SortByName      SortField = "name"
	SortByCreatedAt SortField = "createdAt"
)

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset is the number of rows skipped before the current page.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// OffsetFits reports whether Offset can be computed without overflowing int.
func (p PaginationParams) OffsetFits() bool {
	return p.Page <= 1 || p.PageSize <= 0 || p.Page-1 <= math.MaxInt/p.PageSize
}

// Normalize replaces out-of-range values with the defaults.
func (p PaginationParams) Normalize() PaginationParams {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	return p
}

// LeadPageRequest is a page of leads with sorting and filters.
type LeadPageRequest struct {
	PaginationParams
	SortBy SortField
	Order  SortOrder
	Name   string
	Status string
}

// LeadScope restricts a lead listing to one campaign or one group.
// Both nil means every lead.
type LeadScope struct {
	CampaignID *int64
	GroupID    *int64
}

func CampaignScope(id int64) LeadScope { return LeadScope{CampaignID: &id} }

func GroupScope(id int64) LeadScope { return LeadScope{GroupID: &id} }

// LeadFilter is the predicate shared by the count and the fetch of a listing.
// Status applies to the campaign association when CampaignID is set and to
// the lead itself otherwise.
type LeadFilter struct {
	CampaignID *int64
	GroupID    *int64
	Name       string
	Status     string
}

type LeadInclude struct {
	Campaigns bool
	Groups    bool
}

type LeadQuery struct {
	Filter  LeadFilter
	SortBy  SortField
	Order   SortOrder
	Limit   int
	Offset  int
	Include LeadInclude
}

type PageMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type Page[T any] struct {
	Data []T      `json:"data"`
	Meta PageMeta `json:"meta"`
}

// TotalPages is ceil(total / pageSize), and 0 when there is nothing to show.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

func NewPage[T any](items []T, params PaginationParams, total int) Page[T] {
	// Empty slice instead of nil for JSON consistency
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Data: items,
		Meta: PageMeta{
			Page:       params.Page,
			PageSize:   params.PageSize,
			Total:      total,
			TotalPages: TotalPages(total, params.PageSize),
		},
	}
}
