package service

import (
	"context"

	"leadhub/internal/models"
	"leadhub/internal/store"
)

// PaginateLeads returns one page of the leads matching scope and req.
//
// The total and the page come from two separate store calls that share one
// filter. They are not wrapped in a transaction, so a write landing between
// them can leave Meta.Total out of step with the rows returned.
func PaginateLeads(ctx context.Context, leads store.LeadStore, scope models.LeadScope, req models.LeadPageRequest) (models.Page[models.Lead], error) {
	params := req.PaginationParams.Normalize()
	if !params.OffsetFits() {
		return models.Page[models.Lead]{}, errPageOutOfRange(params)
	}

	sortBy := req.SortBy
	if sortBy == "" {
		sortBy = models.SortByName
	}
	order := req.Order
	if order == "" {
		order = models.OrderAsc
	}

	filter := models.LeadFilter{
		CampaignID: scope.CampaignID,
		GroupID:    scope.GroupID,
		Name:       req.Name,
		Status:     req.Status,
	}

	total, err := leads.CountLeads(ctx, filter)
	if err != nil {
		return models.Page[models.Lead]{}, err
	}

	items, err := leads.FindLeads(ctx, models.LeadQuery{
		Filter: filter,
		SortBy: sortBy,
		Order:  order,
		Limit:  params.PageSize,
		Offset: params.Offset(),
		Include: models.LeadInclude{
			Campaigns: scope.CampaignID != nil,
			Groups:    scope.GroupID != nil,
		},
	})
	if err != nil {
		return models.Page[models.Lead]{}, err
	}

	return models.NewPage(items, params, total), nil
}
