package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"leadhub/internal/apperr"
	"leadhub/internal/models"
)

func TestPaginateLeads_Defaults(t *testing.T) {
	leads := new(MockLeadStore)

	leads.On("CountLeads", mock.Anything, models.LeadFilter{}).Return(0, nil)
	leads.On("FindLeads", mock.Anything, models.LeadQuery{
		SortBy: models.SortByName,
		Order:  models.OrderAsc,
		Limit:  models.DefaultPageSize,
		Offset: 0,
	}).Return(nil, nil)

	page, err := PaginateLeads(context.Background(), leads, models.LeadScope{}, models.LeadPageRequest{})
	require.NoError(t, err)

	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.Equal(t, models.PageMeta{Page: 1, PageSize: 10, Total: 0, TotalPages: 0}, page.Meta)
	leads.AssertExpectations(t)
}

func TestPaginateLeads_CampaignScope(t *testing.T) {
	leads := new(MockLeadStore)
	campaignID := int64(1)

	filter := models.LeadFilter{CampaignID: &campaignID, Status: "Engaged"}
	rows := make([]models.Lead, 10)
	for i := range rows {
		rows[i] = models.Lead{ID: int64(11 + i)}
	}

	leads.On("CountLeads", mock.Anything, filter).Return(25, nil)
	leads.On("FindLeads", mock.Anything, models.LeadQuery{
		Filter:  filter,
		SortBy:  models.SortByCreatedAt,
		Order:   models.OrderDesc,
		Limit:   10,
		Offset:  10,
		Include: models.LeadInclude{Campaigns: true},
	}).Return(rows, nil)

	page, err := PaginateLeads(context.Background(), leads, models.CampaignScope(campaignID), models.LeadPageRequest{
		PaginationParams: models.PaginationParams{Page: 2, PageSize: 10},
		SortBy:           models.SortByCreatedAt,
		Order:            models.OrderDesc,
		Status:           "Engaged",
	})
	require.NoError(t, err)

	assert.Len(t, page.Data, 10)
	assert.Equal(t, int64(11), page.Data[0].ID)
	assert.Equal(t, models.PageMeta{Page: 2, PageSize: 10, Total: 25, TotalPages: 3}, page.Meta)
	leads.AssertExpectations(t)
}

func TestPaginateLeads_GroupScopeIncludesGroups(t *testing.T) {
	leads := new(MockLeadStore)
	groupID := int64(4)

	leads.On("CountLeads", mock.Anything, mock.Anything).Return(1, nil)
	leads.On("FindLeads", mock.Anything, mock.MatchedBy(func(q models.LeadQuery) bool {
		return q.Include.Groups && !q.Include.Campaigns && q.Filter.GroupID != nil && *q.Filter.GroupID == groupID
	})).Return([]models.Lead{{ID: 1}}, nil)

	_, err := PaginateLeads(context.Background(), leads, models.GroupScope(groupID), models.LeadPageRequest{})
	require.NoError(t, err)
	leads.AssertExpectations(t)
}

// A write between the count and the fetch leaves the total as counted.
func TestPaginateLeads_TotalFromCount(t *testing.T) {
	leads := new(MockLeadStore)

	leads.On("CountLeads", mock.Anything, mock.Anything).Return(12, nil)
	leads.On("FindLeads", mock.Anything, mock.Anything).Return([]models.Lead{{ID: 11}}, nil)

	page, err := PaginateLeads(context.Background(), leads, models.LeadScope{}, models.LeadPageRequest{
		PaginationParams: models.PaginationParams{Page: 2, PageSize: 10},
	})
	require.NoError(t, err)

	assert.Len(t, page.Data, 1)
	assert.Equal(t, 12, page.Meta.Total)
	assert.Equal(t, 2, page.Meta.TotalPages)
}

func TestPaginateLeads_Errors(t *testing.T) {
	t.Run("Count fails", func(t *testing.T) {
		leads := new(MockLeadStore)
		leads.On("CountLeads", mock.Anything, mock.Anything).Return(0, errors.New("db down"))

		_, err := PaginateLeads(context.Background(), leads, models.LeadScope{}, models.LeadPageRequest{})
		assert.EqualError(t, err, "db down")
		leads.AssertNotCalled(t, "FindLeads", mock.Anything, mock.Anything)
	})

	t.Run("Find fails", func(t *testing.T) {
		leads := new(MockLeadStore)
		leads.On("CountLeads", mock.Anything, mock.Anything).Return(3, nil)
		leads.On("FindLeads", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

		_, err := PaginateLeads(context.Background(), leads, models.LeadScope{}, models.LeadPageRequest{})
		assert.EqualError(t, err, "timeout")
	})
}

func TestPaginateLeads_PageOutOfRange(t *testing.T) {
	leads := new(MockLeadStore)

	_, err := PaginateLeads(context.Background(), leads, models.LeadScope{}, models.LeadPageRequest{
		PaginationParams: models.PaginationParams{Page: 1<<58 + 1, PageSize: 64},
	})
	assert.Equal(t, apperr.KindValidation, apperr.GetKind(err))
	leads.AssertNotCalled(t, "CountLeads", mock.Anything, mock.Anything)
	leads.AssertNotCalled(t, "FindLeads", mock.Anything, mock.Anything)
}
