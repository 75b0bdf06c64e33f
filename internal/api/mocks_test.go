package api

import (
	"context"

	"github.com/stretchr/testify/mock"

	"leadhub/internal/models"
)

// MockLeadStore is a mock implementation of store.LeadStore
type MockLeadStore struct {
	mock.Mock
}

func (m *MockLeadStore) CountLeads(ctx context.Context, filter models.LeadFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockLeadStore) FindLeads(ctx context.Context, query models.LeadQuery) ([]models.Lead, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Lead), args.Error(1)
}

func (m *MockLeadStore) CreateLead(ctx context.Context, lead *models.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadStore) GetLead(ctx context.Context, id int64) (*models.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Lead), args.Error(1)
}

func (m *MockLeadStore) UpdateLead(ctx context.Context, lead *models.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadStore) DeleteLead(ctx context.Context, id int64) (*models.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Lead), args.Error(1)
}

// MockCampaignStore is a mock implementation of store.CampaignStore
type MockCampaignStore struct {
	mock.Mock
}

func (m *MockCampaignStore) ListCampaigns(ctx context.Context, name string, pagination models.PaginationParams) ([]models.Campaign, int, error) {
	args := m.Called(ctx, name, pagination)
	return args.Get(0).([]models.Campaign), args.Int(1), args.Error(2)
}

func (m *MockCampaignStore) CreateCampaign(ctx context.Context, campaign *models.Campaign) error {
	args := m.Called(ctx, campaign)
	return args.Error(0)
}

func (m *MockCampaignStore) GetCampaign(ctx context.Context, id int64) (*models.Campaign, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Campaign), args.Error(1)
}

func (m *MockCampaignStore) UpdateCampaign(ctx context.Context, campaign *models.Campaign) error {
	args := m.Called(ctx, campaign)
	return args.Error(0)
}

func (m *MockCampaignStore) DeleteCampaign(ctx context.Context, id int64) (*models.Campaign, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Campaign), args.Error(1)
}

func (m *MockCampaignStore) AddLead(ctx context.Context, link *models.LeadCampaign) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockCampaignStore) UpdateLeadStatus(ctx context.Context, campaignID, leadID int64, status models.LeadCampaignStatus) error {
	args := m.Called(ctx, campaignID, leadID, status)
	return args.Error(0)
}

func (m *MockCampaignStore) RemoveLead(ctx context.Context, campaignID, leadID int64) error {
	args := m.Called(ctx, campaignID, leadID)
	return args.Error(0)
}

// MockGroupStore is a mock implementation of store.GroupStore
type MockGroupStore struct {
	mock.Mock
}

func (m *MockGroupStore) ListGroups(ctx context.Context, name string, pagination models.PaginationParams) ([]models.Group, int, error) {
	args := m.Called(ctx, name, pagination)
	return args.Get(0).([]models.Group), args.Int(1), args.Error(2)
}

func (m *MockGroupStore) CreateGroup(ctx context.Context, group *models.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockGroupStore) GetGroup(ctx context.Context, id int64) (*models.Group, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Group), args.Error(1)
}

func (m *MockGroupStore) UpdateGroup(ctx context.Context, group *models.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockGroupStore) DeleteGroup(ctx context.Context, id int64) (*models.Group, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Group), args.Error(1)
}

func (m *MockGroupStore) AddLead(ctx context.Context, groupID, leadID int64) error {
	args := m.Called(ctx, groupID, leadID)
	return args.Error(0)
}

func (m *MockGroupStore) RemoveLead(ctx context.Context, groupID, leadID int64) error {
	args := m.Called(ctx, groupID, leadID)
	return args.Error(0)
}

// MockActivityStore is a mock implementation of store.ActivityStore
type MockActivityStore struct {
	mock.Mock
}

func (m *MockActivityStore) CreateActivity(ctx context.Context, activity *models.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockActivityStore) ListActivities(ctx context.Context, entityType *models.EntityType, pagination models.PaginationParams) ([]models.Activity, int, error) {
	args := m.Called(ctx, entityType, pagination)
	return args.Get(0).([]models.Activity), args.Int(1), args.Error(2)
}

// MockStatsStore is a mock implementation of store.StatsStore
type MockStatsStore struct {
	mock.Mock
}

func (m *MockStatsStore) GetDashboardStats(ctx context.Context, campaignID *int64) (*models.DashboardStats, error) {
	args := m.Called(ctx, campaignID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DashboardStats), args.Error(1)
}
