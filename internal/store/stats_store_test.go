package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadhub/internal/models"
)

func TestActivityAndDashboardStats(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()

	statsStore := NewPostgresStatsStore(pool)
	activityStore := NewPostgresActivityStore(pool)
	leads := NewPostgresLeadStore(pool)
	campaigns := NewPostgresCampaignStore(pool)
	groups := NewPostgresGroupStore(pool)

	// Setup Data
	a := createLead(t, leads, "A", "a@example.com", models.LeadStatusNew)
	b := createLead(t, leads, "B", "b@example.com", models.LeadStatusNew)
	createLead(t, leads, "C", "c@example.com", models.LeadStatusQualified)

	c1 := &models.Campaign{Name: "C1", StartDate: time.Now()}
	require.NoError(t, campaigns.CreateCampaign(ctx, c1))
	c2 := &models.Campaign{Name: "C2", StartDate: time.Now()}
	require.NoError(t, campaigns.CreateCampaign(ctx, c2))
	require.NoError(t, groups.CreateGroup(ctx, &models.Group{Name: "G1"}))

	require.NoError(t, campaigns.AddLead(ctx, &models.LeadCampaign{CampaignID: c1.ID, LeadID: a.ID, Status: models.LeadCampaignStatusEngaged}))
	require.NoError(t, campaigns.AddLead(ctx, &models.LeadCampaign{CampaignID: c1.ID, LeadID: b.ID, Status: models.LeadCampaignStatusNew}))
	require.NoError(t, campaigns.AddLead(ctx, &models.LeadCampaign{CampaignID: c2.ID, LeadID: a.ID, Status: models.LeadCampaignStatusEngaged}))

	for i := 0; i < 7; i++ {
		entityType := models.EntityTypeLead
		if i%2 == 1 {
			entityType = models.EntityTypeCampaign
		}
		id := int64(i)
		require.NoError(t, activityStore.CreateActivity(ctx, &models.Activity{
			Action:     "TEST",
			EntityType: entityType,
			EntityID:   &id,
			Details:    map[string]interface{}{"seq": i},
		}))
	}

	t.Run("List activities", func(t *testing.T) {
		list, total, err := activityStore.ListActivities(ctx, nil, models.PaginationParams{Page: 1, PageSize: 5})
		require.NoError(t, err)
		assert.Equal(t, 7, total)
		assert.Len(t, list, 5)
		// newest first; JSON numbers decode as float64
		assert.Equal(t, float64(6), list[0].Details["seq"])

		campaignType := models.EntityTypeCampaign
		_, total, err = activityStore.ListActivities(ctx, &campaignType, models.PaginationParams{Page: 1, PageSize: 5})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
	})

	t.Run("Global stats", func(t *testing.T) {
		stats, err := statsStore.GetDashboardStats(ctx, nil)
		require.NoError(t, err)

		assert.Equal(t, 3, stats.TotalLeads)
		assert.Equal(t, 2, stats.TotalCampaigns)
		assert.Equal(t, 1, stats.TotalGroups)
		assert.Equal(t, 2, stats.LeadsByStatus[models.LeadStatusNew])
		assert.Equal(t, 1, stats.LeadsByStatus[models.LeadStatusQualified])
		assert.Equal(t, 2, stats.CampaignLeadsByStatus[models.LeadCampaignStatusEngaged])
		assert.Equal(t, 1, stats.CampaignLeadsByStatus[models.LeadCampaignStatusNew])
		assert.Len(t, stats.RecentActivities, 5)
	})

	t.Run("Stats for one campaign", func(t *testing.T) {
		stats, err := statsStore.GetDashboardStats(ctx, &c2.ID)
		require.NoError(t, err)

		assert.Equal(t, 3, stats.TotalLeads)
		assert.Equal(t, 1, stats.CampaignLeadsByStatus[models.LeadCampaignStatusEngaged])
		assert.Zero(t, stats.CampaignLeadsByStatus[models.LeadCampaignStatusNew])
	})
}
