package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"leadhub/internal/models"
)

type StatsStore interface {
	GetDashboardStats(ctx context.Context, campaignID *int64) (*models.DashboardStats, error)
}

type PostgresStatsStore struct {
	DB *pgxpool.Pool
}

func NewPostgresStatsStore(db *pgxpool.Pool) *PostgresStatsStore {
	return &PostgresStatsStore{DB: db}
}

const recentActivityLimit = 5

// GetDashboardStats counts every entity. When campaignID is set the campaign
// status breakdown is restricted to that campaign.
func (s *PostgresStatsStore) GetDashboardStats(ctx context.Context, campaignID *int64) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{
		LeadsByStatus:         map[models.LeadStatus]int{},
		CampaignLeadsByStatus: map[models.LeadCampaignStatus]int{},
		RecentActivities:      []models.Activity{},
	}

	// 1. Totals
	totalsQuery := `
		SELECT
			(SELECT count(*) FROM leads),
			(SELECT count(*) FROM campaigns),
			(SELECT count(*) FROM groups)
	`
	if err := s.DB.QueryRow(ctx, totalsQuery).Scan(&stats.TotalLeads, &stats.TotalCampaigns, &stats.TotalGroups); err != nil {
		return nil, fmt.Errorf("failed to count totals: %w", err)
	}

	// 2. Leads by their own status
	rows, err := s.DB.Query(ctx, `SELECT status, count(*) FROM leads GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count leads by status: %w", err)
	}
	for rows.Next() {
		var status models.LeadStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan lead status count: %w", err)
		}
		stats.LeadsByStatus[status] = n
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	// 3. Campaign associations by status
	campaignQuery := `SELECT status, count(*) FROM campaign_leads`
	campaignArgs := []interface{}{}
	if campaignID != nil {
		campaignQuery += ` WHERE campaign_id = $1`
		campaignArgs = append(campaignArgs, *campaignID)
	}
	campaignQuery += ` GROUP BY status`

	rows, err = s.DB.Query(ctx, campaignQuery, campaignArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to count campaign leads by status: %w", err)
	}
	for rows.Next() {
		var status models.LeadCampaignStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan campaign status count: %w", err)
		}
		stats.CampaignLeadsByStatus[status] = n
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	// 4. Recent activity
	activityQuery := `
		SELECT id, action, entity_type, entity_id, details, created_at
		FROM activities
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`
	rows, err = s.DB.Query(ctx, activityQuery, recentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent activities: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a models.Activity
		var detailsJSON []byte
		if err := rows.Scan(&a.ID, &a.Action, &a.EntityType, &a.EntityID, &detailsJSON, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recent activity: %w", err)
		}
		if err := json.Unmarshal(detailsJSON, &a.Details); err != nil {
			return nil, fmt.Errorf("failed to unmarshal details: %w", err)
		}
		stats.RecentActivities = append(stats.RecentActivities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return stats, nil
}
