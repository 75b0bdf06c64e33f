package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"leadhub/internal/models"
)

type CampaignStore interface {
	ListCampaigns(ctx context.Context, name string, pagination models.PaginationParams) ([]models.Campaign, int, error)
	CreateCampaign(ctx context.Context, campaign *models.Campaign) error
	GetCampaign(ctx context.Context, id int64) (*models.Campaign, error)
	UpdateCampaign(ctx context.Context, campaign *models.Campaign) error
	DeleteCampaign(ctx context.Context, id int64) (*models.Campaign, error)

	// Association rows between leads and campaigns.
	AddLead(ctx context.Context, link *models.LeadCampaign) error
	UpdateLeadStatus(ctx context.Context, campaignID, leadID int64, status models.LeadCampaignStatus) error
	RemoveLead(ctx context.Context, campaignID, leadID int64) error
}

type PostgresCampaignStore struct {
	DB *pgxpool.Pool
}

func NewPostgresCampaignStore(db *pgxpool.Pool) *PostgresCampaignStore {
	return &PostgresCampaignStore{DB: db}
}

const campaignColumns = `id, name, description, start_date, end_date, created_at, updated_at`

func (s *PostgresCampaignStore) ListCampaigns(ctx context.Context, name string, pagination models.PaginationParams) ([]models.Campaign, int, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns`
	countQuery := `SELECT count(*) FROM campaigns`

	args := []interface{}{}
	if name != "" {
		query += ` WHERE name ILIKE $1 ESCAPE '\'`
		countQuery += ` WHERE name ILIKE $1 ESCAPE '\'`
		args = append(args, "%"+likeEscaper.Replace(name)+"%")
	}
	query += ` ORDER BY name ASC, id ASC`

	pagination = pagination.Normalize()
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, pagination.PageSize, pagination.Offset())

	var totalCount int
	err := s.DB.QueryRow(ctx, countQuery, args[:len(args)-2]...).Scan(&totalCount)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get total count of campaigns: %w", err)
	}

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list campaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []models.Campaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan campaign: %w", err)
		}
		campaigns = append(campaigns, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %w", err)
	}

	return campaigns, totalCount, nil
}

func (s *PostgresCampaignStore) CreateCampaign(ctx context.Context, campaign *models.Campaign) error {
	query := `
		INSERT INTO campaigns (name, description, start_date, end_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err := s.DB.QueryRow(ctx, query, campaign.Name, campaign.Description, campaign.StartDate, campaign.EndDate).
		Scan(&campaign.ID, &campaign.CreatedAt, &campaign.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create campaign: %w", translateError(err))
	}
	return nil
}

// GetCampaign returns the campaign with its leads and their campaign status.
func (s *PostgresCampaignStore) GetCampaign(ctx context.Context, id int64) (*models.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1`

	c, err := scanCampaign(s.DB.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign: %w", translateError(err))
	}

	leadsQuery := `
		SELECT ` + leadColumns + `, cl.status
		FROM campaign_leads cl
		JOIN leads l ON l.id = cl.lead_id
		WHERE cl.campaign_id = $1
		ORDER BY l.name ASC, l.id ASC
	`
	rows, err := s.DB.Query(ctx, leadsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load campaign leads: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var cl models.CampaignLead
		if err := rows.Scan(&cl.ID, &cl.Name, &cl.Email, &cl.Phone, &cl.Status, &cl.CreatedAt, &cl.UpdatedAt, &cl.CampaignStatus); err != nil {
			return nil, fmt.Errorf("failed to scan campaign lead: %w", err)
		}
		c.Leads = append(c.Leads, cl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return c, nil
}

func (s *PostgresCampaignStore) UpdateCampaign(ctx context.Context, campaign *models.Campaign) error {
	query := `
		UPDATE campaigns
		SET name = $1, description = $2, start_date = $3, end_date = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at
	`
	err := s.DB.QueryRow(ctx, query, campaign.Name, campaign.Description, campaign.StartDate, campaign.EndDate, campaign.ID).
		Scan(&campaign.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update campaign: %w", translateError(err))
	}
	return nil
}

// DeleteCampaign removes the campaign and returns the row as it was.
// Association rows go with it through ON DELETE CASCADE.
func (s *PostgresCampaignStore) DeleteCampaign(ctx context.Context, id int64) (*models.Campaign, error) {
	query := `DELETE FROM campaigns WHERE id = $1 RETURNING ` + campaignColumns

	c, err := scanCampaign(s.DB.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to delete campaign: %w", translateError(err))
	}
	return c, nil
}

func (s *PostgresCampaignStore) AddLead(ctx context.Context, link *models.LeadCampaign) error {
	query := `
		INSERT INTO campaign_leads (campaign_id, lead_id, status)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`
	err := s.DB.QueryRow(ctx, query, link.CampaignID, link.LeadID, link.Status).Scan(&link.CreatedAt, &link.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to add lead to campaign: %w", translateError(err))
	}
	return nil
}

func (s *PostgresCampaignStore) UpdateLeadStatus(ctx context.Context, campaignID, leadID int64, status models.LeadCampaignStatus) error {
	query := `
		UPDATE campaign_leads
		SET status = $1, updated_at = NOW()
		WHERE campaign_id = $2 AND lead_id = $3
	`
	tag, err := s.DB.Exec(ctx, query, status, campaignID, leadID)
	if err != nil {
		return fmt.Errorf("failed to update campaign lead status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign lead %d/%d: %w", campaignID, leadID, ErrNotFound)
	}
	return nil
}

func (s *PostgresCampaignStore) RemoveLead(ctx context.Context, campaignID, leadID int64) error {
	query := `DELETE FROM campaign_leads WHERE campaign_id = $1 AND lead_id = $2`
	tag, err := s.DB.Exec(ctx, query, campaignID, leadID)
	if err != nil {
		return fmt.Errorf("failed to remove lead from campaign: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign lead %d/%d: %w", campaignID, leadID, ErrNotFound)
	}
	return nil
}

func scanCampaign(row pgx.Row) (*models.Campaign, error) {
	var c models.Campaign
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.StartDate, &c.EndDate, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
