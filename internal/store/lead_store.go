package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"leadhub/internal/models"
)

type LeadStore interface {
	CountLeads(ctx context.Context, filter models.LeadFilter) (int, error)
	FindLeads(ctx context.Context, query models.LeadQuery) ([]models.Lead, error)
	CreateLead(ctx context.Context, lead *models.Lead) error
	GetLead(ctx context.Context, id int64) (*models.Lead, error)
	UpdateLead(ctx context.Context, lead *models.Lead) error
	DeleteLead(ctx context.Context, id int64) (*models.Lead, error)
}

type PostgresLeadStore struct {
	DB *pgxpool.Pool
}

func NewPostgresLeadStore(db *pgxpool.Pool) *PostgresLeadStore {
	return &PostgresLeadStore{DB: db}
}

const leadColumns = `l.id, l.name, l.email, l.phone, l.status, l.created_at, l.updated_at`

var leadSortColumns = map[models.SortField]string{
	models.SortByName:      "l.name",
	models.SortByCreatedAt: "l.created_at",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// leadFilterClause renders the FROM and WHERE parts shared by CountLeads and
// FindLeads, so both queries always see the same predicate.
func leadFilterClause(filter models.LeadFilter) (string, []interface{}) {
	from := ` FROM leads l`
	where := []string{}
	args := []interface{}{}

	if filter.CampaignID != nil {
		from += ` JOIN campaign_leads cl ON cl.lead_id = l.id`
		args = append(args, *filter.CampaignID)
		where = append(where, fmt.Sprintf("cl.campaign_id = $%d", len(args)))
	}
	if filter.GroupID != nil {
		from += ` JOIN group_leads gl ON gl.lead_id = l.id`
		args = append(args, *filter.GroupID)
		where = append(where, fmt.Sprintf("gl.group_id = $%d", len(args)))
	}

	if filter.Status != "" {
		args = append(args, filter.Status)
		if filter.CampaignID != nil {
			where = append(where, fmt.Sprintf("cl.status = $%d", len(args)))
		} else {
			where = append(where, fmt.Sprintf("l.status = $%d", len(args)))
		}
	}

	if filter.Name != "" {
		args = append(args, "%"+likeEscaper.Replace(filter.Name)+"%")
		where = append(where, fmt.Sprintf(`l.name ILIKE $%d ESCAPE '\'`, len(args)))
	}

	if len(where) > 0 {
		from += ` WHERE ` + strings.Join(where, " AND ")
	}
	return from, args
}

// leadOrderClause only ever emits whitelisted columns. The id tie-breaker
// keeps pages stable when sort values repeat.
func leadOrderClause(sortBy models.SortField, order models.SortOrder) string {
	column, ok := leadSortColumns[sortBy]
	if !ok {
		column = leadSortColumns[models.SortByName]
	}
	direction := "ASC"
	if order == models.OrderDesc {
		direction = "DESC"
	}
	return fmt.Sprintf(" ORDER BY %s %s, l.id %s", column, direction, direction)
}

func buildLeadQuery(q models.LeadQuery) (string, []interface{}) {
	from, args := leadFilterClause(q.Filter)
	query := `SELECT ` + leadColumns + from + leadOrderClause(q.SortBy, q.Order)
	if q.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, q.Limit, q.Offset)
	}
	return query, args
}

func buildLeadCountQuery(filter models.LeadFilter) (string, []interface{}) {
	from, args := leadFilterClause(filter)
	return `SELECT count(*)` + from, args
}

func (s *PostgresLeadStore) CountLeads(ctx context.Context, filter models.LeadFilter) (int, error) {
	query, args := buildLeadCountQuery(filter)

	var total int
	if err := s.DB.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count leads: %w", err)
	}
	return total, nil
}

func (s *PostgresLeadStore) FindLeads(ctx context.Context, q models.LeadQuery) ([]models.Lead, error) {
	query, args := buildLeadQuery(q)

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find leads: %w", err)
	}
	defer rows.Close()

	var leads []models.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		leads = append(leads, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	if err := s.attachIncludes(ctx, leads, q.Include); err != nil {
		return nil, err
	}
	return leads, nil
}

func (s *PostgresLeadStore) CreateLead(ctx context.Context, lead *models.Lead) error {
	query := `
		INSERT INTO leads (name, email, phone, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err := s.DB.QueryRow(ctx, query, lead.Name, lead.Email, lead.Phone, lead.Status).Scan(&lead.ID, &lead.CreatedAt, &lead.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create lead: %w", translateError(err))
	}
	return nil
}

func (s *PostgresLeadStore) GetLead(ctx context.Context, id int64) (*models.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads l WHERE l.id = $1`

	l, err := scanLead(s.DB.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get lead: %w", translateError(err))
	}

	leads := []models.Lead{*l}
	if err := s.attachIncludes(ctx, leads, models.LeadInclude{Campaigns: true, Groups: true}); err != nil {
		return nil, err
	}
	return &leads[0], nil
}

func (s *PostgresLeadStore) UpdateLead(ctx context.Context, lead *models.Lead) error {
	query := `
		UPDATE leads
		SET name = $1, email = $2, phone = $3, status = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at
	`
	err := s.DB.QueryRow(ctx, query, lead.Name, lead.Email, lead.Phone, lead.Status, lead.ID).Scan(&lead.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update lead: %w", translateError(err))
	}
	return nil
}

func (s *PostgresLeadStore) DeleteLead(ctx context.Context, id int64) (*models.Lead, error) {
	query := `DELETE FROM leads l WHERE l.id = $1 RETURNING ` + leadColumns

	l, err := scanLead(s.DB.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to delete lead: %w", translateError(err))
	}
	return l, nil
}

func scanLead(row pgx.Row) (*models.Lead, error) {
	var l models.Lead
	if err := row.Scan(&l.ID, &l.Name, &l.Email, &l.Phone, &l.Status, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *PostgresLeadStore) attachIncludes(ctx context.Context, leads []models.Lead, include models.LeadInclude) error {
	if len(leads) == 0 || (!include.Campaigns && !include.Groups) {
		return nil
	}

	ids := make([]int64, len(leads))
	for i := range leads {
		ids[i] = leads[i].ID
	}

	if include.Campaigns {
		byLead, err := s.campaignLinks(ctx, ids)
		if err != nil {
			return err
		}
		for i := range leads {
			leads[i].Campaigns = byLead[leads[i].ID]
		}
	}

	if include.Groups {
		byLead, err := s.groupLinks(ctx, ids)
		if err != nil {
			return err
		}
		for i := range leads {
			leads[i].Groups = byLead[leads[i].ID]
		}
	}
	return nil
}

func (s *PostgresLeadStore) campaignLinks(ctx context.Context, leadIDs []int64) (map[int64][]models.LeadCampaign, error) {
	query := `
		SELECT campaign_id, lead_id, status, created_at, updated_at
		FROM campaign_leads
		WHERE lead_id = ANY($1)
		ORDER BY campaign_id
	`
	rows, err := s.DB.Query(ctx, query, leadIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load lead campaigns: %w", err)
	}
	defer rows.Close()

	byLead := make(map[int64][]models.LeadCampaign)
	for rows.Next() {
		var lc models.LeadCampaign
		if err := rows.Scan(&lc.CampaignID, &lc.LeadID, &lc.Status, &lc.CreatedAt, &lc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan lead campaign: %w", err)
		}
		byLead[lc.LeadID] = append(byLead[lc.LeadID], lc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return byLead, nil
}

func (s *PostgresLeadStore) groupLinks(ctx context.Context, leadIDs []int64) (map[int64][]models.Group, error) {
	query := `
		SELECT gl.lead_id, g.id, g.name, g.description, g.created_at, g.updated_at
		FROM group_leads gl
		JOIN groups g ON g.id = gl.group_id
		WHERE gl.lead_id = ANY($1)
		ORDER BY g.name, g.id
	`
	rows, err := s.DB.Query(ctx, query, leadIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load lead groups: %w", err)
	}
	defer rows.Close()

	byLead := make(map[int64][]models.Group)
	for rows.Next() {
		var leadID int64
		var g models.Group
		if err := rows.Scan(&leadID, &g.ID, &g.Name, &g.Description, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan lead group: %w", err)
		}
		byLead[leadID] = append(byLead[leadID], g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return byLead, nil
}
