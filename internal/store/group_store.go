package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"leadhub/internal/models"
)

type GroupStore interface {
	ListGroups(ctx context.Context, name string, pagination models.PaginationParams) ([]models.Group, int, error)
	CreateGroup(ctx context.Context, group *models.Group) error
	GetGroup(ctx context.Context, id int64) (*models.Group, error)
	UpdateGroup(ctx context.Context, group *models.Group) error
	DeleteGroup(ctx context.Context, id int64) (*models.Group, error)

	// AddLead and RemoveLead are idempotent on the link itself.
	AddLead(ctx context.Context, groupID, leadID int64) error
	RemoveLead(ctx context.Context, groupID, leadID int64) error
}

type PostgresGroupStore struct {
	DB *pgxpool.Pool
}

func NewPostgresGroupStore(db *pgxpool.Pool) *PostgresGroupStore {
	return &PostgresGroupStore{DB: db}
}

const groupColumns = `id, name, description, created_at, updated_at`

func (s *PostgresGroupStore) ListGroups(ctx context.Context, name string, pagination models.PaginationParams) ([]models.Group, int, error) {
	query := `SELECT ` + groupColumns + ` FROM groups`
	countQuery := `SELECT count(*) FROM groups`

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
		return nil, 0, fmt.Errorf("failed to get total count of groups: %w", err)
	}

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []models.Group
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, *g)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %w", err)
	}

	return groups, totalCount, nil
}

func (s *PostgresGroupStore) CreateGroup(ctx context.Context, group *models.Group) error {
	query := `
		INSERT INTO groups (name, description)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`
	err := s.DB.QueryRow(ctx, query, group.Name, group.Description).Scan(&group.ID, &group.CreatedAt, &group.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create group: %w", translateError(err))
	}
	return nil
}

// GetGroup returns the group with its member leads.
func (s *PostgresGroupStore) GetGroup(ctx context.Context, id int64) (*models.Group, error) {
	query := `SELECT ` + groupColumns + ` FROM groups WHERE id = $1`

	g, err := scanGroup(s.DB.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", translateError(err))
	}

	leadsQuery := `
		SELECT ` + leadColumns + `
		FROM group_leads gl
		JOIN leads l ON l.id = gl.lead_id
		WHERE gl.group_id = $1
		ORDER BY l.name ASC, l.id ASC
	`
	rows, err := s.DB.Query(ctx, leadsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load group leads: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan group lead: %w", err)
		}
		g.Leads = append(g.Leads, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return g, nil
}

func (s *PostgresGroupStore) UpdateGroup(ctx context.Context, group *models.Group) error {
	query := `
		UPDATE groups
		SET name = $1, description = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at
	`
	err := s.DB.QueryRow(ctx, query, group.Name, group.Description, group.ID).Scan(&group.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update group: %w", translateError(err))
	}
	return nil
}

func (s *PostgresGroupStore) DeleteGroup(ctx context.Context, id int64) (*models.Group, error) {
	query := `DELETE FROM groups WHERE id = $1 RETURNING ` + groupColumns

	g, err := scanGroup(s.DB.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to delete group: %w", translateError(err))
	}
	return g, nil
}

// AddLead links the lead to the group. An unknown group or lead surfaces as
// ErrReferenceMissing.
func (s *PostgresGroupStore) AddLead(ctx context.Context, groupID, leadID int64) error {
	query := `
		INSERT INTO group_leads (group_id, lead_id)
		VALUES ($1, $2)
		ON CONFLICT (group_id, lead_id) DO NOTHING
	`
	if _, err := s.DB.Exec(ctx, query, groupID, leadID); err != nil {
		return fmt.Errorf("failed to add lead to group: %w", translateError(err))
	}
	return nil
}

func (s *PostgresGroupStore) RemoveLead(ctx context.Context, groupID, leadID int64) error {
	query := `DELETE FROM group_leads WHERE group_id = $1 AND lead_id = $2`
	if _, err := s.DB.Exec(ctx, query, groupID, leadID); err != nil {
		return fmt.Errorf("failed to remove lead from group: %w", err)
	}
	return nil
}

func scanGroup(row pgx.Row) (*models.Group, error) {
	var g models.Group
	if err := row.Scan(&g.ID, &g.Name, &g.Description, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return nil, err
	}
	return &g, nil
}
