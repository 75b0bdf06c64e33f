package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"leadhub/internal/models"
)

type ActivityStore interface {
	CreateActivity(ctx context.Context, activity *models.Activity) error
	ListActivities(ctx context.Context, entityType *models.EntityType, pagination models.PaginationParams) ([]models.Activity, int, error)
}

type PostgresActivityStore struct {
	DB *pgxpool.Pool
}

func NewPostgresActivityStore(db *pgxpool.Pool) *PostgresActivityStore {
	return &PostgresActivityStore{DB: db}
}

func (s *PostgresActivityStore) CreateActivity(ctx context.Context, activity *models.Activity) error {
	query := `
		INSERT INTO activities (action, entity_type, entity_id, details)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	details := activity.Details
	if details == nil {
		details = map[string]interface{}{}
	}
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("failed to marshal details: %w", err)
	}

	return s.DB.QueryRow(
		ctx,
		query,
		activity.Action,
		activity.EntityType,
		activity.EntityID,
		detailsJSON,
	).Scan(&activity.ID, &activity.CreatedAt)
}

func (s *PostgresActivityStore) ListActivities(ctx context.Context, entityType *models.EntityType, pagination models.PaginationParams) ([]models.Activity, int, error) {
	query := `
		SELECT id, action, entity_type, entity_id, details, created_at
		FROM activities
	`
	countQuery := `SELECT count(*) FROM activities`
	var args []interface{}
	if entityType != nil {
		query += ` WHERE entity_type = $1`
		countQuery += ` WHERE entity_type = $1`
		args = append(args, *entityType)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	pagination = pagination.Normalize()
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, pagination.PageSize, pagination.Offset())

	var totalCount int
	err := s.DB.QueryRow(ctx, countQuery, args[:len(args)-2]...).Scan(&totalCount)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get total count of activities: %w", err)
	}

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	var activities []models.Activity
	for rows.Next() {
		var a models.Activity
		var detailsJSON []byte
		if err := rows.Scan(
			&a.ID,
			&a.Action,
			&a.EntityType,
			&a.EntityID,
			&detailsJSON,
			&a.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan activity: %w", err)
		}

		if err := json.Unmarshal(detailsJSON, &a.Details); err != nil {
			return nil, 0, fmt.Errorf("failed to unmarshal details: %w", err)
		}

		activities = append(activities, a)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %w", err)
	}

	return activities, totalCount, nil
}
