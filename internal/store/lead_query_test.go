package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"leadhub/internal/models"
)

func int64Ptr(v int64) *int64 { return &v }

func TestLeadFilterClause(t *testing.T) {
	tests := []struct {
		name         string
		filter       models.LeadFilter
		expectedSQL  string
		expectedArgs []interface{}
	}{
		{
			name:         "Unscoped",
			filter:       models.LeadFilter{},
			expectedSQL:  ` FROM leads l`,
			expectedArgs: []interface{}{},
		},
		{
			name:         "Campaign scope with status",
			filter:       models.LeadFilter{CampaignID: int64Ptr(3), Status: "Engaged"},
			expectedSQL:  ` FROM leads l JOIN campaign_leads cl ON cl.lead_id = l.id WHERE cl.campaign_id = $1 AND cl.status = $2`,
			expectedArgs: []interface{}{int64(3), "Engaged"},
		},
		{
			name:         "Group scope with status filters the lead",
			filter:       models.LeadFilter{GroupID: int64Ptr(4), Status: "Qualified"},
			expectedSQL:  ` FROM leads l JOIN group_leads gl ON gl.lead_id = l.id WHERE gl.group_id = $1 AND l.status = $2`,
			expectedArgs: []interface{}{int64(4), "Qualified"},
		},
		{
			name:         "Unscoped name and status",
			filter:       models.LeadFilter{Name: "ali", Status: "New"},
			expectedSQL:  ` FROM leads l WHERE l.status = $1 AND l.name ILIKE $2 ESCAPE '\'`,
			expectedArgs: []interface{}{"New", "%ali%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := leadFilterClause(tt.filter)
			assert.Equal(t, tt.expectedSQL, sql)
			assert.Equal(t, tt.expectedArgs, args)
		})
	}
}

func TestLeadFilterClause_EscapesLikePattern(t *testing.T) {
	_, args := leadFilterClause(models.LeadFilter{Name: `50%_off\`})
	assert.Equal(t, []interface{}{`%50\%\_off\\%`}, args)
}

func TestLeadOrderClause(t *testing.T) {
	assert.Equal(t, " ORDER BY l.name ASC, l.id ASC", leadOrderClause(models.SortByName, models.OrderAsc))
	assert.Equal(t, " ORDER BY l.created_at DESC, l.id DESC", leadOrderClause(models.SortByCreatedAt, models.OrderDesc))
	// unknown sort fields never reach the SQL text
	assert.Equal(t, " ORDER BY l.name ASC, l.id ASC", leadOrderClause("email; DROP TABLE leads", ""))
}

func TestBuildLeadQuery(t *testing.T) {
	q := models.LeadQuery{
		Filter: models.LeadFilter{CampaignID: int64Ptr(1), Name: "bob"},
		SortBy: models.SortByCreatedAt,
		Order:  models.OrderDesc,
		Limit:  10,
		Offset: 20,
	}

	sql, args := buildLeadQuery(q)
	assert.Equal(t,
		`SELECT `+leadColumns+` FROM leads l JOIN campaign_leads cl ON cl.lead_id = l.id`+
			` WHERE cl.campaign_id = $1 AND l.name ILIKE $2 ESCAPE '\'`+
			` ORDER BY l.created_at DESC, l.id DESC LIMIT $3 OFFSET $4`,
		sql)
	assert.Equal(t, []interface{}{int64(1), "%bob%", 10, 20}, args)

	countSQL, countArgs := buildLeadCountQuery(q.Filter)
	assert.Equal(t,
		`SELECT count(*) FROM leads l JOIN campaign_leads cl ON cl.lead_id = l.id`+
			` WHERE cl.campaign_id = $1 AND l.name ILIKE $2 ESCAPE '\'`,
		countSQL)
	assert.Equal(t, []interface{}{int64(1), "%bob%"}, countArgs)
}

func TestBuildLeadQuery_NoLimit(t *testing.T) {
	sql, args := buildLeadQuery(models.LeadQuery{})
	assert.NotContains(t, sql, "LIMIT")
	assert.Empty(t, args)
}

func TestTranslateError(t *testing.T) {
	assert.Nil(t, translateError(nil))
	assert.ErrorIs(t, translateError(pgx.ErrNoRows), ErrNotFound)
	assert.ErrorIs(t, translateError(fmt.Errorf("wrapped: %w", pgx.ErrNoRows)), ErrNotFound)

	dup := translateError(&pgconn.PgError{Code: pgUniqueViolation})
	assert.ErrorIs(t, dup, ErrDuplicate)
	var pgErr *pgconn.PgError
	assert.True(t, errors.As(dup, &pgErr))

	assert.ErrorIs(t, translateError(&pgconn.PgError{Code: pgForeignKeyViolation}), ErrReferenceMissing)

	other := errors.New("boom")
	assert.Equal(t, other, translateError(other))
}
