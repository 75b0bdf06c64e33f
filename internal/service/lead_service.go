package service

import (
	"context"

	"leadhub/internal/apperr"
	"leadhub/internal/models"
	"leadhub/internal/store"
)

const (
	msgLeadNotFound   = "lead not found"
	msgLeadEmailTaken = "a lead with this email already exists"
)

type LeadService struct {
	leads      store.LeadStore
	activities store.ActivityStore
}

func NewLeadService(leads store.LeadStore, activities store.ActivityStore) *LeadService {
	return &LeadService{leads: leads, activities: activities}
}

// ListLeads pages through every lead; Status filters on the lead's own status.
func (s *LeadService) ListLeads(ctx context.Context, req models.LeadPageRequest) (models.Page[models.Lead], error) {
	return PaginateLeads(ctx, s.leads, models.LeadScope{}, req)
}

func (s *LeadService) CreateLead(ctx context.Context, lead *models.Lead) (*models.Lead, error) {
	if lead.Status == "" {
		lead.Status = models.LeadStatusNew
	}
	if !lead.Status.Valid() {
		return nil, apperr.Validation("invalid lead status").WithDetails(map[string]interface{}{"status": lead.Status})
	}

	if err := s.leads.CreateLead(ctx, lead); err != nil {
		return nil, translate(err, msgLeadNotFound, msgLeadEmailTaken)
	}

	LogActivity(ctx, s.activities, activity("CREATE_LEAD", models.EntityTypeLead, lead.ID, map[string]interface{}{
		"name": lead.Name,
	}))
	return lead, nil
}

// GetLead returns the lead with its campaigns and groups.
func (s *LeadService) GetLead(ctx context.Context, id int64) (*models.Lead, error) {
	lead, err := s.leads.GetLead(ctx, id)
	if err != nil {
		return nil, translate(err, msgLeadNotFound, "")
	}
	return lead, nil
}

func (s *LeadService) UpdateLead(ctx context.Context, id int64, patch models.LeadPatch) (*models.Lead, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, apperr.Validation("invalid lead status").WithDetails(map[string]interface{}{"status": *patch.Status})
	}

	lead, err := s.GetLead(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(lead)
	if err := s.leads.UpdateLead(ctx, lead); err != nil {
		return nil, translate(err, msgLeadNotFound, msgLeadEmailTaken)
	}

	LogActivity(ctx, s.activities, activity("UPDATE_LEAD", models.EntityTypeLead, id, map[string]interface{}{
		"name":   lead.Name,
		"status": lead.Status,
	}))
	return lead, nil
}

// DeleteLead removes the lead and its campaign and group links.
func (s *LeadService) DeleteLead(ctx context.Context, id int64) (*models.Lead, error) {
	lead, err := s.leads.DeleteLead(ctx, id)
	if err != nil {
		return nil, translate(err, msgLeadNotFound, "")
	}

	LogActivity(ctx, s.activities, activity("DELETE_LEAD", models.EntityTypeLead, id, map[string]interface{}{
		"name": lead.Name,
	}))
	return lead, nil
}
