package service

import (
	"context"

	"leadhub/internal/apperr"
	"leadhub/internal/models"
	"leadhub/internal/store"
)

const (
	msgCampaignNotFound     = "campaign not found"
	msgCampaignLeadNotFound = "lead is not part of this campaign"
)

type CampaignService struct {
	campaigns  store.CampaignStore
	leads      store.LeadStore
	activities store.ActivityStore
}

func NewCampaignService(campaigns store.CampaignStore, leads store.LeadStore, activities store.ActivityStore) *CampaignService {
	return &CampaignService{campaigns: campaigns, leads: leads, activities: activities}
}

func (s *CampaignService) ListCampaigns(ctx context.Context, name string, params models.PaginationParams) (models.Page[models.Campaign], error) {
	params = params.Normalize()
	if !params.OffsetFits() {
		return models.Page[models.Campaign]{}, errPageOutOfRange(params)
	}
	campaigns, total, err := s.campaigns.ListCampaigns(ctx, name, params)
	if err != nil {
		return models.Page[models.Campaign]{}, err
	}
	return models.NewPage(campaigns, params, total), nil
}

func (s *CampaignService) CreateCampaign(ctx context.Context, campaign *models.Campaign) (*models.Campaign, error) {
	if err := validateCampaignDates(campaign); err != nil {
		return nil, err
	}
	if err := s.campaigns.CreateCampaign(ctx, campaign); err != nil {
		return nil, err
	}

	LogActivity(ctx, s.activities, activity("CREATE_CAMPAIGN", models.EntityTypeCampaign, campaign.ID, map[string]interface{}{
		"name": campaign.Name,
	}))
	return campaign, nil
}

// GetCampaign returns the campaign with its leads loaded.
func (s *CampaignService) GetCampaign(ctx context.Context, id int64) (*models.Campaign, error) {
	campaign, err := s.campaigns.GetCampaign(ctx, id)
	if err != nil {
		return nil, translate(err, msgCampaignNotFound, "")
	}
	return campaign, nil
}

func (s *CampaignService) UpdateCampaign(ctx context.Context, id int64, patch models.CampaignPatch) (*models.Campaign, error) {
	campaign, err := s.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(campaign)
	if err := validateCampaignDates(campaign); err != nil {
		return nil, err
	}

	if err := s.campaigns.UpdateCampaign(ctx, campaign); err != nil {
		return nil, translate(err, msgCampaignNotFound, "")
	}

	LogActivity(ctx, s.activities, activity("UPDATE_CAMPAIGN", models.EntityTypeCampaign, id, map[string]interface{}{
		"name": campaign.Name,
	}))
	return campaign, nil
}

// DeleteCampaign removes the campaign and returns its prior state.
func (s *CampaignService) DeleteCampaign(ctx context.Context, id int64) (*models.Campaign, error) {
	campaign, err := s.campaigns.DeleteCampaign(ctx, id)
	if err != nil {
		return nil, translate(err, msgCampaignNotFound, "")
	}

	LogActivity(ctx, s.activities, activity("DELETE_CAMPAIGN", models.EntityTypeCampaign, id, map[string]interface{}{
		"name": campaign.Name,
	}))
	return campaign, nil
}

// GetLeads pages through the leads of a campaign. Status filters on the
// lead's status within the campaign. An unknown campaign yields an empty page.
func (s *CampaignService) GetLeads(ctx context.Context, campaignID int64, req models.LeadPageRequest) (models.Page[models.Lead], error) {
	return PaginateLeads(ctx, s.leads, models.CampaignScope(campaignID), req)
}

// AddLead links a lead to a campaign. An empty status means New.
func (s *CampaignService) AddLead(ctx context.Context, campaignID, leadID int64, status models.LeadCampaignStatus) (*models.LeadCampaign, error) {
	if status == "" {
		status = models.LeadCampaignStatusNew
	}
	if !status.Valid() {
		return nil, apperr.Validation("invalid campaign status").WithDetails(map[string]interface{}{"status": status})
	}

	link := &models.LeadCampaign{CampaignID: campaignID, LeadID: leadID, Status: status}
	if err := s.campaigns.AddLead(ctx, link); err != nil {
		return nil, translate(err, "campaign or lead not found", "lead is already part of this campaign")
	}

	LogActivity(ctx, s.activities, activity("ADD_CAMPAIGN_LEAD", models.EntityTypeCampaign, campaignID, map[string]interface{}{
		"leadId": leadID,
		"status": status,
	}))
	return link, nil
}

// UpdateLeadStatus changes the status of an existing association. A missing
// association is reported as not found.
func (s *CampaignService) UpdateLeadStatus(ctx context.Context, campaignID, leadID int64, status models.LeadCampaignStatus) error {
	if !status.Valid() {
		return apperr.Validation("invalid campaign status").WithDetails(map[string]interface{}{"status": status})
	}

	if err := s.campaigns.UpdateLeadStatus(ctx, campaignID, leadID, status); err != nil {
		return translate(err, msgCampaignLeadNotFound, "")
	}

	LogActivity(ctx, s.activities, activity("UPDATE_CAMPAIGN_LEAD_STATUS", models.EntityTypeCampaign, campaignID, map[string]interface{}{
		"leadId": leadID,
		"status": status,
	}))
	return nil
}

func (s *CampaignService) RemoveLead(ctx context.Context, campaignID, leadID int64) error {
	if err := s.campaigns.RemoveLead(ctx, campaignID, leadID); err != nil {
		return translate(err, msgCampaignLeadNotFound, "")
	}

	LogActivity(ctx, s.activities, activity("REMOVE_CAMPAIGN_LEAD", models.EntityTypeCampaign, campaignID, map[string]interface{}{
		"leadId": leadID,
	}))
	return nil
}

func validateCampaignDates(c *models.Campaign) error {
	if c.EndDate != nil && c.EndDate.Before(c.StartDate) {
		return apperr.Validation("endDate must not be before startDate")
	}
	return nil
}
