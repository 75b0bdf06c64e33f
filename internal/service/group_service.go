package service

import (
	"context"

	"leadhub/internal/models"
	"leadhub/internal/store"
)

const msgGroupNotFound = "group not found"

type GroupService struct {
	groups     store.GroupStore
	leads      store.LeadStore
	activities store.ActivityStore
}

func NewGroupService(groups store.GroupStore, leads store.LeadStore, activities store.ActivityStore) *GroupService {
	return &GroupService{groups: groups, leads: leads, activities: activities}
}

func (s *GroupService) ListGroups(ctx context.Context, name string, params models.PaginationParams) (models.Page[models.Group], error) {
	params = params.Normalize()
	if !params.OffsetFits() {
		return models.Page[models.Group]{}, errPageOutOfRange(params)
	}
	groups, total, err := s.groups.ListGroups(ctx, name, params)
	if err != nil {
		return models.Page[models.Group]{}, err
	}
	return models.NewPage(groups, params, total), nil
}

func (s *GroupService) CreateGroup(ctx context.Context, group *models.Group) (*models.Group, error) {
	if err := s.groups.CreateGroup(ctx, group); err != nil {
		return nil, err
	}

	LogActivity(ctx, s.activities, activity("CREATE_GROUP", models.EntityTypeGroup, group.ID, map[string]interface{}{
		"name": group.Name,
	}))
	return group, nil
}

func (s *GroupService) GetGroup(ctx context.Context, id int64) (*models.Group, error) {
	group, err := s.groups.GetGroup(ctx, id)
	if err != nil {
		return nil, translate(err, msgGroupNotFound, "")
	}
	return group, nil
}

func (s *GroupService) UpdateGroup(ctx context.Context, id int64, patch models.GroupPatch) (*models.Group, error) {
	group, err := s.GetGroup(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(group)
	if err := s.groups.UpdateGroup(ctx, group); err != nil {
		return nil, translate(err, msgGroupNotFound, "")
	}

	LogActivity(ctx, s.activities, activity("UPDATE_GROUP", models.EntityTypeGroup, id, map[string]interface{}{
		"name": group.Name,
	}))
	return group, nil
}

func (s *GroupService) DeleteGroup(ctx context.Context, id int64) (*models.Group, error) {
	group, err := s.groups.DeleteGroup(ctx, id)
	if err != nil {
		return nil, translate(err, msgGroupNotFound, "")
	}

	LogActivity(ctx, s.activities, activity("DELETE_GROUP", models.EntityTypeGroup, id, map[string]interface{}{
		"name": group.Name,
	}))
	return group, nil
}

// GetLeads pages through the members of a group. Status filters on the
// lead's own status.
func (s *GroupService) GetLeads(ctx context.Context, groupID int64, req models.LeadPageRequest) (models.Page[models.Lead], error) {
	return PaginateLeads(ctx, s.leads, models.GroupScope(groupID), req)
}

// AddLead links a lead to a group and returns the group with its leads.
// Adding a lead that is already a member is a no-op.
func (s *GroupService) AddLead(ctx context.Context, groupID, leadID int64) (*models.Group, error) {
	if err := s.groups.AddLead(ctx, groupID, leadID); err != nil {
		return nil, translate(err, "group or lead not found", "")
	}

	group, err := s.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	LogActivity(ctx, s.activities, activity("ADD_GROUP_LEAD", models.EntityTypeGroup, groupID, map[string]interface{}{
		"leadId": leadID,
	}))
	return group, nil
}

// RemoveLead unlinks a lead from a group and returns the group with its
// leads. Removing a lead that is not a member is a no-op, but the group and
// the lead must both exist.
func (s *GroupService) RemoveLead(ctx context.Context, groupID, leadID int64) (*models.Group, error) {
	if _, err := s.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	if _, err := s.leads.GetLead(ctx, leadID); err != nil {
		return nil, translate(err, msgLeadNotFound, "")
	}

	if err := s.groups.RemoveLead(ctx, groupID, leadID); err != nil {
		return nil, err
	}

	group, err := s.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	LogActivity(ctx, s.activities, activity("REMOVE_GROUP_LEAD", models.EntityTypeGroup, groupID, map[string]interface{}{
		"leadId": leadID,
	}))
	return group, nil
}
