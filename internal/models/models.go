package models

import (
	"time"
)

type LeadStatus string

const (
	LeadStatusNew          LeadStatus = "New"
	LeadStatusContacted    LeadStatus = "Contacted"
	LeadStatusQualified    LeadStatus = "Qualified"
	LeadStatusConverted    LeadStatus = "Converted"
	LeadStatusUnresponsive LeadStatus = "Unresponsive"
	LeadStatusDisqualified LeadStatus = "Disqualified"
	LeadStatusArchived     LeadStatus = "Archived"
)

var LeadStatuses = []LeadStatus{
	LeadStatusNew,
	LeadStatusContacted,
	LeadStatusQualified,
	LeadStatusConverted,
	LeadStatusUnresponsive,
	LeadStatusDisqualified,
	LeadStatusArchived,
}

func (s LeadStatus) Valid() bool {
	for _, v := range LeadStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// LeadCampaignStatus tracks a lead's progression inside one campaign.
type LeadCampaignStatus string

const (
	LeadCampaignStatusNew               LeadCampaignStatus = "New"
	LeadCampaignStatusEngaged           LeadCampaignStatus = "Engaged"
	LeadCampaignStatusFollowUpScheduled LeadCampaignStatus = "FollowUp_Scheduled"
	LeadCampaignStatusContacted         LeadCampaignStatus = "Contacted"
	LeadCampaignStatusQualified         LeadCampaignStatus = "Qualified"
	LeadCampaignStatusConverted         LeadCampaignStatus = "Converted"
	LeadCampaignStatusUnresponsive      LeadCampaignStatus = "Unresponsive"
	LeadCampaignStatusDisqualified      LeadCampaignStatus = "Disqualified"
	LeadCampaignStatusReEngaged         LeadCampaignStatus = "Re_Engaged"
	LeadCampaignStatusOptedOut          LeadCampaignStatus = "Opted_Out"
)

var LeadCampaignStatuses = []LeadCampaignStatus{
	LeadCampaignStatusNew,
	LeadCampaignStatusEngaged,
	LeadCampaignStatusFollowUpScheduled,
	LeadCampaignStatusContacted,
	LeadCampaignStatusQualified,
	LeadCampaignStatusConverted,
	LeadCampaignStatusUnresponsive,
	LeadCampaignStatusDisqualified,
	LeadCampaignStatusReEngaged,
	LeadCampaignStatusOptedOut,
}

func (s LeadCampaignStatus) Valid() bool {
	for _, v := range LeadCampaignStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Lead struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     *string    `json:"phone,omitempty"`
	Status    LeadStatus `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`

	Campaigns []LeadCampaign `json:"campaigns,omitempty"`
	Groups    []Group        `json:"groups,omitempty"`
}

// LeadCampaign is the lead-campaign association row.
type LeadCampaign struct {
	CampaignID int64              `json:"campaignId"`
	LeadID     int64              `json:"leadId"`
	Status     LeadCampaignStatus `json:"status"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

// CampaignLead is a lead seen from a campaign, carrying its status there.
type CampaignLead struct {
	Lead
	CampaignStatus LeadCampaignStatus `json:"campaignStatus"`
}

type Campaign struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	Leads []CampaignLead `json:"leads,omitempty"`
}

type Group struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Leads []Lead `json:"leads,omitempty"`
}

// Patches: a nil field is left untouched. The Clear flags reset an
// optional column to null and win over a value in the same patch.

type CampaignPatch struct {
	Name        *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time

	ClearEndDate bool
}

func (p CampaignPatch) Apply(c *Campaign) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.StartDate != nil {
		c.StartDate = *p.StartDate
	}
	if p.ClearEndDate {
		c.EndDate = nil
	} else if p.EndDate != nil {
		end := *p.EndDate
		c.EndDate = &end
	}
}

type GroupPatch struct {
	Name        *string
	Description *string
}

func (p GroupPatch) Apply(g *Group) {
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.Description != nil {
		g.Description = *p.Description
	}
}

type LeadPatch struct {
	Name   *string
	Email  *string
	Phone  *string
	Status *LeadStatus

	ClearPhone bool
}

func (p LeadPatch) Apply(l *Lead) {
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.Email != nil {
		l.Email = *p.Email
	}
	if p.ClearPhone {
		l.Phone = nil
	} else if p.Phone != nil {
		phone := *p.Phone
		l.Phone = &phone
	}
	if p.Status != nil {
		l.Status = *p.Status
	}
}

type EntityType string

const (
	EntityTypeLead     EntityType = "lead"
	EntityTypeCampaign EntityType = "campaign"
	EntityTypeGroup    EntityType = "group"
)

// Activity is an audit record of a mutation.
type Activity struct {
	ID         int64                  `json:"id"`
	Action     string                 `json:"action"`
	EntityType EntityType             `json:"entityType"`
	EntityID   *int64                 `json:"entityId,omitempty"`
	Details    map[string]interface{} `json:"details"`
	CreatedAt  time.Time              `json:"createdAt"`
}

type DashboardStats struct {
	TotalLeads            int                        `json:"totalLeads"`
	TotalCampaigns        int                        `json:"totalCampaigns"`
	TotalGroups           int                        `json:"totalGroups"`
	LeadsByStatus         map[LeadStatus]int         `json:"leadsByStatus"`
	CampaignLeadsByStatus map[LeadCampaignStatus]int `json:"campaignLeadsByStatus"`
	RecentActivities      []Activity                 `json:"recentActivities"`
}
