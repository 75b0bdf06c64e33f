package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"leadhub/internal/config"
	"leadhub/internal/models"
	"leadhub/internal/service"
)

type campaignLeadsQuery struct {
	LeadPageQuery
	Status string `form:"status" binding:"omitempty,campaignstatus"`
}

type addCampaignLeadRequest struct {
	LeadID int64  `json:"leadId" binding:"required,min=1"`
	Status string `json:"status" binding:"omitempty,campaignstatus"`
}

type updateCampaignLeadStatusRequest struct {
	Status string `json:"status" binding:"required,campaignstatus"`
}

// ListCampaignLeadsHandler handles GET /campaigns/:id/leads
func ListCampaignLeadsHandler(campaigns *service.CampaignService, pageCfg config.PaginationConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var uri idURI
		if err := c.ShouldBindUri(&uri); err != nil {
			fail(c, bindError(err))
			return
		}
		var q campaignLeadsQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			fail(c, bindError(err))
			return
		}
		req, err := q.request(pageCfg, q.Status)
		if err != nil {
			fail(c, err)
			return
		}

		page, err := campaigns.GetLeads(c.Request.Context(), uri.ID, req)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// AddCampaignLeadHandler handles POST /campaigns/:id/leads
func AddCampaignLeadHandler(campaigns *service.CampaignService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var uri idURI
		if err := c.ShouldBindUri(&uri); err != nil {
			fail(c, bindError(err))
			return
		}
		var req addCampaignLeadRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, bindError(err))
			return
		}

		if _, err := campaigns.AddLead(c.Request.Context(), uri.ID, req.LeadID, models.LeadCampaignStatus(req.Status)); err != nil {
			fail(c, err)
			return
		}
		c.Status(http.StatusCreated)
	}
}

// UpdateCampaignLeadStatusHandler handles PUT /campaigns/:id/leads/:leadId
func UpdateCampaignLeadStatusHandler(campaigns *service.CampaignService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var uri idLeadURI
		if err := c.ShouldBindUri(&uri); err != nil {
			fail(c, bindError(err))
			return
		}
		var req updateCampaignLeadStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, bindError(err))
			return
		}

		if err := campaigns.UpdateLeadStatus(c.Request.Context(), uri.ID, uri.LeadID, models.LeadCampaignStatus(req.Status)); err != nil {
			fail(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// RemoveCampaignLeadHandler handles DELETE /campaigns/:id/leads/:leadId
func RemoveCampaignLeadHandler(campaigns *service.CampaignService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var uri idLeadURI
		if err := c.ShouldBindUri(&uri); err != nil {
			fail(c, bindError(err))
			return
		}

		if err := campaigns.RemoveLead(c.Request.Context(), uri.ID, uri.LeadID); err != nil {
			fail(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
