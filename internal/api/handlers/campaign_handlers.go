package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"leadhub/internal/config"
	"leadhub/internal/models"
	"leadhub/internal/service"
)

type listCampaignsQuery struct {
	PageQuery
	Name string `form:"name" binding:"max=200"`
}

type createCampaignRequest struct {
	Name        string     `json:"name" binding:"required,max=200"`
	Description string     `json:"description" binding:"max=2000"`
	StartDate   time.Time  `json:"startDate" binding:"required"`
	EndDate     *time.Time `json:"endDate"`
}

type updateCampaignRequest struct {
	Name        *string             `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string             `json:"description" binding:"omitempty,max=2000"`
	StartDate   *time.Time          `json:"startDate"`
	EndDate     Nullable[time.Time] `json:"endDate"`
}

func (r updateCampaignRequest) patch() models.CampaignPatch {
	return models.CampaignPatch{
		Name:         r.Name,
		Description:  r.Description,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate.Value,
		ClearEndDate: r.EndDate.Set && r.EndDate.Value == nil,
	}
}

// ListCampaignsHandler handles GET /campaigns
func ListCampaignsHandler(campaigns *service.CampaignService, pageCfg config.PaginationConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q listCampaignsQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			fail(c, bindError(err))
			return
		}
		params, err := q.params(pageCfg)
		if err != nil {
			fail(c, err)
			return
		}

		page, err := campaigns.ListCampaigns(c.Request.Context(), q.Name, params)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// CreateCampaignHandler handles POST /campaigns
func CreateCampaignHandler(campaigns *service.CampaignService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createCampaignRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, bindError(err))
			return
		}

		campaign, err := campaigns.CreateCampaign(c.Request.Context(), &models.Campaign{
			Name:        req.Name,
			Description: req.Description,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
		})
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, campaign)
	}
}

// GetCampaignHandler handles GET /campaigns/:id
func GetCampaignHandler(campaigns *service.CampaignService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var uri idURI
		if err := c.ShouldBindUri(&uri); err != nil {
			fail(c, bindError(err))
			return
		}

		campaign, err := campaigns.GetCampaign(c.Request.Context(), uri.ID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, campaign)
	}
}

// UpdateCampaignHandler handles PUT /campaigns/:id
func UpdateCampaignHandler(campaigns *service.CampaignService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var uri idURI
		if err := c.ShouldBindUri(&uri); err != nil {
			fail(c, bindError(err))
			return
		}
		var req updateCampaignRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, bindError(err))
			return
		}

		campaign, err := campaigns.UpdateCampaign(c.Request.Context(), uri.ID, req.patch())
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, campaign)
	}
}

// DeleteCampaignHandler handles DELETE /campaigns/:id
func DeleteCampaignHandler(campaigns *service.CampaignService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var uri idURI
		if err := c.ShouldBindUri(&uri); err != nil {
			fail(c, bindError(err))
			return
		}

		deleted, err := campaigns.DeleteCampaign(c.Request.Context(), uri.ID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deletedCampaign": deleted})
	}
}
