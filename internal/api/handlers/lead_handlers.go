package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"leadhub/internal/config"
	"leadhub/internal/models"
	"leadhub/internal/service"
)

type leadsQuery struct {
	LeadPageQuery
	Status string `form:"status" binding:"omitempty,leadstatus"`
}

type createLeadRequest struct {
	Name   string  `json:"name" binding:"required,max=200"`
	Email  string  `json:"email" binding:"required,email"`
	Phone  *string `json:"phone" binding:"omitempty,max=50"`
	Status string  `json:"status" binding:"omitempty,leadstatus"`
}

type updateLeadRequest struct {
	Name   *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Email  *string          `json:"email" binding:"omitempty,email"`
	Phone  Nullable[string] `json:"phone" binding:"omitempty,max=50"`
	Status *string          `json:"status" binding:"omitempty,leadstatus"`
}

func (r updateLeadRequest) patch() models.LeadPatch {
	p := models.LeadPatch{Name: r.Name, Email: r.Email}
	if r.Phone.Set {
		p.Phone = r.Phone.Value
		p.ClearPhone = r.Phone.Value == nil
	}
	if r.Status != nil {
		status := models.LeadStatus(*r.Status)
		p.Status = &status
	}
	return p
}

// ListLeadsHandler handles GET /leads
func ListLeadsHandler(leads *service.LeadService, pageCfg config.PaginationConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q leadsQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			fail(c, bindError(err))
			return
		}
		req, err := q.request(pageCfg, q.Status)
		if err != nil {
			fail(c, err)
			return
		}

		page, err := leads.ListLeads(c.Request.Context(), req)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// CreateLeadHandler handles POST /leads
func CreateLeadHandler(leads *service.LeadService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createLeadRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, bindError(err))
			return
		}

		lead, err := leads.CreateLead(c.Request.Context(), &models.Lead{
			Name:   req.Name,
			Email:  req.Email,
			Phone:  req.Phone,
			Status: models.LeadStatus(req.Status),
		})
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, lead)
	}
}

// GetLeadHandler handles GET /leads/:id
func GetLeadHandler(leads *service.LeadService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var uri idURI
		if err := c.ShouldBindUri(&uri); err != nil {
			fail(c, bindError(err))
			return
		}

		lead, err := leads.GetLead(c.Request.Context(), uri.ID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, lead)
	}
}

// UpdateLeadHandler handles PUT /leads/:id
func UpdateLeadHandler(leads *service.LeadService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var uri idURI
		if err := c.ShouldBindUri(&uri); err != nil {
			fail(c, bindError(err))
			return
		}
		var req updateLeadRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, bindError(err))
			return
		}

		lead, err := leads.UpdateLead(c.Request.Context(), uri.ID, req.patch())
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, lead)
	}
}

// DeleteLeadHandler handles DELETE /leads/:id
func DeleteLeadHandler(leads *service.LeadService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var uri idURI
		if err := c.ShouldBindUri(&uri); err != nil {
			fail(c, bindError(err))
			return
		}

		deleted, err := leads.DeleteLead(c.Request.Context(), uri.ID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, deleted)
	}
}
