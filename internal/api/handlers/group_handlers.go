package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"leadhub/internal/config"
	"leadhub/internal/models"
	"leadhub/internal/service"
)

type listGroupsQuery struct {
	PageQuery
	Name string `form:"name" binding:"max=200"`
}

type createGroupRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description" binding:"max=2000"`
}

type updateGroupRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}

type groupLeadsQuery struct {
	LeadPageQuery
	Status string `form:"status" binding:"omitempty,leadstatus"`
}

type addGroupLeadRequest struct {
	LeadID int64 `json:"leadId" binding:"required,min=1"`
}

// ListGroupsHandler handles GET /groups
func ListGroupsHandler(groups *service.GroupService, pageCfg config.PaginationConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q listGroupsQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			fail(c, bindError(err))
			return
		}
		params, err := q.params(pageCfg)
		if err != nil {
			fail(c, err)
			return
		}

		page, err := groups.ListGroups(c.Request.Context(), q.Name, params)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// CreateGroupHandler handles POST /groups
func CreateGroupHandler(groups *service.GroupService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createGroupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, bindError(err))
			return
		}

		group, err := groups.CreateGroup(c.Request.Context(), &models.Group{
			Name:        req.Name,
			Description: req.Description,
		})
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, group)
	}
}

// GetGroupHandler handles GET /groups/:id
func GetGroupHandler(groups *service.GroupService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var uri idURI
		if err := c.ShouldBindUri(&uri); err != nil {
			fail(c, bindError(err))
			return
		}

		group, err := groups.GetGroup(c.Request.Context(), uri.ID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, group)
	}
}

// UpdateGroupHandler handles PUT /groups/:id
func UpdateGroupHandler(groups *service.GroupService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var uri idURI
		if err := c.ShouldBindUri(&uri); err != nil {
			fail(c, bindError(err))
			return
		}
		var req updateGroupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, bindError(err))
			return
		}

		group, err := groups.UpdateGroup(c.Request.Context(), uri.ID, models.GroupPatch{
			Name:        req.Name,
			Description: req.Description,
		})
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, group)
	}
}

// DeleteGroupHandler handles DELETE /groups/:id
func DeleteGroupHandler(groups *service.GroupService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var uri idURI
		if err := c.ShouldBindUri(&uri); err != nil {
			fail(c, bindError(err))
			return
		}

		deleted, err := groups.DeleteGroup(c.Request.Context(), uri.ID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, deleted)
	}
}

// ListGroupLeadsHandler handles GET /groups/:id/leads
func ListGroupLeadsHandler(groups *service.GroupService, pageCfg config.PaginationConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var uri idURI
		if err := c.ShouldBindUri(&uri); err != nil {
			fail(c, bindError(err))
			return
		}
		var q groupLeadsQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			fail(c, bindError(err))
			return
		}
		req, err := q.request(pageCfg, q.Status)
		if err != nil {
			fail(c, err)
			return
		}

		page, err := groups.GetLeads(c.Request.Context(), uri.ID, req)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// AddGroupLeadHandler handles POST /groups/:id/leads
func AddGroupLeadHandler(groups *service.GroupService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var uri idURI
		if err := c.ShouldBindUri(&uri); err != nil {
			fail(c, bindError(err))
			return
		}
		var req addGroupLeadRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, bindError(err))
			return
		}

		group, err := groups.AddLead(c.Request.Context(), uri.ID, req.LeadID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, group)
	}
}

// RemoveGroupLeadHandler handles DELETE /groups/:id/leads/:leadId
func RemoveGroupLeadHandler(groups *service.GroupService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var uri idLeadURI
		if err := c.ShouldBindUri(&uri); err != nil {
			fail(c, bindError(err))
			return
		}

		group, err := groups.RemoveLead(c.Request.Context(), uri.ID, uri.LeadID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, group)
	}
}
