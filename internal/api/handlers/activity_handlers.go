package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"leadhub/internal/config"
	"leadhub/internal/models"
	"leadhub/internal/store"
)

type activitiesQuery struct {
	PageQuery
	EntityType string `form:"entityType" binding:"omitempty,oneof=lead campaign group"`
}

// ListActivitiesHandler handles GET /activities
func ListActivitiesHandler(activityStore store.ActivityStore, pageCfg config.PaginationConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var q activitiesQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			fail(c, bindError(err))
			return
		}
		params, err := q.params(pageCfg)
		if err != nil {
			fail(c, err)
			return
		}
		params = params.Normalize()

		var entityType *models.EntityType
		if q.EntityType != "" {
			et := models.EntityType(q.EntityType)
			entityType = &et
		}

		activities, totalCount, err := activityStore.ListActivities(ctx, entityType, params)
		if err != nil {
			fail(c, err)
			return
		}

		c.JSON(http.StatusOK, models.NewPage(activities, params, totalCount))
	}
}
