package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"leadhub/internal/store"
)

type statsQuery struct {
	CampaignID *int64 `form:"campaignId" binding:"omitempty,min=1"`
}

// GetDashboardStatsHandler handles GET /stats
func GetDashboardStatsHandler(statsStore store.StatsStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var q statsQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			fail(c, bindError(err))
			return
		}

		stats, err := statsStore.GetDashboardStats(ctx, q.CampaignID)
		if err != nil {
			fail(c, err)
			return
		}

		c.JSON(http.StatusOK, stats)
	}
}
