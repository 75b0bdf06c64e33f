package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"leadhub/internal/api/handlers"
	"leadhub/internal/api/middleware"
	"leadhub/internal/config"
	"leadhub/internal/service"
	"leadhub/internal/store"
)

type Server struct {
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config

	Campaigns     *service.CampaignService
	Groups        *service.GroupService
	Leads         *service.LeadService
	ActivityStore store.ActivityStore
	StatsStore    store.StatsStore
}

func NewServer(cfg config.Config, db *pgxpool.Pool, ls store.LeadStore, cs store.CampaignStore, gs store.GroupStore, as store.ActivityStore, ss store.StatsStore) *Server {
	if err := handlers.RegisterValidators(); err != nil {
		slog.Error("Failed to register validators", "error", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.ErrorHandler())
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			slog.Warn("Invalid trusted proxies", "error", err)
		}
	}

	server := &Server{
		Router:        r,
		DB:            db,
		Config:        cfg,
		Campaigns:     service.NewCampaignService(cs, ls, as),
		Groups:        service.NewGroupService(gs, ls, as),
		Leads:         service.NewLeadService(ls, as),
		ActivityStore: as,
		StatsStore:    ss,
	}

	server.setupRoutes()
	return server
}

func (s *Server) setupRoutes() {
	rateLimiter := middleware.RateLimitMiddleware(s.Config.RateLimit)
	pageCfg := s.Config.Pagination

	s.Router.GET("/health", s.health)

	routes := s.Router.Group("/")
	routes.Use(rateLimiter)
	{
		// Campaigns
		routes.GET("/campaigns", handlers.ListCampaignsHandler(s.Campaigns, pageCfg))
		routes.POST("/campaigns", handlers.CreateCampaignHandler(s.Campaigns))
		routes.GET("/campaigns/:id", handlers.GetCampaignHandler(s.Campaigns))
		routes.PUT("/campaigns/:id", handlers.UpdateCampaignHandler(s.Campaigns))
		routes.DELETE("/campaigns/:id", handlers.DeleteCampaignHandler(s.Campaigns))

		// Campaign leads
		routes.GET("/campaigns/:id/leads", handlers.ListCampaignLeadsHandler(s.Campaigns, pageCfg))
		routes.POST("/campaigns/:id/leads", handlers.AddCampaignLeadHandler(s.Campaigns))
		routes.PUT("/campaigns/:id/leads/:leadId", handlers.UpdateCampaignLeadStatusHandler(s.Campaigns))
		routes.DELETE("/campaigns/:id/leads/:leadId", handlers.RemoveCampaignLeadHandler(s.Campaigns))

		// Groups
		routes.GET("/groups", handlers.ListGroupsHandler(s.Groups, pageCfg))
		routes.POST("/groups", handlers.CreateGroupHandler(s.Groups))
		routes.GET("/groups/:id", handlers.GetGroupHandler(s.Groups))
		routes.PUT("/groups/:id", handlers.UpdateGroupHandler(s.Groups))
		routes.DELETE("/groups/:id", handlers.DeleteGroupHandler(s.Groups))

		// Group leads
		routes.GET("/groups/:id/leads", handlers.ListGroupLeadsHandler(s.Groups, pageCfg))
		routes.POST("/groups/:id/leads", handlers.AddGroupLeadHandler(s.Groups))
		routes.DELETE("/groups/:id/leads/:leadId", handlers.RemoveGroupLeadHandler(s.Groups))

		// Leads
		routes.GET("/leads", handlers.ListLeadsHandler(s.Leads, pageCfg))
		routes.POST("/leads", handlers.CreateLeadHandler(s.Leads))
		routes.GET("/leads/:id", handlers.GetLeadHandler(s.Leads))
		routes.PUT("/leads/:id", handlers.UpdateLeadHandler(s.Leads))
		routes.DELETE("/leads/:id", handlers.DeleteLeadHandler(s.Leads))

		// Activity log and dashboard
		routes.GET("/activities", handlers.ListActivitiesHandler(s.ActivityStore, pageCfg))
		routes.GET("/stats", handlers.GetDashboardStatsHandler(s.StatsStore))
	}
}

func (s *Server) health(c *gin.Context) {
	if s.DB != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := s.DB.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
