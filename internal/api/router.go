package api

import (
	"net/http"

	"conectezap-dashboard/internal/config"
	"conectezap-dashboard/internal/middleware"
	"conectezap-dashboard/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	LeadFields *LeadFieldHandler
	Profile    *ProfileHandler
	Phone      *PhoneHandler
	Hub        *ws.Hub // optional
}

func NewRouter(cfg *config.Config, logger *zap.Logger, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization", "Accept"},
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if h.Hub != nil {
		r.GET("/ws", func(c *gin.Context) {
			h.Hub.ServeWs(c.Writer, c.Request)
		})
	}

	apiGroup := r.Group("/api")
	{
		accounts := apiGroup.Group("/accounts/:accountId")
		accounts.GET("/lead-fields", h.LeadFields.GetLeadFields)
		accounts.PUT("/lead-fields", h.LeadFields.SaveLeadFields)
		accounts.GET("/profile", h.Profile.GetProfile)
		accounts.PUT("/profile", h.Profile.UpdateProfile)

		apiGroup.POST("/phone/validate", h.Phone.ValidatePhone)
	}

	return r
}
