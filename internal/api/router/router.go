package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yash6314/invigilationMailService/config"
	"github.com/yash6314/invigilationMailService/internal/api/handler"
	"github.com/yash6314/invigilationMailService/internal/api/middleware"
	"github.com/yash6314/invigilationMailService/pkg/jwt"
	"github.com/yash6314/invigilationMailService/pkg/redis"
)

// Setup builds the Gin engine and route table.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── health check ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		v1.POST("/auth/login", h.Auth.Login)

		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)

			mails := authorized.Group("/mails")
			{
				mails.POST("/bulk", h.Mail.SendBulk)
				mails.POST("/by-id", h.Mail.SendByID)
			}

			authorized.GET("/exports/roster", h.Export.ExportRoster)
			authorized.GET("/duties/calendar", h.Export.DutyCalendar)
		}
	}

	return r
}
