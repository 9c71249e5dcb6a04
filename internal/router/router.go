package router

import (
	"time"

	"sangam/config"
	"sangam/internal/domain"
	"sangam/internal/handler"
	"sangam/internal/middleware"
	"sangam/internal/repository"
	"sangam/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Monitor())

	// Repositories
	userRepo := repository.NewUserRepository(db)
	matchRepo := repository.NewMatchRepository(db)
	interestRepo := repository.NewInterestRepository(db)
	favRepo := repository.NewFavoriteRepository(db)
	convRepo := repository.NewConversationRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	blockRepo := repository.NewBlockRepository(db)
	reportRepo := repository.NewReportRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	// Services
	notifSvc := service.NewNotificationService(notifRepo)
	notifSvc.RegisterResolver(domain.NotifiableInterest, interestRepo.Exists)
	notifSvc.RegisterResolver(domain.NotifiableFavorite, favRepo.Exists)
	notifSvc.RegisterResolver(domain.NotifiableMessage, convRepo.MessageExists)
	notifSvc.RegisterResolver(domain.NotifiableConversation, convRepo.Exists)
	ledgerSvc := service.NewLedgerService(db, interestRepo, userRepo, auditRepo, notifSvc)
	favSvc := service.NewFavoriteService(db, favRepo, userRepo, notifSvc)
	convSvc := service.NewConversationService(db, convRepo, interestRepo, userRepo, notifSvc)

	// Handlers
	matchHandler := handler.NewMatchHandler(matchRepo, userRepo, &cfg.Matching)
	interestHandler := handler.NewInterestHandler(ledgerSvc)
	favoriteHandler := handler.NewFavoriteHandler(favSvc)
	conversationHandler := handler.NewConversationHandler(convSvc)
	notificationHandler := handler.NewNotificationHandler(notifSvc)
	safetyHandler := handler.NewSafetyHandler(db, blockRepo, reportRepo, auditRepo)

	authMw := middleware.AuthRequired(&cfg.JWT)
	// Writes get a per-user ceiling; reads stay freely pollable.
	writeLimit := middleware.RateLimit(middleware.NewInMemoryRateLimiter(60, time.Minute))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	api.Use(authMw)
	{
		api.GET("/matches", matchHandler.List)
		api.GET("/matches/suggested", matchHandler.Suggested)

		api.POST("/interests", writeLimit, interestHandler.Create)
		api.POST("/interests/:id/accept", writeLimit, interestHandler.Accept)
		api.POST("/interests/:id/reject", writeLimit, interestHandler.Reject)
		api.DELETE("/interests/:id", writeLimit, interestHandler.Cancel)

		api.POST("/favorites/:user_id", writeLimit, favoriteHandler.Add)
		api.DELETE("/favorites/:user_id", writeLimit, favoriteHandler.Remove)

		api.POST("/conversations", writeLimit, conversationHandler.GetOrCreate)
		api.GET("/conversations", conversationHandler.List)
		api.GET("/conversations/:id/messages", conversationHandler.ListMessages)
		api.POST("/conversations/:id/messages", writeLimit, conversationHandler.PostMessage)

		api.POST("/block/:user_id", writeLimit, safetyHandler.Block)
		api.DELETE("/block/:user_id", writeLimit, safetyHandler.Unblock)
		api.POST("/reports", writeLimit, safetyHandler.Report)

		me := api.Group("/me")
		{
			me.GET("/interests", interestHandler.List)
			me.GET("/favorites", favoriteHandler.List)
			me.GET("/notifications", notificationHandler.List)
			me.PUT("/notifications/:id/read", notificationHandler.MarkRead)
			me.PUT("/notifications/read-all", notificationHandler.MarkAllRead)
		}
	}

	return r
}
