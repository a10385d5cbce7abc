package app

import (
	"net/http"

	"leavedesk/internal/approval"
	"leavedesk/internal/auth"
	"leavedesk/internal/calendar"
	"leavedesk/internal/config"
	"leavedesk/internal/leave"
	"leavedesk/internal/leavetype"
	"leavedesk/internal/middleware"
	"leavedesk/internal/notify"
	"leavedesk/internal/orgunit"
	"leavedesk/internal/profile"
	"leavedesk/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
) error {
	// --- Repositories ---
	profileRepo := profile.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	leaveTypeRepo := leavetype.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	approvalRepo := approval.NewRepository(gormDB)
	orgUnitRepo := orgunit.NewRepository(gormDB)
	calendarRepo := calendar.NewRepository(gormDB)

	// --- Services ---
	notifier := notify.NewNotifier(cfg.Mail, cfg.Slack)
	calendarService := calendar.NewService(calendarRepo, cfg.Google)
	profileService := profile.NewService(profileRepo, cfg.Auth.FirstAdminEmail)
	authService := auth.NewService(authRepo, profileService, auth.TokenConfig{
		Secret:          cfg.Auth.JWTSecret,
		AccessTokenTTL:  cfg.Auth.AccessTokenTTL,
		RefreshTokenTTL: cfg.Auth.RefreshTokenTTL,
	})
	leaveTypeService := leavetype.NewService(leaveTypeRepo)
	leaveService := leave.NewService(leaveRepo, leaveTypeRepo, calendarService)
	approvalService := approval.NewService(approvalRepo, calendarService, notifier)
	orgUnitService := orgunit.NewService(orgUnitRepo)

	// --- Handlers ---
	profileHandler := profile.NewHandler(profileService)
	authHandler := auth.NewHandler(authService)
	leaveTypeHandler := leavetype.NewHandler(leaveTypeService)
	leaveHandler := leave.NewHandler(leaveService)
	approvalHandler := approval.NewHandler(approvalService)
	orgUnitHandler := orgunit.NewHandler(orgUnitService)
	calendarHandler := calendar.NewHandler(calendarService)

	authMW := middleware.AuthRequired(authService)
	idempotencyMW := middleware.Idempotency(rdb)

	router.GET("/", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"name": "leavedesk"})
	})

	// --- Routes ---
	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler, authMW)
		profile.RegisterRoutes(api, profileHandler, authMW)
		leavetype.RegisterRoutes(api, leaveTypeHandler, authMW)
		leave.RegisterRoutes(api, leaveHandler, authMW, idempotencyMW)
		approval.RegisterRoutes(api, approvalHandler, authMW)
		orgunit.RegisterRoutes(api, orgUnitHandler, authMW)
		calendar.RegisterRoutes(api, calendarHandler, authMW)
	}

	return nil
}
