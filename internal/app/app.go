package app

import (
	"leavedesk/internal/auth"
	"leavedesk/internal/calendar"
	"leavedesk/internal/config"
	"leavedesk/internal/leave"
	"leavedesk/internal/leavetype"
	"leavedesk/internal/middleware"
	"leavedesk/internal/orgunit"
	"leavedesk/internal/profile"
	"leavedesk/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BuildApp connects the infrastructure, migrates the schema and mounts every
// module onto the router.
func BuildApp(router *gin.Engine, cfg *config.Config) error {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database.DSN(), 5)
	if err != nil {
		return err
	}
	zap.L().Info("database connection established")

	if err := migrate(gormDB); err != nil {
		return err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, 5)
	if err != nil {
		return err
	}
	zap.L().Info("redis connection established")

	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(zap.L()),
		middleware.CORS(cfg.Server.AllowOrigins),
	)

	return registerModules(router, gormDB, rdb, cfg)
}

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&profile.Profile{},
		&auth.Credential{},
		&leavetype.LeaveType{},
		&leavetype.UserLeaveType{},
		&leave.LeaveRequest{},
		&calendar.GoogleSettings{},
	); err != nil {
		return err
	}

	// The org unit collections share one shape across several tables.
	for _, table := range orgunit.Kinds {
		if err := db.Table(table).AutoMigrate(&orgunit.Unit{}); err != nil {
			return err
		}
	}
	return nil
}
