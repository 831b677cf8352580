// Package repository contains the repository layer for the Aethelgard Community API
package repository

import (
	"fmt"

	"github.com/aethelgard/aethelgardapi/internal/config"
	"github.com/aethelgard/aethelgardapi/pkg/utils/zaplogger"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GameDB holds the connections to the external game server databases. Both
// are owned and migrated by the game server; this API never migrates them.
type GameDB struct {
	Characters *gorm.DB
	Auth       *gorm.DB
}

// ConnectGameDB connects to the characters and auth MySQL databases of the
// game server and returns GORM database objects for both
func ConnectGameDB(cfg *config.Config) (*GameDB, error) {
	zaplogger.Info(config.SingleLine)
	zaplogger.Info("Initializing game server MySQL")
	zaplogger.Info(config.SingleLine)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(cfg.MysqlLogLevel)),
	}

	characters, err := gorm.Open(mysql.Open(cfg.CharactersDsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to characters db: %v", err)
	}
	zaplogger.Info("  * characters db connected")

	auth, err := gorm.Open(mysql.Open(cfg.AuthDbDsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to auth db: %v", err)
	}
	zaplogger.Info("  * auth db connected")

	return &GameDB{Characters: characters, Auth: auth}, nil
}

func gormLogLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "warn":
		return logger.Warn
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
