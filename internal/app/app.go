// Package app 两个入口（api / migrate）共用的装配步骤
package app

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"autoshop/internal/core/config"
	"autoshop/internal/core/database"
	"autoshop/internal/core/logger"
	"autoshop/internal/domain"
	"autoshop/internal/repo"
	"autoshop/internal/service"
)

// NewLogger 按配置构建 logger；配置了文件时同时切割写文件
func NewLogger(c config.Log) (*zap.Logger, func()) {
	return logger.New(logger.Options{
		Level:     c.Level,
		JSON:      c.JSON,
		AddCaller: true,
		Rotate: logger.FileRotate{
			Enable:     c.File != "",
			Filename:   c.File,
			MaxSizeMB:  c.MaxSizeMB,
			MaxBackups: c.MaxBackups,
			MaxAgeDays: c.MaxAgeDays,
			Compress:   c.Compress,
		},
	})
}

// OpenDB gorm 日志也走 zap
func OpenDB(c config.DB, l *zap.Logger) (*gorm.DB, error) {
	return database.NewGorm(database.Opts{
		Driver:             c.Driver,
		DSN:                c.DSN,
		Username:           c.Username,
		Password:           c.Password,
		MaxOpenConns:       c.MaxOpenConns,
		MaxIdleConns:       c.MaxIdleConns,
		ConnMaxLifetimeMin: c.ConnMaxLifetimeMin,
		LogLevel:           c.LogLevel,
		Writer:             logger.ToWriter(l.Named("gorm"), zapcore.WarnLevel),
	})
}

// SeedData 配置 -> 种子数据
func SeedData(c config.Seed) service.SeedData {
	d := service.SeedData{
		AdminUsername: c.AdminUsername,
		AdminPassword: c.AdminPassword,
		AdminEmail:    c.AdminEmail,
	}
	for _, w := range c.WorkTypes {
		d.WorkTypes = append(d.WorkTypes, domain.WorkType{Name: w.Name, Description: w.Description})
	}
	for _, m := range c.Mechanics {
		d.Mechanics = append(d.Mechanics, domain.Mechanic{Name: m.Name, Phone: m.Phone, Specialization: m.Specialization})
	}
	return d
}

// MigrateAndSeed 建表后幂等写入管理员与参考数据
func MigrateAndSeed(ctx context.Context, db *gorm.DB, c config.Seed, l *zap.Logger) error {
	if err := database.Migrate(db); err != nil {
		return err
	}
	s := &service.Seeder{
		Users:     repo.NewUserRepo(db),
		WorkTypes: repo.NewWorkTypeRepo(db),
		Mechanics: repo.NewMechanicRepo(db),
		Log:       l,
	}
	return s.Run(ctx, SeedData(c))
}
