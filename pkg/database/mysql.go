package database

import (
	"time"

	"campus-bot-go/internal/model"
	"campus-bot-go/pkg/log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitMySQL 初始化 MySQL 数据库连接
func InitMySQL(dsn string) {
	var err error
	// TranslateError 让方言把底层错误（如 MySQL 1062）翻译成
	// gorm 的哨兵错误，业务层依赖 gorm.ErrDuplicatedKey 兜底并发注册
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("failed to connect database", err)
	}

	// 配置连接池
	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Info("MySQL database connected successfully")
}

// Migrate 同步全部数据表结构。
func Migrate() {
	err := DB.AutoMigrate(
		&model.User{},
		&model.Moderator{},
		&model.ScheduleEntry{},
		&model.RestaurantEntry{},
		&model.HostelEntry{},
		&model.GymEntry{},
		&model.ChatLog{},
	)
	if err != nil {
		log.Fatal("failed to migrate database schema", err)
	}
}
