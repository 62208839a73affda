// Package mysql establishes the database connection and migrates the
// schema. Repository interfaces and implementations live in the nested
// repository package.
package mysql

import (
	"fmt"

	"crusade_campaign_server/internal/config"
	"crusade_campaign_server/internal/dao/mysql/repository"
	"crusade_campaign_server/internal/model"

	"go.uber.org/zap"
	mysqldriver "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Init connects to MySQL, runs AutoMigrate and returns the repository
// aggregate. Failure to connect or migrate is fatal.
func Init() *repository.Repositories {
	conf := config.GetConfig()

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		conf.MysqlConfig.User,
		conf.MysqlConfig.Password,
		conf.MysqlConfig.Host,
		conf.MysqlConfig.Port,
		conf.MysqlConfig.DatabaseName,
	)

	db, err := gorm.Open(mysqldriver.Open(dsn), &gorm.Config{})
	if err != nil {
		zap.L().Fatal(err.Error())
	}

	// AutoMigrate creates missing tables and the cascade constraints the
	// delete paths rely on. It never drops columns or data.
	err = db.AutoMigrate(
		&model.UserInfo{},
		&model.Campaign{},
		&model.CampaignMember{},
		&model.CrusadeForce{},
		&model.Unit{},
	)
	if err != nil {
		zap.L().Fatal(err.Error())
	}

	return repository.NewRepositories(db)
}
