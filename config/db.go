package config

import (
	"conduit-api/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the Postgres connection and migrates the schema.
// TranslateError is on so unique violations surface as gorm.ErrDuplicatedKey.
func InitDB(cfg *Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Article{},
		&models.Follow{},
		&models.Favorite{},
		&models.Tag{},
	); err != nil {
		log.WithError(err).Fatal("failed to migrate database schema")
	}

	return db
}
