package database

import (
	"fmt"
	"log"
	"time"

	"github.com/anaepietro/wedding-backend/app/models"
	"github.com/anaepietro/wedding-backend/internal/pkg/env"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const maxRetries = 5
const retryDelay = 5 * time.Second

// SetupDatabase opens the MySQL connection and runs AutoMigrate for all
// tables. The handle is returned to the caller and passed down explicitly;
// there is no package-level DB singleton.
func SetupDatabase() (*gorm.DB, error) {
	// "user:pass@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local"
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		env.GetEnv("DB_USER", ""),
		env.GetEnv("DB_PASSWORD", ""),
		env.GetEnv("DB_HOST", "127.0.0.1"),
		env.GetEnv("DB_PORT", "3306"),
		env.GetEnv("DB_NAME", ""),
	)

	var db *gorm.DB
	var err error
	for i := 0; i < maxRetries; i++ {
		db, err = gorm.Open(mysql.New(mysql.Config{
			DSN:                       dsn,
			DefaultStringSize:         256,
			DisableDatetimePrecision:  true,  // datetime precision not supported before MySQL 5.6
			DontSupportRenameIndex:    true,  // drop & create when renaming an index (pre 5.7 / MariaDB)
			DontSupportRenameColumn:   true,  // `change` when renaming a column (pre MySQL 8 / MariaDB)
			SkipInitializeWithVersion: false, // auto configure based on server version
		}), &gorm.Config{})
		if err == nil {
			if migErr := db.AutoMigrate(
				&models.Payment{},
				&models.PaymentNotification{},
				&models.Comment{},
				&models.Guest{},
			); migErr != nil {
				return nil, migErr
			}
			return db, nil
		}

		log.Printf("Failed to connect to database (try %d/%d): %v", i+1, maxRetries, err)
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}

	return nil, err
}
