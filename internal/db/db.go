package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/timeslot-matcher/internal/config"
	"github.com/BruksfildServices01/timeslot-matcher/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.TimeSlot{},
		&models.SlotRequest{},
		&models.Match{},
		&models.ChatRoom{},
		&models.ChatMessage{},
		&models.Reminder{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// slot_requests.status is a closed set.
	db.Exec(`
        DO $$ BEGIN
            ALTER TABLE slot_requests
            ADD CONSTRAINT chk_slot_requests_status
            CHECK (status IN ('pending', 'approved', 'rejected'));
        EXCEPTION WHEN duplicate_object THEN NULL;
        END $$;
    `)

	return db
}
