package store

import (
	"fmt"
	"time"

	"society-manager/internal/models"

	"gorm.io/gorm"
)

// SchemaMigration marks an applied schema version.
type SchemaMigration struct {
	Version   int `gorm:"primaryKey"`
	Name      string
	AppliedAt time.Time
}

type migration struct {
	version int
	name    string
	run     func(db *gorm.DB) error
}

// All schema versions in order. Append only; never edit an applied step.
var migrations = []migration{
	{
		version: 1,
		name:    "initial collections",
		run: func(db *gorm.DB) error {
			return db.AutoMigrate(
				&models.Receipt{},
				&models.Expense{},
				&models.Settings{},
				&models.Admin{},
				&models.Session{},
				&models.Backup{},
			)
		},
	},
}

// Migrate applies every migration step newer than the stored schema version,
// in order. Collections that already exist are left untouched.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&SchemaMigration{}); err != nil {
		return fmt.Errorf("migrate bookkeeping: %w", err)
	}

	var current int
	var last SchemaMigration
	if err := db.Order("version DESC").First(&last).Error; err == nil {
		current = last.Version
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		if err := m.run(db); err != nil {
			return fmt.Errorf("migration v%d (%s): %w", m.version, m.name, err)
		}
		rec := SchemaMigration{Version: m.version, Name: m.name, AppliedAt: time.Now()}
		if err := db.Create(&rec).Error; err != nil {
			return fmt.Errorf("record migration v%d: %w", m.version, err)
		}
	}
	return nil
}
