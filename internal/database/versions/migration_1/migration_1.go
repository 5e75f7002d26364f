package migration_1

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Question struct {
	Subject   string    `gorm:"index:idx_questions_subject"`
	Timestamp time.Time `gorm:"index:idx_questions_timestamp,sort:desc"`
}

var indexes = []string{"idx_questions_timestamp", "idx_questions_subject"}

func Migration(db *gorm.DB) error {
	for _, index := range indexes {
		if db.Migrator().HasIndex(&Question{}, index) {
			continue
		}
		if err := db.Migrator().CreateIndex(&Question{}, index); err != nil {
			return fmt.Errorf("error creating index %s: %w", index, err)
		}
	}
	return nil
}

func Rollback(db *gorm.DB) error {
	for _, index := range indexes {
		if err := db.Migrator().DropIndex(&Question{}, index); err != nil {
			return fmt.Errorf("error dropping index %s: %w", index, err)
		}
	}
	return nil
}
