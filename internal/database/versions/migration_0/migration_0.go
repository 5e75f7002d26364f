package migration_0

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Question struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	Question  string    `gorm:"type:text;not null"`
	Answer    string    `gorm:"type:text;not null"`
	Subject   string    `gorm:"default:general"`
	Timestamp time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func Migration(db *gorm.DB) error {
	if err := db.AutoMigrate(&Question{}); err != nil {
		return fmt.Errorf("error creating questions table: %w", err)
	}
	return nil
}

func Rollback(db *gorm.DB) error {
	if err := db.Migrator().DropTable(&Question{}); err != nil {
		return fmt.Errorf("error dropping questions table: %w", err)
	}
	return nil
}
