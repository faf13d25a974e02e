package model

import "gorm.io/gorm"

// AutoMigrate выполняет миграцию всех сущностей (используется для sqlite и в тестах).
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Role{},
		&UserRole{},
		&Hall{},
		&Booking{},
		&Notification{},
		&Event{},
	)
}
