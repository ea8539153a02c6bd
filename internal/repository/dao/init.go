package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Trip{},
		&Stop{},
		&City{},
		&ActivityTemplate{},
		&TripActivity{},
		&Expense{},
		&Post{},
	)
}
