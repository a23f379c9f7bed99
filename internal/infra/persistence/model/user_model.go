// Package model holds the GORM persistence models mirroring the
// database tables. Identifiers are 24-character hex strings generated
// by the application, not by the database.
package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           string `gorm:"type:char(24);primaryKey"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Name         string `gorm:"type:varchar(30);not null"`
	About        string `gorm:"type:varchar(30);not null"`
	Avatar       string `gorm:"type:text;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
