// user.go - Defines the User model for the database

package models

// User is a registered account. The password hash never leaves the server:
// it is excluded from every JSON response.
type User struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Username       string `gorm:"uniqueIndex;not null" json:"username"`
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	HashedPassword string `gorm:"not null" json:"-"`
	IsPoster       bool   `gorm:"not null" json:"is_poster"`
	IsSeeker       bool   `gorm:"not null" json:"is_seeker"`
	Disabled       bool   `gorm:"not null" json:"disabled"`
}
