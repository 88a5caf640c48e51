// job_post.go - Defines the JobPost model for the database

package models

// JobPost is a single listing on the board. Salary and Notes are optional.
type JobPost struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	PostedDate   Date    `gorm:"not null;index" json:"posted_date"`
	Status       string  `gorm:"not null;default:Hiring" json:"status"`
	Title        string  `gorm:"not null;index" json:"title"`
	Company      string  `gorm:"not null;index" json:"company"`
	Description  string  `gorm:"type:text;not null" json:"description"`
	Requirements string  `gorm:"type:text;not null" json:"requirements"`
	Location     string  `gorm:"not null" json:"location"`
	Salary       *string `json:"salary"`
	Contact      string  `gorm:"not null" json:"contact"`
	Notes        *string `gorm:"type:text" json:"notes"`
}
