// Package models contains data structures for the application's domain models.
package models

import "time"

// Post represents an authored post in the Inkwell application.
// UserID is set from the authenticated subject at creation time and is
// immutable afterwards.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Tags      string    `json:"tags"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
