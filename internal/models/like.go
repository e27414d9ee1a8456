package models

// Like represents a user's like on a post.
// There is deliberately no unique index on (user_id, post_id): the modeled
// behavior allows a user to like the same post more than once.
type Like struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	PostID uint `gorm:"not null;index" json:"post_id"`
	UserID uint `gorm:"not null" json:"user_id"`
	User   User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Post   Post `gorm:"foreignKey:PostID" json:"post,omitempty"`
}
