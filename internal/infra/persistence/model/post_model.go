package model

import "time"

// PostModel mirrors the 'posts' table.
// Likes is computed by the read queries and never written back.
type PostModel struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"type:varchar(255);not null"`
	ShortDesc string `gorm:"type:varchar(500);not null"`
	Desc      string `gorm:"column:description;type:text;not null"`
	CreatedBy uint   `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Likes  int64             `gorm:"->;-:migration"`
	Images []*PostImageModel `gorm:"foreignKey:PostID"`
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}

// PostLikeModel mirrors the 'post_likes' table. A user likes a post at most once.
type PostLikeModel struct {
	PostID    uint `gorm:"primaryKey"`
	UserID    uint `gorm:"primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PostLikeModel) TableName() string {
	return "post_likes"
}

// PostImageModel mirrors the 'post_images' table.
type PostImageModel struct {
	ID        uint   `gorm:"primaryKey"`
	PostID    uint   `gorm:"not null;index"`
	URL       string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PostImageModel) TableName() string {
	return "post_images"
}
