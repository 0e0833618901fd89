package models

import "time"

// Post represents a blog post. Comments belong to exactly one post and are
// removed together with it.
type Post struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Title     string    `json:"title" gorm:"size:200;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;autoCreateTime:false"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null;autoCreateTime:false;autoUpdateTime:false"`
}

// TableName sets the posts table name for GORM.
func (Post) TableName() string { return "posts" }

// Comment represents a comment on a blog post. PostID is immutable after
// creation.
type Comment struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	PostID    int       `json:"post_id" gorm:"index;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Author    string    `json:"author" gorm:"size:100;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;autoCreateTime:false"`
}

// TableName sets the comments table name for GORM.
func (Comment) TableName() string { return "comments" }
