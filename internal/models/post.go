package models

type Post struct {
	ID      uint   `gorm:"column:post_id;primaryKey" json:"post_id"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
