package models

type User struct {
	ID        uint   `gorm:"column:user_id;primaryKey" json:"user_id"`
	Username  string `gorm:"not null" json:"username"`
	Email     string `gorm:"not null" json:"email"`
	Password  string `json:"password"`
	PostCount int    `gorm:"not null;default:0" json:"post_count"`

	// Relationships
	Posts []Post `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
