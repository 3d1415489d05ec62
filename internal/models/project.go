package models

import "time"

type Project struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"type:varchar(100);not null" json:"title"`
	Description *string   `gorm:"type:varchar(500)" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	// UserID is the owning user. It is set at creation and never changes.
	UserID uint64 `gorm:"not null;index" json:"user_id"`

	// Relations
	User  User   `gorm:"foreignKey:UserID" json:"-"`
	Tasks []Task `gorm:"foreignKey:ProjectID" json:"tasks"`
}
