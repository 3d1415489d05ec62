package models

import "time"

// Task belongs to exactly one project. It carries no user reference; the
// owner is always the owner of the parent project.
type Task struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	DueDate     *time.Time `json:"due_date"`
	IsCompleted bool       `gorm:"not null;default:false" json:"is_completed"`
	// ProjectID is set at creation and never changes; there is no
	// re-parenting operation.
	ProjectID uint64 `gorm:"not null;index" json:"project_id"`

	// Relations
	Project Project `gorm:"foreignKey:ProjectID" json:"-"`
}
