package models

import "time"

type User struct {
	ID       uint64 `gorm:"primarykey" json:"id"`
	Username string `gorm:"type:varchar(100);not null" json:"username"`
	// UsernameNormalized is the trimmed, lower-cased username. The unique
	// index on it is the authoritative guard against duplicate registrations;
	// the application-level lookup is only a fast path.
	UsernameNormalized string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"-"`
	PasswordHash       []byte    `gorm:"not null" json:"-"`
	PasswordSalt       []byte    `gorm:"not null" json:"-"`
	CreatedAt          time.Time `json:"created_at"`

	// Relations
	Projects []Project `gorm:"foreignKey:UserID" json:"-"`
}
