package models

import (
	"time"
)

// Exercise is one logged entry. It carries its own primary key, but the id
// reported to clients is always the owning user's id.
type Exercise struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Username    string    `gorm:"not null;type:varchar(255)" json:"username"`
	Description string    `gorm:"not null;type:varchar(500)" json:"description"`
	Duration    int       `gorm:"not null" json:"duration"` // minutes
	UserID      string    `gorm:"not null;type:varchar(36);index" json:"user_id"`
	Date        time.Time `gorm:"index" json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Exercise) TableName() string {
	return "exercises"
}
