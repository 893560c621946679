package models

import "time"

// Paste is a stored text snippet with an optional display name.
// Timestamps are assigned by the repository, not by gorm hooks.
type Paste struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	Text      string    `gorm:"column:text;not null"`
	Name      *string   `gorm:"column:name;size:40"`
	CreatedOn time.Time `gorm:"column:created_on;not null"`
	UpdatedOn time.Time `gorm:"column:updated_on;not null"`
}

func (Paste) TableName() string {
	return "pastes"
}
