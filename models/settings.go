package models

import "time"

// AppSettings is a single-row table holding club-wide UI state.
type AppSettings struct {
	ID           int       `gorm:"primaryKey" json:"id"`
	SelectedWeek int       `gorm:"not null;default:1" json:"selectedWeek"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (AppSettings) TableName() string { return "app_settings" }
