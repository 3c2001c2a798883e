package models

import (
	"database/sql/driver"
	"time"
)

type IntList []int

func (l IntList) Value() (driver.Value, error) {
	return jsonValue(l)
}

func (l *IntList) Scan(src interface{}) error {
	return jsonScan(src, l)
}

func (IntList) GormDataType() string { return "jsonb" }

// Callup is the squad selection for an upcoming fixture.
type Callup struct {
	ID              int       `gorm:"primaryKey" json:"id"`
	Opponent        string    `gorm:"not null;default:''" json:"opponent"`
	Date            string    `gorm:"not null;default:''" json:"date"`
	MeetingTime     string    `gorm:"not null;default:''" json:"meetingTime"`
	KickoffTime     string    `gorm:"not null;default:''" json:"kickoffTime"`
	Location        string    `gorm:"not null;default:''" json:"location"`
	IsHome          bool      `gorm:"not null;default:true" json:"isHome"`
	SelectedPlayers IntList   `gorm:"not null" json:"selectedPlayers"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
