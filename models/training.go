package models

import (
	"database/sql/driver"
	"time"
)

// TrainingSession records one session of a training week. The attendance map
// flags players marked absent: a true value means the player missed the
// session, everyone else counts as present.
type TrainingSession struct {
	Day        string       `json:"day"`
	Date       string       `json:"date"`
	Attendance map[int]bool `json:"attendance"`
}

type SessionList []TrainingSession

func (l SessionList) Value() (driver.Value, error) {
	return jsonValue(l)
}

func (l *SessionList) Scan(src interface{}) error {
	return jsonScan(src, l)
}

func (SessionList) GormDataType() string { return "jsonb" }

type Training struct {
	ID         int         `gorm:"primaryKey" json:"id"`
	WeekNumber int         `gorm:"not null" json:"weekNumber"`
	WeekLabel  string      `gorm:"not null" json:"weekLabel"`
	Sessions   SessionList `gorm:"not null" json:"sessions"`
	CreatedAt  time.Time   `json:"createdAt"`
}
