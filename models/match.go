package models

import (
	"database/sql/driver"
	"time"
)

// MinutesMap holds the minutes played per player for one match. JSON object
// keys are the player identifiers, so the map round-trips through the same
// shape the client stores.
type MinutesMap map[int]int

func (m MinutesMap) Value() (driver.Value, error) {
	return jsonValue(m)
}

func (m *MinutesMap) Scan(src interface{}) error {
	return jsonScan(src, m)
}

func (MinutesMap) GormDataType() string { return "jsonb" }

// Match owns its event ledger and minutes map exclusively; players are
// referenced by identifier only.
type Match struct {
	ID        int        `gorm:"primaryKey" json:"id"`
	Round     int        `gorm:"not null" json:"round"`
	Date      string     `gorm:"not null" json:"date"`
	Time      string     `gorm:"not null" json:"time"`
	Home      string     `gorm:"not null" json:"home"`
	Away      string     `gorm:"not null" json:"away"`
	Address   string     `gorm:"not null;default:''" json:"address"`
	City      string     `gorm:"not null;default:''" json:"city"`
	Result    *string    `json:"result"`
	Events    EventList  `json:"events"`
	Minutes   MinutesMap `json:"minutes,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}
