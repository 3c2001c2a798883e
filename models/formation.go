package models

import (
	"database/sql/driver"
	"time"
)

// PositionMap assigns players to the slots of a tactical module
// (e.g. "ST", "LW"); a nil value is an empty slot.
type PositionMap map[string]*int

func (m PositionMap) Value() (driver.Value, error) {
	return jsonValue(m)
}

func (m *PositionMap) Scan(src interface{}) error {
	return jsonScan(src, m)
}

func (PositionMap) GormDataType() string { return "jsonb" }

type SubstituteList []*int

func (l SubstituteList) Value() (driver.Value, error) {
	return jsonValue(l)
}

func (l *SubstituteList) Scan(src interface{}) error {
	return jsonScan(src, l)
}

func (SubstituteList) GormDataType() string { return "jsonb" }

const DefaultModule = "4-3-3"

type Formation struct {
	ID          int            `gorm:"primaryKey" json:"id"`
	Module      string         `gorm:"not null;default:4-3-3" json:"module"`
	Positions   PositionMap    `gorm:"not null" json:"positions"`
	Substitutes SubstituteList `gorm:"not null" json:"substitutes"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
