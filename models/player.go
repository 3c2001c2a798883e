package models

import "time"

// Player positions as used by the club (kept verbatim, the UI is Italian).
const (
	PositionPortiere      = "Portiere"
	PositionTerzinoDestro = "Terzino Destro"
	PositionDifensore     = "Difensore Centrale"
	PositionTerzinoSin    = "Terzino Sinistro"
	PositionCentrocampo   = "Centrocampista Centrale"
	PositionAla           = "Ala"
	PositionAttaccante    = "Attaccante"
)

type Player struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	Number      int       `gorm:"not null" json:"number"`
	FirstName   string    `gorm:"not null" json:"firstName"`
	LastName    string    `gorm:"not null" json:"lastName"`
	Position    string    `gorm:"not null" json:"position"`
	BirthYear   int       `gorm:"not null" json:"birthYear"`
	Goals       int       `gorm:"not null;default:0" json:"goals"`
	Presences   int       `gorm:"not null;default:0" json:"presences"`
	YellowCards int       `gorm:"not null;default:0" json:"yellowCards"`
	RedCards    int       `gorm:"not null;default:0" json:"redCards"`
	PhotoKey    *string   `json:"-"`
	PhotoURL    string    `gorm:"-" json:"photoUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (p *Player) FullName() string {
	return p.FirstName + " " + p.LastName
}
