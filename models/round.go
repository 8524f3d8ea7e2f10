package models

import (
	"time"

	"gorm.io/datatypes"
)

// Round is the archived record of one finished run of a session. Live game
// state never touches the database; rounds are written once, after the fact.
type Round struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	SessionCode  string         `gorm:"index" json:"session_code"`
	NumbersJSON  datatypes.JSON `json:"numbers"` // drawn numbers, in call order
	WinnersJSON  datatypes.JSON `json:"winners"` // winner names
	NumbersDrawn int            `json:"numbers_drawn"`
	PlayerCount  int            `json:"player_count"`
	StartedAt    time.Time      `json:"started_at"`
	EndedAt      time.Time      `json:"ended_at"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
