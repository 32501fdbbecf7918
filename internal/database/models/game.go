package models

import (
	"time"
)

// Game is one historical game between two different teams
type Game struct {
	ID        string    `json:"ID" gorm:"primaryKey;size:16"`
	Date      time.Time `json:"Date" gorm:"type:date;not null;index"`
	HomeTeam  int       `json:"HomeTeam" gorm:"not null;index"`
	AwayTeam  int       `json:"AwayTeam" gorm:"not null;index"`
	HomeScore int       `json:"HomeScore" gorm:"not null;check:home_score >= 0"`
	AwayScore int       `json:"AwayScore" gorm:"not null;check:away_score >= 0"`
}

// TableName returns the table name for Game
func (Game) TableName() string {
	return "games"
}

// Event is the outcome of one plate appearance
type Event struct {
	ID        int64     `json:"ID" gorm:"primaryKey"`
	GameID    string    `json:"GameID" gorm:"size:16;not null;index"`
	Batter    string    `json:"Batter" gorm:"size:16;not null;index"`
	Pitcher   string    `json:"Pitcher" gorm:"size:16;not null;index"`
	EventType EventType `json:"EventType" gorm:"type:varchar(32);not null"`

	// Relationships
	Game *Game `json:"Game,omitempty" gorm:"foreignKey:GameID"`
}

// TableName returns the table name for Event
func (Event) TableName() string {
	return "events"
}
