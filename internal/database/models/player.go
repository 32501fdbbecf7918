package models

import (
	"time"
)

// Player is immutable reference data for anyone who batted or pitched in the corpus
type Player struct {
	ID           string     `json:"ID" gorm:"primaryKey;size:16"`
	FirstName    string     `json:"FirstName" gorm:"size:100;not null"`
	LastName     string     `json:"LastName" gorm:"size:100;not null;index"`
	BirthCountry string     `json:"BirthCountry" gorm:"size:100;index"`
	BirthDate    *time.Time `json:"BirthDate" gorm:"type:date"`
	Height       *int       `json:"Height"`
	Weight       *int       `json:"Weight"`
	Bats         Hand       `json:"Bats" gorm:"type:varchar(1)"`
	Throws       Hand       `json:"Throws" gorm:"type:varchar(1)"`
	DebutDate    *time.Time `json:"DebutDate" gorm:"type:date"`
}

// TableName returns the table name for Player
func (Player) TableName() string {
	return "players"
}

// FullName returns "First Last"
func (p Player) FullName() string {
	return p.FirstName + " " + p.LastName
}
