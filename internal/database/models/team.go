package models

// TeamName is the display name a franchise carried in one season. The same
// TeamID can map to different names across years, so names are never join keys.
type TeamName struct {
	TeamID int    `json:"TeamID" gorm:"primaryKey;autoIncrement:false"`
	Year   int    `json:"Year" gorm:"primaryKey;autoIncrement:false;index:idx_team_names_name_year,priority:2"`
	Name   string `json:"Name" gorm:"size:100;not null;index:idx_team_names_name_year,priority:1"`
}

// TableName returns the table name for TeamName
func (TeamName) TableName() string {
	return "team_names"
}

// TeamMember assigns a player to a team roster for one season
type TeamMember struct {
	PlayerID string `json:"PlayerID" gorm:"primaryKey;size:16"`
	Year     int    `json:"Year" gorm:"primaryKey;autoIncrement:false"`
	TeamID   int    `json:"TeamID" gorm:"not null;index"`

	// Relationships
	Player *Player `json:"Player,omitempty" gorm:"foreignKey:PlayerID"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}
