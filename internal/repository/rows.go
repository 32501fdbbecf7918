package repository

import (
	"time"
)

// Role selects which side of a plate appearance a report is computed for
type Role int

const (
	RoleBatter Role = iota
	RolePitcher
)

func (r Role) String() string {
	if r == RolePitcher {
		return "pitcher"
	}
	return "batter"
}

// TeamRow is one (team id, name) pair seen inside the reporting window
type TeamRow struct {
	TeamID int    `json:"TeamID" gorm:"column:team_id"`
	Name   string `json:"TeamName" gorm:"column:name"`
}

// RosterEntry is one player on a team's roster for a season
type RosterEntry struct {
	PlayerID     string     `json:"ID" gorm:"column:id"`
	FirstName    string     `json:"FirstName" gorm:"column:first_name"`
	LastName     string     `json:"LastName" gorm:"column:last_name"`
	BirthCountry string     `json:"BirthCountry" gorm:"column:birth_country"`
	DebutDate    *time.Time `json:"DebutDate" gorm:"column:debut_date"`
}

// TeamWinsRow aggregates home and away wins for one team id and display name
type TeamWinsRow struct {
	TeamID    int    `json:"-" gorm:"column:team_id"`
	TeamName  string `json:"TeamName" gorm:"column:team_name"`
	HomeWins  int64  `json:"HomeWins" gorm:"column:home_wins"`
	AwayWins  int64  `json:"AwayWins" gorm:"column:away_wins"`
	TotalWins int64  `json:"total_wins" gorm:"column:total_wins"`
}

// GameResult is one game between two teams with season-correct display names
type GameResult struct {
	ID        string    `json:"-" gorm:"column:id"`
	Date      time.Time `json:"Date" gorm:"column:date"`
	AwayTeam  string    `json:"AwayTeam" gorm:"column:away_team"`
	AwayScore int       `json:"AwayScore" gorm:"column:away_score"`
	HomeTeam  string    `json:"HomeTeam" gorm:"column:home_team"`
	HomeScore int       `json:"HomeScore" gorm:"column:home_score"`
}

// SnapshotRow holds the aggregate game stats for one side of a matchup.
// Side is 1 for the first team and 2 for the second.
type SnapshotRow struct {
	Side      int      `gorm:"column:side"`
	Games     int64    `gorm:"column:games"`
	Wins      int64    `gorm:"column:wins"`
	TotalRuns int64    `gorm:"column:total_runs"`
	AvgRuns   *float64 `gorm:"column:avg_runs"`
	MaxRuns   *int64   `gorm:"column:max_runs"`
	MinRuns   *int64   `gorm:"column:min_runs"`
}

// StandingRow is one team's record within a season window
type StandingRow struct {
	TeamID      int    `json:"-" gorm:"column:team_id"`
	TeamName    string `json:"TeamName" gorm:"column:team_name"`
	HomeWins    int64  `json:"HomeWins" gorm:"column:home_wins"`
	AwayWins    int64  `json:"AwayWins" gorm:"column:away_wins"`
	TotalWins   int64  `json:"TotalWins" gorm:"column:total_wins"`
	TotalLosses int64  `json:"TotalLosses" gorm:"column:total_losses"`
	TotalGames  int64  `json:"TotalGames" gorm:"column:total_games"`
}

// OutcomeCount is how often one event type occurred
type OutcomeCount struct {
	Outcome     string `json:"Outcome" gorm:"column:outcome"`
	Occurrences int64  `json:"Occurrences" gorm:"column:occurrences"`
}

// OutcomeTotals are the raw plate-appearance counts behind batting and
// pitching stat lines. For a pitcher, Hits and HomeRuns are the hits and home
// runs allowed and PlateAppearances is batters faced.
type OutcomeTotals struct {
	PlateAppearances int64 `gorm:"column:plate_appearances"`
	AtBats           int64 `gorm:"column:at_bats"`
	Hits             int64 `gorm:"column:hits"`
	Singles          int64 `gorm:"column:singles"`
	Doubles          int64 `gorm:"column:doubles"`
	Triples          int64 `gorm:"column:triples"`
	HomeRuns         int64 `gorm:"column:home_runs"`
	Walks            int64 `gorm:"column:walks"`
	Strikeouts       int64 `gorm:"column:strikeouts"`
}

// LeaderRow is one player's totals against the opposing team in a matchup
type LeaderRow struct {
	Side      int    `gorm:"column:side"`
	PlayerID  string `gorm:"column:player_id"`
	FirstName string `gorm:"column:first_name"`
	LastName  string `gorm:"column:last_name"`
	OutcomeTotals
}

// SplitFilter narrows a player split report
type SplitFilter struct {
	PlayerID     string
	Start        time.Time
	End          time.Time
	AgainstTeams []int
	OpponentHand string
}

// MatchupFilter selects the games between two resolved teams
type MatchupFilter struct {
	Team1 []int
	Team2 []int
	From  time.Time
}

// LeaderFilter selects plate appearances between two teams for the leader boards
type LeaderFilter struct {
	MatchupFilter
	MinBattersFaced int
	MinAtBats       int
}

// SeasonWindow bounds a season's games, inclusive on both ends
type SeasonWindow struct {
	Year  int
	Start time.Time
	End   time.Time
}

// PlayerSearchFilter holds the optional player search criteria. Zero values
// are ignored.
type PlayerSearchFilter struct {
	Name         string
	BirthCountry string
	BornBefore   *time.Time
	BornAfter    *time.Time
	DebutBefore  *time.Time
	DebutAfter   *time.Time
	MinHeight    *int
	MaxHeight    *int
	MinWeight    *int
	MaxWeight    *int
	Bats         string
	Throws       string
	Limit        int
	Offset       int
}
