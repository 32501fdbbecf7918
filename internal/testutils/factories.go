package testutils

import (
	"fmt"
	"time"

	"baseball-stats-backend/internal/database/models"

	"gorm.io/gorm"
)

// Team ids used by the fixture corpus
const (
	RedSoxID  = 1
	YankeesID = 2
	RaysID    = 3
	MarlinsID = 4
)

// PlayerFactory provides methods to create test Player data
type PlayerFactory struct{}

// NewPlayerFactory creates a new PlayerFactory
func NewPlayerFactory() *PlayerFactory {
	return &PlayerFactory{}
}

// Create creates a test Player with default values
func (f *PlayerFactory) Create(id string) *models.Player {
	height, weight := 74, 210
	birth := Date("1985-06-15")
	debut := Date("2007-04-02")
	return &models.Player{
		ID:           id,
		FirstName:    "Test",
		LastName:     "Player " + id,
		BirthCountry: "USA",
		BirthDate:    &birth,
		Height:       &height,
		Weight:       &weight,
		Bats:         models.HandRight,
		Throws:       models.HandRight,
		DebutDate:    &debut,
	}
}

// WithName sets a custom name for the player
func (f *PlayerFactory) WithName(id, first, last string) *models.Player {
	p := f.Create(id)
	p.FirstName = first
	p.LastName = last
	return p
}

// Date parses a YYYY-MM-DD date in UTC and panics on malformed input
func Date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(fmt.Sprintf("testutils.Date(%q): %v", s, err))
	}
	return d
}

// Corpus collects fixture rows for every corpus table
type Corpus struct {
	Players     []models.Player
	TeamNames   []models.TeamName
	TeamMembers []models.TeamMember
	Games       []models.Game
	Events      []models.Event

	nextEventID int64
}

// NewCorpus creates an empty Corpus
func NewCorpus() *Corpus {
	return &Corpus{nextEventID: 1}
}

// Team names team id for each listed season
func (c *Corpus) Team(id int, name string, years ...int) *Corpus {
	for _, y := range years {
		c.TeamNames = append(c.TeamNames, models.TeamName{TeamID: id, Year: y, Name: name})
	}
	return c
}

// Player adds a player and puts them on teamID's roster for each listed season
func (c *Corpus) Player(p *models.Player, teamID int, years ...int) *Corpus {
	c.Players = append(c.Players, *p)
	for _, y := range years {
		c.TeamMembers = append(c.TeamMembers, models.TeamMember{PlayerID: p.ID, Year: y, TeamID: teamID})
	}
	return c
}

// Game adds a game played on date (YYYY-MM-DD)
func (c *Corpus) Game(id, date string, home, away, homeScore, awayScore int) *Corpus {
	c.Games = append(c.Games, models.Game{
		ID:        id,
		Date:      Date(date),
		HomeTeam:  home,
		AwayTeam:  away,
		HomeScore: homeScore,
		AwayScore: awayScore,
	})
	return c
}

// PlateAppearances adds one event per outcome between batter and pitcher
func (c *Corpus) PlateAppearances(gameID, batter, pitcher string, outcomes ...models.EventType) *Corpus {
	for _, o := range outcomes {
		c.Events = append(c.Events, models.Event{
			ID:        c.nextEventID,
			GameID:    gameID,
			Batter:    batter,
			Pitcher:   pitcher,
			EventType: o,
		})
		c.nextEventID++
	}
	return c
}

// Seed inserts the corpus in dependency order inside one transaction
func (c *Corpus) Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		batches := []interface{}{&c.Players, &c.TeamNames, &c.TeamMembers, &c.Games, &c.Events}
		lengths := []int{len(c.Players), len(c.TeamNames), len(c.TeamMembers), len(c.Games), len(c.Events)}
		for i, batch := range batches {
			if lengths[i] == 0 {
				continue
			}
			if err := tx.CreateInBatches(batch, 100).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func season(from, to int) []int {
	years := make([]int, 0, to-from+1)
	for y := from; y <= to; y++ {
		years = append(years, y)
	}
	return years
}

// RivalryCorpus builds a small Red Sox / Yankees corpus. Expected totals:
//
//   - games 2011-2015 between the two: 4 (one more in 2010)
//   - Red Sox: 2 wins, 13 runs; Yankees: 2 wins, 15 runs
//   - 2014 standings: Red Sox 3-1, Yankees 1-2, Rays 0-1
//   - Ortiz vs Sabathia: Single, Single, Home run, Strikeout
//   - the Marlins changed name between 2011 and 2012
func RivalryCorpus() *Corpus {
	f := NewPlayerFactory()

	ortiz := f.WithName("ortid001", "David", "Ortiz")
	ortiz.BirthCountry = "Dominican Republic"
	ortiz.Bats = models.HandLeft

	pedroia := f.WithName("pedrd001", "Dustin", "Pedroia")

	lester := f.WithName("lestj001", "Jon", "Lester")
	lester.Throws = models.HandLeft
	lester.Bats = models.HandLeft

	sabathia := f.WithName("sabac001", "CC", "Sabathia")
	sabathia.Throws = models.HandLeft
	sabathia.Bats = models.HandLeft

	jeter := f.WithName("jeted001", "Derek", "Jeter")

	price := f.WithName("pricd001", "David", "Price")
	price.Throws = models.HandLeft
	price.Bats = models.HandLeft

	return NewCorpus().
		Team(RedSoxID, "Boston Red Sox", season(2010, 2015)...).
		Team(YankeesID, "New York Yankees", season(2010, 2015)...).
		Team(RaysID, "Tampa Bay Rays", season(2011, 2015)...).
		Team(MarlinsID, "Florida Marlins", 2011).
		Team(MarlinsID, "Miami Marlins", season(2012, 2015)...).
		Player(ortiz, RedSoxID, season(2010, 2015)...).
		Player(pedroia, RedSoxID, season(2011, 2015)...).
		Player(lester, RedSoxID, season(2011, 2014)...).
		Player(sabathia, YankeesID, season(2011, 2015)...).
		Player(jeter, YankeesID, season(2011, 2014)...).
		Player(price, RaysID, season(2011, 2015)...).
		Game("BOS201004040", "2010-07-04", RedSoxID, YankeesID, 9, 1).
		Game("NYA201209010", "2012-09-01", YankeesID, RedSoxID, 7, 0).
		Game("BOS201404100", "2014-04-10", RedSoxID, YankeesID, 5, 3).
		Game("BOS201404110", "2014-04-11", RedSoxID, YankeesID, 2, 4).
		Game("BOS201405010", "2014-05-01", RedSoxID, RaysID, 3, 2).
		Game("NYA201406010", "2014-06-01", YankeesID, RedSoxID, 1, 6).
		PlateAppearances("BOS201404100", "ortid001", "sabac001",
			models.EventTypeSingle, models.EventTypeSingle, models.EventTypeHomeRun, models.EventTypeStrikeout).
		PlateAppearances("BOS201404100", "jeted001", "lestj001",
			models.EventTypeWalk, models.EventTypeGenericOut).
		PlateAppearances("BOS201405010", "ortid001", "pricd001",
			models.EventTypeDouble)
}

// SnapshotCorpus builds the Red Sox / Yankees snapshot fixture. The Red Sox
// win 2 and lose 1 at home and split 1-1 away, so they have 3 wins overall.
// The Yankees win 1 at home and 1 away.
//
//   - Red Sox: home 5-3, 4-2, 1-2 and away 6-1, 0-7 (16 runs)
//   - Yankees: home 1-6, 7-0 and away 3-5, 2-4, 2-1 (15 runs)
func SnapshotCorpus() *Corpus {
	return NewCorpus().
		Team(RedSoxID, "Boston Red Sox", season(2011, 2015)...).
		Team(YankeesID, "New York Yankees", season(2011, 2015)...).
		Game("BOS201204100", "2012-04-10", RedSoxID, YankeesID, 5, 3).
		Game("BOS201304110", "2013-04-11", RedSoxID, YankeesID, 4, 2).
		Game("BOS201405120", "2014-05-12", RedSoxID, YankeesID, 1, 2).
		Game("NYA201306010", "2013-06-01", YankeesID, RedSoxID, 1, 6).
		Game("NYA201507020", "2015-07-02", YankeesID, RedSoxID, 7, 0)
}

// TiedSeasonCorpus builds a 2014 season where the Red Sox, Yankees and Rays
// each finish 1-1.
func TiedSeasonCorpus() *Corpus {
	return NewCorpus().
		Team(RedSoxID, "Boston Red Sox", 2014).
		Team(YankeesID, "New York Yankees", 2014).
		Team(RaysID, "Tampa Bay Rays", 2014).
		Game("TBA201404010", "2014-04-01", RaysID, RedSoxID, 4, 3).
		Game("BOS201405010", "2014-05-01", RedSoxID, YankeesID, 2, 1).
		Game("NYA201406010", "2014-06-01", YankeesID, RaysID, 5, 0)
}
