//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"baseball-stats-backend/internal/database/models"
	"baseball-stats-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// ReportRepositoryTestSuite runs every report query against the rivalry corpus
type ReportRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	ctx           context.Context
	players       *PlayerRepository
	teams         *TeamRepository
	games         *GameRepository
	events        *EventRepository
}

// SetupSuite runs before all tests in the suite
func (suite *ReportRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.ctx = context.Background()

	db := suite.baseTestSuite.DB
	suite.players = NewPlayerRepository(db)
	suite.teams = NewTeamRepository(db)
	suite.games = NewGameRepository(db)
	suite.events = NewEventRepository(db)
}

// TearDownSuite runs after all tests in the suite
func (suite *ReportRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest reseeds the corpus before each test
func (suite *ReportRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.baseTestSuite.SeedCorpus(suite.T(), testutils.RivalryCorpus())
}

// TearDownTest runs after each test
func (suite *ReportRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ReportRepositoryTestSuite) rivalry() MatchupFilter {
	return MatchupFilter{
		Team1: []int{testutils.RedSoxID},
		Team2: []int{testutils.YankeesID},
		From:  testutils.Date("2011-01-01"),
	}
}

func (suite *ReportRepositoryTestSuite) TestGetByID() {
	player, err := suite.players.GetByID(suite.ctx, "ortid001")
	suite.Require().NoError(err)
	suite.Equal("David Ortiz", player.FullName())
	suite.Equal(models.HandLeft, player.Bats)

	_, err = suite.players.GetByID(suite.ctx, "nobody01")
	suite.Error(err)
}

func (suite *ReportRepositoryTestSuite) TestListBattersAndPitchers() {
	batters, err := suite.players.ListBatters(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(batters, 2)
	suite.Equal("jeted001", batters[0].ID)
	suite.Equal("ortid001", batters[1].ID)

	pitchers, err := suite.players.ListPitchers(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(pitchers, 3)
	suite.Equal([]string{"lestj001", "pricd001", "sabac001"},
		[]string{pitchers[0].ID, pitchers[1].ID, pitchers[2].ID})
}

func (suite *ReportRepositoryTestSuite) TestSearch() {
	players, total, err := suite.players.Search(suite.ctx, PlayerSearchFilter{BirthCountry: "USA"})
	suite.Require().NoError(err)
	suite.Equal(int64(5), total)
	suite.Len(players, 5)
	for _, p := range players {
		suite.Equal("USA", p.BirthCountry)
	}

	players, total, err = suite.players.Search(suite.ctx, PlayerSearchFilter{Name: "ORT"})
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal("ortid001", players[0].ID)

	players, total, err = suite.players.Search(suite.ctx, PlayerSearchFilter{Throws: "L", Limit: 2, Offset: 2})
	suite.Require().NoError(err)
	suite.Equal(int64(3), total)
	suite.Require().Len(players, 1)
	suite.Equal("sabac001", players[0].ID)
}

func (suite *ReportRepositoryTestSuite) TestResolveTeam() {
	teams, err := suite.teams.ResolveTeam(suite.ctx, "boston red sox", 2011, 2015)
	suite.Require().NoError(err)
	suite.Equal([]TeamRow{{TeamID: testutils.RedSoxID, Name: "Boston Red Sox"}}, teams)

	teams, err = suite.teams.ResolveTeam(suite.ctx, "Florida Marlins", 2012, 2015)
	suite.Require().NoError(err)
	suite.Empty(teams)
}

func (suite *ReportRepositoryTestSuite) TestTeamNameRoundTrip() {
	for year := 2011; year <= 2015; year++ {
		for _, name := range []string{"Boston Red Sox", "New York Yankees", "Tampa Bay Rays"} {
			teams, err := suite.teams.ResolveTeam(suite.ctx, name, year, year)
			suite.Require().NoError(err)
			suite.Require().NotEmpty(teams)

			ids := make([]int, 0, len(teams))
			for _, t := range teams {
				ids = append(ids, t.TeamID)
			}
			names, err := suite.teams.NamesForTeamIDs(suite.ctx, ids, year)
			suite.Require().NoError(err)
			suite.Contains(names, name)
		}
	}

	names, err := suite.teams.NamesForTeamIDs(suite.ctx, []int{testutils.MarlinsID}, 2011)
	suite.Require().NoError(err)
	suite.Equal([]string{"Florida Marlins"}, names)
}

func (suite *ReportRepositoryTestSuite) TestListTeams() {
	teams, err := suite.teams.ListTeams(suite.ctx, 2011, 2015)
	suite.Require().NoError(err)
	suite.Len(teams, 5)

	var marlins []string
	for _, t := range teams {
		if t.TeamID == testutils.MarlinsID {
			marlins = append(marlins, t.Name)
		}
	}
	suite.Equal([]string{"Florida Marlins", "Miami Marlins"}, marlins)
}

func (suite *ReportRepositoryTestSuite) TestGetRoster() {
	roster, err := suite.teams.GetRoster(suite.ctx, testutils.RedSoxID, 2014)
	suite.Require().NoError(err)
	suite.Require().Len(roster, 3)
	suite.Equal("Lester", roster[0].LastName)
	suite.Equal("Ortiz", roster[1].LastName)
	suite.Equal("Pedroia", roster[2].LastName)

	roster, err = suite.teams.GetRoster(suite.ctx, testutils.RedSoxID, 2015)
	suite.Require().NoError(err)
	suite.Len(roster, 2)
}

func (suite *ReportRepositoryTestSuite) TestTeamWins() {
	rows, err := suite.games.TeamWins(suite.ctx, 2011, 2015)
	suite.Require().NoError(err)

	byName := map[string]TeamWinsRow{}
	for _, r := range rows {
		suite.Equal(r.HomeWins+r.AwayWins, r.TotalWins)
		byName[r.TeamName] = r
	}

	suite.Equal(int64(2), byName["Boston Red Sox"].HomeWins)
	suite.Equal(int64(1), byName["Boston Red Sox"].AwayWins)
	suite.Equal(int64(1), byName["New York Yankees"].HomeWins)
	suite.Equal(int64(1), byName["New York Yankees"].AwayWins)
	suite.Contains(byName, "Tampa Bay Rays")
	suite.Zero(byName["Tampa Bay Rays"].TotalWins)
	suite.Contains(byName, "Florida Marlins")
	suite.Contains(byName, "Miami Marlins")
}

func (suite *ReportRepositoryTestSuite) TestGamesBetween() {
	games, err := suite.games.GamesBetween(suite.ctx, suite.rivalry())
	suite.Require().NoError(err)
	suite.Require().Len(games, 4)

	for i := 1; i < len(games); i++ {
		suite.False(games[i].Date.Before(games[i-1].Date))
	}
	suite.Equal("New York Yankees", games[0].HomeTeam)
	suite.Equal("Boston Red Sox", games[0].AwayTeam)
	suite.Equal(7, games[0].HomeScore)

	filter := suite.rivalry()
	filter.From = testutils.Date("2010-01-01")
	games, err = suite.games.GamesBetween(suite.ctx, filter)
	suite.Require().NoError(err)
	suite.Len(games, 5)
}

func (suite *ReportRepositoryTestSuite) TestSnapshot() {
	rows, err := suite.games.Snapshot(suite.ctx, suite.rivalry(), models.VenueAll)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)

	redSox, yankees := rows[0], rows[1]
	suite.Equal(1, redSox.Side)
	suite.Equal(int64(4), redSox.Games)
	suite.Equal(int64(2), redSox.Wins)
	suite.Equal(int64(13), redSox.TotalRuns)
	suite.InDelta(3.25, *redSox.AvgRuns, 0.0001)
	suite.Equal(int64(6), *redSox.MaxRuns)
	suite.Equal(int64(0), *redSox.MinRuns)

	suite.Equal(int64(4), yankees.Games)
	suite.Equal(int64(2), yankees.Wins)
	suite.Equal(int64(15), yankees.TotalRuns)
	suite.Equal(redSox.Games, redSox.Wins+yankees.Wins)

	rows, err = suite.games.Snapshot(suite.ctx, suite.rivalry(), models.VenueHome)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	suite.Equal(int64(2), rows[0].Games)
	suite.Equal(int64(7), rows[0].TotalRuns)
	suite.Equal(int64(2), rows[1].Games)
	suite.Equal(int64(8), rows[1].TotalRuns)

	rows, err = suite.games.Snapshot(suite.ctx, suite.rivalry(), models.VenueAway)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	suite.Equal(int64(2), rows[0].Games)
	suite.Equal(int64(1), rows[0].Wins)
	suite.Equal(int64(6), rows[0].TotalRuns)
	suite.Equal(int64(2), rows[1].Games)
	suite.Equal(int64(1), rows[1].Wins)
	suite.Equal(int64(7), rows[1].TotalRuns)
}

// snapshotBySide runs Snapshot for one venue and indexes the rows by side
func (suite *ReportRepositoryTestSuite) snapshotBySide(venue models.Venue) map[int]SnapshotRow {
	rows, err := suite.games.Snapshot(suite.ctx, suite.rivalry(), venue)
	suite.Require().NoError(err)

	bySide := make(map[int]SnapshotRow, len(rows))
	for _, r := range rows {
		bySide[r.Side] = r
	}
	return bySide
}

func (suite *ReportRepositoryTestSuite) TestSnapshotHomeAndAwayAddUp() {
	for _, corpus := range []struct {
		name string
		seed func() *testutils.Corpus
	}{
		{"rivalry", testutils.RivalryCorpus},
		{"snapshot", testutils.SnapshotCorpus},
	} {
		suite.Run(corpus.name, func() {
			suite.baseTestSuite.CleanTestDB()
			suite.baseTestSuite.SeedCorpus(suite.T(), corpus.seed())

			all := suite.snapshotBySide(models.VenueAll)
			home := suite.snapshotBySide(models.VenueHome)
			away := suite.snapshotBySide(models.VenueAway)

			for _, side := range []int{1, 2} {
				suite.Equal(all[side].Wins, home[side].Wins+away[side].Wins, "wins of side %d", side)
				suite.Equal(all[side].Games, home[side].Games+away[side].Games, "games of side %d", side)
				suite.Equal(all[side].TotalRuns, home[side].TotalRuns+away[side].TotalRuns, "runs of side %d", side)
			}
		})
	}
}

func (suite *ReportRepositoryTestSuite) TestSnapshotRedSoxWinTwoAtHomeAndSplitAway() {
	suite.baseTestSuite.CleanTestDB()
	suite.baseTestSuite.SeedCorpus(suite.T(), testutils.SnapshotCorpus())

	home := suite.snapshotBySide(models.VenueHome)
	suite.Equal(int64(3), home[1].Games)
	suite.Equal(int64(2), home[1].Wins)
	suite.Equal(int64(10), home[1].TotalRuns)
	suite.Equal(int64(1), home[2].Wins)

	away := suite.snapshotBySide(models.VenueAway)
	suite.Equal(int64(2), away[1].Games)
	suite.Equal(int64(1), away[1].Wins)
	suite.Equal(int64(6), away[1].TotalRuns)
	suite.Equal(int64(1), away[2].Wins)

	all := suite.snapshotBySide(models.VenueAll)
	suite.Equal(int64(5), all[1].Games)
	suite.Equal(int64(3), all[1].Wins)
	suite.Equal(int64(16), all[1].TotalRuns)
	suite.Equal(int64(6), *all[1].MaxRuns)
	suite.Equal(int64(0), *all[1].MinRuns)
	suite.Equal(int64(2), all[2].Wins)
	suite.Equal(int64(15), all[2].TotalRuns)
}

func (suite *ReportRepositoryTestSuite) TestSnapshotWithoutGames() {
	filter := suite.rivalry()
	filter.Team2 = []int{testutils.MarlinsID}

	rows, err := suite.games.Snapshot(suite.ctx, filter, models.VenueAll)
	suite.Require().NoError(err)
	suite.Empty(rows)
}

func (suite *ReportRepositoryTestSuite) TestStandings() {
	window := SeasonWindow{
		Year:  2014,
		Start: testutils.Date("2014-03-01"),
		End:   testutils.Date("2015-02-20"),
	}

	rows, err := suite.games.Standings(suite.ctx, window, 10)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 3)

	suite.Equal("Boston Red Sox", rows[0].TeamName)
	suite.Equal(int64(3), rows[0].TotalWins)
	suite.Equal(int64(1), rows[0].TotalLosses)
	suite.Equal(int64(2), rows[0].HomeWins)
	suite.Equal("New York Yankees", rows[1].TeamName)
	suite.Equal("Tampa Bay Rays", rows[2].TeamName)
	for _, r := range rows {
		suite.Equal(r.TotalGames, r.TotalWins+r.TotalLosses)
	}

	rows, err = suite.games.Standings(suite.ctx, window, 2)
	suite.Require().NoError(err)
	suite.Len(rows, 2)
}

func (suite *ReportRepositoryTestSuite) TestStandingsBreaksTiesByNameBeforeLimit() {
	suite.baseTestSuite.CleanTestDB()
	suite.baseTestSuite.SeedCorpus(suite.T(), testutils.TiedSeasonCorpus())
	window := SeasonWindow{
		Year:  2014,
		Start: testutils.Date("2014-03-01"),
		End:   testutils.Date("2015-02-20"),
	}

	rows, err := suite.games.Standings(suite.ctx, window, 2)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	suite.Equal("Boston Red Sox", rows[0].TeamName)
	suite.Equal("New York Yankees", rows[1].TeamName)
	for _, r := range rows {
		suite.Equal(int64(1), r.TotalWins)
		suite.Equal(int64(1), r.TotalLosses)
	}
}

func (suite *ReportRepositoryTestSuite) TestHeadToHead() {
	rows, err := suite.events.HeadToHead(suite.ctx, "ortid001", "sabac001")
	suite.Require().NoError(err)
	suite.Equal([]OutcomeCount{
		{Outcome: "Single", Occurrences: 2},
		{Outcome: "Home run", Occurrences: 1},
		{Outcome: "Strikeout", Occurrences: 1},
	}, rows)

	rows, err = suite.events.HeadToHead(suite.ctx, "sabac001", "ortid001")
	suite.Require().NoError(err)
	suite.Empty(rows)
}

func (suite *ReportRepositoryTestSuite) TestPlayerSplit() {
	filter := SplitFilter{
		PlayerID: "ortid001",
		Start:    testutils.Date("2011-01-01"),
		End:      testutils.Date("2016-01-01"),
	}

	totals, err := suite.events.PlayerSplit(suite.ctx, RoleBatter, filter)
	suite.Require().NoError(err)
	suite.Equal(OutcomeTotals{
		PlateAppearances: 5, AtBats: 5, Hits: 4,
		Singles: 2, Doubles: 1, HomeRuns: 1, Strikeouts: 1,
	}, *totals)

	against := filter
	against.AgainstTeams = []int{testutils.YankeesID}
	totals, err = suite.events.PlayerSplit(suite.ctx, RoleBatter, against)
	suite.Require().NoError(err)
	suite.Equal(int64(4), totals.AtBats)
	suite.Equal(int64(3), totals.Hits)

	righties := filter
	righties.OpponentHand = "R"
	totals, err = suite.events.PlayerSplit(suite.ctx, RoleBatter, righties)
	suite.Require().NoError(err)
	suite.Zero(totals.PlateAppearances)

	outside := filter
	outside.End = testutils.Date("2014-04-10")
	totals, err = suite.events.PlayerSplit(suite.ctx, RoleBatter, outside)
	suite.Require().NoError(err)
	suite.Zero(totals.PlateAppearances)
}

func (suite *ReportRepositoryTestSuite) TestPitcherSplit() {
	totals, err := suite.events.PlayerSplit(suite.ctx, RolePitcher, SplitFilter{
		PlayerID: "sabac001",
		Start:    testutils.Date("2011-01-01"),
		End:      testutils.Date("2016-01-01"),
	})
	suite.Require().NoError(err)
	suite.Equal(int64(4), totals.PlateAppearances)
	suite.Equal(int64(1), totals.Strikeouts)
	suite.Equal(int64(3), totals.Hits)
	suite.Equal(int64(1), totals.HomeRuns)
}

func (suite *ReportRepositoryTestSuite) TestLeaders() {
	filter := LeaderFilter{MatchupFilter: suite.rivalry()}

	pitching, err := suite.events.Leaders(suite.ctx, RolePitcher, filter)
	suite.Require().NoError(err)
	suite.Require().Len(pitching, 2)
	suite.Equal(1, pitching[0].Side)
	suite.Equal("lestj001", pitching[0].PlayerID)
	suite.Equal(int64(2), pitching[0].PlateAppearances)
	suite.Equal(2, pitching[1].Side)
	suite.Equal("sabac001", pitching[1].PlayerID)
	suite.Equal(int64(1), pitching[1].Strikeouts)

	batting, err := suite.events.Leaders(suite.ctx, RoleBatter, filter)
	suite.Require().NoError(err)
	suite.Require().Len(batting, 2)
	suite.Equal("ortid001", batting[0].PlayerID)
	suite.Equal(int64(4), batting[0].AtBats)
	suite.Equal(int64(3), batting[0].Hits)
	suite.Equal("jeted001", batting[1].PlayerID)
	suite.Equal(int64(1), batting[1].AtBats)
	suite.Equal(int64(1), batting[1].Walks)

	filter.MinBattersFaced = 3
	pitching, err = suite.events.Leaders(suite.ctx, RolePitcher, filter)
	suite.Require().NoError(err)
	suite.Require().Len(pitching, 1)
	suite.Equal("sabac001", pitching[0].PlayerID)
}

// TestReportRepositoryTestSuite runs the test suite
func TestReportRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ReportRepositoryTestSuite))
}
