package service_test

import (
	"context"
	"errors"
	"testing"

	"baseball-stats-backend/internal/config"
	apperrors "baseball-stats-backend/internal/errors"
	"baseball-stats-backend/internal/mocks"
	"baseball-stats-backend/internal/repository"
	"baseball-stats-backend/internal/service"
	"baseball-stats-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TeamServiceTestSuite defines the test suite for TeamService
type TeamServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	ctrl         *gomock.Controller
	mockTeamRepo *mocks.MockTeamRepositoryInterface
	mockGameRepo *mocks.MockGameRepositoryInterface
	teamService  *service.TeamService
}

// SetupTest sets up the test suite
func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockGameRepo = mocks.NewMockGameRepositoryInterface(suite.ctrl)
	suite.teamService = service.NewTeamService(
		suite.mockTeamRepo,
		suite.mockGameRepo,
		service.NewValidator(),
		config.DefaultReportConfig(),
	)
}

// TearDownTest cleans up after each test
func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamServiceTestSuite) TestListTeamsUsesReportingWindow() {
	teams := []repository.TeamRow{{TeamID: 1, Name: "Boston Red Sox"}}
	suite.mockTeamRepo.EXPECT().ListTeams(gomock.Any(), 2011, 2015).Return(teams, nil)

	result, err := suite.teamService.ListTeams(suite.ctx)

	suite.NoError(err)
	suite.Equal(teams, result)
}

func (suite *TeamServiceTestSuite) TestRosterDefaultsToDefaultSeason() {
	suite.mockTeamRepo.EXPECT().GetRoster(gomock.Any(), 1, 2014).Return([]repository.RosterEntry{{LastName: "Ortiz"}}, nil)

	roster, err := suite.teamService.Roster(suite.ctx, 1, nil)

	suite.NoError(err)
	suite.Len(roster, 1)
}

func (suite *TeamServiceTestSuite) TestRosterRejectsYearOutsideWindow() {
	year := 2009

	_, err := suite.teamService.Roster(suite.ctx, 1, &year)

	var verr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &verr)
	suite.Equal("year", verr.Field)
}

func (suite *TeamServiceTestSuite) TestTeamWins() {
	rows := []repository.TeamWinsRow{
		{TeamName: "Boston Red Sox", HomeWins: 2, AwayWins: 1, TotalWins: 3},
		{TeamName: "Tampa Bay Rays"},
	}
	suite.mockGameRepo.EXPECT().TeamWins(gomock.Any(), 2011, 2015).Return(rows, nil)

	result, err := suite.teamService.TeamWins(suite.ctx)

	suite.Require().NoError(err)
	for _, r := range result {
		suite.Equal(r.HomeWins+r.AwayWins, r.TotalWins)
	}
}

func (suite *TeamServiceTestSuite) TestTeamWinsStoreFailure() {
	suite.mockGameRepo.EXPECT().TeamWins(gomock.Any(), 2011, 2015).Return(nil, errors.New("relation \"games\" does not exist"))

	_, err := suite.teamService.TeamWins(suite.ctx)

	suite.True(apperrors.IsQueryError(err))
	suite.NotContains(err.Error(), "games")
}

func (suite *TeamServiceTestSuite) TestLeaderboardDefaults() {
	suite.mockGameRepo.EXPECT().
		Standings(gomock.Any(), service.SeasonWindowFor(2014), 10).
		Return([]repository.StandingRow{}, nil)

	_, err := suite.teamService.Leaderboard(suite.ctx, &service.LeaderboardRequest{})
	suite.NoError(err)
}

func (suite *TeamServiceTestSuite) TestLeaderboardKeepsStoreRanking() {
	year, pageSize := 2013, 2
	suite.mockGameRepo.EXPECT().
		Standings(gomock.Any(), gomock.Any(), 2).
		DoAndReturn(func(_ context.Context, w repository.SeasonWindow, _ int) ([]repository.StandingRow, error) {
			suite.Equal(testutils.Date("2013-03-01"), w.Start)
			suite.Equal(testutils.Date("2014-02-20"), w.End)
			return []repository.StandingRow{
				{TeamName: "Boston Red Sox", TotalWins: 97},
				{TeamName: "Cleveland Indians", TotalWins: 92},
			}, nil
		})

	rows, err := suite.teamService.Leaderboard(suite.ctx, &service.LeaderboardRequest{Year: &year, PageSize: &pageSize})

	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	suite.Equal("Boston Red Sox", rows[0].TeamName)
	suite.Equal("Cleveland Indians", rows[1].TeamName)
}

func (suite *TeamServiceTestSuite) TestLeaderboardCapsOversizedResult() {
	pageSize := 1
	suite.mockGameRepo.EXPECT().
		Standings(gomock.Any(), gomock.Any(), 1).
		Return([]repository.StandingRow{
			{TeamName: "Cleveland Indians", TotalWins: 84},
			{TeamName: "New York Yankees", TotalWins: 84},
		}, nil)

	rows, err := suite.teamService.Leaderboard(suite.ctx, &service.LeaderboardRequest{PageSize: &pageSize})

	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal("Cleveland Indians", rows[0].TeamName)
}

func (suite *TeamServiceTestSuite) TestLeaderboardValidation() {
	badYear, zero, tooMany := 2016, 0, 101

	_, err := suite.teamService.Leaderboard(suite.ctx, &service.LeaderboardRequest{Year: &badYear})
	suite.True(apperrors.IsValidation(err))

	_, err = suite.teamService.Leaderboard(suite.ctx, &service.LeaderboardRequest{PageSize: &zero})
	suite.True(apperrors.IsValidation(err))

	_, err = suite.teamService.Leaderboard(suite.ctx, &service.LeaderboardRequest{PageSize: &tooMany})
	suite.True(apperrors.IsValidation(err))
}

// TestTeamServiceTestSuite runs the test suite
func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
