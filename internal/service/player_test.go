package service_test

import (
	"context"
	"errors"
	"testing"

	"baseball-stats-backend/internal/config"
	"baseball-stats-backend/internal/database/models"
	apperrors "baseball-stats-backend/internal/errors"
	"baseball-stats-backend/internal/mocks"
	"baseball-stats-backend/internal/repository"
	"baseball-stats-backend/internal/service"
	"baseball-stats-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// PlayerServiceTestSuite defines the test suite for PlayerService
type PlayerServiceTestSuite struct {
	suite.Suite
	ctx            context.Context
	ctrl           *gomock.Controller
	mockPlayerRepo *mocks.MockPlayerRepositoryInterface
	mockEventRepo  *mocks.MockEventRepositoryInterface
	playerService  *service.PlayerService
}

// SetupTest sets up the test suite
func (suite *PlayerServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPlayerRepo = mocks.NewMockPlayerRepositoryInterface(suite.ctrl)
	suite.mockEventRepo = mocks.NewMockEventRepositoryInterface(suite.ctrl)
	suite.playerService = service.NewPlayerService(
		suite.mockPlayerRepo,
		suite.mockEventRepo,
		service.NewValidator(),
		config.DefaultReportConfig(),
	)
}

// TearDownTest cleans up after each test
func (suite *PlayerServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PlayerServiceTestSuite) TestGetPlayer() {
	player := testutils.NewPlayerFactory().WithName("ortid001", "David", "Ortiz")
	suite.mockPlayerRepo.EXPECT().GetByID(gomock.Any(), "ortid001").Return(player, nil)

	result, err := suite.playerService.GetPlayer(suite.ctx, "ortid001")

	suite.NoError(err)
	suite.Equal(player, result)
}

func (suite *PlayerServiceTestSuite) TestGetPlayerNotFound() {
	suite.mockPlayerRepo.EXPECT().GetByID(gomock.Any(), "nobody01").Return(nil, gorm.ErrRecordNotFound)

	result, err := suite.playerService.GetPlayer(suite.ctx, "nobody01")

	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrPlayerNotFound)
}

func (suite *PlayerServiceTestSuite) TestGetPlayerMissingID() {
	result, err := suite.playerService.GetPlayer(suite.ctx, "  ")

	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrPlayerIDMissing)
}

func (suite *PlayerServiceTestSuite) TestGetPlayerStoreFailure() {
	cause := errors.New("connection refused")
	suite.mockPlayerRepo.EXPECT().GetByID(gomock.Any(), "ortid001").Return(nil, cause)

	_, err := suite.playerService.GetPlayer(suite.ctx, "ortid001")

	suite.True(apperrors.IsQueryError(err))
	suite.EqualError(err, "error executing the query")
	suite.ErrorIs(err, cause)
}

func (suite *PlayerServiceTestSuite) TestSearchPlayersUnpaginated() {
	suite.mockPlayerRepo.EXPECT().
		Search(gomock.Any(), repository.PlayerSearchFilter{BirthCountry: "USA"}).
		Return([]models.Player{{ID: "pedrd001"}, {ID: "jeted001"}}, int64(2), nil)

	resp, err := suite.playerService.SearchPlayers(suite.ctx, &service.PlayerSearchRequest{BirthCountry: "USA"})

	suite.NoError(err)
	suite.Len(resp.Players, 2)
	suite.Equal(int64(2), resp.Total)
	suite.Zero(resp.Page)
	suite.Zero(resp.PageSize)
}

func (suite *PlayerServiceTestSuite) TestSearchPlayersPaginationDefaults() {
	page := 3
	suite.mockPlayerRepo.EXPECT().
		Search(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f repository.PlayerSearchFilter) ([]models.Player, int64, error) {
			suite.Equal(20, f.Limit)
			suite.Equal(40, f.Offset)
			return nil, int64(45), nil
		})

	resp, err := suite.playerService.SearchPlayers(suite.ctx, &service.PlayerSearchRequest{Page: &page})

	suite.NoError(err)
	suite.Equal(3, resp.Page)
	suite.Equal(20, resp.PageSize)
	suite.Equal(int64(45), resp.Total)
}

func (suite *PlayerServiceTestSuite) TestSearchPlayersParsesDates() {
	suite.mockPlayerRepo.EXPECT().
		Search(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f repository.PlayerSearchFilter) ([]models.Player, int64, error) {
			suite.Require().NotNil(f.BornAfter)
			suite.Equal(testutils.Date("1980-01-01"), *f.BornAfter)
			suite.Nil(f.BornBefore)
			return nil, 0, nil
		})

	_, err := suite.playerService.SearchPlayers(suite.ctx, &service.PlayerSearchRequest{BornAfter: "1980-01-01"})
	suite.NoError(err)
}

func (suite *PlayerServiceTestSuite) TestSearchPlayersValidation() {
	zero, huge := 0, 1<<40
	testCases := []struct {
		name  string
		req   *service.PlayerSearchRequest
		field string
	}{
		{"malformed date", &service.PlayerSearchRequest{DebutBefore: "2014/01/01"}, "debutBefore"},
		{"unknown hand", &service.PlayerSearchRequest{BattingHand: "X"}, "battingHand"},
		{"page below one", &service.PlayerSearchRequest{Page: &zero}, "page"},
		{"page past the last offset", &service.PlayerSearchRequest{Page: &huge}, "page"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := suite.playerService.SearchPlayers(suite.ctx, tc.req)

			var verr *apperrors.ValidationError
			suite.Require().ErrorAs(err, &verr)
			suite.Equal(tc.field, verr.Field)
		})
	}
}

func (suite *PlayerServiceTestSuite) TestHeadToHead() {
	outcomes := []repository.OutcomeCount{{Outcome: "Single", Occurrences: 2}}
	suite.mockEventRepo.EXPECT().HeadToHead(gomock.Any(), "ortid001", "sabac001").Return(outcomes, nil)

	result, err := suite.playerService.HeadToHead(suite.ctx, "ortid001", "sabac001")

	suite.NoError(err)
	suite.Equal(outcomes, result)
}

func (suite *PlayerServiceTestSuite) TestHeadToHeadMissingParameters() {
	_, err := suite.playerService.HeadToHead(suite.ctx, "", "sabac001")
	suite.ErrorIs(err, apperrors.ErrBatterIDMissing)

	_, err = suite.playerService.HeadToHead(suite.ctx, "ortid001", "")
	suite.ErrorIs(err, apperrors.ErrPitcherIDMissing)
}

func (suite *PlayerServiceTestSuite) TestBattingStats() {
	suite.mockEventRepo.EXPECT().
		PlayerSplit(gomock.Any(), repository.RoleBatter, repository.SplitFilter{
			PlayerID: "ortid001",
			Start:    testutils.Date("2011-01-01"),
			End:      testutils.Date("2016-01-01"),
		}).
		Return(&repository.OutcomeTotals{
			PlateAppearances: 4, AtBats: 4, Hits: 3,
			Singles: 2, HomeRuns: 1, Strikeouts: 1,
		}, nil)

	stats, err := suite.playerService.BattingStats(suite.ctx, &service.SplitRequest{PlayerID: "ortid001"})

	suite.Require().NoError(err)
	suite.Equal(int64(2), stats.Singles)
	suite.Equal(int64(1), stats.Homeruns)
	suite.Equal(int64(4), stats.AtBats)
	suite.Require().NotNil(stats.BattingAvg)
	suite.InDelta(0.75, *stats.BattingAvg, 1e-9)
}

func (suite *PlayerServiceTestSuite) TestBattingStatsWithoutAtBats() {
	suite.mockEventRepo.EXPECT().
		PlayerSplit(gomock.Any(), repository.RoleBatter, gomock.Any()).
		Return(&repository.OutcomeTotals{PlateAppearances: 2, Walks: 2}, nil)

	stats, err := suite.playerService.BattingStats(suite.ctx, &service.SplitRequest{PlayerID: "ortid001"})

	suite.Require().NoError(err)
	suite.Nil(stats.BattingAvg)
	suite.Equal(int64(2), stats.Walks)
}

func (suite *PlayerServiceTestSuite) TestBattingStatsFilters() {
	suite.mockEventRepo.EXPECT().
		PlayerSplit(gomock.Any(), repository.RoleBatter, repository.SplitFilter{
			PlayerID:     "ortid001",
			Start:        testutils.Date("2014-01-01"),
			End:          testutils.Date("2014-07-01"),
			AgainstTeams: []int{2, 3},
			OpponentHand: "L",
		}).
		Return(&repository.OutcomeTotals{}, nil)

	_, err := suite.playerService.BattingStats(suite.ctx, &service.SplitRequest{
		PlayerID:     "ortid001",
		DateStart:    "2014-01-01",
		DateEnd:      "2014-07-01",
		AgainstTeams: "2, 3",
		Hand:         "L",
	})
	suite.NoError(err)
}

func (suite *PlayerServiceTestSuite) TestBattingStatsRejectsInput() {
	_, err := suite.playerService.BattingStats(suite.ctx, &service.SplitRequest{})
	suite.ErrorIs(err, apperrors.ErrPlayerIDMissing)

	_, err = suite.playerService.BattingStats(suite.ctx, &service.SplitRequest{PlayerID: "ortid001", DateStart: "14-01-2014"})
	suite.True(apperrors.IsValidation(err))

	_, err = suite.playerService.BattingStats(suite.ctx, &service.SplitRequest{
		PlayerID: "ortid001", DateStart: "2015-01-01", DateEnd: "2014-01-01",
	})
	suite.ErrorIs(err, apperrors.ErrInvalidTimeRange)

	_, err = suite.playerService.BattingStats(suite.ctx, &service.SplitRequest{PlayerID: "ortid001", AgainstTeams: "BOS"})
	suite.True(apperrors.IsValidation(err))
}

func (suite *PlayerServiceTestSuite) TestPitchingStats() {
	suite.mockEventRepo.EXPECT().
		PlayerSplit(gomock.Any(), repository.RolePitcher, gomock.Any()).
		Return(&repository.OutcomeTotals{PlateAppearances: 10, Strikeouts: 4, Hits: 3, HomeRuns: 1, Walks: 1}, nil)

	stats, err := suite.playerService.PitchingStats(suite.ctx, &service.SplitRequest{PlayerID: "sabac001", AgainstTeams: "-1"})

	suite.Require().NoError(err)
	suite.Equal(int64(10), stats.BattersFaced)
	suite.Equal(int64(3), stats.HitsAllowed)
	suite.Equal(int64(1), stats.HomerunsAllowed)
	suite.InDelta(0.4, *stats.StrikeoutRate, 1e-9)
}

func (suite *PlayerServiceTestSuite) TestPitchingStatsWithoutBattersFaced() {
	suite.mockEventRepo.EXPECT().
		PlayerSplit(gomock.Any(), repository.RolePitcher, gomock.Any()).
		Return(&repository.OutcomeTotals{}, nil)

	stats, err := suite.playerService.PitchingStats(suite.ctx, &service.SplitRequest{PlayerID: "sabac001"})

	suite.Require().NoError(err)
	suite.Nil(stats.StrikeoutRate)
}

func (suite *PlayerServiceTestSuite) TestBattingTrendQueriesEachSeason() {
	var seasons []int
	suite.mockEventRepo.EXPECT().
		PlayerSplit(gomock.Any(), repository.RoleBatter, gomock.Any()).
		Times(5).
		DoAndReturn(func(_ context.Context, _ repository.Role, f repository.SplitFilter) (*repository.OutcomeTotals, error) {
			seasons = append(seasons, f.Start.Year())
			suite.Equal(f.Start.Year()+1, f.End.Year())
			return &repository.OutcomeTotals{AtBats: 2, Hits: 1}, nil
		})

	trend, err := suite.playerService.BattingTrend(suite.ctx, "ortid001")

	suite.Require().NoError(err)
	suite.Equal([]int{2011, 2012, 2013, 2014, 2015}, seasons)
	suite.Len(trend, 5)
	suite.Equal(2011, trend[0].Season)
	suite.InDelta(0.5, *trend[4].BattingAvg, 1e-9)
}

func (suite *PlayerServiceTestSuite) TestPitchingTrendStopsOnFailure() {
	suite.mockEventRepo.EXPECT().
		PlayerSplit(gomock.Any(), repository.RolePitcher, gomock.Any()).
		Return(nil, errors.New("timeout"))

	trend, err := suite.playerService.PitchingTrend(suite.ctx, "sabac001")

	suite.Nil(trend)
	suite.True(apperrors.IsQueryError(err))
}

// TestPlayerServiceTestSuite runs the test suite
func TestPlayerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PlayerServiceTestSuite))
}
