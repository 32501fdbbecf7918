package handlers_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"baseball-stats-backend/internal/api/handlers"
	apperrors "baseball-stats-backend/internal/errors"
	"baseball-stats-backend/internal/mocks"
	"baseball-stats-backend/internal/repository"
	"baseball-stats-backend/internal/service"
	"baseball-stats-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// HeadToHeadHandlerTestSuite defines the test suite for HeadToHeadHandler
type HeadToHeadHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockHeadToHeadServiceInterface
	handler     *handlers.HeadToHeadHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *HeadToHeadHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockHeadToHeadServiceInterface(suite.ctrl)
	suite.handler = handlers.NewHeadToHeadHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	teams := suite.httpSuite.Router.Group("/head2head/teams")
	{
		teams.GET("/games/:team1/:team2", suite.handler.GameDates)
		teams.GET("/pitchers/:team1/:team2", suite.handler.PitchingLeaders)
		teams.GET("/batters/:team1/:team2", suite.handler.BattingLeaders)
		teams.GET("/:team1/:team2", suite.handler.Snapshot)
	}
}

// TearDownTest cleans up after each test
func (suite *HeadToHeadHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *HeadToHeadHandlerTestSuite) TestGameDates() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			GameDates(gomock.Any(), "Boston-Red-Sox", "New-York-Yankees").
			Return([]repository.GameResult{
				{ID: "BOS201404100", Date: testutils.Date("2014-04-10"), HomeTeam: "Boston Red Sox", HomeScore: 4, AwayTeam: "New York Yankees", AwayScore: 2},
			}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/head2head/teams/games/Boston-Red-Sox/New-York-Yankees")

		var response struct {
			Result []map[string]interface{} `json:"result"`
		}
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response.Result, 1)
		assert.Equal(t, "Boston Red Sox", response.Result[0]["HomeTeam"])
		assert.Equal(t, float64(2), response.Result[0]["AwayScore"])
		assert.NotContains(t, response.Result[0], "ID")
	})

	suite.T().Run("SameTeam", func(t *testing.T) {
		suite.mockService.EXPECT().
			GameDates(gomock.Any(), "Boston-Red-Sox", "Boston-Red-Sox").
			Return(nil, apperrors.ErrSameTeam)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/head2head/teams/games/Boston-Red-Sox/Boston-Red-Sox")

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "two different teams")
	})

	suite.T().Run("UnknownTeam", func(t *testing.T) {
		suite.mockService.EXPECT().
			GameDates(gomock.Any(), "Boston-Red-Sox", "Brooklyn-Dodgers").
			Return(nil, fmt.Errorf("%s: %w", "Brooklyn Dodgers", apperrors.ErrTeamNotFound))

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/head2head/teams/games/Boston-Red-Sox/Brooklyn-Dodgers")

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "Brooklyn Dodgers: team not found")
	})
}

func (suite *HeadToHeadHandlerTestSuite) TestSnapshot() {
	suite.T().Run("PassesField", func(t *testing.T) {
		avg := 4.5
		suite.mockService.EXPECT().
			Snapshot(gomock.Any(), "Boston-Red-Sox", "New-York-Yankees", "home").
			Return([]service.TeamSnapshot{
				{Team: "Boston Red Sox", Wins: 2, Games: 2, TotalRuns: 9, AvgRuns: &avg},
				{Team: "New York Yankees"},
			}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/head2head/teams/Boston-Red-Sox/New-York-Yankees?field=home")

		var response struct {
			Result []map[string]interface{} `json:"result"`
		}
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response.Result, 2)
		assert.Equal(t, 4.5, response.Result[0]["avg_runs"])
		assert.Nil(t, response.Result[1]["avg_runs"])
		assert.Equal(t, float64(0), response.Result[1]["games"])
	})

	suite.T().Run("InvalidField", func(t *testing.T) {
		suite.mockService.EXPECT().
			Snapshot(gomock.Any(), gomock.Any(), gomock.Any(), "neutral").
			Return(nil, apperrors.NewValidationError("field", "must be home or away"))

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/head2head/teams/Boston-Red-Sox/New-York-Yankees?field=neutral")

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "field")
	})
}

func (suite *HeadToHeadHandlerTestSuite) TestPitchingLeaders() {
	suite.T().Run("BindsThreshold", func(t *testing.T) {
		rate := 0.3
		suite.mockService.EXPECT().
			PitchingLeaders(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *service.LeadersRequest) ([]service.PitchingLeader, error) {
				assert.Equal(t, "Boston-Red-Sox", req.Team1)
				assert.Equal(t, "New-York-Yankees", req.Team2)
				assert.Equal(t, 10, *req.BattersFaced)
				return []service.PitchingLeader{{PlayerID: "sabac001", Team: "New York Yankees", Strikeouts: 9, BattersFaced: 30, StrikeoutRate: &rate}}, nil
			})

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/head2head/teams/pitchers/Boston-Red-Sox/New-York-Yankees?batters_faced=10")

		var response struct {
			Result []map[string]interface{} `json:"result"`
		}
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, "sabac001", response.Result[0]["id"])
		assert.Equal(t, 0.3, response.Result[0]["strikeout_rate"])
	})

	suite.T().Run("MalformedThreshold", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/head2head/teams/pitchers/Boston-Red-Sox/New-York-Yankees?batters_faced=many")

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "validation error")
	})
}

func (suite *HeadToHeadHandlerTestSuite) TestBattingLeaders() {
	suite.mockService.EXPECT().
		BattingLeaders(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *service.LeadersRequest) ([]service.BattingLeader, error) {
			suite.Nil(req.AtBats)
			suite.Require().NotNil(req.Ranked)
			suite.True(*req.Ranked)
			return []service.BattingLeader{{PlayerID: "ortid001", AtBats: 4, Hits: 3, Homeruns: 1}}, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/head2head/teams/batters/Boston-Red-Sox/New-York-Yankees?ranked=true")

	var response struct {
		Result []map[string]interface{} `json:"result"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(float64(1), response.Result[0]["homeruns"])
	suite.Nil(response.Result[0]["batting_avg"])
}

// TestHeadToHeadHandlerTestSuite runs the test suite
func TestHeadToHeadHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HeadToHeadHandlerTestSuite))
}
