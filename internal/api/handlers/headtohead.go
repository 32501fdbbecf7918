package handlers

import (
	"baseball-stats-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// HeadToHeadHandler handles HTTP requests for team-versus-team reports.
// Team names travel in the path with hyphens standing for spaces.
type HeadToHeadHandler struct {
	headToHeadService service.HeadToHeadServiceInterface
}

// NewHeadToHeadHandler creates a new head-to-head handler
func NewHeadToHeadHandler(headToHeadService service.HeadToHeadServiceInterface) *HeadToHeadHandler {
	return &HeadToHeadHandler{
		headToHeadService: headToHeadService,
	}
}

// GameDates handles GET /head2head/teams/games/:team1/:team2
// @Summary Games between two teams
// @Description Every game between two teams since the start of the reporting window, in date order
// @Tags head-to-head
// @Produce json
// @Param team1 path string true "First team name, hyphens for spaces" example(Boston-Red-Sox)
// @Param team2 path string true "Second team name, hyphens for spaces" example(New-York-Yankees)
// @Success 200 {object} ResultResponse{result=[]repository.GameResult}
// @Failure 400 {object} ErrorResponse "Same team or query failure"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Router /head2head/teams/games/{team1}/{team2} [get]
func (h *HeadToHeadHandler) GameDates(c *gin.Context) {
	games, err := h.headToHeadService.GameDates(c.Request.Context(), c.Param("team1"), c.Param("team2"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondResult(c, games)
}

// Snapshot handles GET /head2head/teams/:team1/:team2
// @Summary Head-to-head snapshot
// @Description Wins and run statistics of both teams over their games against each other
// @Tags head-to-head
// @Produce json
// @Param team1 path string true "First team name, hyphens for spaces"
// @Param team2 path string true "Second team name, hyphens for spaces"
// @Param field query string false "Restrict each side to its home or away games" Enums(home, away)
// @Success 200 {object} ResultResponse{result=[]service.TeamSnapshot}
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Router /head2head/teams/{team1}/{team2} [get]
func (h *HeadToHeadHandler) Snapshot(c *gin.Context) {
	snapshot, err := h.headToHeadService.Snapshot(c.Request.Context(), c.Param("team1"), c.Param("team2"), c.Query("field"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondResult(c, snapshot)
}

// PitchingLeaders handles GET /head2head/teams/pitchers/:team1/:team2
// @Summary Pitching leaders
// @Description Pitchers of both teams ranked by strikeout rate against the other team
// @Tags head-to-head
// @Produce json
// @Param team1 path string true "First team name, hyphens for spaces"
// @Param team2 path string true "Second team name, hyphens for spaces"
// @Param batters_faced query int false "Batters-faced threshold (exclusive)" default(25)
// @Success 200 {object} ResultResponse{result=[]service.PitchingLeader}
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Router /head2head/teams/pitchers/{team1}/{team2} [get]
func (h *HeadToHeadHandler) PitchingLeaders(c *gin.Context) {
	req, ok := leadersRequest(c)
	if !ok {
		return
	}

	leaders, err := h.headToHeadService.PitchingLeaders(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondResult(c, leaders)
}

// BattingLeaders handles GET /head2head/teams/batters/:team1/:team2
// @Summary Batting leaders
// @Description Batters of both teams against the other team
// @Tags head-to-head
// @Produce json
// @Param team1 path string true "First team name, hyphens for spaces"
// @Param team2 path string true "Second team name, hyphens for spaces"
// @Param at_bats query int false "Minimum at-bats" default(0)
// @Param ranked query bool false "Order by batting average"
// @Success 200 {object} ResultResponse{result=[]service.BattingLeader}
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Router /head2head/teams/batters/{team1}/{team2} [get]
func (h *HeadToHeadHandler) BattingLeaders(c *gin.Context) {
	req, ok := leadersRequest(c)
	if !ok {
		return
	}

	leaders, err := h.headToHeadService.BattingLeaders(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondResult(c, leaders)
}

func leadersRequest(c *gin.Context) (*service.LeadersRequest, bool) {
	var req service.LeadersRequest
	if !bindQuery(c, &req) {
		return nil, false
	}
	req.Team1 = c.Param("team1")
	req.Team2 = c.Param("team2")
	return &req, true
}
