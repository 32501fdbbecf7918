package handlers

import (
	"net/http"
	"strconv"
	"strings"

	apperrors "baseball-stats-backend/internal/errors"
	"baseball-stats-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team listings and season reports
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// TeamListResponse carries (team id, name) pairs
type TeamListResponse struct {
	Data [][]interface{} `json:"data"`
}

// ListTeams handles GET /teams
// @Summary List teams
// @Description List every (team id, name) pair in the reporting window. A franchise that was renamed appears once per name.
// @Tags teams
// @Produce json
// @Success 200 {object} TeamListResponse "Pairs of [teamId, name]"
// @Failure 400 {object} ErrorResponse "Query failure"
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	teams, err := h.teamService.ListTeams(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	data := make([][]interface{}, 0, len(teams))
	for _, t := range teams {
		data = append(data, []interface{}{t.TeamID, t.Name})
	}
	c.JSON(http.StatusOK, TeamListResponse{Data: data})
}

// Roster handles GET /teams/:teamId
// @Summary Team roster
// @Description List the players on a team's roster for a season
// @Tags teams
// @Produce json
// @Param teamId path int true "Team ID"
// @Param year query int false "Season" default(2014)
// @Success 200 {object} ResultResponse{result=[]repository.RosterEntry}
// @Failure 400 {object} ErrorResponse "Invalid team id or year"
// @Router /teams/{teamId} [get]
func (h *TeamHandler) Roster(c *gin.Context) {
	raw := strings.TrimSpace(c.Param("teamId"))
	if raw == "" {
		respondError(c, apperrors.ErrTeamIDMissing)
		return
	}
	teamID, err := strconv.Atoi(raw)
	if err != nil {
		respondError(c, apperrors.NewValidationError("teamId", "must be an integer"))
		return
	}

	var year *int
	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, apperrors.NewValidationError("year", "must be an integer"))
			return
		}
		year = &y
	}

	roster, err := h.teamService.Roster(c.Request.Context(), teamID, year)
	if err != nil {
		respondError(c, err)
		return
	}
	respondResult(c, roster)
}

// TeamWins handles GET /teams/wins
// @Summary Team wins
// @Description Home, away and total wins of every team over the reporting window
// @Tags teams
// @Produce json
// @Success 200 {object} ResultResponse{result=[]repository.TeamWinsRow}
// @Failure 400 {object} ErrorResponse "Query failure"
// @Router /teams/wins [get]
func (h *TeamHandler) TeamWins(c *gin.Context) {
	rows, err := h.teamService.TeamWins(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondResult(c, rows)
}

// Leaderboard handles GET /teams/season/leaderboard
// @Summary Season leaderboard
// @Description Teams of a season ordered by total wins, ties broken by name
// @Tags teams
// @Produce json
// @Param year query int false "Season" default(2014)
// @Param pagesize query int false "Number of teams" default(10)
// @Success 200 {object} ResultResponse{result=[]repository.StandingRow}
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Router /teams/season/leaderboard [get]
func (h *TeamHandler) Leaderboard(c *gin.Context) {
	var req service.LeaderboardRequest
	if !bindQuery(c, &req) {
		return
	}

	rows, err := h.teamService.Leaderboard(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondResult(c, rows)
}
