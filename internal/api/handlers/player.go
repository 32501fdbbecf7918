package handlers

import (
	"net/http"

	"baseball-stats-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PlayerHandler handles HTTP requests for player lookups and player reports
type PlayerHandler struct {
	playerService service.PlayerServiceInterface
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerService service.PlayerServiceInterface) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
	}
}

// GetPlayer handles GET /player/:playerId
// @Summary Get player by ID
// @Description Get a player's biographical record by its Retrosheet-style id
// @Tags players
// @Produce json
// @Param playerId path string true "Player ID" example(ortid001)
// @Success 200 {object} ResultResponse{result=models.Player} "Successfully retrieved player"
// @Failure 404 {object} ErrorResponse "Player not found"
// @Failure 400 {object} ErrorResponse "Query failure"
// @Router /player/{playerId} [get]
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	player, err := h.playerService.GetPlayer(c.Request.Context(), c.Param("playerId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondResult(c, player)
}

// SearchPlayers handles GET /players
// @Summary Search players
// @Description List players, optionally filtered by name, country, dates, size and handedness. Paginated only when page or pagesize is given.
// @Tags players
// @Produce json
// @Param playerName query string false "Case-insensitive substring of the full name"
// @Param birthCountry query string false "Birth country"
// @Param bornBefore query string false "Born before (YYYY-MM-DD)"
// @Param bornAfter query string false "Born after (YYYY-MM-DD)"
// @Param debutBefore query string false "Debut before (YYYY-MM-DD)"
// @Param debutAfter query string false "Debut after (YYYY-MM-DD)"
// @Param minHeight query int false "Minimum height (inches)"
// @Param maxHeight query int false "Maximum height (inches)"
// @Param minWeight query int false "Minimum weight (pounds)"
// @Param maxWeight query int false "Maximum weight (pounds)"
// @Param battingHand query string false "Batting side" Enums(L, R, B)
// @Param throwingHand query string false "Throwing arm" Enums(L, R, B)
// @Param page query int false "Page number"
// @Param pagesize query int false "Page size"
// @Success 200 {object} service.PlayerListResponse "Matching players"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Router /players [get]
func (h *PlayerHandler) SearchPlayers(c *gin.Context) {
	var req service.PlayerSearchRequest
	if !bindQuery(c, &req) {
		return
	}

	resp, err := h.playerService.SearchPlayers(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListBatters handles GET /batters
// @Summary List batters
// @Description List every player with at least one plate appearance as a batter
// @Tags players
// @Produce json
// @Success 200 {object} ResultResponse{result=[]models.Player}
// @Failure 400 {object} ErrorResponse "Query failure"
// @Router /batters [get]
func (h *PlayerHandler) ListBatters(c *gin.Context) {
	players, err := h.playerService.ListBatters(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondResult(c, players)
}

// ListPitchers handles GET /pitchers
// @Summary List pitchers
// @Description List every player with at least one plate appearance as a pitcher
// @Tags players
// @Produce json
// @Success 200 {object} ResultResponse{result=[]models.Player}
// @Failure 400 {object} ErrorResponse "Query failure"
// @Router /pitchers [get]
func (h *PlayerHandler) ListPitchers(c *gin.Context) {
	players, err := h.playerService.ListPitchers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondResult(c, players)
}

// HeadToHead handles GET /head2head/players
// @Summary Batter versus pitcher
// @Description Count each outcome of the plate appearances between a batter and a pitcher
// @Tags players
// @Produce json
// @Param batter query string true "Batter ID"
// @Param pitcher query string true "Pitcher ID"
// @Success 200 {object} ResultResponse{result=[]repository.OutcomeCount}
// @Failure 404 {object} ErrorResponse "Missing batter or pitcher"
// @Failure 400 {object} ErrorResponse "Query failure"
// @Router /head2head/players [get]
func (h *PlayerHandler) HeadToHead(c *gin.Context) {
	outcomes, err := h.playerService.HeadToHead(c.Request.Context(), c.Query("batter"), c.Query("pitcher"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondResult(c, outcomes)
}

// BattingStats handles GET /player/batstats/:playerId
// @Summary Batting split
// @Description Batting line over [dateStart, dateEnd), optionally against some teams and a pitcher's throwing arm
// @Tags player-stats
// @Produce json
// @Param playerId path string true "Player ID"
// @Param dateStart query string false "Inclusive start (YYYY-MM-DD)" default(2011-01-01)
// @Param dateEnd query string false "Exclusive end (YYYY-MM-DD)" default(2016-01-01)
// @Param againstTeams query string false "Comma-separated team ids, -1 for all"
// @Param pitcherHand query string false "Pitcher throwing arm" Enums(L, R, B)
// @Success 200 {object} ResultResponse{result=service.BattingStats}
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Router /player/batstats/{playerId} [get]
func (h *PlayerHandler) BattingStats(c *gin.Context) {
	req, ok := splitRequest(c, "pitcherHand")
	if !ok {
		return
	}

	stats, err := h.playerService.BattingStats(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondResult(c, stats)
}

// PitchingStats handles GET /player/pitchstats/:playerId
// @Summary Pitching split
// @Description Pitching line over [dateStart, dateEnd), optionally against some teams and a batter's side
// @Tags player-stats
// @Produce json
// @Param playerId path string true "Player ID"
// @Param dateStart query string false "Inclusive start (YYYY-MM-DD)" default(2011-01-01)
// @Param dateEnd query string false "Exclusive end (YYYY-MM-DD)" default(2016-01-01)
// @Param againstTeams query string false "Comma-separated team ids, -1 for all"
// @Param batterHand query string false "Batter side" Enums(L, R, B)
// @Success 200 {object} ResultResponse{result=service.PitchingStats}
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Router /player/pitchstats/{playerId} [get]
func (h *PlayerHandler) PitchingStats(c *gin.Context) {
	req, ok := splitRequest(c, "batterHand")
	if !ok {
		return
	}

	stats, err := h.playerService.PitchingStats(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondResult(c, stats)
}

// BattingTrend handles GET /player/batstats/:playerId/trend
// @Summary Batting trend
// @Description Batting line for each season of the reporting window
// @Tags player-stats
// @Produce json
// @Param playerId path string true "Player ID"
// @Success 200 {object} ResultResponse{result=[]service.SeasonBattingStats}
// @Failure 400 {object} ErrorResponse "Query failure"
// @Router /player/batstats/{playerId}/trend [get]
func (h *PlayerHandler) BattingTrend(c *gin.Context) {
	trend, err := h.playerService.BattingTrend(c.Request.Context(), c.Param("playerId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondResult(c, trend)
}

// PitchingTrend handles GET /player/pitchstats/:playerId/trend
// @Summary Pitching trend
// @Description Pitching line for each season of the reporting window
// @Tags player-stats
// @Produce json
// @Param playerId path string true "Player ID"
// @Success 200 {object} ResultResponse{result=[]service.SeasonPitchingStats}
// @Failure 400 {object} ErrorResponse "Query failure"
// @Router /player/pitchstats/{playerId}/trend [get]
func (h *PlayerHandler) PitchingTrend(c *gin.Context) {
	trend, err := h.playerService.PitchingTrend(c.Request.Context(), c.Param("playerId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondResult(c, trend)
}

// splitRequest binds a split request; handKey names the query parameter
// carrying the opposing player's hand.
func splitRequest(c *gin.Context, handKey string) (*service.SplitRequest, bool) {
	var req service.SplitRequest
	if !bindQuery(c, &req) {
		return nil, false
	}
	req.PlayerID = c.Param("playerId")
	req.Hand = c.Query(handKey)
	return &req, true
}
