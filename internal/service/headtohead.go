package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"baseball-stats-backend/internal/config"
	"baseball-stats-backend/internal/database/models"
	apperrors "baseball-stats-backend/internal/errors"
	"baseball-stats-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// HeadToHeadService computes reports over the games between two teams
type HeadToHeadService struct {
	teams     repository.TeamRepositoryInterface
	games     repository.GameRepositoryInterface
	events    repository.EventRepositoryInterface
	validator *validator.Validate
	reports   config.ReportConfig
}

// NewHeadToHeadService creates a new head-to-head service
func NewHeadToHeadService(teams repository.TeamRepositoryInterface, games repository.GameRepositoryInterface, events repository.EventRepositoryInterface, validator *validator.Validate, reports config.ReportConfig) *HeadToHeadService {
	return &HeadToHeadService{
		teams:     teams,
		games:     games,
		events:    events,
		validator: validator,
		reports:   reports,
	}
}

// LeadersRequest selects two teams and the leader-board thresholds. Nil
// thresholds and Ranked fall back to the configured defaults.
type LeadersRequest struct {
	Team1        string `form:"-"`
	Team2        string `form:"-"`
	BattersFaced *int   `form:"batters_faced" validate:"omitempty,min=0"`
	AtBats       *int   `form:"at_bats" validate:"omitempty,min=0"`
	Ranked       *bool  `form:"ranked"`
}

// TeamSnapshot is one side of a head-to-head snapshot. The run statistics
// are null when the side played no qualifying game.
type TeamSnapshot struct {
	Team      string   `json:"team"`
	Wins      int64    `json:"wins"`
	Games     int64    `json:"games"`
	TotalRuns int64    `json:"total_runs"`
	AvgRuns   *float64 `json:"avg_runs"`
	MaxRuns   *int64   `json:"max_runs"`
	MinRuns   *int64   `json:"min_runs"`
}

// PitchingLeader is a pitcher's line against the opposing team
type PitchingLeader struct {
	PlayerID      string   `json:"id"`
	FirstName     string   `json:"firstname"`
	LastName      string   `json:"lastname"`
	Team          string   `json:"team"`
	Strikeouts    int64    `json:"strikeouts"`
	BattersFaced  int64    `json:"batters_faced"`
	StrikeoutRate *float64 `json:"strikeout_rate"`
}

// BattingLeader is a batter's line against the opposing team
type BattingLeader struct {
	PlayerID   string   `json:"id"`
	FirstName  string   `json:"firstname"`
	LastName   string   `json:"lastname"`
	Team       string   `json:"team"`
	AtBats     int64    `json:"at_bats"`
	Hits       int64    `json:"hits"`
	Singles    int64    `json:"singles"`
	Doubles    int64    `json:"doubles"`
	Triples    int64    `json:"triples"`
	Homeruns   int64    `json:"homeruns"`
	Walks      int64    `json:"walks"`
	BattingAvg *float64 `json:"batting_avg"`
}

// matchup is a pair of teams resolved to their stored names and their ids
// within the reporting window
type matchup struct {
	names  [2]string
	filter repository.MatchupFilter
}

func (m matchup) sideName(side int) string {
	if side == 2 {
		return m.names[1]
	}
	return m.names[0]
}

// DecodeTeamName turns the hyphen-for-space URL form of a team name back
// into its display form.
func DecodeTeamName(raw string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(raw, "-", " ")), " ")
}

// resolveMatchup decodes both team names and resolves them to team ids. It
// runs before any report query.
func (s *HeadToHeadService) resolveMatchup(ctx context.Context, team1, team2 string) (*matchup, error) {
	name1, name2 := DecodeTeamName(team1), DecodeTeamName(team2)
	if name1 == "" {
		return nil, apperrors.ErrTeamOneMissing
	}
	if name2 == "" {
		return nil, apperrors.ErrTeamTwoMissing
	}
	if strings.EqualFold(name1, name2) {
		return nil, apperrors.ErrSameTeam
	}

	stored1, ids1, err := s.resolveTeam(ctx, name1)
	if err != nil {
		return nil, err
	}
	stored2, ids2, err := s.resolveTeam(ctx, name2)
	if err != nil {
		return nil, err
	}
	for _, a := range ids1 {
		for _, b := range ids2 {
			if a == b {
				return nil, apperrors.ErrSameTeam
			}
		}
	}

	return &matchup{
		names: [2]string{stored1, stored2},
		filter: repository.MatchupFilter{
			Team1: ids1,
			Team2: ids2,
			From:  yearStart(s.reports.FirstYear),
		},
	}, nil
}

// resolveTeam returns the team's name as stored along with every id it
// carried inside the reporting window
func (s *HeadToHeadService) resolveTeam(ctx context.Context, name string) (string, []int, error) {
	teams, err := s.teams.ResolveTeam(ctx, name, s.reports.FirstYear, s.reports.LastYear)
	if err != nil {
		return "", nil, err
	}
	if len(teams) == 0 {
		return "", nil, fmt.Errorf("%s: %w", name, apperrors.ErrTeamNotFound)
	}
	ids := make([]int, 0, len(teams))
	for _, t := range teams {
		if len(ids) == 0 || ids[len(ids)-1] != t.TeamID {
			ids = append(ids, t.TeamID)
		}
	}
	return teams[0].Name, ids, nil
}

// GameDates lists every game between two teams in date order
func (s *HeadToHeadService) GameDates(ctx context.Context, team1, team2 string) (games []repository.GameResult, err error) {
	defer func(start time.Time) { err = finish(ctx, reportGameDates, start, err) }(time.Now())

	m, err := s.resolveMatchup(ctx, team1, team2)
	if err != nil {
		return nil, err
	}
	return s.games.GamesBetween(ctx, m.filter)
}

// Snapshot summarizes wins and runs for both teams over their games against
// each other. field restricts each side to its home or away games.
func (s *HeadToHeadService) Snapshot(ctx context.Context, team1, team2, field string) (snapshot []TeamSnapshot, err error) {
	defer func(start time.Time) { err = finish(ctx, reportSnapshot, start, err) }(time.Now())

	venue := models.Venue(strings.ToLower(strings.TrimSpace(field)))
	if !venue.IsValid() {
		return nil, apperrors.NewValidationError("field", "must be home or away")
	}

	m, err := s.resolveMatchup(ctx, team1, team2)
	if err != nil {
		return nil, err
	}

	rows, err := s.games.Snapshot(ctx, m.filter, venue)
	if err != nil {
		return nil, err
	}

	snapshot = []TeamSnapshot{{Team: m.names[0]}, {Team: m.names[1]}}
	for _, r := range rows {
		if r.Side != 1 && r.Side != 2 {
			continue
		}
		side := &snapshot[r.Side-1]
		side.Wins = r.Wins
		side.Games = r.Games
		side.TotalRuns = r.TotalRuns
		side.AvgRuns = r.AvgRuns
		side.MaxRuns = r.MaxRuns
		side.MinRuns = r.MinRuns
	}
	return snapshot, nil
}

// PitchingLeaders ranks the pitchers of both teams by strikeout rate against
// the other team, keeping those above the batters-faced threshold.
func (s *HeadToHeadService) PitchingLeaders(ctx context.Context, req *LeadersRequest) (leaders []PitchingLeader, err error) {
	defer func(start time.Time) { err = finish(ctx, reportPitchingLeaders, start, err) }(time.Now())

	m, err := s.leadersMatchup(ctx, req)
	if err != nil {
		return nil, err
	}

	filter := repository.LeaderFilter{
		MatchupFilter:   m.filter,
		MinBattersFaced: s.reports.PitchingMinBattersFaced,
	}
	if req.BattersFaced != nil {
		filter.MinBattersFaced = *req.BattersFaced
	}

	rows, err := s.events.Leaders(ctx, repository.RolePitcher, filter)
	if err != nil {
		return nil, err
	}

	leaders = make([]PitchingLeader, 0, len(rows))
	for _, r := range rows {
		leaders = append(leaders, PitchingLeader{
			PlayerID:      r.PlayerID,
			FirstName:     r.FirstName,
			LastName:      r.LastName,
			Team:          m.sideName(r.Side),
			Strikeouts:    r.Strikeouts,
			BattersFaced:  r.PlateAppearances,
			StrikeoutRate: Rate(r.Strikeouts, r.PlateAppearances),
		})
	}

	sort.SliceStable(leaders, func(i, j int) bool {
		a, b := leaders[i], leaders[j]
		if c := compareRates(a.StrikeoutRate, b.StrikeoutRate); c != 0 {
			return c > 0
		}
		if a.Strikeouts != b.Strikeouts {
			return a.Strikeouts > b.Strikeouts
		}
		return a.PlayerID < b.PlayerID
	})
	return leaders, nil
}

// BattingLeaders lists the batters of both teams against the other team.
// Rows keep the query order (team, last name) unless ranking is enabled,
// in which case they are ordered by batting average.
func (s *HeadToHeadService) BattingLeaders(ctx context.Context, req *LeadersRequest) (leaders []BattingLeader, err error) {
	defer func(start time.Time) { err = finish(ctx, reportBattingLeaders, start, err) }(time.Now())

	m, err := s.leadersMatchup(ctx, req)
	if err != nil {
		return nil, err
	}

	filter := repository.LeaderFilter{
		MatchupFilter: m.filter,
		MinAtBats:     s.reports.BattingMinAtBats,
	}
	if req.AtBats != nil {
		filter.MinAtBats = *req.AtBats
	}

	rows, err := s.events.Leaders(ctx, repository.RoleBatter, filter)
	if err != nil {
		return nil, err
	}

	leaders = make([]BattingLeader, 0, len(rows))
	for _, r := range rows {
		leaders = append(leaders, BattingLeader{
			PlayerID:   r.PlayerID,
			FirstName:  r.FirstName,
			LastName:   r.LastName,
			Team:       m.sideName(r.Side),
			AtBats:     r.AtBats,
			Hits:       r.Hits,
			Singles:    r.Singles,
			Doubles:    r.Doubles,
			Triples:    r.Triples,
			Homeruns:   r.HomeRuns,
			Walks:      r.Walks,
			BattingAvg: Rate(r.Hits, r.AtBats),
		})
	}

	ranked := s.reports.BattingLeadersRanked
	if req.Ranked != nil {
		ranked = *req.Ranked
	}
	if ranked {
		sort.SliceStable(leaders, func(i, j int) bool {
			if c := compareRates(leaders[i].BattingAvg, leaders[j].BattingAvg); c != 0 {
				return c > 0
			}
			return leaders[i].Hits > leaders[j].Hits
		})
	}
	return leaders, nil
}

func (s *HeadToHeadService) leadersMatchup(ctx context.Context, req *LeadersRequest) (*matchup, error) {
	if req == nil {
		return nil, apperrors.ErrTeamOneMissing
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	return s.resolveMatchup(ctx, req.Team1, req.Team2)
}

// compareRates orders rates with undefined rates below every defined one
func compareRates(a, b *float64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	case *a > *b:
		return 1
	case *a < *b:
		return -1
	}
	return 0
}
