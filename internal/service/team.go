package service

import (
	"context"
	"fmt"
	"time"

	"baseball-stats-backend/internal/config"
	apperrors "baseball-stats-backend/internal/errors"
	"baseball-stats-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

const maxLeaderboardPageSize = 100

// TeamService handles team listings and season-level team reports
type TeamService struct {
	teams     repository.TeamRepositoryInterface
	games     repository.GameRepositoryInterface
	validator *validator.Validate
	reports   config.ReportConfig
}

// NewTeamService creates a new team service
func NewTeamService(teams repository.TeamRepositoryInterface, games repository.GameRepositoryInterface, validator *validator.Validate, reports config.ReportConfig) *TeamService {
	return &TeamService{
		teams:     teams,
		games:     games,
		validator: validator,
		reports:   reports,
	}
}

// LeaderboardRequest selects a season and how many teams to return
type LeaderboardRequest struct {
	Year     *int `form:"year"`
	PageSize *int `form:"pagesize" validate:"omitempty,min=1,max=100"`
}

// ListTeams retrieves every (team id, name) pair in the reporting window
func (s *TeamService) ListTeams(ctx context.Context) (teams []repository.TeamRow, err error) {
	defer func(start time.Time) { err = finish(ctx, reportTeams, start, err) }(time.Now())
	return s.teams.ListTeams(ctx, s.reports.FirstYear, s.reports.LastYear)
}

// Roster retrieves a team's roster for a season, the default season when year is nil
func (s *TeamService) Roster(ctx context.Context, teamID int, year *int) (roster []repository.RosterEntry, err error) {
	defer func(start time.Time) { err = finish(ctx, reportRoster, start, err) }(time.Now())

	season, err := s.season(year)
	if err != nil {
		return nil, err
	}
	return s.teams.GetRoster(ctx, teamID, season)
}

// TeamWins aggregates home and away wins per team over the reporting window
func (s *TeamService) TeamWins(ctx context.Context) (rows []repository.TeamWinsRow, err error) {
	defer func(start time.Time) { err = finish(ctx, reportTeamWins, start, err) }(time.Now())
	return s.games.TeamWins(ctx, s.reports.FirstYear, s.reports.LastYear)
}

// Leaderboard ranks the teams of a season by total wins. The season runs
// from March 1 through February 20 of the following year.
func (s *TeamService) Leaderboard(ctx context.Context, req *LeaderboardRequest) (rows []repository.StandingRow, err error) {
	defer func(start time.Time) { err = finish(ctx, reportLeaderboard, start, err) }(time.Now())

	if req == nil {
		req = &LeaderboardRequest{}
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	year, err := s.season(req.Year)
	if err != nil {
		return nil, err
	}
	pageSize := s.reports.LeaderboardPageSize
	if req.PageSize != nil {
		pageSize = *req.PageSize
	}
	if pageSize > maxLeaderboardPageSize {
		pageSize = maxLeaderboardPageSize
	}

	rows, err = s.games.Standings(ctx, SeasonWindowFor(year), pageSize)
	if err != nil {
		return nil, err
	}

	// rows arrive ranked by the store; ties in wins are already broken by name
	if len(rows) > pageSize {
		rows = rows[:pageSize]
	}
	return rows, nil
}

// SeasonWindowFor returns the game-date window of a season
func SeasonWindowFor(year int) repository.SeasonWindow {
	return repository.SeasonWindow{
		Year:  year,
		Start: time.Date(year, time.March, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year+1, time.February, 20, 0, 0, 0, 0, time.UTC),
	}
}

// season resolves an optional season against the reporting window
func (s *TeamService) season(year *int) (int, error) {
	if year == nil {
		return s.reports.DefaultSeason, nil
	}
	if *year < s.reports.FirstYear || *year > s.reports.LastYear {
		return 0, apperrors.NewValidationError("year",
			fmt.Sprintf("must be between %d and %d", s.reports.FirstYear, s.reports.LastYear))
	}
	return *year, nil
}
