package repository

import (
	"context"

	"gorm.io/gorm"
)

// TeamRepository handles the per-season team name and roster lookups
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// ListTeams retrieves the distinct (team id, name) pairs used between firstYear and lastYear
func (r *TeamRepository) ListTeams(ctx context.Context, firstYear, lastYear int) ([]TeamRow, error) {
	var teams []TeamRow
	q := ListTeamsQuery(firstYear, lastYear)
	err := r.db.WithContext(ctx).Raw(q.SQL, q.Args).Scan(&teams).Error
	return teams, err
}

// ResolveTeam returns every (team id, stored name) pair that matches name
// between firstYear and lastYear. An unknown name yields an empty slice.
func (r *TeamRepository) ResolveTeam(ctx context.Context, name string, firstYear, lastYear int) ([]TeamRow, error) {
	var teams []TeamRow
	q := ResolveTeamQuery(name, firstYear, lastYear)
	err := r.db.WithContext(ctx).Raw(q.SQL, q.Args).Scan(&teams).Error
	return teams, err
}

// NamesForTeamIDs returns the display names the team ids carried in year
func (r *TeamRepository) NamesForTeamIDs(ctx context.Context, teamIDs []int, year int) ([]string, error) {
	var names []string
	if len(teamIDs) == 0 {
		return names, nil
	}
	q := TeamNamesQuery(teamIDs, year)
	err := r.db.WithContext(ctx).Raw(q.SQL, q.Args).Scan(&names).Error
	return names, err
}

// GetRoster retrieves the players on a team's roster for one season
func (r *TeamRepository) GetRoster(ctx context.Context, teamID, year int) ([]RosterEntry, error) {
	var roster []RosterEntry
	q := RosterQuery(teamID, year)
	err := r.db.WithContext(ctx).Raw(q.SQL, q.Args).Scan(&roster).Error
	return roster, err
}
