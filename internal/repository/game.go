package repository

import (
	"context"

	"baseball-stats-backend/internal/database/models"

	"gorm.io/gorm"
)

// GameRepository computes game-level reports
type GameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{db: db}
}

// TeamWins aggregates home and away wins per team between firstYear and lastYear
func (r *GameRepository) TeamWins(ctx context.Context, firstYear, lastYear int) ([]TeamWinsRow, error) {
	var rows []TeamWinsRow
	q := TeamWinsQuery(firstYear, lastYear)
	err := r.db.WithContext(ctx).Raw(q.SQL, q.Args).Scan(&rows).Error
	return rows, err
}

// GamesBetween retrieves the games between two teams in date order
func (r *GameRepository) GamesBetween(ctx context.Context, filter MatchupFilter) ([]GameResult, error) {
	var games []GameResult
	q := GamesBetweenQuery(filter)
	err := r.db.WithContext(ctx).Raw(q.SQL, q.Args).Scan(&games).Error
	return games, err
}

// Snapshot aggregates wins and runs for each side of a matchup. A side that
// played no qualifying game has no row.
func (r *GameRepository) Snapshot(ctx context.Context, filter MatchupFilter, venue models.Venue) ([]SnapshotRow, error) {
	var rows []SnapshotRow
	q := SnapshotQuery(filter, venue)
	err := r.db.WithContext(ctx).Raw(q.SQL, q.Args).Scan(&rows).Error
	return rows, err
}

// Standings ranks the teams of a season window by total wins
func (r *GameRepository) Standings(ctx context.Context, window SeasonWindow, limit int) ([]StandingRow, error) {
	var rows []StandingRow
	q := StandingsQuery(window, limit)
	err := r.db.WithContext(ctx).Raw(q.SQL, q.Args).Scan(&rows).Error
	return rows, err
}
