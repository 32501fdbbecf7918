package repository

import (
	"context"

	"baseball-stats-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// PlayerRepositoryInterface defines the read operations on player reference data
type PlayerRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*models.Player, error)
	ListBatters(ctx context.Context) ([]models.Player, error)
	ListPitchers(ctx context.Context) ([]models.Player, error)
	Search(ctx context.Context, filter PlayerSearchFilter) ([]models.Player, int64, error)
}

// TeamRepositoryInterface defines the team name and roster lookups
type TeamRepositoryInterface interface {
	ListTeams(ctx context.Context, firstYear, lastYear int) ([]TeamRow, error)
	ResolveTeam(ctx context.Context, name string, firstYear, lastYear int) ([]TeamRow, error)
	NamesForTeamIDs(ctx context.Context, teamIDs []int, year int) ([]string, error)
	GetRoster(ctx context.Context, teamID, year int) ([]RosterEntry, error)
}

// GameRepositoryInterface defines the game-level aggregate reports
type GameRepositoryInterface interface {
	TeamWins(ctx context.Context, firstYear, lastYear int) ([]TeamWinsRow, error)
	GamesBetween(ctx context.Context, filter MatchupFilter) ([]GameResult, error)
	Snapshot(ctx context.Context, filter MatchupFilter, venue models.Venue) ([]SnapshotRow, error)
	Standings(ctx context.Context, window SeasonWindow, limit int) ([]StandingRow, error)
}

// EventRepositoryInterface defines the plate-appearance aggregate reports
type EventRepositoryInterface interface {
	HeadToHead(ctx context.Context, batterID, pitcherID string) ([]OutcomeCount, error)
	PlayerSplit(ctx context.Context, role Role, filter SplitFilter) (*OutcomeTotals, error)
	Leaders(ctx context.Context, role Role, filter LeaderFilter) ([]LeaderRow, error)
}
