package service

import (
	"context"

	"baseball-stats-backend/internal/database/models"
	"baseball-stats-backend/internal/repository"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// PlayerServiceInterface defines the interface for player service
type PlayerServiceInterface interface {
	GetPlayer(ctx context.Context, id string) (*models.Player, error)
	ListBatters(ctx context.Context) ([]models.Player, error)
	ListPitchers(ctx context.Context) ([]models.Player, error)
	SearchPlayers(ctx context.Context, req *PlayerSearchRequest) (*PlayerListResponse, error)
	HeadToHead(ctx context.Context, batterID, pitcherID string) ([]repository.OutcomeCount, error)
	BattingStats(ctx context.Context, req *SplitRequest) (*BattingStats, error)
	PitchingStats(ctx context.Context, req *SplitRequest) (*PitchingStats, error)
	BattingTrend(ctx context.Context, playerID string) ([]SeasonBattingStats, error)
	PitchingTrend(ctx context.Context, playerID string) ([]SeasonPitchingStats, error)
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	ListTeams(ctx context.Context) ([]repository.TeamRow, error)
	Roster(ctx context.Context, teamID int, year *int) ([]repository.RosterEntry, error)
	TeamWins(ctx context.Context) ([]repository.TeamWinsRow, error)
	Leaderboard(ctx context.Context, req *LeaderboardRequest) ([]repository.StandingRow, error)
}

// HeadToHeadServiceInterface defines the interface for the team-versus-team reports
type HeadToHeadServiceInterface interface {
	GameDates(ctx context.Context, team1, team2 string) ([]repository.GameResult, error)
	Snapshot(ctx context.Context, team1, team2, field string) ([]TeamSnapshot, error)
	PitchingLeaders(ctx context.Context, req *LeadersRequest) ([]PitchingLeader, error)
	BattingLeaders(ctx context.Context, req *LeadersRequest) ([]BattingLeader, error)
}
