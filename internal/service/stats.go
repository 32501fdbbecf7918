package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	apperrors "baseball-stats-backend/internal/errors"
	"baseball-stats-backend/internal/repository"
)

// SplitRequest selects one player's plate appearances. Hand is the opposing
// player's throwing arm (batting splits) or batting side (pitching splits).
type SplitRequest struct {
	PlayerID     string `form:"-"`
	DateStart    string `form:"dateStart" validate:"omitempty,datetime=2006-01-02"`
	DateEnd      string `form:"dateEnd" validate:"omitempty,datetime=2006-01-02"`
	AgainstTeams string `form:"againstTeams"`
	Hand         string `form:"-" validate:"omitempty,oneof=L R B"`
}

// BattingStats is a batter's stat line over a date range
type BattingStats struct {
	Homeruns         int64    `json:"Homeruns"`
	Singles          int64    `json:"Singles"`
	Doubles          int64    `json:"Doubles"`
	Triples          int64    `json:"Triples"`
	Walks            int64    `json:"Walks"`
	Strikeouts       int64    `json:"Strikeouts"`
	Hits             int64    `json:"Hits"`
	AtBats           int64    `json:"AtBats"`
	PlateAppearances int64    `json:"PlateAppearances"`
	BattingAvg       *float64 `json:"BattingAvg"`
}

// PitchingStats is a pitcher's stat line over a date range
type PitchingStats struct {
	Strikeouts      int64    `json:"Strikeouts"`
	Walks           int64    `json:"Walks"`
	HitsAllowed     int64    `json:"HitsAllowed"`
	HomerunsAllowed int64    `json:"HomerunsAllowed"`
	BattersFaced    int64    `json:"BattersFaced"`
	StrikeoutRate   *float64 `json:"StrikeoutRate"`
}

// SeasonBattingStats is one season of a batting trend
type SeasonBattingStats struct {
	Season int `json:"Season"`
	BattingStats
}

// SeasonPitchingStats is one season of a pitching trend
type SeasonPitchingStats struct {
	Season int `json:"Season"`
	PitchingStats
}

// NewBattingStats derives a batting line from raw plate-appearance totals
func NewBattingStats(t repository.OutcomeTotals) BattingStats {
	return BattingStats{
		Homeruns:         t.HomeRuns,
		Singles:          t.Singles,
		Doubles:          t.Doubles,
		Triples:          t.Triples,
		Walks:            t.Walks,
		Strikeouts:       t.Strikeouts,
		Hits:             t.Hits,
		AtBats:           t.AtBats,
		PlateAppearances: t.PlateAppearances,
		BattingAvg:       Rate(t.Hits, t.AtBats),
	}
}

// NewPitchingStats derives a pitching line from raw plate-appearance totals
func NewPitchingStats(t repository.OutcomeTotals) PitchingStats {
	return PitchingStats{
		Strikeouts:      t.Strikeouts,
		Walks:           t.Walks,
		HitsAllowed:     t.Hits,
		HomerunsAllowed: t.HomeRuns,
		BattersFaced:    t.PlateAppearances,
		StrikeoutRate:   Rate(t.Strikeouts, t.PlateAppearances),
	}
}

// BattingStats computes a batter's line within [dateStart, dateEnd)
func (s *PlayerService) BattingStats(ctx context.Context, req *SplitRequest) (stats *BattingStats, err error) {
	defer func(start time.Time) { err = finish(ctx, reportBattingStats, start, err) }(time.Now())

	totals, err := s.split(ctx, repository.RoleBatter, req)
	if err != nil {
		return nil, err
	}
	line := NewBattingStats(*totals)
	return &line, nil
}

// PitchingStats computes a pitcher's line within [dateStart, dateEnd)
func (s *PlayerService) PitchingStats(ctx context.Context, req *SplitRequest) (stats *PitchingStats, err error) {
	defer func(start time.Time) { err = finish(ctx, reportPitchingStats, start, err) }(time.Now())

	totals, err := s.split(ctx, repository.RolePitcher, req)
	if err != nil {
		return nil, err
	}
	line := NewPitchingStats(*totals)
	return &line, nil
}

// BattingTrend computes a batter's line for every season of the reporting window
func (s *PlayerService) BattingTrend(ctx context.Context, playerID string) (trend []SeasonBattingStats, err error) {
	defer func(start time.Time) { err = finish(ctx, reportBattingTrend, start, err) }(time.Now())

	err = s.eachSeason(ctx, repository.RoleBatter, playerID, func(season int, t repository.OutcomeTotals) {
		trend = append(trend, SeasonBattingStats{Season: season, BattingStats: NewBattingStats(t)})
	})
	if err != nil {
		return nil, err
	}
	return trend, nil
}

// PitchingTrend computes a pitcher's line for every season of the reporting window
func (s *PlayerService) PitchingTrend(ctx context.Context, playerID string) (trend []SeasonPitchingStats, err error) {
	defer func(start time.Time) { err = finish(ctx, reportPitchingTrend, start, err) }(time.Now())

	err = s.eachSeason(ctx, repository.RolePitcher, playerID, func(season int, t repository.OutcomeTotals) {
		trend = append(trend, SeasonPitchingStats{Season: season, PitchingStats: NewPitchingStats(t)})
	})
	if err != nil {
		return nil, err
	}
	return trend, nil
}

// eachSeason runs one split per season, in order
func (s *PlayerService) eachSeason(ctx context.Context, role repository.Role, playerID string, fn func(int, repository.OutcomeTotals)) error {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return apperrors.ErrPlayerIDMissing
	}

	for season := s.reports.FirstYear; season <= s.reports.LastYear; season++ {
		totals, err := s.events.PlayerSplit(ctx, role, repository.SplitFilter{
			PlayerID: playerID,
			Start:    yearStart(season),
			End:      yearStart(season + 1),
		})
		if err != nil {
			return err
		}
		fn(season, *totals)
	}
	return nil
}

func (s *PlayerService) split(ctx context.Context, role repository.Role, req *SplitRequest) (*repository.OutcomeTotals, error) {
	filter, err := s.splitFilter(req)
	if err != nil {
		return nil, err
	}
	return s.events.PlayerSplit(ctx, role, filter)
}

// splitFilter validates a split request and applies the reporting-window defaults
func (s *PlayerService) splitFilter(req *SplitRequest) (repository.SplitFilter, error) {
	if req == nil || strings.TrimSpace(req.PlayerID) == "" {
		return repository.SplitFilter{}, apperrors.ErrPlayerIDMissing
	}
	if err := validateRequest(s.validator, req); err != nil {
		return repository.SplitFilter{}, err
	}

	start, err := parseDate("dateStart", req.DateStart, yearStart(s.reports.FirstYear))
	if err != nil {
		return repository.SplitFilter{}, err
	}
	end, err := parseDate("dateEnd", req.DateEnd, yearStart(s.reports.LastYear+1))
	if err != nil {
		return repository.SplitFilter{}, err
	}
	if start.After(end) {
		return repository.SplitFilter{}, apperrors.ErrInvalidTimeRange
	}

	teams, err := ParseTeamIDList(req.AgainstTeams)
	if err != nil {
		return repository.SplitFilter{}, err
	}

	return repository.SplitFilter{
		PlayerID:     strings.TrimSpace(req.PlayerID),
		Start:        start,
		End:          end,
		AgainstTeams: teams,
		OpponentHand: req.Hand,
	}, nil
}

// ParseTeamIDList parses a comma-separated team id list. An empty list, or
// one containing -1, means every team and yields nil.
func ParseTeamIDList(raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var ids []int
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, apperrors.NewValidationError("againstTeams", "must be a comma-separated list of team ids")
		}
		if id == -1 {
			return nil, nil
		}
		ids = append(ids, id)
	}
	return ids, nil
}
