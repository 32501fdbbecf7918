package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"baseball-stats-backend/internal/config"
	"baseball-stats-backend/internal/database/models"
	apperrors "baseball-stats-backend/internal/errors"
	"baseball-stats-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const defaultSearchPageSize = 20

// PlayerService handles player lookups, search and per-player reports
type PlayerService struct {
	players   repository.PlayerRepositoryInterface
	events    repository.EventRepositoryInterface
	validator *validator.Validate
	reports   config.ReportConfig
}

// NewPlayerService creates a new player service
func NewPlayerService(players repository.PlayerRepositoryInterface, events repository.EventRepositoryInterface, validator *validator.Validate, reports config.ReportConfig) *PlayerService {
	return &PlayerService{
		players:   players,
		events:    events,
		validator: validator,
		reports:   reports,
	}
}

// PlayerSearchRequest holds the optional player search filters
type PlayerSearchRequest struct {
	PlayerName   string `form:"playerName" validate:"omitempty,max=100"`
	BirthCountry string `form:"birthCountry" validate:"omitempty,max=100"`
	BornBefore   string `form:"bornBefore" validate:"omitempty,datetime=2006-01-02"`
	BornAfter    string `form:"bornAfter" validate:"omitempty,datetime=2006-01-02"`
	DebutBefore  string `form:"debutBefore" validate:"omitempty,datetime=2006-01-02"`
	DebutAfter   string `form:"debutAfter" validate:"omitempty,datetime=2006-01-02"`
	MinHeight    *int   `form:"minHeight" validate:"omitempty,min=0"`
	MaxHeight    *int   `form:"maxHeight" validate:"omitempty,min=0"`
	MinWeight    *int   `form:"minWeight" validate:"omitempty,min=0"`
	MaxWeight    *int   `form:"maxWeight" validate:"omitempty,min=0"`
	BattingHand  string `form:"battingHand" validate:"omitempty,oneof=L R B"`
	ThrowingHand string `form:"throwingHand" validate:"omitempty,oneof=L R B"`
	Page         *int   `form:"page" validate:"omitempty,min=1,max=1000000"`
	PageSize     *int   `form:"pagesize" validate:"omitempty,min=1,max=500"`
}

// PlayerListResponse is a player search result. Page and PageSize are only
// set when the search was paginated.
type PlayerListResponse struct {
	Players  []models.Player `json:"result"`
	Total    int64           `json:"total"`
	Page     int             `json:"page,omitempty"`
	PageSize int             `json:"pagesize,omitempty"`
}

// GetPlayer retrieves a player by ID
func (s *PlayerService) GetPlayer(ctx context.Context, id string) (player *models.Player, err error) {
	defer func(start time.Time) { err = finish(ctx, reportPlayer, start, err) }(time.Now())

	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperrors.ErrPlayerIDMissing
	}

	player, err = s.players.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, err
	}
	return player, nil
}

// ListBatters retrieves every player who batted at least once
func (s *PlayerService) ListBatters(ctx context.Context) (players []models.Player, err error) {
	defer func(start time.Time) { err = finish(ctx, reportBatters, start, err) }(time.Now())
	return s.players.ListBatters(ctx)
}

// ListPitchers retrieves every player who pitched at least once
func (s *PlayerService) ListPitchers(ctx context.Context) (players []models.Player, err error) {
	defer func(start time.Time) { err = finish(ctx, reportPitchers, start, err) }(time.Now())
	return s.players.ListPitchers(ctx)
}

// SearchPlayers retrieves the players matching every supplied filter. The
// result is unpaginated unless page or pagesize is given.
func (s *PlayerService) SearchPlayers(ctx context.Context, req *PlayerSearchRequest) (resp *PlayerListResponse, err error) {
	defer func(start time.Time) { err = finish(ctx, reportPlayerSearch, start, err) }(time.Now())

	if req == nil {
		req = &PlayerSearchRequest{}
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	filter := repository.PlayerSearchFilter{
		Name:         req.PlayerName,
		BirthCountry: req.BirthCountry,
		MinHeight:    req.MinHeight,
		MaxHeight:    req.MaxHeight,
		MinWeight:    req.MinWeight,
		MaxWeight:    req.MaxWeight,
		Bats:         req.BattingHand,
		Throws:       req.ThrowingHand,
	}
	dates := []struct {
		field, value string
		target       **time.Time
	}{
		{"bornBefore", req.BornBefore, &filter.BornBefore},
		{"bornAfter", req.BornAfter, &filter.BornAfter},
		{"debutBefore", req.DebutBefore, &filter.DebutBefore},
		{"debutAfter", req.DebutAfter, &filter.DebutAfter},
	}
	for _, d := range dates {
		if *d.target, err = parseOptionalDate(d.field, d.value); err != nil {
			return nil, err
		}
	}

	resp = &PlayerListResponse{}
	if req.Page != nil || req.PageSize != nil {
		resp.Page, resp.PageSize = 1, defaultSearchPageSize
		if req.Page != nil {
			resp.Page = *req.Page
		}
		if req.PageSize != nil {
			resp.PageSize = *req.PageSize
		}
		filter.Limit = resp.PageSize
		filter.Offset = (resp.Page - 1) * resp.PageSize
	}

	players, total, err := s.players.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp.Players = players
	resp.Total = total
	return resp, nil
}

// HeadToHead counts the outcomes of every plate appearance between a batter
// and a pitcher.
func (s *PlayerService) HeadToHead(ctx context.Context, batterID, pitcherID string) (outcomes []repository.OutcomeCount, err error) {
	defer func(start time.Time) { err = finish(ctx, reportHeadToHead, start, err) }(time.Now())

	batterID, pitcherID = strings.TrimSpace(batterID), strings.TrimSpace(pitcherID)
	if batterID == "" {
		return nil, apperrors.ErrBatterIDMissing
	}
	if pitcherID == "" {
		return nil, apperrors.ErrPitcherIDMissing
	}
	return s.events.HeadToHead(ctx, batterID, pitcherID)
}
