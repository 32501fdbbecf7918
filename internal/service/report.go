package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	apperrors "baseball-stats-backend/internal/errors"
	"baseball-stats-backend/internal/logger"
	"baseball-stats-backend/internal/metrics"

	"github.com/go-playground/validator/v10"
)

// Report names used for logging and metrics
const (
	reportPlayer          = "player"
	reportBatters         = "batters"
	reportPitchers        = "pitchers"
	reportPlayerSearch    = "player_search"
	reportHeadToHead      = "head_to_head_players"
	reportBattingStats    = "batting_stats"
	reportPitchingStats   = "pitching_stats"
	reportBattingTrend    = "batting_trend"
	reportPitchingTrend   = "pitching_trend"
	reportTeams           = "teams"
	reportRoster          = "roster"
	reportTeamWins        = "team_wins"
	reportLeaderboard     = "leaderboard"
	reportGameDates       = "game_dates"
	reportSnapshot        = "snapshot"
	reportPitchingLeaders = "pitching_leaders"
	reportBattingLeaders  = "batting_leaders"
)

const dateLayout = "2006-01-02"

// finish closes out one report call: caller errors pass through unchanged,
// anything else is logged with its cause and replaced by a QueryError.
func finish(ctx context.Context, report string, start time.Time, err error) error {
	elapsed := time.Since(start)
	outcome := metrics.OutcomeOK

	switch {
	case err == nil:
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"report":      report,
			"duration_ms": elapsed.Milliseconds(),
		}).Debugf("report computed")
	case apperrors.IsClientError(err):
		outcome = metrics.OutcomeClientError
	default:
		outcome = metrics.OutcomeQueryError
		logger.WithContext(ctx).WithField("report", report).WithError(err).Errorf("report %s failed", report)
		err = apperrors.NewQueryError(report, err)
	}

	metrics.RecordReport(report, outcome, elapsed)
	return err
}

// NewValidator creates a validator that reports fields by their query
// parameter names.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// validationError converts validator output into a ValidationError for the first failing field
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		msg := fmt.Sprintf("failed on the '%s' rule", fe.Tag())
		if fe.Param() != "" {
			msg = fmt.Sprintf("failed on the '%s=%s' rule", fe.Tag(), fe.Param())
		}
		return apperrors.NewValidationError(fe.Field(), msg)
	}
	return apperrors.NewValidationError("", err.Error())
}

func validateRequest(v *validator.Validate, req interface{}) error {
	if err := v.Struct(req); err != nil {
		return validationError(err)
	}
	return nil
}

// parseDate parses an optional YYYY-MM-DD value, falling back to def
func parseDate(field, value string, def time.Time) (time.Time, error) {
	if value == "" {
		return def, nil
	}
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(field, "must be a YYYY-MM-DD date")
	}
	return d, nil
}

func parseOptionalDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	d, err := parseDate(field, value, time.Time{})
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func yearStart(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// Rate divides numerator by denominator; an empty denominator has no rate
func Rate(numerator, denominator int64) *float64 {
	if denominator == 0 {
		return nil
	}
	r := float64(numerator) / float64(denominator)
	return &r
}
