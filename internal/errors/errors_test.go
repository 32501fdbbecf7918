package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "player"}
		assert.Equal(t, "player not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "team"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrTeamNotFound, ErrPlayerNotFound))
	})

	t.Run("IsNotFound helper through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("resolve team: %w", ErrTeamNotFound)
		assert.True(t, IsNotFound(wrapped))
		assert.True(t, errors.Is(wrapped, ErrTeamNotFound))
		assert.False(t, IsNotFound(ErrSameTeam))
	})
}

func TestMissingParameterError(t *testing.T) {
	t.Run("Error message names the parameter", func(t *testing.T) {
		assert.Equal(t, "team 1 is missing", ErrTeamOneMissing.Error())
		assert.Equal(t, "team 2 is missing", ErrTeamTwoMissing.Error())
		assert.Equal(t, "player id is missing", ErrPlayerIDMissing.Error())
		assert.Equal(t, "team id is missing", ErrTeamIDMissing.Error())
	})

	t.Run("errors.Is distinguishes parameters", func(t *testing.T) {
		assert.True(t, errors.Is(ErrTeamOneMissing, &MissingParameterError{Parameter: "team 1"}))
		assert.False(t, errors.Is(ErrTeamOneMissing, ErrTeamTwoMissing))
	})

	t.Run("IsMissingParameter helper", func(t *testing.T) {
		assert.True(t, IsMissingParameter(ErrBatterIDMissing))
		assert.False(t, IsMissingParameter(ErrPlayerNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "year", Message: "must be between 2011 and 2015"}
		assert.Equal(t, "validation error: year - must be between 2011 and 2015", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("field", "message")))
		assert.True(t, IsValidation(fmt.Errorf("leaders: %w", ErrSameTeam)))
		assert.True(t, IsValidation(ErrInvalidTimeRange))
		assert.False(t, IsValidation(ErrTeamNotFound))
	})
}

func TestQueryError(t *testing.T) {
	cause := errors.New(`pq: relation "games" does not exist`)
	err := NewQueryError("team_wins", cause)

	t.Run("message hides the driver error", func(t *testing.T) {
		assert.Equal(t, "error executing the query", err.Error())
		assert.NotContains(t, err.Error(), "relation")
	})

	t.Run("cause stays reachable", func(t *testing.T) {
		assert.ErrorIs(t, err, cause)
		assert.True(t, IsQueryError(fmt.Errorf("outer: %w", err)))
	})

	t.Run("is not a client error", func(t *testing.T) {
		assert.False(t, IsClientError(err))
		assert.True(t, IsClientError(ErrPlayerIDMissing))
		assert.True(t, IsClientError(ErrPlayerNotFound))
	})
}
