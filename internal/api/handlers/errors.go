package handlers

import (
	"net/http"

	apperrors "baseball-stats-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// ResultResponse wraps every report body
type ResultResponse struct {
	Result interface{} `json:"result"`
}

// errorStatus maps a service error to its HTTP status. Report endpoints
// never answer with a 5xx status: store failures are reported as 400.
func errorStatus(err error) int {
	switch {
	case apperrors.IsMissingParameter(err), apperrors.IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(errorStatus(err), ErrorResponse{Error: err.Error()})
}

func respondResult(c *gin.Context, result interface{}) {
	c.JSON(http.StatusOK, ResultResponse{Result: result})
}

// bindQuery binds the query string into req, reporting malformed values as
// validation errors.
func bindQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		respondError(c, apperrors.NewValidationError("", err.Error()))
		return false
	}
	return true
}
