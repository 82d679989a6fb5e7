package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/middleware"
	"expensetracker/internal/types"
	"expensetracker/internal/uuid"
	"expensetracker/internal/validator"
)

// getUsername extracts the authenticated username from the Gin context.
// Returns ErrUnauthorized if not present.
func getUsername(c *gin.Context) (string, error) {
	username := c.GetString(middleware.ContextUsername)
	if username == "" {
		return "", apperrors.ErrUnauthorized
	}
	return username, nil
}

// parsePathID reads the "id" path parameter.
// Returns ErrInvalidInput if it is not a UUID.
func parsePathID(c *gin.Context) (string, error) {
	id := c.Param("id")
	if !uuid.IsValid(id) {
		return "", apperrors.InvalidField("id", "id must be a valid id")
	}
	return strings.ToLower(id), nil
}

// bindJSON binds the request body and reports failures as field errors.
func bindJSON(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return apperrors.WithFields(apperrors.ErrInvalidInput, validator.FieldErrors(err))
	}
	return nil
}

// queryDate reads a required YYYY-MM-DD query parameter.
func queryDate(c *gin.Context, name string) (types.Date, error) {
	value := c.Query(name)
	if value == "" {
		return types.Date{}, apperrors.InvalidField(name, name+" is required")
	}
	date, err := types.ParseDate(value)
	if err != nil {
		return types.Date{}, apperrors.InvalidField(name, name+" must be a date in YYYY-MM-DD format")
	}
	return date, nil
}

// queryInt reads a required integer query parameter.
func queryInt(c *gin.Context, name string) (int, error) {
	value := c.Query(name)
	if value == "" {
		return 0, apperrors.InvalidField(name, name+" is required")
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, apperrors.InvalidField(name, name+" must be an integer")
	}
	return n, nil
}

// respondWithError writes a consistent JSON error response.
func respondWithError(c *gin.Context, err error) {
	middleware.WriteError(c, err)
}
