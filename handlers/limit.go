package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

var errInvalidLimit = errors.New("limit must be a positive integer")

// ParseLimit reads the ?limit= query parameter. Absent means DefaultLimit;
// values above MaxLimit are capped; zero, negative, or non-numeric values
// are rejected.
func ParseLimit(c *gin.Context) (int, error) {
	limitStr := c.Query("limit")
	if limitStr == "" {
		return DefaultLimit, nil
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		return 0, errInvalidLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return limit, nil
}
