// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gavinpai/trip-planner-ai/internal/modules/usage"
	"github.com/gavinpai/trip-planner-ai/internal/planner"
)

type errorResponse struct {
	Error string `json:"error"`
}

// isValidID ensures user IDs are alphanumeric and at most 32 chars.
func isValidID(v string) bool {
	if v == "" || len(v) > 32 {
		return false
	}
	for _, c := range v {
		if (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			continue
		}
		return false
	}
	return true
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeRecommendError maps planner failures onto HTTP statuses: bad input is
// the caller's fault, quota exhaustion is throttled, anything else is an
// upstream completion failure.
func writeRecommendError(c *gin.Context, err error) {
	var vErr *planner.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeError(c, http.StatusBadRequest, vErr.Error())
	case errors.Is(err, usage.ErrQuotaExhausted):
		writeError(c, http.StatusTooManyRequests, err.Error())
	default:
		writeError(c, http.StatusBadGateway, err.Error())
	}
}
