// README: Recommendation handlers (quota-guarded blocking and SSE streaming).
package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gavinpai/trip-planner-ai/internal/modules/usage"
	"github.com/gavinpai/trip-planner-ai/internal/planner"
)

// recommendTimeout bounds a single completion round trip.
const recommendTimeout = 120 * time.Second

type RecommendHandler struct {
	planner *planner.Planner
	usage   *usage.Service
}

// NewRecommendHandler creates the handler. usageSvc may be nil, in which case
// requests are unmetered.
func NewRecommendHandler(p *planner.Planner, usageSvc *usage.Service) *RecommendHandler {
	return &RecommendHandler{planner: p, usage: usageSvc}
}

type recommendReq struct {
	UID         string         `json:"uid"`
	StartDate   string         `json:"start_date"`
	EndDate     string         `json:"end_date"`
	Preferences map[string]any `json:"preferences"`
}

// parse binds and pre-validates the request body shared by both modes.
func (h *RecommendHandler) parse(c *gin.Context) (*recommendReq, *planner.Preferences, bool) {
	var req recommendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return nil, nil, false
	}

	req.UID = strings.TrimSpace(req.UID)
	if !isValidID(req.UID) {
		writeError(c, http.StatusBadRequest, "missing or invalid uid")
		return nil, nil, false
	}

	prefs, err := planner.ParsePreferences(req.Preferences)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return nil, nil, false
	}

	return &req, prefs, true
}

// useQuota deducts one request from the user's daily allowance when metering
// is enabled.
func (h *RecommendHandler) useQuota(c *gin.Context, uid string) bool {
	if h.usage == nil {
		return true
	}
	if err := h.usage.UseRequest(c.Request.Context(), uid); err != nil {
		if errors.Is(err, usage.ErrQuotaExhausted) {
			writeError(c, http.StatusTooManyRequests, err.Error())
		} else {
			writeError(c, http.StatusInternalServerError, "internal error")
		}
		return false
	}
	return true
}

// Recommend handles POST /api/recommendations.
func (h *RecommendHandler) Recommend(c *gin.Context) {
	req, prefs, ok := h.parse(c)
	if !ok {
		return
	}
	if !h.useQuota(c, req.UID) {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), recommendTimeout)
	defer cancel()

	text, err := h.planner.Recommend(ctx, req.StartDate, req.EndDate, prefs)
	if err != nil {
		writeRecommendError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, map[string]any{"recommendation": text})
}

// RecommendStream handles POST /api/recommendations/stream as server-sent
// events; each completion chunk arrives as a "chunk" event.
func (h *RecommendHandler) RecommendStream(c *gin.Context) {
	req, prefs, ok := h.parse(c)
	if !ok {
		return
	}
	if !h.useQuota(c, req.UID) {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), recommendTimeout)
	defer cancel()

	stream, err := h.planner.RecommendStream(ctx, req.StartDate, req.EndDate, prefs)
	if err != nil {
		writeRecommendError(c, err)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		chunk, err := stream.Next()
		if errors.Is(err, io.EOF) {
			c.SSEvent("done", "")
			return false
		}
		if err != nil {
			c.SSEvent("error", err.Error())
			return false
		}
		c.SSEvent("chunk", chunk)
		return true
	})
}
