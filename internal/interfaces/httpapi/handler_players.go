package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/courtsight/courtsight/internal/usecase"
)

func (h *Handler) GetPlayerProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerProfile")
	defer span.End()

	playerID := r.PathValue("playerID")
	profile, err := h.profileService.GetProfile(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player profile failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, profile)
}

func (h *Handler) GetPlayerAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerAnalytics")
	defer span.End()

	playerID := r.PathValue("playerID")

	fromYear, err := parseYearParam(r.URL.Query().Get("from"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	toYear, err := parseYearParam(r.URL.Query().Get("to"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	summary, err := h.analyticsService.PlayerAnalytics(ctx, playerID, fromYear, toYear)
	if err != nil {
		h.logger.WarnContext(ctx, "get player analytics failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summary)
}

func (h *Handler) ListRankings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRankings")
	defer span.End()

	rows, date, err := h.profileService.Rankings(ctx, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.WarnContext(ctx, "list rankings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"date":     date,
		"rankings": rows,
	})
}

func parseYearParam(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	year, err := strconv.Atoi(value)
	if err != nil || year < 1800 || year > 2200 {
		return 0, fmt.Errorf("%w: invalid season year %q", usecase.ErrInvalidInput, value)
	}
	return year, nil
}
