package httpapi

import (
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/courtsight/courtsight/internal/display"
	"github.com/courtsight/courtsight/internal/domain/match"
	"github.com/courtsight/courtsight/internal/usecase"
	"github.com/courtsight/courtsight/internal/validate"
)

const maxRequestBodySize = 1 << 20

type liveMatchDTO struct {
	View       display.View    `json:"view"`
	Validation validate.Result `json:"validation"`
}

func (h *Handler) ListLiveMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLiveMatches")
	defer span.End()

	matches, err := h.matchService.LiveMatches(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list live matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]liveMatchDTO, 0, len(matches))
	for _, entry := range matches {
		items = append(items, liveMatchDTO{
			View:       entry.View,
			Validation: entry.Validation,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

type validateMatchRequest struct {
	Match match.RawMatch `json:"match" validate:"required"`
}

func (h *Handler) ValidateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ValidateMatch")
	defer span.End()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodySize))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: read request body: %v", usecase.ErrInvalidInput, err))
		return
	}

	var req validateMatchRequest
	if err := sonic.Unmarshal(body, &req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: decode request body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	out, err := h.matchService.ValidateRaw(ctx, req.Match)
	if err != nil {
		h.logger.WarnContext(ctx, "validate match failed", "match_id", req.Match.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, liveMatchDTO{
		View:       out.View,
		Validation: out.Validation,
	})
}
