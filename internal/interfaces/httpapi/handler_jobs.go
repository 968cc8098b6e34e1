package httpapi

import (
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/courtsight/courtsight/internal/usecase"
)

type archiveSyncRequest struct {
	Seasons    []int `json:"seasons" validate:"max=200,dive,min=1800,max=2200"`
	Precompute bool  `json:"precompute"`
}

func (h *Handler) RunArchiveSyncJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunArchiveSyncJob")
	defer span.End()

	if h.ingestionService == nil {
		writeError(ctx, w, fmt.Errorf("%w: archive ingestion is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	var req archiveSyncRequest
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodySize))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: read request body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if len(body) > 0 {
		if err := sonic.Unmarshal(body, &req); err != nil {
			writeError(ctx, w, fmt.Errorf("%w: decode request body: %v", usecase.ErrInvalidInput, err))
			return
		}
		if err := h.validateRequest(ctx, req); err != nil {
			writeError(ctx, w, err)
			return
		}
	}

	result, err := h.ingestionService.SyncArchive(ctx, req.Seasons)
	if err != nil {
		h.logger.ErrorContext(ctx, "archive sync failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	if req.Precompute && h.analyticsService != nil {
		count, err := h.analyticsService.PrecomputeAll(ctx)
		if err != nil {
			h.logger.WarnContext(ctx, "analytics precompute failed", "error", err)
		} else {
			h.logger.InfoContext(ctx, "analytics precompute finished", "players", count)
		}
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
