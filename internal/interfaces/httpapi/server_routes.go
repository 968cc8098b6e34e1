package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /readyz", handler.Readyz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/v1/matches/live", handler.ListLiveMatches)
	mux.HandleFunc("POST /api/v1/matches/validate", handler.ValidateMatch)
	mux.HandleFunc("GET /api/v1/players/{playerID}/profile", handler.GetPlayerProfile)
	mux.HandleFunc("GET /api/v1/players/{playerID}/analytics", handler.GetPlayerAnalytics)
	mux.HandleFunc("GET /api/v1/rankings", handler.ListRankings)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /internal/jobs/archive/sync", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunArchiveSyncJob)))
}
