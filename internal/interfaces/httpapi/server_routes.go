package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerSyncRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/sync/cards", handler.SyncCards)
	mux.HandleFunc("POST /v1/sync/players", handler.SyncPlayerFromBody)
	mux.HandleFunc("POST /v1/sync/players/{tag}", handler.SyncPlayer)
	mux.HandleFunc("POST /v1/sync/players/{tag}/battles", handler.SyncBattleLogs)
	mux.HandleFunc("POST /v1/sync/clans/{tag}", handler.SyncClan)
	mux.HandleFunc("POST /v1/sync/clans/{tag}/members", handler.SyncClanMembers)
	mux.HandleFunc("POST /v1/sync/all/{tag}", handler.SyncAll)
}

func registerQueryRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/cards", handler.ListCards)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{tag}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/players/{tag}/deck", handler.GetDeck)
	mux.HandleFunc("GET /v1/players/{tag}/collection", handler.GetCollection)
	mux.HandleFunc("GET /v1/players/{tag}/battles", handler.ListBattles)
	mux.HandleFunc("GET /v1/clans", handler.ListClans)
	mux.HandleFunc("GET /v1/clans/{tag}", handler.GetClan)
}
