package httpapi

import (
	"net/http"
)

func (h *Handler) ListCards(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCards")
	defer span.End()

	items, err := h.queryService.ListCards(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list cards failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	items, err := h.queryService.ListPlayers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	tag := pathTag(r)
	item, err := h.queryService.GetPlayer(ctx, tag)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "tag", tag, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, item)
}

func (h *Handler) GetDeck(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDeck")
	defer span.End()

	tag := pathTag(r)
	items, err := h.queryService.GetDeck(ctx, tag)
	if err != nil {
		h.logger.WarnContext(ctx, "get deck failed", "tag", tag, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetCollection(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCollection")
	defer span.End()

	tag := pathTag(r)
	items, err := h.queryService.GetCollection(ctx, tag)
	if err != nil {
		h.logger.WarnContext(ctx, "get collection failed", "tag", tag, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListBattles(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListBattles")
	defer span.End()

	limit, err := parseLimitQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	tag := pathTag(r)
	items, err := h.queryService.ListBattles(ctx, tag, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list battles failed", "tag", tag, "limit", limit, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListClans(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListClans")
	defer span.End()

	items, err := h.queryService.ListClans(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list clans failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetClan(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetClan")
	defer span.End()

	tag := pathTag(r)
	item, err := h.queryService.GetClan(ctx, tag)
	if err != nil {
		h.logger.WarnContext(ctx, "get clan failed", "tag", tag, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, item)
}
