package httpapi

import (
	"net/http"
)

func (h *Handler) SyncCards(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SyncCards")
	defer span.End()

	result, err := h.syncService.SyncCards(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "sync cards failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

// SyncPlayerFromBody accepts {"tag": "#..."} so callers need not escape the tag in the path.
func (h *Handler) SyncPlayerFromBody(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SyncPlayerFromBody")
	defer span.End()

	var req syncPlayerRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.syncService.SyncPlayer(ctx, req.Tag)
	if err != nil {
		h.logger.WarnContext(ctx, "sync player failed", "tag", req.Tag, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) SyncPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SyncPlayer")
	defer span.End()

	tag := pathTag(r)
	result, err := h.syncService.SyncPlayer(ctx, tag)
	if err != nil {
		h.logger.WarnContext(ctx, "sync player failed", "tag", tag, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) SyncBattleLogs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SyncBattleLogs")
	defer span.End()

	tag := pathTag(r)
	result, err := h.syncService.SyncBattleLogs(ctx, tag)
	if err != nil {
		h.logger.WarnContext(ctx, "sync battle logs failed", "tag", tag, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) SyncClan(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SyncClan")
	defer span.End()

	tag := pathTag(r)
	result, err := h.syncService.SyncClan(ctx, tag)
	if err != nil {
		h.logger.WarnContext(ctx, "sync clan failed", "tag", tag, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) SyncClanMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SyncClanMembers")
	defer span.End()

	tag := pathTag(r)
	result, err := h.syncService.SyncClanMembers(ctx, tag)
	if err != nil {
		h.logger.WarnContext(ctx, "sync clan members failed", "tag", tag, "error", err)
		writeError(ctx, w, err)
		return
	}
	if result.Partial() {
		h.logger.WarnContext(ctx, "clan roster sync incomplete",
			"tag", result.Clan.Tag,
			"synced", result.Synced,
			"failed", len(result.Failed),
		)
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

// SyncAll answers 200 whenever the player step succeeded; later step failures are
// reported inside the step list.
func (h *Handler) SyncAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SyncAll")
	defer span.End()

	tag := pathTag(r)
	result, err := h.syncService.SyncAll(ctx, tag)
	if err != nil {
		h.logger.WarnContext(ctx, "sync all failed", "tag", tag, "error", err)
		writeError(ctx, w, err)
		return
	}
	if result.Partial() {
		h.logger.WarnContext(ctx, "sync all partial", "tag", result.Player.Tag)
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
