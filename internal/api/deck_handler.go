package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/scry-deck/internal/api/shared"
	"github.com/phrazzld/scry-deck/internal/deck"
	"github.com/phrazzld/scry-deck/internal/service"
)

// SnapshotProvider hands out the current parsed view of the deck file.
// The service watcher satisfies it; tests provide fixed snapshots.
type SnapshotProvider interface {
	Snapshot() *service.Snapshot
}

// DeckHandler serves the read-only preview endpoints over one watched
// deck file.
type DeckHandler struct {
	snapshots SnapshotProvider
	svc       *service.DeckService
	logger    *slog.Logger
}

// NewDeckHandler creates a DeckHandler.
func NewDeckHandler(snapshots SnapshotProvider, svc *service.DeckService, logger *slog.Logger) *DeckHandler {
	return &DeckHandler{snapshots: snapshots, svc: svc, logger: logger}
}

// GetDeck handles GET /api/deck: the snapshot's provenance and stats.
func (h *DeckHandler) GetDeck(w http.ResponseWriter, r *http.Request) {
	snap := h.snapshots.Snapshot()
	shared.RespondWithJSON(w, r, http.StatusOK, DeckResponse{
		Path:     snap.Path,
		LoadedAt: snap.LoadedAt,
		Stats:    h.svc.Stats(snap.File),
	})
}

// ListItems handles GET /api/items: every item with its cards and
// inferred type. Derived card specs are omitted here; fetch one item
// for its specs.
func (h *DeckHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	snap := h.snapshots.Snapshot()

	items := make([]ItemResponse, 0, len(snap.File.Items))
	for _, item := range snap.File.Items {
		items = append(items, h.itemResponse(item, false))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, items)
}

// GetItem handles GET /api/items/{id}: the item owning the card with
// that identifier, including its derived card specs.
func (h *DeckHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	snap := h.snapshots.Snapshot()

	id, err := deck.ParseItemID(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid item ID", err)
		return
	}

	item, err := h.svc.FindItem(snap.File, id)
	if err != nil {
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, h.itemResponse(*item, true))
}

// itemResponse builds the JSON view of one item. Inference failures are
// not errors here: an item mid-edit simply has no type yet.
func (h *DeckHandler) itemResponse(item deck.Item, withSpecs bool) ItemResponse {
	resp := ItemResponse{
		Cards:   make([]CardResponse, 0, len(item.Cards)),
		Content: item.Content,
	}
	for _, card := range item.Cards {
		resp.Cards = append(resp.Cards, newCardResponse(card))
	}

	inferred, err := h.svc.Registry().Infer(item.Content)
	if err != nil {
		return resp
	}
	resp.Type = inferred.Type.Name()
	if withSpecs {
		resp.Specs = newCardSpecResponses(inferred.Content.Cards())
	}
	return resp
}
