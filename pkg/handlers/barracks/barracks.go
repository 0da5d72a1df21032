package barracks

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/chris/bidding-wars/pkg/api"
	"github.com/chris/bidding-wars/pkg/handlers/respond"
	"github.com/chris/bidding-wars/pkg/lifecycle"
	"github.com/chris/bidding-wars/pkg/mapping"
	"github.com/chris/bidding-wars/pkg/settlement"
	"github.com/chris/bidding-wars/pkg/storage"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// BarracksHandler holds the dependencies for ownership-record handlers.
type BarracksHandler struct {
	Store      storage.PurchaseReader
	Reconciler *settlement.Reconciler
	Logger     *slog.Logger
}

// NewBarracksHandler creates a new BarracksHandler.
func NewBarracksHandler(store storage.PurchaseReader, reconciler *settlement.Reconciler, logger *slog.Logger) *BarracksHandler {
	return &BarracksHandler{Store: store, Reconciler: reconciler, Logger: logger}
}

// ListBarracks returns the caller's ownership records.
func (h *BarracksHandler) ListBarracks(w http.ResponseWriter, r *http.Request) {
	caller, ok := respond.Caller(w, r)
	if !ok {
		return
	}

	domainItems, err := h.Store.ListBarracksItemsByOwner(r.Context(), caller.UserId)
	if err != nil {
		respond.Error(w, r, h.Logger, fmt.Errorf("failed to list barracks items: %w", err))
		return
	}

	apiItems := make([]*api.BarracksItem, len(domainItems))
	for i, item := range domainItems {
		apiItems[i] = mapping.ToApiBarracksItem(&item)
	}
	respond.JSON(w, http.StatusOK, apiItems)
}

// VerifyPayment asks the payment platform about the caller's pending purchase right away
// instead of waiting for the reconciliation job.
func (h *BarracksHandler) VerifyPayment(w http.ResponseWriter, r *http.Request, itemId openapi_types.UUID) {
	caller, ok := respond.Caller(w, r)
	if !ok {
		return
	}

	item, err := h.Store.GetBarracksItem(r.Context(), itemId.String())
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	if item.OwnerId != caller.UserId {
		respond.Error(w, r, h.Logger, fmt.Errorf("%w: caller does not own barracks item %s", lifecycle.ErrForbidden, item.Id))
		return
	}

	result, err := h.Reconciler.Reconcile(r.Context(), item.Id)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiPaymentVerification(result))
}
