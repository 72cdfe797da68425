package server

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type labelAction int

const (
	actionRefund labelAction = iota
	actionReprint
	actionDetails
	actionCopyTracking
)

func (a labelAction) String() string {
	switch a {
	case actionRefund:
		return "refund"
	case actionReprint:
		return "reprint"
	case actionDetails:
		return "details"
	case actionCopyTracking:
		return "copy_tracking"
	}
	return "unknown"
}

type labelAddress struct {
	siteID  int64
	orderID int64
	labelID int64
}

func parseID(vars map[string]string, key string) (int64, bool) {
	id, err := strconv.ParseInt(vars[key], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (s *Server) handleListLabels(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	siteID, okSite := parseID(vars, "siteID")
	orderID, okOrder := parseID(vars, "orderID")
	if !okSite || !okOrder {
		respondError(w, http.StatusBadRequest, "Invalid site or order ID")
		return
	}

	views, err := s.storage.OrderLabels(r.Context(), siteID, orderID)
	if err != nil {
		s.logger.Error("Failed to list labels",
			zap.Int64("site_id", siteID), zap.Int64("order_id", orderID), zap.Error(err))
		s.respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, views)
}

func (s *Server) handleLabelAction(action labelAction) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		var addr labelAddress
		var ok bool
		if addr.siteID, ok = parseID(vars, "siteID"); !ok {
			respondError(w, http.StatusBadRequest, "Invalid site ID")
			return
		}
		if addr.orderID, ok = parseID(vars, "orderID"); !ok {
			respondError(w, http.StatusBadRequest, "Invalid order ID")
			return
		}
		if addr.labelID, ok = parseID(vars, "labelID"); !ok {
			respondError(w, http.StatusBadRequest, "Invalid label ID")
			return
		}

		if err := s.runLabelAction(r.Context(), action, addr); err != nil {
			s.respondStorageError(w, err)
			return
		}

		respondJSON(w, http.StatusAccepted, map[string]string{"status": "accepted", "action": action.String()})
	}
}

func (s *Server) runLabelAction(ctx context.Context, action labelAction, addr labelAddress) error {
	switch action {
	case actionRefund:
		return s.storage.RequestRefund(ctx, addr.siteID, addr.orderID, addr.labelID)
	case actionReprint:
		return s.storage.RequestReprint(ctx, addr.siteID, addr.orderID, addr.labelID)
	case actionDetails:
		return s.storage.OpenDetails(ctx, addr.siteID, addr.orderID, addr.labelID)
	default:
		return s.storage.CopyTracking(ctx, addr.siteID, addr.orderID, addr.labelID)
	}
}
