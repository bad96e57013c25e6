package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dejobratic/inventory/internal/inventory/app"
	"github.com/dejobratic/inventory/internal/inventory/domain"
)

const orderNotFound = "order not found"

func (h *Handler) handleOrders(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.createOrder(w, r)
	case http.MethodGet:
		h.filterOrders(w, r)
	case http.MethodDelete:
		h.deleteOrders(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *Handler) handleOrderByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r.URL.Path, "/v1/orders/")
	if !ok {
		writeError(w, http.StatusNotFound, orderNotFound)
		return
	}

	switch r.Method {
	case http.MethodPut:
		h.updateOrder(w, r, id)
	case http.MethodDelete:
		h.deleteOrder(w, r, id)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	key, done := h.replay(w, r, "orders")
	if done {
		return
	}

	var payload app.OrderInput
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	order, err := h.service.CreateOrder(r.Context(), payload)
	if err != nil {
		writeServiceError(w, err, orderNotFound)
		return
	}

	h.respondCreated(w, r, key, map[string]any{"order": order}, order.ID)
}

func (h *Handler) filterOrders(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	orders, err := h.service.FilterOrders(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err, orderNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

func (h *Handler) deleteOrders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter, err := parseFilter(query)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.DeleteOrders(r.Context(), filter, query.Get("all") == "true"); err != nil {
		writeServiceError(w, err, orderNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request, id int64) {
	var payload app.OrderInput
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	order, err := h.service.UpdateOrder(r.Context(), id, payload)
	if err != nil {
		writeServiceError(w, err, orderNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"order": order})
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request, id int64) {
	if err := h.service.DeleteOrder(r.Context(), id); err != nil {
		writeServiceError(w, err, orderNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// parseFilter reads month, year, status and product_id. Missing or empty
// parameters leave the predicate absent.
func parseFilter(query url.Values) (domain.OrderFilter, error) {
	var filter domain.OrderFilter

	if v := query.Get("month"); v != "" {
		month, err := strconv.Atoi(v)
		if err != nil {
			return filter, fmt.Errorf("invalid month %q", v)
		}
		filter.Month = domain.Some(month)
	}
	if v := query.Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return filter, fmt.Errorf("invalid year %q", v)
		}
		filter.Year = domain.Some(year)
	}
	if v := query.Get("status"); v != "" {
		status, err := domain.ParseOrderStatus(v)
		if err != nil {
			return filter, err
		}
		filter.Status = domain.Some(status)
	}
	if v := query.Get("product_id"); v != "" {
		productID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filter, fmt.Errorf("invalid product_id %q", v)
		}
		filter.ProductID = domain.Some(productID)
	}

	return filter, nil
}
