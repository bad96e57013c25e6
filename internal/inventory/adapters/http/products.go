package http

import (
	"net/http"

	"github.com/dejobratic/inventory/internal/inventory/app"
)

const productNotFound = "product not found"

func (h *Handler) handleProducts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.createProduct(w, r)
	case http.MethodGet:
		if name := r.URL.Query().Get("name"); name != "" {
			h.getProductByName(w, r, name)
			return
		}
		h.listProducts(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *Handler) handleProductByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r.URL.Path, "/v1/products/")
	if !ok {
		writeError(w, http.StatusNotFound, productNotFound)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.getProduct(w, r, id)
	case http.MethodPut:
		h.updateProduct(w, r, id)
	case http.MethodDelete:
		h.deleteProduct(w, r, id)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	key, done := h.replay(w, r, "products")
	if done {
		return
	}

	var payload app.ProductInput
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	product, err := h.service.CreateProduct(r.Context(), payload)
	if err != nil {
		writeServiceError(w, err, productNotFound)
		return
	}

	h.respondCreated(w, r, key, map[string]any{"product": product}, product.ID)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		writeServiceError(w, err, productNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"products": products})
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request, id int64) {
	product, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, productNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"product": product})
}

func (h *Handler) getProductByName(w http.ResponseWriter, r *http.Request, name string) {
	product, err := h.service.GetProductByName(r.Context(), name)
	if err != nil {
		writeServiceError(w, err, productNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"product": product})
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request, id int64) {
	var payload app.ProductInput
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	product, err := h.service.UpdateProduct(r.Context(), id, payload)
	if err != nil {
		writeServiceError(w, err, productNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"product": product})
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request, id int64) {
	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		writeServiceError(w, err, productNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
